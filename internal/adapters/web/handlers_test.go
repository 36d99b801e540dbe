package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockbooks/internal/adapters/web"
	"stockbooks/internal/app"
	"stockbooks/internal/core"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fakeService implements app.ApplicationService with canned responses.
type fakeService struct {
	sales     []core.Sale
	snapshot  *core.ReportSnapshot
	latest    *core.ReportSnapshot
	reportErr error
	gotFilter core.DateFilter
}

func (f *fakeService) ListSales(ctx context.Context) ([]core.Sale, error) { return f.sales, nil }

func (f *fakeService) CreateSale(ctx context.Context, input core.Sale) (*core.Sale, error) {
	input.ID = 42
	return &input, nil
}

func (f *fakeService) UpdateSale(ctx context.Context, id int, input core.Sale) (*core.Sale, error) {
	if id != 1 {
		return nil, fmt.Errorf("sale %d not found", id)
	}
	input.ID = id
	return &input, nil
}

func (f *fakeService) DeleteSale(ctx context.Context, id int) error {
	if id != 1 {
		return fmt.Errorf("sale %d not found", id)
	}
	return nil
}

func (f *fakeService) ListInventory(ctx context.Context) ([]core.InventoryMovement, error) {
	return nil, nil
}

func (f *fakeService) CreateMovement(ctx context.Context, input core.InventoryMovement) (*core.InventoryMovement, error) {
	return &input, nil
}

func (f *fakeService) UpdateMovement(ctx context.Context, id int, input core.InventoryMovement) (*core.InventoryMovement, error) {
	return &input, nil
}

func (f *fakeService) DeleteMovement(ctx context.Context, id int) error { return nil }

func (f *fakeService) ListCustomers(ctx context.Context) ([]core.Customer, error) { return nil, nil }

func (f *fakeService) CreateCustomer(ctx context.Context, input core.Customer) (*core.Customer, error) {
	return &input, nil
}

func (f *fakeService) UpdateCustomer(ctx context.Context, id int, input core.Customer) (*core.Customer, error) {
	return &input, nil
}

func (f *fakeService) DeleteCustomer(ctx context.Context, id int) error { return nil }

func (f *fakeService) ListSuppliers(ctx context.Context) ([]core.Supplier, error) { return nil, nil }

func (f *fakeService) CreateSupplier(ctx context.Context, input core.Supplier) (*core.Supplier, error) {
	return &input, nil
}

func (f *fakeService) UpdateSupplier(ctx context.Context, id int, input core.Supplier) (*core.Supplier, error) {
	return &input, nil
}

func (f *fakeService) DeleteSupplier(ctx context.Context, id int) error { return nil }

func (f *fakeService) GetAccountingReport(ctx context.Context, filter core.DateFilter) (*core.ReportSnapshot, error) {
	f.gotFilter = filter
	return f.snapshot, f.reportErr
}

func (f *fakeService) LatestReport() *core.ReportSnapshot { return f.latest }

func (f *fakeService) AuthenticateUser(ctx context.Context, username, password string) (*app.UserSession, error) {
	if username == "admin" && password == "secret" {
		return &app.UserSession{UserID: 1, Username: "admin", Role: "admin"}, nil
	}
	return nil, errors.New("invalid credentials")
}

func (f *fakeService) GetUser(ctx context.Context, userID int) (*core.User, error) {
	if userID != 1 {
		return nil, errors.New("user not found")
	}
	return &core.User{ID: 1, Username: "admin", Email: "admin@example.com", Role: "admin"}, nil
}

var _ app.ApplicationService = (*fakeService)(nil)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestServer(t *testing.T, svc app.ApplicationService) *httptest.Server {
	t.Helper()
	handler := web.NewHandler(svc, "", testSecret, time.Hour, quietLogger())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// loginToken authenticates against the test server and returns the JWT.
func loginToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	body := bytes.NewBufferString(`{"username":"admin","password":"secret"}`)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func authedRequest(t *testing.T, method, url, token string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealthIsPublic(t *testing.T) {
	srv := newTestServer(t, &fakeService{})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t, &fakeService{})

	resp, err := http.Get(srv.URL + "/api/sales")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t, &fakeService{})

	body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListSalesEnvelope(t *testing.T) {
	svc := &fakeService{sales: []core.Sale{
		{ID: 1, TotalAmount: decimal.RequireFromString("100"), PaymentStatus: core.PaymentPaid},
	}}
	srv := newTestServer(t, svc)
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/sales", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data []core.Sale `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, 1, out.Data[0].ID)
}

func TestListEnvelopeNeverNull(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/customers", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}

func TestCreateSaleReturns201(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	body := bytes.NewBufferString(`{"total_amount":"250.00","payment_status":"PAID"}`)
	resp := authedRequest(t, http.MethodPost, srv.URL+"/api/sales", token, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out core.Sale
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 42, out.ID)
}

func TestUpdateMissingSaleIs404(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	body := bytes.NewBufferString(`{"total_amount":"10"}`)
	resp := authedRequest(t, http.MethodPut, srv.URL+"/api/sales/999", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidIDIs400(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodDelete, srv.URL+"/api/sales/abc", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAccountingReportParsesFilter(t *testing.T) {
	svc := &fakeService{snapshot: &core.ReportSnapshot{
		ChartOfAccounts: &core.ChartOfAccounts{},
		JournalEntries:  []core.JournalEntry{},
		GeneratedAt:     time.Now(),
	}}
	srv := newTestServer(t, svc)
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet,
		srv.URL+"/api/reports/accounting?filter=monthly&year=2024&month=3", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, core.FilterMonthly, svc.gotFilter.Kind)
	assert.Equal(t, 2024, svc.gotFilter.Year)
	assert.Equal(t, time.March, svc.gotFilter.Month)
}

func TestAccountingReportUnknownFilterIs400(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/reports/accounting?filter=WEEKLY", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAccountingReportServesZeroedSnapshotOnError(t *testing.T) {
	svc := &fakeService{
		snapshot:  &core.ReportSnapshot{ChartOfAccounts: &core.ChartOfAccounts{}},
		reportErr: errors.New("source unreachable"),
	}
	srv := newTestServer(t, svc)
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/reports/accounting", token, nil)
	defer resp.Body.Close()

	// The degraded snapshot is still a 200 with a well-formed document.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out core.ReportSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.ChartOfAccounts)
}

func TestLatestReportWhenEmptyIs404(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/reports/latest", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMeReturnsProfile(t *testing.T) {
	srv := newTestServer(t, &fakeService{})
	token := loginToken(t, srv)

	resp := authedRequest(t, http.MethodGet, srv.URL+"/api/auth/me", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, "admin", out.Role)
}

func TestRequestIDHeaderSet(t *testing.T) {
	srv := newTestServer(t, &fakeService{})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
