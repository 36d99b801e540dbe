package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"stockbooks/internal/core"
)

type appService struct {
	sales     core.SalesService
	inventory core.InventoryService
	customers core.CustomerService
	suppliers core.SupplierService
	users     core.UserService

	source    ReportSource
	agg       core.Aggregator
	snapshots *snapshotHolder
	log       *logrus.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
// source decides where report inputs come from (local store or remote API);
// agg carries the ledger inputs and clock for the aggregation.
func NewAppService(
	sales core.SalesService,
	inventory core.InventoryService,
	customers core.CustomerService,
	suppliers core.SupplierService,
	users core.UserService,
	source ReportSource,
	agg core.Aggregator,
	log *logrus.Logger,
) ApplicationService {
	return &appService{
		sales:     sales,
		inventory: inventory,
		customers: customers,
		suppliers: suppliers,
		users:     users,
		source:    source,
		agg:       agg,
		snapshots: newSnapshotHolder(),
		log:       log,
	}
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (s *appService) ListSales(ctx context.Context) ([]core.Sale, error) {
	return s.sales.List(ctx)
}

func (s *appService) CreateSale(ctx context.Context, input core.Sale) (*core.Sale, error) {
	if input.PaymentStatus == "" {
		input.PaymentStatus = core.PaymentPending
	}
	return s.sales.Create(ctx, input)
}

func (s *appService) UpdateSale(ctx context.Context, id int, input core.Sale) (*core.Sale, error) {
	return s.sales.Update(ctx, id, input)
}

func (s *appService) DeleteSale(ctx context.Context, id int) error {
	return s.sales.Delete(ctx, id)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *appService) ListInventory(ctx context.Context) ([]core.InventoryMovement, error) {
	return s.inventory.List(ctx)
}

func (s *appService) CreateMovement(ctx context.Context, input core.InventoryMovement) (*core.InventoryMovement, error) {
	return s.inventory.Create(ctx, input)
}

func (s *appService) UpdateMovement(ctx context.Context, id int, input core.InventoryMovement) (*core.InventoryMovement, error) {
	return s.inventory.Update(ctx, id, input)
}

func (s *appService) DeleteMovement(ctx context.Context, id int) error {
	return s.inventory.Delete(ctx, id)
}

// ── Customers ─────────────────────────────────────────────────────────────────

func (s *appService) ListCustomers(ctx context.Context) ([]core.Customer, error) {
	return s.customers.List(ctx)
}

func (s *appService) CreateCustomer(ctx context.Context, input core.Customer) (*core.Customer, error) {
	return s.customers.Create(ctx, input)
}

func (s *appService) UpdateCustomer(ctx context.Context, id int, input core.Customer) (*core.Customer, error) {
	return s.customers.Update(ctx, id, input)
}

func (s *appService) DeleteCustomer(ctx context.Context, id int) error {
	return s.customers.Delete(ctx, id)
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (s *appService) ListSuppliers(ctx context.Context) ([]core.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *appService) CreateSupplier(ctx context.Context, input core.Supplier) (*core.Supplier, error) {
	return s.suppliers.Create(ctx, input)
}

func (s *appService) UpdateSupplier(ctx context.Context, id int, input core.Supplier) (*core.Supplier, error) {
	return s.suppliers.Update(ctx, id, input)
}

func (s *appService) DeleteSupplier(ctx context.Context, id int) error {
	return s.suppliers.Delete(ctx, id)
}

// ── Reports ───────────────────────────────────────────────────────────────────

func (s *appService) GetAccountingReport(ctx context.Context, filter core.DateFilter) (*core.ReportSnapshot, error) {
	seq := s.snapshots.begin()

	in, err := s.source.FetchReportInputs(ctx)
	if err != nil {
		// The zeroed snapshot over empty collections is the defined
		// error-state fallback. It is returned to this caller but never
		// applied over previously good data.
		return s.agg.Aggregate(core.ReportInputs{}, filter), fmt.Errorf("fetch report inputs: %w", err)
	}

	snap := s.agg.Aggregate(in, filter)
	if !s.snapshots.apply(seq, snap) {
		s.log.WithField("seq", seq).Debug("discarded stale report snapshot")
	}
	return snap, nil
}

func (s *appService) LatestReport() *core.ReportSnapshot {
	return s.snapshots.latest()
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("authentication failed: invalid password")
	}
	return &UserSession{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (s *appService) GetUser(ctx context.Context, userID int) (*core.User, error) {
	return s.users.GetByID(ctx, userID)
}

// StoreSource adapts the four store services to ReportSource. Unlike the
// remote API client it does not degrade per collection: a database that
// cannot be read is an error worth surfacing.
type StoreSource struct {
	Sales     core.SalesService
	Inventory core.InventoryService
	Customers core.CustomerService
	Suppliers core.SupplierService
}

func (src StoreSource) FetchReportInputs(ctx context.Context) (core.ReportInputs, error) {
	var (
		in  core.ReportInputs
		err error
	)
	if in.Sales, err = src.Sales.List(ctx); err != nil {
		return core.ReportInputs{}, err
	}
	if in.Inventory, err = src.Inventory.List(ctx); err != nil {
		return core.ReportInputs{}, err
	}
	if in.Customers, err = src.Customers.List(ctx); err != nil {
		return core.ReportInputs{}, err
	}
	if in.Suppliers, err = src.Suppliers.List(ctx); err != nil {
		return core.ReportInputs{}, err
	}
	return in, nil
}
