package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbooks/internal/app"
	"stockbooks/internal/core"
)

// fakeSource returns canned report inputs or a canned error.
type fakeSource struct {
	in  core.ReportInputs
	err error
}

func (f *fakeSource) FetchReportInputs(ctx context.Context) (core.ReportInputs, error) {
	return f.in, f.err
}

func newTestService(src app.ReportSource) app.ApplicationService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	agg := core.Aggregator{Now: func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	}}
	return app.NewAppService(nil, nil, nil, nil, nil, src, agg, log)
}

func TestGetAccountingReport(t *testing.T) {
	src := &fakeSource{in: core.ReportInputs{
		Sales: []core.Sale{{ID: 1, TotalAmount: decimal.NewFromInt(1000), PaymentStatus: core.PaymentPaid}},
	}}
	svc := newTestService(src)

	snap, err := svc.GetAccountingReport(context.Background(), core.DateFilter{})
	require.NoError(t, err)
	assert.Equal(t, "1000", snap.FinancialSummary.TotalRevenue.String())

	latest := svc.LatestReport()
	require.NotNil(t, latest)
	assert.Equal(t, snap, latest)
}

func TestGetAccountingReport_SourceErrorFallsBackZeroed(t *testing.T) {
	svc := newTestService(&fakeSource{err: errors.New("connection refused")})

	snap, err := svc.GetAccountingReport(context.Background(), core.DateFilter{})
	require.Error(t, err)
	require.NotNil(t, snap, "callers always get a displayable snapshot")
	assert.True(t, snap.FinancialSummary.TotalRevenue.IsZero())
	assert.Equal(t, "0.0", snap.FinancialSummary.GrossMargin)

	// The error fallback must not become the viewable state.
	assert.Nil(t, svc.LatestReport())
}

func TestGetAccountingReport_ErrorDoesNotClobberGoodSnapshot(t *testing.T) {
	src := &fakeSource{in: core.ReportInputs{
		Sales: []core.Sale{{ID: 1, TotalAmount: decimal.NewFromInt(500), PaymentStatus: core.PaymentPaid}},
	}}
	svc := newTestService(src)

	_, err := svc.GetAccountingReport(context.Background(), core.DateFilter{})
	require.NoError(t, err)

	src.err = errors.New("backend down")
	_, err = svc.GetAccountingReport(context.Background(), core.DateFilter{})
	require.Error(t, err)

	latest := svc.LatestReport()
	require.NotNil(t, latest)
	assert.Equal(t, "500", latest.FinancialSummary.TotalRevenue.String())
}
