package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbooks/internal/core"
)

func fixedClock(date string) func() time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return d }
}

func TestAggregate_EmptyInputs(t *testing.T) {
	agg := core.Aggregator{Now: fixedClock("2024-06-01")}

	snap := agg.Aggregate(core.ReportInputs{}, core.DateFilter{})

	require.NotNil(t, snap.ChartOfAccounts)
	assert.Empty(t, snap.JournalEntries)
	assert.Empty(t, snap.MonthlyProfit)
	assert.Equal(t, core.RawCounts{}, snap.RawCounts)
	assert.Equal(t, "0.0", snap.FinancialSummary.GrossMargin)
	assert.Zero(t, snap.UndatedSales)
}

func TestAggregate_SingleSalePipeline(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2024-03-10")
	in := core.ReportInputs{
		Sales: []core.Sale{{
			ID:            1,
			TotalAmount:   dec("1000"),
			PaymentStatus: core.PaymentPaid,
			PaymentMethod: "CASH",
			SaleDate:      &d,
		}},
	}

	snap := core.Aggregator{Now: fixedClock("2024-06-01")}.Aggregate(in, core.DateFilter{})

	assert.True(t, snap.ChartOfAccounts.TotalCOGS.Equal(dec("600")))
	assert.True(t, snap.ChartOfAccounts.GrossProfit.Equal(dec("400")))

	require.Len(t, snap.JournalEntries, 1)
	assert.Equal(t, "Cash Sale", snap.JournalEntries[0].Type)

	require.Len(t, snap.MonthlyProfit, 1)
	assert.Equal(t, "Mar", snap.MonthlyProfit[0].Month)

	assert.Equal(t, core.RawCounts{Sales: 1}, snap.RawCounts)
}

func TestAggregate_FilterScopesSalesOnly(t *testing.T) {
	d2023, _ := time.Parse("2006-01-02", "2023-05-01")
	d2024, _ := time.Parse("2006-01-02", "2024-05-01")
	in := core.ReportInputs{
		Sales: []core.Sale{
			{ID: 1, TotalAmount: dec("100"), SaleDate: &d2023},
			{ID: 2, TotalAmount: dec("200"), SaleDate: &d2024},
		},
		Inventory: []core.InventoryMovement{
			{ID: 1, MovementType: core.MovementIn, Quantity: 2, UnitPrice: dec("10"), OccurredAt: &d2023},
		},
		Suppliers: []core.Supplier{{ID: 1, Name: "S", OutstandingBalance: dec("40")}},
	}

	snap := core.Aggregator{Now: fixedClock("2024-06-01")}.Aggregate(in,
		core.DateFilter{Kind: core.FilterYearly, Year: 2024})

	// Income statement is date-scoped...
	assert.True(t, snap.ChartOfAccounts.TotalRevenue.Equal(dec("200")))
	// ...but stock and payables stay whole.
	assert.True(t, snap.ChartOfAccounts.InventoryValue.Equal(dec("20")))
	assert.True(t, snap.ChartOfAccounts.AccountsPayable.Equal(dec("40")))
	// Raw counts are pre-filter.
	assert.Equal(t, 2, snap.RawCounts.Sales)
}

func TestAggregate_Idempotent(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2024-03-10")
	in := core.ReportInputs{
		Sales: []core.Sale{
			{ID: 1, TotalAmount: dec("1000"), PaymentStatus: core.PaymentPaid, SaleDate: &d},
			{ID: 2, TotalAmount: dec("250"), RemainingAmount: dec("250"), PaymentStatus: core.PaymentPending, SaleDate: &d},
		},
		Customers: []core.Customer{{ID: 1, Name: "A", OutstandingBalance: dec("10")}},
	}
	agg := core.Aggregator{Now: fixedClock("2024-06-01")}

	first := agg.Aggregate(in, core.DateFilter{Kind: core.FilterYearly, Year: 2024})
	second := agg.Aggregate(in, core.DateFilter{Kind: core.FilterYearly, Year: 2024})

	assert.Equal(t, first.ChartOfAccounts, second.ChartOfAccounts)
	assert.Equal(t, first.FinancialSummary, second.FinancialSummary)
	assert.Equal(t, first.JournalEntries, second.JournalEntries)
	assert.Equal(t, first.MonthlyProfit, second.MonthlyProfit)
}

func TestAggregate_UndatedSalesReported(t *testing.T) {
	in := core.ReportInputs{
		Sales: []core.Sale{{ID: 1, TotalAmount: dec("100")}},
	}

	snap := core.Aggregator{Now: fixedClock("2024-06-01")}.Aggregate(in,
		core.DateFilter{Kind: core.FilterYearly, Year: 2024})

	assert.Equal(t, 1, snap.UndatedSales)
	require.Len(t, snap.JournalEntries, 1)
	assert.True(t, snap.JournalEntries[0].Undated)
}
