package core

import "time"

// ReportInputs are the four fully materialized collections the aggregation
// runs over. Nil slices are treated as empty; aggregating four empty
// collections yields a well-defined zeroed snapshot, which callers use as the
// error-state fallback when fetching fails upstream.
type ReportInputs struct {
	Sales     []Sale
	Inventory []InventoryMovement
	Customers []Customer
	Suppliers []Supplier
}

// Aggregator derives the accounting report from the four collections. It is
// stateless and performs no I/O: every call recomputes the full pipeline from
// scratch and returns a fresh snapshot, so concurrent calls are independent.
//
// Now is the clock used when a record carries no date. Leaving it nil uses
// time.Now, which makes snapshots with undated records non-repeatable; tests
// and callers that need idempotent output inject a fixed clock.
type Aggregator struct {
	Ledger LedgerInputs
	Now    func() time.Time
}

// Aggregate runs the full pipeline: filter sales by date, build the chart of
// accounts, synthesize journal entries, bucket the monthly profit series, and
// reduce the summary metrics. Only sales are filtered; the other three
// collections always enter whole. RawCounts reports pre-filter sizes.
func (a Aggregator) Aggregate(in ReportInputs, filter DateFilter) *ReportSnapshot {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}

	sales, undated := filter.FilterSales(in.Sales, now)
	chart := BuildChartOfAccounts(sales, in.Inventory, in.Customers, in.Suppliers, a.Ledger)

	return &ReportSnapshot{
		ChartOfAccounts:  chart,
		JournalEntries:   SynthesizeJournal(sales, in.Inventory, in.Suppliers, now),
		MonthlyProfit:    BuildMonthlySeries(sales, chart.OperatingExpenses, now),
		RawCounts: RawCounts{
			Sales:     len(in.Sales),
			Inventory: len(in.Inventory),
			Customers: len(in.Customers),
			Suppliers: len(in.Suppliers),
		},
		FinancialSummary: ComputeSummary(chart),
		UndatedSales:     undated,
		GeneratedAt:      now,
	}
}
