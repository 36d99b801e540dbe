// report runs the accounting aggregation from the command line and prints the
// financial summary. It reads the four collections either from a dashboard API
// (-api, with -token for auth) or directly from the database (DATABASE_URL).
//
// Usage:
//
//	go run ./cmd/report -filter YEARLY -year 2025
//	go run ./cmd/report -api http://localhost:8080 -token $TOKEN -filter MONTHLY -year 2025 -month 8
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"stockbooks/internal/app"
	"stockbooks/internal/client"
	"stockbooks/internal/config"
	"stockbooks/internal/core"
	"stockbooks/internal/db"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	var (
		apiURL   = flag.String("api", "", "dashboard API base URL; when empty the local database is read")
		apiToken = flag.String("token", "", "bearer token for the dashboard API")
		kind     = flag.String("filter", "ALL", "date filter: ALL, YEARLY, MONTHLY, or CUSTOM")
		year     = flag.Int("year", 0, "year for YEARLY/MONTHLY filters")
		month    = flag.Int("month", 0, "month (1-12) for the MONTHLY filter")
		start    = flag.String("start", "", "start date (YYYY-MM-DD) for the CUSTOM filter")
		end      = flag.String("end", "", "end date (YYYY-MM-DD) for the CUSTOM filter")
	)
	flag.Parse()

	log := logrus.New()

	filter, err := buildFilter(*kind, *year, *month, *start, *end)
	if err != nil {
		log.WithError(err).Fatal("filter")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	ledger, err := cfg.LedgerInputs()
	if err != nil {
		log.WithError(err).Fatal("ledger config")
	}

	ctx := context.Background()
	source, cleanup, err := buildSource(ctx, *apiURL, *apiToken, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("source")
	}
	defer cleanup()

	inputs, err := source.FetchReportInputs(ctx)
	if err != nil {
		log.WithError(err).Fatal("fetch report inputs")
	}

	agg := core.Aggregator{Ledger: ledger, Now: time.Now}
	snapshot := agg.Aggregate(inputs, filter)
	printSnapshot(snapshot)
}

func buildFilter(kind string, year, month int, start, end string) (core.DateFilter, error) {
	f := core.DateFilter{Kind: core.FilterKind(strings.ToUpper(kind)), Year: year, Month: time.Month(month)}
	switch f.Kind {
	case core.FilterAll, core.FilterYearly, core.FilterMonthly, core.FilterCustom:
	default:
		return f, fmt.Errorf("unknown filter kind %q", kind)
	}
	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return f, fmt.Errorf("invalid -start: %w", err)
		}
		f.Start = &t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return f, fmt.Errorf("invalid -end: %w", err)
		}
		f.End = &t
	}
	return f, nil
}

func buildSource(ctx context.Context, apiURL, token string, cfg *config.Config, log *logrus.Logger) (app.ReportSource, func(), error) {
	if apiURL != "" {
		c := client.New(apiURL, client.WithToken(token), client.WithLogger(log))
		return c, func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DB.URL)
	if err != nil {
		return nil, nil, err
	}
	source := app.StoreSource{
		Sales:     core.NewSalesService(pool),
		Inventory: core.NewInventoryService(pool),
		Customers: core.NewCustomerService(pool),
		Suppliers: core.NewSupplierService(pool),
	}
	return source, pool.Close, nil
}

func printSnapshot(s *core.ReportSnapshot) {
	w := os.Stdout
	sum := s.FinancialSummary

	fmt.Fprintf(w, "Generated at:      %s\n", s.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Records:           %d sales, %d movements, %d customers, %d suppliers\n",
		s.RawCounts.Sales, s.RawCounts.Inventory, s.RawCounts.Customers, s.RawCounts.Suppliers)
	if s.UndatedSales > 0 {
		fmt.Fprintf(w, "Undated sales:     %d (reported as of today)\n", s.UndatedSales)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Revenue:           %s\n", sum.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "COGS:              %s\n", sum.TotalCOGS.StringFixed(2))
	fmt.Fprintf(w, "Operating exp.:    %s\n", sum.TotalExpenses.StringFixed(2))
	fmt.Fprintf(w, "Gross profit:      %s (%s%%)\n", sum.GrossProfit.StringFixed(2), sum.GrossMargin)
	fmt.Fprintf(w, "Net profit:        %s (%s%%)\n", sum.NetProfit.StringFixed(2), sum.NetMargin)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Assets:            %s\n", sum.TotalAssets.StringFixed(2))
	fmt.Fprintf(w, "Liabilities:       %s\n", sum.TotalLiabilities.StringFixed(2))
	fmt.Fprintf(w, "Equity:            %s\n", sum.TotalEquity.StringFixed(2))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Journal entries (%d):\n", len(s.JournalEntries))
	for _, e := range s.JournalEntries {
		flag := ""
		if e.Undated {
			flag = " [undated]"
		}
		fmt.Fprintf(w, "  %-12s %-20s %s  %s  %s%s\n",
			e.ID, e.Type, e.Date.Format("2006-01-02"), e.Reference, e.Status, flag)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Monthly profit:")
	for _, p := range s.MonthlyProfit {
		fmt.Fprintf(w, "  %s %d  sales %s  profit %s\n",
			p.Month, p.Year, p.Sales.StringFixed(2), p.Profit.StringFixed(2))
	}
}
