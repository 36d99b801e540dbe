package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// BuildMonthlySeries buckets sales into calendar months and derives the
// profit trend. Buckets are sorted chronologically by (year, month); the
// expense share per bucket is a flat one-twelfth of totalOperatingExpenses
// regardless of how many distinct months appear. Undated sales land in the
// month of now.
func BuildMonthlySeries(sales []Sale, totalOperatingExpenses decimal.Decimal, now time.Time) []MonthlyProfitPoint {
	type monthKey struct {
		year  int
		month time.Month
	}

	buckets := make(map[monthKey]*MonthlyProfitPoint)
	keys := make([]monthKey, 0)

	for _, s := range sales {
		d, ok := s.EffectiveDate()
		if !ok {
			d = now
		}
		k := monthKey{d.Year(), d.Month()}
		b, exists := buckets[k]
		if !exists {
			b = &MonthlyProfitPoint{Month: d.Format("Jan"), Year: d.Year()}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.Sales = b.Sales.Add(s.TotalAmount)
		b.COGS = b.COGS.Add(s.TotalAmount.Mul(cogsRate))
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	monthlyExpense := totalOperatingExpenses.Div(twelve)
	out := make([]MonthlyProfitPoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		b.Expenses = monthlyExpense
		b.Profit = b.Sales.Sub(b.COGS).Sub(b.Expenses)
		out = append(out, *b)
	}
	return out
}
