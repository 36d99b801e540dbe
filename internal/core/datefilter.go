package core

import "time"

// FilterKind selects the date-range mode of the reports page.
type FilterKind string

const (
	FilterAll     FilterKind = "ALL"
	FilterYearly  FilterKind = "YEARLY"
	FilterMonthly FilterKind = "MONTHLY"
	FilterCustom  FilterKind = "CUSTOM"
)

// DateFilter is the client-selected date range applied to the sales
// collection before aggregation. Inventory, customers, and suppliers are
// never filtered: balance-sheet stock and payable totals stay whole under
// date-scoped income-statement views. That asymmetry is deliberate.
type DateFilter struct {
	Kind  FilterKind
	Year  int
	Month time.Month
	Start *time.Time
	End   *time.Time
}

// FilterSales returns the sales whose effective date matches the filter,
// plus the count of records that had no date at all. Undated records take
// now as their effective date, so they match whatever period now falls in.
//
// A CUSTOM filter missing either bound applies no filtering. The End bound
// is extended to the last nanosecond of its day so the whole end day is
// included.
func (f DateFilter) FilterSales(sales []Sale, now time.Time) ([]Sale, int) {
	if f.Kind == "" || f.Kind == FilterAll {
		return sales, 0
	}
	if f.Kind == FilterCustom && (f.Start == nil || f.End == nil) {
		return sales, 0
	}

	var end time.Time
	if f.Kind == FilterCustom {
		end = endOfDay(*f.End)
	}

	out := make([]Sale, 0, len(sales))
	undated := 0
	for _, s := range sales {
		d, ok := s.EffectiveDate()
		if !ok {
			d = now
			undated++
		}
		switch f.Kind {
		case FilterYearly:
			if d.Year() == f.Year {
				out = append(out, s)
			}
		case FilterMonthly:
			if d.Year() == f.Year && d.Month() == f.Month {
				out = append(out, s)
			}
		case FilterCustom:
			if !d.Before(*f.Start) && !d.After(end) {
				out = append(out, s)
			}
		}
	}
	return out, undated
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
