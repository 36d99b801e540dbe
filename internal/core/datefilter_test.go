package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbooks/internal/core"
)

func datePtr(t time.Time) *time.Time { return &t }

func saleOn(id int, date string, amount int64) core.Sale {
	d, err := time.Parse("2006-01-02T15:04", date)
	if err != nil {
		d, _ = time.Parse("2006-01-02", date)
	}
	return core.Sale{
		ID:          id,
		TotalAmount: decimal.NewFromInt(amount),
		SaleDate:    datePtr(d),
	}
}

func TestDateFilter_All(t *testing.T) {
	sales := []core.Sale{saleOn(1, "2022-12-31", 100), saleOn(2, "2023-01-01", 200)}

	filtered, undated := core.DateFilter{Kind: core.FilterAll}.FilterSales(sales, time.Now())
	assert.Len(t, filtered, 2)
	assert.Zero(t, undated)

	// Empty kind behaves as ALL.
	filtered, _ = core.DateFilter{}.FilterSales(sales, time.Now())
	assert.Len(t, filtered, 2)
}

func TestDateFilter_Yearly(t *testing.T) {
	sales := []core.Sale{
		saleOn(1, "2022-12-31", 100),
		saleOn(2, "2023-01-01", 200),
		saleOn(3, "2023-11-05", 300),
	}

	filtered, _ := core.DateFilter{Kind: core.FilterYearly, Year: 2023}.FilterSales(sales, time.Now())
	require.Len(t, filtered, 2)
	assert.Equal(t, 2, filtered[0].ID)
	assert.Equal(t, 3, filtered[1].ID)
}

func TestDateFilter_Monthly(t *testing.T) {
	sales := []core.Sale{
		saleOn(1, "2024-02-29", 100),
		saleOn(2, "2024-03-01", 200),
		saleOn(3, "2023-03-15", 300),
	}

	filtered, _ := core.DateFilter{Kind: core.FilterMonthly, Year: 2024, Month: time.March}.FilterSales(sales, time.Now())
	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].ID)
}

func TestDateFilter_CustomIncludesWholeEndDay(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-31")
	f := core.DateFilter{Kind: core.FilterCustom, Start: &start, End: &end}

	sales := []core.Sale{
		saleOn(1, "2024-01-31T23:00", 100),
		saleOn(2, "2024-02-01T00:01", 200),
		saleOn(3, "2023-12-31T23:59", 300),
	}

	filtered, _ := f.FilterSales(sales, time.Now())
	require.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func TestDateFilter_CustomMissingBoundIsPassthrough(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	sales := []core.Sale{saleOn(1, "1999-01-01", 100)}

	filtered, _ := core.DateFilter{Kind: core.FilterCustom, Start: &start}.FilterSales(sales, time.Now())
	assert.Len(t, filtered, 1)
}

func TestDateFilter_UndatedFallsBackToNow(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2024-06-15")
	sales := []core.Sale{
		{ID: 1, TotalAmount: decimal.NewFromInt(100)}, // no dates at all
		saleOn(2, "2023-06-15", 200),
	}

	filtered, undated := core.DateFilter{Kind: core.FilterYearly, Year: 2024}.FilterSales(sales, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 1, undated)
}

func TestDateFilter_CreatedAtFallback(t *testing.T) {
	created, _ := time.Parse("2006-01-02", "2023-05-10")
	sales := []core.Sale{{ID: 1, CreatedAt: &created}}

	filtered, undated := core.DateFilter{Kind: core.FilterYearly, Year: 2023}.FilterSales(sales, time.Now())
	assert.Len(t, filtered, 1)
	assert.Zero(t, undated)
}
