package core

import "github.com/shopspring/decimal"

// cogsRate is the fixed cost-of-goods assumption: COGS is always 60% of each
// sale's total, never derived from actual unit costs.
var cogsRate = decimal.RequireFromString("0.6")

// LedgerInputs supplies the balances that the aggregation cannot derive from
// the four collections: cash and bank positions plus the operating expense
// accounts. The zero value is the documented default until a real ledger
// integration feeds these; the aggregation algorithm's shape does not change
// when it does.
type LedgerInputs struct {
	Cash      decimal.Decimal
	Bank      decimal.Decimal
	Rent      decimal.Decimal
	Utilities decimal.Decimal
	Salaries  decimal.Decimal
}

// OperatingTotal returns the sum of the three operating expense inputs.
func (l LedgerInputs) OperatingTotal() decimal.Decimal {
	return l.Rent.Add(l.Utilities).Add(l.Salaries)
}

// BuildChartOfAccounts derives the five fixed account categories from the
// collections. Sales are expected to be pre-filtered by date; the other three
// collections are always whole.
//
// Receivable sums the remaining amount of every non-PAID sale plus every
// customer outstanding balance, assuming no overlap between the two (they are
// not deduplicated against each other). Inventory value sums quantity x unit
// cost across ALL movements regardless of direction; outbound movements are
// not netted against stock.
func BuildChartOfAccounts(sales []Sale, movements []InventoryMovement, customers []Customer, suppliers []Supplier, ledger LedgerInputs) *ChartOfAccounts {
	var revenue, cogs, receivable decimal.Decimal
	for _, s := range sales {
		revenue = revenue.Add(s.TotalAmount)
		cogs = cogs.Add(s.TotalAmount.Mul(cogsRate))
		if s.PaymentStatus != PaymentPaid {
			receivable = receivable.Add(s.RemainingAmount)
		}
	}

	var inventoryValue decimal.Decimal
	for _, m := range movements {
		inventoryValue = inventoryValue.Add(decimal.NewFromInt(m.Quantity).Mul(m.UnitCost()))
	}

	for _, c := range customers {
		receivable = receivable.Add(c.OutstandingBalance)
	}

	var payable decimal.Decimal
	for _, sup := range suppliers {
		payable = payable.Add(sup.OutstandingBalance)
	}

	operating := ledger.OperatingTotal()
	grossProfit := revenue.Sub(cogs)
	netProfit := grossProfit.Sub(operating)

	totalAssets := ledger.Cash.Add(ledger.Bank).Add(receivable).Add(inventoryValue)
	totalLiabilities := payable
	// Equity is the balancing identity, never an independent sum.
	totalEquity := totalAssets.Sub(totalLiabilities)
	retained := netProfit
	owners := totalEquity.Sub(retained)

	return &ChartOfAccounts{
		Assets: []Account{
			{Code: CodeCash, Name: "Cash", Balance: ledger.Cash, Type: TypeCurrentAsset},
			{Code: CodeBank, Name: "Bank", Balance: ledger.Bank, Type: TypeCurrentAsset},
			{Code: CodeAccountsReceivable, Name: "Accounts Receivable", Balance: receivable, Type: TypeCurrentAsset},
			{Code: CodeInventory, Name: "Inventory", Balance: inventoryValue, Type: TypeCurrentAsset},
		},
		Liabilities: []Account{
			{Code: CodeAccountsPayable, Name: "Accounts Payable", Balance: payable, Type: TypeCurrentLiability},
		},
		Equity: []Account{
			{Code: CodeOwnersEquity, Name: "Owner's Equity", Balance: owners, Type: TypeEquity},
			{Code: CodeRetainedEarnings, Name: "Retained Earnings", Balance: retained, Type: TypeEquity},
		},
		Income: []Account{
			{Code: CodeSalesRevenue, Name: "Sales Revenue", Balance: revenue, Type: TypeRevenue},
			{Code: CodeOtherIncome, Name: "Other Income", Balance: decimal.Zero, Type: TypeRevenue},
		},
		Expenses: []Account{
			{Code: CodeCOGS, Name: "Cost of Goods Sold", Balance: cogs, Type: TypeCOGS},
			{Code: CodeRent, Name: "Rent Expense", Balance: ledger.Rent, Type: TypeOperating},
			{Code: CodeUtilities, Name: "Utilities Expense", Balance: ledger.Utilities, Type: TypeOperating},
			{Code: CodeSalaries, Name: "Salaries Expense", Balance: ledger.Salaries, Type: TypeOperating},
		},

		TotalAssets:        totalAssets,
		TotalLiabilities:   totalLiabilities,
		TotalEquity:        totalEquity,
		TotalRevenue:       revenue,
		TotalCOGS:          cogs,
		OperatingExpenses:  operating,
		GrossProfit:        grossProfit,
		NetProfit:          netProfit,
		AccountsReceivable: receivable,
		AccountsPayable:    payable,
		InventoryValue:     inventoryValue,
		RetainedEarnings:   retained,
		OwnersEquity:       owners,
	}
}
