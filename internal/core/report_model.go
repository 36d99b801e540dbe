package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account within the fixed chart.
type AccountType string

const (
	TypeCurrentAsset     AccountType = "Current Asset"
	TypeCurrentLiability AccountType = "Current Liability"
	TypeEquity           AccountType = "Equity"
	TypeRevenue          AccountType = "Revenue"
	TypeCOGS             AccountType = "COGS"
	TypeOperating        AccountType = "Operating"
)

// Stable 4-digit account codes. The code is fixed per account name so the
// dashboard can key chart rows across refreshes.
const (
	CodeCash               = "1010"
	CodeBank               = "1020"
	CodeAccountsReceivable = "1030"
	CodeInventory          = "1040"
	CodeAccountsPayable    = "2010"
	CodeOwnersEquity       = "3010"
	CodeRetainedEarnings   = "3020"
	CodeSalesRevenue       = "4010"
	CodeOtherIncome        = "4020"
	CodeCOGS               = "5010"
	CodeRent               = "5020"
	CodeUtilities          = "5030"
	CodeSalaries           = "5040"
)

// Account is one derived balance bucket in the chart of accounts.
type Account struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    AccountType     `json:"type"`
}

// ChartOfAccounts groups the derived accounts into the five fixed categories
// and carries the scalar aggregates they were built from.
//
// The accounting equation holds by construction: TotalEquity is derived as
// TotalAssets - TotalLiabilities, never independently summed. OwnersEquity is
// the balancing residual after RetainedEarnings (= NetProfit) is split out.
type ChartOfAccounts struct {
	Assets      []Account `json:"assets"`
	Liabilities []Account `json:"liabilities"`
	Equity      []Account `json:"equity"`
	Income      []Account `json:"income"`
	Expenses    []Account `json:"expenses"`

	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`

	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCOGS          decimal.Decimal `json:"total_cogs"`
	OperatingExpenses  decimal.Decimal `json:"operating_expenses"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	AccountsReceivable decimal.Decimal `json:"accounts_receivable"`
	AccountsPayable    decimal.Decimal `json:"accounts_payable"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`
	RetainedEarnings   decimal.Decimal `json:"retained_earnings"`
	OwnersEquity       decimal.Decimal `json:"owners_equity"`
}

// EntryStatusPosted is the status of every synthesized journal entry. There is
// no entry lifecycle: no drafts, no voiding, no reversal.
const EntryStatusPosted = "Posted"

// JournalLine is one debit or credit leg of a journal entry. Account is the
// display name, not the 4-digit code.
type JournalLine struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// JournalEntry is a balanced debit/credit record synthesized from a business
// event. Undated marks entries whose source record carried no date and whose
// Date therefore fell back to the aggregation clock.
type JournalEntry struct {
	ID        string        `json:"id"`
	Date      time.Time     `json:"date"`
	Type      string        `json:"type"`
	Reference string        `json:"reference"`
	Lines     []JournalLine `json:"lines"`
	Status    string        `json:"status"`
	Undated   bool          `json:"undated,omitempty"`
}

// MonthlyProfitPoint is one bucket of the profit trend series.
type MonthlyProfitPoint struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Sales    decimal.Decimal `json:"sales"`
	COGS     decimal.Decimal `json:"cogs"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// FinancialSummary is the scalar reduction over the chart of accounts shown in
// the dashboard header cards. Margins are 1-decimal formatted strings, "0.0"
// when revenue is zero; callers must not re-parse them for arithmetic.
type FinancialSummary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCOGS        decimal.Decimal `json:"total_cogs"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	GrossProfit      decimal.Decimal `json:"gross_profit"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	GrossMargin      string          `json:"gross_margin"`
	NetMargin        string          `json:"net_margin"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
	CashBalance      decimal.Decimal `json:"cash_balance"`
	BankBalance      decimal.Decimal `json:"bank_balance"`
}

// RawCounts are the pre-filter sizes of the four source collections.
type RawCounts struct {
	Sales     int `json:"sales"`
	Inventory int `json:"inventory"`
	Customers int `json:"customers"`
	Suppliers int `json:"suppliers"`
}

// ReportSnapshot is the single immutable result of one aggregation run.
// There are no partial or streaming updates: the view layer swaps whole
// snapshots.
type ReportSnapshot struct {
	ChartOfAccounts  *ChartOfAccounts     `json:"chart_of_accounts"`
	JournalEntries   []JournalEntry       `json:"journal_entries"`
	MonthlyProfit    []MonthlyProfitPoint `json:"monthly_profit"`
	RawCounts        RawCounts            `json:"raw_counts"`
	FinancialSummary FinancialSummary     `json:"financial_summary"`
	UndatedSales     int                  `json:"undated_sales,omitempty"`
	GeneratedAt      time.Time            `json:"generated_at"`
}
