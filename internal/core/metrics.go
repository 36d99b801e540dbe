package core

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeSummary reduces a chart of accounts to the dashboard's scalar
// summary. Total expenses exclude COGS (code 5010), which is reported
// separately. Margins divide by total revenue and are guarded against zero
// revenue with a literal "0.0".
func ComputeSummary(chart *ChartOfAccounts) FinancialSummary {
	var revenue decimal.Decimal
	for _, a := range chart.Income {
		revenue = revenue.Add(a.Balance)
	}

	var cogs, expenses decimal.Decimal
	for _, a := range chart.Expenses {
		if a.Code == CodeCOGS {
			cogs = cogs.Add(a.Balance)
			continue
		}
		expenses = expenses.Add(a.Balance)
	}

	grossProfit := revenue.Sub(cogs)
	netProfit := grossProfit.Sub(expenses)

	return FinancialSummary{
		TotalRevenue:     revenue,
		TotalCOGS:        cogs,
		TotalExpenses:    expenses,
		GrossProfit:      grossProfit,
		NetProfit:        netProfit,
		GrossMargin:      marginPercent(grossProfit, revenue),
		NetMargin:        marginPercent(netProfit, revenue),
		TotalAssets:      chart.TotalAssets,
		TotalLiabilities: chart.TotalLiabilities,
		TotalEquity:      chart.TotalEquity,
		CashBalance:      balanceByCode(chart.Assets, CodeCash),
		BankBalance:      balanceByCode(chart.Assets, CodeBank),
	}
}

// marginPercent formats part/revenue as a percentage string with one decimal.
func marginPercent(part, revenue decimal.Decimal) string {
	if revenue.IsZero() {
		return "0.0"
	}
	return part.Div(revenue).Mul(hundred).StringFixed(1)
}

func balanceByCode(accounts []Account, code string) decimal.Decimal {
	for _, a := range accounts {
		if a.Code == code {
			return a.Balance
		}
	}
	return decimal.Zero
}
