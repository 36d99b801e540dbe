package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Journal synthesis caps: only the first few events of each kind are turned
// into display entries.
const (
	maxSaleEntries     = 5
	maxPurchaseEntries = 5
	maxPaymentEntries  = 3
)

// Account display names used on journal lines.
const (
	acctCash         = "Cash"
	acctReceivable   = "Accounts Receivable"
	acctPayable      = "Accounts Payable"
	acctInventory    = "Inventory"
	acctSalesRevenue = "Sales Revenue"
	acctCOGS         = "Cost of Goods Sold"
)

// SynthesizeJournal builds display journal entries from sales, inbound
// inventory movements, and supplier payments, newest date first. Sales are
// taken in input order (not date-sorted) before truncation. Every entry
// balances: the debit total equals the credit total. Events without a date
// take now and are marked Undated.
func SynthesizeJournal(sales []Sale, movements []InventoryMovement, suppliers []Supplier, now time.Time) []JournalEntry {
	entries := make([]JournalEntry, 0, maxSaleEntries+maxPurchaseEntries+maxPaymentEntries)

	for i, s := range sales {
		if i == maxSaleEntries {
			break
		}
		entries = append(entries, saleEntry(s, i, now))
	}

	purchases := 0
	for _, m := range movements {
		if m.MovementType != MovementIn {
			continue
		}
		if purchases == maxPurchaseEntries {
			break
		}
		purchases++
		entries = append(entries, purchaseEntry(m, purchases, now))
	}

	payments := 0
	for i, sup := range suppliers {
		if !sup.TotalPaid.IsPositive() {
			continue
		}
		if payments == maxPaymentEntries {
			break
		}
		payments++
		entries = append(entries, paymentEntry(sup, i+1, now))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// saleEntry posts the sale and its cost side in one entry:
// DR Cash/AR, CR Sales Revenue for the total; DR COGS, CR Inventory for 60%.
func saleEntry(s Sale, idx int, now time.Time) JournalEntry {
	cogs := s.TotalAmount.Mul(cogsRate)

	debitAccount := acctReceivable
	entryType := "Credit Sale"
	if strings.EqualFold(s.PaymentMethod, "CASH") || s.PaymentStatus == PaymentPaid {
		debitAccount = acctCash
		entryType = "Cash Sale"
	}

	ref := s.InvoiceNumber
	if ref == "" {
		ref = fmt.Sprintf("INV-%d", s.ID)
	}

	seq := s.ID
	if seq == 0 {
		seq = idx + 1
	}

	date, undated := orNow(s.SaleDate, s.CreatedAt, now)
	return JournalEntry{
		ID:        fmt.Sprintf("JE-SALE-%03d", seq),
		Date:      date,
		Type:      entryType,
		Reference: ref,
		Status:    EntryStatusPosted,
		Undated:   undated,
		Lines: []JournalLine{
			{Account: debitAccount, Debit: s.TotalAmount},
			{Account: acctSalesRevenue, Credit: s.TotalAmount},
			{Account: acctCOGS, Debit: cogs},
			{Account: acctInventory, Credit: cogs},
		},
	}
}

// purchaseEntry posts an inbound movement: DR Inventory, CR Cash when already
// paid, otherwise CR Accounts Payable.
func purchaseEntry(m InventoryMovement, ordinal int, now time.Time) JournalEntry {
	amount := decimal.NewFromInt(m.Quantity).Mul(m.UnitCost())

	creditAccount := acctPayable
	if m.PaymentStatus == PaymentPaid {
		creditAccount = acctCash
	}

	seq := m.ID
	if seq == 0 {
		seq = ordinal
	}

	date, undated := orNow(m.OccurredAt, m.CreatedAt, now)
	return JournalEntry{
		ID:        fmt.Sprintf("JE-PURCH-%03d", seq),
		Date:      date,
		Type:      "Inventory Purchase",
		Reference: fmt.Sprintf("MOV-%d", seq),
		Status:    EntryStatusPosted,
		Undated:   undated,
		Lines: []JournalLine{
			{Account: acctInventory, Debit: amount},
			{Account: creditAccount, Credit: amount},
		},
	}
}

// paymentEntry posts a supplier payment: DR Accounts Payable, CR Cash for the
// supplier's running TotalPaid.
func paymentEntry(sup Supplier, ordinal int, now time.Time) JournalEntry {
	seq := sup.ID
	if seq == 0 {
		seq = ordinal
	}

	date, undated := orNow(sup.LastPaymentDate, nil, now)
	return JournalEntry{
		ID:        fmt.Sprintf("JE-PAY-%03d", seq),
		Date:      date,
		Type:      "Supplier Payment",
		Reference: sup.Name,
		Status:    EntryStatusPosted,
		Undated:   undated,
		Lines: []JournalLine{
			{Account: acctPayable, Debit: sup.TotalPaid},
			{Account: acctCash, Credit: sup.TotalPaid},
		},
	}
}

// orNow picks the first non-nil date, falling back to now. undated reports
// whether the fallback was taken.
func orNow(primary, secondary *time.Time, now time.Time) (t time.Time, undated bool) {
	if primary != nil {
		return *primary, false
	}
	if secondary != nil {
		return *secondary, false
	}
	return now, true
}
