package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Sale is one sales invoice as recorded by the sales screen.
type Sale struct {
	ID              int             `json:"id"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"`
	SaleDate        *time.Time      `json:"sale_date,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
}

// EffectiveDate returns the sale's reporting date: SaleDate when present,
// otherwise CreatedAt. ok is false when neither is set.
func (s Sale) EffectiveDate() (t time.Time, ok bool) {
	if s.SaleDate != nil {
		return *s.SaleDate, true
	}
	if s.CreatedAt != nil {
		return *s.CreatedAt, true
	}
	return time.Time{}, false
}

// InventoryMovement is a stock receipt (IN) or issue (OUT).
type InventoryMovement struct {
	ID            int             `json:"id"`
	MovementType  MovementType    `json:"movement_type"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PaymentStatus PaymentStatus   `json:"payment_status,omitempty"`
	OccurredAt    *time.Time      `json:"occurred_at,omitempty"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

// UnitCost returns UnitPrice, falling back to PurchasePrice when unset.
func (m InventoryMovement) UnitCost() decimal.Decimal {
	if !m.UnitPrice.IsZero() {
		return m.UnitPrice
	}
	return m.PurchasePrice
}

// EffectiveDate returns OccurredAt when present, otherwise CreatedAt.
func (m InventoryMovement) EffectiveDate() (t time.Time, ok bool) {
	if m.OccurredAt != nil {
		return *m.OccurredAt, true
	}
	if m.CreatedAt != nil {
		return *m.CreatedAt, true
	}
	return time.Time{}, false
}

// Customer carries the receivable side of partner balances.
type Customer struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Email              *string         `json:"email,omitempty"`
	Phone              *string         `json:"phone,omitempty"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Supplier carries the payable side. TotalPurchases and TotalPaid are
// informational running totals; only OutstandingBalance feeds the balance sheet.
type Supplier struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Email              *string         `json:"email,omitempty"`
	Phone              *string         `json:"phone,omitempty"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	TotalPurchases     decimal.Decimal `json:"total_purchases"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	LastPaymentDate    *time.Time      `json:"last_payment_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// User represents an authenticated dashboard user.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
