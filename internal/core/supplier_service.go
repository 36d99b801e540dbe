package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SupplierService provides supplier master data CRUD.
type SupplierService interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int) (*Supplier, error)
	Create(ctx context.Context, input Supplier) (*Supplier, error)
	Update(ctx context.Context, id int, input Supplier) (*Supplier, error)
	Delete(ctx context.Context, id int) error
}

type supplierService struct {
	pool *pgxpool.Pool
}

// NewSupplierService constructs a SupplierService backed by PostgreSQL.
func NewSupplierService(pool *pgxpool.Pool) SupplierService {
	return &supplierService{pool: pool}
}

const supplierColumns = `id, name, email, phone, outstanding_balance, total_purchases, total_paid, last_payment_date, created_at`

func scanSupplier(scan func(...any) error, sup *Supplier) error {
	return scan(&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.OutstandingBalance,
		&sup.TotalPurchases, &sup.TotalPaid, &sup.LastPaymentDate, &sup.CreatedAt)
}

func (s *supplierService) List(ctx context.Context) ([]Supplier, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var sup Supplier
		if err := scanSupplier(rows.Scan, &sup); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}
	return suppliers, rows.Err()
}

func (s *supplierService) Get(ctx context.Context, id int) (*Supplier, error) {
	sup := &Supplier{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE id = $1`,
		id,
	).Scan(&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.OutstandingBalance,
		&sup.TotalPurchases, &sup.TotalPaid, &sup.LastPaymentDate, &sup.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("supplier %d not found: %w", id, err)
	}
	return sup, nil
}

func (s *supplierService) Create(ctx context.Context, input Supplier) (*Supplier, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	sup := &Supplier{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO suppliers (name, email, phone, outstanding_balance, total_purchases, total_paid, last_payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+supplierColumns,
		input.Name, input.Email, input.Phone, input.OutstandingBalance,
		input.TotalPurchases, input.TotalPaid, input.LastPaymentDate,
	).Scan(&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.OutstandingBalance,
		&sup.TotalPurchases, &sup.TotalPaid, &sup.LastPaymentDate, &sup.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create supplier %q: %w", input.Name, err)
	}
	return sup, nil
}

func (s *supplierService) Update(ctx context.Context, id int, input Supplier) (*Supplier, error) {
	sup := &Supplier{}
	err := s.pool.QueryRow(ctx, `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, outstanding_balance = $5,
		    total_purchases = $6, total_paid = $7, last_payment_date = $8
		WHERE id = $1
		RETURNING `+supplierColumns,
		id, input.Name, input.Email, input.Phone, input.OutstandingBalance,
		input.TotalPurchases, input.TotalPaid, input.LastPaymentDate,
	).Scan(&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.OutstandingBalance,
		&sup.TotalPurchases, &sup.TotalPaid, &sup.LastPaymentDate, &sup.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("update supplier %d: %w", id, err)
	}
	return sup, nil
}

func (s *supplierService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier %d not found", id)
	}
	return nil
}
