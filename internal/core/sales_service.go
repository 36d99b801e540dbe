package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SalesService provides sales record CRUD for the dashboard.
type SalesService interface {
	List(ctx context.Context) ([]Sale, error)
	Get(ctx context.Context, id int) (*Sale, error)
	Create(ctx context.Context, input Sale) (*Sale, error)
	Update(ctx context.Context, id int, input Sale) (*Sale, error)
	Delete(ctx context.Context, id int) error
}

type salesService struct {
	pool *pgxpool.Pool
}

// NewSalesService constructs a SalesService backed by PostgreSQL.
func NewSalesService(pool *pgxpool.Pool) SalesService {
	return &salesService{pool: pool}
}

const saleColumns = `id, invoice_number, total_amount, remaining_amount, payment_status, payment_method, sale_date, created_at`

func (s *salesService) List(ctx context.Context) ([]Sale, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []Sale
	for rows.Next() {
		var sale Sale
		if err := scanSale(rows.Scan, &sale); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *salesService) Get(ctx context.Context, id int) (*Sale, error) {
	sale := &Sale{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE id = $1`,
		id,
	).Scan(&sale.ID, &sale.InvoiceNumber, &sale.TotalAmount, &sale.RemainingAmount,
		&sale.PaymentStatus, &sale.PaymentMethod, &sale.SaleDate, &sale.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("sale %d not found: %w", id, err)
	}
	return sale, nil
}

func (s *salesService) Create(ctx context.Context, input Sale) (*Sale, error) {
	sale := &Sale{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO sales (invoice_number, total_amount, remaining_amount, payment_status, payment_method, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+saleColumns,
		input.InvoiceNumber, input.TotalAmount, input.RemainingAmount,
		input.PaymentStatus, input.PaymentMethod, input.SaleDate,
	).Scan(&sale.ID, &sale.InvoiceNumber, &sale.TotalAmount, &sale.RemainingAmount,
		&sale.PaymentStatus, &sale.PaymentMethod, &sale.SaleDate, &sale.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}
	return sale, nil
}

func (s *salesService) Update(ctx context.Context, id int, input Sale) (*Sale, error) {
	sale := &Sale{}
	err := s.pool.QueryRow(ctx, `
		UPDATE sales
		SET invoice_number = $2, total_amount = $3, remaining_amount = $4,
		    payment_status = $5, payment_method = $6, sale_date = $7
		WHERE id = $1
		RETURNING `+saleColumns,
		id, input.InvoiceNumber, input.TotalAmount, input.RemainingAmount,
		input.PaymentStatus, input.PaymentMethod, input.SaleDate,
	).Scan(&sale.ID, &sale.InvoiceNumber, &sale.TotalAmount, &sale.RemainingAmount,
		&sale.PaymentStatus, &sale.PaymentMethod, &sale.SaleDate, &sale.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("update sale %d: %w", id, err)
	}
	return sale, nil
}

func (s *salesService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale %d not found", id)
	}
	return nil
}

// scanSale adapts a row scan function to a Sale's columns in saleColumns order.
func scanSale(scan func(...any) error, sale *Sale) error {
	return scan(&sale.ID, &sale.InvoiceNumber, &sale.TotalAmount, &sale.RemainingAmount,
		&sale.PaymentStatus, &sale.PaymentMethod, &sale.SaleDate, &sale.CreatedAt)
}
