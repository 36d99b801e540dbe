package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerService provides customer master data CRUD.
type CustomerService interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int) (*Customer, error)
	Create(ctx context.Context, input Customer) (*Customer, error)
	Update(ctx context.Context, id int, input Customer) (*Customer, error)
	Delete(ctx context.Context, id int) error
}

type customerService struct {
	pool *pgxpool.Pool
}

// NewCustomerService constructs a CustomerService backed by PostgreSQL.
func NewCustomerService(pool *pgxpool.Pool) CustomerService {
	return &customerService{pool: pool}
}

const customerColumns = `id, name, email, phone, outstanding_balance, created_at`

func (s *customerService) List(ctx context.Context) ([]Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OutstandingBalance, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *customerService) Get(ctx context.Context, id int) (*Customer, error) {
	c := &Customer{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OutstandingBalance, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("customer %d not found: %w", id, err)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, input Customer) (*Customer, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	c := &Customer{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone, outstanding_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING `+customerColumns,
		input.Name, input.Email, input.Phone, input.OutstandingBalance,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OutstandingBalance, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create customer %q: %w", input.Name, err)
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, id int, input Customer) (*Customer, error) {
	c := &Customer{}
	err := s.pool.QueryRow(ctx, `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, outstanding_balance = $5
		WHERE id = $1
		RETURNING `+customerColumns,
		id, input.Name, input.Email, input.Phone, input.OutstandingBalance,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OutstandingBalance, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, err)
	}
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found", id)
	}
	return nil
}
