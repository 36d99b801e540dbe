package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryService provides inventory movement CRUD for the dashboard.
type InventoryService interface {
	List(ctx context.Context) ([]InventoryMovement, error)
	Get(ctx context.Context, id int) (*InventoryMovement, error)
	Create(ctx context.Context, input InventoryMovement) (*InventoryMovement, error)
	Update(ctx context.Context, id int, input InventoryMovement) (*InventoryMovement, error)
	Delete(ctx context.Context, id int) error
}

type inventoryService struct {
	pool *pgxpool.Pool
}

// NewInventoryService constructs an InventoryService backed by PostgreSQL.
func NewInventoryService(pool *pgxpool.Pool) InventoryService {
	return &inventoryService{pool: pool}
}

const movementColumns = `id, movement_type, quantity, unit_price, purchase_price, payment_status, occurred_at, created_at`

func scanMovement(scan func(...any) error, m *InventoryMovement) error {
	return scan(&m.ID, &m.MovementType, &m.Quantity, &m.UnitPrice, &m.PurchasePrice,
		&m.PaymentStatus, &m.OccurredAt, &m.CreatedAt)
}

func (s *inventoryService) List(ctx context.Context) ([]InventoryMovement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM inventory_movements
		ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()

	var movements []InventoryMovement
	for rows.Next() {
		var m InventoryMovement
		if err := scanMovement(rows.Scan, &m); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (s *inventoryService) Get(ctx context.Context, id int) (*InventoryMovement, error) {
	m := &InventoryMovement{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+movementColumns+`
		FROM inventory_movements
		WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.MovementType, &m.Quantity, &m.UnitPrice, &m.PurchasePrice,
		&m.PaymentStatus, &m.OccurredAt, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inventory movement %d not found: %w", id, err)
	}
	return m, nil
}

func (s *inventoryService) Create(ctx context.Context, input InventoryMovement) (*InventoryMovement, error) {
	if input.MovementType != MovementIn && input.MovementType != MovementOut {
		return nil, fmt.Errorf("invalid movement type %q", input.MovementType)
	}

	m := &InventoryMovement{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO inventory_movements (movement_type, quantity, unit_price, purchase_price, payment_status, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+movementColumns,
		input.MovementType, input.Quantity, input.UnitPrice, input.PurchasePrice,
		input.PaymentStatus, input.OccurredAt,
	).Scan(&m.ID, &m.MovementType, &m.Quantity, &m.UnitPrice, &m.PurchasePrice,
		&m.PaymentStatus, &m.OccurredAt, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create inventory movement: %w", err)
	}
	return m, nil
}

func (s *inventoryService) Update(ctx context.Context, id int, input InventoryMovement) (*InventoryMovement, error) {
	m := &InventoryMovement{}
	err := s.pool.QueryRow(ctx, `
		UPDATE inventory_movements
		SET movement_type = $2, quantity = $3, unit_price = $4,
		    purchase_price = $5, payment_status = $6, occurred_at = $7
		WHERE id = $1
		RETURNING `+movementColumns,
		id, input.MovementType, input.Quantity, input.UnitPrice, input.PurchasePrice,
		input.PaymentStatus, input.OccurredAt,
	).Scan(&m.ID, &m.MovementType, &m.Quantity, &m.UnitPrice, &m.PurchasePrice,
		&m.PaymentStatus, &m.OccurredAt, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("update inventory movement %d: %w", id, err)
	}
	return m, nil
}

func (s *inventoryService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM inventory_movements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete inventory movement %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory movement %d not found", id)
	}
	return nil
}
