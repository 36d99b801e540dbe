package app

import (
	"context"

	"stockbooks/internal/core"
)

// UserSession identifies an authenticated user.
type UserSession struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ApplicationService is the single interface the web adapter calls. It
// decouples presentation from business logic; implementations contain no
// display logic of any kind.
type ApplicationService interface {
	// ListSales returns all sales, newest first.
	ListSales(ctx context.Context) ([]core.Sale, error)
	CreateSale(ctx context.Context, input core.Sale) (*core.Sale, error)
	UpdateSale(ctx context.Context, id int, input core.Sale) (*core.Sale, error)
	DeleteSale(ctx context.Context, id int) error

	// ListInventory returns all inventory movements, newest first.
	ListInventory(ctx context.Context) ([]core.InventoryMovement, error)
	CreateMovement(ctx context.Context, input core.InventoryMovement) (*core.InventoryMovement, error)
	UpdateMovement(ctx context.Context, id int, input core.InventoryMovement) (*core.InventoryMovement, error)
	DeleteMovement(ctx context.Context, id int) error

	ListCustomers(ctx context.Context) ([]core.Customer, error)
	CreateCustomer(ctx context.Context, input core.Customer) (*core.Customer, error)
	UpdateCustomer(ctx context.Context, id int, input core.Customer) (*core.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error

	ListSuppliers(ctx context.Context) ([]core.Supplier, error)
	CreateSupplier(ctx context.Context, input core.Supplier) (*core.Supplier, error)
	UpdateSupplier(ctx context.Context, id int, input core.Supplier) (*core.Supplier, error)
	DeleteSupplier(ctx context.Context, id int) error

	// GetAccountingReport fetches the four collections and runs the full
	// aggregation pipeline under the given filter. On fetch failure it still
	// returns the well-defined zeroed snapshot alongside the error, so
	// callers always have something displayable.
	GetAccountingReport(ctx context.Context, filter core.DateFilter) (*core.ReportSnapshot, error)

	// LatestReport returns the most recently completed snapshot, or nil when
	// no aggregation has finished yet. When refreshes overlap, the last
	// completed computation wins; stale results are discarded by sequence
	// comparison, never displayed.
	LatestReport() *core.ReportSnapshot

	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)

	// GetUser returns the user profile by ID.
	GetUser(ctx context.Context, userID int) (*core.User, error)
}

// ReportSource supplies the four fully materialized collections the
// aggregation runs over. The local database and a remote dashboard API both
// satisfy this.
type ReportSource interface {
	FetchReportInputs(ctx context.Context) (core.ReportInputs, error)
}
