// seed is a one-shot tool that loads demo data into an empty database: an
// admin user plus a small set of sales, inventory movements, customers, and
// suppliers so the reports page has something to show.
//
// Usage: ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"

	"stockbooks/internal/db"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Creating admin user...")
	_, err = tx.Exec(ctx, `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ('admin', 'admin@example.com', $1, 'admin')
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, string(hash))
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("Seeding sales...")
	_, err = tx.Exec(ctx, `
		INSERT INTO sales (invoice_number, total_amount, remaining_amount, payment_status, payment_method, sale_date) VALUES
			('INV-1001', 1500.00,   0.00, 'PAID',    'CASH',     now() - interval '40 days'),
			('INV-1002', 2400.00, 900.00, 'PARTIAL', 'TRANSFER', now() - interval '25 days'),
			('INV-1003',  780.00, 780.00, 'PENDING', 'CREDIT',   now() - interval '12 days'),
			('INV-1004', 3200.00,   0.00, 'PAID',    'CARD',     now() - interval '6 days'),
			('INV-1005',  450.00, 450.00, 'PENDING', 'CREDIT',   now() - interval '2 days')
	`)
	if err != nil {
		log.Fatalf("Failed to seed sales: %v", err)
	}

	log.Println("Seeding inventory movements...")
	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_movements (movement_type, quantity, unit_price, purchase_price, payment_status, occurred_at) VALUES
			('IN',  100, 12.50, 12.50, 'PAID',    now() - interval '35 days'),
			('IN',   50, 30.00, 30.00, 'PENDING', now() - interval '20 days'),
			('OUT',  40, 25.00,  0.00, 'PAID',    now() - interval '15 days'),
			('IN',   25,  0.00, 18.00, 'PARTIAL', now() - interval '8 days')
	`)
	if err != nil {
		log.Fatalf("Failed to seed inventory movements: %v", err)
	}

	log.Println("Seeding customers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO customers (name, email, phone, outstanding_balance) VALUES
			('Blue Harbor Trading', 'orders@blueharbor.example', '555-0101', 1230.00),
			('Ridgeline Retail',    'ap@ridgeline.example',      '555-0102',    0.00),
			('Kestrel & Sons',      'info@kestrel.example',      '555-0103',  450.00)
	`)
	if err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}

	log.Println("Seeding suppliers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO suppliers (name, email, phone, outstanding_balance, total_purchases, total_paid, last_payment_date) VALUES
			('Meridian Wholesale', 'sales@meridian.example', '555-0201', 600.00, 4200.00, 3600.00, now() - interval '10 days'),
			('Northgate Supply',   'ap@northgate.example',   '555-0202',   0.00, 1500.00, 1500.00, now() - interval '30 days'),
			('Cobalt Imports',     'hello@cobalt.example',   '555-0203', 950.00,  950.00,    0.00, NULL)
	`)
	if err != nil {
		log.Fatalf("Failed to seed suppliers: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	log.Println("Seed complete.")
}
