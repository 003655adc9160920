package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type SeedRepository struct {
	sqldb sqldb
}

func NewSeedRepository(sqldb sqldb) SeedRepository {
	return SeedRepository{sqldb}
}

// Seed inserts the sample retail fixture in one transaction. Rows that
// already exist are skipped, so running the seeder twice is harmless.
func (r SeedRepository) Seed(ctx context.Context) (seedErr error) {
	const op = "SeedRepository.Seed"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if seedErr == nil {
			if err := tx.Commit(); err != nil {
				seedErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	tables := []struct {
		name  string
		query string
		rows  [][]any
	}{
		{"users", usersQuery, userRows},
		{"categories", categoriesQuery, categoryRows},
		{"suppliers", suppliersQuery, supplierRows},
		{"products", productsQuery, productRows},
		{"inventory", inventoryQuery, inventoryRows},
		{"discounts", discountsQuery, discountRows},
	}

	for _, t := range tables {
		if err := r.insertRows(ctx, tx, t.query, t.rows); err != nil {
			return fmt.Errorf("%s: %s: %w", op, t.name, err)
		}
		log.Info("table seeded", "table", t.name, "nRows", len(t.rows))
	}
	return nil
}

func (r SeedRepository) insertRows(
	ctx context.Context, tx *sql.Tx, query string, rows [][]any,
) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare stmt: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			slog.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to exec: %w", err)
		}
	}
	return nil
}

const (
	usersQuery = `
		INSERT INTO users (client_id, first_name, last_name, email, password)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id) DO NOTHING;`

	categoriesQuery = `
		INSERT INTO categories (category_id, category_name)
		VALUES ($1, $2)
		ON CONFLICT (category_id) DO NOTHING;`

	suppliersQuery = `
		INSERT INTO suppliers (
			supplier_id, supplier_name, contact_person,
			email, phone_number, address, responsible_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (supplier_id) DO NOTHING;`

	productsQuery = `
		INSERT INTO products (
			product_id, product_name, price, category_id, supplier_id
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id) DO NOTHING;`

	inventoryQuery = `
		INSERT INTO inventory (
			product_id, quantity, reorder_level, reorder_quantity
		)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id) DO NOTHING;`

	discountsQuery = `
		INSERT INTO discounts (
			discount_id, percentage, discount_type, start_date, stop_date
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (discount_id) DO NOTHING;`
)

// The sample fixture. Some product rows reference category and supplier
// codes outside the seeded ranges; the fixture is preserved as-is and
// the schema declares no foreign key there.
var (
	userRows = [][]any{
		{int64(15765543), "Emily", "Williams", "emily1@example.com", "emilyclient"},
		{int64(15765544), "Emma", "Johnson", "emmaj@example.com", "emmaclient"},
		{int64(15765545), "Michael", "Williams", "michaelw@example.com", "michaelclient"},
		{int64(15765546), "Sophia", "Brown", "sophiab@example.com", "sophiaclient"},
		{int64(15765547), "Christopher", "Jones", "chrisj@example.com", "chrisclient"},
		{int64(15765548), "Olivia", "Garcia", "oliviag@example.com", "oliviaclient"},
	}

	categoryRows = [][]any{
		{"01CAT", "Athletic Clothing"},
		{"02CAT", "Running Gear"},
		{"03CAT", "Fitness Equipment"},
		{"04CAT", "Team Sports"},
		{"05CAT", "Yoga & Pilates"},
		{"06CAT", "Cycling Gear"},
		{"07CAT", "Outdoor Recreation"},
		{"08CAT", "Gym Accessories"},
		{"09CAT", "Water Sports Gear"},
		{"10CAT", "Hiking & Camping Gear"},
	}

	supplierRows = [][]any{
		{"01SUP", "Tech Innovations", "Adam Smith", "info@techinnov.com",
			"+14085551234", "123 Tech Street, Silicon Valley, USA", int64(1010)},
		{"02SUP", "GymFitPro", "Sarah Johnson", "sarah@gymfitpro.com",
			"+13239876543", "456 Fitness Avenue, Los Angeles, USA", int64(100)},
		{"03SUP", "Sportsworld", "Mike Davis", "mike@sportsworld.com",
			"+15551234567", "789 Sports Plaza, New York, USA", int64(1010)},
	}

	productRows = [][]any{
		{"01PROD", "Treadmill", 1200.00, "03CAT", "02SUP"},
		{"02PROD", "Running Shoes", 80.00, "12CAT", "15SUP"},
		{"03PROD", "Yoga Mat", 30.00, "05CAT", "09SUP"},
		{"04PROD", "Soccer Ball", 25.00, "04CAT", "03SUP"},
		{"05PROD", "Mountain Bike", 600.00, "10CAT", "08SUP"},
		{"06PROD", "Protein Powder", 40.00, "18CAT", "14SUP"},
		{"07PROD", "Swimming Goggles", 15.00, "09CAT", "03SUP"},
		{"08PROD", "Camping Tent", 150.00, "10CAT", "19SUP"},
		{"09PROD", "Basketball", 30.00, "04CAT", "03SUP"},
		{"10PROD", "Winter Jacket", 100.00, "11CAT", "18SUP"},
	}

	inventoryRows = [][]any{
		{"01PROD", 100, 35, 100},
		{"02PROD", 200, 50, 150},
		{"03PROD", 150, 40, 120},
		{"04PROD", 300, 60, 200},
		{"05PROD", 60, 40, 80},
		{"06PROD", 80, 40, 60},
		{"07PROD", 250, 120, 180},
		{"08PROD", 180, 110, 130},
		{"09PROD", 90, 45, 70},
		{"10PROD", 400, 80, 250},
	}

	discountRows = [][]any{
		{"01DIS", 0.5, "Black Friday", "2023-11-24", "2023-11-26"},
		{"02DIS", 0.25, "Season Sales", "2023-06-01", "2023-08-31"},
		{"03DIS", 0.1, "Last Pieces", "2023-10-01", "2023-10-15"},
	}
)
