package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/sport-shop/internal/core/domain"
	"github.com/niksmo/sport-shop/internal/core/port"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

// ListAvailable returns every product with on-hand quantity above zero,
// joined with its category, ordered by category name then product name.
func (r ProductsRepository) ListAvailable(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ListAvailable"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT p.product_id, p.product_name, p.price,
		       c.category_name, i.quantity
		FROM products p
		JOIN categories c ON p.category_id = c.category_id
		JOIN inventory i ON p.product_id = i.product_id
		WHERE i.quantity > 0
		ORDER BY c.category_name, p.product_name;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var ps []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ProductID, &p.Name, &p.Price, &p.CategoryName, &p.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, classifyErr(err))
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	return ps, nil
}
