package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/sport-shop/internal/core/domain"
	"github.com/niksmo/sport-shop/internal/core/port"
)

var _ port.CartStorage = (*CartRepository)(nil)

type CartRepository struct {
	sqldb sqldb
}

func NewCartRepository(sqldb sqldb) CartRepository {
	return CartRepository{sqldb}
}

// AddItem adds quantity of a product to the client's cart. The inventory
// check and the insert-or-increment run in one transaction, so a failed
// check leaves the cart untouched.
func (r CartRepository) AddItem(
	ctx context.Context, clientID int64, productID string, quantity int,
) (addErr error) {
	const op = "CartRepository.AddItem"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, classifyErr(err))
	}

	defer func() {
		if addErr == nil {
			if err := tx.Commit(); err != nil {
				addErr = fmt.Errorf(
					"%s: failed to commit: %w", op, classifyErr(err),
				)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	available, err := inventoryQuantity(ctx, tx, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if available < quantity {
		return fmt.Errorf("%s: %w", op, domain.ErrInsufficientQuantity)
	}

	query := `
		INSERT INTO cart (client_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity;`

	if _, err := tx.ExecContext(ctx, query, clientID, productID, quantity); err != nil {
		return fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	return nil
}

// SetItemQuantity sets an existing cart line to the exact quantity.
// A quantity of zero or below deletes the line.
func (r CartRepository) SetItemQuantity(
	ctx context.Context, clientID int64, productID string, quantity int,
) (setErr error) {
	const op = "CartRepository.SetItemQuantity"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, classifyErr(err))
	}

	defer func() {
		if setErr == nil {
			if err := tx.Commit(); err != nil {
				setErr = fmt.Errorf(
					"%s: failed to commit: %w", op, classifyErr(err),
				)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	lineQuery := `
		SELECT quantity FROM cart
		WHERE client_id = $1 AND product_id = $2
		FOR UPDATE;`

	var current int
	err = tx.QueryRowContext(ctx, lineQuery, clientID, productID).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, domain.ErrNotInCart)
		}
		return fmt.Errorf("%s: %w", op, classifyErr(err))
	}

	available, err := inventoryQuantity(ctx, tx, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if available < quantity {
		return fmt.Errorf("%s: %w", op, domain.ErrInsufficientQuantity)
	}

	if quantity <= 0 {
		query := `
			DELETE FROM cart
			WHERE client_id = $1 AND product_id = $2;`
		if _, err := tx.ExecContext(ctx, query, clientID, productID); err != nil {
			return fmt.Errorf("%s: %w", op, classifyErr(err))
		}
		return nil
	}

	query := `
		UPDATE cart SET quantity = $3
		WHERE client_id = $1 AND product_id = $2;`
	if _, err := tx.ExecContext(ctx, query, clientID, productID, quantity); err != nil {
		return fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	return nil
}

// RemoveItem deletes the cart line if present. Removing an absent line
// is not an error.
func (r CartRepository) RemoveItem(
	ctx context.Context, clientID int64, productID string,
) error {
	const op = "CartRepository.RemoveItem"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		DELETE FROM cart
		WHERE client_id = $1 AND product_id = $2;`

	if _, err := r.sqldb.ExecContext(ctx, query, clientID, productID); err != nil {
		return fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	return nil
}

// ListItems returns the client's cart lines in the order they were
// added, with the line total computed by the store.
func (r CartRepository) ListItems(
	ctx context.Context, clientID int64,
) ([]domain.CartItem, error) {
	const op = "CartRepository.ListItems"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT p.product_id, p.product_name, p.price, c.quantity,
		       (p.price * c.quantity) AS total, c.added_date
		FROM cart c
		JOIN products p ON c.product_id = p.product_id
		WHERE c.client_id = $1
		ORDER BY c.added_date;`

	rows, err := r.sqldb.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var items []domain.CartItem
	for rows.Next() {
		var v domain.CartItem
		err := rows.Scan(
			&v.ProductID, &v.Name, &v.Price,
			&v.Quantity, &v.LineTotal, &v.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, classifyErr(err))
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	return items, nil
}

// inventoryQuantity reads the on-hand quantity inside the caller's tx.
// FOR SHARE keeps the row stable until the mutation commits.
func inventoryQuantity(
	ctx context.Context, tx *sql.Tx, productID string,
) (int, error) {
	query := `
		SELECT quantity FROM inventory
		WHERE product_id = $1
		FOR SHARE;`

	var quantity int
	err := tx.QueryRowContext(ctx, query, productID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, classifyErr(err)
	}
	return quantity, nil
}
