package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niksmo/sport-shop/internal/core/domain"
)

// classifyErr converts driver-level failures into the domain taxonomy.
// A foreign-key violation on a cart write means the referenced product
// row is gone; everything else is an opaque storage failure.
func classifyErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrProductNotFound
	}
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}
