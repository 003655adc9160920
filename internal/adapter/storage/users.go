package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niksmo/sport-shop/internal/core/domain"
	"github.com/niksmo/sport-shop/internal/core/port"
)

var _ port.UsersStorage = (*UsersRepository)(nil)

type UsersRepository struct {
	sqldb sqldb
}

func NewUsersRepository(sqldb sqldb) UsersRepository {
	return UsersRepository{sqldb}
}

// FindByCredentials matches email and password exactly, as stored.
// Passwords are plaintext in this schema.
func (r UsersRepository) FindByCredentials(
	ctx context.Context, email, password string,
) (domain.User, error) {
	const op = "UsersRepository.FindByCredentials"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT client_id, first_name, last_name, email
		FROM users
		WHERE email = $1 AND password = $2;`

	var u domain.User
	err := r.sqldb.QueryRowContext(ctx, query, email, password).Scan(
		&u.ClientID, &u.FirstName, &u.LastName, &u.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf(
				"%s: %w", op, domain.ErrNotAuthenticated,
			)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, classifyErr(err))
	}
	return u, nil
}
