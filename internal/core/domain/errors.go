package domain

import "errors"

var (
	ErrNotAuthenticated     = errors.New("user not logged in")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientQuantity = errors.New("not enough quantity available")
	ErrNotInCart            = errors.New("product not in cart")

	// ErrStorage wraps any store failure outside the taxonomy above.
	ErrStorage = errors.New("storage failure")
)
