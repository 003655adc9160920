package domain

import "time"

type (
	// User is a seeded shop client. Immutable in this layer.
	User struct {
		ClientID  int64
		FirstName string
		LastName  string
		Email     string
	}

	// Session is the authenticated identity under which cart
	// operations execute. The zero value is unauthenticated.
	Session struct {
		ClientID  int64
		FirstName string
		LastName  string
	}

	// Product is a listing row: a product joined with its category
	// and the current on-hand quantity.
	Product struct {
		ProductID    string
		Name         string
		Price        float64
		CategoryName string
		Quantity     int
	}

	// CartItem is a cart view row with the line total computed
	// from price and quantity.
	CartItem struct {
		ProductID string
		Name      string
		Price     float64
		Quantity  int
		LineTotal float64
		AddedAt   time.Time
	}
)

func (s Session) Authenticated() bool {
	return s.ClientID != 0
}
