package port

import (
	"context"

	"github.com/niksmo/sport-shop/internal/core/domain"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
}

type ProductsLister interface {
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
}

type CartManager interface {
	AddToCart(ctx context.Context, s domain.Session, productID string, quantity int) error
	UpdateCartQuantity(ctx context.Context, s domain.Session, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, s domain.Session, productID string) error
	ViewCart(ctx context.Context, s domain.Session) ([]domain.CartItem, error)
}

type UsersStorage interface {
	FindByCredentials(ctx context.Context, email, password string) (domain.User, error)
}

type ProductsStorage interface {
	ListAvailable(ctx context.Context) ([]domain.Product, error)
}

type CartStorage interface {
	AddItem(ctx context.Context, clientID int64, productID string, quantity int) error
	SetItemQuantity(ctx context.Context, clientID int64, productID string, quantity int) error
	RemoveItem(ctx context.Context, clientID int64, productID string) error
	ListItems(ctx context.Context, clientID int64) ([]domain.CartItem, error)
}
