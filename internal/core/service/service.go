package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/sport-shop/internal/core/domain"
	"github.com/niksmo/sport-shop/internal/core/port"
)

var _ port.Authenticator = (*ShopService)(nil)
var _ port.ProductsLister = (*ShopService)(nil)
var _ port.CartManager = (*ShopService)(nil)

// ShopService is the shop access layer. Cart operations require a
// Session obtained from Login; the session is passed explicitly,
// there is no service-held current user.
type ShopService struct {
	users    port.UsersStorage
	products port.ProductsStorage
	cart     port.CartStorage
}

func New(
	users port.UsersStorage,
	products port.ProductsStorage,
	cart port.CartStorage,
) ShopService {
	return ShopService{users, products, cart}
}

func (s ShopService) Login(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "ShopService.Login"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", "clientID", u.ClientID)
	return domain.Session{
		ClientID:  u.ClientID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}

func (s ShopService) ListAvailableProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ShopService.ListAvailableProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.products.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s ShopService) AddToCart(
	ctx context.Context, sess domain.Session, productID string, quantity int,
) error {
	const op = "ShopService.AddToCart"

	if err := s.checkCall(ctx, sess); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.cart.AddItem(ctx, sess.ClientID, productID, quantity)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s ShopService) UpdateCartQuantity(
	ctx context.Context, sess domain.Session, productID string, quantity int,
) error {
	const op = "ShopService.UpdateCartQuantity"

	if err := s.checkCall(ctx, sess); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.cart.SetItemQuantity(ctx, sess.ClientID, productID, quantity)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s ShopService) RemoveFromCart(
	ctx context.Context, sess domain.Session, productID string,
) error {
	const op = "ShopService.RemoveFromCart"

	if err := s.checkCall(ctx, sess); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.cart.RemoveItem(ctx, sess.ClientID, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s ShopService) ViewCart(
	ctx context.Context, sess domain.Session,
) ([]domain.CartItem, error) {
	const op = "ShopService.ViewCart"

	if err := s.checkCall(ctx, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.cart.ListItems(ctx, sess.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s ShopService) checkCall(ctx context.Context, sess domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !sess.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return nil
}
