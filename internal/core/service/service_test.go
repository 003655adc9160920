package service_test

import (
	"context"
	"testing"

	"github.com/niksmo/sport-shop/internal/core/domain"
	"github.com/niksmo/sport-shop/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUsersStorage struct {
	mock.Mock
}

func (m *MockUsersStorage) FindByCredentials(
	ctx context.Context, email, password string,
) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockProductsStorage struct {
	mock.Mock
}

func (m *MockProductsStorage) ListAvailable(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockCartStorage struct {
	mock.Mock
}

func (m *MockCartStorage) AddItem(
	ctx context.Context, clientID int64, productID string, quantity int,
) error {
	args := m.Called(ctx, clientID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartStorage) SetItemQuantity(
	ctx context.Context, clientID int64, productID string, quantity int,
) error {
	args := m.Called(ctx, clientID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartStorage) RemoveItem(
	ctx context.Context, clientID int64, productID string,
) error {
	args := m.Called(ctx, clientID, productID)
	return args.Error(0)
}

func (m *MockCartStorage) ListItems(
	ctx context.Context, clientID int64,
) ([]domain.CartItem, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func newService() (
	service.ShopService,
	*MockUsersStorage, *MockProductsStorage, *MockCartStorage,
) {
	users := new(MockUsersStorage)
	products := new(MockProductsStorage)
	cart := new(MockCartStorage)
	return service.New(users, products, cart), users, products, cart
}

var testSession = domain.Session{
	ClientID: 15765543, FirstName: "Emily", LastName: "Williams",
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, users, _, _ := newService()
		users.On(
			"FindByCredentials", t.Context(), "emily1@example.com", "emilyclient",
		).Return(domain.User{
			ClientID:  15765543,
			FirstName: "Emily",
			LastName:  "Williams",
			Email:     "emily1@example.com",
		}, nil)

		sess, err := s.Login(t.Context(), "emily1@example.com", "emilyclient")
		require.NoError(t, err)
		assert.Equal(t, testSession, sess)
		assert.True(t, sess.Authenticated())
	})

	t.Run("NoMatch", func(t *testing.T) {
		s, users, _, _ := newService()
		users.On(
			"FindByCredentials", t.Context(), "emily1@example.com", "wrong",
		).Return(domain.User{}, domain.ErrNotAuthenticated)

		sess, err := s.Login(t.Context(), "emily1@example.com", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		assert.False(t, sess.Authenticated())
	})
}

func TestListAvailableProducts(t *testing.T) {
	s, _, products, _ := newService()
	want := []domain.Product{
		{
			ProductID:    "01PROD",
			Name:         "Treadmill",
			Price:        1200.00,
			CategoryName: "Fitness Equipment",
			Quantity:     100,
		},
	}
	products.On("ListAvailable", t.Context()).Return(want, nil)

	got, err := s.ListAvailableProducts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionGate(t *testing.T) {
	noSession := domain.Session{}

	t.Run("AddToCart", func(t *testing.T) {
		s, _, _, cart := newService()
		err := s.AddToCart(t.Context(), noSession, "01PROD", 1)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		cart.AssertNotCalled(t, "AddItem")
	})

	t.Run("UpdateCartQuantity", func(t *testing.T) {
		s, _, _, cart := newService()
		err := s.UpdateCartQuantity(t.Context(), noSession, "01PROD", 2)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		cart.AssertNotCalled(t, "SetItemQuantity")
	})

	t.Run("RemoveFromCart", func(t *testing.T) {
		s, _, _, cart := newService()
		err := s.RemoveFromCart(t.Context(), noSession, "01PROD")
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		cart.AssertNotCalled(t, "RemoveItem")
	})

	t.Run("ViewCart", func(t *testing.T) {
		s, _, _, cart := newService()
		_, err := s.ViewCart(t.Context(), noSession)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		cart.AssertNotCalled(t, "ListItems")
	})
}

func TestAddToCart(t *testing.T) {
	t.Run("Delegates", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"AddItem", t.Context(), testSession.ClientID, "01PROD", 1,
		).Return(nil)

		err := s.AddToCart(t.Context(), testSession, "01PROD", 1)
		require.NoError(t, err)
		cart.AssertExpectations(t)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"AddItem", t.Context(), testSession.ClientID, "99PROD", 1,
		).Return(domain.ErrProductNotFound)

		err := s.AddToCart(t.Context(), testSession, "99PROD", 1)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("InsufficientQuantity", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"AddItem", t.Context(), testSession.ClientID, "01PROD", 101,
		).Return(domain.ErrInsufficientQuantity)

		err := s.AddToCart(t.Context(), testSession, "01PROD", 101)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	})
}

func TestUpdateCartQuantity(t *testing.T) {
	t.Run("Delegates", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"SetItemQuantity", t.Context(), testSession.ClientID, "01PROD", 2,
		).Return(nil)

		err := s.UpdateCartQuantity(t.Context(), testSession, "01PROD", 2)
		require.NoError(t, err)
		cart.AssertExpectations(t)
	})

	t.Run("NotInCart", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"SetItemQuantity", t.Context(), testSession.ClientID, "02PROD", 2,
		).Return(domain.ErrNotInCart)

		err := s.UpdateCartQuantity(t.Context(), testSession, "02PROD", 2)
		assert.ErrorIs(t, err, domain.ErrNotInCart)
	})
}

func TestRemoveFromCart(t *testing.T) {
	s, _, _, cart := newService()
	cart.On(
		"RemoveItem", t.Context(), testSession.ClientID, "01PROD",
	).Return(nil)

	err := s.RemoveFromCart(t.Context(), testSession, "01PROD")
	require.NoError(t, err)
	cart.AssertExpectations(t)
}

func TestViewCart(t *testing.T) {
	t.Run("WithItems", func(t *testing.T) {
		s, _, _, cart := newService()
		want := []domain.CartItem{
			{
				ProductID: "01PROD",
				Name:      "Treadmill",
				Price:     1200.00,
				Quantity:  2,
				LineTotal: 2400.00,
			},
		}
		cart.On("ListItems", t.Context(), testSession.ClientID).Return(want, nil)

		got, err := s.ViewCart(t.Context(), testSession)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Empty", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"ListItems", t.Context(), testSession.ClientID,
		).Return([]domain.CartItem(nil), nil)

		got, err := s.ViewCart(t.Context(), testSession)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		s, _, _, cart := newService()
		cart.On(
			"ListItems", t.Context(), testSession.ClientID,
		).Return([]domain.CartItem(nil), domain.ErrStorage)

		_, err := s.ViewCart(t.Context(), testSession)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}
