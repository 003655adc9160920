package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/sport-shop/config"
	"github.com/niksmo/sport-shop/internal/app"
	"github.com/niksmo/sport-shop/internal/core/domain"
	"github.com/niksmo/sport-shop/pkg/sigctx"
)

// Walks through one shop session: login, browse the catalog,
// then add, view, update and remove a cart line.
func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	application := app.New(sigCtx, cfg)
	defer application.Close()

	if err := runSession(sigCtx, application); err != nil {
		slog.Error("session failed", "err", err)
	}
}

func runSession(ctx context.Context, application *app.App) error {
	shop := application.Shop

	sess, err := shop.Login(ctx, "emily1@example.com", "emilyclient")
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			fmt.Println("Login failed")
			return nil
		}
		return err
	}
	fmt.Printf("Welcome %s!\n", sess.FirstName)

	fmt.Println("\nAvailable Products:")
	products, err := shop.ListAvailableProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("ID: %s, Name: %s, Price: $%.2f, Category: %s, Available: %d\n",
			p.ProductID, p.Name, p.Price, p.CategoryName, p.Quantity)
	}

	fmt.Println("\nAdding product to cart...")
	if err := shop.AddToCart(ctx, sess, "01PROD", 1); err != nil {
		return err
	}

	fmt.Println("\nViewing cart...")
	if err := printCart(ctx, application, sess); err != nil {
		return err
	}

	fmt.Println("\nUpdating cart quantity...")
	if err := shop.UpdateCartQuantity(ctx, sess, "01PROD", 2); err != nil {
		return err
	}

	fmt.Println("\nViewing updated cart...")
	if err := printCart(ctx, application, sess); err != nil {
		return err
	}

	fmt.Println("\nRemoving product from cart...")
	if err := shop.RemoveFromCart(ctx, sess, "01PROD"); err != nil {
		return err
	}
	return nil
}

func printCart(
	ctx context.Context, application *app.App, sess domain.Session,
) error {
	items, err := application.Shop.ViewCart(ctx, sess)
	if err != nil {
		return err
	}
	for _, v := range items {
		fmt.Printf("Product: %s, Quantity: %d, Price: $%.2f, Total: $%.2f\n",
			v.Name, v.Quantity, v.Price, v.LineTotal)
	}
	return nil
}
