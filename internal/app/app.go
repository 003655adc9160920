package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/sport-shop/config"
	"github.com/niksmo/sport-shop/internal/adapter/storage"
	"github.com/niksmo/sport-shop/internal/core/service"
)

type App struct {
	cfg  config.Config
	db   storage.SQLDB
	Shop service.ShopService
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initStorage(ctx)
	app.initCoreService()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage(ctx context.Context) {
	const op = "App.initStorage"

	db, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.db = db
}

func (app *App) initCoreService() {
	app.Shop = service.New(
		storage.NewUsersRepository(app.db),
		storage.NewProductsRepository(app.db),
		storage.NewCartRepository(app.db),
	)
}

func (app *App) Close() {
	slog.Info("application is closing...")

	app.db.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
