package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	store   *cart.Store
	out     io.Writer

	closers []func()
}

func openApp(ctx context.Context, cmd *cli.Command) (*app, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("cfg.Log.NewLogger: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		out:    cmd.Root().Writer,
	}
	a.closers = append(a.closers, func() { _ = logger.Sync() })

	a.catalog, err = catalog.Load(cfg.Catalog.Path)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}

	snapshot, err := a.openSnapshot(ctx)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("openSnapshot: %w", err)
	}

	a.store = cart.New(ctx, snapshot, cart.WithLogger(logger.Named("cart")))

	return a, nil
}

func (a *app) openSnapshot(ctx context.Context) (port.CartSnapshotStore, error) {
	switch a.cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, a.cfg.Store.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		repo, err := repository.NewCart(pool)
		if err != nil {
			return nil, fmt.Errorf("repository.NewCart: %w", err)
		}

		return repository.NewOwnerSlot(repo, a.cfg.Store.OwnerID)

	default:
		sqlDB, err := repository.OpenSQLite(a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("repository.OpenSQLite: %w", err)
		}
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })

		return repository.NewLocalSlot(ctx, sqlDB, a.cfg.Store.Key)
	}
}

// close runs closers in reverse order.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// withApp opens the app for the duration of one command action.
func withApp(fn func(ctx context.Context, cmd *cli.Command, a *app) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		a, err := openApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.close()

		return fn(ctx, cmd, a)
	}
}

// optional returns nil when the flag was not given, so an unset variant stays distinct from an empty one.
func optional(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}
