package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v3"

	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/pg"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the Postgres member store schema",
		Description: `Connects to PG_CONN_URL and applies every pending migration of the
member store. serve does the same on start when STORE_DRIVER=postgres.`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			appCfg, err := loadAppConfig()
			if err != nil {
				return err
			}
			log := newLogger(appCfg)

			pool, cfg, err := connectPG(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := membership.Migrate(ctx, pool, cfg, log); err != nil {
				return err
			}
			log.InfoContext(ctx, "migrations applied")
			return nil
		},
	}
}

func connectPG(ctx context.Context) (*pgxpool.Pool, pg.Config, error) {
	var cfg pg.Config
	if err := config.Load(&cfg); err != nil {
		return nil, cfg, fmt.Errorf("load postgres config: %w", err)
	}
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	return pool, cfg, nil
}
