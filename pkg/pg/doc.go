// Package pg opens the PostgreSQL connection pool used by the member store
// when STORE_DRIVER=postgres, applies embedded goose migrations and
// classifies common driver errors.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, migrations.FS, log); err != nil {
//	    return err
//	}
//
// IsDuplicateKeyError and IsNotFoundError unwrap pgx errors so stores can map
// them onto their own sentinels.
package pg
