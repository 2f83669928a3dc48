package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/httpserver"
	"github.com/mcucsya/portal/pkg/logger"
	"github.com/mcucsya/portal/pkg/pg"
	"github.com/mcucsya/portal/pkg/redis"
	"github.com/mcucsya/portal/pkg/siteconfig"
	"github.com/mcucsya/portal/pkg/storage"
)

type stores struct {
	members  membership.MemberStore
	contacts membership.ContactStore
	checks   []httpserver.Check
	close    func()
}

func openStores(ctx context.Context, driver string, site *siteconfig.Site, log *slog.Logger) (stores, error) {
	switch driver {
	case StoreRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return stores{}, fmt.Errorf("load redis config: %w", err)
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		kv := membership.NewKVStore(storage.NewRedis(client, cfg.KeyPrefix), site.Storage.Members, site.Storage.Contacts)
		return stores{
			members:  kv,
			contacts: kv,
			checks:   []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}},
			close: func() {
				if err := client.Close(); err != nil {
					log.Error("failed to close redis client", logger.Error(err))
				}
			},
		}, nil

	case StorePostgres:
		pool, cfg, err := connectPG(ctx)
		if err != nil {
			return stores{}, err
		}
		if err := membership.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return stores{}, err
		}
		store := membership.NewPGStore(pool)
		return stores{
			members:  store,
			contacts: store,
			checks:   []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}},
			close:    pool.Close,
		}, nil

	default:
		log.Warn("using in-memory store, data is lost on restart", logger.Component("storage"))
		kv := membership.NewKVStore(storage.NewMemory(), site.Storage.Members, site.Storage.Contacts)
		return stores{members: kv, contacts: kv, close: func() {}}, nil
	}
}
