// Package redis connects to Redis with go-redis and exposes a readiness
// check. The portal uses it as one of the storage backends (see package
// storage) when STORE_DRIVER=redis.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
package redis
