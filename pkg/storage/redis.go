package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const (
	scanBatchSize     = 500
	maxUpdateAttempts = 8
)

// Redis is a Store backed by a Redis server. Keys are namespaced with prefix.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

func (r *Redis) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	b, err := encode(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), b, 0).Err(); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	if err := resetDst(dst); err != nil {
		return false, err
	}
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrBackend, err)
	}
	return true, decode(b, dst)
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}

// Clear deletes the keys under the prefix with SCAN so the server is never
// blocked by KEYS or FLUSHDB.
func (r *Redis) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrBackend, err)
		}
		if len(batch) > 0 {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Join(ErrBackend, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *Redis) Available(ctx context.Context) bool {
	return r.client.Ping(ctx).Err() == nil
}

func (r *Redis) Update(ctx context.Context, key string, dst any, fn func(found bool) error) error {
	if key == "" {
		return ErrEmptyKey
	}
	k := r.key(key)

	txf := func(tx *redis.Tx) error {
		if err := resetDst(dst); err != nil {
			return err
		}
		b, err := tx.Get(ctx, k).Bytes()
		found := true
		switch {
		case errors.Is(err, redis.Nil):
			found = false
		case err != nil:
			return errors.Join(ErrBackend, err)
		default:
			if err := decode(b, dst); err != nil {
				return err
			}
		}

		if err := fn(found); err != nil {
			return err
		}
		out, err := encode(dst)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, out, 0)
			return nil
		})
		return err
	}

	for range maxUpdateAttempts {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}
