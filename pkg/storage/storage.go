package storage

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
)

// Store is a JSON document store keyed by string.
type Store interface {
	// Set stores a JSON copy of value under key.
	Set(ctx context.Context, key string, value any) error
	// Get decodes the value under key into dst and reports whether it existed.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Remove(ctx context.Context, key string) error
	// Clear removes every key owned by the store.
	Clear(ctx context.Context) error
	// Available reports whether the backend currently answers.
	Available(ctx context.Context) bool
	// Update decodes key into dst (left zero when missing), calls fn and stores
	// dst when fn returns nil. An error from fn aborts without writing.
	Update(ctx context.Context, key string, dst any, fn func(found bool) error) error
}

func encode(value any) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return b, nil
}

func decode(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// resetDst zeroes the value dst points to so a retried decode starts clean.
func resetDst(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrInvalidValue
	}
	v.Elem().SetZero()
	return nil
}
