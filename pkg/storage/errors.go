package storage

import "errors"

var (
	ErrEmptyKey     = errors.New("storage: empty key")
	ErrEncode       = errors.New("storage: failed to encode value")
	ErrDecode       = errors.New("storage: failed to decode value")
	ErrBackend      = errors.New("storage: backend failure")
	ErrConflict     = errors.New("storage: concurrent update did not settle")
	ErrInvalidValue = errors.New("storage: destination must be a non-nil pointer")
)
