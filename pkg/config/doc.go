// Package config loads typed configuration structs from the process
// environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. The
// optional .env file in the working directory is read once, then each
// configuration type is parsed on first use and cached for the lifetime of
// the process:
//
//	type StoreConfig struct {
//	    Driver string `env:"STORE_DRIVER" envDefault:"memory"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// MustLoad panics instead of returning an error and suits wiring code in
// main. Parse bypasses both the .env file and the cache and reads from an
// explicit variable map, which keeps tests independent of the process
// environment. Reset drops the cache.
//
// Errors are sentinel values comparable with errors.Is: ErrParsingConfig and
// ErrNilPointer.
package config
