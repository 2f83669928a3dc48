package ratelimit

import (
	"fmt"
	"time"
)

// Config sets the token bucket shared by all keys.
type Config struct {
	// RPS is the sustained number of requests per second.
	RPS float64 `env:"RATE_LIMIT_RPS" envDefault:"0.5"`
	// Burst is the bucket size.
	Burst   int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
	IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
}

func (c Config) validate() error {
	if c.RPS <= 0 || c.Burst <= 0 {
		return fmt.Errorf("%w: rps=%v burst=%d", ErrInvalidLimit, c.RPS, c.Burst)
	}
	return nil
}
