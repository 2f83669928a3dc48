package main

import (
	"fmt"
	"log/slog"

	"github.com/mcucsya/portal/pkg/clientip"
	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/logger"
	"github.com/mcucsya/portal/pkg/requestid"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type AppConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	Name           string `env:"APP_NAME" envDefault:"mcucsya-portal"`
	SiteConfigPath string `env:"SITE_CONFIG_PATH"`
	StoreDriver    string `env:"STORE_DRIVER" envDefault:"memory"`
}

func loadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, fmt.Errorf("load app config: %w", err)
	}
	switch cfg.StoreDriver {
	case StoreMemory, StoreRedis, StorePostgres:
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func newLogger(cfg AppConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
}

// loadSite reads the site document, falling back to the embedded one, and
// applies the validation overrides from the environment.
func loadSite(cfg AppConfig) (*siteconfig.Site, error) {
	var (
		site *siteconfig.Site
		err  error
	)
	if cfg.SiteConfigPath != "" {
		site, err = siteconfig.LoadFile(cfg.SiteConfigPath)
	} else {
		site, err = siteconfig.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}

	var overrides siteconfig.Overrides
	if err := config.Load(&overrides); err != nil {
		return nil, fmt.Errorf("load validation overrides: %w", err)
	}
	if overrides.IsZero() {
		return site, nil
	}
	return site.WithOverrides(overrides)
}
