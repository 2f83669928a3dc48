package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v3"

	"github.com/mcucsya/portal/handler"
	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/clientip"
	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/email"
	"github.com/mcucsya/portal/pkg/environment"
	"github.com/mcucsya/portal/pkg/feature"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/httpserver"
	"github.com/mcucsya/portal/pkg/logger"
	"github.com/mcucsya/portal/pkg/metrics"
	"github.com/mcucsya/portal/pkg/ratelimit"
	"github.com/mcucsya/portal/pkg/requestid"
	"github.com/mcucsya/portal/pkg/siteconfig"
	"github.com/mcucsya/portal/views"
)

const (
	readinessTimeout     = 5 * time.Second
	rateLimitCleanupTick = time.Minute
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Action: func(ctx context.Context, _ *cli.Command) error {
			appCfg, err := loadAppConfig()
			if err != nil {
				return err
			}
			log := newLogger(appCfg)
			logger.SetAsDefault(log)

			site, err := loadSite(appCfg)
			if err != nil {
				return err
			}

			st, err := openStores(ctx, appCfg.StoreDriver, site, log)
			if err != nil {
				return err
			}
			defer st.close()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			router, err := newRouter(ctx, appCfg, site, st, log)
			if err != nil {
				return err
			}

			var srvCfg httpserver.Config
			if err := config.Load(&srvCfg); err != nil {
				return fmt.Errorf("load http config: %w", err)
			}
			return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, router)
		},
	}
}

// newRouter wires the membership service and the operational endpoints.
// The rate limiter cleanup runs until ctx is done.
func newRouter(ctx context.Context, appCfg AppConfig, site *siteconfig.Site, st stores, log *slog.Logger) (http.Handler, error) {
	vcfg, err := site.ValidationConfig()
	if err != nil {
		return nil, err
	}

	var flagCfg feature.Config
	if err := config.Load(&flagCfg); err != nil {
		return nil, fmt.Errorf("load feature config: %w", err)
	}
	flags, err := feature.NewMemoryProvider(site.FeatureFlags(), flagCfg.Overrides)
	if err != nil {
		return nil, err
	}

	var mailCfg email.Config
	if err := config.Load(&mailCfg); err != nil {
		return nil, fmt.Errorf("load email config: %w", err)
	}
	sender, err := email.New(mailCfg, log)
	if err != nil {
		return nil, err
	}

	svc, err := membership.NewService(site, form.New(vcfg), st.members, st.contacts,
		membership.WithFlags(flags),
		membership.WithNotifier(email.NewNotifier(sender, site.Organization.Acronym, site.Organization.Email)),
		membership.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	var rlCfg ratelimit.Config
	if err := config.Load(&rlCfg); err != nil {
		return nil, fmt.Errorf("load rate limit config: %w", err)
	}
	limiter, err := ratelimit.New(rlCfg)
	if err != nil {
		return nil, err
	}
	go limiter.RunCleanup(ctx, rateLimitCleanupTick)

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage(site),
		ErrorToast: views.ErrorToast,
	})

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(environment.Parse(appCfg.Env)),
		metrics.Middleware,
	)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, readinessTimeout, st.checks...))
	r.Handle("/metrics", metrics.Handler())

	r.Mount("/", membership.NewHTTP(svc,
		membership.WithErrorHandler(errorHandler),
		membership.WithSubmitMiddleware(ratelimit.Middleware(limiter, ratelimit.ClientIP)),
	).Handle())

	return r, nil
}
