// Package httpserver runs the portal's HTTP server with configured timeouts
// and graceful shutdown on context cancellation, SIGINT or SIGTERM.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness and Readiness build the /health/live and /health/ready probes.
// Readiness runs named dependency checks such as the store ping.
package httpserver
