// Package httpserver runs an http.Handler until its context is cancelled,
// then drains in-flight requests within a bounded shutdown window.
//
// It also provides the liveness and readiness handlers the edge exposes
// on /healthz and /readyz. Readiness runs named dependency checks (pg,
// redis) and reports each one.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
