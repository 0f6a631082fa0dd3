package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/infrastructure"
	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/JaimeStill/superbowl/pkg/middleware"
)

// buildMiddleware assembles the global stack. The returned limiter is nil
// when rate limiting is disabled.
func buildMiddleware(
	infra *infrastructure.Infrastructure,
	reg *prometheus.Registry,
	cfg *config.Config,
) (middleware.System, *rateLimit, error) {
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, nil, err
	}

	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}

	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.Logger(infra.Logger))
	mw.Use(middleware.CORS(&cfg.CORS))
	mw.Use(metrics.Handler)

	if !cfg.RateLimit.Enabled {
		return mw, nil, nil
	}

	limiter := &rateLimit{
		RateLimiter: middleware.NewRateLimiter(&cfg.RateLimit, infra.Logger),
		every:       cfg.RateLimit.IdleDuration(),
	}
	mw.Use(limiter.Handler)
	return mw, limiter, nil
}

// rateLimit prunes idle client limiters until shutdown.
type rateLimit struct {
	*middleware.RateLimiter
	every time.Duration
}

func (r *rateLimit) Start(lc *lifecycle.Coordinator) {
	lc.OnShutdown(func() {
		ticker := time.NewTicker(r.every)
		defer ticker.Stop()
		for {
			select {
			case <-lc.Context().Done():
				return
			case <-ticker.C:
				r.Prune()
			}
		}
	})
}
