package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"lifeplan-engine/internal/cache"
	"lifeplan-engine/internal/config"
	"lifeplan-engine/internal/handler"
	"lifeplan-engine/internal/metrics"
	"lifeplan-engine/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	projections := service.NewProjectionService(cache.New(cfg), m)
	h := handler.New(projections, m)

	log.Printf("Lifeplan engine starting on %s", cfg.Addr())
	if err := fasthttp.ListenAndServe(cfg.Addr(), h.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
