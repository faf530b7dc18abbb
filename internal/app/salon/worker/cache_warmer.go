package worker

import (
	"context"

	"atakuafor/internal/app/salon/service"
	"atakuafor/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CacheWarmer keeps the catalog listings cached in Redis warm so the
// public pages rarely hit Postgres. It runs once on start and then on
// the configured cron schedule.
type CacheWarmer struct {
	cron    *cron.Cron
	catalog service.CatalogServiceInterface
}

func NewCacheWarmer(catalog service.CatalogServiceInterface) *CacheWarmer {
	return &CacheWarmer{
		cron:    cron.New(),
		catalog: catalog,
	}
}

func (w *CacheWarmer) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("Starting catalog cache warmer")

	_, err := w.cron.AddFunc(schedule, func() {
		w.warm(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()

	// initial warm so the cache is populated before the first request
	w.warm(ctx)

	return nil
}

func (w *CacheWarmer) Stop() {
	logger.Info().Msg("Stopping catalog cache warmer")
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Catalog cache warmer stopped")
}

func (w *CacheWarmer) GetEntries() []cron.Entry {
	return w.cron.Entries()
}

func (w *CacheWarmer) warm(ctx context.Context) {
	if _, err := w.catalog.GetAllServices(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to warm services cache")
	}
	if _, err := w.catalog.GetAllProducts(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to warm products cache")
	}
}
