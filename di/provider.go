package di

import (
	"context"

	"linka/config"
	"linka/infras/metrics"
	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/handlers/health"
	"linka/shared/cache"
	"linka/shared/event"
	"linka/transport/http"
	"linka/transport/http/router"
	"linka/transport/ws"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func provideHealth(db *postgres.Connection, redisCache cache.RedisCache, m *metrics.Metrics, otl otel.Otel) health.Handler {
	return health.New(db, redisCache, m, otl)
}

// provideServer starts the event hub and ties its lifetime, the health
// check and every outbound connection to the server's shutdown sequence.
// Hooks run in order: pending events flush before the connections they need
// go away, and traces flush last.
func provideServer(
	cfg *config.Config,
	r router.Router,
	hub *ws.Hub,
	bus *event.Bus,
	db *postgres.Connection,
	redisClient *goRedis.Client,
	otl otel.Otel,
) *http.HTTP {
	server := http.New(cfg, r)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server.OnDrain(r.DomainHandlers.Health.Drain)
	server.OnClose(
		func(ctx context.Context) {
			if err := bus.Close(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to close event brokers")
			}
		},
		func(context.Context) { cancel() },
		func(context.Context) {
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close Redis client")
			}
		},
		func(context.Context) {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database connections")
			}
		},
		func(ctx context.Context) {
			if err := otl.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to flush traces")
			}
		},
	)

	return server
}
