package health

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"linka/infras/metrics"
	"linka/infras/otel"
	"linka/shared/constant"
	"linka/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type Handler struct {
	db       Pinger
	cache    Pinger
	metrics  *metrics.Metrics
	otel     otel.Otel
	draining *atomic.Bool
}

func New(db Pinger, cache Pinger, metrics *metrics.Metrics, otel otel.Otel) Handler {
	return Handler{
		db:       db,
		cache:    cache,
		metrics:  metrics,
		otel:     otel,
		draining: &atomic.Bool{},
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Check)
		routerGroup.Handle("/metrics", handler.metrics.Handler())
	})
}

// Drain makes the health check fail so load balancers stop routing here.
func (handler *Handler) Drain() {
	handler.draining.Store(true)
}

// Check reports whether the database and cache are reachable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[health.Status]
// @Failure 503 {object} response.Message
// @Router /api/health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	if handler.draining.Load() {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := Status{Database: "up", Cache: "up"}
	healthy := true

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database health check failed")

		status.Database = "down"
		healthy = false
	}

	if err := handler.cache.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("cache health check failed")

		status.Cache = "down"
		healthy = false
	}

	if !healthy {
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
