package router

import (
	"linka/internal/handlers/auth"
	"linka/internal/handlers/booking"
	"linka/internal/handlers/health"
	"linka/internal/handlers/hotel"
	"linka/internal/handlers/ride"
	"linka/internal/handlers/user"
	"linka/transport/http/middleware"
	"linka/transport/ws"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health  health.Handler
	Auth    auth.Handler
	User    user.Handler
	Ride    ride.Handler
	Hotel   hotel.Handler
	Booking booking.Handler
	Events  ws.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.App.CORS())
	router.Use(r.App.Tracing)
	router.Use(r.App.Metrics)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)
		routerGroup.Use(r.App.Idempotency)

		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Ride.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Events.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
