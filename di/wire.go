//go:build wireinject
// +build wireinject

package di

import (
	"linka/config"
	"linka/infras/identity"
	"linka/infras/jwt"
	"linka/infras/metrics"
	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/infras/redis"
	"linka/infras/s3"
	"linka/permissions"
	"linka/shared/cache"
	"linka/shared/event"
	"linka/transport/http"
	"linka/transport/http/middleware"
	"linka/transport/http/router"
	"linka/transport/ws"

	accommodationRepository "linka/internal/domains/accommodation/repository"
	accommodationService "linka/internal/domains/accommodation/service"
	authService "linka/internal/domains/auth/service"
	bookingRepository "linka/internal/domains/booking/repository"
	bookingService "linka/internal/domains/booking/service"
	rideRepository "linka/internal/domains/ride/repository"
	rideService "linka/internal/domains/ride/service"
	sessionRepository "linka/internal/domains/session/repository"
	userRepository "linka/internal/domains/user/repository"
	userService "linka/internal/domains/user/service"

	authHandler "linka/internal/handlers/auth"
	bookingHandler "linka/internal/handlers/booking"
	hotelHandler "linka/internal/handlers/hotel"
	rideHandler "linka/internal/handlers/ride"
	userHandler "linka/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	identity.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	ws.NewHub,
	wire.Bind(new(event.LiveChannel), new(*ws.Hub)),
	event.New,
	wire.Bind(new(event.Publisher), new(*event.Bus)),
)

var repositories = wire.NewSet(
	userRepository.New,
	sessionRepository.New,
	rideRepository.New,
	accommodationRepository.New,
	bookingRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	userService.New,
	rideService.New,
	accommodationService.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	provideHealth,
	authHandler.New,
	userHandler.New,
	rideHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	ws.NewHandler,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		provideServer,
	)

	return &http.HTTP{}
}
