//go:build wireinject
// +build wireinject

package di

import (
	"petcare/config"
	"petcare/infras/jwt"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/infras/redis"
	"petcare/permissions"
	"petcare/shared/cache"
	"petcare/shared/event"
	gRepository "petcare/shared/repository"
	"petcare/transport/http"
	"petcare/transport/http/middleware"
	"petcare/transport/http/router"

	bookingRepository "petcare/internal/domains/booking/repository"
	bookingService "petcare/internal/domains/booking/service"
	petRepository "petcare/internal/domains/pet/repository"
	petServiceRepository "petcare/internal/domains/petservice/repository"
	petServiceService "petcare/internal/domains/petservice/service"
	timeslotRepository "petcare/internal/domains/timeslot/repository"
	timeslotService "petcare/internal/domains/timeslot/service"
	bookingHandler "petcare/internal/handlers/booking"
	petServiceHandler "petcare/internal/handlers/petservice"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.New,
	gRepository.NewTransactor,
)

var timeslotDomain = wire.NewSet(
	timeslotRepository.New,
	timeslotService.New,
)

var petServiceDomain = wire.NewSet(
	petServiceRepository.New,
	petServiceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	petRepository.New,
	bookingService.NewConflictDetector,
	bookingService.New,
)

var domains = wire.NewSet(
	timeslotDomain,
	petServiceDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	petServiceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
