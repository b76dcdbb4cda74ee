//go:build wireinject
// +build wireinject

package di

import (
	"cafe/config"
	"cafe/infras/database"
	"cafe/infras/otel"
	"cafe/infras/redis"
	cafeHandler "cafe/internal/handlers/cafe"
	homeHandler "cafe/internal/handlers/home"
	"cafe/shared/cache"
	"cafe/transport/http"
	"cafe/transport/http/middleware"
	"cafe/transport/http/router"

	cafeRepository "cafe/internal/domains/cafe/repository"
	cafeService "cafe/internal/domains/cafe/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var cafeDomain = wire.NewSet(
	cafeRepository.New,
	cafeService.New,
)

var domains = wire.NewSet(
	cafeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homeHandler.New,
	cafeHandler.New,
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
