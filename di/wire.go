//go:build wireinject
// +build wireinject

package di

import (
	"rantoo/config"
	"rantoo/infras/otel"
	"rantoo/internal/templates"
	"rantoo/transport/http"
	"rantoo/transport/http/middleware"
	"rantoo/transport/http/router"

	converterService "rantoo/internal/domains/converter/service"
	converterHandler "rantoo/internal/handlers/converter"
	healthHandler "rantoo/internal/handlers/health"
	webHandler "rantoo/internal/handlers/web"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	templates.New,
)

var converterDomain = wire.NewSet(
	converterService.New,
)

var domains = wire.NewSet(
	converterDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	converterHandler.New,
	healthHandler.New,
	webHandler.New,
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
