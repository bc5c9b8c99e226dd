package router

import (
	"net/http"
	"rantoo/config"
	"rantoo/docs"
	"rantoo/internal/handlers/converter"
	"rantoo/internal/handlers/health"
	"rantoo/internal/handlers/web"
	"rantoo/shared/failure"
	"rantoo/transport/http/middleware"
	"rantoo/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

const (
	swaggerDocPath = "/api/swagger.json"
	swaggerUIPath  = "/api/docs"
)

type DomainHandlers struct {
	Converter converter.Handler
	Health    health.Handler
	Web       web.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RealIP,
		r.Middleware.RequestID,
		r.Middleware.Logger,
		chiMiddleware.Recoverer,
		r.Middleware.Tracing,
		r.Middleware.CORS(),
	)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.RouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.MethodNotAllowed)
	})

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Web.Router(router)
	r.DomainHandlers.Converter.Router(router)

	if r.Config.App.Swagger.Enable {
		r.setupSwagger(router)
	}
}

func (r *Router) setupSwagger(router chi.Router) {
	router.Get(swaggerDocPath, func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			log.Error().Err(err).Msg("failed to read swagger document")
			response.WithError(w, failure.InternalError(err))

			return
		}

		response.WithRawJSON(w, http.StatusOK, []byte(doc))
	})

	swaggerUI := httpSwagger.Handler(
		httpSwagger.URL(swaggerDocPath),
	)

	router.Get(swaggerUIPath, http.RedirectHandler(swaggerUIPath+"/", http.StatusMovedPermanently).ServeHTTP)
	router.Get(swaggerUIPath+"/", func(w http.ResponseWriter, req *http.Request) {
		index := req.Clone(req.Context())
		index.RequestURI = swaggerUIPath + "/index.html"
		index.URL.Path = index.RequestURI

		swaggerUI(w, index)
	})
	router.Get(swaggerUIPath+"/*", swaggerUI)
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         cfg,
	}
}
