package web

import (
	"maps"
	"net/http"
	"rantoo/config"
	"rantoo/infras/otel"
	"rantoo/internal/domains/converter/model/dto"
	"rantoo/internal/domains/converter/service"
	"rantoo/internal/templates"
	"rantoo/shared/constant"
	"rantoo/shared/epoch"
	"rantoo/shared/failure"
	"rantoo/shared/logger"
	"rantoo/shared/validator"
	"rantoo/transport/http/response"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Converter
	templates *templates.Manager
	cfg       *config.Config
	otel      otel.Otel
}

func New(service service.Converter, templates *templates.Manager, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		templates: templates,
		cfg:       cfg,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Index)
	router.Post("/", handler.Convert)
}

// Index renders the empty converter form.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Index")
	defer scope.End()

	handler.render(w, r.WithContext(ctx), handler.newData(r, dto.FormRequest{Direction: constant.DirectionHumanToEpoch}))
}

// Convert handles the posted form and renders the result or the error on the
// same page.
func (handler *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse form")

		response.WithError(w, failure.BadRequestFromString("malformed form body"))

		return
	}

	form := dto.FormRequest{}
	form.FromRequest(r)

	data := handler.newData(r, form)

	res, err := handler.convert(r.WithContext(ctx), form)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Debug().Err(err).Msg("conversion rejected")

		data.Error = err.Error()
	} else {
		data.Result = &res
	}

	handler.render(w, r.WithContext(ctx), data)
}

func (handler *Handler) convert(r *http.Request, form dto.FormRequest) (dto.ConversionResponse, error) {
	if err := validator.ValidateStruct(&form); err != nil {
		return dto.ConversionResponse{}, err
	}

	if form.Direction == constant.DirectionEpochToHuman {
		return handler.service.EpochToHuman(r.Context(), form.ToConversionRequest()) //nolint:wrapcheck
	}

	return handler.service.HumanToEpoch(r.Context(), form.ToConversionRequest()) //nolint:wrapcheck
}

func (handler *Handler) newData(r *http.Request, form dto.FormRequest) *templates.Data {
	aliases := handler.service.Timezones(r.Context()).Aliases

	return &templates.Data{
		AppName:    handler.cfg.App.Name,
		Direction:  form.Direction,
		InputValue: form.Value,
		Timezone:   form.Timezone,
		Formats:    epoch.SupportedFormats(),
		Aliases:    slices.Sorted(maps.Keys(aliases)),
	}
}

func (handler *Handler) render(w http.ResponseWriter, r *http.Request, data *templates.Data) {
	page, err := handler.templates.RenderPage(templates.PageIndex, data)
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Msg("failed to render page")

		response.WithError(w, failure.InternalError(err))

		return
	}

	response.WithHTML(w, http.StatusOK, page)
}
