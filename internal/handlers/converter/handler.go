package converter

import (
	"net/http"
	"net/url"
	"rantoo/infras/otel"
	"rantoo/internal/domains/converter/model/dto"
	"rantoo/internal/domains/converter/service"
	"rantoo/shared/constant"
	"rantoo/shared/failure"
	"rantoo/shared/validator"
	"rantoo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type convertFunc func(handler *Handler, request *http.Request, req dto.ConversionRequest) (dto.ConversionResponse, error)

type Handler struct {
	service service.Converter
	otel    otel.Otel
}

func New(service service.Converter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api/v1", func(routerGroup chi.Router) {
		routerGroup.Get("/epoch/{epoch}", handler.EpochToDatetime)
		routerGroup.Get("/datetime/*", handler.DatetimeToEpoch)
		routerGroup.Get("/timezones", handler.Timezones)
	})

	router.Route("/curl/v1", func(routerGroup chi.Router) {
		routerGroup.Get("/epoch/{epoch}", handler.EpochToDatetimeText)
		routerGroup.Get("/datetime/*", handler.DatetimeToEpochText)
	})
}

// EpochToDatetime converts epoch seconds to a human readable datetime.
// @Summary Convert epoch to datetime
// @Description Convert Unix epoch seconds to "Mon 2006-01-02 15:04:05 MST", in UTC or the requested timezone.
// @Tags Converter
// @Produce json
// @Param epoch path string true "Epoch seconds" example(1757509860)
// @Param tz query string false "Timezone identifier or alias" example(America/Los_Angeles)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} response.Error
// @Router /api/v1/epoch/{epoch} [get]
func (handler *Handler) EpochToDatetime(w http.ResponseWriter, r *http.Request) {
	res, err := handler.convert(r, ".EpochToDatetime", epochParam, epochToHuman)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DatetimeToEpoch converts a datetime string to epoch seconds.
// @Summary Convert datetime to epoch
// @Description Accepts YYYY-MM-DD-HHMMSS, YYYYMMDDHHMMSS, YYYYMMDDHHMM or MM/DD/YYYY HH:MM. Fields are read in UTC unless tz resolves.
// @Tags Converter
// @Produce json
// @Param datetime path string true "Datetime" example(2025-09-10-131100)
// @Param tz query string false "Timezone identifier or alias" example(pst)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} response.Error
// @Router /api/v1/datetime/{datetime} [get]
func (handler *Handler) DatetimeToEpoch(w http.ResponseWriter, r *http.Request) {
	res, err := handler.convert(r, ".DatetimeToEpoch", datetimeParam, humanToEpoch)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// EpochToDatetimeText is the plain-text variant of EpochToDatetime.
// @Summary Convert epoch to datetime (plain text)
// @Tags Curl
// @Produce plain
// @Param epoch path string true "Epoch seconds" example(1757509860)
// @Param tz query string false "Timezone identifier or alias"
// @Success 200 {string} string "Epoch:     1757509860"
// @Failure 400 {string} string "Error: Invalid epoch format"
// @Router /curl/v1/epoch/{epoch} [get]
func (handler *Handler) EpochToDatetimeText(w http.ResponseWriter, r *http.Request) {
	res, err := handler.convert(r, ".EpochToDatetimeText", epochParam, epochToHuman)
	if err != nil {
		response.WithTextError(w, err)

		return
	}

	response.WithText(w, http.StatusOK, res.Text())
}

// DatetimeToEpochText is the plain-text variant of DatetimeToEpoch.
// @Summary Convert datetime to epoch (plain text)
// @Tags Curl
// @Produce plain
// @Param datetime path string true "Datetime" example(20250910131100)
// @Param tz query string false "Timezone identifier or alias"
// @Success 200 {string} string "Epoch:     1757509860"
// @Failure 400 {string} string "Error: Invalid datetime format"
// @Router /curl/v1/datetime/{datetime} [get]
func (handler *Handler) DatetimeToEpochText(w http.ResponseWriter, r *http.Request) {
	res, err := handler.convert(r, ".DatetimeToEpochText", datetimeParam, humanToEpoch)
	if err != nil {
		response.WithTextError(w, err)

		return
	}

	response.WithText(w, http.StatusOK, res.Text())
}

// Timezones lists the accepted timezone aliases.
// @Summary List timezone aliases
// @Description Aliases map to canonical IANA identifiers. Any canonical identifier is accepted as well.
// @Tags Converter
// @Produce json
// @Success 200 {object} dto.TimezonesResponse
// @Router /api/v1/timezones [get]
func (handler *Handler) Timezones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Timezones")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Timezones(ctx))
}

func (handler *Handler) convert(
	r *http.Request,
	spanName string,
	param func(r *http.Request) (string, error),
	fn convertFunc,
) (dto.ConversionResponse, error) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+spanName)
	defer scope.End()

	input, err := param(r)
	if err != nil {
		scope.TraceError(err)

		return dto.ConversionResponse{}, err
	}

	req := dto.ConversionRequest{
		Input:    input,
		Timezone: r.URL.Query().Get(constant.RequestParamTimezone),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate conversion request")

		return dto.ConversionResponse{}, err
	}

	res, err := fn(handler, r.WithContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("input", req.Input).Msg("conversion rejected")

		return dto.ConversionResponse{}, err
	}

	scope.AddEvent("conversion completed")

	return res, nil
}

func epochToHuman(handler *Handler, r *http.Request, req dto.ConversionRequest) (dto.ConversionResponse, error) {
	return handler.service.EpochToHuman(r.Context(), req) //nolint:wrapcheck
}

func humanToEpoch(handler *Handler, r *http.Request, req dto.ConversionRequest) (dto.ConversionResponse, error) {
	return handler.service.HumanToEpoch(r.Context(), req) //nolint:wrapcheck
}

func epochParam(r *http.Request) (string, error) {
	return pathParam(r, constant.RequestParamEpoch)
}

// datetimeParam captures the rest of the path so MM/DD/YYYY works without
// escaping the slashes.
func datetimeParam(r *http.Request) (string, error) {
	return pathParam(r, constant.RequestParamDatetime)
}

// pathParam returns the decoded value of a route parameter. chi matches on
// the raw path when the request carried escaped characters.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}

	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return "", failure.BadRequestFromString("malformed path: " + err.Error())
	}

	return unescaped, nil
}
