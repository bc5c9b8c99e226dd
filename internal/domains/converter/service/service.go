//go:generate mockgen -source=service.go -destination=../mocks/service_mock.go -package=mocks
package service

import (
	"context"
	"fmt"
	"rantoo/config"
	"rantoo/infras/otel"
	"rantoo/internal/domains/converter/model"
	"rantoo/internal/domains/converter/model/dto"
	"rantoo/shared/constant"
	"rantoo/shared/epoch"
	"rantoo/shared/failure"
	"rantoo/shared/logger"
	"rantoo/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Converter interface {
	EpochToHuman(ctx context.Context, req dto.ConversionRequest) (dto.ConversionResponse, error)
	HumanToEpoch(ctx context.Context, req dto.ConversionRequest) (dto.ConversionResponse, error)
	Timezones(ctx context.Context) dto.TimezonesResponse
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Converter {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) EpochToHuman(ctx context.Context, req dto.ConversionRequest) (res dto.ConversionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EpochToHuman")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seconds, err := epoch.ParseEpoch(req.Input)
	if err != nil {
		return res, classify(err)
	}

	tz := s.timezone(ctx, req.Timezone)

	res.FromModel(model.Conversion{
		Direction: model.DirectionEpochToHuman,
		Input:     req.Input,
		Epoch:     seconds,
		Datetime:  epoch.EpochToHuman(seconds, tz),
		Timezone:  tz,
	})

	scope.SetAttributes(map[string]any{
		"converter.epoch":    seconds,
		"converter.timezone": tz,
	})

	return res, nil
}

func (s *serviceImpl) HumanToEpoch(ctx context.Context, req dto.ConversionRequest) (res dto.ConversionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HumanToEpoch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz := s.timezone(ctx, req.Timezone)

	seconds, err := epoch.HumanToEpoch(req.Input, tz)
	if err != nil {
		return res, classify(err)
	}

	res.FromModel(model.Conversion{
		Direction: model.DirectionHumanToEpoch,
		Input:     req.Input,
		Epoch:     seconds,
		Datetime:  req.Input,
		Timezone:  tz,
	})

	scope.SetAttributes(map[string]any{
		"converter.epoch":    seconds,
		"converter.timezone": tz,
	})

	return res, nil
}

func (s *serviceImpl) Timezones(ctx context.Context) dto.TimezonesResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Timezones")
	defer scope.End()

	return dto.TimezonesResponse{
		Aliases: timezone.Aliases(),
	}
}

// timezone returns the canonical identifier for raw, or "" when the conversion
// has to run in UTC.
func (s *serviceImpl) timezone(ctx context.Context, raw string) string {
	if raw == "" {
		return ""
	}

	canonical, ok := timezone.Normalize(raw)
	if !ok {
		logger.FromContext(ctx).Debug().Str("timezone", raw).Msg("unknown timezone, falling back to UTC")

		return ""
	}

	return canonical
}

func classify(err error) error {
	if epoch.IsFormatError(err) {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to convert " + model.EntityName)

	return fmt.Errorf("failed to convert %s: %w", model.EntityName, err)
}
