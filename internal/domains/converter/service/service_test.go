package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rantoo/config"
	"rantoo/infras/otel/mocks"
	"rantoo/internal/domains/converter/model/dto"
	"rantoo/internal/domains/converter/service"
	"rantoo/shared/epoch"
	"rantoo/shared/failure"
)

func newService() service.Converter {
	return service.New(&config.Config{}, mocks.NewOtel())
}

func TestConverterService_EpochToHuman(t *testing.T) {
	svc := newService()

	tests := []struct {
		name        string
		req         dto.ConversionRequest
		expected    dto.ConversionResponse
		expectedErr string
	}{
		{
			name: "utc",
			req:  dto.ConversionRequest{Input: "1757509860"},
			expected: dto.ConversionResponse{
				Epoch:    1757509860,
				Datetime: "Wed 2025-09-10 13:11:00 UTC",
				Input:    "1757509860",
			},
		},
		{
			name: "alias normalized",
			req:  dto.ConversionRequest{Input: "1757509860", Timezone: "PST"},
			expected: dto.ConversionResponse{
				Epoch:    1757509860,
				Datetime: "Wed 2025-09-10 06:11:00 PDT",
				Input:    "1757509860",
				Timezone: "America/Los_Angeles",
			},
		},
		{
			name: "unknown timezone falls back to utc",
			req:  dto.ConversionRequest{Input: "1757509860", Timezone: "Mars/Base"},
			expected: dto.ConversionResponse{
				Epoch:    1757509860,
				Datetime: "Wed 2025-09-10 13:11:00 UTC",
				Input:    "1757509860",
			},
		},
		{
			name: "decimal seconds floored",
			req:  dto.ConversionRequest{Input: "1757509860.75"},
			expected: dto.ConversionResponse{
				Epoch:    1757509860,
				Datetime: "Wed 2025-09-10 13:11:00 UTC",
				Input:    "1757509860.75",
			},
		},
		{
			name:        "not a number",
			req:         dto.ConversionRequest{Input: "abc"},
			expectedErr: `Invalid epoch format: "abc" (not a number)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.EpochToHuman(context.Background(), tt.req)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.True(t, epoch.IsFormatError(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestConverterService_HumanToEpoch(t *testing.T) {
	svc := newService()

	tests := []struct {
		name        string
		req         dto.ConversionRequest
		expected    dto.ConversionResponse
		expectedErr string
	}{
		{
			name: "utc",
			req:  dto.ConversionRequest{Input: "2025-09-10-131100"},
			expected: dto.ConversionResponse{
				Epoch:    1757509860,
				Datetime: "2025-09-10-131100",
				Input:    "2025-09-10-131100",
			},
		},
		{
			name: "slash format with timezone",
			req:  dto.ConversionRequest{Input: "09/10/2025 13:11", Timezone: "America/Los_Angeles"},
			expected: dto.ConversionResponse{
				Epoch:    1757535060,
				Datetime: "09/10/2025 13:11",
				Input:    "09/10/2025 13:11",
				Timezone: "America/Los_Angeles",
			},
		},
		{
			name: "unknown timezone falls back to utc",
			req:  dto.ConversionRequest{Input: "20250910131100", Timezone: "nowhere"},
			expected: dto.ConversionResponse{
				Epoch:    1757509860,
				Datetime: "20250910131100",
				Input:    "20250910131100",
			},
		},
		{
			name:        "invalid datetime",
			req:         dto.ConversionRequest{Input: "invalid-date"},
			expectedErr: "Invalid datetime format",
		},
		{
			name:        "out of range fields",
			req:         dto.ConversionRequest{Input: "2025-13-45-250000"},
			expectedErr: "month 13 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.HumanToEpoch(context.Background(), tt.req)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				var formatErr *epoch.FormatError
				assert.True(t, errors.As(err, &formatErr))
				assert.Equal(t, tt.req.Input, formatErr.Input)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestConverterService_Timezones(t *testing.T) {
	res := newService().Timezones(context.Background())

	assert.Equal(t, "America/Los_Angeles", res.Aliases["pst"])
	assert.Equal(t, "Europe/Moscow", res.Aliases["moscow"])
}
