package response_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rantoo/shared/failure"
	"rantoo/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]any{"epoch": 1757509860})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"epoch":1757509860}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "bad request failure",
			err:          failure.BadRequestFromString("Invalid datetime format"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"code":400,"message":"Invalid datetime format"}`,
		},
		{
			name:         "plain error is internal",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"code":500,"message":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
		})
	}
}

func TestWithText(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithText(recorder, http.StatusOK, "Epoch:     0\n")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/plain; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "Epoch:     0\n", recorder.Body.String())
}

func TestWithTextError(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithTextError(recorder, failure.BadRequestFromString("Invalid epoch format"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Error: Invalid epoch format\n", recorder.Body.String())
}

func TestWithHTML(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithHTML(recorder, http.StatusOK, bytes.NewBufferString("<h1>ok</h1>"))

	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>ok</h1>", recorder.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPreparingShutdown(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}
