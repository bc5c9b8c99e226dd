package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"rantoo/shared/constant"
	"rantoo/shared/failure"
	"rantoo/shared/logger"
)

type Error struct {
	Code    int    `json:"code"    example:"400"`
	Message string `json:"message" example:"Invalid datetime format: \"invalid-date\". Supported formats: YYYY-MM-DD-HHMMSS, YYYYMMDDHHMMSS, YYYYMMDDHHMM, MM/DD/YYYY HH:MM"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithRawJSON sends an already encoded JSON document
func WithRawJSON(writer http.ResponseWriter, code int, body []byte) {
	write(writer, code, constant.ContentTypeJSON, body)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	response(writer, code, Error{Code: code, Message: err.Error()})
}

// WithText sends a plain-text response
func WithText(writer http.ResponseWriter, code int, text string) {
	write(writer, code, constant.ContentTypeTextPlain, []byte(text))
}

// WithTextError sends err as a plain-text "Error: <message>" line
func WithTextError(writer http.ResponseWriter, err error) {
	WithText(writer, failure.GetCode(err), fmt.Sprintf("Error: %s\n", err.Error()))
}

// WithHTML sends an already rendered page
func WithHTML(writer http.ResponseWriter, code int, page *bytes.Buffer) {
	write(writer, code, constant.ContentTypeHTML, page.Bytes())
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	write(writer, code, constant.ContentTypeJSON, response)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	_, err := writer.Write(body)
	if err != nil {
		logger.ErrorWithStack(err)
	}
}
