package dto

import (
	"fmt"
	"net/http"
	"rantoo/internal/domains/converter/model"
	"rantoo/shared/constant"
	"strings"
)

type ConversionRequest struct {
	Input    string `json:"input" validate:"notblank,max=256"`
	Timezone string `json:"tz"    validate:"omitempty,max=64"`
}

type ConversionResponse struct {
	Epoch    int64  `json:"epoch"              example:"1757509860"`
	Datetime string `json:"datetime"           example:"Wed 2025-09-10 13:11:00 UTC"`
	Input    string `json:"input"              example:"1757509860"`
	Timezone string `json:"timezone,omitempty" example:"America/Los_Angeles"`
}

func (r *ConversionResponse) FromModel(conversion model.Conversion) {
	r.Epoch = conversion.Epoch
	r.Datetime = conversion.Datetime
	r.Input = conversion.Input
	r.Timezone = conversion.Timezone
}

// Text renders the response in the plain-text layout served to curl clients.
func (r *ConversionResponse) Text() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Epoch:     %d\n", r.Epoch)
	fmt.Fprintf(&builder, "Datetime:  %s\n", r.Datetime)
	fmt.Fprintf(&builder, "Input:     %s\n", r.Input)

	if r.Timezone != "" {
		fmt.Fprintf(&builder, "Timezone:  %s\n", r.Timezone)
	}

	builder.WriteString("\n")

	return builder.String()
}

// FormRequest carries the fields posted by the converter page.
type FormRequest struct {
	Direction string `form:"direction"   validate:"direction"`
	Value     string `form:"input_value" validate:"notblank,max=256"`
	Timezone  string `form:"timezone"    validate:"omitempty,max=64"`
}

// FromRequest reads the posted form. A missing direction means human to epoch.
func (f *FormRequest) FromRequest(r *http.Request) {
	f.Direction = strings.TrimSpace(r.PostFormValue(constant.FormFieldDirection))
	f.Value = strings.TrimSpace(r.PostFormValue(constant.FormFieldInputValue))
	f.Timezone = strings.TrimSpace(r.PostFormValue(constant.FormFieldTimezone))

	if f.Direction == "" {
		f.Direction = constant.DirectionHumanToEpoch
	}
}

func (f *FormRequest) ToConversionRequest() ConversionRequest {
	return ConversionRequest{
		Input:    f.Value,
		Timezone: f.Timezone,
	}
}

type TimezonesResponse struct {
	Aliases map[string]string `json:"aliases"`
}
