package validator_test

import (
	"net/http"
	"rantoo/shared/failure"
	"rantoo/shared/validator"
	"testing"
)

type conversionInput struct {
	Direction string `form:"direction"   validate:"omitempty,direction"`
	Value     string `form:"input_value" validate:"notblank,max=64"`
	Timezone  string `json:"tz"          validate:"omitempty,max=64"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        conversionInput
		expectError string
	}{
		{
			name: "valid struct",
			data: conversionInput{Direction: "epoch_to_human", Value: "1757509860", Timezone: "pst"},
		},
		{
			name: "direction may be omitted",
			data: conversionInput{Value: "20250910131100"},
		},
		{
			name:        "blank value",
			data:        conversionInput{Value: "   "},
			expectError: "input_value must not be blank",
		},
		{
			name:        "unknown direction",
			data:        conversionInput{Direction: "sideways", Value: "1"},
			expectError: "direction must be one of epoch_to_human human_to_epoch",
		},
		{
			name:        "value too long",
			data:        conversionInput{Value: "12345678901234567890123456789012345678901234567890123456789012345"},
			expectError: "input_value must be at most 64 characters long",
		},
		{
			name:        "json name used when no form tag",
			data:        conversionInput{Value: "1", Timezone: "Europe/ThisIsAnExtremelyLongTimezoneNameThatCannotPossiblyExistAnywhere"},
			expectError: "tz must be at most 64 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if err.Error() != tt.expectError {
				t.Errorf("expected message %q, got %q", tt.expectError, err.Error())
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}
		})
	}
}
