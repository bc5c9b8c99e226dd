package validator

import (
	"reflect"
	"rantoo/shared/constant"
	"rantoo/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerNotBlankValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)

	return ok && strings.TrimSpace(str) != ""
}

func registerDirectionValidation(field val.FieldLevel) bool {
	switch field.Field().String() {
	case constant.DirectionEpochToHuman, constant.DirectionHumanToEpoch:
		return true
	default:
		return false
	}
}

// fieldName reports fields by their form or json name so messages match what
// the client sent.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	err := validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("direction", registerDirectionValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator package.
// If the struct is invalid according to the validation rules, a bad request
// failure describing the first violation is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
