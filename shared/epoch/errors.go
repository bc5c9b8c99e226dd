package epoch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	subjectDatetime = "datetime"
	subjectEpoch    = "epoch"
)

var epochFormats = []string{"integer seconds", "decimal seconds"}

// FormatError reports input that does not match a supported format or holds
// out-of-range fields.
type FormatError struct {
	Subject string
	Input   string
	Detail  string
	Formats []string
}

func (e *FormatError) Error() string {
	var b strings.Builder

	b.WriteString("Invalid ")
	b.WriteString(e.Subject)
	b.WriteString(" format: ")
	b.WriteString(strconv.Quote(e.Input))

	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}

	if len(e.Formats) > 0 {
		b.WriteString(". Supported formats: ")
		b.WriteString(strings.Join(e.Formats, ", "))
	}

	return b.String()
}

// IsFormatError reports whether err or any error it wraps is a *FormatError.
func IsFormatError(err error) bool {
	var formatErr *FormatError

	return errors.As(err, &formatErr)
}

func datetimeError(input, detail string) error {
	return &FormatError{
		Subject: subjectDatetime,
		Input:   input,
		Detail:  detail,
		Formats: SupportedFormats(),
	}
}

func epochError(input, detail string) error {
	return &FormatError{
		Subject: subjectEpoch,
		Input:   input,
		Detail:  detail,
		Formats: epochFormats,
	}
}
