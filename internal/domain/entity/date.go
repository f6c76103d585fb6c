package entity

import (
	"fmt"
	"time"

	"bdmep-api/internal/domain/model"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "2006-01-02"

// DateInput holds either a time value or a date string still to be validated.
type DateInput struct {
	value time.Time
	text  string
	isSet bool
}

// DateFromTime wraps a time value. Only its calendar date is used.
func DateFromTime(t time.Time) DateInput {
	return DateInput{value: t, isSet: true}
}

// DateFromString wraps a YYYY-MM-DD string.
func DateFromString(s string) DateInput {
	return DateInput{text: s}
}

// Format returns the normalized YYYY-MM-DD string.
func (d DateInput) Format() (string, error) {
	if d.isSet {
		return d.value.Format(DateLayout), nil
	}
	t, err := time.Parse(DateLayout, d.text)
	if err != nil {
		return "", fmt.Errorf("%w: %q, expected YYYY-MM-DD", model.ErrInvalidDateFormat, d.text)
	}
	return t.Format(DateLayout), nil
}
