// Package app implements the primary-port services, wiring the pure rule
// cores to the repositories.
package app

import (
	"time"

	"github.com/example/cadet-tracker/internal/apperr"
)

// dateLayout is the storage format for all dates.
const dateLayout = "2006-01-02"

// normalizeDate validates a YYYY-MM-DD date, substituting today when empty.
func normalizeDate(field, value string) (string, error) {
	if value == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", apperr.Validation("%s %q is not a valid date (want YYYY-MM-DD)", field, value)
	}
	return value, nil
}

// validateOptionalDate validates a YYYY-MM-DD date, allowing empty.
func validateOptionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return apperr.Validation("%s %q is not a valid date (want YYYY-MM-DD)", field, value)
	}
	return nil
}
