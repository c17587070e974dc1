package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Constrained-value helpers shared by the smart constructors below.
// Each takes the field name for the error message and returns the raw
// value unchanged when the constraint holds.

func createString(field, value string, maxLen int) (string, error) {
	if value == "" {
		return "", newValidationError(field, "must not be empty")
	}
	if len(value) > maxLen {
		return "", newValidationError(field, "must not be more than %d chars", maxLen)
	}
	return value, nil
}

// createOptionalString treats an empty input as an explicit absent value,
// not an error. Over-length input is still rejected.
func createOptionalString(field, value string, maxLen int) (string, error) {
	if value == "" {
		return "", nil
	}
	if len(value) > maxLen {
		return "", newValidationError(field, "must not be more than %d chars", maxLen)
	}
	return value, nil
}

func createInt(field string, value, minVal, maxVal int) (int, error) {
	if value < minVal {
		return 0, newValidationError(field, "must not be less than %d", minVal)
	}
	if value > maxVal {
		return 0, newValidationError(field, "must not be greater than %d", maxVal)
	}
	return value, nil
}

func createDecimal(field string, value, minVal, maxVal decimal.Decimal) (decimal.Decimal, error) {
	if value.LessThan(minVal) {
		return decimal.Zero, newValidationError(field, "must not be less than %s", minVal)
	}
	if value.GreaterThan(maxVal) {
		return decimal.Zero, newValidationError(field, "must not be greater than %s", maxVal)
	}
	return value, nil
}

func createLike(field, value string, pattern *regexp.Regexp) (string, error) {
	if value == "" {
		return "", newValidationError(field, "must not be empty")
	}
	if !pattern.MatchString(value) {
		return "", newValidationError(field, "%s must match the pattern %s", value, pattern)
	}
	return value, nil
}
