package domain

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound indicates no placed order exists for the requested ID.
var ErrOrderNotFound = errors.New("placed order not found")

// ValidationError reports the first order field that failed validation.
// The whole validation aborts on the first failure; no partial order is
// ever returned alongside it.
type ValidationError struct {
	Field       string
	Description string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Description: fmt.Sprintf(format, args...)}
}

// PricingError reports a computed line price or billing total outside the
// allowed bounds, or a product the price source cannot price.
type PricingError struct {
	Description string
}

func (e *PricingError) Error() string {
	return "pricing failed: " + e.Description
}

// AddressErrorKind distinguishes the two failure modes of the external
// address checker.
type AddressErrorKind int

const (
	AddressInvalidFormat AddressErrorKind = iota
	AddressNotFound
)

func (k AddressErrorKind) String() string {
	switch k {
	case AddressInvalidFormat:
		return "address has invalid format"
	case AddressNotFound:
		return "address not found"
	default:
		return "address check failed"
	}
}

// AddressError is returned by AddressChecker implementations.
type AddressError struct {
	Kind AddressErrorKind
}

func (e *AddressError) Error() string {
	return e.Kind.String()
}
