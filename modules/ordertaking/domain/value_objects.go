package domain

import "regexp"

// String50 is a value object for a non-empty string of at most 50 chars.
// Value objects are immutable and compared by value; the validating
// constructor is the only way to obtain a non-zero instance.
type String50 struct {
	value string
}

// NewString50 creates a validated String50. field names the order field
// being validated and is carried into the error.
func NewString50(field, value string) (String50, error) {
	v, err := createString(field, value, 50)
	if err != nil {
		return String50{}, err
	}
	return String50{value: v}, nil
}

// NewOptionalString50 creates a String50 that may be absent: an empty
// input yields the zero value (IsZero reports true), not an error.
func NewOptionalString50(field, value string) (String50, error) {
	v, err := createOptionalString(field, value, 50)
	if err != nil {
		return String50{}, err
	}
	return String50{value: v}, nil
}

func (s String50) String() string { return s.value }
func (s String50) IsZero() bool   { return s.value == "" }

var emailPattern = regexp.MustCompile(`^.+@.+$`)

// EmailAddress is a value object for a customer email address.
type EmailAddress struct {
	value string
}

func NewEmailAddress(field, value string) (EmailAddress, error) {
	v, err := createLike(field, value, emailPattern)
	if err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: v}, nil
}

func (e EmailAddress) String() string { return e.value }
func (e EmailAddress) IsZero() bool   { return e.value == "" }

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ZipCode is a value object for a 5-digit US zip code.
type ZipCode struct {
	value string
}

func NewZipCode(field, value string) (ZipCode, error) {
	v, err := createLike(field, value, zipPattern)
	if err != nil {
		return ZipCode{}, err
	}
	return ZipCode{value: v}, nil
}

func (z ZipCode) String() string { return z.value }
func (z ZipCode) IsZero() bool   { return z.value == "" }
