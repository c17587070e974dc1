// Package address provides the address verification service used during
// order validation. It stands in for a remote address API.
package address

import (
	"context"
	"regexp"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Checker verifies that an address is well formed and deliverable.
// Addresses whose zip code appears in the unknown list are rejected as
// not found, mimicking a lookup against an address database.
type Checker struct {
	unknownZips map[string]struct{}
}

func NewChecker(unknownZips ...string) *Checker {
	unknown := make(map[string]struct{}, len(unknownZips))
	for _, zip := range unknownZips {
		unknown[zip] = struct{}{}
	}
	return &Checker{unknownZips: unknown}
}

// CheckAddressExists implements domain.AddressChecker.
func (c *Checker) CheckAddressExists(ctx context.Context, address domain.UnvalidatedAddress) (domain.CheckedAddress, error) {
	if err := ctx.Err(); err != nil {
		return domain.CheckedAddress{}, err
	}

	if address.AddressLine1 == "" || address.City == "" || !zipPattern.MatchString(address.ZipCode) {
		return domain.CheckedAddress{}, &domain.AddressError{Kind: domain.AddressInvalidFormat}
	}
	if _, unknown := c.unknownZips[address.ZipCode]; unknown {
		return domain.CheckedAddress{}, &domain.AddressError{Kind: domain.AddressNotFound}
	}

	return domain.CheckedAddress{Address: address}, nil
}

// Compile-time interface check.
var _ domain.AddressChecker = (*Checker)(nil)
