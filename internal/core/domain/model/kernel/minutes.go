package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Minutes is a non-negative duration in whole minutes.
type Minutes int

// NewMinutes validates that m is not negative.
func NewMinutes(m int) (Minutes, error) {
	if m < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("minutes is invalid", fmt.Errorf("%d is negative", m))
	}
	return Minutes(m), nil
}

// Int returns the duration as a plain int.
func (m Minutes) Int() int {
	return int(m)
}

// Max returns the larger of m and other.
func (m Minutes) Max(other Minutes) Minutes {
	if other > m {
		return other
	}
	return m
}
