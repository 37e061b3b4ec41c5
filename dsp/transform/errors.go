package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a transform length is not a power of
	// two or is below the minimum supported size of 4.
	ErrInvalidLength = errors.New("transform: length must be a power of two >= 4")

	// ErrInvalidConversion is returned by Run when the conversion selector is
	// not one of Forward, Reverse, Polar, or DB.
	ErrInvalidConversion = errors.New("transform: unknown conversion")
)

func validateLength(length int) error {
	if length < minLength || length&(length-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return nil
}
