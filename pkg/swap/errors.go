package swap

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongFieldCount is returned when the offer string does not have
	// exactly the expected number of /-separated fields.
	ErrWrongFieldCount = errors.New("wrong number of parts")
	// ErrUnableToParse is the class of all single-field decode failures.
	ErrUnableToParse = errors.New("unable to parse")
	// ErrInvalidSwapType is returned when the side token of a priced offer
	// is neither "buy" nor "sell".
	ErrInvalidSwapType = errors.New("invalid swap type")
	// ErrZeroAmount is returned when a quantity or the expiry is zero.
	ErrZeroAmount = errors.New("quantities and expiry should be non-zero")
	// ErrSameAsset is returned when both sides of a swap reference the
	// same asset.
	ErrSameAsset = errors.New("from and to assets should be different")
	// ErrAmountOverflow is returned when amount * price does not fit in 64
	// bits.
	ErrAmountOverflow = errors.New("amount in base units overflows 64 bits")
)

// FieldError reports which field of the offer string failed to decode. It
// matches ErrUnableToParse with errors.Is so callers can branch on the error
// class without inspecting the field name.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unable to parse %s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Is(target error) bool {
	return target == ErrUnableToParse
}

func fieldErr(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
