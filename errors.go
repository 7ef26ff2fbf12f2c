package money

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a monetary value would violate its
	// invariants: the scale of the amount exceeds the number of fractional
	// digits allowed by the currency.
	// It is reported at construction time and when restoring a marshaled
	// value, never later.
	ErrInvalidState = errors.New("invalid monetary state")

	// ErrCurrencyMismatch is returned by binary operations invoked on two
	// values denominated in different currencies.
	// The concrete error is a [*CurrencyMismatchError] carrying both
	// currency identities.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero is returned by [Money.Div] and [Money.DivInt]
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUninitializedDefaults is returned by the constructors of a zero
	// [Defaults] value.
	ErrUninitializedDefaults = errors.New("defaults not initialized")

	errInvalidCurrency = errors.New("invalid currency")
	errInvalidRounding = errors.New("invalid rounding")
)

// CurrencyMismatchError reports an operation across two currencies.
// It matches [ErrCurrencyMismatch] via [errors.Is].
type CurrencyMismatchError struct {
	Want, Got Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %v does not match the expected currency %v", e.Got, e.Want)
}

// Is reports whether the target is [ErrCurrencyMismatch].
func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

func mismatchErr(want, got Currency) error {
	return &CurrencyMismatchError{Want: want, Got: got}
}
