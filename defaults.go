package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Defaults carries the currency and rounding policy used by the terse
// constructors.
// It replaces hidden process-wide state: build one Defaults value at startup
// with [NewDefaults] and pass it to the call sites that need it, which makes
// initialization order explicit and testable.
// The zero value is uninitialized, and its constructors return an error
// wrapping [ErrUninitializedDefaults].
//
// The recommended rounding policy is [RoundHalfEven], also called banker's
// rounding, as it introduces the least bias.
type Defaults struct {
	curr     Currency
	rounding Rounding
	set      bool
}

// NewDefaults returns a Defaults value with the given default currency and
// rounding policy.
func NewDefaults(curr Currency, rounding Rounding) Defaults {
	return Defaults{curr: curr, rounding: rounding, set: true}
}

// Currency returns the default currency.
func (d Defaults) Currency() Currency {
	return d.curr
}

// Rounding returns the default rounding policy.
func (d Defaults) Rounding() Rounding {
	return d.rounding
}

// New returns a monetary value with the given amount, denominated in the
// default currency with the default rounding policy.
// See also constructor [New].
//
// New returns an error wrapping [ErrUninitializedDefaults] if d is the zero
// Defaults.
func (d Defaults) New(amount decimal.Decimal) (Money, error) {
	if !d.set {
		return Money{}, fmt.Errorf("constructing %T: %w", Money{}, ErrUninitializedDefaults)
	}
	return newSafe(amount, d.curr, d.rounding)
}

// NewWithCurrency returns a monetary value with the given amount and
// currency, using the default rounding policy.
// See also constructor [New].
//
// NewWithCurrency returns an error wrapping [ErrUninitializedDefaults] if d
// is the zero Defaults.
func (d Defaults) NewWithCurrency(amount decimal.Decimal, curr Currency) (Money, error) {
	if !d.set {
		return Money{}, fmt.Errorf("constructing %T: %w", Money{}, ErrUninitializedDefaults)
	}
	return newSafe(amount, curr, d.rounding)
}

// Sum folds [Money.Add] over a sequence of same-currency monetary values,
// starting from a zero amount in the default currency with the default
// rounding policy.
// See also function [Sum].
//
// Sum returns an error wrapping [ErrUninitializedDefaults] if d is the zero
// Defaults.
func (d Defaults) Sum(moneys []Money) (Money, error) {
	if !d.set {
		return Money{}, fmt.Errorf("summing amounts: %w", ErrUninitializedDefaults)
	}
	return Sum(moneys, d.curr, d.rounding)
}
