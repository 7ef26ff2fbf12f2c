package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rounding type represents the policy used to collapse excess precision
// during rescaling and division.
// The zero value is [RoundHalfEven], also known as banker's rounding,
// which introduces the least bias and is the recommended default.
type Rounding uint8

const (
	// RoundHalfEven rounds to the nearest neighbor, ties to the even digit.
	RoundHalfEven Rounding = iota
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbor, ties toward zero.
	RoundHalfDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor

	maxRounding
)

var roundingNames = [...]string{
	RoundHalfEven: "half-even",
	RoundHalfUp:   "half-up",
	RoundHalfDown: "half-down",
	RoundUp:       "up",
	RoundDown:     "down",
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
}

// ParseRounding converts a string to a rounding policy.
// The input must be one of the names returned by [Rounding.String],
// for example "half-even" or "floor".
//
// ParseRounding returns an error if the string does not represent
// a valid rounding policy.
func ParseRounding(name string) (Rounding, error) {
	for r, n := range roundingNames {
		if n == name {
			return Rounding(r), nil
		}
	}
	return RoundHalfEven, fmt.Errorf("%w: %q", errInvalidRounding, name)
}

// MustParseRounding is like [ParseRounding] but panics if the string cannot
// be parsed.
// It simplifies safe initialization of global variables holding rounding
// policies.
func MustParseRounding(name string) Rounding {
	r, err := ParseRounding(name)
	if err != nil {
		panic(fmt.Sprintf("ParseRounding(%q) failed: %v", name, err))
	}
	return r
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Rounding value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	if r >= maxRounding {
		return fmt.Sprintf("%%!Rounding(%d)", uint8(r))
	}
	return roundingNames[r]
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRounding].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rounding) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRounding(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundHalfEven, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rounding) MarshalText() ([]byte, error) {
	if r >= maxRounding {
		return nil, fmt.Errorf("marshaling %T: %w: %d", r, errInvalidRounding, uint8(r))
	}
	return []byte(roundingNames[r]), nil
}

var two = decimal.New(2, 0)

// rescale returns d represented with exactly the given scale.
// Extending the scale pads with zeros and is always exact; shrinking it
// rounds the excess digits per the policy.
// The result carries exponent -scale even when the value is unchanged,
// since the scale is part of a monetary value's identity.
func rescale(d decimal.Decimal, scale int32, r Rounding) decimal.Decimal {
	if -d.Exponent() <= scale {
		// No digits are dropped, any policy rescales exactly.
		return d.RoundBank(scale)
	}
	switch r {
	case RoundHalfUp:
		return d.Round(scale)
	case RoundHalfDown:
		return roundHalfDown(d, scale)
	case RoundUp:
		return d.RoundUp(scale)
	case RoundDown:
		return d.RoundDown(scale)
	case RoundCeiling:
		return d.RoundCeil(scale)
	case RoundFloor:
		return d.RoundFloor(scale)
	default:
		return d.RoundBank(scale)
	}
}

// roundHalfDown rounds to the nearest multiple of 10^-scale, ties toward zero.
func roundHalfDown(d decimal.Decimal, scale int32) decimal.Decimal {
	t := d.RoundDown(scale)
	rem := d.Sub(t)
	half := decimal.New(5, -scale-1)
	if rem.Abs().Cmp(half) > 0 {
		return t.Add(ulp(scale, d.Sign() < 0))
	}
	return t
}

// divRound returns d / e rounded to the given scale per the policy.
// Decimal division may produce a non-terminating expansion, so the rounding
// decision is made from the truncated quotient and its remainder rather than
// from any inexact intermediate result.
func divRound(d, e decimal.Decimal, scale int32, r Rounding) (decimal.Decimal, error) {
	if e.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}

	q, rem := d.QuoRem(e, scale)
	// q is an integer multiple of 10^-scale; pin its exponent.
	q = q.RoundBank(scale)
	if rem.IsZero() {
		return q, nil
	}

	neg := d.Sign()*e.Sign() < 0
	inc := ulp(scale, neg)
	// The candidates bracketing the exact quotient differ by e * 10^-scale,
	// so comparing 2*|rem| against |e| * 10^-scale detects the tie point.
	cmp := rem.Abs().Mul(two).Cmp(e.Abs().Mul(decimal.New(1, -scale)))

	switch r {
	case RoundHalfEven:
		if cmp > 0 || (cmp == 0 && oddAt(q, scale)) {
			q = q.Add(inc)
		}
	case RoundHalfUp:
		if cmp >= 0 {
			q = q.Add(inc)
		}
	case RoundHalfDown:
		if cmp > 0 {
			q = q.Add(inc)
		}
	case RoundUp:
		q = q.Add(inc)
	case RoundDown:
		// q is already truncated toward zero.
	case RoundCeiling:
		if !neg {
			q = q.Add(inc)
		}
	case RoundFloor:
		if neg {
			q = q.Add(inc)
		}
	}
	return q, nil
}

// ulp returns the smallest step at the given scale, signed.
func ulp(scale int32, neg bool) decimal.Decimal {
	u := decimal.New(1, -scale)
	if neg {
		return u.Neg()
	}
	return u
}

// oddAt reports whether the digit of q in the 10^-scale place is odd.
func oddAt(q decimal.Decimal, scale int32) bool {
	return !q.Shift(scale).Mod(two).IsZero()
}
