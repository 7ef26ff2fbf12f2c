package money

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money type represents an immutable amount of money in a single currency,
// together with the rounding policy applied whenever an operation on it must
// collapse excess precision.
// Its zero value corresponds to "0 XXX" with half-even rounding, where [XXX]
// indicates an unknown currency.
// Money is designed to be safe for concurrent use by multiple goroutines.
//
// The scale of the amount (the number of digits after the decimal point)
// never exceeds the scale of the currency.
// A negative scale is permitted and represents implicit multiples; an amount
// of thousands of dollars, for instance, has a scale of -3.
//
// Two distinct equivalence relations are provided and must not be confused:
// [Money.Equal] is sensitive to scale, so 10 and 10.00 are unequal, whereas
// [Money.Eq] compares amounts numerically, ignoring scale.
type Money struct {
	amount   decimal.Decimal // monetary value
	curr     Currency        // ISO 4217 currency
	rounding Rounding        // policy for rescaling and division
	// hash is derived from the three fields above at construction time.
	// It is not part of the value's identity and is never marshaled.
	hash uint32
}

const (
	hashSeed   = 23
	hashFactor = 37
)

// newUnsafe creates a new monetary value without checking the scale bound.
// Use it only if you are absolutely sure that the arguments are valid.
func newUnsafe(d decimal.Decimal, c Currency, r Rounding) Money {
	return Money{amount: d, curr: c, rounding: r, hash: hashFields(d, c, r)}
}

// newSafe creates a new monetary value and checks the scale bound.
func newSafe(d decimal.Decimal, c Currency, r Rounding) (Money, error) {
	if scale := -d.Exponent(); scale > c.Scale() {
		return Money{}, fmt.Errorf(
			"%w: amount has %d decimals, but currency %v only takes %d",
			ErrInvalidState, scale, c, c.Scale(),
		)
	}
	return newUnsafe(d, c, r), nil
}

// New returns a monetary value with the given amount, currency, and rounding
// policy.
//
// New returns an error wrapping [ErrInvalidState] if the scale of the amount
// exceeds the scale of the currency.
// A scale smaller than the currency's, including a negative one, is valid and
// is preserved; the amount is never padded or rescaled.
func New(amount decimal.Decimal, curr Currency, rounding Rounding) (Money, error) {
	return newSafe(amount, curr, rounding)
}

// MustNew is like [New] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding monetary
// values.
func MustNew(amount decimal.Decimal, curr Currency, rounding Rounding) Money {
	m, err := New(amount, curr, rounding)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v, %v) failed: %v", amount, curr, rounding, err))
	}
	return m
}

// Parse converts currency, decimal, and rounding strings to a monetary value.
// The scale of the decimal string is preserved exactly, so "10" and "10.00"
// parse to distinct values.
// See also constructors [ParseCurr] and [ParseRounding].
func Parse(curr, amount, rounding string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	r, err := ParseRounding(rounding)
	if err != nil {
		return Money{}, fmt.Errorf("parsing rounding: %w", err)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newSafe(d, c, r)
}

// MustParse is like [Parse] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding
// monetary values.
func MustParse(curr, amount, rounding string) Money {
	m, err := Parse(curr, amount, rounding)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q, %q) failed: %v", curr, amount, rounding, err))
	}
	return m
}

// Amount returns the decimal amount of the monetary value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Curr returns the currency of the monetary value.
func (m Money) Curr() Currency {
	return m.curr
}

// Rounding returns the rounding policy of the monetary value.
func (m Money) Rounding() Rounding {
	return m.rounding
}

// Scale returns the number of digits after the decimal point.
// The scale can be negative; see the [Money] type description.
func (m Money) Scale() int32 {
	return -m.amount.Exponent()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.amount.Sign() > 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.amount.Sign() < 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// SameCurr returns true if monetary values are denominated in the same
// currency.
// See also method [Money.Curr].
func (m Money) SameCurr(o Money) bool {
	return m.curr == o.curr
}

// Add returns the exact sum of monetary values m and o.
// The result preserves the currency and the rounding policy of m; no rounding
// is needed, as the scales of both operands are already bounded by the
// currency.
// The scale of the result is the larger of the two operand scales, so adding
// 10 and 3.33 yields 13.33, not a truncated integer.
//
// Add returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Add(o Money) (Money, error) {
	v, err := m.add(o)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, o, err)
	}
	return v, nil
}

func (m Money) add(o Money) (Money, error) {
	if !m.SameCurr(o) {
		return Money{}, mismatchErr(m.curr, o.curr)
	}
	return newUnsafe(m.amount.Add(o.amount), m.curr, m.rounding), nil
}

// Sub returns the exact difference between monetary values m and o.
// The result preserves the currency and the rounding policy of m; like
// [Money.Add], its scale is the larger of the two operand scales.
//
// Sub returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Sub(o Money) (Money, error) {
	v, err := m.sub(o)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, o, err)
	}
	return v, nil
}

func (m Money) sub(o Money) (Money, error) {
	if !m.SameCurr(o) {
		return Money{}, mismatchErr(m.curr, o.curr)
	}
	return newUnsafe(m.amount.Sub(o.amount), m.curr, m.rounding), nil
}

// MulInt returns the exact product of monetary value m and an integral
// factor.
// The scale of the result is equal to the scale of m and no rounding is
// applied.
func (m Money) MulInt(factor int64) Money {
	return newUnsafe(m.amount.Mul(decimal.NewFromInt(factor)), m.curr, m.rounding)
}

// Mul returns the product of monetary value m and a decimal factor.
// The result is rescaled to the scale of the currency using the rounding
// policy of m; this is the only multiplication that can lose precision.
// For integral factors, use [Money.MulInt], which is always exact.
func (m Money) Mul(factor decimal.Decimal) Money {
	d := rescale(m.amount.Mul(factor), m.curr.Scale(), m.rounding)
	return newUnsafe(d, m.curr, m.rounding)
}

// Div returns the quotient of monetary value m and a decimal divisor.
// The scale of the result is equal to the scale of m; excess precision,
// which decimal division can produce without bound, is collapsed using the
// rounding policy of m.
//
// Div returns an error wrapping [ErrDivisionByZero] if the divisor is zero.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	d, err := divRound(m.amount, divisor, m.Scale(), m.rounding)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, divisor, err)
	}
	return newUnsafe(d, m.curr, m.rounding), nil
}

// DivInt returns the quotient of monetary value m and an integral divisor.
// See also method [Money.Div].
func (m Money) DivInt(divisor int64) (Money, error) {
	return m.Div(decimal.NewFromInt(divisor))
}

// Abs returns the absolute value of m.
// The scale, currency, and rounding policy are preserved.
func (m Money) Abs() Money {
	if !m.IsNeg() {
		return m
	}
	return m.Neg()
}

// Neg returns a monetary value with the opposite sign.
// The scale, currency, and rounding policy are preserved.
func (m Money) Neg() Money {
	return newUnsafe(m.amount.Neg(), m.curr, m.rounding)
}

// Sum folds [Money.Add] over a sequence of same-currency monetary values,
// starting from a zero amount denominated in currIfEmpty with the given
// rounding policy.
// If the sequence is empty, the zero starting value is returned, which is why
// the desired currency must be supplied explicitly.
// See also method [Defaults.Sum].
//
// Sum returns an error wrapping [ErrCurrencyMismatch] on the first element
// whose currency differs from currIfEmpty.
func Sum(moneys []Money, currIfEmpty Currency, rounding Rounding) (Money, error) {
	sum := newUnsafe(decimal.New(0, 0), currIfEmpty, rounding)
	for _, m := range moneys {
		var err error
		sum, err = sum.Add(m)
		if err != nil {
			return Money{}, fmt.Errorf("summing %d amounts: %w", len(moneys), err)
		}
	}
	return sum, nil
}

// Cmp compares monetary values numerically, ignoring their scales,
// and returns:
//
//	-1 if m < o
//	 0 if m = o
//	+1 if m > o
//
// See also methods [Money.CmpTotal], [Money.Eq].
//
// Cmp returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Cmp(o Money) (int, error) {
	if !m.SameCurr(o) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, o, mismatchErr(m.curr, o.curr))
	}
	return m.amount.Cmp(o.amount), nil
}

// Eq returns true if the amounts are numerically equal, ignoring scale,
// so 10 and 10.00 are equal.
// This method is not synonymous with [Money.Equal], which is sensitive
// to scale.
//
// Eq returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Eq(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c == 0, err
}

// Gt returns true if m is numerically greater than o.
//
// Gt returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Gt(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c > 0, err
}

// Gteq returns true if m is numerically greater than or equal to o.
//
// Gteq returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Gteq(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c >= 0, err
}

// Lt returns true if m is numerically less than o.
//
// Lt returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Lt(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c < 0, err
}

// Lteq returns true if m is numerically less than or equal to o.
//
// Lteq returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Lteq(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c <= 0, err
}

// CmpTotal imposes a total order on monetary values, comparing, in this
// order: the amounts numerically, then the currency codes lexicographically,
// then the rounding policies by enumeration order.
// Unlike [Money.Cmp], it never fails, which makes it usable for deterministic
// sorting of mixed-currency collections.
//
// CmpTotal returns:
//
//	-1 if m is ordered before o
//	 0 if m and o are ordered together
//	+1 if m is ordered after o
func (m Money) CmpTotal(o Money) int {
	if c := m.amount.Cmp(o.amount); c != 0 {
		return c
	}
	if c := strings.Compare(m.curr.Code(), o.curr.Code()); c != 0 {
		return c
	}
	switch {
	case m.rounding < o.rounding:
		return -1
	case m.rounding > o.rounding:
		return 1
	}
	return 0
}

// Equal reports whether m and o are structurally identical: the amounts must
// match exactly, including their scales, along with the currencies and the
// rounding policies.
// Equal distinguishes 10 from 10.00; use [Money.Eq] for numeric comparison.
func (m Money) Equal(o Money) bool {
	return m.curr == o.curr &&
		m.rounding == o.rounding &&
		m.amount.Exponent() == o.amount.Exponent() &&
		m.amount.Equal(o.amount)
}

// Hash returns a hash code consistent with [Money.Equal]: two values that are
// Equal always hash identically.
// The hash is derived solely from the amount, currency, and rounding policy;
// it is computed at construction time, stored, and excluded from every
// marshaled form.
func (m Money) Hash() uint32 {
	if m.hash != 0 {
		return m.hash
	}
	// The zero Money carries no precomputed hash; deriving it here is
	// idempotent, as the fields are immutable.
	return hashFields(m.amount, m.curr, m.rounding)
}

func hashFields(d decimal.Decimal, c Currency, r Rounding) uint32 {
	h := uint32(hashSeed)
	h = h*hashFactor + hashString(d.String())
	h = h*hashFactor + uint32(d.Exponent())
	h = h*hashFactor + hashString(c.Code())
	h = h*hashFactor + uint32(r)
	return h
}

func hashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// plainString renders d with its exponent preserved, so an amount with
// scale 2 always shows two fractional digits.
// [decimal.Decimal.String] trims trailing fractional zeros and would fold
// 10.00 into "10", losing the scale on the way out.
func plainString(d decimal.Decimal) string {
	if e := d.Exponent(); e < 0 {
		return d.StringFixed(-e)
	}
	return d.String()
}

// String implements the [fmt.Stringer] interface and returns the plain
// decimal amount followed by a space and the currency's display symbol,
// for example "10.00 $".
// The scale of the amount is preserved, so 10 and 10.00 render differently.
// The result is informational, locale-independent, and not guaranteed to be
// parseable.
// See also methods [Currency.Symbol], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return plainString(m.amount) + " " + m.curr.Symbol()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | 5.67 $      | Amount and currency symbol |
//	| %q     | "5.67 $"    | Quoted amount and symbol   |
//	| %f     | 5.67        | Amount                     |
//	| %c     | USD         | Currency code              |
//
// The '-' format flag can be used with all verbs.
//
// Precision is only supported for the %f verb; rescaling to the requested
// precision uses the value's rounding policy, but never below the scale of
// the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		d := m.amount
		if p, ok := state.Precision(); ok {
			scale := max(int32(p), m.curr.Scale())
			d = rescale(d, scale, m.rounding)
		}
		text = plainString(d)
	case 'c', 'C':
		text = m.curr.Code()
	case 'q', 'Q':
		text = "\"" + m.String() + "\""
	default:
		text = m.String()
	}

	// Padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// moneyJSON is the persisted snapshot of a monetary value: the three semantic
// fields and nothing else.
// The hash is a derived value and is recomputed on demand after restoration.
type moneyJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
	Rounding Rounding `json:"rounding"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is written in its plain decimal string form, preserving the
// scale exactly.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   plainString(m.amount),
		Currency: m.curr,
		Rounding: m.rounding,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The amount is reconstructed from its plain decimal string representation,
// so no non-canonical internal representation can be carried over from the
// wire, and the full construction-time validation is re-run: a corrupted or
// tampered snapshot whose scale exceeds the currency's fails here with an
// error wrapping [ErrInvalidState], not later.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	d, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: parsing amount: %w", Money{}, err)
	}
	v, err := newSafe(d, raw.Currency, raw.Rounding)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = v
	return nil
}
