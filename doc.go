/*
Package money implements an immutable, currency-aware monetary value type.
It combines an arbitrary-precision decimal amount from the [decimal] package
with a [Currency] descriptor and a per-value [Rounding] policy, and guards
every construction and restoration against invalid or mismatched states.

# Representation

A [Money] value holds three semantic fields: the decimal amount, the currency,
and the rounding policy.
The scale of the amount (its number of fractional digits) may never exceed the
scale allowed by the currency; this invariant is validated when a value is
constructed and again when one is restored from a marshaled snapshot.
Negative scales are permitted, so an amount can be kept in terms of thousands.

# Equality

Two equivalence relations coexist.
[Money.Equal] is structural and scale-sensitive: 10 and 10.00 are unequal even
though numerically equal, and the currency and rounding policy must match too.
[Money.Eq] compares amounts numerically, ignoring scale, and requires matching
currencies.
[Money.Hash] is consistent with Equal and is precomputed at construction,
keeping the value fully immutable.

# Operations

Addition and subtraction are exact and require matching currencies.
Multiplication by an integral factor is exact; multiplication by a decimal
factor rescales the product to the currency's scale using the value's
rounding policy.
Division always rounds per the policy, as decimal division can produce
non-terminating expansions, and preserves the dividend's scale.
[Money.Cmp] and the comparison predicates reject mixed currencies, while
[Money.CmpTotal] imposes an error-free total order for sorting.

# Defaults

The [Defaults] value carries a default currency and rounding policy for the
terse constructors.
Build it once at startup and pass it explicitly; the zero Defaults reports
[ErrUninitializedDefaults] rather than silently picking a currency.

# Errors

Domain errors are tagged: [ErrCurrencyMismatch] (with the structured
[CurrencyMismatchError] carrying both identities), [ErrDivisionByZero], and
[ErrUninitializedDefaults] are expected conditions callers can branch on with
[errors.Is], whereas [ErrInvalidState] marks an invariant violation at
construction or restoration time and is never silently corrected.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money
