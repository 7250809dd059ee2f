/*
Package currency implements exact fixed-point arithmetic for monetary values.
It stores every value as an integer count of the smallest configured unit and
performs all arithmetic on that integer representation, so chained operations
never accumulate binary floating-point error.

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Configurable precision, rounding increment, symbol, separators, and
    display patterns, resolved once per value
  - Arithmetic over heterogeneous operands (numbers, decimal strings,
    other values) with a single canonical rounding rule
  - Distribution of a value into n parts that sum exactly to the original
  - Locale-style formatting with standard or Vedic digit grouping

# Representation

A [Value] holds a scaled integer amount together with a pointer to its
resolved, immutable [Settings]. The scaled amount equals
round(raw * 10^precision) and is the sole input to further arithmetic; the
display value is always re-derived from it. The zero Value is a usable "0.00"
with default settings.

Internally the package leans on [github.com/govalues/decimal] for exact
parsing, scaling, and overflow-checked arithmetic, so no step of the
conversion from input to scaled integer passes through a float64.

# Rounding

Two rounding rules are in play. The parser rounds half away from zero when
converting input to the scaled integer. The formatter rounds the display
value to the configured increment (for example, to the nearest 0.05) using
the same half-away-from-zero rule; the stored amount is never modified by
formatting.

# Errors

Operations return wrapped sentinel errors: [ErrInvalidInput] (unparseable
input while [WithErrorOnInvalid] is set), [ErrDivisionByZero],
[ErrOverflow] (results beyond the 19-digit coefficient), [ErrInvalidCount],
and [ErrInvalidSettings]. Without [WithErrorOnInvalid], unparseable input is
coerced to zero.
*/
package currency
