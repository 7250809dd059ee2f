package currency

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Value represents an immutable monetary amount.
// The authoritative state is a scaled integer equal to
// round(raw * 10^precision); every operation derives a new Value from it and
// shares the receiver's resolved [Settings].
// The zero Value is 0 with default settings and is safe to use.
// Value is designed to be safe for concurrent use by multiple goroutines.
type Value struct {
	units int64     // scaled integer amount
	set   *Settings // resolved configuration, nil means defaults
}

// New converts an operand to a Value under the given options.
// The operand may be a number (int, int32, int64, float32, float64,
// [decimal.Decimal]), a decimal string, or another Value, whose own scaling
// is reconciled against the target precision.
//
// New returns an error if:
//   - the options do not resolve to usable settings;
//   - the operand is unparseable and [WithErrorOnInvalid] is set
//     (without it, unparseable input yields zero);
//   - the scaled result exceeds the supported coefficient range.
func New(value any, opts ...Option) (Value, error) {
	set, err := resolveSettings(opts)
	if err != nil {
		return Value{}, fmt.Errorf("resolving settings: %w", err)
	}
	d, err := parseScaled(value, set, true)
	if err != nil {
		return Value{}, fmt.Errorf("parsing %v: %w", value, err)
	}
	u, err := toUnits(d)
	if err != nil {
		return Value{}, fmt.Errorf("parsing %v: %w", value, err)
	}
	return Value{units: u, set: set}, nil
}

// MustNew is like [New] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding values.
func MustNew(value any, opts ...Option) Value {
	v, err := New(value, opts...)
	if err != nil {
		panic(fmt.Sprintf("New(%v) failed: %v", value, err))
	}
	return v
}

// NewFromMinorUnits converts an integer count of the smallest unit
// (e.g. cents) to a Value.
// See also method [Value.MinorUnits].
func NewFromMinorUnits(units int64, opts ...Option) (Value, error) {
	set, err := resolveSettings(opts)
	if err != nil {
		return Value{}, fmt.Errorf("resolving settings: %w", err)
	}
	return Value{units: units, set: set}, nil
}

// config returns the resolved settings, falling back to the defaults so the
// zero Value behaves like 0 at precision 2.
func (v Value) config() *Settings {
	if v.set == nil {
		return &defaultResolved
	}
	return v.set
}

// MinorUnits returns the scaled integer amount, the authoritative
// representation of the value.
// See also constructor [NewFromMinorUnits].
func (v Value) MinorUnits() int64 {
	return v.units
}

// Decimal returns the display value, units / 10^precision, as an exact decimal.
func (v Value) Decimal() decimal.Decimal {
	return decimal.MustNew(v.units, v.config().Precision)
}

// Float64 returns the nearest binary floating-point representation of the
// display value. The conversion may lose precision; float64 results must
// never feed back into arithmetic.
func (v Value) Float64() (f float64, ok bool) {
	return v.Decimal().Float64()
}

// Settings returns a copy of the resolved configuration the value was built with.
func (v Value) Settings() Settings {
	return *v.config()
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Value) Sign() int {
	switch {
	case v.units < 0:
		return -1
	case v.units > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Value) IsZero() bool {
	return v.units == 0
}

// IsNeg returns:
//
//	true  if v < 0
//	false otherwise
func (v Value) IsNeg() bool {
	return v.units < 0
}

// IsPos returns:
//
//	true  if v > 0
//	false otherwise
func (v Value) IsPos() bool {
	return v.units > 0
}

// Abs returns the absolute value.
func (v Value) Abs() Value {
	if v.units < 0 {
		return Value{units: -v.units, set: v.set}
	}
	return v
}

// Neg returns a value with the opposite sign.
func (v Value) Neg() Value {
	return Value{units: -v.units, set: v.set}
}

// Cmp compares display values and returns:
//
//	-1 if v < b
//	 0 if v = b
//	+1 if v > b
//
// Values with different precisions compare by numeric value.
func (v Value) Cmp(b Value) int {
	return v.Decimal().Cmp(b.Decimal())
}

// Add returns the sum of v and the parsed operand.
// The operand is parsed under the receiver's settings; its own settings,
// if any, are ignored.
//
// Add returns an error if the operand is invalid (see [New]) or the result
// overflows.
func (v Value) Add(x any) (Value, error) {
	c, err := v.add(x)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v + %v]: %w", v, x, err)
	}
	return c, nil
}

func (v Value) add(x any) (Value, error) {
	d, err := parseScaled(x, v.config(), true)
	if err != nil {
		return Value{}, err
	}
	sum, err := unitsDec(v.units).Add(d)
	if err != nil {
		return Value{}, fmt.Errorf("adding amounts: %w", ErrOverflow)
	}
	u, err := toUnits(sum)
	if err != nil {
		return Value{}, err
	}
	return Value{units: u, set: v.set}, nil
}

// Sub returns the difference between v and the parsed operand.
//
// Sub returns an error if the operand is invalid (see [New]) or the result
// overflows.
func (v Value) Sub(x any) (Value, error) {
	c, err := v.sub(x)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v - %v]: %w", v, x, err)
	}
	return c, nil
}

func (v Value) sub(x any) (Value, error) {
	d, err := parseScaled(x, v.config(), true)
	if err != nil {
		return Value{}, err
	}
	diff, err := unitsDec(v.units).Sub(d)
	if err != nil {
		return Value{}, fmt.Errorf("subtracting amounts: %w", ErrOverflow)
	}
	u, err := toUnits(diff)
	if err != nil {
		return Value{}, err
	}
	return Value{units: u, set: v.set}, nil
}

// Mul returns the product of v and a raw multiplier.
// Unlike the other operations, the operand is not re-scaled: a multiplier of
// 2 doubles the value regardless of precision. The product funnels through
// the same guard-digit truncation and half-away-from-zero rounding as
// construction, so one canonical rounding rule applies everywhere.
//
// Mul returns an error if the operand is invalid (see [New]) or the result
// overflows.
func (v Value) Mul(x any) (Value, error) {
	c, err := v.mul(x)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v * %v]: %w", v, x, err)
	}
	return c, nil
}

func (v Value) mul(x any) (Value, error) {
	m, err := coerce(x, v.config())
	if err != nil {
		return Value{}, err
	}
	d, err := unitsDec(v.units).Mul(m)
	if err != nil {
		return Value{}, fmt.Errorf("multiplying amounts: %w", ErrOverflow)
	}
	d, err = roundHalfAway(d.Trunc(4))
	if err != nil {
		return Value{}, err
	}
	u, err := toUnits(d)
	if err != nil {
		return Value{}, err
	}
	return Value{units: u, set: v.set}, nil
}

// Div returns the quotient of v and the parsed divisor.
// The divisor is parsed without intermediate rounding so that exact
// fractional divisors (e.g. "0.3") keep their sub-unit precision until the
// final result rounding.
//
// Div returns an error if the operand is invalid (see [New]), the divisor
// is zero, or the result overflows.
func (v Value) Div(x any) (Value, error) {
	c, err := v.div(x)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v / %v]: %w", v, x, err)
	}
	return c, nil
}

func (v Value) div(x any) (Value, error) {
	set := v.config()
	e, err := parseScaled(x, set, false)
	if err != nil {
		return Value{}, err
	}
	if e.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	q, err := unitsDec(v.units).Quo(e)
	if err != nil {
		return Value{}, fmt.Errorf("dividing amounts: %w", ErrOverflow)
	}
	d, err := q.Mul(set.pow)
	if err != nil {
		return Value{}, fmt.Errorf("scaling quotient: %w", ErrOverflow)
	}
	d, err = roundHalfAway(d.Trunc(4))
	if err != nil {
		return Value{}, err
	}
	u, err := toUnits(d)
	if err != nil {
		return Value{}, err
	}
	return Value{units: u, set: v.set}, nil
}

// Distribute splits the value into n parts that sum exactly to the original;
// no smallest unit is lost or gained to rounding.
// Each part starts from the quotient truncated toward zero, and the leftover
// units are absorbed one by one by the earliest parts, respecting the sign
// of the value. n = 0 yields an empty slice.
//
// Distribute returns an error if n is negative.
func (v Value) Distribute(n int) ([]Value, error) {
	r, err := v.distribute(n)
	if err != nil {
		return nil, fmt.Errorf("distributing %v into %d parts: %w", v, n, err)
	}
	return r, nil
}

func (v Value) distribute(n int) ([]Value, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	res := make([]Value, n)
	if n == 0 {
		return res, nil
	}
	share := v.units / int64(n) // truncates toward zero
	rem := v.units - share*int64(n)
	step := int64(1)
	if rem < 0 {
		rem, step = -rem, -1
	}
	for i := range res {
		u := share
		if int64(i) < rem {
			u += step
		}
		res[i] = Value{units: u, set: v.set}
	}
	return res, nil
}
