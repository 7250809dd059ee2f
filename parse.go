package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	halfUnit = decimal.MustNew(5, 1)
	oneUnit  = decimal.MustNew(1, 0)
)

// parseScaled converts an operand to the scaled-integer space, computing
// value * 10^precision. The result is truncated to four guard digits and,
// when round is set, rounded half away from zero to an integer.
// Division parses its divisor with round=false so the divisor keeps its
// sub-unit precision until the final result rounding.
func parseScaled(input any, set *Settings, round bool) (decimal.Decimal, error) {
	d, err := coerce(input, set)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err = d.Mul(set.pow)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("scaling amount: %w", ErrOverflow)
	}
	d = d.Trunc(4)
	if !round {
		return d, nil
	}
	return roundHalfAway(d)
}

// coerce interprets an operand as a plain number.
// Unparseable input is an error only when ErrorOnInvalid is set;
// otherwise it collapses to zero.
func coerce(input any, set *Settings) (decimal.Decimal, error) {
	switch v := input.(type) {
	case Value:
		// The operand's own scaling is reconciled here: its display value
		// is treated as a plain number at the receiver's precision.
		return v.Decimal(), nil
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.MustNew(int64(v), 0), nil
	case int32:
		return decimal.MustNew(int64(v), 0), nil
	case int64:
		return decimal.MustNew(v, 0), nil
	case float32:
		return coerceFloat(float64(v), 32, input, set)
	case float64:
		return coerceFloat(v, 64, input, set)
	case string:
		d, err := decimal.Parse(cleanNumeric(v, set.Decimal))
		if err != nil {
			return invalidInput(input, set)
		}
		return d, nil
	default:
		return invalidInput(input, set)
	}
}

func coerceFloat(f float64, bitSize int, input any, set *Settings) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return invalidInput(input, set)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, bitSize))
	if err != nil {
		return invalidInput(input, set)
	}
	return d, nil
}

func invalidInput(input any, set *Settings) (decimal.Decimal, error) {
	if set.ErrorOnInvalid {
		return decimal.Decimal{}, fmt.Errorf("%w: %v (%T)", ErrInvalidInput, input, input)
	}
	return decimal.Decimal{}, nil
}

// cleanNumeric reduces a raw string to something the decimal parser accepts:
// a parenthesized amount becomes negative (accounting convention), every
// byte that is not a digit, a leading minus sign, or the configured decimal
// mark is dropped, and the first decimal mark is normalized to '.'.
func cleanNumeric(s, mark string) string {
	if open := strings.IndexByte(s, '('); open >= 0 {
		if closing := strings.LastIndexByte(s, ')'); closing > open {
			s = s[:open] + "-" + s[open+1:closing] + s[closing+1:]
		}
	}
	var b strings.Builder
	b.Grow(len(s))
	seenMark := false
	for i := 0; i < len(s); {
		if !seenMark && strings.HasPrefix(s[i:], mark) {
			b.WriteByte('.')
			seenMark = true
			i += len(mark)
			continue
		}
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' && b.Len() == 0:
			b.WriteByte(c)
		}
		i++
	}
	return b.String()
}

// roundHalfAway rounds d to an integer, half away from zero.
func roundHalfAway(d decimal.Decimal) (decimal.Decimal, error) {
	t := d.Trunc(0)
	f, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding amount: %w", ErrOverflow)
	}
	if f.CmpAbs(halfUnit) >= 0 {
		t, err = t.Add(oneUnit.CopySign(d))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("rounding amount: %w", ErrOverflow)
		}
	}
	return t, nil
}

// unitsDec lifts a scaled integer amount into the decimal space.
func unitsDec(units int64) decimal.Decimal {
	return decimal.MustNew(units, 0)
}

// toUnits extracts the scaled integer from an integral decimal.
func toUnits(d decimal.Decimal) (int64, error) {
	whole, _, ok := d.Int64(0)
	if !ok {
		return 0, fmt.Errorf("converting to minor units: %w", ErrOverflow)
	}
	return whole, nil
}
