package currency

import (
	"strings"

	"github.com/govalues/decimal"
)

// String implements the [fmt.Stringer] interface and returns the canonical
// numeric string: the display value rounded to the configured increment,
// rendered with exactly precision fractional digits, a canonical '.' decimal
// mark, and no grouping. With the default increment the output round-trips
// exactly through [New].
// See also method [Value.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	set := v.config()
	d := v.Decimal()
	if set.defaultInc {
		return d.String()
	}
	r, err := roundToIncrement(d, set.Increment)
	if err != nil {
		// the increment-rounded value is not representable, show the exact one
		return d.String()
	}
	return r.Rescale(set.Precision).String()
}

// roundToIncrement returns round(d/step) * step, half away from zero.
func roundToIncrement(d, step decimal.Decimal) (decimal.Decimal, error) {
	q, err := d.Quo(step)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, err = roundHalfAway(q)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return q.Mul(step)
}

// Format renders the value using the configured pattern, symbol, separators,
// and grouping rule. The pattern applies when the value is non-negative, the
// negative pattern otherwise; '!' is replaced by the symbol and '#' by the
// grouped number body.
// An optional argument overrides the FormatWithSymbol setting for this call.
func (v Value) Format(useSymbol ...bool) string {
	set := v.config()
	withSymbol := set.FormatWithSymbol
	if len(useSymbol) > 0 {
		withSymbol = useSymbol[0]
	}

	s := strings.TrimPrefix(v.String(), "-")
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	body := groupDigits(intPart, set.Separator, set.Grouping)
	if hasFrac {
		body += set.Decimal + fracPart
	}

	pattern := set.Pattern
	if v.units < 0 {
		pattern = set.NegativePattern
	}
	symbol := ""
	if withSymbol {
		symbol = set.Symbol
	}

	out := strings.Replace(pattern, "!", symbol, 1)
	return strings.Replace(out, "#", body, 1)
}

// groupDigits inserts sep between digit groups of the integer part.
// Standard grouping cuts every three digits from the right; Vedic grouping
// cuts three digits first, then every two.
func groupDigits(digits, sep string, rule GroupingRule) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	// cut positions, collected right to left
	var cuts []int
	size := 3
	for pos := len(digits) - size; pos > 0; pos -= size {
		cuts = append(cuts, pos)
		if rule == GroupingVedic {
			size = 2
		}
	}

	var b strings.Builder
	b.Grow(len(digits) + len(cuts)*len(sep))
	prev := 0
	for i := len(cuts) - 1; i >= 0; i-- {
		b.WriteString(digits[prev:cuts[i]])
		b.WriteString(sep)
		prev = cuts[i]
	}
	b.WriteString(digits[prev:])
	return b.String()
}

// Dollars returns the integer part of the value, truncated toward zero.
// See also method [Value.Cents].
func (v Value) Dollars() int64 {
	return v.units / v.config().powInt
}

// Cents returns the sub-unit part of the value as an integer count of the
// smallest unit. The sign follows the value: -1.25 has -25 cents.
// See also method [Value.Dollars].
func (v Value) Cents() int64 {
	return v.units % v.config().powInt
}
