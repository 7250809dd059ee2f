package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidInput indicates that an operand could not be interpreted as
	// a number, a decimal string, or a Value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow indicates a result beyond the supported coefficient range.
	ErrOverflow = errors.New("amount overflow")

	// ErrInvalidCount indicates a negative distribution count.
	ErrInvalidCount = errors.New("invalid number of parts")

	// ErrInvalidSettings indicates an unusable option combination.
	ErrInvalidSettings = errors.New("invalid settings")
)

// MaxPrecision is the largest supported number of fractional digits.
// The cap keeps 10^precision plus the parser's guard digits inside the
// 19-digit decimal coefficient.
const MaxPrecision = 15

// GroupingRule selects the digit-clustering convention used when inserting
// thousands separators.
type GroupingRule int

const (
	// GroupingStandard inserts a separator after every third digit counted
	// from the right, e.g. 1,234,567.
	GroupingStandard GroupingRule = iota

	// GroupingVedic groups the rightmost three digits, then every two,
	// following the Indian numbering system, e.g. 12,34,567.
	GroupingVedic
)

// Settings is the immutable configuration a Value is built with.
// It is resolved once per construction; derived values share the resolved
// instance and never mutate it.
//
// Pattern and NegativePattern are display templates in which '!' is replaced
// by the symbol and '#' by the grouped number body.
type Settings struct {
	Symbol           string
	Separator        string
	Decimal          string
	FormatWithSymbol bool
	ErrorOnInvalid   bool
	Precision        int
	Pattern          string
	NegativePattern  string
	Increment        decimal.Decimal
	Grouping         GroupingRule

	pow        decimal.Decimal // 10^Precision
	powInt     int64
	defaultInc bool
	optErr     error
}

// Option overrides a single Settings field.
type Option func(*Settings)

// WithSymbol sets the currency symbol substituted for '!' in patterns.
func WithSymbol(symbol string) Option {
	return func(s *Settings) { s.Symbol = symbol }
}

// WithSeparator sets the thousands separator.
// An empty separator disables grouping.
func WithSeparator(sep string) Option {
	return func(s *Settings) { s.Separator = sep }
}

// WithDecimalMark sets the decimal mark used when parsing strings and
// rendering formatted output.
func WithDecimalMark(mark string) Option {
	return func(s *Settings) { s.Decimal = mark }
}

// WithFormatSymbol controls whether Format includes the symbol by default.
func WithFormatSymbol(on bool) Option {
	return func(s *Settings) { s.FormatWithSymbol = on }
}

// WithErrorOnInvalid makes construction fail with [ErrInvalidInput] on
// unparseable input instead of coercing it to zero.
func WithErrorOnInvalid() Option {
	return func(s *Settings) { s.ErrorOnInvalid = true }
}

// WithPrecision sets the number of fractional digits retained, in
// [0, MaxPrecision].
func WithPrecision(digits int) Option {
	return func(s *Settings) { s.Precision = digits }
}

// WithPattern sets the display template for non-negative values.
func WithPattern(pattern string) Option {
	return func(s *Settings) { s.Pattern = pattern }
}

// WithNegativePattern sets the display template for negative values.
func WithNegativePattern(pattern string) Option {
	return func(s *Settings) { s.NegativePattern = pattern }
}

// WithIncrement sets the rounding step applied at display time,
// e.g. 0.05 to round to the nearest nickel.
// The step must be a positive finite number.
func WithIncrement(step float64) Option {
	return func(s *Settings) {
		if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
			s.optErr = fmt.Errorf("%w: increment %v must be positive", ErrInvalidSettings, step)
			return
		}
		d, err := decimal.Parse(strconv.FormatFloat(step, 'f', -1, 64))
		if err != nil || !d.IsPos() {
			s.optErr = fmt.Errorf("%w: increment %v must be positive", ErrInvalidSettings, step)
			return
		}
		s.Increment = d
	}
}

// WithGrouping sets the digit-grouping rule.
func WithGrouping(rule GroupingRule) Option {
	return func(s *Settings) { s.Grouping = rule }
}

// WithVedicGrouping selects the Indian numbering convention.
// It is shorthand for WithGrouping(GroupingVedic).
func WithVedicGrouping() Option {
	return func(s *Settings) { s.Grouping = GroupingVedic }
}

func defaultSettings() Settings {
	return Settings{
		Symbol:          "$",
		Separator:       ",",
		Decimal:         ".",
		Precision:       2,
		Pattern:         "!#",
		NegativePattern: "-!#",
	}
}

// defaultResolved backs the zero Value and option-less constructors.
var defaultResolved = func() Settings {
	s := defaultSettings()
	if err := s.resolve(); err != nil {
		panic(fmt.Sprintf("resolving default settings failed: %v", err))
	}
	return s
}()

// resolveSettings applies opts over the defaults and validates the result.
func resolveSettings(opts []Option) (*Settings, error) {
	if len(opts) == 0 {
		return &defaultResolved, nil
	}
	s := defaultSettings()
	for _, o := range opts {
		o(&s)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) resolve() error {
	if s.optErr != nil {
		return s.optErr
	}
	if s.Precision < 0 || s.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d out of range [0, %d]", ErrInvalidSettings, s.Precision, MaxPrecision)
	}
	if s.Decimal == "" {
		return fmt.Errorf("%w: empty decimal mark", ErrInvalidSettings)
	}
	if !strings.Contains(s.Pattern, "#") {
		return fmt.Errorf("%w: pattern %q does not contain '#'", ErrInvalidSettings, s.Pattern)
	}
	if !strings.Contains(s.NegativePattern, "#") {
		return fmt.Errorf("%w: negative pattern %q does not contain '#'", ErrInvalidSettings, s.NegativePattern)
	}
	s.powInt = 1
	for i := 0; i < s.Precision; i++ {
		s.powInt *= 10
	}
	s.pow = decimal.MustNew(s.powInt, 0)
	if s.Increment.IsZero() {
		s.Increment = decimal.MustNew(1, s.Precision)
		s.defaultInc = true
	} else if s.Increment.IsNeg() {
		return fmt.Errorf("%w: increment %v must be positive", ErrInvalidSettings, s.Increment)
	}
	return nil
}
