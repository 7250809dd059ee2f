package currency

import (
	"database/sql/driver"
	"fmt"
)

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON returns the display value as a plain JSON number, without
// symbol, grouping, or increment rounding.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.Decimal().String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The value is parsed under the default settings; a JSON null leaves the
// receiver unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (v *Value) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*v, err = New(string(text), WithErrorOnInvalid())
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Value{}, err)
	}
	return nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The value is parsed under the default settings.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	var err error
	*v, err = New(string(text), WithErrorOnInvalid())
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Value{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the exact display value with a canonical
// decimal point.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (v Value) AppendText(text []byte) ([]byte, error) {
	return append(text, v.Decimal().String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the exact display value with a canonical
// decimal point.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.Decimal().String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed as decimal strings; int64 and float64
// columns are converted as numbers. All inputs resolve to default settings.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (v *Value) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*v, err = New(value, WithErrorOnInvalid())
	case []byte:
		*v, err = New(string(value), WithErrorOnInvalid())
	case int64:
		*v, err = New(value, WithErrorOnInvalid())
	case float64:
		*v, err = New(value, WithErrorOnInvalid())
	case nil:
		err = fmt.Errorf("%T does not support null values", Value{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Value{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// It stores the exact display value as a decimal string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (v Value) Value() (driver.Value, error) {
	return v.Decimal().String(), nil
}
