package currency

import (
	"encoding/json"
	"testing"
)

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		value any
		opts  []Option
		want  string
	}{
		{1234.5, nil, "1234.50"},
		{-1.23, nil, "-1.23"},
		{0, nil, "0.00"},
		{5, []Option{WithPrecision(0)}, "5"},
	}
	for _, tt := range tests {
		got, err := json.Marshal(MustNew(tt.value, tt.opts...))
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", tt.value, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValue_MarshalJSON_ignoresIncrement(t *testing.T) {
	// the increment shapes display strings only, never the serialized value
	got, err := json.Marshal(MustNew(1.43, WithIncrement(0.05)))
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(got) != "1.43" {
		t.Errorf("json.Marshal = %q, want %q", got, "1.43")
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text string
			want int64
		}{
			{"12.34", 1234},
			{"-0.01", -1},
			{`"12.34"`, 1234},
			{"0", 0},
		}
		for _, tt := range tests {
			var v Value
			if err := v.UnmarshalJSON([]byte(tt.text)); err != nil {
				t.Errorf("UnmarshalJSON(%q) failed: %v", tt.text, err)
				continue
			}
			if v.MinorUnits() != tt.want {
				t.Errorf("UnmarshalJSON(%q) = %v units, want %v", tt.text, v.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		v := MustNew(1.23)
		if err := v.UnmarshalJSON([]byte("null")); err != nil {
			t.Fatalf("UnmarshalJSON(null) failed: %v", err)
		}
		if v.MinorUnits() != 123 {
			t.Errorf("UnmarshalJSON(null) changed value to %v units", v.MinorUnits())
		}
	})

	t.Run("error", func(t *testing.T) {
		var v Value
		if err := v.UnmarshalJSON([]byte("{}")); err == nil {
			t.Errorf("UnmarshalJSON({}) did not fail")
		}
	})

	t.Run("struct round trip", func(t *testing.T) {
		type invoice struct {
			Total Value `json:"total"`
		}
		in := invoice{Total: MustNew("99.95")}
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		if string(data) != `{"total":99.95}` {
			t.Errorf("json.Marshal = %s, want {\"total\":99.95}", data)
		}
		var out invoice
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("json.Unmarshal failed: %v", err)
		}
		if out.Total.MinorUnits() != in.Total.MinorUnits() {
			t.Errorf("round trip = %v units, want %v", out.Total.MinorUnits(), in.Total.MinorUnits())
		}
	})
}

func TestValue_Text(t *testing.T) {
	v := MustNew(-1234.5)
	text, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "-1234.50" {
		t.Errorf("MarshalText = %q, want %q", text, "-1234.50")
	}

	appended, err := v.AppendText([]byte("x="))
	if err != nil {
		t.Fatalf("AppendText failed: %v", err)
	}
	if string(appended) != "x=-1234.50" {
		t.Errorf("AppendText = %q, want %q", appended, "x=-1234.50")
	}

	var u Value
	if err := u.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if u.MinorUnits() != v.MinorUnits() {
		t.Errorf("text round trip = %v units, want %v", u.MinorUnits(), v.MinorUnits())
	}
}

func TestValue_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input any
			want  int64
		}{
			{"12.34", 1234},
			{[]byte("-0.05"), -5},
			{int64(5), 500},
			{12.34, 1234},
		}
		for _, tt := range tests {
			var v Value
			if err := v.Scan(tt.input); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.input, err)
				continue
			}
			if v.MinorUnits() != tt.want {
				t.Errorf("Scan(%v) = %v units, want %v", tt.input, v.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"nil":  nil,
			"bool": true,
		}
		for name, input := range tests {
			t.Run(name, func(t *testing.T) {
				var v Value
				if err := v.Scan(input); err == nil {
					t.Errorf("Scan(%v) did not fail", input)
				}
			})
		}
	})
}

func TestValue_Value(t *testing.T) {
	got, err := MustNew(1.23).Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if got != "1.23" {
		t.Errorf("Value() = %v, want %q", got, "1.23")
	}
}
