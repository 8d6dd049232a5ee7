package attrs

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Value wraps a single raw attribute as it was stored (decoded JSON or YAML).
// Zero Value represents an absent attribute.
type Value struct {
	raw any
}

// V wraps raw attribute value.
func V(raw any) Value {
	if v, ok := raw.(Value); ok {
		return v
	}
	return Value{raw: raw}
}

// Raw returns underlying value.
func (v Value) Raw() any {
	return v.raw
}

// IsSet reports whether attribute is present at all.
func (v Value) IsSet() bool {
	return v.raw != nil
}

// Truthy follows script truthiness: absent, false, empty string, zero and
// NaN are false, everything else is true.
func (v Value) Truthy() bool {
	switch x := v.raw.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}
	if f, ok := number(v.raw); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// HasNumber reports whether value exists even if it is 0.
func (v Value) HasNumber() bool {
	if v.Truthy() {
		return true
	}
	if s, ok := v.raw.(string); ok {
		return s == "0"
	}
	_, ok := number(v.raw)
	return ok
}

// IsNumber reports whether underlying value is numeric type (not a string).
func (v Value) IsNumber() bool {
	_, ok := number(v.raw)
	return ok
}

// String renders value the way it would be concatenated into CSS text.
// Absent values and false render as empty string.
func (v Value) String() string {
	switch x := v.raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return ""
	case json.Number:
		return x.String()
	}
	if f, ok := number(v.raw); ok {
		return FormatNumber(f)
	}
	return fmt.Sprint(v.raw)
}

// Float returns numeric value if it is a number or a string holding a number.
func (v Value) Float() (float64, bool) {
	if s, ok := v.raw.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	if n, ok := v.raw.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	return number(v.raw)
}

// LeadingFloat parses value the way parseFloat does: longest numeric prefix
// of the string form, so "10px" gives 10.
func (v Value) LeadingFloat() (float64, bool) {
	if f, ok := v.Float(); ok {
		return f, true
	}
	return ParseLeadingFloat(v.String())
}

// Int returns value truncated to integer.
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Equal compares two values, numbers are compared numerically so that 1 (int)
// from configuration equals 1.0 decoded from JSON.
func (v Value) Equal(o Value) bool {
	if v.raw == nil || o.raw == nil {
		return v.raw == nil && o.raw == nil
	}
	if a, ok := number(v.raw); ok {
		if b, ok := number(o.raw); ok {
			return a == b
		}
		return false
	}
	if a, ok := v.raw.(string); ok {
		b, ok := o.raw.(string)
		return ok && a == b
	}
	return reflect.DeepEqual(v.raw, o.raw)
}

// FormatNumber renders number in shortest decimal form: 10, 1.5, -0.25.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseLeadingFloat extracts floating point number from the beginning of s.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case (c == '+' || c == '-') && (end == 0 || s[end-1] == 'e' || s[end-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			break scan
		}
		end++
	}
	for end > 0 {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f, seenDigit
		}
		end--
	}
	return 0, false
}

func number(raw any) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
