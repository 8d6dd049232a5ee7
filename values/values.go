// Package values holds normalizers turning raw attribute values into CSS
// declaration values.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"gbcss/attrs"
)

// WithUnit appends unit to value. Empty result means declaration should not
// be emitted: nil, false and "" produce it, numeric 0 does not.
func WithUnit(v any, unit string) string {
	val := attrs.V(v)
	if !val.HasNumber() || val.String() == "" {
		return ""
	}
	return val.String() + unit
}

// Shorthand collapses four side values into CSS shorthand form (1 to 4
// values). All sides empty produce "".
func Shorthand(top, right, bottom, left any, unit string) string {
	sides := [4]attrs.Value{attrs.V(top), attrs.V(right), attrs.V(bottom), attrs.V(left)}
	empty := true
	for _, s := range sides {
		if s.String() != "" {
			empty = false
			break
		}
	}
	if empty {
		return ""
	}

	var out [4]string
	for i, s := range sides {
		out[i] = side(s, unit)
	}
	t, r, b, l := out[0], out[1], out[2], out[3]
	if r == l {
		l = ""
		if t == b {
			b = ""
			if t == r {
				r = ""
			}
		}
	}
	return strings.TrimSpace(t + r + b + l)
}

func side(v attrs.Value, unit string) string {
	f, ok := v.LeadingFloat()
	if v.String() == "" || (ok && f == 0) {
		return "0 "
	}
	return v.String() + unit + " "
}

// Hex2RGBA converts hex color to rgba() notation with given alpha. Color is
// returned as is when alpha is absent or exactly 1. Only 3 and 6 digit forms
// are understood.
func Hex2RGBA(hex string, alpha any) string {
	if hex == "" {
		return ""
	}
	a := attrs.V(alpha)
	if f, ok := a.Float(); !a.IsSet() || (ok && f == 1 && a.IsNumber()) {
		return hex
	}

	h := strings.ReplaceAll(hex, "#", "")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	var rgb [3]int64
	for i := range rgb {
		if len(h) < 2*i+2 {
			break
		}
		rgb[i], _ = strconv.ParseInt(h[2*i:2*i+2], 16, 32)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb[0], rgb[1], rgb[2], a.String())
}

// VendorPrefix maps flexbox and directional alignment to values understood by
// legacy -ms- flexbox properties.
func VendorPrefix(v string) string {
	switch v {
	case "flex-start", "left":
		return "start"
	case "flex-end", "right":
		return "end"
	}
	return v
}

// FlexboxAlignment maps directional alignment (left, top...) to flexbox
// values.
func FlexboxAlignment(v string) string {
	switch v {
	case "left", "top":
		return "flex-start"
	case "right", "bottom":
		return "flex-end"
	}
	return v
}

// HasNumber reports whether value exists, counting 0 and "0" as existing.
func HasNumber(v any) bool {
	return attrs.V(v).HasNumber()
}
