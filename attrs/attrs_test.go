package attrs_test

import (
	"encoding/json"
	"testing"

	"gbcss/attrs"
	"gbcss/common"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"nil", nil, ""},
		{"false", false, ""},
		{"empty", "", ""},
		{"zero int", 0, "0"},
		{"zero float", 0.0, "0"},
		{"integer float", 10.0, "10"},
		{"fraction", 1.5, "1.5"},
		{"negative", -0.25, "-0.25"},
		{"json number", json.Number("12"), "12"},
		{"string", "10px", "10px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attrs.V(tt.raw).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Truthiness(t *testing.T) {
	tests := []struct {
		raw       any
		truthy    bool
		hasNumber bool
	}{
		{nil, false, false},
		{false, false, false},
		{"", false, false},
		{0, false, true},
		{"0", true, true},
		{0.0, false, true},
		{3, true, true},
		{"auto", true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		v := attrs.V(tt.raw)
		if v.Truthy() != tt.truthy {
			t.Errorf("V(%#v).Truthy() = %v, want %v", tt.raw, v.Truthy(), tt.truthy)
		}
		if v.HasNumber() != tt.hasNumber {
			t.Errorf("V(%#v).HasNumber() = %v, want %v", tt.raw, v.HasNumber(), tt.hasNumber)
		}
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10px", 10, true},
		{"1.5em", 1.5, true},
		{"-2", -2, true},
		{".5rem", 0.5, true},
		{"1e2x", 100, true},
		{"auto", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := attrs.ParseLeadingFloat(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseLeadingFloat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	if !attrs.V(1).Equal(attrs.V(1.0)) {
		t.Error("int and float 1 must be equal")
	}
	if attrs.V("1").Equal(attrs.V(1)) {
		t.Error("string and number must not be equal")
	}
	if !attrs.V(nil).Equal(attrs.Value{}) {
		t.Error("absent values must be equal")
	}
}

func TestSet_Responsive(t *testing.T) {
	s := attrs.Set{
		"paddingTop":       "10px",
		"paddingTopTablet": "5px",
	}
	r := s.Responsive("paddingTop")
	if r.At(common.BreakpointDesktop).String() != "10px" {
		t.Errorf("desktop = %q", r.Desktop)
	}
	if r.At(common.BreakpointTablet).String() != "5px" {
		t.Errorf("tablet = %q", r.Tablet)
	}
	if r.At(common.BreakpointMobile).IsSet() {
		t.Error("mobile must not inherit inside Responsive")
	}
	if v, ok := r.Inherited(common.BreakpointMobile, attrs.Value.Truthy); !ok || v.String() != "5px" {
		t.Errorf("Inherited(mobile) = %q, %v", v, ok)
	}
}

func TestSet_SubAndList(t *testing.T) {
	var s attrs.Set
	if err := json.Unmarshal([]byte(`{"typography":{"fontSize":"17px"},"shapeDividers":[{"height":100},{"height":50}]}`), &s); err != nil {
		t.Fatal(err)
	}
	if got := s.Sub("typography").String("fontSize"); got != "17px" {
		t.Errorf("typography.fontSize = %q", got)
	}
	list := s.List("shapeDividers")
	if len(list) != 2 || list[1].String("height") != "50" {
		t.Errorf("shapeDividers = %v", list)
	}
	if s.Sub("missing") != nil {
		t.Error("missing object must be nil")
	}
}

func TestWithDefaultsAndApply(t *testing.T) {
	defaults := attrs.Set{"display": "block", "bgOptions": map[string]any{"selector": "element"}}
	s := attrs.Set{"display": "flex"}

	merged := attrs.WithDefaults(s, defaults)
	if merged.String("display") != "flex" {
		t.Errorf("explicit value lost: %v", merged)
	}
	if merged.Sub("bgOptions").String("selector") != "element" {
		t.Errorf("default not applied: %v", merged)
	}
	merged.Sub("bgOptions")["selector"] = "pseudo-element"
	if defaults.Sub("bgOptions").String("selector") != "element" {
		t.Error("defaults were mutated through merged set")
	}

	patched := attrs.Apply(s, attrs.Set{"blockVersion": 3})
	if patched.String("blockVersion") != "3" || s.Has("blockVersion") {
		t.Errorf("Apply() = %v, original %v", patched, s)
	}
}

func TestResponsivePlaceholder(t *testing.T) {
	s := attrs.Set{"flexDirection": "column"}
	tests := []struct {
		bp   common.Breakpoint
		want string
	}{
		{common.BreakpointDesktop, "row"},
		{common.BreakpointTablet, "column"},
		{common.BreakpointMobile, "column"},
	}
	for _, tt := range tests {
		if got := attrs.ResponsivePlaceholder(s, "flexDirection", tt.bp, "row"); got != tt.want {
			t.Errorf("placeholder(%s) = %q, want %q", tt.bp, got, tt.want)
		}
	}

	s["flexDirectionTablet"] = "row-reverse"
	if got := attrs.ResponsivePlaceholder(s, "flexDirection", common.BreakpointMobile, "row"); got != "row-reverse" {
		t.Errorf("mobile placeholder = %q", got)
	}
	if got := attrs.FlexDirection(s, common.BreakpointDesktop); got != "column" {
		t.Errorf("FlexDirection(desktop) = %q", got)
	}
}

func TestIsFlexItem(t *testing.T) {
	tests := []struct {
		name string
		s    attrs.Set
		bp   common.Breakpoint
		want bool
	}{
		{"desktop flex", attrs.Set{"display": "flex"}, common.BreakpointDesktop, true},
		{"tablet inherits", attrs.Set{"display": "inline-flex"}, common.BreakpointTablet, true},
		{"tablet overrides", attrs.Set{"display": "flex", "displayTablet": "block"}, common.BreakpointTablet, false},
		{"mobile from tablet", attrs.Set{"displayTablet": "flex"}, common.BreakpointMobile, true},
		{"nothing", attrs.Set{}, common.BreakpointMobile, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attrs.IsFlexItem(tt.s, tt.bp); got != tt.want {
				t.Errorf("IsFlexItem() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewUniqueID(t *testing.T) {
	a, b := attrs.NewUniqueID(), attrs.NewUniqueID()
	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("unexpected id length: %q %q", a, b)
	}
	if a == b {
		t.Errorf("ids must differ: %q", a)
	}
}
