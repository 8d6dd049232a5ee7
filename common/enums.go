// Package common keeps enumerations shared between style generation,
// migration and configuration, so neither has to import the other.
package common

import (
	"fmt"
	"strings"
)

// Responsive viewport tier. Desktop is the base (widest) tier, Tablet and
// Mobile override it in that order.
type Breakpoint int

const (
	BreakpointDesktop Breakpoint = iota
	BreakpointTablet
	BreakpointMobile
)

// Breakpoints lists all tiers from widest to narrowest.
var Breakpoints = []Breakpoint{BreakpointDesktop, BreakpointTablet, BreakpointMobile}

var breakpointNames = []string{"desktop", "tablet", "mobile"}

// String returns lower case name of the tier as used in configuration.
func (b Breakpoint) String() string {
	if b < 0 || int(b) >= len(breakpointNames) {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// Suffix returns attribute name suffix for the tier: "" for desktop,
// "Tablet" and "Mobile" otherwise.
func (b Breakpoint) Suffix() string {
	switch b {
	case BreakpointTablet:
		return "Tablet"
	case BreakpointMobile:
		return "Mobile"
	default:
		return ""
	}
}

// Wider returns the next wider tier and false when b is already the widest.
func (b Breakpoint) Wider() (Breakpoint, bool) {
	if b <= BreakpointDesktop {
		return BreakpointDesktop, false
	}
	return b - 1, true
}

// IsValid reports whether b is one of known tiers.
func (b Breakpoint) IsValid() bool {
	return b >= BreakpointDesktop && b <= BreakpointMobile
}

// BreakpointNames returns names of all tiers.
func BreakpointNames() []string {
	return append([]string(nil), breakpointNames...)
}

// ParseBreakpoint converts name (case insensitive) to Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	for i, n := range breakpointNames {
		if strings.EqualFold(n, name) {
			return Breakpoint(i), nil
		}
	}
	return BreakpointDesktop, fmt.Errorf("%s is not a valid Breakpoint, try [%s]", name, strings.Join(breakpointNames, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (b Breakpoint) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Breakpoint) UnmarshalText(text []byte) error {
	v, err := ParseBreakpoint(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Target the generated stylesheet is meant for.
type Scope int

const (
	// ScopeFrontend produces selectors for the rendered page.
	ScopeFrontend Scope = iota
	// ScopeEditor narrows selectors to the editor canvas.
	ScopeEditor
)

func (s Scope) String() string {
	if s == ScopeEditor {
		return "editor"
	}
	return "frontend"
}

// ParseScope converts name to Scope.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(name) {
	case "frontend", "":
		return ScopeFrontend, nil
	case "editor":
		return ScopeEditor, nil
	}
	return ScopeFrontend, fmt.Errorf("%s is not a valid Scope, try [frontend, editor]", name)
}
