package attrs

import (
	"strings"

	"gbcss/common"
)

// Responsive keeps one value per breakpoint.
type Responsive[T any] struct {
	Desktop T
	Tablet  T
	Mobile  T
}

// At returns value for requested breakpoint.
func (r Responsive[T]) At(bp common.Breakpoint) T {
	switch bp {
	case common.BreakpointTablet:
		return r.Tablet
	case common.BreakpointMobile:
		return r.Mobile
	default:
		return r.Desktop
	}
}

// Inherited returns value set at bp or, when it is falsy, the first truthy
// value of wider breakpoints. Second result is false when nothing was found.
func (r Responsive[T]) Inherited(bp common.Breakpoint, truthy func(T) bool) (T, bool) {
	for {
		if v := r.At(bp); truthy(v) {
			return v, true
		}
		var ok bool
		if bp, ok = bp.Wider(); !ok {
			var zero T
			return zero, false
		}
	}
}

// ResponsivePlaceholder returns value the breakpoint would visually inherit
// from wider breakpoints: nothing for desktop, desktop value for tablet,
// tablet or desktop value for mobile. Fallback is used when nothing is set.
func ResponsivePlaceholder(s Set, key string, bp common.Breakpoint, fallback string) string {
	r := s.Responsive(key)
	switch bp {
	case common.BreakpointTablet:
		if r.Desktop.Truthy() {
			return r.Desktop.String()
		}
	case common.BreakpointMobile:
		if r.Tablet.Truthy() {
			return r.Tablet.String()
		}
		if r.Desktop.Truthy() {
			return r.Desktop.String()
		}
	}
	return fallback
}

// IsFlexItem reports whether block lays out its children with flexbox at
// the breakpoint, taking display inheritance into account.
func IsFlexItem(s Set, bp common.Breakpoint) bool {
	v, ok := s.Responsive("display").Inherited(bp, Value.Truthy)
	return ok && strings.Contains(v.String(), "flex")
}

// FlexDirection returns effective flex direction at breakpoint: explicit
// value if set, otherwise what is inherited, "row" when nothing is.
func FlexDirection(s Set, bp common.Breakpoint) string {
	if v := s.At("flexDirection", bp); v.Truthy() {
		return v.String()
	}
	return ResponsivePlaceholder(s, "flexDirection", bp, "row")
}
