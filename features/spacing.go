package features

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
)

var sides = []string{"Top", "Right", "Bottom", "Left"}

// SpacingOptions modifies Spacing output.
type SpacingOptions struct {
	// SkipPadding is set when paddings belong to an inner element.
	SkipPadding bool
}

// Spacing emits margins and paddings. Values are expected to carry their
// units already.
func Spacing(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint) {
	SpacingWith(rs, selector, a, bp, SpacingOptions{})
}

// SpacingWith is Spacing with options.
func SpacingWith(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint, opts SpacingOptions) {
	if a == nil {
		return
	}
	g := make(css.Group, 0, 8)
	if !opts.SkipPadding {
		g = append(g, Paddings(a, bp)...)
	}
	for _, side := range sides {
		g = append(g, decl(a, "margin-"+strings.ToLower(side), "margin"+side, bp))
	}
	rs.Add(selector, g)
}

// Paddings returns padding declarations of the breakpoint.
func Paddings(a attrs.Set, bp common.Breakpoint) css.Group {
	g := make(css.Group, 0, 4)
	for _, side := range sides {
		g = append(g, decl(a, "padding-"+strings.ToLower(side), "padding"+side, bp))
	}
	return g
}
