package features

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
)

// SizingOptions modifies Sizing output.
type SizingOptions struct {
	// SkipWidth is set for grid items, their width goes to grid column rules.
	SkipWidth bool
	// GlobalMaxWidth replaces desktop max-width when block asks for
	// useGlobalMaxWidth.
	GlobalMaxWidth string
}

// Sizing emits dimensions from the nested sizing object of a.
func Sizing(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint) {
	SizingWith(rs, selector, a, bp, SizingOptions{})
}

// SizingWith is Sizing with options.
func SizingWith(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint, opts SizingOptions) {
	sizing := a.Sub("sizing")
	if sizing == nil {
		return
	}

	maxWidth := sizing.At("maxWidth", bp).String()
	if bp == common.BreakpointDesktop && a.Bool("useGlobalMaxWidth") && opts.GlobalMaxWidth != "" {
		maxWidth = opts.GlobalMaxWidth
	}

	g := make(css.Group, 0, 6)
	if !opts.SkipWidth {
		g = append(g, decl(sizing, "width", "width", bp))
	}
	g = append(g,
		decl(sizing, "height", "height", bp),
		decl(sizing, "min-width", "minWidth", bp),
		decl(sizing, "min-height", "minHeight", bp),
		css.Declaration{Property: "max-width", Value: maxWidth},
		decl(sizing, "max-height", "maxHeight", bp),
	)
	rs.Add(selector, g)
}

// SizingValue returns breakpoint variant of a sizing setting.
func SizingValue(a attrs.Set, key string, bp common.Breakpoint) string {
	return a.Sub("sizing").At(key, bp).String()
}
