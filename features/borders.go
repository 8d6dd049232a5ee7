package features

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/values"
)

var corners = []string{"TopLeft", "TopRight", "BottomRight", "BottomLeft"}

// Borders emits per side width, style and color and per corner radius from
// the nested borders object. Hover colors exist for desktop only and go to
// selector:hover.
func Borders(rs *css.RuleSet, selector string, borders attrs.Set, bp common.Breakpoint) {
	if borders == nil {
		return
	}
	g := make(css.Group, 0, 16)
	for _, side := range sides {
		prop := "border-" + strings.ToLower(side)
		g = append(g,
			decl(borders, prop+"-width", "border"+side+"Width", bp),
			decl(borders, prop+"-style", "border"+side+"Style", bp),
			decl(borders, prop+"-color", "border"+side+"Color", bp),
		)
	}
	for _, corner := range corners {
		g = append(g, decl(borders, "border-"+cornerProperty(corner)+"-radius", "border"+corner+"Radius", bp))
	}
	rs.Add(selector, g)

	if bp != common.BreakpointDesktop {
		return
	}
	hover := make(css.Group, 0, 4)
	for _, side := range sides {
		hover = append(hover, decl(borders, "border-"+strings.ToLower(side)+"-color", "border"+side+"ColorHover", bp))
	}
	rs.Add(selector+":hover", hover)
}

// BorderRadius collapses four corner radii of the breakpoint into shorthand.
func BorderRadius(borders attrs.Set, bp common.Breakpoint) string {
	var r [4]any
	for i, corner := range corners {
		r[i] = borders.At("border"+corner+"Radius", bp).Raw()
	}
	return values.Shorthand(r[0], r[1], r[2], r[3], "")
}

// cornerProperty turns TopLeft into top-left.
func cornerProperty(corner string) string {
	for i := 1; i < len(corner); i++ {
		if corner[i] >= 'A' && corner[i] <= 'Z' {
			return strings.ToLower(corner[:i]) + "-" + strings.ToLower(corner[i:])
		}
	}
	return strings.ToLower(corner)
}
