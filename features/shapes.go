package features

import (
	"strconv"
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/values"
)

// ShapeSelector returns selector of N-th (1-based) shape divider wrapper.
func ShapeSelector(base string, n int) string {
	return base + " > .gb-shapes .gb-shape-" + strconv.Itoa(n)
}

// ShapeDividers emits rules for every stored shape divider and only for
// them. Desktop positions, colors and flips the shape; every breakpoint
// sizes its svg (height in px, width in %). Defaults fill settings missing
// from stored entries.
func ShapeDividers(rs *css.RuleSet, base string, a attrs.Set, bp common.Breakpoint, defaults attrs.Set) {
	for i, stored := range a.List("shapeDividers") {
		shape := attrs.WithDefaults(stored, defaults)
		sel := ShapeSelector(base, i+1)

		if bp == common.BreakpointDesktop {
			location := shape.String("location")

			var transforms []string
			if location == "top" {
				transforms = append(transforms, "scaleY(-1)")
			}
			if shape.Bool("flipHorizontally") {
				transforms = append(transforms, "scaleX(-1)")
			}

			g := css.Decls(
				"color", values.Hex2RGBA(shape.String("color"), shape.Get("colorOpacity").Raw()),
				"z-index", shape.String("zindex"),
			)
			if location == "top" || location == "bottom" {
				g = append(g, css.Decls("left", "0", "right", "0")...)
			}
			switch location {
			case "bottom":
				g = append(g, css.Declaration{Property: "bottom", Value: "-1px"})
			case "top":
				g = append(g, css.Declaration{Property: "top", Value: "-1px"})
			}
			g = append(g, css.Declaration{Property: "transform", Value: strings.Join(transforms, " ")})
			rs.Add(sel, g)
		}

		rs.Add(sel+" svg", css.Decls(
			"height", values.WithUnit(shape.At("height", bp).Raw(), "px"),
			"width", values.WithUnit(shape.At("width", bp).Raw(), "%"),
		))
	}
}
