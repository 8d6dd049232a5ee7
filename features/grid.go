package features

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
)

// GridItem emits column sizing of a container placed in a grid. Nothing is
// emitted unless the block is marked as grid item. Selectors are joined into
// a single rule.
func GridItem(rs *css.RuleSet, selectors []string, a attrs.Set, bp common.Breakpoint) {
	if !a.Bool("isGrid") || len(selectors) == 0 {
		return
	}
	g := css.Group{{Property: "width", Value: SizingValue(a, "width", bp)}}
	g = append(g, flexChild(a, bp)...)
	rs.Add(strings.Join(selectors, ","), g)
}
