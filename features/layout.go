package features

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
)

var layoutProps = []struct{ key, property string }{
	{"display", "display"},
	{"flexDirection", "flex-direction"},
	{"flexWrap", "flex-wrap"},
	{"alignItems", "align-items"},
	{"justifyContent", "justify-content"},
	{"columnGap", "column-gap"},
	{"rowGap", "row-gap"},
	{"zindex", "z-index"},
	{"position", "position"},
	{"overflowX", "overflow-x"},
	{"overflowY", "overflow-y"},
}

var flexChildProps = []struct{ key, property string }{
	{"flexGrow", "flex-grow"},
	{"flexShrink", "flex-shrink"},
	{"flexBasis", "flex-basis"},
	{"order", "order"},
}

// Layout emits display and flex container settings.
func Layout(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint) {
	if a == nil {
		return
	}
	g := make(css.Group, 0, len(layoutProps))
	for _, p := range layoutProps {
		g = append(g, decl(a, p.property, p.key, bp))
	}
	rs.Add(selector, g)
}

// FlexChild emits settings of an element placed inside flex container.
func FlexChild(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint) {
	if a == nil {
		return
	}
	rs.Add(selector, flexChild(a, bp))
}

func flexChild(a attrs.Set, bp common.Breakpoint) css.Group {
	g := make(css.Group, 0, len(flexChildProps))
	for _, p := range flexChildProps {
		g = append(g, decl(a, p.property, p.key, bp))
	}
	return g
}
