package features

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
)

var typographyProps = []struct{ key, property string }{
	{"fontSize", "font-size"},
	{"lineHeight", "line-height"},
	{"letterSpacing", "letter-spacing"},
	{"fontWeight", "font-weight"},
	{"textTransform", "text-transform"},
	{"textAlign", "text-align"},
}

// Typography emits font settings of the nested typography object. Font
// family is not responsive and is emitted for desktop only, together with
// its fallback stack.
func Typography(rs *css.RuleSet, selector string, typography attrs.Set, bp common.Breakpoint) {
	if typography == nil {
		return
	}
	g := make(css.Group, 0, len(typographyProps)+1)
	if bp == common.BreakpointDesktop {
		g = append(g, css.Declaration{Property: "font-family", Value: FontFamily(typography)})
	}
	for _, p := range typographyProps {
		g = append(g, decl(typography, p.property, p.key, bp))
	}
	rs.Add(selector, g)
}

// FontFamily joins family name with its fallback stack.
func FontFamily(typography attrs.Set) string {
	family := typography.String("fontFamily")
	if family == "" {
		return ""
	}
	if fallback := typography.String("fontFamilyFallback"); fallback != "" {
		return family + ", " + fallback
	}
	return family
}
