package styles

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/features"
)

var floats = map[string]string{
	"floatLeft":  "left",
	"floatRight": "right",
	"floatNone":  "none",
}

// imageFloat returns float of the image wrapper at breakpoint. Narrower
// breakpoint with own non float alignment resets desktop float.
func imageFloat(a attrs.Set, bp common.Breakpoint) string {
	alignment := a.At("alignment", bp).String()
	if strings.HasPrefix(alignment, "float") {
		return floats[alignment]
	}
	if bp != common.BreakpointDesktop && alignment != "" && strings.HasPrefix(a.String("alignment"), "float") {
		return "none"
	}
	return ""
}

func image(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope) {
	id := a.String("uniqueId")
	wrapper := s.prefixed(".gb-block-image-" + id)
	sel := s.sel(".gb-image-" + id)

	alignment := a.At("alignment", bp).String()
	float := imageFloat(a, bp)
	g := css.Decls("float", float)
	if !strings.HasPrefix(alignment, "float") {
		g = append(css.Decls("text-align", alignment), g...)
	}
	if float != "" && float != "none" {
		g = append(g, css.Decls("position", "relative", "z-index", "22")...)
	}
	rs.Add(wrapper, g)
	features.Spacing(rs, wrapper, a.Sub("spacing"), bp)

	img := css.Decls(
		"width", a.At("width", bp).String(),
		"height", a.At("height", bp).String(),
		"object-fit", a.At("objectFit", bp).String(),
	)
	if bp == common.BreakpointDesktop {
		img = append(css.Decls("border-color", a.String("borderColor")), img...)
	}
	rs.Add(sel, img)
	features.Borders(rs, sel, a.Sub("borders"), bp)

	if s.editor() {
		rs.Add(sel+" + .components-placeholder__illustration", css.Decls(
			"border-radius", features.BorderRadius(a.Sub("borders"), bp),
		))
	}
}
