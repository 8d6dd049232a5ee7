package styles

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/values"
)

func grid(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope) {
	id := a.String("uniqueId")
	wrapper := ".gb-grid-wrapper-" + id
	column := wrapper + " > .gb-grid-column"
	if s.editor() {
		wrapper = s.prefixed(wrapper + " > .block-editor-inner-blocks > .block-editor-block-list__layout")
		column = wrapper + " > .gb-grid-column"
	}

	align, _ := verticalAlignment(a, bp)
	valign := values.FlexboxAlignment(align)
	halign := values.FlexboxAlignment(a.At("horizontalAlignment", bp).String())
	hgap := a.At("horizontalGap", bp)

	var g css.Group
	if bp == common.BreakpointDesktop {
		g = append(g, css.Decls("display", "flex", "flex-wrap", "wrap")...)
		if s.opts.VendorPrefixes {
			g = append(g, css.Decls("-ms-flex-wrap", "wrap")...)
		}
	}
	if s.opts.VendorPrefixes {
		g = append(g, css.Decls(
			"-ms-flex-align", values.VendorPrefix(valign),
			"-ms-flex-pack", values.VendorPrefix(halign),
		)...)
	}
	g = append(g, css.Decls("align-items", valign, "justify-content", halign)...)
	if hgap.HasNumber() {
		g = append(g, css.Declaration{Property: "margin-left", Value: "-" + values.WithUnit(hgap.Raw(), "px")})
	}
	rs.Add(wrapper, g)

	rs.Add(column, css.Decls(
		"padding-left", values.WithUnit(hgap.Raw(), "px"),
		"padding-bottom", values.WithUnit(a.At("verticalGap", bp).Raw(), "px"),
	))
}
