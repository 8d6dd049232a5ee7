package styles

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/features"
	"gbcss/values"
)

// icon emits padding and size of the block icon.
func icon(rs *css.RuleSet, sel string, a attrs.Set, bp common.Breakpoint) {
	var p [4]any
	for i, side := range borderSides {
		p[i] = a.At("iconPadding"+side, bp).Raw()
	}
	g := css.Decls("padding", values.Shorthand(p[0], p[1], p[2], p[3], ""))
	if bp == common.BreakpointDesktop {
		g = append(g, css.Declaration{
			Property: "color",
			Value:    values.Hex2RGBA(a.String("iconColor"), a.Get("iconColorOpacity").Raw()),
		})
	}
	rs.Add(sel+" .gb-icon", g)

	size := values.WithUnit(a.At("iconSize", bp).Raw(), a.String("iconSizeUnit"))
	rs.Add(sel+" .gb-icon svg", css.Decls("width", size, "height", size))
}

func headline(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope) {
	sel := s.sel(".gb-headline-" + a.String("uniqueId"))

	features.Typography(rs, sel, a.Sub("typography"), bp)
	features.Spacing(rs, sel, a, bp)
	features.Borders(rs, sel, a.Sub("borders"), bp)
	features.Layout(rs, sel, a, bp)
	features.FlexChild(rs, sel, a, bp)

	if bp == common.BreakpointDesktop {
		rs.Add(sel, css.Decls(
			"color", a.String("textColor"),
			"background-color", values.Hex2RGBA(a.String("backgroundColor"), a.Get("backgroundColorOpacity").Raw()),
		))
		rs.Add(sel+" a", css.Decls("color", a.String("linkColor")))
		rs.Add(sel+" a:hover", css.Decls("color", a.String("linkColorHover")))
		rs.Add(sel+" .gb-highlight", css.Decls("color", a.String("highlightTextColor")))
	}
	if a.Bool("hasIcon") {
		icon(rs, sel, a, bp)
	}
}

func button(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope) {
	sel := s.sel(".gb-button-wrapper .gb-button-" + a.String("uniqueId"))

	features.Typography(rs, sel, a.Sub("typography"), bp)
	features.Spacing(rs, sel, a, bp)
	features.Borders(rs, sel, a.Sub("borders"), bp)
	features.Layout(rs, sel, a, bp)
	features.FlexChild(rs, sel, a, bp)

	if bp == common.BreakpointDesktop {
		rs.Add(sel, css.Decls(
			"color", a.String("textColor"),
			"background-color", values.Hex2RGBA(a.String("backgroundColor"), a.Get("backgroundColorOpacity").Raw()),
			"background-image", features.BackgroundImage(a, s.ctx.Env),
			"text-decoration", "none",
		))
		hover := sel + ":hover," + sel + ":active," + sel + ":focus"
		rs.Add(hover, css.Decls(
			"color", a.String("textColorHover"),
			"background-color", values.Hex2RGBA(a.String("backgroundColorHover"), a.Get("backgroundColorHoverOpacity").Raw()),
		))
	}
	if a.Bool("hasIcon") {
		icon(rs, sel, a, bp)
	}
}

func buttonContainer(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope) {
	sel := s.sel(".gb-button-wrapper-" + a.String("uniqueId"))
	align := values.FlexboxAlignment(a.At("alignment", bp).String())
	stack := a.At("stack", bp).Truthy()

	var g css.Group
	if bp == common.BreakpointDesktop {
		g = css.Decls("display", "flex", "flex-wrap", "wrap")
	}
	if s.opts.VendorPrefixes {
		g = append(g, css.Declaration{Property: "-ms-flex-pack", Value: values.VendorPrefix(align)})
	}
	g = append(g, css.Declaration{Property: "justify-content", Value: align})
	if stack {
		g = append(g, css.Decls("flex-direction", "column", "align-items", align)...)
	}
	rs.Add(sel, g)
	features.SpacingWith(rs, sel, a, bp, features.SpacingOptions{SkipPadding: true})

	if a.At("fillHorizontalSpace", bp).Truthy() {
		child := css.Decls("flex", "1")
		if stack {
			child = append(child, css.Decls("width", "100%", "box-sizing", "border-box")...)
		}
		rs.Add(sel+" > .gb-button", child)
	}
}
