package styles

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/features"
	"gbcss/values"
)

var (
	borderSides   = []string{"Top", "Right", "Bottom", "Left"}
	borderCorners = []struct{ key, property string }{
		{"TopLeft", "border-top-left-radius"},
		{"TopRight", "border-top-right-radius"},
		{"BottomRight", "border-bottom-right-radius"},
		{"BottomLeft", "border-bottom-left-radius"},
	}
)

// verticalAlignment returns alignment to emit at breakpoint and whether flex
// layout is pushed at all. Narrower breakpoints are left out only by explicit
// "inherit", unset value still pushes layout without alignment.
func verticalAlignment(a attrs.Set, bp common.Breakpoint) (string, bool) {
	v := a.At("verticalAlignment", bp)
	if bp == common.BreakpointDesktop {
		return v.String(), v.Truthy()
	}
	if v.String() == "inherit" {
		return "", false
	}
	return v.String(), true
}

func containerRadius(a attrs.Set, bp common.Breakpoint) css.Group {
	g := make(css.Group, 0, len(borderCorners))
	for _, c := range borderCorners {
		g = append(g, css.Declaration{Property: c.property, Value: a.At("borderRadius"+c.key, bp).String()})
	}
	return g
}

func containerBorderWidths(a attrs.Set, bp common.Breakpoint) css.Group {
	var set bool
	g := make(css.Group, 0, 5)
	for _, side := range borderSides {
		v := a.At("borderSize"+side, bp)
		set = set || v.Truthy()
		g = append(g, css.Declaration{Property: "border-" + strings.ToLower(side) + "-width", Value: v.String()})
	}
	if !set {
		return nil
	}
	return append(g, css.Declaration{Property: "border-style", Value: "solid"})
}

// gridColumns returns selectors of the grid column wrapping container.
func (s *scope) gridColumns(id, gridID string) []string {
	if s.editor() {
		sels := make([]string, 0, 2)
		if gridID != "" {
			sels = append(sels, ".gb-post-template-"+gridID+" > .gb-post-template-wrapper > .block-editor-inner-blocks")
		}
		return append(sels, ".gb-grid-wrapper > .block-editor-inner-blocks > .block-editor-block-list__layout > .gb-grid-column-"+id)
	}
	sels := []string{".gb-grid-wrapper > .gb-grid-column-" + id}
	if gridID != "" {
		sels = append(sels, ".gb-post-template-"+gridID+" > .gb-post-template-wrapper > .gb-grid-column-"+id)
	}
	return sels
}

func container(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope) {
	id := a.String("uniqueId")
	base := ".gb-container-" + id
	sel := s.sel(base)
	useInner := a.Bool("useInnerContainer")
	isGrid := a.Bool("isGrid")
	desktop := bp == common.BreakpointDesktop

	rs.Add(sel, containerRadius(a, bp))
	features.Typography(rs, sel, a.Sub("typography"), bp)
	features.SpacingWith(rs, sel, a, bp, features.SpacingOptions{SkipPadding: useInner})
	features.SizingWith(rs, sel, a, bp, features.SizingOptions{SkipWidth: isGrid, GlobalMaxWidth: s.opts.ContainerWidth})
	features.Layout(rs, sel, a, bp)
	features.FlexChild(rs, sel, a, bp)
	rs.Add(sel, containerBorderWidths(a, bp))

	if desktop {
		rs.Add(sel, css.Decls(
			"border-color", values.Hex2RGBA(a.String("borderColor"), a.Get("borderColorOpacity").Raw()),
			"color", a.String("textColor"),
		))
	}

	if useInner {
		minHeight := features.SizingValue(a, "minHeight", bp)
		inner := base + " > .gb-inside-container"
		g := features.Paddings(a, bp)
		if minHeight != "" && !isGrid {
			g = append(g, css.Declaration{Property: "width", Value: "100%"})
		}
		if desktop && a.String("innerContainer") == "contained" && !isGrid {
			g = append(g, css.Decls(
				"max-width", s.opts.ContainerWidth,
				"margin-left", "auto",
				"margin-right", "auto",
			)...)
		}
		rs.Add(inner, g)

		if align, ok := verticalAlignment(a, bp); ok {
			if minHeight != "" && !isGrid {
				rs.Add(sel, css.Decls(
					"display", "flex",
					"flex-direction", "row",
					"align-items", align,
				))
			}
			if isGrid {
				rs.Add(sel, css.Decls(
					"display", "flex",
					"flex-direction", "column",
					"height", "100%",
					"justify-content", align,
				))
			}
		}
	}

	features.GridItem(rs, s.gridColumns(id, a.String("gridId")), a, bp)
	if isGrid && a.At("removeVerticalGap", bp).Truthy() {
		rs.Add(".gb-grid-column-"+id, css.Decls("margin-bottom", "0px !important"))
	}

	if desktop {
		features.Background(rs, sel, a, bp, s.ctx.Env)
		rs.Add(sel+" a,"+sel+" a:visited", css.Decls("color", a.String("linkColor")))
		rs.Add(sel+" a:hover", css.Decls("color", a.String("linkColorHover")))
	}

	pseudoBg := a.Bool("bgImage") && a.Sub("bgOptions").String("selector") == features.BackgroundOnPseudo
	if pseudoBg && !desktop {
		rs.Add(base+":before", containerRadius(a, bp))
	}
	if bp == common.BreakpointMobile && a.Bool("bgImage") && a.Sub("bgOptions").String("attachment") == "fixed" {
		switch a.Sub("bgOptions").String("selector") {
		case features.BackgroundOnElement:
			rs.Add(sel, css.Decls("background-attachment", "initial"))
		case features.BackgroundOnPseudo:
			rs.Add(base+":before", css.Decls("background-attachment", "initial"))
		}
	}

	if shapes := a.List("shapeDividers"); len(shapes) > 0 {
		if desktop {
			rs.Add(base, css.Decls("position", "relative"))
		}
		features.ShapeDividers(rs, base, a, bp, s.opts.ShapeDefaults)
	}
}
