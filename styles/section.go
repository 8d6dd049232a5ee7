package styles

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/values"
)

// section handles legacy section blocks. They have no responsive settings
// and the same selectors in every scope.
func section(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, _ *scope) {
	if bp != common.BreakpointDesktop {
		return
	}

	id := "section-" + a.String("uniqueID")
	if fields := strings.Fields(a.String("className")); len(fields) > 0 {
		id = fields[0]
	}
	sel := ".generate-section." + id
	bgColor := a.String("customBackgroundColor")
	options := a.Sub("bgOptions")

	rs.Add(sel, css.Decls(
		"background-color", bgColor,
		"color", a.String("customTextColor"),
	))

	if img := a.Sub("bgImage"); img != nil {
		url := "url(" + img.Sub("image").String("url") + ")"
		position := "center center"
		if options.Bool("parallax") {
			position = "center top"
		}
		if bgColor != "" && options.Bool("overlay") {
			url = "linear-gradient(0deg, " + bgColor + ", " + bgColor + "), " + url
		}
		rs.Add(sel, css.Decls(
			"background-image", url,
			"background-size", "cover",
			"background-position", position,
		))
	}

	rs.Add(sel+" .inside-section", css.Decls(
		"padding-top", values.WithUnit(a.Get("spacingTop").Raw(), "px"),
		"padding-right", values.WithUnit(a.Get("spacingRight").Raw(), "px"),
		"padding-bottom", values.WithUnit(a.Get("spacingBottom").Raw(), "px"),
		"padding-left", values.WithUnit(a.Get("spacingLeft").Raw(), "px"),
	))
	rs.Add(sel+" a,"+sel+" a:visited", css.Decls("color", a.String("linkColor")))
	rs.Add(sel+" a:hover", css.Decls("color", a.String("linkColorHover")))
}

// sectionCommon is added once when page has sections.
func sectionCommon() *css.RuleSet {
	rs := css.NewRuleSet()
	rs.Add(".inside-section > *:last-child", css.Decls("margin-bottom", "0"))
	return rs
}
