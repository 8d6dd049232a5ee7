package hooks_test

import (
	"strings"
	"testing"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/fonts"
	"gbcss/hooks"
)

func TestNilHooksPassThrough(t *testing.T) {
	var h *hooks.Hooks

	a := attrs.Set{"uniqueId": "x"}
	if got := h.CSSAttrs("button", a); got.String("uniqueId") != "x" {
		t.Errorf("CSSAttrs() = %v", got)
	}
	rs := css.NewRuleSet()
	if got := h.BreakpointCSS("button", common.BreakpointDesktop, rs, a); got != rs {
		t.Error("BreakpointCSS() must return rule set unchanged")
	}
	if got := h.DoContent("text"); got != "text" {
		t.Errorf("DoContent() = %q", got)
	}
	q := map[common.Breakpoint]string{common.BreakpointTablet: "(max-width: 1024px)"}
	if got := h.MediaQueries(q); got[common.BreakpointTablet] != q[common.BreakpointTablet] {
		t.Errorf("MediaQueries() = %v", got)
	}
	if got := h.GoogleFontArgs(fonts.Args{Display: "swap"}); got.Display != "swap" {
		t.Errorf("GoogleFontArgs() = %+v", got)
	}
}

func TestRegistrationOrder(t *testing.T) {
	h := hooks.New().
		OnDoContent(func(s string) string { return s + "a" }).
		OnDoContent(func(s string) string { return s + "b" })
	if got := h.DoContent(""); got != "ab" {
		t.Errorf("DoContent() = %q, want ab", got)
	}
}

func TestMediaQueriesCopy(t *testing.T) {
	orig := map[common.Breakpoint]string{common.BreakpointMobile: "(max-width: 767px)"}
	h := hooks.New().OnMediaQueries(func(q map[common.Breakpoint]string) map[common.Breakpoint]string {
		q[common.BreakpointMobile] = "(max-width: 600px)"
		return q
	})
	got := h.MediaQueries(orig)
	if got[common.BreakpointMobile] != "(max-width: 600px)" {
		t.Errorf("MediaQueries() = %v", got)
	}
	if orig[common.BreakpointMobile] != "(max-width: 767px)" {
		t.Error("MediaQueries() modified input table")
	}
}

func TestBreakpointCSS(t *testing.T) {
	h := hooks.New().
		OnBreakpointCSS(func(block string, bp common.Breakpoint, rs *css.RuleSet, a attrs.Set) *css.RuleSet {
			return nil
		}).
		OnBreakpointCSS(func(block string, bp common.Breakpoint, rs *css.RuleSet, a attrs.Set) *css.RuleSet {
			if bp == common.BreakpointMobile {
				rs.Add(".gb-"+block+"-"+a.String("uniqueId"), css.Decls("display", "none"))
			}
			return rs
		})

	rs := css.NewRuleSet()
	rs.Add(".x", css.Decls("color", "red"))
	got := h.BreakpointCSS("button", common.BreakpointMobile, rs, attrs.Set{"uniqueId": "b1"})
	if out := got.Serialize(); out != ".gb-button-b1{display:none;}" {
		t.Errorf("BreakpointCSS() = %q", out)
	}
}

func TestFontFilters(t *testing.T) {
	h := hooks.New().
		OnGoogleFonts(func(list []fonts.Font) []fonts.Font { return list[:1] }).
		OnGoogleFontVariants(func(v []string, name string) []string { return append(v, strings.ToLower(name)) }).
		OnGoogleFontArgs(func(a fonts.Args) fonts.Args { a.Display = "block"; return a })

	list := h.GoogleFonts([]fonts.Font{{Name: "A"}, {Name: "B"}})
	if uri := fonts.URI(list, h, "", "swap"); uri != "//fonts.googleapis.com/css?family=A:a&display=block" {
		t.Errorf("URI() = %q", uri)
	}
}
