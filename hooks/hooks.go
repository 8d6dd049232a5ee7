// Package hooks keeps extension points of style generation and font loading.
// Registered functions run in registration order, each receives result of the
// previous one. A nil *Hooks has no registrations and passes values through.
package hooks

import (
	"maps"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/fonts"
)

type (
	// MediaQueriesFunc alters media query table.
	MediaQueriesFunc func(queries map[common.Breakpoint]string) map[common.Breakpoint]string
	// CSSAttrsFunc alters block attributes before styles are generated.
	CSSAttrsFunc func(block string, a attrs.Set) attrs.Set
	// BreakpointCSSFunc alters or extends rules generated for a breakpoint.
	BreakpointCSSFunc func(block string, bp common.Breakpoint, rs *css.RuleSet, a attrs.Set) *css.RuleSet
	// GoogleFontsFunc alters collected fonts.
	GoogleFontsFunc func(list []fonts.Font) []fonts.Font
	// GoogleFontVariantsFunc alters variants requested for a font.
	GoogleFontVariantsFunc func(variants []string, name string) []string
	// GoogleFontArgsFunc alters font request arguments.
	GoogleFontArgsFunc func(args fonts.Args) fonts.Args
	// DoContentFunc alters content before it is parsed.
	DoContentFunc func(text string) string
)

// Hooks is a registry of extension points. It is not safe for concurrent
// registration, register everything before use.
type Hooks struct {
	mediaQueries       []MediaQueriesFunc
	cssAttrs           []CSSAttrsFunc
	breakpointCSS      []BreakpointCSSFunc
	googleFonts        []GoogleFontsFunc
	googleFontVariants []GoogleFontVariantsFunc
	googleFontArgs     []GoogleFontArgsFunc
	doContent          []DoContentFunc
}

// New returns empty registry.
func New() *Hooks {
	return &Hooks{}
}

func (h *Hooks) OnMediaQueries(fn MediaQueriesFunc) *Hooks {
	h.mediaQueries = append(h.mediaQueries, fn)
	return h
}

func (h *Hooks) OnCSSAttrs(fn CSSAttrsFunc) *Hooks {
	h.cssAttrs = append(h.cssAttrs, fn)
	return h
}

func (h *Hooks) OnBreakpointCSS(fn BreakpointCSSFunc) *Hooks {
	h.breakpointCSS = append(h.breakpointCSS, fn)
	return h
}

func (h *Hooks) OnGoogleFonts(fn GoogleFontsFunc) *Hooks {
	h.googleFonts = append(h.googleFonts, fn)
	return h
}

func (h *Hooks) OnGoogleFontVariants(fn GoogleFontVariantsFunc) *Hooks {
	h.googleFontVariants = append(h.googleFontVariants, fn)
	return h
}

func (h *Hooks) OnGoogleFontArgs(fn GoogleFontArgsFunc) *Hooks {
	h.googleFontArgs = append(h.googleFontArgs, fn)
	return h
}

func (h *Hooks) OnDoContent(fn DoContentFunc) *Hooks {
	h.doContent = append(h.doContent, fn)
	return h
}

// MediaQueries runs registered media query filters over a copy of the table.
func (h *Hooks) MediaQueries(queries map[common.Breakpoint]string) map[common.Breakpoint]string {
	out := maps.Clone(queries)
	if h == nil {
		return out
	}
	for _, fn := range h.mediaQueries {
		out = fn(out)
	}
	return out
}

func (h *Hooks) CSSAttrs(block string, a attrs.Set) attrs.Set {
	if h == nil {
		return a
	}
	for _, fn := range h.cssAttrs {
		a = fn(block, a)
	}
	return a
}

// BreakpointCSS runs registered filters, nil result of a filter means
// "no rules".
func (h *Hooks) BreakpointCSS(block string, bp common.Breakpoint, rs *css.RuleSet, a attrs.Set) *css.RuleSet {
	if h == nil {
		return rs
	}
	for _, fn := range h.breakpointCSS {
		if rs = fn(block, bp, rs, a); rs == nil {
			rs = css.NewRuleSet()
		}
	}
	return rs
}

func (h *Hooks) GoogleFonts(list []fonts.Font) []fonts.Font {
	if h == nil {
		return list
	}
	for _, fn := range h.googleFonts {
		list = fn(list)
	}
	return list
}

func (h *Hooks) GoogleFontVariants(variants []string, name string) []string {
	if h == nil {
		return variants
	}
	for _, fn := range h.googleFontVariants {
		variants = fn(variants, name)
	}
	return variants
}

func (h *Hooks) GoogleFontArgs(args fonts.Args) fonts.Args {
	if h == nil {
		return args
	}
	for _, fn := range h.googleFontArgs {
		args = fn(args)
	}
	return args
}

func (h *Hooks) DoContent(text string) string {
	if h == nil {
		return text
	}
	for _, fn := range h.doContent {
		text = fn(text)
	}
	return text
}

var _ fonts.Filters = (*Hooks)(nil)
