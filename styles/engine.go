// Package styles turns block attributes into responsive CSS. Every supported
// block type has an orchestrator which runs feature generators for one
// breakpoint in fixed order.
package styles

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/content"
	"gbcss/css"
	"gbcss/features"
)

// DefaultEditorPrefix scopes editor selectors to the editor canvas.
const DefaultEditorPrefix = ".editor-styles-wrapper"

// Filters are extension points consulted during generation. Engine works
// without them.
type Filters interface {
	MediaQueries(queries map[common.Breakpoint]string) map[common.Breakpoint]string
	CSSAttrs(block string, a attrs.Set) attrs.Set
	BreakpointCSS(block string, bp common.Breakpoint, rs *css.RuleSet, a attrs.Set) *css.RuleSet
}

// Options are engine settings resolved once from configuration.
type Options struct {
	// MediaQueries maps tablet and mobile to media query conditions.
	MediaQueries map[common.Breakpoint]string
	// ContainerWidth is the global container width, "1100px" for example.
	ContainerWidth string
	// VendorPrefixes adds legacy -ms- flexbox properties.
	VendorPrefixes bool
	// EditorPrefix is prepended to selectors in editor scope.
	EditorPrefix string
	// Defaults are merged under stored attributes, per block type.
	Defaults map[string]attrs.Set
	// ShapeDefaults are merged under stored shape divider settings.
	ShapeDefaults attrs.Set
}

// Context describes a single generation call.
type Context struct {
	Scope common.Scope
	Env   features.Env
	// EditorSelector may narrow block selector in editor scope.
	EditorSelector func(selector, block string, a attrs.Set) string
}

// Result keeps rules generated for every breakpoint.
type Result struct {
	Desktop *css.RuleSet
	Tablet  *css.RuleSet
	Mobile  *css.RuleSet
}

// At returns rules of the breakpoint.
func (r Result) At(bp common.Breakpoint) *css.RuleSet {
	switch bp {
	case common.BreakpointTablet:
		return r.Tablet
	case common.BreakpointMobile:
		return r.Mobile
	default:
		return r.Desktop
	}
}

// Empty reports whether nothing was generated.
func (r Result) Empty() bool {
	return r.Desktop.Empty() && r.Tablet.Empty() && r.Mobile.Empty()
}

type orchestrator func(rs *css.RuleSet, a attrs.Set, bp common.Breakpoint, s *scope)

// Engine generates CSS for supported block types.
type Engine struct {
	opts    Options
	filters Filters
	log     *zap.Logger
	blocks  map[string]orchestrator
}

// NewEngine creates engine, filters and log may be nil.
func NewEngine(opts Options, filters Filters, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.EditorPrefix == "" {
		opts.EditorPrefix = DefaultEditorPrefix
	}
	return &Engine{
		opts:    opts,
		filters: filters,
		log:     log.Named("styles"),
		blocks: map[string]orchestrator{
			content.TypeContainer:       container,
			content.TypeGrid:            grid,
			content.TypeHeadline:        headline,
			content.TypeButton:          button,
			content.TypeButtonContainer: buttonContainer,
			content.TypeImage:           image,
			content.TypeSection:         section,
		},
	}
}

// Blocks lists supported block types.
func (e *Engine) Blocks() []string {
	return slices.Sorted(maps.Keys(e.blocks))
}

// MediaQueries returns media query table after filters.
func (e *Engine) MediaQueries() map[common.Breakpoint]string {
	if e.filters == nil {
		return maps.Clone(e.opts.MediaQueries)
	}
	return e.filters.MediaQueries(e.opts.MediaQueries)
}

// Generate produces rules of a single block. Stored attributes are merged
// with block type defaults and passed through CSSAttrs filter first, every
// breakpoint result goes through BreakpointCSS filter. Blocks without
// unique id produce no rules.
func (e *Engine) Generate(block string, stored attrs.Set, ctx Context) (Result, error) {
	orch, ok := e.blocks[block]
	if !ok {
		return Result{}, fmt.Errorf("unsupported block type %q", block)
	}

	a := attrs.WithDefaults(stored, e.opts.Defaults[block])
	if e.filters != nil {
		a = e.filters.CSSAttrs(block, a)
	}

	var res Result
	s := &scope{opts: &e.opts, ctx: ctx, block: block, attrs: a}
	for _, bp := range common.Breakpoints {
		rs := css.NewRuleSet()
		if blockID(block, a) != "" {
			orch(rs, a, bp, s)
		}
		if e.filters != nil {
			rs = e.filters.BreakpointCSS(block, bp, rs, a)
		}
		switch bp {
		case common.BreakpointDesktop:
			res.Desktop = rs
		case common.BreakpointTablet:
			res.Tablet = rs
		case common.BreakpointMobile:
			res.Mobile = rs
		}
	}
	return res, nil
}

// Render generates rules for all collected blocks and assembles stylesheet.
// Extra results are merged after rules of blocks.
func (e *Engine) Render(data *content.Data, ctx Context, extra ...Result) (*css.Stylesheet, error) {
	var results []Result
	var sections int
	for _, typ := range data.Types() {
		if _, ok := e.blocks[typ]; !ok {
			e.log.Debug("Skipping unsupported block type", zap.String("type", typ))
			continue
		}
		for _, a := range data.Blocks(typ) {
			res, err := e.Generate(typ, a, ctx)
			if err != nil {
				return nil, err
			}
			if res.Empty() {
				e.log.Debug("Block produced no rules", zap.String("type", typ), zap.String("id", blockID(typ, a)))
				continue
			}
			if typ == content.TypeSection {
				sections++
			}
			results = append(results, res)
		}
	}

	ss := Assemble(append(results, extra...), e.MediaQueries())
	if sections > 0 {
		ss.AddRules(sectionCommon())
	}
	e.log.Debug("Stylesheet assembled", zap.Int("blocks", len(results)), zap.Int("items", len(ss.Items)))
	return ss, nil
}

// Assemble orders rules of all results: desktop rules first, then tablet
// and mobile rules each wrapped into its media query.
func Assemble(results []Result, queries map[common.Breakpoint]string) *css.Stylesheet {
	desktop, tablet, mobile := css.NewRuleSet(), css.NewRuleSet(), css.NewRuleSet()
	for _, r := range results {
		desktop.Merge(r.Desktop)
		tablet.Merge(r.Tablet)
		mobile.Merge(r.Mobile)
	}

	ss := &css.Stylesheet{}
	ss.AddRules(desktop)
	ss.AddMedia(queries[common.BreakpointTablet], tablet)
	ss.AddMedia(queries[common.BreakpointMobile], mobile)
	return ss
}

// blockID returns identifier used in block selectors.
func blockID(block string, a attrs.Set) string {
	if block == content.TypeSection {
		return a.String("uniqueID")
	}
	return a.String("uniqueId")
}

// scope builds selectors for the current call.
type scope struct {
	opts  *Options
	ctx   Context
	block string
	attrs attrs.Set
}

func (s *scope) editor() bool {
	return s.ctx.Scope == common.ScopeEditor
}

// sel returns selector of the block element, narrowed and prefixed in
// editor scope.
func (s *scope) sel(base string) string {
	if !s.editor() {
		return base
	}
	if s.ctx.EditorSelector != nil {
		base = s.ctx.EditorSelector(base, s.block, s.attrs)
	}
	return s.prefixed(base)
}

// prefixed only adds editor prefix.
func (s *scope) prefixed(base string) string {
	if !s.editor() {
		return base
	}
	return s.opts.EditorPrefix + " " + base
}
