package generate

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/config"
	"gbcss/content"
	"gbcss/css"
	"gbcss/features"
	"gbcss/fonts"
	"gbcss/hooks"
	"gbcss/migrate"
	"gbcss/state"
	"gbcss/store"
	"gbcss/styles"
)

// RegisterHooks adds extension points requested by configuration. It must
// be called once, before any content is processed.
func RegisterHooks(env *state.LocalEnv) {
	env.Hooks.OnDoContent(func(text string) string {
		return strings.ReplaceAll(text, "\r\n", "\n")
	})
	if subset := env.Cfg.Fonts.Subset; subset != "" {
		env.Hooks.OnGoogleFontArgs(func(args fonts.Args) fonts.Args {
			args.Subset = subset
			return args
		})
	}
}

// renderer turns collected content into stylesheets.
type renderer struct {
	engine    *styles.Engine
	hooks     *hooks.Hooks
	custom    styles.Result
	defaults  map[string]attrs.Set
	pipelines map[string]migrate.Pipeline
	fonts     config.FontsConfig
	urlBase   *url.URL
	resolver  content.Resolver
	media     features.MediaResolver
	reported  map[string]bool
	log       *zap.Logger
}

func newRenderer(env *state.LocalEnv, st *store.Store, log *zap.Logger) (*renderer, error) {
	cfg := env.Cfg
	defaults := cfg.Defaults.Sets()

	r := &renderer{
		engine: styles.NewEngine(styles.Options{
			MediaQueries:   cfg.Styles.MediaQueryTable(),
			ContainerWidth: cfg.Styles.ContainerWidth,
			VendorPrefixes: cfg.Styles.VendorPrefixes,
			EditorPrefix:   cfg.Styles.EditorPrefix,
			Defaults:       defaults,
			ShapeDefaults:  attrs.Set(cfg.Shapes.Defaults),
		}, env.Hooks, log),
		hooks:     env.Hooks,
		custom:    customRules(css.NewParser(log), &cfg.Styles, log),
		defaults:  defaults,
		pipelines: migrate.Pipelines(cfg.MigrationTables()),
		fonts:     cfg.Fonts,
		reported:  make(map[string]bool),
		log:       log,
	}
	if base := cfg.Styles.URLBase; base != "" {
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("unable to parse url base: %w", err)
		}
		r.urlBase = u
	}
	// nil store must stay nil interface
	if st != nil {
		r.resolver = &upgradingResolver{Resolver: st, pipelines: r.pipelines, log: log}
		r.media = st
	}
	return r, nil
}

// customRules converts configured custom CSS of every breakpoint into rules.
// Only plain rules are accepted, anything else is reported and skipped.
func customRules(p *css.Parser, conf *config.StylesConfig, log *zap.Logger) styles.Result {
	rules := func(bp common.Breakpoint) *css.RuleSet {
		rs := css.NewRuleSet()
		text := conf.CustomCSSFor(bp)
		if strings.TrimSpace(text) == "" {
			return rs
		}
		sheet := p.Parse([]byte(text), "custom_css/"+bp.String())
		for _, w := range sheet.Warnings {
			log.Warn("Problem in custom CSS", zap.Stringer("breakpoint", bp), zap.String("warning", w))
		}
		for _, item := range sheet.Items {
			if item.Rule == nil {
				log.Warn("Only plain rules are allowed in custom CSS, skipping", zap.Stringer("breakpoint", bp))
				continue
			}
			rs.Add(item.Rule.Selector, css.Group(item.Rule.Declarations))
		}
		return rs
	}
	return styles.Result{
		Desktop: rules(common.BreakpointDesktop),
		Tablet:  rules(common.BreakpointTablet),
		Mobile:  rules(common.BreakpointMobile),
	}
}

// upgradingResolver migrates reusable blocks before they are walked.
type upgradingResolver struct {
	content.Resolver
	pipelines map[string]migrate.Pipeline
	log       *zap.Logger
}

func (u *upgradingResolver) ReusableBlock(ctx context.Context, id int64) (string, bool, error) {
	text, found, err := u.Resolver.ReusableBlock(ctx, id)
	if err != nil || !found {
		return text, found, err
	}
	// broken content is reported by collector when parsed again
	blocks, err := content.ParseString(text)
	if err != nil || migrateBlocks(blocks, u.pipelines, u.log) == 0 {
		return text, true, nil
	}
	upgraded, err := content.Serialize(blocks)
	if err != nil {
		u.log.Warn("Unable to serialize migrated reusable block", zap.Int64("ref", id), zap.Error(err))
		return text, true, nil
	}
	return upgraded, true, nil
}

// collect gathers styled blocks of the source with attributes migrated to
// the current version. Source blocks are left as loaded. Unresolved
// reusable blocks are reported but do not stop processing.
func (r *renderer) collect(ctx context.Context, s *source) (*content.Data, error) {
	blocks := content.Clone(s.blocks)
	if n := migrateBlocks(blocks, r.pipelines, r.log); n > 0 {
		r.log.Debug("Blocks migrated before rendering", zap.String("source", s.name), zap.Int("changed", n))
	}
	data, err := content.Collect(ctx, blocks, r.resolver, r.log)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.log.Warn("Some reusable blocks were not resolved", zap.String("source", s.name), zap.Error(err))
	}
	return data, nil
}

// fontsURI returns web font request for collected blocks, empty when fonts
// are disabled or nothing is requested.
func (r *renderer) fontsURI(data *content.Data) string {
	if !r.fonts.Enable {
		return ""
	}
	list := fonts.Collect(data, r.defaults, r.hooks)
	return fonts.URI(list, r.hooks, r.fonts.Base, r.fonts.Display.Param())
}

// render produces complete stylesheet: web fonts import, block rules and
// custom rules.
func (r *renderer) render(ctx context.Context, s *source, scope common.Scope) (*css.Stylesheet, *content.Data, error) {
	data, err := r.collect(ctx, s)
	if err != nil {
		return nil, nil, err
	}

	sc := styles.Context{
		Scope: scope,
		Env:   features.Env{FeaturedImage: s.featured, Media: r.media},
	}
	rules, err := r.engine.Render(data, sc, r.custom)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to generate styles: %w", err)
	}

	out := &css.Stylesheet{}
	if uri := r.fontsURI(data); uri != "" {
		out.AddImport(uri)
	}
	out.Append(rules)
	if r.urlBase != nil {
		out.RewriteURLs(r.resolveURL)
	}
	return out, data, nil
}

// resolveURL makes relative references absolute against configured base.
func (r *renderer) resolveURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() || u.Host != "" || ref == "" || strings.HasPrefix(ref, "#") {
		return ref
	}
	return r.urlBase.ResolveReference(u).String()
}

// report puts parsed and collected content of the source into debug report,
// once per source.
func (r *renderer) report(rpt *config.Report, s *source, data *content.Data) {
	if rpt == nil {
		return
	}
	name := path.Join("blocks", filepath.ToSlash(s.dir), s.name+".txt")
	if r.reported[name] {
		return
	}
	r.reported[name] = true
	rpt.StoreData(name, []byte(content.Dump(s.blocks)+"\n"+data.String()))
}
