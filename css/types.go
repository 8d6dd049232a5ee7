package css

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
func cssEscapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MediaQuery represents a parsed @media query condition, for example
// "(max-width: 1024px)" or "screen and (min-width: 768px)".
type MediaQuery struct {
	Raw      string         // Original media query string
	Type     string         // Media type (e.g., "screen"), empty when omitted
	Negated  bool           // true if "not" modifier was used on main type
	Features []MediaFeature // Parenthesized conditions joined with "and"
}

// MediaFeature is single "(name: value)" condition of a media query.
type MediaFeature struct {
	Name  string // Feature name (e.g., "max-width")
	Value string // Feature value as written (e.g., "1024px")
}

// ParseMediaQuery parses media query text. Unknown syntax is kept in Raw
// only.
func ParseMediaQuery(raw string) MediaQuery {
	mq := MediaQuery{Raw: strings.TrimSpace(raw)}
	rest := mq.Raw
	for rest != "" {
		rest = strings.TrimSpace(rest)
		switch {
		case strings.HasPrefix(rest, "("):
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return mq
			}
			name, value, _ := strings.Cut(rest[1:end], ":")
			mq.Features = append(mq.Features, MediaFeature{
				Name:  strings.ToLower(strings.TrimSpace(name)),
				Value: strings.TrimSpace(value),
			})
			rest = rest[end+1:]
		default:
			word, tail, _ := strings.Cut(rest, " ")
			switch w := strings.ToLower(word); w {
			case "and", "only", "":
			case "not":
				mq.Negated = true
			default:
				mq.Type = w
			}
			rest = tail
		}
	}
	return mq
}

// Evaluate reports whether the query matches a viewport of given width in
// pixels. Only width features are understood, others do not restrict.
func (mq MediaQuery) Evaluate(width int) bool {
	var typeMatches bool
	switch mq.Type {
	case "", "all", "screen":
		typeMatches = true
	}

	featuresMatch := true
	for _, f := range mq.Features {
		px, ok := pixels(f.Value)
		if !ok {
			continue
		}
		switch f.Name {
		case "max-width":
			featuresMatch = featuresMatch && width <= px
		case "min-width":
			featuresMatch = featuresMatch && width >= px
		}
	}

	matches := typeMatches && featuresMatch
	if mq.Negated {
		return !matches
	}
	return matches
}

// MaxWidth returns value of max-width feature in pixels.
func (mq MediaQuery) MaxWidth() (int, bool) {
	for _, f := range mq.Features {
		if f.Name == "max-width" {
			return pixels(f.Value)
		}
	}
	return 0, false
}

func pixels(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	return n, err == nil
}

// Rule represents a single CSS rule: selector and ordered declarations.
type Rule struct {
	Selector     string        // Selector text, may be a comma separated list
	Declarations []Declaration // In source order
}

// SelectorList splits grouped selector on top-level commas.
func (r Rule) SelectorList() []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(r.Selector); i++ {
		switch r.Selector[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(r.Selector[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(r.Selector[start:]); last != "" {
		out = append(out, last)
	}
	return out
}

// GetProperty returns the last value declared for a property.
func (r Rule) GetProperty(name string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule (selector + declarations)
	MediaBlock *MediaBlock // A @media block containing nested rules
	Import     *string     // An @import URL
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// Stylesheet is an ordered list of rules, media blocks and imports.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings collected while parsing
}

// AddImport appends @import of url.
func (s *Stylesheet) AddImport(url string) {
	s.Items = append(s.Items, StylesheetItem{Import: &url})
}

// AddRules appends top-level rules produced by rule set.
func (s *Stylesheet) AddRules(rs *RuleSet) {
	for _, rule := range rs.Rules() {
		s.Items = append(s.Items, StylesheetItem{Rule: &rule})
	}
}

// AddMedia wraps rule set into @media block. Nothing is added when the rule
// set produces no declarations.
func (s *Stylesheet) AddMedia(query string, rs *RuleSet) {
	rules := rs.Rules()
	if len(rules) == 0 {
		return
	}
	s.Items = append(s.Items, StylesheetItem{
		MediaBlock: &MediaBlock{Query: ParseMediaQuery(query), Rules: rules},
	})
}

// Append copies all items of other stylesheet to the end of s.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Items = append(s.Items, other.Items...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// MediaBlocks returns all @media blocks in source order.
func (s *Stylesheet) MediaBlocks() []*MediaBlock {
	var blocks []*MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, item.MediaBlock)
		}
	}
	return blocks
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// urlRewritePattern matches url() references in CSS values for RewriteURLs.
// Handles: url("path"), url('path'), url(path)
var urlRewritePattern = regexp.MustCompile(`url\s*\(\s*(?:["']([^"']*)["']|([^)"]*))\s*\)`)

// WriteTo writes compact stylesheet text to w, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");", cssEscapeDoubleQuoted(*item.Import))
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w as selector{prop:value;}.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := io.WriteString(w, rule.Selector+"{")
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		if d.Value == "" {
			continue
		}
		n, err = io.WriteString(w, d.Property+":"+d.Value+";")
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, "}")
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s{", mb.Query.Raw)
	total += n
	if err != nil {
		return total, err
	}
	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i])
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, "}")
	total += n
	return total, err
}

// RewriteURLs walks all URL references in the stylesheet and applies fn to each.
// This covers @import URLs and url() references in declarations.
func (s *Stylesheet) RewriteURLs(fn func(originalURL string) string) {
	for i := range s.Items {
		item := &s.Items[i]

		switch {
		case item.Import != nil:
			newURL := fn(*item.Import)
			item.Import = &newURL

		case item.Rule != nil:
			rewriteURLsInDeclarations(item.Rule.Declarations, fn)

		case item.MediaBlock != nil:
			for j := range item.MediaBlock.Rules {
				rewriteURLsInDeclarations(item.MediaBlock.Rules[j].Declarations, fn)
			}
		}
	}
}

func rewriteURLsInDeclarations(decls []Declaration, fn func(string) string) {
	for i := range decls {
		if strings.Contains(decls[i].Value, "url(") {
			decls[i].Value = rewriteURLsInValue(decls[i].Value, fn)
		}
	}
}

// rewriteURLsInValue replaces url() references in a CSS value string.
func rewriteURLsInValue(value string, fn func(string) string) string {
	return urlRewritePattern.ReplaceAllStringFunc(value, func(match string) string {
		sub := urlRewritePattern.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		// Group 1 is quoted URL, group 2 is unquoted URL
		originalURL := sub[1]
		if originalURL == "" {
			originalURL = sub[2]
		}
		originalURL = strings.TrimSpace(originalURL)
		return fmt.Sprintf("url(\"%s\")", cssEscapeDoubleQuoted(fn(originalURL)))
	})
}
