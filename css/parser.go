package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into ordered rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@media" {
				mq := ParseMediaQuery(joinTokens(parser.Values()))
				rules := p.parseMediaBlockRules(parser, sheet)
				p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: mq, Rules: rules},
				})
				continue
			}
			p.skipAtRuleBlock(parser)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import)
			atRule := strings.ToLower(string(data))
			if atRule == "@import" {
				if url := extractImportURL(parser.Values()); url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
				continue
			}
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.BeginRulesetGrammar:
			rule := Rule{
				Selector:     p.parseSelector(data, parser.Values()),
				Declarations: p.parseDeclarations(parser),
			}
			sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})
		}
	}
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			s := string(t.Data)
			s = strings.TrimPrefix(s, "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

// parseSelector rebuilds selector text from tokens.
func (p *Parser) parseSelector(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return NormalizeSelector(sb.String())
}

// NormalizeSelector brings selector to the form the generators write:
// single spaces, combinators surrounded by spaces, no spaces after commas.
func NormalizeSelector(sel string) string {
	var sb strings.Builder
	depth := 0
	pendingSpace := false
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pendingSpace = sb.Len() > 0
			continue
		case depth == 0 && (c == '>' || c == '+' || c == '~'):
			sb.WriteString(" ")
			sb.WriteByte(c)
			sb.WriteString(" ")
			pendingSpace = false
			for i+1 < len(sel) && sel[i+1] == ' ' {
				i++
			}
			continue
		case depth == 0 && c == ',':
			sb.WriteByte(c)
			pendingSpace = false
			for i+1 < len(sel) && sel[i+1] == ' ' {
				i++
			}
			continue
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		}
		if pendingSpace {
			if s := sb.String(); !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, ",") {
				sb.WriteByte(' ')
			}
			pendingSpace = false
		}
		sb.WriteByte(c)
	}
	return strings.TrimSpace(sb.String())
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if value := joinTokens(parser.Values()); value != "" {
				decls = append(decls, Declaration{Property: string(data), Value: value})
			}
		}
	}
}

// joinTokens builds raw value text, whitespace runs become single space.
func joinTokens(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(rawParts, ""))
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
// Nested at-rules are skipped with a warning.
func (p *Parser) parseMediaBlockRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var rules []Rule

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginAtRuleGrammar:
			p.skipAtRuleBlock(parser)
			sheet.Warnings = append(sheet.Warnings, "nested at-rule in @media: "+string(data))

		case css.BeginRulesetGrammar:
			rules = append(rules, Rule{
				Selector:     p.parseSelector(data, parser.Values()),
				Declarations: p.parseDeclarations(parser),
			})
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
