// Package fonts collects web fonts used by blocks and builds font service
// request URL.
package fonts

import (
	"slices"
	"strconv"
	"strings"

	"gbcss/attrs"
	"gbcss/content"
)

// DefaultBase is the font service stylesheet endpoint.
const DefaultBase = "//fonts.googleapis.com/css"

// Font is a single font family with requested variants.
type Font struct {
	Name     string
	Variants []string
}

// Args are the query arguments of font request. Empty values are omitted.
type Args struct {
	Family  string
	Subset  string
	Display string
}

// Filters allows outside code to alter collected fonts and request. nil
// Filters leaves everything as is.
type Filters interface {
	GoogleFonts(fonts []Font) []Font
	GoogleFontVariants(variants []string, name string) []string
	GoogleFontArgs(args Args) Args
}

// block types which may request web fonts
var fontBlocks = []string{content.TypeButton, content.TypeHeadline, content.TypeContainer}

// Collect returns fonts requested by collected blocks. Block attributes are
// merged with per type defaults first. A block replaces font data of an
// earlier block with the same uniqueId, fonts with the same name (case and
// spaces ignored) are merged keeping unique variants in order.
func Collect(data *content.Data, defaults map[string]attrs.Set, f Filters) []Font {
	type entry struct {
		name     string
		variants []string
	}
	var ids []string
	perID := make(map[string]entry)
	anon := 0

	for _, typ := range data.Types() {
		if !slices.Contains(fontBlocks, typ) {
			continue
		}
		for _, stored := range data.Blocks(typ) {
			a := attrs.WithDefaults(stored, defaults[typ])
			if !a.Bool("googleFont") {
				continue
			}
			id := stored.String("uniqueId")
			if id == "" {
				// keep anonymous blocks apart
				anon++
				id = "\x00" + strconv.Itoa(anon)
			}
			if _, seen := perID[id]; !seen {
				ids = append(ids, id)
			}
			perID[id] = entry{name: familyName(a), variants: splitVariants(a.String("googleFontVariants"))}
		}
	}

	var fonts []Font
	index := make(map[string]int)
	for _, id := range ids {
		e := perID[id]
		key := strings.ReplaceAll(strings.ToLower(e.name), " ", "")
		i, ok := index[key]
		if !ok {
			i = len(fonts)
			index[key] = i
			fonts = append(fonts, Font{})
		}
		fonts[i].Name = e.name
		for _, v := range e.variants {
			if !slices.Contains(fonts[i].Variants, v) {
				fonts[i].Variants = append(fonts[i].Variants, v)
			}
		}
	}

	if f != nil {
		fonts = f.GoogleFonts(fonts)
	}
	return fonts
}

func familyName(a attrs.Set) string {
	if name := a.String("fontFamily"); name != "" {
		return name
	}
	return a.Sub("typography").String("fontFamily")
}

func splitVariants(s string) []string {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// URI builds request URL for fonts, "" when there are none. Values are
// joined as is without escaping, base defaults to DefaultBase.
func URI(fonts []Font, f Filters, base, display string) string {
	if len(fonts) == 0 {
		return ""
	}
	if base == "" {
		base = DefaultBase
	}

	families := make([]string, 0, len(fonts))
	for _, font := range fonts {
		variants := slices.Clone(font.Variants)
		if f != nil {
			variants = f.GoogleFontVariants(variants, font.Name)
		}
		name := strings.ReplaceAll(font.Name, " ", "+")
		if len(variants) > 0 {
			name += ":" + strings.Join(variants, ",")
		}
		families = append(families, name)
	}

	args := Args{Family: strings.Join(families, "|"), Display: display}
	if f != nil {
		args = f.GoogleFontArgs(args)
	}

	var query []string
	for _, kv := range [][2]string{{"family", args.Family}, {"subset", args.Subset}, {"display", args.Display}} {
		if kv[1] != "" {
			query = append(query, kv[0]+"="+kv[1])
		}
	}
	if len(query) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(query, "&")
}
