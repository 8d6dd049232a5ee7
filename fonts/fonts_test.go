package fonts_test

import (
	"slices"
	"testing"

	"gbcss/attrs"
	"gbcss/content"
	"gbcss/fonts"
)

func collected(blocks map[string][]attrs.Set, order ...string) *content.Data {
	d := &content.Data{}
	for _, typ := range order {
		for _, a := range blocks[typ] {
			d.Add(typ, a)
		}
	}
	return d
}

func TestCollect(t *testing.T) {
	data := collected(map[string][]attrs.Set{
		content.TypeHeadline: {
			{"uniqueId": "h1", "googleFont": true, "fontFamily": "Open Sans", "googleFontVariants": "400, 700"},
			{"uniqueId": "h2", "googleFont": true, "fontFamily": "open sans", "googleFontVariants": "700,900"},
			{"uniqueId": "h3", "fontFamily": "Lato"},
		},
		content.TypeButton: {
			{"uniqueId": "b1", "googleFont": true, "typography": map[string]any{"fontFamily": "Roboto Slab"}},
		},
		content.TypeGrid: {
			{"uniqueId": "g1", "googleFont": true, "fontFamily": "Ignored"},
		},
	}, content.TypeGrid, content.TypeHeadline, content.TypeButton)

	got := fonts.Collect(data, nil, nil)
	want := []fonts.Font{
		{Name: "open sans", Variants: []string{"400", "700", "900"}},
		{Name: "Roboto Slab"},
	}
	if len(got) != len(want) {
		t.Fatalf("Collect() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i].Name != want[i].Name || !slices.Equal(got[i].Variants, want[i].Variants) {
			t.Errorf("font %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCollect_Defaults(t *testing.T) {
	data := collected(map[string][]attrs.Set{
		content.TypeContainer: {{"uniqueId": "c1", "fontFamily": "Lato"}},
	}, content.TypeContainer)

	if got := fonts.Collect(data, nil, nil); len(got) != 0 {
		t.Fatalf("without defaults Collect() = %+v", got)
	}
	defaults := map[string]attrs.Set{content.TypeContainer: {"googleFont": true, "googleFontVariants": "300"}}
	got := fonts.Collect(data, defaults, nil)
	if len(got) != 1 || got[0].Name != "Lato" || !slices.Equal(got[0].Variants, []string{"300"}) {
		t.Fatalf("Collect() = %+v", got)
	}
}

func TestCollect_SameUniqueIDReplaces(t *testing.T) {
	data := collected(map[string][]attrs.Set{
		content.TypeHeadline: {
			{"uniqueId": "x", "googleFont": true, "fontFamily": "Lato"},
			{"uniqueId": "x", "googleFont": true, "fontFamily": "Roboto"},
		},
	}, content.TypeHeadline)
	got := fonts.Collect(data, nil, nil)
	if len(got) != 1 || got[0].Name != "Roboto" {
		t.Fatalf("Collect() = %+v", got)
	}
}

func TestURI(t *testing.T) {
	list := []fonts.Font{
		{Name: "Open Sans", Variants: []string{"400", "700"}},
		{Name: "Lato"},
	}
	tests := []struct {
		name    string
		fonts   []fonts.Font
		base    string
		display string
		want    string
	}{
		{"default", list, "", "swap", "//fonts.googleapis.com/css?family=Open+Sans:400,700|Lato&display=swap"},
		{"custom base", list[1:], "https://example.com/css?v=2", "", "https://example.com/css?v=2&family=Lato"},
		{"empty", nil, "", "swap", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fonts.URI(tt.fonts, nil, tt.base, tt.display); got != tt.want {
				t.Errorf("URI() = %q, want %q", got, tt.want)
			}
		})
	}
}

type filters struct{}

func (filters) GoogleFonts(list []fonts.Font) []fonts.Font {
	return append(list, fonts.Font{Name: "Extra"})
}

func (filters) GoogleFontVariants(variants []string, name string) []string {
	if name == "Extra" {
		return []string{"italic"}
	}
	return variants
}

func (filters) GoogleFontArgs(args fonts.Args) fonts.Args {
	args.Subset = "latin"
	return args
}

func TestFilters(t *testing.T) {
	data := collected(map[string][]attrs.Set{
		content.TypeButton: {{"uniqueId": "b", "googleFont": true, "fontFamily": "Lato"}},
	}, content.TypeButton)

	list := fonts.Collect(data, nil, filters{})
	if len(list) != 2 {
		t.Fatalf("Collect() = %+v", list)
	}
	want := "//fonts.googleapis.com/css?family=Lato|Extra:italic&subset=latin&display=swap"
	if got := fonts.URI(list, filters{}, "", "swap"); got != want {
		t.Errorf("URI() = %q, want %q", got, want)
	}
}
