package features_test

import (
	"strings"
	"testing"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
	"gbcss/features"
)

type mediaStub map[int64]string

func (m mediaStub) AttachmentURL(id int64, size string) (string, bool) {
	url, ok := m[id]
	if !ok {
		return "", false
	}
	return url + "?size=" + size, true
}

func TestTypography(t *testing.T) {
	typo := attrs.Set{
		"fontFamily":         "Open Sans",
		"fontFamilyFallback": "sans-serif",
		"fontSize":           "17px",
		"fontSizeTablet":     "15px",
		"textAlign":          "center",
	}
	tests := []struct {
		bp   common.Breakpoint
		want string
	}{
		{common.BreakpointDesktop, ".h{font-family:Open Sans, sans-serif;font-size:17px;text-align:center;}"},
		{common.BreakpointTablet, ".h{font-size:15px;}"},
		{common.BreakpointMobile, ""},
	}
	for _, tt := range tests {
		t.Run(tt.bp.String(), func(t *testing.T) {
			rs := css.NewRuleSet()
			features.Typography(rs, ".h", typo, tt.bp)
			if got := rs.Serialize(); got != tt.want {
				t.Errorf("Typography() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypography_Nil(t *testing.T) {
	rs := css.NewRuleSet()
	features.Typography(rs, ".h", nil, common.BreakpointDesktop)
	if len(rs.Selectors()) != 0 {
		t.Errorf("nil typography must not touch rule set")
	}
}

func TestSpacing(t *testing.T) {
	a := attrs.Set{
		"paddingTop":       "10px",
		"paddingTopMobile": "0px",
		"marginBottom":     "20px",
	}

	rs := css.NewRuleSet()
	features.Spacing(rs, ".c", a, common.BreakpointDesktop)
	if got := rs.Serialize(); got != ".c{padding-top:10px;margin-bottom:20px;}" {
		t.Errorf("desktop = %q", got)
	}

	rs = css.NewRuleSet()
	features.SpacingWith(rs, ".c", a, common.BreakpointMobile, features.SpacingOptions{SkipPadding: true})
	if got := rs.Serialize(); got != "" {
		t.Errorf("mobile without padding = %q", got)
	}

	rs = css.NewRuleSet()
	features.Spacing(rs, ".c", a, common.BreakpointMobile)
	if got := rs.Serialize(); got != ".c{padding-top:0px;}" {
		t.Errorf("mobile = %q", got)
	}
}

func TestSizing(t *testing.T) {
	a := attrs.Set{
		"useGlobalMaxWidth": true,
		"sizing": map[string]any{
			"width":          "50%",
			"widthTablet":    "100%",
			"minHeight":      "300px",
			"maxWidth":       "800px",
			"maxWidthMobile": "100%",
		},
	}

	rs := css.NewRuleSet()
	features.SizingWith(rs, ".c", a, common.BreakpointDesktop, features.SizingOptions{GlobalMaxWidth: "1100px"})
	if got := rs.Serialize(); got != ".c{width:50%;min-height:300px;max-width:1100px;}" {
		t.Errorf("desktop = %q", got)
	}

	rs = css.NewRuleSet()
	features.SizingWith(rs, ".c", a, common.BreakpointTablet, features.SizingOptions{SkipWidth: true, GlobalMaxWidth: "1100px"})
	if got := rs.Serialize(); got != "" {
		t.Errorf("tablet grid item = %q", got)
	}

	rs = css.NewRuleSet()
	features.Sizing(rs, ".c", a, common.BreakpointMobile)
	if got := rs.Serialize(); got != ".c{max-width:100%;}" {
		t.Errorf("mobile = %q", got)
	}
}

func TestBorders(t *testing.T) {
	borders := attrs.Set{
		"borderTopWidth":       "1px",
		"borderTopStyle":       "solid",
		"borderTopColor":       "#000",
		"borderTopColorHover":  "#f00",
		"borderTopLeftRadius":  "5px",
		"borderTopRightRadius": "5px",
		"borderTopWidthTablet": "2px",
	}

	rs := css.NewRuleSet()
	features.Borders(rs, ".b", borders, common.BreakpointDesktop)
	want := ".b{border-top-width:1px;border-top-style:solid;border-top-color:#000;" +
		"border-top-left-radius:5px;border-top-right-radius:5px;}" +
		".b:hover{border-top-color:#f00;}"
	if got := rs.Serialize(); got != want {
		t.Errorf("desktop = %q, want %q", got, want)
	}

	rs = css.NewRuleSet()
	features.Borders(rs, ".b", borders, common.BreakpointTablet)
	if got := rs.Serialize(); got != ".b{border-top-width:2px;}" {
		t.Errorf("tablet = %q", got)
	}

	if got := features.BorderRadius(borders, common.BreakpointDesktop); got != "5px 5px 0 0" {
		t.Errorf("BorderRadius() = %q", got)
	}
	if got := features.BorderRadius(borders, common.BreakpointMobile); got != "" {
		t.Errorf("BorderRadius(mobile) = %q", got)
	}
}

func TestLayoutAndFlexChild(t *testing.T) {
	a := attrs.Set{
		"display":              "flex",
		"flexDirection":        "column",
		"zindex":               2,
		"alignItemsTablet":     "center",
		"order":                0,
		"flexGrow":             1,
		"flexBasisMobile":      "50%",
		"justifyContentMobile": "",
	}

	rs := css.NewRuleSet()
	features.Layout(rs, ".l", a, common.BreakpointDesktop)
	features.FlexChild(rs, ".l", a, common.BreakpointDesktop)
	if got := rs.Serialize(); got != ".l{display:flex;flex-direction:column;z-index:2;flex-grow:1;order:0;}" {
		t.Errorf("desktop = %q", got)
	}

	rs = css.NewRuleSet()
	features.Layout(rs, ".l", a, common.BreakpointTablet)
	if got := rs.Serialize(); got != ".l{align-items:center;}" {
		t.Errorf("tablet = %q", got)
	}

	rs = css.NewRuleSet()
	features.Layout(rs, ".l", a, common.BreakpointMobile)
	features.FlexChild(rs, ".l", a, common.BreakpointMobile)
	if got := rs.Serialize(); got != ".l{flex-basis:50%;}" {
		t.Errorf("mobile = %q", got)
	}
}

func TestBackgroundImage(t *testing.T) {
	img := map[string]any{"id": 7, "image": map[string]any{"url": "https://example.com/bg.jpg"}}
	tests := []struct {
		name string
		a    attrs.Set
		env  features.Env
		want string
	}{
		{
			name: "overlay with background color",
			a: attrs.Set{
				"bgImage":                img,
				"bgOptions":              map[string]any{"selector": "element", "overlay": true},
				"backgroundColor":        "#000000",
				"backgroundColorOpacity": 0.5,
			},
			want: "linear-gradient(0deg, rgba(0, 0, 0, 0.5), rgba(0, 0, 0, 0.5)), url(https://example.com/bg.jpg)",
		},
		{
			name: "overlay with gradient",
			a: attrs.Set{
				"bgImage":              img,
				"bgOptions":            map[string]any{"selector": "element", "overlay": true},
				"gradient":             true,
				"gradientDirection":    90,
				"gradientColorOne":     "#ffffff",
				"gradientColorStopOne": 0,
				"gradientColorTwo":     "#000000",
				"gradientColorStopTwo": "",
			},
			want: "linear-gradient(90deg, #ffffff 0%, #000000), url(https://example.com/bg.jpg)",
		},
		{
			name: "no overlay",
			a: attrs.Set{
				"bgImage":         img,
				"bgOptions":       map[string]any{"selector": "element"},
				"backgroundColor": "#000000",
			},
			want: "url(https://example.com/bg.jpg)",
		},
		{
			name: "image on pseudo element leaves gradient only",
			a: attrs.Set{
				"bgImage":           img,
				"bgOptions":         map[string]any{"selector": "pseudo-element"},
				"gradient":          true,
				"gradientDirection": 0,
				"gradientColorOne":  "#fff",
				"gradientColorTwo":  "#000",
			},
			want: "linear-gradient(0deg, #fff, #000)",
		},
		{
			name: "featured image with attachment resolver",
			a: attrs.Set{
				"featuredImageBg": true,
				"bgOptions":       map[string]any{"selector": "element"},
			},
			env:  features.Env{FeaturedImage: "https://example.com/thumb.jpg"},
			want: "url(https://example.com/thumb.jpg)",
		},
		{
			name: "featured image requested but missing",
			a: attrs.Set{
				"featuredImageBg": true,
				"bgOptions":       map[string]any{"selector": "element"},
			},
			want: "",
		},
		{
			name: "attachment lookup",
			a: attrs.Set{
				"bgImage":     img,
				"bgImageSize": "large",
				"bgOptions":   map[string]any{"selector": "element"},
			},
			env:  features.Env{Media: mediaStub{7: "https://cdn.example.com/7.jpg"}},
			want: "url(https://cdn.example.com/7.jpg?size=large)",
		},
		{
			name: "nothing",
			a:    attrs.Set{"backgroundColor": "#fff"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := features.BackgroundImage(tt.a, tt.env); got != tt.want {
				t.Errorf("BackgroundImage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackground_PseudoElement(t *testing.T) {
	a := attrs.Set{
		"bgImage":   map[string]any{"image": map[string]any{"url": "bg.png"}},
		"bgOptions": map[string]any{"selector": "pseudo-element", "opacity": 0.3, "size": "cover"},
	}
	rs := css.NewRuleSet()
	features.Background(rs, ".c", a, common.BreakpointDesktop, features.Env{})

	if v, ok := rs.Lookup(".c", "position"); !ok || v != "relative" {
		t.Errorf("element position = %q", v)
	}
	if _, ok := rs.Lookup(".c", "background-image"); ok {
		t.Error("image must not be placed on the element")
	}
	if v, _ := rs.Lookup(".c:before", "background-image"); v != "url(bg.png)" {
		t.Errorf("pseudo background-image = %q", v)
	}
	if v, _ := rs.Lookup(".c:before", "opacity"); v != "0.3" {
		t.Errorf("pseudo opacity = %q", v)
	}

	rs = css.NewRuleSet()
	features.Background(rs, ".c", a, common.BreakpointTablet, features.Env{})
	if !rs.Empty() {
		t.Errorf("tablet background = %q", rs.Serialize())
	}
}

func TestShapeDividers(t *testing.T) {
	defaults := attrs.Set{"color": "#000000", "colorOpacity": 1, "location": "bottom", "height": 200, "width": 100}
	a := attrs.Set{
		"shapeDividers": []any{
			map[string]any{"location": "top", "flipHorizontally": true, "colorOpacity": 0.5, "heightMobile": 40},
			map[string]any{"height": 50, "zindex": 2},
		},
	}

	rs := css.NewRuleSet()
	features.ShapeDividers(rs, ".gb-container-x", a, common.BreakpointDesktop, defaults)
	out := rs.Serialize()

	first := ".gb-container-x > .gb-shapes .gb-shape-1{color:rgba(0, 0, 0, 0.5);left:0;right:0;top:-1px;transform:scaleY(-1) scaleX(-1);}"
	if !strings.Contains(out, first) {
		t.Errorf("missing first shape rule in %q", out)
	}
	if !strings.Contains(out, ".gb-container-x > .gb-shapes .gb-shape-2{color:#000000;z-index:2;left:0;right:0;bottom:-1px;}") {
		t.Errorf("missing second shape rule in %q", out)
	}
	if !strings.Contains(out, ".gb-container-x > .gb-shapes .gb-shape-2 svg{height:50px;width:100%;}") {
		t.Errorf("missing second svg rule in %q", out)
	}
	if strings.Contains(out, "gb-shape-3") {
		t.Errorf("rules emitted for absent shape: %q", out)
	}

	rs = css.NewRuleSet()
	features.ShapeDividers(rs, ".gb-container-x", a, common.BreakpointMobile, defaults)
	if got := rs.Serialize(); got != ".gb-container-x > .gb-shapes .gb-shape-1 svg{height:40px;}" {
		t.Errorf("mobile = %q", got)
	}

	rs = css.NewRuleSet()
	features.ShapeDividers(rs, ".gb-container-x", attrs.Set{}, common.BreakpointDesktop, defaults)
	if len(rs.Selectors()) != 0 {
		t.Errorf("no dividers must produce no selectors")
	}
}

func TestGridItem(t *testing.T) {
	sel := []string{".gb-grid-wrapper > .gb-grid-column-x", ".gb-post-template-g > .gb-post-template-wrapper > .gb-grid-column-x"}
	a := attrs.Set{
		"isGrid":         true,
		"sizing":         map[string]any{"width": "50%", "widthMobile": "100%"},
		"flexGrowTablet": 1,
		"orderMobile":    0,
	}

	rs := css.NewRuleSet()
	features.GridItem(rs, sel, a, common.BreakpointMobile)
	want := strings.Join(sel, ",") + "{width:100%;order:0;}"
	if got := rs.Serialize(); got != want {
		t.Errorf("mobile = %q, want %q", got, want)
	}

	rs = css.NewRuleSet()
	features.GridItem(rs, sel, attrs.Set{"sizing": map[string]any{"width": "50%"}}, common.BreakpointDesktop)
	if len(rs.Selectors()) != 0 {
		t.Error("non grid item must not emit grid rules")
	}
}
