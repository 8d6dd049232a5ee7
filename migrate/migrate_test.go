package migrate_test

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
	"testing"

	"gbcss/attrs"
	"gbcss/config"
	"gbcss/css"
	"gbcss/migrate"
	"gbcss/styles"
)

func TestMigrateFlex(t *testing.T) {
	tests := []struct {
		name string
		in   attrs.Set
		want attrs.Set
	}{
		{
			name: "nothing to do",
			in:   attrs.Set{"blockVersion": 1},
			want: attrs.Set{},
		},
		{
			name: "turn on flex",
			in:   attrs.Set{"blockVersion": 1, "hasIcon": true},
			want: attrs.Set{"display": "flex"},
		},
		{
			name: "inline alignment",
			in: attrs.Set{
				"blockVersion":          1,
				"hasIcon":               true,
				"iconLocation":          "inline",
				"iconVerticalAlignment": "top",
			},
			want: attrs.Set{"display": "flex", "alignItems": "flex-start"},
		},
		{
			name: "already flex",
			in:   attrs.Set{"hasIcon": true, "display": "flex"},
			want: attrs.Set{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := migrate.Pipe(tt.in, migrate.MigrateFlex)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipe_Chains(t *testing.T) {
	first := func(attrs.Set) attrs.Set { return attrs.Set{"hasIcon": true} }
	got := migrate.Pipe(attrs.Set{}, first, migrate.MigrateFlex)
	want := attrs.Set{"hasIcon": true, "display": "flex"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRun_AscendingAgainstStored(t *testing.T) {
	var seen []string
	step := func(name string, out attrs.Set) migrate.StepFunc {
		return func(a attrs.Set) attrs.Set {
			seen = append(seen, name)
			if a.Has("display") {
				t.Errorf("step %s sees patch of previous step", name)
			}
			return out
		}
	}
	p := migrate.Pipeline{
		Block:   "test",
		Current: 3,
		Steps: []migrate.Step{
			{Name: "three", Version: 3, Apply: step("three", attrs.Set{"last": "three"})},
			{Name: "five", Version: 5, Apply: step("five", attrs.Set{"last": "five"})},
			{Name: "two", Version: 2, Apply: step("two", attrs.Set{"last": "two", "display": "flex"})},
			{Name: "one", Version: 1, Apply: step("one", attrs.Set{"last": "one"})},
		},
	}

	patch := p.Run(attrs.Set{"blockVersion": 1}, migrate.Options{})
	if want := []string{"two", "three"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("steps run = %v, want %v", seen, want)
	}
	want := attrs.Set{"last": "three", "display": "flex", "blockVersion": 3}
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("patch = %v, want %v", patch, want)
	}
}

func TestRun_JustInserted(t *testing.T) {
	p := migrate.Pipelines(migrate.Tables{})["headline"]

	patch := p.Run(attrs.Set{}, migrate.Options{JustInserted: true})
	if want := (attrs.Set{"blockVersion": 3}); !reflect.DeepEqual(patch, want) {
		t.Errorf("patch = %v, want %v", patch, want)
	}
	patch = p.Run(attrs.Set{"blockVersion": 3}, migrate.Options{JustInserted: true})
	if len(patch) != 0 {
		t.Errorf("patch = %v, want empty", patch)
	}
}

func testTables() migrate.Tables {
	return migrate.Tables{
		V140: map[string]attrs.Set{
			"button": {
				"gradientDirection":       90,
				"gradientColorOne":        "#ffffff",
				"gradientColorOneOpacity": 0.1,
				"gradientColorTwo":        "#000000",
				"gradientColorTwoOpacity": 0.3,
			},
			"container": {
				"paddingTop":        "40",
				"gradientDirection": 90,
			},
		},
		V180: map[string]attrs.Set{
			"button": {"iconPaddingRight": 0.5},
		},
		Defaults: map[string]attrs.Set{
			"button": {"textTransform": ""},
		},
	}
}

func TestButtonPipeline(t *testing.T) {
	p := migrate.Pipelines(testTables())["button"]
	stored := attrs.Set{
		"blockVersion":    1,
		"icon":            "<svg></svg>",
		"url":             "https://example.com",
		"gradient":        true,
		"paddingTop":      "10",
		"paddingUnit":     "px",
		"marginTop":       "2em",
		"fontSize":        17,
		"fontSizeUnit":    "px",
		"iconPaddingUnit": "em",
		"textTransform":   "",
	}

	migrated, patch := p.Migrate(stored, migrate.Options{})

	checks := map[string]string{
		"hasIcon":          "true",
		"hasUrl":           "true",
		"gradientColorOne": "#ffffff",
		"display":          "inline-flex",
		"alignItems":       "center",
		"alignment":        "center",
		"iconPaddingRight": "0.5em",
		"paddingTop":       "10px",
		"fontSize":         "",
		"blockVersion":     "4",
	}
	for key, want := range checks {
		if got := patch.String(key); got != want {
			t.Errorf("patch[%s] = %q, want %q", key, got, want)
		}
	}
	if patch.Has("marginTop") {
		t.Errorf("value with unit migrated: %v", patch["marginTop"])
	}
	if patch.Has("textTransform") {
		t.Errorf("default typography value moved")
	}
	if got := migrated.Sub("typography").String("fontSize"); got != "17px" {
		t.Errorf("typography.fontSize = %q, want 17px", got)
	}
	if stored.Has("typography") || stored.String("paddingTop") != "10" {
		t.Errorf("stored attributes mutated: %v", stored)
	}

	if again := p.Run(migrated, migrate.Options{}); len(again) != 0 {
		t.Errorf("second run patch = %v, want empty", again)
	}
	if twice, _ := p.Migrate(migrated, migrate.Options{}); !reflect.DeepEqual(twice, migrated) {
		t.Errorf("second migration changed attributes")
	}
}

func TestButtonPipeline_GlobalStyleAndNoGradient(t *testing.T) {
	p := migrate.Pipelines(testTables())["button"]
	patch := p.Run(attrs.Set{"blockVersion": 2, "useGlobalStyle": true, "hasUrl": false}, migrate.Options{})
	for _, key := range []string{"display", "gradientColorOne", "hasUrl"} {
		if patch.Has(key) {
			t.Errorf("unexpected %s in patch %v", key, patch)
		}
	}
}

func TestContainerPipeline(t *testing.T) {
	p := migrate.Pipelines(testTables())["container"]
	stored := attrs.Set{
		"outerContainer": "contained",
		"width":          50,
		"widthMobile":    100,
		"minHeight":      200,
		"minHeightUnit":  "px",
		"paddingRight":   "20",
		"paddingUnit":    "px",
	}

	migrated, patch := p.Migrate(stored, migrate.Options{})

	sizing := migrated.Sub("sizing")
	for key, want := range map[string]string{"width": "50%", "widthMobile": "100%", "minHeight": "200px"} {
		if got := sizing.String(key); got != want {
			t.Errorf("sizing.%s = %q, want %q", key, got, want)
		}
	}
	for key, want := range map[string]string{
		"width":             "",
		"useGlobalMaxWidth": "true",
		"useInnerContainer": "true",
		"paddingTop":        "40px",
		"paddingRight":      "20px",
		"gradientDirection": "",
		"blockVersion":      "3",
	} {
		if got := patch.String(key); got != want {
			t.Errorf("patch[%s] = %q, want %q", key, got, want)
		}
	}

	if again := p.Run(migrated, migrate.Options{}); len(again) != 0 {
		t.Errorf("second run patch = %v, want empty", again)
	}
}

func TestMigrateDimensions(t *testing.T) {
	a := attrs.Set{
		"paddingTop":          10,
		"paddingTopTablet":    "5",
		"paddingTopMobile":    "",
		"paddingUnit":         "em",
		"borderSizeLeft":      0,
		"borderRadiusTopLeft": "4px",
	}
	got := migrate.MigrateDimensions("paddingTop", "borderSizeLeft", "borderRadiusTopLeft")(a)
	want := attrs.Set{
		"paddingTop":       "10em",
		"paddingTopTablet": "5em",
		"borderSizeLeft":   "0px",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMigrateTypography(t *testing.T) {
	defaults := attrs.Set{"fontWeight": "", "alignment": ""}
	a := attrs.Set{
		"alignment":           "center",
		"alignmentMobile":     "left",
		"letterSpacing":       0.02,
		"fontWeight":          "",
		"typography":          map[string]any{"fontFamily": "Roboto"},
		"lineHeight":          "1.5",
		"lineHeightUnit":      "em",
		"textTransformTablet": "uppercase",
	}
	patch := migrate.MigrateTypography(defaults, "alignment", "letterSpacing", "fontWeight", "lineHeight")(a)

	typo := patch.Sub("typography")
	want := map[string]string{
		"fontFamily":      "Roboto",
		"textAlign":       "center",
		"textAlignMobile": "left",
		"letterSpacing":   "0.02em",
		"lineHeight":      "1.5em",
	}
	for key, w := range want {
		if got := typo.String(key); got != w {
			t.Errorf("typography.%s = %q, want %q", key, got, w)
		}
	}
	if typo.Has("fontWeight") || typo.Has("textTransformTablet") {
		t.Errorf("unexpected keys moved: %v", typo)
	}
	if patch.String("alignment") != "" || !patch.Has("alignmentMobile") {
		t.Errorf("moved attributes not reset: %v", patch)
	}
	if got := migrate.MigrateTypography(defaults, "fontWeight")(a); len(got) != 0 {
		t.Errorf("patch = %v, want empty", got)
	}
}

func TestLegacyDefaults(t *testing.T) {
	defaults := attrs.Set{"gradientDirection": 90, "paddingTop": "10"}
	step := migrate.LegacyDefaults(defaults,
		migrate.LegacyGroup{Keys: []string{"paddingTop", "unknown"}},
		migrate.LegacyGroup{When: "gradient", Keys: []string{"gradientDirection"}},
	)

	got := step(attrs.Set{"paddingTop": 0})
	if len(got) != 0 {
		t.Errorf("zero is a value, patch = %v", got)
	}
	got = step(attrs.Set{"gradient": true})
	want := attrs.Set{"paddingTop": "10", "gradientDirection": 90}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStoredVersion(t *testing.T) {
	tests := []struct {
		in   attrs.Set
		want int
	}{
		{attrs.Set{}, 0},
		{attrs.Set{"blockVersion": 2}, 2},
		{attrs.Set{"blockVersion": 3.0}, 3},
		{attrs.Set{"blockVersion": "4"}, 4},
	}
	for _, tt := range tests {
		if got := migrate.StoredVersion(tt.in); got != tt.want {
			t.Errorf("StoredVersion(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestChain(t *testing.T) {
	step := migrate.Chain(
		migrate.LegacyDefaults(attrs.Set{"marginBottom": "20", "marginUnit": "px"}, migrate.LegacyGroup{Keys: []string{"marginBottom", "marginUnit"}}),
		migrate.MigrateDimensions("marginBottom"),
	)
	tests := []struct {
		name string
		in   attrs.Set
		want attrs.Set
	}{
		{"frozen default gets unit", attrs.Set{}, attrs.Set{"marginBottom": "20px", "marginUnit": "px"}},
		{"own unit wins", attrs.Set{"marginUnit": "em"}, attrs.Set{"marginBottom": "20em"}},
		{"own value kept", attrs.Set{"marginBottom": "5px", "marginUnit": "px"}, attrs.Set{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := step(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

var bareNumber = regexp.MustCompile(`^-?[0-9.]+$`)

// Blocks saved by the oldest versions must render valid dimensions after
// migration with the shipped legacy tables.
func TestPipelines_LegacyBlocksRender(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	pipelines := migrate.Pipelines(cfg.MigrationTables())
	engine := styles.NewEngine(styles.Options{
		MediaQueries:   cfg.Styles.MediaQueryTable(),
		ContainerWidth: cfg.Styles.ContainerWidth,
		Defaults:       cfg.Defaults.Sets(),
	}, nil, nil)

	tests := []struct {
		block  string
		stored attrs.Set
		// declarations which must be present
		want map[string]string
	}{
		{"container", attrs.Set{"uniqueId": "c1", "blockVersion": 1},
			map[string]string{"padding-top": "40px", "padding-left": "40px"}},
		{"container", attrs.Set{"uniqueId": "c2", "blockVersion": 1, "paddingUnit": "em", "paddingTopMobile": 2},
			map[string]string{"padding-right": "40em", "padding-top": "2em"}},
		{"headline", attrs.Set{"uniqueId": "h1", "blockVersion": 1},
			map[string]string{"margin-bottom": "20px"}},
		{"headline", attrs.Set{"uniqueId": "h2", "blockVersion": 1, "marginTop": 5, "marginUnit": "em"},
			map[string]string{"margin-top": "5em", "margin-bottom": "20em"}},
		{"button", attrs.Set{"uniqueId": "b1", "blockVersion": 1, "paddingTop": 15, "paddingUnit": "px", "hasIcon": true, "iconPaddingUnit": "em"},
			map[string]string{"padding-top": "15px", "padding": "0.5em"}},
	}
	for _, tt := range tests {
		t.Run(tt.stored.String("uniqueId"), func(t *testing.T) {
			migrated, _ := pipelines[tt.block].Migrate(tt.stored, migrate.Options{})
			res, err := engine.Generate(tt.block, migrated, styles.Context{})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			found := map[string][]string{}
			for _, rs := range []*css.RuleSet{res.Desktop, res.Tablet, res.Mobile} {
				for _, sel := range rs.Selectors() {
					for _, d := range rs.Declarations(sel) {
						if !strings.HasPrefix(d.Property, "padding") && !strings.HasPrefix(d.Property, "margin") {
							continue
						}
						for _, v := range strings.Fields(d.Value) {
							if bareNumber.MatchString(v) && v != "0" {
								t.Errorf("%s { %s: %s } has no unit", sel, d.Property, d.Value)
							}
						}
						found[d.Property] = append(found[d.Property], strings.Fields(d.Value)...)
					}
				}
			}
			for prop, want := range tt.want {
				if !slices.Contains(found[prop], want) {
					t.Errorf("%s = %v, want %q", prop, found[prop], want)
				}
			}
		})
	}
}
