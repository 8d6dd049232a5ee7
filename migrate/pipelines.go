package migrate

import (
	"slices"

	"gbcss/attrs"
)

// Tables are attribute defaults migrations freeze into old blocks, keyed by
// block type.
type Tables struct {
	// V140 holds defaults of 1.4.0, before they became static values.
	V140 map[string]attrs.Set
	// V180 holds defaults of 1.8.0, before dimensions got units.
	V180 map[string]attrs.Set
	// Current block defaults, typography values equal to them are not moved.
	Defaults map[string]attrs.Set
}

var gradientKeys = []string{
	"gradientDirection",
	"gradientColorOne",
	"gradientColorOneOpacity",
	"gradientColorTwo",
	"gradientColorTwoOpacity",
}

var sides = []string{"Top", "Right", "Bottom", "Left"}

var corners = []string{"TopRight", "BottomRight", "BottomLeft", "TopLeft"}

func expand(prefix string, suffixes []string) []string {
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, prefix+s)
	}
	return out
}

// boxKeys lists dimension attributes of a box, optionally with icon paddings.
func boxKeys(icon bool) []string {
	keys := slices.Concat(
		expand("padding", sides),
		expand("margin", sides),
		expand("borderSize", sides),
		expand("borderRadius", corners),
	)
	if icon {
		keys = append(keys, expand("iconPadding", sides)...)
	}
	return keys
}

// tableKeys returns sorted keys of table except listed ones.
func tableKeys(table attrs.Set, except ...string) []string {
	var keys []string
	for _, k := range table.Keys() {
		if !slices.Contains(except, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// frozenDimensions returns box keys present in legacy table.
func frozenDimensions(table attrs.Set) []string {
	var keys []string
	for _, k := range boxKeys(true) {
		if table.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// legacyDefaults freezes former defaults and gives frozen dimensions their
// units right away, later dimensions step only sees stored attributes.
func legacyDefaults(table attrs.Set, groups ...LegacyGroup) StepFunc {
	return Chain(LegacyDefaults(table, groups...), MigrateDimensions(frozenDimensions(table)...))
}

// Pipelines returns migrations of every versioned block type.
func Pipelines(t Tables) map[string]Pipeline {
	button140 := t.V140["button"]
	headline140 := t.V140["headline"]
	container140 := t.V140["container"]
	grid140 := t.V140["grid"]

	return map[string]Pipeline{
		"button": {
			Block:   "button",
			Current: 4,
			Always:  []Step{{Name: "infer-icon-url", Apply: InferIconAndURL}},
			Steps: []Step{
				{Name: "legacy-defaults", Version: 2, Apply: legacyDefaults(button140, LegacyGroup{When: "gradient", Keys: gradientKeys})},
				{Name: "layout", Version: 3, Apply: ButtonLayout},
				{Name: "icon-padding", Version: 4, Apply: IconPaddingDefault(t.V180["button"])},
				{Name: "dimensions", Version: 4, Apply: MigrateDimensions(boxKeys(true)...)},
				{Name: "typography", Version: 4, Apply: MigrateTypography(t.Defaults["button"],
					"fontFamily", "fontSize", "letterSpacing", "fontWeight", "textTransform", "alignment")},
			},
		},
		"headline": {
			Block:   "headline",
			Current: 3,
			Always:  []Step{{Name: "infer-icon", Apply: InferIcon}},
			Steps: []Step{
				{Name: "legacy-defaults", Version: 2, Apply: legacyDefaults(headline140, LegacyGroup{Keys: tableKeys(headline140)})},
				{Name: "flex", Version: 2, Apply: MigrateFlex},
				{Name: "dimensions", Version: 3, Apply: MigrateDimensions(boxKeys(true)...)},
				{Name: "typography", Version: 3, Apply: MigrateTypography(t.Defaults["headline"],
					"fontFamily", "fontSize", "lineHeight", "letterSpacing", "fontWeight", "textTransform", "alignment")},
			},
		},
		"container": {
			Block:   "container",
			Current: 3,
			Steps: []Step{
				{Name: "legacy-defaults", Version: 2, Apply: legacyDefaults(container140,
					LegacyGroup{Keys: tableKeys(container140, gradientKeys...)},
					LegacyGroup{When: "gradient", Keys: gradientKeys},
				)},
				{Name: "sizing", Version: 3, Apply: ContainerSizing},
				{Name: "inner-container", Version: 3, Apply: InnerContainer},
				{Name: "dimensions", Version: 3, Apply: MigrateDimensions(boxKeys(false)...)},
				{Name: "typography", Version: 3, Apply: MigrateTypography(t.Defaults["container"],
					"fontFamily", "fontSize", "fontWeight", "textTransform", "alignment")},
			},
		},
		"grid": {
			Block:   "grid",
			Current: 2,
			Steps: []Step{
				{Name: "legacy-defaults", Version: 2, Apply: LegacyDefaults(grid140, LegacyGroup{Keys: tableKeys(grid140)})},
			},
		},
	}
}
