package migrate

import (
	"strings"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/values"
)

// InferIconAndURL flags presence of icon and link markup saved by old
// versions which had no explicit flags.
func InferIconAndURL(a attrs.Set) attrs.Set {
	patch := attrs.Set{}
	if !a.Bool("hasIcon") && a.Bool("icon") {
		patch["hasIcon"] = true
	}
	if !a.Has("hasUrl") {
		patch["hasUrl"] = a.Bool("url")
	} else if !a.Bool("hasUrl") && a.Bool("url") {
		patch["hasUrl"] = true
	}
	return patch
}

// InferIcon is InferIconAndURL for blocks without links.
func InferIcon(a attrs.Set) attrs.Set {
	if !a.Bool("hasIcon") && a.Bool("icon") {
		return attrs.Set{"hasIcon": true}
	}
	return attrs.Set{}
}

// LegacyGroup is a set of attributes frozen together. Group applies when
// its When attribute is truthy or When is empty.
type LegacyGroup struct {
	When string
	Keys []string
}

// LegacyDefaults returns step copying former global defaults into block
// attributes which have no value of their own, so changes of current
// defaults do not alter old content.
func LegacyDefaults(defaults attrs.Set, groups ...LegacyGroup) StepFunc {
	return func(a attrs.Set) attrs.Set {
		patch := attrs.Set{}
		for _, g := range groups {
			if g.When != "" && !a.Bool(g.When) {
				continue
			}
			for _, key := range g.Keys {
				if a.Get(key).HasNumber() || !defaults.Has(key) {
					continue
				}
				patch[key] = defaults.Get(key).Raw()
			}
		}
		return patch
	}
}

// ButtonLayout gives old buttons explicit flex layout which used to be
// hardcoded in their stylesheet.
func ButtonLayout(a attrs.Set) attrs.Set {
	if a.Bool("useGlobalStyle") {
		return attrs.Set{}
	}
	return attrs.Set{
		"display":        "inline-flex",
		"alignItems":     "center",
		"justifyContent": "center",
		"alignment":      "center",
	}
}

// IconPaddingDefault freezes former default of the right icon padding,
// merged with the icon padding unit.
func IconPaddingDefault(defaults attrs.Set) StepFunc {
	return func(a attrs.Set) attrs.Set {
		if a.Get("iconPaddingRight").HasNumber() || !defaults.Get("iconPaddingRight").HasNumber() {
			return attrs.Set{}
		}
		return attrs.Set{
			"iconPaddingRight": defaults.String("iconPaddingRight") + a.String("iconPaddingUnit"),
		}
	}
}

// MigrateFlex turns on flex layout for blocks with icons and translates
// inline icon alignment into flex alignment.
func MigrateFlex(a attrs.Set) attrs.Set {
	patch := attrs.Set{}
	if !a.Bool("hasIcon") {
		return patch
	}
	if a.String("display") != "flex" {
		patch["display"] = "flex"
	}
	if a.String("iconLocation") == "inline" {
		if align := values.FlexboxAlignment(a.String("iconVerticalAlignment")); align != "" && a.String("alignItems") != align {
			patch["alignItems"] = align
		}
	}
	return patch
}

// dimensionUnits maps attribute prefixes to unit attribute, unit values
// starting with "=" are literal units.
var dimensionUnits = []struct{ prefix, unit string }{
	{"iconPadding", "iconPaddingUnit"},
	{"padding", "paddingUnit"},
	{"margin", "marginUnit"},
	{"borderSize", "=px"},
	{"borderRadius", "borderRadiusUnit"},
}

func dimensionUnit(a attrs.Set, key string) string {
	for _, d := range dimensionUnits {
		if !strings.HasPrefix(key, d.prefix) {
			continue
		}
		if unit, ok := strings.CutPrefix(d.unit, "="); ok {
			return unit
		}
		return a.String(d.unit)
	}
	return ""
}

// isBareNumber reports whether value has no unit yet.
func isBareNumber(v attrs.Value) bool {
	_, ok := v.Float()
	return ok
}

// MigrateDimensions returns step merging numeric values of keys (and their
// breakpoint variants) with their separately stored units. Values which
// already carry a unit are left alone.
func MigrateDimensions(keys ...string) StepFunc {
	return func(a attrs.Set) attrs.Set {
		patch := attrs.Set{}
		for _, key := range keys {
			unit := dimensionUnit(a, key)
			for _, bp := range common.Breakpoints {
				name := key + bp.Suffix()
				v := a.Get(name)
				if !v.HasNumber() || !isBareNumber(v) {
					continue
				}
				patch[name] = v.String() + unit
			}
		}
		return patch
	}
}

var typographyNames = map[string]string{"alignment": "textAlign"}

var typographyUnits = map[string]string{
	"fontSize":      "fontSizeUnit",
	"lineHeight":    "lineHeightUnit",
	"letterSpacing": "=em",
}

// MigrateTypography returns step moving flat typography attributes into the
// nested typography object. Moved flat attributes are reset to their
// defaults, values equal to defaults are not moved.
func MigrateTypography(defaults attrs.Set, keys ...string) StepFunc {
	return func(a attrs.Set) attrs.Set {
		moved := attrs.Set{}
		reset := attrs.Set{}
		for _, key := range keys {
			target := key
			if n, ok := typographyNames[key]; ok {
				target = n
			}
			for _, bp := range common.Breakpoints {
				name := key + bp.Suffix()
				v := a.Get(name)
				if !v.HasNumber() || v.Equal(defaults.Get(name)) {
					continue
				}
				value := v.String()
				if unit := typographyUnits[key]; unit != "" && isBareNumber(v) {
					if literal, ok := strings.CutPrefix(unit, "="); ok {
						value += literal
					} else {
						value += a.String(unit)
					}
				}
				moved[target+bp.Suffix()] = value
				reset[name] = defaults.Get(name).Raw()
			}
		}
		if len(moved) == 0 {
			return attrs.Set{}
		}
		patch := reset
		patch["typography"] = map[string]any(attrs.Apply(a.Sub("typography"), moved))
		return patch
	}
}

var containerSizing = []struct{ key, unit string }{
	{"width", "=%"},
	{"minHeight", "minHeightUnit"},
	{"maxWidth", "=px"},
}

// ContainerSizing moves flat container dimensions into the nested sizing
// object. Contained outer container becomes global max width.
func ContainerSizing(a attrs.Set) attrs.Set {
	moved := attrs.Set{}
	patch := attrs.Set{}
	for _, s := range containerSizing {
		for _, bp := range common.Breakpoints {
			name := s.key + bp.Suffix()
			v := a.Get(name)
			if !v.HasNumber() {
				continue
			}
			value := v.String()
			if isBareNumber(v) {
				if literal, ok := strings.CutPrefix(s.unit, "="); ok {
					value += literal
				} else {
					value += a.At(s.unit, bp).String()
				}
			}
			moved[name] = value
			patch[name] = ""
		}
	}
	if a.String("outerContainer") == "contained" && !a.Bool("isGrid") && !a.Bool("useGlobalMaxWidth") {
		patch["useGlobalMaxWidth"] = true
	}
	if len(moved) > 0 {
		patch["sizing"] = map[string]any(attrs.Apply(a.Sub("sizing"), moved))
	}
	return patch
}

// InnerContainer keeps inner container of blocks created before it became
// optional.
func InnerContainer(a attrs.Set) attrs.Set {
	if a.Has("useInnerContainer") {
		return attrs.Set{}
	}
	return attrs.Set{"useInnerContainer": true}
}
