// Package attrs models block attribute bags: flat JSON compatible maps keyed
// by attribute name, with breakpoint variants stored under suffixed keys.
package attrs

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"gbcss/common"
)

// Set is the attribute bag of a single block instance. Core code treats it as
// read only, changes are expressed as patches (another Set).
type Set map[string]any

// Get returns attribute value, absent attributes produce zero Value.
func (s Set) Get(key string) Value {
	if s == nil {
		return Value{}
	}
	return V(s[key])
}

// Has reports whether attribute is present and not null.
func (s Set) Has(key string) bool {
	return s.Get(key).IsSet()
}

// String returns attribute rendered as text, see Value.String.
func (s Set) String(key string) string {
	return s.Get(key).String()
}

// Bool returns truthiness of attribute.
func (s Set) Bool(key string) bool {
	return s.Get(key).Truthy()
}

// Sub returns nested attribute bag or nil when attribute is not an object.
func (s Set) Sub(key string) Set {
	return toSet(s.Get(key).Raw())
}

// List returns attribute which is an array of objects (shape dividers for
// example). Non object entries are returned as nil sets to keep positions.
func (s Set) List(key string) []Set {
	switch x := s.Get(key).Raw().(type) {
	case []Set:
		return x
	case []map[string]any:
		out := make([]Set, 0, len(x))
		for _, m := range x {
			out = append(out, Set(m))
		}
		return out
	case []any:
		out := make([]Set, 0, len(x))
		for _, item := range x {
			out = append(out, toSet(item))
		}
		return out
	}
	return nil
}

// At returns breakpoint variant of attribute without any inheritance.
func (s Set) At(key string, bp common.Breakpoint) Value {
	return s.Get(key + bp.Suffix())
}

// Responsive collects all breakpoint variants of attribute.
func (s Set) Responsive(key string) Responsive[Value] {
	return Responsive[Value]{
		Desktop: s.Get(key),
		Tablet:  s.Get(key + common.BreakpointTablet.Suffix()),
		Mobile:  s.Get(key + common.BreakpointMobile.Suffix()),
	}
}

// Clone makes deep copy of the set, nested objects and arrays are copied too.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

// Keys returns sorted attribute names.
func (s Set) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// WithDefaults returns new set where every attribute missing from s is taken
// from defaults. Attributes explicitly present in s (even null) win.
func WithDefaults(s, defaults Set) Set {
	out := defaults.Clone()
	if out == nil {
		out = make(Set, len(s))
	}
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

// Apply returns new set with patch applied on top of s.
func Apply(s, patch Set) Set {
	out := s.Clone()
	if out == nil {
		out = make(Set, len(patch))
	}
	for k, v := range patch {
		out[k] = cloneValue(v)
	}
	return out
}

// NewUniqueID produces short identifier used to scope block selectors.
func NewUniqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func toSet(raw any) Set {
	switch x := raw.(type) {
	case Set:
		return x
	case map[string]any:
		return Set(x)
	}
	return nil
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case Set:
		return x.Clone()
	case map[string]any:
		return map[string]any(Set(x).Clone())
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = cloneValue(x[i])
		}
		return out
	case []Set:
		out := make([]Set, len(x))
		for i := range x {
			out[i] = x[i].Clone()
		}
		return out
	}
	return v
}
