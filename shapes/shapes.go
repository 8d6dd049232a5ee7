// Package shapes keeps library of SVG shape dividers containers may place
// on their edges.
package shapes

import (
	"bytes"
	"fmt"
	"slices"
	"sort"

	"github.com/beevik/etree"
	"github.com/maruel/natural"
)

// Shape is a single divider.
type Shape struct {
	ID    string
	Label string
	SVG   string
}

// Group of similar dividers.
type Group struct {
	ID     string
	Label  string
	Shapes []Shape
}

// Library is an ordered set of shape groups.
type Library struct {
	groups []Group
	index  map[string]Shape
}

// New returns library of builtin shapes extended with custom groups. Custom
// group with the same ID as existing one adds shapes to it, shapes with
// existing IDs replace builtin ones.
func New(custom ...Group) *Library {
	l := &Library{index: make(map[string]Shape)}
	for _, g := range builtin {
		l.add(g)
	}
	for _, g := range custom {
		l.add(g)
	}
	return l
}

func (l *Library) add(g Group) {
	pos := slices.IndexFunc(l.groups, func(x Group) bool { return x.ID == g.ID })
	if pos < 0 {
		l.groups = append(l.groups, Group{ID: g.ID, Label: g.Label})
		pos = len(l.groups) - 1
	}
	if g.Label != "" {
		l.groups[pos].Label = g.Label
	}
	for _, s := range g.Shapes {
		if _, ok := l.index[s.ID]; ok {
			l.replace(s)
		} else {
			l.groups[pos].Shapes = append(l.groups[pos].Shapes, s)
		}
		l.index[s.ID] = s
	}
}

func (l *Library) replace(s Shape) {
	for gi := range l.groups {
		for si := range l.groups[gi].Shapes {
			if l.groups[gi].Shapes[si].ID == s.ID {
				l.groups[gi].Shapes[si] = s
				return
			}
		}
	}
}

// Groups returns shape groups in their definition order.
func (l *Library) Groups() []Group {
	return slices.Clone(l.groups)
}

// Lookup finds shape by ID.
func (l *Library) Lookup(id string) (Shape, bool) {
	s, ok := l.index[id]
	return s, ok
}

// IDs returns all shape IDs in natural order, so "gb-triangle-10" follows
// "gb-triangle-9".
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.index))
	for id := range l.index {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))
	return ids
}

// Recolor returns shape markup with fill of every path set to color. Empty
// color leaves markup as is (divider inherits currentColor then).
func Recolor(svg, color string) (string, error) {
	if color == "" {
		return svg, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(svg); err != nil {
		return "", fmt.Errorf("unable to parse shape: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return "", fmt.Errorf("shape is not svg")
	}
	root.CreateAttr("fill", color)
	for _, el := range root.FindElements("//path") {
		el.CreateAttr("fill", color)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("unable to serialize shape: %w", err)
	}
	return buf.String(), nil
}
