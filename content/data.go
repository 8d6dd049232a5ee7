package content

import (
	"strings"

	"gbcss/attrs"
)

// Block type keys of collected data.
const (
	TypeGrid            = "grid"
	TypeContainer       = "container"
	TypeHeadline        = "headline"
	TypeButtonContainer = "button-container"
	TypeButton          = "button"
	TypeImage           = "image"
	TypeSection         = "section"
)

// blockType maps full block name to collected data key, "" for blocks we
// do not style.
func blockType(name string) string {
	if t, ok := strings.CutPrefix(name, "generateblocks/"); ok {
		switch t {
		case TypeGrid, TypeContainer, TypeHeadline, TypeButtonContainer, TypeButton, TypeImage:
			return t
		}
		return ""
	}
	if name == "generatepress/section" {
		return TypeSection
	}
	return ""
}

// TypeOf returns styled block type of full block name, "" for blocks which
// are not styled.
func TypeOf(name string) string {
	return blockType(name)
}

// Data keeps attribute sets of collected blocks grouped by block type. Types
// are kept in order of first appearance, blocks in document order.
type Data struct {
	order  []string
	blocks map[string][]attrs.Set
}

// Add appends attribute set under block type.
func (d *Data) Add(typ string, a attrs.Set) {
	if d.blocks == nil {
		d.blocks = make(map[string][]attrs.Set)
	}
	if _, ok := d.blocks[typ]; !ok {
		d.order = append(d.order, typ)
	}
	d.blocks[typ] = append(d.blocks[typ], a)
}

// Types returns collected block types in order of first appearance.
func (d *Data) Types() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.order...)
}

// Blocks returns attribute sets collected for block type.
func (d *Data) Blocks(typ string) []attrs.Set {
	if d == nil {
		return nil
	}
	return d.blocks[typ]
}

// Len returns total number of collected blocks.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	var n int
	for _, list := range d.blocks {
		n += len(list)
	}
	return n
}
