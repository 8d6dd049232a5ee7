package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gbcss/attrs"
)

// html chunks longer than this are shortened in dumps
const dumpHTMLLimit = 80

type treeWriter struct {
	sb strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.sb.WriteString("  ")
	}
	fmt.Fprintf(&tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

func (tw *treeWriter) attrs(depth int, a attrs.Set) {
	for _, k := range a.Keys() {
		v, err := json.Marshal(a[k])
		if err != nil {
			v = []byte(fmt.Sprintf("%v", a[k]))
		}
		tw.line(depth, "%s: %s", k, v)
	}
}

func shortHTML(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > dumpHTMLLimit {
		s = string(r[:dumpHTMLLimit]) + "..."
	}
	return strconv.Quote(s)
}

// Dump returns readable tree of parsed blocks. It exists solely for manual
// inspection during debugging.
func Dump(blocks []Block) string {
	tw := &treeWriter{}
	tw.line(0, "Blocks: %d", len(blocks))
	dumpBlocks(tw, 1, blocks)
	return tw.sb.String()
}

func dumpBlocks(tw *treeWriter, depth int, blocks []Block) {
	for i := range blocks {
		b := &blocks[i]
		if b.Name == "" {
			tw.line(depth, "HTML %s", shortHTML(b.InnerHTML))
			continue
		}
		tw.line(depth, "Block[%q] type[%q] attrs[%d] inner[%d]", b.Name, blockType(b.Name), len(b.Attrs), len(b.Inner))
		tw.attrs(depth+1, b.Attrs)
		if html := strings.TrimSpace(b.InnerHTML); html != "" {
			tw.line(depth+1, "HTML %s", shortHTML(html))
		}
		dumpBlocks(tw, depth+1, b.Inner)
	}
}

// String returns readable listing of collected blocks grouped by type.
func (d *Data) String() string {
	if d == nil {
		return "<nil Data>"
	}
	tw := &treeWriter{}
	tw.line(0, "Collected: %d", d.Len())
	for _, typ := range d.order {
		list := d.blocks[typ]
		tw.line(1, "Type[%q] blocks[%d]", typ, len(list))
		for i, a := range list {
			tw.line(2, "#%d uniqueId[%q]", i, a.String("uniqueId"))
			tw.attrs(3, a)
		}
	}
	return tw.sb.String()
}
