// Package content reads serialized block content: HTML where blocks are
// delimited by comments like <!-- wp:name {"attr":1} --> ... <!-- /wp:name -->.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"gbcss/attrs"
)

// Block is a single parsed block. Freeform HTML outside of any block is kept
// as block with empty Name.
type Block struct {
	Name      string
	Attrs     attrs.Set
	InnerHTML string
	Inner     []Block
	// InnerContent interleaves HTML chunks and inner blocks in source order,
	// nil entries mark positions of inner blocks.
	InnerContent []*string
}

// ShortName returns block name without core namespace.
func (b *Block) ShortName() string {
	return strings.TrimPrefix(b.Name, "core/")
}

// Walk visits blocks depth first, stops when fn returns false.
func Walk(blocks []Block, fn func(b *Block) bool) bool {
	for i := range blocks {
		if !fn(&blocks[i]) || !Walk(blocks[i].Inner, fn) {
			return false
		}
	}
	return true
}

// Clone returns deep copy of blocks, attribute sets and inner blocks are not
// shared with the original tree.
func Clone(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		b.Attrs = b.Attrs.Clone()
		b.Inner = Clone(b.Inner)
		b.InnerContent = append([]*string(nil), b.InnerContent...)
		out[i] = b
	}
	return out
}

type delimiter struct {
	closer bool
	void   bool
	name   string
	attrs  attrs.Set
}

// parseDelimiter recognizes block delimiter in the comment text. Second
// result is false for ordinary comments.
func parseDelimiter(comment string) (delimiter, bool, error) {
	var d delimiter
	s := strings.TrimSpace(comment)
	switch {
	case strings.HasPrefix(s, "/wp:"):
		d.closer = true
		s = s[len("/wp:"):]
	case strings.HasPrefix(s, "wp:"):
		s = s[len("wp:"):]
	default:
		return d, false, nil
	}
	if strings.HasSuffix(s, "/") {
		d.void = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "/"))
	}
	name, rest, _ := strings.Cut(s, " ")
	if name == "" {
		return d, false, nil
	}
	if !strings.Contains(name, "/") {
		name = "core/" + name
	}
	d.name = name

	rest = strings.TrimSpace(rest)
	if rest == "" || d.closer {
		return d, true, nil
	}
	if err := json.Unmarshal([]byte(rest), &d.attrs); err != nil {
		return d, true, fmt.Errorf("unable to decode attributes of %s: %w", name, err)
	}
	return d, true, nil
}

// Parse reads serialized content and returns top level blocks. Unbalanced
// closers are ignored and unclosed blocks are closed at the end of input.
func Parse(r io.Reader) ([]Block, error) {
	z := html.NewTokenizer(r)

	var (
		top      []Block
		stack    []*Block
		freeform bytes.Buffer
	)

	appendHTML := func(raw []byte) {
		if len(stack) == 0 {
			freeform.Write(raw)
			return
		}
		cur := stack[len(stack)-1]
		cur.InnerHTML += string(raw)
		if n := len(cur.InnerContent); n > 0 && cur.InnerContent[n-1] != nil {
			*cur.InnerContent[n-1] += string(raw)
			return
		}
		chunk := string(raw)
		cur.InnerContent = append(cur.InnerContent, &chunk)
	}
	flushFreeform := func() {
		if freeform.Len() == 0 {
			return
		}
		text := freeform.String()
		top = append(top, Block{InnerHTML: text, InnerContent: []*string{&text}})
		freeform.Reset()
	}
	finish := func(b Block) {
		if len(stack) == 0 {
			flushFreeform()
			top = append(top, b)
			return
		}
		parent := stack[len(stack)-1]
		parent.Inner = append(parent.Inner, b)
		parent.InnerContent = append(parent.InnerContent, nil)
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unable to tokenize content: %w", err)
			}
			break
		}
		raw := z.Raw()
		if tt != html.CommentToken {
			appendHTML(raw)
			continue
		}

		d, ok, err := parseDelimiter(string(z.Token().Data))
		if err != nil {
			return nil, err
		}
		switch {
		case !ok:
			appendHTML(raw)
		case d.void:
			finish(Block{Name: d.name, Attrs: d.attrs})
		case !d.closer:
			stack = append(stack, &Block{Name: d.name, Attrs: d.attrs})
		default:
			// pop up to the matching opener, ignore stray closers
			idx := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].Name == d.name {
					idx = i
					break
				}
			}
			if idx < 0 {
				continue
			}
			for len(stack) > idx {
				b := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				finish(*b)
			}
		}
	}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		finish(*b)
	}
	flushFreeform()
	return top, nil
}

// ParseString is Parse for in-memory content.
func ParseString(s string) ([]Block, error) {
	return Parse(strings.NewReader(s))
}
