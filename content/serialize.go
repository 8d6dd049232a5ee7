package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Serialize writes blocks back to serialized content. Attribute objects are
// encoded with sorted keys, so output is stable but not byte-identical to
// the source.
func Serialize(blocks []Block) (string, error) {
	var sb strings.Builder
	for i := range blocks {
		if err := serializeBlock(&sb, &blocks[i]); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func serializeBlock(sb *strings.Builder, b *Block) error {
	if b.Name == "" {
		sb.WriteString(b.InnerHTML)
		return nil
	}

	name := b.ShortName()
	sb.WriteString("<!-- wp:")
	sb.WriteString(name)
	if len(b.Attrs) > 0 {
		data, err := encodeAttrs(b)
		if err != nil {
			return err
		}
		sb.WriteByte(' ')
		sb.WriteString(data)
	}
	if len(b.InnerContent) == 0 && len(b.Inner) == 0 {
		sb.WriteString(" /-->")
		return nil
	}
	sb.WriteString(" -->")

	next := 0
	for _, chunk := range b.InnerContent {
		if chunk != nil {
			sb.WriteString(*chunk)
			continue
		}
		if next >= len(b.Inner) {
			return fmt.Errorf("block %s has more inner block markers than inner blocks", b.Name)
		}
		if err := serializeBlock(sb, &b.Inner[next]); err != nil {
			return err
		}
		next++
	}
	// blocks constructed in code may have no markers
	for ; next < len(b.Inner); next++ {
		if err := serializeBlock(sb, &b.Inner[next]); err != nil {
			return err
		}
	}

	sb.WriteString("<!-- /wp:")
	sb.WriteString(name)
	sb.WriteString(" -->")
	return nil
}

var attrsEscaper = strings.NewReplacer("--", "\\u002d\\u002d")

// encodeAttrs produces JSON safe to embed into HTML comment.
func encodeAttrs(b *Block) (string, error) {
	data, err := json.Marshal(b.Attrs)
	if err != nil {
		return "", fmt.Errorf("unable to encode attributes of %s: %w", b.Name, err)
	}
	// json.Marshal already escapes <, > and &
	return attrsEscaper.Replace(string(data)), nil
}
