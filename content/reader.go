package content

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// LookupEncoding returns encoding registered under IANA name. Empty name
// means detection from the content itself.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown code page %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("code page %q is not supported", name)
	}
	return enc, nil
}

// NewReader converts content to UTF-8. With nil encoding the code page is
// detected from BOM or meta tags, defaulting to UTF-8.
func NewReader(r io.Reader, enc encoding.Encoding) (io.Reader, error) {
	if enc != nil {
		return transform.NewReader(r, enc.NewDecoder()), nil
	}
	cr, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("unable to detect content encoding: %w", err)
	}
	return cr, nil
}

// Load decodes and parses content, filter is applied to the decoded text
// before parsing and may be nil.
func Load(r io.Reader, enc encoding.Encoding, filter func(string) string) ([]Block, error) {
	dr, err := NewReader(r, enc)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(dr)
	if err != nil {
		return nil, fmt.Errorf("unable to read content: %w", err)
	}
	text := string(data)
	if filter != nil {
		text = filter(text)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return ParseString(text)
}
