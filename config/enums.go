package config

import (
	"fmt"
	"strings"
)

// FontDisplay is font-display value requested from web font service.
type FontDisplay int

const (
	FontDisplayNone FontDisplay = iota
	FontDisplayAuto
	FontDisplayBlock
	FontDisplaySwap
	FontDisplayFallback
	FontDisplayOptional
)

var fontDisplayNames = []string{"none", "auto", "block", "swap", "fallback", "optional"}

func (d FontDisplay) String() string {
	if d < 0 || int(d) >= len(fontDisplayNames) {
		return fmt.Sprintf("FontDisplay(%d)", int(d))
	}
	return fontDisplayNames[d]
}

// Param returns value of display parameter, empty for FontDisplayNone which
// leaves parameter out.
func (d FontDisplay) Param() string {
	if d == FontDisplayNone || !d.IsValid() {
		return ""
	}
	return d.String()
}

func (d FontDisplay) IsValid() bool {
	return d >= FontDisplayNone && int(d) < len(fontDisplayNames)
}

// FontDisplayNames returns list of possible string values.
func FontDisplayNames() []string {
	return append([]string(nil), fontDisplayNames...)
}

// ParseFontDisplay attempts to convert a string to a FontDisplay.
func ParseFontDisplay(name string) (FontDisplay, error) {
	for i, n := range fontDisplayNames {
		if strings.EqualFold(n, name) {
			return FontDisplay(i), nil
		}
	}
	return FontDisplayNone, fmt.Errorf("%s is not a valid FontDisplay, try [%s]", name, strings.Join(fontDisplayNames, ", "))
}

// MarshalText implements the text marshaller method.
func (d FontDisplay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (d *FontDisplay) UnmarshalText(text []byte) error {
	v, err := ParseFontDisplay(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
