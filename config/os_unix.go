//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName removes characters which could not be used in output file
// names, leading dots are dropped to keep stylesheets visible.
func CleanFileName(in string) string {
	const forbidden = string(os.PathSeparator) + string(os.PathListSeparator)

	out := strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	return fileNameOrFallback(strings.TrimLeft(out, "."))
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
