//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

// CleanFileName removes characters which could not be used in output file
// names, trailing dots and spaces are not allowed by Windows.
func CleanFileName(in string) string {
	const forbidden = `<>":/\|?*` + string(os.PathSeparator) + string(os.PathListSeparator)

	out := strings.Map(func(sym rune) rune {
		if sym < 32 || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	return fileNameOrFallback(strings.TrimRight(strings.TrimLeft(out, "."), ". "))
}

// EnableColorOutput checks if colorized output is possible and enables VT100
// sequence processing in Windows 10+ console.
func EnableColorOutput(stream *os.File) bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err != nil || v < 10 {
		return false
	}
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4

	var mode uint32
	h := windows.Handle(stream.Fd())
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}
