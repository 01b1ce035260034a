// Package ansi provides the ANSI escape sequences and xterm-256 colour helpers
// used by dbug. Labels are painted with a bold 256-colour foreground picked
// from LabelPalette and converted to the nearest xterm code.
package ansi

import (
	"strconv"
	"strings"
)

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants are the building blocks of the 256-colour foreground
// sequence.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"

	fg256Prefix = "\x1b[1;38;5;"
	fg256Suffix = "m"
)

// Foreground256 returns the escape sequence that selects the bold xterm-256
// foreground colour code.
func Foreground256(code uint8) string {
	return fg256Prefix + strconv.Itoa(int(code)) + fg256Suffix
}

// Colorize wraps text in the bold foreground sequence for code and resets
// styling afterwards.
//
//	ansi.Colorize(197, "db:query") // "\x1b[1;38;5;197mdb:query\x1b[0m"
func Colorize(code uint8, text string) string {
	var b strings.Builder
	b.Grow(len(fg256Prefix) + 3 + len(fg256Suffix) + len(text) + len(Reset))
	b.WriteString(fg256Prefix)
	b.WriteString(strconv.Itoa(int(code)))
	b.WriteString(fg256Suffix)
	b.WriteString(text)
	b.WriteString(Reset)
	return b.String()
}

// Strip removes CSI escape sequences (ESC '[' ... final byte) from s.
func Strip(s string) string {
	if strings.IndexByte(s, 0x1b) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != 0x1b || i+1 >= len(s) || s[i+1] != '[' {
			b.WriteByte(s[i])
			continue
		}
		j := i + 2
		for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
			j++
		}
		i = j
	}
	return b.String()
}
