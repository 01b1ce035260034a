package dbug

import (
	"io"
	"strconv"
	"strings"
)

// ColorMode decides whether a Logger paints its label and stopwatch.
type ColorMode int

const (
	// ColorAlways emits colour escapes regardless of the destination.
	ColorAlways ColorMode = iota
	// ColorAuto emits colour only when the destination is a terminal.
	ColorAuto
	// ColorNever disables colour escapes.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return "ColorMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseColorMode converts "always", "auto" or "never" (case insensitive) into
// a ColorMode. Boolean spellings accepted by strconv.ParseBool map to
// ColorAlways and ColorNever.
func ParseColorMode(value string) (ColorMode, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "always", "force":
		return ColorAlways, true
	case "auto", "tty":
		return ColorAuto, true
	case "never", "none":
		return ColorNever, true
	}
	if on, err := strconv.ParseBool(v); err == nil {
		if on {
			return ColorAlways, true
		}
		return ColorNever, true
	}
	return ColorAlways, false
}

// Options configures NewWithOptions.
type Options struct {
	// Filter is the filter specification evaluated against the label, in the
	// same grammar as the DEBUG environment variable. Empty disables output.
	Filter string

	// Output receives one Write per emitted line. Defaults to os.Stdout.
	Output io.Writer

	// Color selects when escapes are emitted. The zero value is ColorAlways.
	Color ColorMode

	// OnWriteError is called with every error returned by Output. Errors are
	// otherwise dropped; Log never reports them.
	OnWriteError func(error)
}
