package ansi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LabelPalette is the fixed set of saturated colours labels are hashed onto.
// The order is part of the colour contract: reordering or resizing it changes
// which colour every existing label gets.
var LabelPalette = [...]string{
	"#0000CC", "#0000FF", "#0033CC", "#0033FF", "#0066CC", "#0066FF", "#0099CC", "#0099FF",
	"#00CC00", "#00CC33", "#00CC66", "#00CC99", "#00CCCC", "#00CCFF", "#3300CC", "#3300FF",
	"#3333CC", "#3333FF", "#3366CC", "#3366FF", "#3399CC", "#3399FF", "#33CC00", "#33CC33",
	"#33CC66", "#33CC99", "#33CCCC", "#33CCFF", "#6600CC", "#6600FF", "#6633CC", "#6633FF",
	"#66CC00", "#66CC33", "#9900CC", "#9900FF", "#9933CC", "#9933FF", "#99CC00", "#99CC33",
	"#CC0000", "#CC0033", "#CC0066", "#CC0099", "#CC00CC", "#CC00FF", "#CC3300", "#CC3333",
	"#CC3366", "#CC3399", "#CC33CC", "#CC33FF", "#CC6600", "#CC6633", "#CC9900", "#CC9933",
	"#CCCC00", "#CCCC33", "#FF0000", "#FF0033", "#FF0066", "#FF0099", "#FF00CC", "#FF00FF",
	"#FF3300", "#FF3333", "#FF3366", "#FF3399", "#FF33CC", "#FF33FF", "#FF6600", "#FF6633",
	"#FF9900", "#FF9933", "#FFCC00", "#FFCC33",
}

// ErrInvalidHex is returned by ParseHex for anything that is not six hex
// digits with an optional leading '#'.
var ErrInvalidHex = errors.New("ansi: invalid hex colour")

// ParseHex decodes "#RRGGBB" (or "RRGGBB") into its channels.
func ParseHex(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidHex, hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// HexToANSI256 converts a hex colour to the nearest xterm-256 code.
func HexToANSI256(hex string) (uint8, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return RGBToANSI256(r, g, b), nil
}

// RGBToANSI256 maps an RGB triple onto the xterm-256 palette. Pure greys use
// the 24-step grey ramp (232-255) with black and white snapping to the cube
// corners 16 and 231; everything else lands in the 6x6x6 cube (16-231).
func RGBToANSI256(r, g, b uint8) uint8 {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + uint8((uint16(r)-8)*24/247)
	}
	return 16 + 36*cubeBand(r) + 6*cubeBand(g) + cubeBand(b)
}

func cubeBand(v uint8) uint8 {
	switch {
	case v <= 47:
		return 0
	case v <= 114:
		return 1
	case v <= 154:
		return 2
	case v <= 194:
		return 3
	case v <= 234:
		return 4
	default:
		return 5
	}
}
