package dbug

import (
	"github.com/cespare/xxhash/v2"

	"pkt.systems/dbug/ansi"
)

// DefaultColor is used when a palette entry cannot be converted.
const DefaultColor uint8 = 123

// ColorFor returns the xterm-256 colour code for label. The result only
// depends on the label string, so a label keeps its colour across runs and
// processes.
func ColorFor(label string) uint8 {
	i := xxhash.Sum64String(label) % uint64(len(ansi.LabelPalette))
	code, err := ansi.HexToANSI256(ansi.LabelPalette[i])
	if err != nil {
		return DefaultColor
	}
	return code
}
