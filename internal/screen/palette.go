package screen

// palette is the fixed color cycle for new screens. ANSI-256 color codes,
// chosen to stay distinguishable on both dark and light terminals.
var palette = []string{
	"39",  // blue
	"204", // pink
	"42",  // green
	"214", // orange
	"135", // purple
	"45",  // cyan
	"220", // yellow
	"196", // red
}

// ColorForIndex returns the palette color for an entry's creation ordinal,
// cycling when the ordinal exceeds the palette length. The ordinal is the
// collection length at the moment the entry is created, not its current
// position: a color assigned once is never reassigned when earlier entries
// are removed, so a screen keeps its visual identity.
func ColorForIndex(index int) string {
	if index < 0 {
		index = 0
	}
	return palette[index%len(palette)]
}

// PaletteSize returns the number of colors in the cycle.
func PaletteSize() int {
	return len(palette)
}

// Palette returns a copy of the color cycle in order.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// MinPaletteColors is the floor on the color cycle: the cycle always holds
// at least this many distinct colors so up to MaxScreens entries plus a few
// removals never collapse onto the same hue.
const MinPaletteColors = 8

// SetPalette replaces the color cycle. Used when a profile overrides the
// built-in colors; overrides with fewer than MinPaletteColors distinct
// entries are ignored so the floor holds.
func SetPalette(colors []string) {
	distinct := make(map[string]bool, len(colors))
	for _, c := range colors {
		distinct[c] = true
	}
	if len(distinct) < MinPaletteColors {
		return
	}
	palette = make([]string, len(colors))
	copy(palette, colors)
}
