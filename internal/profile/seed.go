package profile

import (
	"screencmp/internal/config"
	"screencmp/internal/screen"
)

// Seed turns a profile into the specs the collection starts with, applying
// any palette override first so cycled colors come from the active palette.
// Entries without an explicit color get the cycled color for their
// position. An empty profile yields nil, meaning built-in presets.
func Seed(p *config.Profile) []screen.Spec {
	if p == nil {
		return nil
	}

	screen.SetPalette(p.Palette)

	if len(p.Screens) == 0 {
		return nil
	}

	specs := make([]screen.Spec, 0, len(p.Screens))
	for i, ps := range p.Screens {
		color := ps.Color
		if color == "" {
			color = screen.ColorForIndex(i)
		}
		specs = append(specs, *screen.NewSpec(ps.Diagonal, ps.AspectX, ps.AspectY, color))
	}
	return specs
}
