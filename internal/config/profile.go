package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile configures the startup state of the tool. It seeds the initial
// collection only; the collection itself is never written back, so edits
// made in a session do not survive it.
type Profile struct {
	// Screens seeds the collection at startup. Empty means the built-in
	// presets are used. At most MaxScreens entries are honored.
	Screens []ProfileScreen `yaml:"screens"`
	// Palette optionally replaces the built-in color cycle. Ignored when
	// fewer than eight distinct colors are given.
	Palette []string `yaml:"palette"`
}

// ProfileScreen is one seeded screen. Color is optional; when empty the
// entry gets the cycled color for its position.
type ProfileScreen struct {
	Diagonal float64 `yaml:"diagonal"`
	AspectX  float64 `yaml:"aspect_x"`
	AspectY  float64 `yaml:"aspect_y"`
	Color    string  `yaml:"color"`
}

// LoadProfile reads and parses the profile at path. A missing file is not
// an error: it returns an empty profile, meaning built-in defaults.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}
