package config

import (
	"os"
	"path/filepath"
)

const (
	AppName     = "screencmp"
	ProfileName = "profile.yaml"
)

// DataDir returns the path to the screencmp data directory (~/.screencmp/),
// creating it if needed. SCREENCMP_DATA_DIR overrides the location
// (primarily for testing).
func DataDir() (string, error) {
	if dataDir := os.Getenv("SCREENCMP_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// ProfilePath returns the path to the profile file
// (~/.screencmp/profile.yaml). The file itself may not exist; the profile
// is optional.
func ProfilePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ProfileName), nil
}
