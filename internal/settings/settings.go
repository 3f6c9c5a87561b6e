// Package settings loads and saves the small TOML settings file the desktop
// UI edits. A missing file is initialized from defaults on first load; any
// other failure, including a malformed file, propagates to the caller.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings mirrors settings.toml. Keys stay camelCase so files written by
// earlier desktop releases keep parsing.
type Settings struct {
	LibraryName    string `toml:"libraryName" json:"libraryName"`
	CameraDeviceID string `toml:"cameraDeviceId" json:"cameraDeviceId"`
}

func Default() Settings {
	return Settings{LibraryName: "Librarie", CameraDeviceID: ""}
}

type Loader struct {
	path string
}

// NewLoader points the loader at settings.toml inside dataDir.
func NewLoader(dataDir string) *Loader {
	return &Loader{path: filepath.Join(dataDir, "settings.toml")}
}

// Path returns the location of the settings file.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the settings file. When the file does not exist yet, the
// defaults are persisted and returned; a present-but-unparseable file is an
// error, never silently replaced.
func (l *Loader) Load() (Settings, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		defaults := Default()
		if err := l.Store(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings file: %w", err)
	}
	return settings, nil
}

// Store writes the settings file, creating the data directory if needed.
func (l *Loader) Store(settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
