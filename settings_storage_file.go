//go:build !js

package jeweljam

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const settingsFileName = "settings.yaml"

var (
	settingsDirMu     sync.Mutex
	customSettingsDir string
)

// SetSettingsDir overrides the directory settings are stored in. The
// mobile package passes the app's files directory here.
func SetSettingsDir(path string) {
	settingsDirMu.Lock()
	defer settingsDirMu.Unlock()
	customSettingsDir = path
}

func settingsDir() string {
	settingsDirMu.Lock()
	defer settingsDirMu.Unlock()
	return customSettingsDir
}

type fileSettingsStorage struct {
	// resolved on every access; the mobile host sets the directory after init
	path func() string
}

// NewFileSettingsStorage stores settings in a YAML file at path.
func NewFileSettingsStorage(path string) SettingsStorage {
	return &fileSettingsStorage{path: func() string { return path }}
}

func (s *fileSettingsStorage) Save(settings DisplaySettings) error {
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	path := s.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *fileSettingsStorage) Load() (DisplaySettings, bool, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// first run
			return DisplaySettings{}, false, nil
		}
		return DisplaySettings{}, false, fmt.Errorf("failed to read settings: %w", err)
	}
	settings, err := decodeSettings(data)
	if err != nil {
		return DisplaySettings{}, false, err
	}
	return settings, true, nil
}
