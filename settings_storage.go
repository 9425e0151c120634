package jeweljam

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DisplaySettings are the display choices remembered between runs.
type DisplaySettings struct {
	FullScreen bool `yaml:"fullscreen"`
}

// SettingsStorage persists DisplaySettings.
type SettingsStorage interface {
	Save(settings DisplaySettings) error
	// Load reports found=false when nothing was saved yet.
	Load() (settings DisplaySettings, found bool, err error)
}

// NewSettingsStorage returns the storage for the current platform.
func NewSettingsStorage() SettingsStorage {
	// provided per platform by build-tagged files
	return newSettingsStorage()
}

func encodeSettings(settings DisplaySettings) ([]byte, error) {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

func decodeSettings(data []byte) (DisplaySettings, error) {
	var settings DisplaySettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DisplaySettings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}
