//go:build !android && !js

package jeweljam

import (
	"os"
	"path/filepath"
)

func newSettingsStorage() SettingsStorage {
	return &fileSettingsStorage{path: func() string {
		if dir := settingsDir(); dir != "" {
			return filepath.Join(dir, settingsFileName)
		}
		dir, err := os.UserConfigDir()
		if err != nil {
			return settingsFileName
		}
		return filepath.Join(dir, "jeweljam", settingsFileName)
	}}
}
