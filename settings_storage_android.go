//go:build android

package jeweljam

import (
	"os"
	"path/filepath"
)

func newSettingsStorage() SettingsStorage {
	return &fileSettingsStorage{path: func() string {
		// prefer the directory handed over by the Java side
		dir := settingsDir()
		if dir == "" {
			var err error
			dir, err = os.UserConfigDir()
			if err != nil {
				dir = "."
			}
		}
		return filepath.Join(dir, settingsFileName)
	}}
}
