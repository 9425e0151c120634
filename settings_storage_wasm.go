//go:build js && wasm

package jeweljam

import (
	"syscall/js"
)

type wasmSettingsStorage struct{}

func newSettingsStorage() SettingsStorage {
	return &wasmSettingsStorage{}
}

const wasmSettingsKey = "jeweljam_settings"

func (s *wasmSettingsStorage) Save(settings DisplaySettings) error {
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	js.Global().Get("localStorage").Call("setItem", wasmSettingsKey, string(data))
	return nil
}

func (s *wasmSettingsStorage) Load() (DisplaySettings, bool, error) {
	item := js.Global().Get("localStorage").Call("getItem", wasmSettingsKey)
	if item.IsNull() || item.IsUndefined() {
		return DisplaySettings{}, false, nil
	}
	settings, err := decodeSettings([]byte(item.String()))
	if err != nil {
		return DisplaySettings{}, false, err
	}
	return settings, true, nil
}
