package jeweljam

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeDisplay struct {
	fullscreen  bool
	monitor     image.Point
	window      image.Point
	windowCalls int
}

func (d *fakeDisplay) SetFullscreen(fullscreen bool) { d.fullscreen = fullscreen }

func (d *fakeDisplay) IsFullscreen() bool { return d.fullscreen }

func (d *fakeDisplay) MonitorSize() image.Point { return d.monitor }

func (d *fakeDisplay) SetWindowSize(size image.Point) {
	d.window = size
	d.windowCalls++
}

type fakeInput struct {
	keys []ebiten.Key
	x, y int
}

func (f *fakeInput) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.keys...)
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }

func (f *fakeInput) IsMouseButtonPressed(ebiten.MouseButton) bool { return false }

type memorySettings struct {
	saved   []DisplaySettings
	current *DisplaySettings
	loadErr error
}

func (m *memorySettings) Save(s DisplaySettings) error {
	m.saved = append(m.saved, s)
	m.current = &s
	return nil
}

func (m *memorySettings) Load() (DisplaySettings, bool, error) {
	if m.loadErr != nil || m.current == nil {
		return DisplaySettings{}, false, m.loadErr
	}
	return *m.current, true, nil
}
