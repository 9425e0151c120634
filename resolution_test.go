package jeweljam

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolutionWindowed(t *testing.T) {
	d := &fakeDisplay{monitor: image.Pt(1920, 1080)}
	r := NewResolution(d, image.Pt(1024, 768), image.Pt(1024, 768))

	r.SetFullScreen(false)

	assert.False(t, r.FullScreen())
	assert.False(t, d.fullscreen)
	assert.Equal(t, image.Pt(1024, 768), d.window)
	assert.Equal(t, image.Pt(1024, 768), r.ScreenSize())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), r.Viewport())

	m := r.SpriteScale()
	x, y := m.Apply(1024, 768)
	assert.InDelta(t, 1024.0, x, 1e-6)
	assert.InDelta(t, 768.0, y, 1e-6)
}

func TestResolutionFullScreenUsesMonitor(t *testing.T) {
	d := &fakeDisplay{monitor: image.Pt(1920, 1080)}
	r := NewResolution(d, image.Pt(1024, 768), image.Pt(1024, 768))

	r.SetFullScreen(true)

	assert.True(t, r.FullScreen())
	assert.True(t, d.fullscreen)
	assert.Zero(t, d.windowCalls, "window must not be resized in full screen")
	assert.Equal(t, image.Pt(1920, 1080), r.ScreenSize())
	assert.Equal(t, image.Rect(240, 0, 1680, 1080), r.Viewport())

	m := r.SpriteScale()
	x, y := m.Apply(0, 0)
	assert.InDelta(t, 240.0, x, 1e-6)
	assert.InDelta(t, 0.0, y, 1e-6)
	x, y = m.Apply(1024, 768)
	assert.InDelta(t, 1680.0, x, 1e-6)
	assert.InDelta(t, 1080.0, y, 1e-6)
}

func TestResolutionFullScreenWithoutMonitor(t *testing.T) {
	d := &fakeDisplay{}
	r := NewResolution(d, image.Pt(800, 600), image.Pt(1024, 768))

	r.SetFullScreen(true)

	assert.Equal(t, image.Pt(1024, 768), r.ScreenSize())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), r.Viewport())
}

func TestResolutionToggle(t *testing.T) {
	d := &fakeDisplay{monitor: image.Pt(1920, 1080)}
	r := NewResolution(d, image.Pt(1024, 768), image.Pt(1024, 768))
	r.SetFullScreen(false)

	r.Toggle()
	assert.True(t, r.FullScreen())
	assert.Equal(t, image.Pt(1920, 1080), r.ScreenSize())

	r.Toggle()
	assert.False(t, r.FullScreen())
	assert.Equal(t, image.Pt(1024, 768), r.ScreenSize())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), r.Viewport())
}

func TestResolutionResize(t *testing.T) {
	d := &fakeDisplay{}
	r := NewResolution(d, image.Pt(1024, 768), image.Pt(1024, 768))
	r.SetFullScreen(false)

	assert.False(t, r.Resize(image.Pt(1024, 768)), "same size is a no-op")
	assert.False(t, r.Resize(image.Pt(0, 100)))

	assert.True(t, r.Resize(image.Pt(768, 1024)))
	assert.Equal(t, image.Rect(0, 224, 768, 800), r.Viewport())
	assert.Equal(t, image.Pt(1024, 768), r.WindowSize(), "resizing does not change the configured window size")
}

func TestResolutionSetWorldSize(t *testing.T) {
	d := &fakeDisplay{}
	r := NewResolution(d, image.Pt(1024, 768), image.Pt(1280, 720))
	r.SetFullScreen(false)

	r.SetWorldSize(image.Pt(800, 600))
	assert.Equal(t, image.Pt(800, 600), r.WorldSize())
	assert.Equal(t, image.Rect(160, 0, 1120, 720), r.Viewport())
}

func TestResolutionScreenToWorld(t *testing.T) {
	d := &fakeDisplay{monitor: image.Pt(1920, 1080)}
	r := NewResolution(d, image.Pt(1024, 768), image.Pt(1024, 768))
	r.SetFullScreen(true)

	x, y := r.ScreenToWorld(960, 540)
	assert.InDelta(t, 512.0, x, 1e-9)
	assert.InDelta(t, 384.0, y, 1e-9)
}
