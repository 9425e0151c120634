package jeweljam

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"jeweljam/internal/viewport"
)

// Display is the part of the windowing system the resolution code drives.
type Display interface {
	SetFullscreen(fullscreen bool)
	IsFullscreen() bool
	MonitorSize() image.Point
	SetWindowSize(size image.Point)
}

type ebitenDisplay struct{}

func (ebitenDisplay) SetFullscreen(fullscreen bool) { ebiten.SetFullscreen(fullscreen) }

func (ebitenDisplay) IsFullscreen() bool { return ebiten.IsFullscreen() }

func (ebitenDisplay) MonitorSize() image.Point {
	m := ebiten.Monitor()
	if m == nil {
		return image.Point{}
	}
	w, h := m.Size()
	return image.Pt(w, h)
}

func (ebitenDisplay) SetWindowSize(size image.Point) { ebiten.SetWindowSize(size.X, size.Y) }

// Resolution scales a fixed-size world onto the window or the full screen.
type Resolution struct {
	display Display

	worldSize  image.Point
	windowSize image.Point
	screenSize image.Point

	viewport    image.Rectangle
	spriteScale ebiten.GeoM
}

// NewResolution creates a windowed resolution. Nothing is applied until
// SetFullScreen is called.
func NewResolution(d Display, world, window image.Point) *Resolution {
	if d == nil {
		d = ebitenDisplay{}
	}
	return &Resolution{
		display:    d,
		worldSize:  world,
		windowSize: window,
		screenSize: window,
	}
}

// apply switches the display mode and recalculates how the world is
// scaled to fit inside the screen.
func (r *Resolution) apply(fullScreen bool) {
	r.display.SetFullscreen(fullScreen)

	screen := r.windowSize
	if fullScreen {
		if m := r.display.MonitorSize(); m.X > 0 && m.Y > 0 {
			screen = m
		}
	} else {
		r.display.SetWindowSize(r.windowSize)
	}
	r.recalculate(screen)
	log.Printf("Resolution applied: fullscreen=%v screen=%v viewport=%v", fullScreen, screen, r.viewport)
}

func (r *Resolution) recalculate(screen image.Point) {
	r.screenSize = screen
	r.viewport = viewport.Calculate(r.worldSize, screen)
	r.spriteScale = viewport.GeoM(r.worldSize, r.viewport)
}

// FullScreen reports whether the display is in full-screen mode right now.
// The OS or the browser may leave full screen without going through
// SetFullScreen.
func (r *Resolution) FullScreen() bool {
	return r.display.IsFullscreen()
}

// SetFullScreen applies the requested display mode, even if it is already active.
func (r *Resolution) SetFullScreen(fullScreen bool) {
	r.apply(fullScreen)
}

// Toggle flips between windowed and full-screen mode.
func (r *Resolution) Toggle() {
	r.apply(!r.FullScreen())
}

// Resize recalculates the viewport when the engine reports an outer size
// that differs from the one last applied.
func (r *Resolution) Resize(outside image.Point) bool {
	if outside.X <= 0 || outside.Y <= 0 || outside == r.screenSize {
		return false
	}
	r.recalculate(outside)
	return true
}

// SetWorldSize changes the logical world size and recalculates the viewport.
func (r *Resolution) SetWorldSize(world image.Point) {
	r.worldSize = world
	r.recalculate(r.screenSize)
}

// SetWindowSize changes the size used in windowed mode.
func (r *Resolution) SetWindowSize(window image.Point) {
	r.windowSize = window
}

// WorldSize returns the logical world size in world units.
func (r *Resolution) WorldSize() image.Point { return r.worldSize }

// WindowSize returns the size used in windowed mode.
func (r *Resolution) WindowSize() image.Point { return r.windowSize }

// ScreenSize returns the screen size the viewport was last computed for.
func (r *Resolution) ScreenSize() image.Point { return r.screenSize }

// Viewport returns the area of the screen the world is drawn into.
func (r *Resolution) Viewport() image.Rectangle { return r.viewport }

// SpriteScale returns the matrix mapping world units onto the viewport.
func (r *Resolution) SpriteScale() ebiten.GeoM { return r.spriteScale }

// ScreenToWorld converts a position in screen pixels to world units.
func (r *Resolution) ScreenToWorld(x, y float64) (float64, float64) {
	return viewport.ScreenToWorld(r.viewport, r.worldSize, x, y)
}
