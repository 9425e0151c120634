// Package input polls keyboard and mouse state once per tick and answers
// edge-triggered queries against the previous tick.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source is where a Helper reads raw device state from.
type Source interface {
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
}

type ebitenSource struct{}

func (ebitenSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (ebitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

// EbitenSource reads input from the running game loop.
func EbitenSource() Source {
	return ebitenSource{}
}

type snapshot struct {
	keys       map[ebiten.Key]bool
	mouseX     int
	mouseY     int
	leftButton bool
}

// Helper keeps the current and previous input snapshots.
type Helper struct {
	src  Source
	cur  snapshot
	prev snapshot
	buf  []ebiten.Key
}

// NewHelper creates a helper that polls src. A nil src polls Ebitengine.
func NewHelper(src Source) *Helper {
	if src == nil {
		src = EbitenSource()
	}
	return &Helper{
		src:  src,
		cur:  snapshot{keys: map[ebiten.Key]bool{}},
		prev: snapshot{keys: map[ebiten.Key]bool{}},
	}
}

// Update must be called once at the start of every tick.
func (h *Helper) Update() {
	h.prev, h.cur = h.cur, h.prev
	clear(h.cur.keys)

	h.buf = h.src.AppendPressedKeys(h.buf[:0])
	for _, k := range h.buf {
		h.cur.keys[k] = true
	}
	h.cur.mouseX, h.cur.mouseY = h.src.CursorPosition()
	h.cur.leftButton = h.src.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// KeyPressed reports whether k went down during the last tick.
func (h *Helper) KeyPressed(k ebiten.Key) bool {
	return h.cur.keys[k] && !h.prev.keys[k]
}

// KeyDown reports whether k is held.
func (h *Helper) KeyDown(k ebiten.Key) bool {
	return h.cur.keys[k]
}

// MouseLeftPressed reports whether the left button went down during the last tick.
func (h *Helper) MouseLeftPressed() bool {
	return h.cur.leftButton && !h.prev.leftButton
}

// MousePosition returns the cursor position in screen pixels.
func (h *Helper) MousePosition() (float64, float64) {
	return float64(h.cur.mouseX), float64(h.cur.mouseY)
}
