// Package viewport maps a fixed-size logical world onto a screen of any size
// while keeping the world's aspect ratio.
package viewport

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Calculate returns the largest rectangle with the world's aspect ratio that
// fits inside screen, centered on it. Bars are left either above and below
// or to the left and right.
func Calculate(world, screen image.Point) image.Rectangle {
	if world.X <= 0 || world.Y <= 0 || screen.X <= 0 || screen.Y <= 0 {
		return image.Rectangle{}
	}

	gameAspect := float32(world.X) / float32(world.Y)
	windowAspect := float32(screen.X) / float32(screen.Y)

	var w, h int
	if windowAspect > gameAspect {
		// wide window: use the full height
		w = int(float32(screen.Y) * gameAspect)
		h = screen.Y
	} else {
		// tall window: use the full width
		w = screen.X
		h = int(float32(screen.X) / gameAspect)
	}

	x := (screen.X - w) / 2
	y := (screen.Y - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Scale returns the factors that stretch the world onto vp.
func Scale(world image.Point, vp image.Rectangle) (sx, sy float64) {
	if world.X <= 0 || world.Y <= 0 {
		return 1, 1
	}
	return float64(vp.Dx()) / float64(world.X), float64(vp.Dy()) / float64(world.Y)
}

// GeoM returns the matrix that draws world coordinates into vp.
func GeoM(world image.Point, vp image.Rectangle) ebiten.GeoM {
	var m ebiten.GeoM
	sx, sy := Scale(world, vp)
	m.Scale(sx, sy)
	m.Translate(float64(vp.Min.X), float64(vp.Min.Y))
	return m
}

// ScreenToWorld converts a screen position to world coordinates. The
// horizontal factor is used on both axes.
func ScreenToWorld(vp image.Rectangle, world image.Point, x, y float64) (float64, float64) {
	if vp.Dx() == 0 {
		return x, y
	}
	s := float64(world.X) / float64(vp.Dx())
	return (x - float64(vp.Min.X)) * s, (y - float64(vp.Min.Y)) * s
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(vp image.Rectangle, world image.Point, x, y float64) (float64, float64) {
	if world.X == 0 {
		return x, y
	}
	s := float64(vp.Dx()) / float64(world.X)
	return x*s + float64(vp.Min.X), y*s + float64(vp.Min.Y)
}
