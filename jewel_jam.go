package jeweljam

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"jeweljam/internal/input"
)

var cursorResources = []ResourceType{ResourceJewel1, ResourceJewel2, ResourceJewel3}

// JewelJam draws the background scaled into the window and a jewel that
// follows the mouse.
type JewelJam struct {
	*ExtendedGame

	background   *ebiten.Image
	cursorSprite *ebiten.Image
}

// NewJewelJam creates the game. Nil arguments select the Ebitengine
// defaults, see NewExtendedGame.
func NewJewelJam(cfg Config, display Display, src input.Source, settings SettingsStorage) *JewelJam {
	return &JewelJam{
		ExtendedGame: NewExtendedGame(cfg, display, src, settings),
	}
}

// LoadContent loads the sprites and sizes the world after the background.
// The initial display mode is applied on the first tick, see Start.
func (j *JewelJam) LoadContent() error {
	rm := Resources()
	if err := rm.PreloadResources(); err != nil {
		log.Printf("Preloading failed, loading on demand: %v", err)
	}

	bg, err := rm.LoadResource(ResourceBackground)
	if err != nil {
		return fmt.Errorf("failed to load background: %w", err)
	}
	j.background = bg

	cursor := pickCursorResource(Random().Intn(len(cursorResources)))
	j.cursorSprite = rm.GetResource(cursor, 32, 32)

	j.adoptWorldSize(bg.Bounds().Size())
	return nil
}

// adoptWorldSize makes the world as large as the background sprite unless
// the config fixes the world size.
func (j *JewelJam) adoptWorldSize(background image.Point) {
	if j.config.World.Width > 0 && j.config.World.Height > 0 {
		return
	}
	j.resolution.SetWorldSize(background)
}

func pickCursorResource(i int) ResourceType {
	if i < 0 || i >= len(cursorResources) {
		return ResourceJewel1
	}
	return cursorResources[i]
}

func (j *JewelJam) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	vp := j.resolution.Viewport()
	if vp.Empty() {
		return
	}
	// everything in the world is clipped to the viewport
	world := screen.SubImage(vp).(*ebiten.Image)
	scale := j.resolution.SpriteScale()

	if j.background != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Concat(scale)
		world.DrawImage(j.background, op)
	}

	if j.cursorSprite != nil {
		wx, wy := j.ScreenToWorld(j.input.MousePosition())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(wx, wy)
		op.GeoM.Concat(scale)
		world.DrawImage(j.cursorSprite, op)
	}

	j.DrawMessage(screen)
}
