package jeweljam

import (
	"image"
	"image/color"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"jeweljam/internal/input"
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768

	messageFontSize = 18
	messageFrames   = 90
)

var (
	random     = rand.New(rand.NewSource(time.Now().UnixNano()))
	exitFlag   atomic.Bool
	faceOnce   sync.Once
	statusFace text.Face
)

// Random returns the random source shared by the whole game.
func Random() *rand.Rand {
	return random
}

// ShouldExit reports whether the player asked to quit. The mobile host
// polls it since it cannot observe ebiten.Termination.
func ShouldExit() bool {
	return exitFlag.Load()
}

// SetExitFlag sets the flag returned by ShouldExit.
func SetExitFlag(exit bool) {
	exitFlag.Store(exit)
}

// ExtendedGame is the base every game builds on: it owns the resolution
// handling, the input helper and the global keys.
type ExtendedGame struct {
	resolution *Resolution
	input      *input.Helper
	settings   SettingsStorage
	config     Config
	started    bool

	message      string
	messageTimer int
}

// NewExtendedGame creates the base game. Nil arguments select the
// Ebitengine display, Ebitengine input and the platform settings storage.
func NewExtendedGame(cfg Config, display Display, src input.Source, settings SettingsStorage) *ExtendedGame {
	window := cfg.Window.Point()
	if window.X <= 0 || window.Y <= 0 {
		window = image.Pt(defaultWindowWidth, defaultWindowHeight)
	}
	world := cfg.World.Point()
	if world.X <= 0 || world.Y <= 0 {
		world = window
	}
	if settings == nil {
		settings = NewSettingsStorage()
	}
	return &ExtendedGame{
		resolution: NewResolution(display, world, window),
		input:      input.NewHelper(src),
		settings:   settings,
		config:     cfg,
	}
}

// Start applies the initial display mode: the remembered choice if one was
// saved, the configured one otherwise. Update calls it on the first tick
// if nobody did before, so the mobile host can set the settings directory
// between init and the first frame.
func (g *ExtendedGame) Start() {
	g.started = true
	fullScreen := g.config.FullScreen
	saved, found, err := g.settings.Load()
	if err != nil {
		log.Printf("Failed to load display settings: %v", err)
	} else if found {
		fullScreen = saved.FullScreen
	}
	g.resolution.SetFullScreen(fullScreen)
}

// Resolution returns the resolution applier.
func (g *ExtendedGame) Resolution() *Resolution { return g.resolution }

// Input returns the input helper, updated once per tick by HandleInput.
func (g *ExtendedGame) Input() *input.Helper { return g.input }

// FullScreen reports whether the game runs in full-screen mode.
func (g *ExtendedGame) FullScreen() bool {
	return g.resolution.FullScreen()
}

// SetFullScreen switches the display mode and remembers the choice.
func (g *ExtendedGame) SetFullScreen(fullScreen bool) {
	g.resolution.SetFullScreen(fullScreen)
	if err := g.settings.Save(DisplaySettings{FullScreen: fullScreen}); err != nil {
		log.Printf("Failed to save display settings: %v", err)
	}
	if fullScreen {
		g.ShowMessage("Full screen (F5 to leave)", messageFrames)
	} else {
		g.ShowMessage("Windowed (F5 for full screen)", messageFrames)
	}
}

// HandleInput polls the devices and handles the global keys: Esc quits,
// F5 toggles full screen.
func (g *ExtendedGame) HandleInput() error {
	g.input.Update()

	if g.input.KeyPressed(ebiten.KeyEscape) {
		SetExitFlag(true)
		return ebiten.Termination
	}
	if g.input.KeyPressed(ebiten.KeyF5) {
		g.SetFullScreen(!g.FullScreen())
	}
	return nil
}

// Update starts the game on the first tick, then handles the global keys
// and ages the status message.
func (g *ExtendedGame) Update() error {
	if !g.started {
		g.Start()
	}
	if err := g.HandleInput(); err != nil {
		return err
	}
	if g.messageTimer > 0 {
		g.messageTimer--
	}
	return nil
}

// Draw clears the screen and draws the status message. Games embedding
// ExtendedGame replace it with their own Draw and call DrawMessage.
func (g *ExtendedGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.DrawMessage(screen)
}

// Layout keeps the screen at the outer size; the world is scaled onto it
// by the sprite scale matrix.
func (g *ExtendedGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resolution.Resize(image.Pt(outsideWidth, outsideHeight))
	return outsideWidth, outsideHeight
}

// ScreenToWorld converts a position in screen pixels to world units.
func (g *ExtendedGame) ScreenToWorld(x, y float64) (float64, float64) {
	return g.resolution.ScreenToWorld(x, y)
}

// ShowMessage displays msg for the given number of ticks.
func (g *ExtendedGame) ShowMessage(msg string, duration int) {
	g.message = msg
	g.messageTimer = duration
}

// Message returns the status message currently on screen, if any.
func (g *ExtendedGame) Message() string {
	if g.messageTimer <= 0 {
		return ""
	}
	return g.message
}

// DrawMessage draws the status message in the bottom-left corner of the viewport.
func (g *ExtendedGame) DrawMessage(screen *ebiten.Image) {
	msg := g.Message()
	if msg == "" {
		return
	}
	face := loadStatusFace()
	if face == nil {
		return
	}
	vp := g.resolution.Viewport()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(vp.Min.X+8), float64(vp.Max.Y-messageFontSize-8))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, face, op)
}

func loadStatusFace() text.Face {
	faceOnce.Do(func() {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("Failed to parse status font: %v", err)
			return
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    messageFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.Printf("Failed to create status font face: %v", err)
			return
		}
		statusFace = text.NewGoXFace(face)
	})
	return statusFace
}
