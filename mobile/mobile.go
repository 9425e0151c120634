package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"jeweljam"
)

func init() {
	// The game must implement ebiten.Game. See
	// https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
	game := jeweljam.NewJewelJam(jeweljam.DefaultConfig(), nil, nil, nil)
	if err := game.LoadContent(); err != nil {
		log.Fatal(err)
	}
	mobile.SetGame(game)
}

// ShouldExit lets the Android activity check whether the player pressed Esc.
//
//export ShouldExit
func ShouldExit() bool {
	return jeweljam.ShouldExit()
}

// SetExitFlag is exported for the host to reset the exit request.
//
//export SetExitFlag
func SetExitFlag(exit bool) {
	jeweljam.SetExitFlag(exit)
}

// SetSettingsDir tells the game where to keep its settings file.
//
//export SetSettingsDir
func SetSettingsDir(path string) {
	jeweljam.SetSettingsDir(path)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
