package main

import (
	"math/rand"
	"time"

	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// App adapts the simulation to ebiten's Update/Draw/Layout cycle
type App struct {
	game  *game.Game
	input *game.InputState

	// reloads delivers tuning changes from the file watcher, nil when unwatched
	reloads <-chan game.Config

	start time.Time
	face  *text.GoXFace
	croc  *ebiten.Image
	dust  *dustField
	debug debugOverlay

	lastCursorX, lastCursorY int
	gamepads                 []ebiten.GamepadID
	touches                  []ebiten.TouchID
}

// NewApp wraps a game and the input state its host fills each frame
func NewApp(g *game.Game, input *game.InputState, rng *rand.Rand) *App {
	config := g.Config()
	return &App{
		game:        g,
		input:       input,
		start:       time.Now(),
		face:        text.NewGoXFace(basicfont.Face7x13),
		croc:        loadCrocSprite(),
		dust:        newDustField(config.Width, config.Height, rng),
		lastCursorX: -1,
		lastCursorY: -1,
	}
}

// Update applies pending reloads, reads input and advances the game
func (a *App) Update() error {
	select {
	case config := <-a.reloads:
		a.game.SetPendingConfig(config)
	default:
	}

	a.pollInput()
	a.handleActions()
	a.debug.handleInput()

	// Ticks are driven by wall time; the game clamps long frames itself
	ms := float64(time.Since(a.start)) / float64(time.Millisecond)
	a.game.Tick(ms)

	if a.game.Phase() != game.PhasePaused {
		config := a.game.Config()
		a.dust.update(1/float64(ebiten.TPS()), a.game.World().Player, config.Width, config.Height)
	}
	return nil
}

// Draw renders the current snapshot with HUD and overlays
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	drawBackground(screen, snap)
	a.dust.draw(screen)
	drawWorld(screen, snap, a.croc)
	a.drawHUD(screen, snap)
	a.drawOverlay(screen, snap)
	a.debug.draw(screen, snap)
}

// Layout keeps the logical screen at the configured canvas size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	config := a.game.Config()
	return int(config.Width), int(config.Height)
}
