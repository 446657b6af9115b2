package main

import (
	"fmt"

	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// debugOverlay shows frame rate and entity counts; F3 toggles it and the
// setting survives restarts
type debugOverlay struct {
	visible bool
}

func (d *debugOverlay) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		d.visible = !d.visible
	}
}

func (d *debugOverlay) draw(screen *ebiten.Image, snap game.Snapshot) {
	if !d.visible {
		return
	}
	msg := fmt.Sprintf("FPS %.0f  TPS %.0f\nphase %s\nenemies %d  bullets %d\nboss bullets %d  particles %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), snap.Phase,
		len(snap.Enemies), len(snap.Bullets), len(snap.BossBullets), len(snap.Particles))
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, int(snap.Height)-90)
}
