package main

import (
	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickDeadZone ignores gamepad drift around the centre
const stickDeadZone = 0.15

// pollInput copies this frame's held keys, pointer and gamepad stick into the
// shared input state the simulation reads from.
func (a *App) pollInput() {
	in := a.input
	in.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	// Cursor is reported in layout coordinates, which match the canvas
	cx, cy := ebiten.CursorPosition()
	if cx != a.lastCursorX || cy != a.lastCursorY {
		a.lastCursorX, a.lastCursorY = cx, cy
		in.AimX, in.AimY = float64(cx), float64(cy)
	}

	in.StickX, in.StickY = 0, 0
	a.gamepads = ebiten.AppendGamepadIDs(a.gamepads[:0])
	for _, id := range a.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if x*x+y*y > stickDeadZone*stickDeadZone {
			in.StickX, in.StickY = x, y
		}
		// Right stick aims relative to the player
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if rx*rx+ry*ry > stickDeadZone*stickDeadZone {
			p := a.game.World().Player
			in.AimX, in.AimY = p.X+rx*200, p.Y+ry*200
		}
		break
	}
}

// handleActions processes edge-triggered commands: fire, pause, restart and
// the fullscreen toggle.
func (a *App) handleActions() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.Reset()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.TogglePause()
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if a.firePressed() {
		a.game.ShootBullet()
	}
}

// firePressed reports a fire edge from any device. Touches also move the aim
// to the touch point before firing.
func (a *App) firePressed() bool {
	fire := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	for _, id := range a.touches {
		x, y := ebiten.TouchPosition(id)
		a.input.AimX, a.input.AimY = float64(x), float64(y)
		fire = true
	}

	for _, id := range a.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			fire = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			a.game.TogglePause()
		}
	}
	return fire
}

var _ game.InputProvider = (*game.InputState)(nil)
