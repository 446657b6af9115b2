package main

import (
	"fmt"
	"image/color"
	"math"

	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin     = 12
	hudLineHeight = 16
	heartSize     = 14
	heartSpacing  = 20
)

var (
	hudTextColor  = color.RGBA{240, 240, 230, 255}
	statusColor   = color.RGBA{255, 230, 140, 255}
	overlayShade  = color.RGBA{0, 0, 0, 150}
	heartEmpty    = color.RGBA{80, 60, 70, 255}
	goalBackColor = color.RGBA{0, 0, 0, 120}
	goalFillColor = color.RGBA{120, 220, 140, 255}
)

// drawText draws s with its top-left corner at (x, y)
func (a *App) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = hudLineHeight
	text.Draw(screen, s, a.face, op)
}

// comboLabel is empty at the base multiplier
func comboLabel(combo float64) string {
	if combo <= 1 {
		return ""
	}
	return fmt.Sprintf("   Combo x%.2f", combo)
}

// drawHUD shows score, hearts, round progress and the status line
func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	for i := 0; i < snap.MaxHP; i++ {
		clr := heartEmpty
		if i < snap.HP {
			clr = hpFillColor
		}
		x := float32(hudMargin + i*heartSpacing + heartSize/2)
		vector.DrawFilledCircle(screen, x, hudMargin+heartSize/2, heartSize/2, clr, true)
	}

	left := fmt.Sprintf("Score %d   Best %d", snap.Score, snap.BestScore) + comboLabel(snap.Combo)
	a.drawText(screen, left, hudMargin, hudMargin+heartSize+6, hudTextColor, text.AlignStart)

	right := fmt.Sprintf("Round %d/%d", snap.Round, snap.MaxRounds)
	if snap.Boss != nil {
		right += "   BOSS"
	} else {
		right += fmt.Sprintf("   %d/%d", min(snap.Kills, snap.RoundGoal), snap.RoundGoal)
	}
	a.drawText(screen, right, snap.Width-hudMargin, hudMargin, hudTextColor, text.AlignEnd)

	// Kill progress toward the boss
	if snap.RoundGoal > 0 && snap.Boss == nil {
		const barWidth, barHeight = 140, 5
		x := float32(snap.Width - hudMargin - barWidth)
		y := float32(hudMargin + hudLineHeight + 4)
		vector.DrawFilledRect(screen, x, y, barWidth, barHeight, goalBackColor, false)
		fill := barWidth * float32(min(snap.Kills, snap.RoundGoal)) / float32(snap.RoundGoal)
		vector.DrawFilledRect(screen, x, y, fill, barHeight, goalFillColor, false)
	}

	if snap.Status != "" {
		a.drawText(screen, snap.Status, snap.Width/2, snap.Height-hudMargin-hudLineHeight, statusColor, text.AlignCenter)
	}
}

// drawOverlay dims the field for countdown, pause and end-of-game screens
func (a *App) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	var lines string
	switch snap.Phase {
	case game.PhaseCountdown:
		lines = fmt.Sprintf("Round %d\n%d", snap.Round, int(math.Ceil(snap.Countdown)))
	case game.PhasePaused:
		lines = "Paused\nPress P to resume"
	case game.PhaseVictory:
		lines = fmt.Sprintf("You win!\nScore %d\nPress R to play again", snap.Score)
	case game.PhaseDefeat:
		lines = fmt.Sprintf("Game over\nScore %d   Best %d\nPress R to restart", snap.Score, snap.BestScore)
	default:
		return
	}

	if snap.Phase != game.PhaseCountdown {
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), overlayShade, false)
	}
	a.drawText(screen, lines, snap.Width/2, snap.Height/2-hudLineHeight, hudTextColor, text.AlignCenter)
}
