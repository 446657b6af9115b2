package game

import (
	"math"
	"testing"
)

func TestInputStateStickClamp(t *testing.T) {
	s := &InputState{StickX: 3, StickY: 4}
	x, y := s.Stick()
	if !approx(math.Hypot(x, y), 1) || !approx(x, 0.6) {
		t.Fatalf("stick = (%v, %v), want unit length", x, y)
	}

	s = &InputState{StickX: 0.3}
	if x, _ := s.Stick(); x != 0.3 {
		t.Fatalf("short stick vector should pass through, got %v", x)
	}
}

func TestBotInputAimsAtNearestThreat(t *testing.T) {
	bot := NewBotInput()
	snap := Snapshot{
		Width:  960,
		Height: 540,
		Player: Player{X: 480, Y: 270},
		HP:     3,
		MaxHP:  3,
		Enemies: []Enemy{
			{X: 900, Y: 270},
			{X: 400, Y: 270},
		},
	}
	bot.Think(snap)
	if !bot.WantsFire() {
		t.Fatalf("bot should fire with enemies on screen")
	}
	if x, y := bot.Aim(); x != 400 || y != 270 {
		t.Fatalf("aim = (%v, %v), want nearest enemy", x, y)
	}
	// The near enemy sits inside the safe distance to the left
	if x, _ := bot.Stick(); x <= 0 {
		t.Fatalf("bot should back away to the right, stick x = %v", x)
	}
}

func TestBotInputIdleWithoutTargets(t *testing.T) {
	bot := NewBotInput()
	bot.Think(Snapshot{Width: 960, Height: 540, Player: Player{X: 480, Y: 270}, HP: 3, MaxHP: 3})
	if bot.WantsFire() {
		t.Fatalf("bot fired at nothing")
	}
	if x, y := bot.Stick(); x != 0 || y != 0 {
		t.Fatalf("centred bot should not move, stick = (%v, %v)", x, y)
	}
}

func TestLeadTarget(t *testing.T) {
	if x, y := leadTarget(0, 0, 300, 0, 0, 0, 600); x != 300 || y != 0 {
		t.Fatalf("static target should be aimed at directly, got (%v, %v)", x, y)
	}

	x, y := leadTarget(0, 0, 300, 0, 0, 100, 600)
	if y <= 0 || x != 300 {
		t.Fatalf("lead point = (%v, %v), want ahead of the target on y", x, y)
	}
	// The shot and the target must arrive at the same time
	shot := math.Hypot(x, y) / 600
	target := y / 100
	if math.Abs(shot-target) > 0.01 {
		t.Fatalf("flight times differ: shot %v, target %v", shot, target)
	}
}
