package game

import (
	"fmt"
)

// queueRound clears the field and starts the pre-round countdown
func (g *Game) queueRound(round int) {
	s := &g.state
	s.PendingRound = round
	s.RoundCountdown = g.config.RoundCountdown
	s.RoundCountdownActive = true
	s.KillsThisRound = 0
	s.BossActive = false
	s.HealUsed = false
	g.world.ClearTransient()
	g.setStatus(fmt.Sprintf("Round %d ready!", round), 1500)
}

// updateRoundCountdown runs the countdown and reports whether it is still blocking the frame
func (g *Game) updateRoundCountdown(dt float64) bool {
	s := &g.state
	if !s.RoundCountdownActive {
		return false
	}
	s.RoundCountdown -= dt
	if s.RoundCountdown <= 0 {
		s.RoundCountdown = 0
		s.RoundCountdownActive = false
		round := s.PendingRound
		if round < 1 {
			round = 1
		}
		g.startRound(round)
	}
	return s.RoundCountdownActive
}

// startRound makes a queued round playable
func (g *Game) startRound(round int) {
	s := &g.state
	s.Round = round
	g.params = NewRoundParameters(g.config, round)
	s.RoundGoal = g.params.Goal
	s.KillsThisRound = 0
	s.BossActive = false
	s.SpawnTimer = 0
	s.HealUsed = false
	g.world.Boss = nil
	g.world.HealPacks.Clear()
	g.spawnHealPack()
	g.setStatus(fmt.Sprintf("Round %d start!", round), defaultStatusDuration)
	g.logger.Printf("round %d started (goal %d kills)", round, s.RoundGoal)
}

// registerEnemyKill counts a kill and summons the boss when the goal is met
func (g *Game) registerEnemyKill() {
	s := &g.state
	s.KillsThisRound++
	if s.KillsThisRound >= s.RoundGoal && !s.BossActive {
		g.spawnBoss()
	}
}

// onBossDefeated ends the boss fight and either wins the game or queues the next round
func (g *Game) onBossDefeated() {
	g.world.Boss = nil
	g.state.BossActive = false
	g.logger.Printf("round %d: boss defeated, score %d", g.state.Round, g.state.Score)
	if g.state.Round >= g.config.MaxRounds {
		g.setStatus("All rounds cleared!", defaultStatusDuration)
		g.endGame(true)
		return
	}
	g.queueRound(g.state.Round + 1)
}

// endGame stops the game and records the best score. Only the first call has any effect.
func (g *Game) endGame(victory bool) {
	s := &g.state
	if s.Over {
		return
	}
	s.Over = true
	s.Running = false
	s.Victory = victory
	g.world.Boss = nil
	s.BossActive = false
	s.BestScore = max(s.BestScore, s.Score)
	g.scores.SaveBestScore(s.BestScore)
	if victory {
		g.logger.Printf("victory with score %d (best %d)", s.Score, s.BestScore)
	} else {
		g.logger.Printf("game over in round %d with score %d (best %d)", s.Round, s.Score, s.BestScore)
	}
}
