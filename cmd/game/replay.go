package main

import (
	"github.com/younwookim/arcshooter/internal/application/replay"
	"github.com/younwookim/arcshooter/internal/application/scene/playing"
	"github.com/younwookim/arcshooter/internal/application/state"
	"github.com/younwookim/arcshooter/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Session  string
	Seed     int64
	Frames   int
	Score    int
	Shots    int
	Enemies  int
	GameOver bool
	PlayerX  float64
}

// runReplay plays recorded input through a headless Playing scene.
// It stops when the recording runs out or the round ends.
func runReplay(cfg *config.GameConfig, data replay.ReplayData) ReplayResult {
	replayer := replay.NewReplayer(data)
	p := playing.New(cfg, playing.Options{
		Seed:  replayer.Seed(),
		Input: replayer,
	})
	p.OnEnter()

	for !replayer.Done() && p.State() != state.StateGameOver {
		p.Step(replayer.GetInput())
	}

	w := p.World()
	result := ReplayResult{
		Session:  replayer.Session(),
		Seed:     p.Seed(),
		Frames:   replayer.CurrentFrame(),
		Score:    p.Score(),
		Shots:    p.Shots(),
		Enemies:  w.CountEnemies(),
		GameOver: p.State() == state.StateGameOver,
	}
	if w.Alive(w.PlayerID) {
		result.PlayerX = w.GetPlayerPosition().X
	}
	return result
}
