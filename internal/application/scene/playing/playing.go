// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/arcshooter/internal/application/scene"
	"github.com/younwookim/arcshooter/internal/application/state"
	"github.com/younwookim/arcshooter/internal/application/system"
	"github.com/younwookim/arcshooter/internal/ecs"
	"github.com/younwookim/arcshooter/internal/infrastructure/config"
)

// InputSource supplies gameplay input once per tick
type InputSource interface {
	GetInput() ecs.InputState
}

// Controls supplies the pause and restart keys
type Controls interface {
	PausePressed() bool
	RestartPressed() bool
}

// Sound plays feedback for game events
type Sound interface {
	PlayShot()
	PlayHit()
}

// Options configures a Playing scene. Zero values give a silent,
// keyboard-driven scene with a time-based seed.
type Options struct {
	Seed       int64 // 0 = pick from the clock
	RecordPath string
	Face       *text.GoTextFace // nil = labels are drawn with the debug font
	Sound      Sound
	Input      InputSource
	Controls   Controls
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	worldCfg ecs.Config
	world    *ecs.World
	schedule *ecs.Schedule
	steering ecs.EnemySteering
	state    state.GameState
	screenW  int
	screenH  int

	input    InputSource
	controls Controls
	tick     ecs.InputState
	face     *text.GoTextFace
	sound    Sound

	// Round statistics
	score     int
	shots     int
	playerHit bool

	// Deterministic RNG
	rng       *rand.Rand
	seed      int64
	fixedSeed bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, opts Options) *Playing {
	p := &Playing{
		config:         cfg,
		worldCfg:       WorldConfig(cfg),
		state:          state.StatePlaying,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		input:          opts.Input,
		controls:       opts.Controls,
		face:           opts.Face,
		sound:          opts.Sound,
		seed:           opts.Seed,
		fixedSeed:      opts.Seed != 0,
		recordFilename: opts.RecordPath,
	}

	if p.input == nil {
		keyboard := system.NewInputSystem(nil)
		p.input = keyboard
		if p.controls == nil {
			p.controls = keyboard
		}
	}

	p.reset()
	return p
}

// reset builds a fresh world and schedule for a new round
func (p *Playing) reset() {
	if !p.fixedSeed {
		p.seed = time.Now().UnixNano()
	}
	p.rng = rand.New(rand.NewSource(p.seed))

	p.world = ecs.NewWorld()
	p.steering.Reset()
	p.score = 0
	p.shots = 0
	p.playerHit = false
	p.state = state.StatePlaying

	ecs.RegisterHitResolution(p.world, p.worldCfg)
	ecs.Subscribe(p.world.Events, p.onProjectileShot)
	ecs.Subscribe(p.world.Events, p.onEnemyCollision)
	ecs.Subscribe(p.world.Events, p.onPlayerDestroyed)

	p.schedule = p.newSchedule()

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed)
		log.Printf("Recording enabled: %s (seed: %d, session: %s)", p.recordFilename, p.seed, p.recorder.Session())
	}
}

func (p *Playing) newSchedule() *ecs.Schedule {
	cfg := p.worldCfg
	return ecs.NewSchedule().
		AddStartup("spawn_player", func(w *ecs.World) { ecs.SpawnPlayer(w, cfg) }).
		AddStartup("spawn_enemies", func(w *ecs.World) { ecs.SpawnEnemies(w, cfg, p.rng) }).
		AddSystem("player_input", func(w *ecs.World) { ecs.UpdatePlayerInput(w, p.tick, cfg) }).
		AddSystem("enemy_steering", func(w *ecs.World) { p.steering.Update(w, cfg, p.rng) }).
		AddSystem("movement", ecs.UpdateMovement).
		AddSystem("collisions", ecs.CheckCollisions).
		AddSystem("cleanup_projectiles", func(w *ecs.World) { ecs.CleanupProjectiles(w, cfg) }).
		AddSystem("cleanup_enemies", func(w *ecs.World) { ecs.CleanupEnemies(w, cfg) }).
		AddSystem("labels", func(w *ecs.World) { ecs.UpdateLabels(w, cfg) }).
		AddSystem("respawn", func(w *ecs.World) { ecs.RespawnWhenCleared(w, cfg, p.rng) })
}

func (p *Playing) onProjectileShot(ecs.ProjectileShot) {
	p.shots++
	if p.sound != nil {
		p.sound.PlayShot()
	}
}

func (p *Playing) onEnemyCollision(ecs.EnemyCollision) {
	p.score++
	if p.sound != nil {
		p.sound.PlayHit()
	}
}

func (p *Playing) onPlayerDestroyed(ecs.PlayerDestroyed) {
	if p.config.Player.GameOverOnHit {
		p.playerHit = true
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying, state.StatePaused:
		if p.controls != nil && p.controls.PausePressed() {
			p.state = p.state.TogglePause()
			return nil, nil
		}
		if p.state.Simulating() {
			p.Step(p.input.GetInput())
		}
	case state.StateGameOver:
		if p.controls != nil && p.controls.RestartPressed() {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// Step advances the world by one tick with the given input.
// It does nothing unless the round is running.
func (p *Playing) Step(input ecs.InputState) {
	if !p.state.Simulating() {
		return
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.tick = input
	p.schedule.Tick(p.world)
	p.tick = ecs.InputState{}

	if p.playerHit {
		p.state = state.StateGameOver
		log.Printf("Game over after %d ticks (score: %d, shots: %d)", p.world.Tick, p.score, p.shots)
		// Auto-save recording on game over
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
	p.recorder.Stop()
}

func (p *Playing) restart() {
	p.reset()
	p.schedule.Startup(p.world)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.schedule.Startup(p.world)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// World returns the simulated world
func (p *Playing) World() *ecs.World { return p.world }

// State returns the current game state
func (p *Playing) State() state.GameState { return p.state }

// Score returns the number of enemy hits this round
func (p *Playing) Score() int { return p.score }

// Shots returns the number of projectiles fired this round
func (p *Playing) Shots() int { return p.shots }

// Seed returns the RNG seed of the current round
func (p *Playing) Seed() int64 { return p.seed }
