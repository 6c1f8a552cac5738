package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)

	assert.Equal(t, 20.0, cfg.Player.Size.Width)
	assert.Equal(t, 40.0, cfg.PlayerSpawnY())

	assert.Equal(t, 0.0005, cfg.Enemy.SpeedMultiplier)
	assert.Equal(t, RangeConfig{Min: -30, Max: 30}, cfg.Enemy.SteeringJitter)

	assert.Equal(t, 300.0, cfg.Spawn.Radius)
	assert.Equal(t, -45, cfg.Spawn.DegreeMin)
	assert.Equal(t, 45, cfg.Spawn.DegreeMax)
	assert.Equal(t, 20, cfg.Spawn.Stride)

	assert.Equal(t, 0.01, cfg.Projectile.SpeedMultiplier)
	assert.Equal(t, ModeNearest, cfg.Projectile.Mode)

	assert.Equal(t, 25.0, cfg.Label.FontSize)
	assert.Equal(t, []string{"nice"}, cfg.Label.Words)
	assert.False(t, cfg.Cleanup.CheckNegative)
}

func TestLoader_FSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": &fstest.MapFile{Data: []byte(validJSON())},
	}
	loader := NewFSLoader(fsys, "configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Display.ScreenWidth)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "configs")

	_, err := loader.LoadGame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.json")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"display": `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestPlayerSpawnY_DefaultsToTwiceHeight(t *testing.T) {
	cfg := GameConfig{Player: PlayerConfig{Size: SizeConfig{Width: 20, Height: 15}}}
	assert.Equal(t, 30.0, cfg.PlayerSpawnY())

	cfg.Player.SpawnY = 12
	assert.Equal(t, 12.0, cfg.PlayerSpawnY())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		errMsg string
	}{
		{"zero width", func(c *GameConfig) { c.Display.ScreenWidth = 0 }, "display size"},
		{"zero scale", func(c *GameConfig) { c.Display.Scale = 0 }, "display.scale"},
		{"zero framerate", func(c *GameConfig) { c.Display.Framerate = 0 }, "display.framerate"},
		{"player size", func(c *GameConfig) { c.Player.Size.Height = 0 }, "player.size"},
		{"projectile size", func(c *GameConfig) { c.Projectile.Size.Width = -1 }, "projectile.size"},
		{"negative move speed", func(c *GameConfig) { c.Player.MoveSpeed = -1 }, "player.moveSpeed"},
		{"empty arc", func(c *GameConfig) { c.Spawn.DegreeMax = c.Spawn.DegreeMin }, "spawn degrees"},
		{"negative stride", func(c *GameConfig) { c.Spawn.Stride = -5 }, "spawn.stride"},
		{"inverted jitter", func(c *GameConfig) { c.Enemy.SteeringJitter = RangeConfig{Min: 5, Max: 1} }, "enemy.steeringJitter"},
		{"unknown mode", func(c *GameConfig) { c.Projectile.Mode = "spray" }, "projectile.mode"},
		{"no words", func(c *GameConfig) { c.Label.Words = nil }, "label.words"},
		{"no font size", func(c *GameConfig) { c.Label.FontSize = 0 }, "label.fontSize"},
		{"audio sample rate", func(c *GameConfig) { c.Audio.SampleRate = 0 }, "audio.sampleRate"},
		{"shot tone above nyquist", func(c *GameConfig) { c.Audio.ShotFreq = 30000 }, "audio.shotFreq"},
		{"missing hit tone", func(c *GameConfig) { c.Audio.HitFreq = 0 }, "audio.hitFreq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(validJSON()))
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_AudioDisabledSkipsAudioChecks(t *testing.T) {
	cfg, err := Parse([]byte(validJSON()))
	require.NoError(t, err)

	cfg.Audio = AudioConfig{}
	assert.NoError(t, cfg.Validate())
}

func validJSON() string {
	return strings.TrimSpace(`
{
  "display": {"screenWidth": 480, "screenHeight": 720, "scale": 1, "framerate": 60, "title": "test"},
  "player": {"size": {"width": 20, "height": 20}, "moveSpeed": 3},
  "enemy": {"size": {"width": 20, "height": 20}, "speedMultiplier": 0.0005,
            "steeringJitter": {"min": -30, "max": 30}, "initialVelocity": {"x": 1, "y": 1}},
  "spawn": {"radius": 300, "degreeMin": -45, "degreeMax": 45, "stride": 20,
            "displacement": {"min": -40, "max": 40}, "centerOffsetY": 450},
  "projectile": {"size": {"width": 5, "height": 5}, "speedMultiplier": 0.01},
  "label": {"fontSize": 25, "words": ["nice"]},
  "audio": {"enabled": true, "sampleRate": 44100, "shotFreq": 880, "hitFreq": 220, "durationMs": 60}
}`)
}
