package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads and validates game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	return l.LoadFile("game.json")
}

// LoadFile loads and validates a game config file relative to the loader root
func (l *Loader) LoadFile(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s: %w", l.basePath, name, err)
	}
	return cfg, nil
}

// Parse decodes and validates a game config
func Parse(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the values the systems rely on
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return invalid("display size %dx%d must be positive", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return invalid("display.scale must be positive, got %d", d.Scale)
	}
	if d.Framerate <= 0 {
		return invalid("display.framerate must be positive, got %d", d.Framerate)
	}

	sizes := []struct {
		name string
		size SizeConfig
	}{
		{"player.size", c.Player.Size},
		{"enemy.size", c.Enemy.Size},
		{"projectile.size", c.Projectile.Size},
	}
	for _, s := range sizes {
		if s.size.Width <= 0 || s.size.Height <= 0 {
			return invalid("%s must be positive, got %gx%g", s.name, s.size.Width, s.size.Height)
		}
	}
	if c.Player.MoveSpeed < 0 {
		return invalid("player.moveSpeed must not be negative")
	}

	if c.Spawn.DegreeMin >= c.Spawn.DegreeMax {
		return invalid("spawn degrees [%d, %d) are empty", c.Spawn.DegreeMin, c.Spawn.DegreeMax)
	}
	if c.Spawn.Stride < 0 {
		return invalid("spawn.stride must not be negative, got %d", c.Spawn.Stride)
	}
	if c.Spawn.Radius < 0 {
		return invalid("spawn.radius must not be negative")
	}

	ranges := []struct {
		name string
		r    RangeConfig
	}{
		{"enemy.steeringJitter", c.Enemy.SteeringJitter},
		{"spawn.displacement", c.Spawn.Displacement},
	}
	for _, r := range ranges {
		if r.r.Min > r.r.Max {
			return invalid("%s min %g exceeds max %g", r.name, r.r.Min, r.r.Max)
		}
	}

	switch c.Projectile.Mode {
	case "", ModeNearest, ModePerEnemy:
	default:
		return invalid("unknown projectile.mode %q", c.Projectile.Mode)
	}

	if c.Label.FontSize <= 0 {
		return invalid("label.fontSize must be positive")
	}
	if len(c.Label.Words) == 0 {
		return invalid("label.words must not be empty")
	}

	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 {
			return invalid("audio.sampleRate must be positive")
		}
		if c.Audio.DurationMs <= 0 {
			return invalid("audio.durationMs must be positive")
		}
		nyquist := float64(c.Audio.SampleRate) / 2
		tones := []struct {
			name string
			freq float64
		}{
			{"audio.shotFreq", c.Audio.ShotFreq},
			{"audio.hitFreq", c.Audio.HitFreq},
		}
		for _, t := range tones {
			if t.freq <= 0 || t.freq >= nyquist {
				return invalid("%s %g must be in (0, %g)", t.name, t.freq, nyquist)
			}
		}
	}
	return nil
}
