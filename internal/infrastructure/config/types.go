package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig    `json:"display"`
	Player     PlayerConfig     `json:"player"`
	Enemy      EnemyConfig      `json:"enemy"`
	Spawn      SpawnConfig      `json:"spawn"`
	Projectile ProjectileConfig `json:"projectile"`
	Label      LabelConfig      `json:"label"`
	Cleanup    CleanupConfig    `json:"cleanup"`
	Collision  CollisionConfig  `json:"collision"`
	Audio      AudioConfig      `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type VectorConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RangeConfig is a half-open interval [Min, Max)
type RangeConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PlayerConfig struct {
	Size      SizeConfig `json:"size"`
	SpawnY    float64    `json:"spawnY"` // 0 = twice the player height
	MoveSpeed float64    `json:"moveSpeed"`
	// GameOverOnHit ends the round when an enemy touches the player
	GameOverOnHit bool `json:"gameOverOnHit"`
}

type EnemyConfig struct {
	Size            SizeConfig   `json:"size"`
	SpeedMultiplier float64      `json:"speedMultiplier"`
	SteeringJitter  RangeConfig  `json:"steeringJitter"`
	InitialVelocity VectorConfig `json:"initialVelocity"`
}

type SpawnConfig struct {
	Radius             float64     `json:"radius"`
	DegreeMin          int         `json:"degreeMin"`
	DegreeMax          int         `json:"degreeMax"`
	Stride             int         `json:"stride"`
	Displacement       RangeConfig `json:"displacement"`
	CenterOffsetY      float64     `json:"centerOffsetY"`
	RespawnWhenCleared bool        `json:"respawnWhenCleared"`
}

type ProjectileConfig struct {
	Size            SizeConfig `json:"size"`
	SpeedMultiplier float64    `json:"speedMultiplier"`
	Mode            string     `json:"mode"` // "nearest" | "perEnemy"
}

type LabelConfig struct {
	FontPath string   `json:"fontPath"` // empty = built-in font
	FontSize float64  `json:"fontSize"`
	Padding  float64  `json:"padding"`
	Words    []string `json:"words"`
}

type CleanupConfig struct {
	CheckNegative bool `json:"checkNegative"`
}

type CollisionConfig struct {
	DespawnEnemies bool `json:"despawnEnemies"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"` // beep volume exponent, 0 = unchanged
	ShotFreq   float64 `json:"shotFreq"`
	HitFreq    float64 `json:"hitFreq"`
	DurationMs int     `json:"durationMs"`
}

// Projectile modes accepted by ProjectileConfig.Mode
const (
	ModeNearest  = "nearest"
	ModePerEnemy = "perEnemy"
)

// PlayerSpawnY resolves the configured spawn height
func (c *GameConfig) PlayerSpawnY() float64 {
	if c.Player.SpawnY > 0 {
		return c.Player.SpawnY
	}
	return 2 * c.Player.Size.Height
}
