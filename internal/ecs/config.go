package ecs

// ShotMode selects how a key press turns into projectiles
type ShotMode int

const (
	// ShotNearest fires one projectile at the nearest enemy
	ShotNearest ShotMode = iota
	// ShotPerEnemy fires one projectile at every enemy
	ShotPerEnemy
)

// String returns the config name of the mode
func (m ShotMode) String() string {
	switch m {
	case ShotNearest:
		return "nearest"
	case ShotPerEnemy:
		return "perEnemy"
	default:
		return "unknown"
	}
}

// Config holds every tunable the systems read.
// All distances are world units (pixels); speeds are per tick.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	// Player
	PlayerSize      Vec2
	PlayerSpawnY    float64
	PlayerMoveSpeed float64

	// Enemy
	EnemySize            Vec2
	EnemySpeedMultiplier float64
	EnemySteeringJitter  Range
	EnemyInitialVelocity Velocity

	// Enemy spawn arc
	SpawnRadius        float64
	SpawnDegreeMin     int // inclusive
	SpawnDegreeMax     int // exclusive
	SpawnStride        int
	SpawnDisplacement  Range
	SpawnCenterOffsetY float64 // arc center distance below the top edge
	RespawnWhenCleared bool

	// Projectile
	ProjectileSize            Vec2
	ProjectileSpeedMultiplier float64
	ShotMode                  ShotMode

	// Labels
	LabelMargin float64
	Words       []string

	// Rules
	CleanupNegative     bool
	DespawnEnemiesOnHit bool
}

// DefaultConfig returns the stock tuning for a 480x720 screen
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  480,
		ScreenHeight: 720,

		PlayerSize:      Vec2{X: 20, Y: 20},
		PlayerSpawnY:    40,
		PlayerMoveSpeed: 3,

		EnemySize:            Vec2{X: 20, Y: 20},
		EnemySpeedMultiplier: 0.0005,
		EnemySteeringJitter:  Range{Min: -30, Max: 30},
		EnemyInitialVelocity: Velocity{Direction: Vec2{X: 1, Y: 1}, Multiplier: 0},

		SpawnRadius:        300,
		SpawnDegreeMin:     -45,
		SpawnDegreeMax:     45,
		SpawnStride:        20,
		SpawnDisplacement:  Range{Min: -40, Max: 40},
		SpawnCenterOffsetY: 450,

		ProjectileSize:            Vec2{X: 5, Y: 5},
		ProjectileSpeedMultiplier: 0.01,
		ShotMode:                  ShotNearest,

		LabelMargin: 25,
		Words:       []string{"nice"},

		DespawnEnemiesOnHit: true,
	}
}
