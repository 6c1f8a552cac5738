package playing

import (
	"github.com/younwookim/arcshooter/internal/ecs"
	"github.com/younwookim/arcshooter/internal/infrastructure/config"
)

// WorldConfig converts the loaded game config into the values the systems read
func WorldConfig(cfg *config.GameConfig) ecs.Config {
	mode := ecs.ShotNearest
	if cfg.Projectile.Mode == config.ModePerEnemy {
		mode = ecs.ShotPerEnemy
	}

	return ecs.Config{
		ScreenWidth:  float64(cfg.Display.ScreenWidth),
		ScreenHeight: float64(cfg.Display.ScreenHeight),

		PlayerSize:      size(cfg.Player.Size),
		PlayerSpawnY:    cfg.PlayerSpawnY(),
		PlayerMoveSpeed: cfg.Player.MoveSpeed,

		EnemySize:            size(cfg.Enemy.Size),
		EnemySpeedMultiplier: cfg.Enemy.SpeedMultiplier,
		EnemySteeringJitter:  rangeOf(cfg.Enemy.SteeringJitter),
		EnemyInitialVelocity: ecs.Velocity{
			Direction: ecs.Vec2{X: cfg.Enemy.InitialVelocity.X, Y: cfg.Enemy.InitialVelocity.Y},
		},

		SpawnRadius:        cfg.Spawn.Radius,
		SpawnDegreeMin:     cfg.Spawn.DegreeMin,
		SpawnDegreeMax:     cfg.Spawn.DegreeMax,
		SpawnStride:        cfg.Spawn.Stride,
		SpawnDisplacement:  rangeOf(cfg.Spawn.Displacement),
		SpawnCenterOffsetY: cfg.Spawn.CenterOffsetY,
		RespawnWhenCleared: cfg.Spawn.RespawnWhenCleared,

		ProjectileSize:            size(cfg.Projectile.Size),
		ProjectileSpeedMultiplier: cfg.Projectile.SpeedMultiplier,
		ShotMode:                  mode,

		LabelMargin: cfg.Label.FontSize,
		Words:       cfg.Label.Words,

		CleanupNegative:     cfg.Cleanup.CheckNegative,
		DespawnEnemiesOnHit: cfg.Collision.DespawnEnemies,
	}
}

func size(s config.SizeConfig) ecs.Vec2 {
	return ecs.Vec2{X: s.Width, Y: s.Height}
}

func rangeOf(r config.RangeConfig) ecs.Range {
	return ecs.Range{Min: r.Min, Max: r.Max}
}
