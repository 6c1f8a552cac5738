package ecs

import (
	"math"
	"math/rand"
)

// CreatePlayer creates the player entity and records it as the singleton
func (w *World) CreatePlayer(pos, size Vec2) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Size[id] = size
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreateEnemy creates an enemy together with the label it owns
func (w *World) CreateEnemy(pos, size Vec2, vel Velocity, word string) EntityID {
	id := w.NewEntity()
	labelID := w.NewEntity()

	w.Position[id] = pos
	w.Velocity[id] = vel
	w.Size[id] = size
	w.EnemyData[id] = Enemy{Label: labelID}
	if word != "" {
		w.Word[id] = Word(word)
	}
	w.IsEnemy[id] = struct{}{}

	w.LabelData[labelID] = Label{
		Owner:  id,
		Text:   word,
		Left:   pos.X,
		Bottom: pos.Y,
	}
	w.IsLabel[labelID] = struct{}{}

	return id
}

// CreateProjectile creates a projectile. Its velocity is never changed afterwards.
func (w *World) CreateProjectile(pos, size Vec2, vel Velocity) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Velocity[id] = vel
	w.Size[id] = size
	w.IsProjectile[id] = struct{}{}

	return id
}

// SpawnPlayer places the player at the horizontal center of the screen
func SpawnPlayer(w *World, cfg Config) EntityID {
	pos := Vec2{X: cfg.ScreenWidth / 2, Y: cfg.PlayerSpawnY}
	return w.CreatePlayer(pos, cfg.PlayerSize)
}

// SpawnAngles returns the arc angles (degrees) that receive an enemy
func SpawnAngles(cfg Config) []int {
	stride := cfg.SpawnStride
	if stride <= 0 {
		stride = 1
	}

	var angles []int
	for deg := cfg.SpawnDegreeMin; deg < cfg.SpawnDegreeMax; deg++ {
		if deg%stride != 0 {
			continue
		}
		angles = append(angles, deg)
	}
	return angles
}

// ArcPosition returns the undisplaced spawn position for an angle in degrees.
// 0 degrees is straight above the arc center.
func ArcPosition(cfg Config, deg int) Vec2 {
	rad := float64(deg) * math.Pi / 180
	return Vec2{
		X: math.Sin(rad)*cfg.SpawnRadius + cfg.ScreenWidth/2,
		Y: math.Cos(rad)*cfg.SpawnRadius + cfg.ScreenHeight - cfg.SpawnCenterOffsetY,
	}
}

// SpawnEnemies places a fan of enemies along the spawn arc.
// Each enemy starts with the configured placeholder velocity and one label.
func SpawnEnemies(w *World, cfg Config, rng *rand.Rand) []EntityID {
	angles := SpawnAngles(cfg)
	ids := make([]EntityID, 0, len(angles))

	for _, deg := range angles {
		displacement := RandomVec2(rng, cfg.SpawnDisplacement)
		pos := ArcPosition(cfg, deg).Add(displacement)

		word := ""
		if len(cfg.Words) > 0 {
			word = cfg.Words[rng.Intn(len(cfg.Words))]
		}

		ids = append(ids, w.CreateEnemy(pos, cfg.EnemySize, cfg.EnemyInitialVelocity, word))
	}
	return ids
}

// SpawnProjectile creates a projectile at origin heading toward target and
// publishes exactly one ProjectileShot.
func SpawnProjectile(w *World, cfg Config, origin Vec2, target EntityID) EntityID {
	vel := Velocity{
		Direction:  w.Position[target].Sub(origin),
		Multiplier: cfg.ProjectileSpeedMultiplier,
	}
	id := w.CreateProjectile(origin, cfg.ProjectileSize, vel)

	Publish(w.Events, ProjectileShot{Projectile: id, Origin: origin, Target: target})
	return id
}

// NearestEnemy returns the enemy closest to pos, or NilEntity if there is none.
// Ties go to the enemy that comes first in stable order.
func NearestEnemy(w *World, pos Vec2) EntityID {
	best := NilEntity
	bestDist := math.Inf(1)
	for _, id := range w.Enemies() {
		d := w.Position[id].Sub(pos).LengthSq()
		if d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}

// Shoot fires from the player's position according to cfg.ShotMode and
// returns the projectiles created. Without a player or enemies nothing is fired.
func Shoot(w *World, cfg Config) []EntityID {
	if !w.Alive(w.PlayerID) {
		return nil
	}
	origin := w.GetPlayerPosition()

	switch cfg.ShotMode {
	case ShotPerEnemy:
		enemies := w.Enemies()
		ids := make([]EntityID, 0, len(enemies))
		for _, enemy := range enemies {
			ids = append(ids, SpawnProjectile(w, cfg, origin, enemy))
		}
		return ids
	default:
		target := NearestEnemy(w, origin)
		if target == NilEntity {
			return nil
		}
		return []EntityID{SpawnProjectile(w, cfg, origin, target)}
	}
}
