package ecs

import "math/rand"

// UpdateMovement advances every entity with a velocity by one tick
func UpdateMovement(w *World) {
	for id, vel := range w.Velocity {
		pos, ok := w.Position[id]
		if !ok {
			continue
		}
		w.Position[id] = pos.Add(vel.Step())
	}
}

// InputState holds the gameplay input for the current tick
type InputState struct {
	Left, Right bool
	Shoot       bool
}

// UpdatePlayerInput moves the player horizontally and fires on Shoot.
// Returns the projectiles created this tick.
func UpdatePlayerInput(w *World, input InputState, cfg Config) []EntityID {
	id := w.PlayerID
	if !w.Alive(id) {
		return nil
	}

	dx := 0.0
	if input.Left {
		dx -= cfg.PlayerMoveSpeed
	}
	if input.Right {
		dx += cfg.PlayerMoveSpeed
	}
	if dx != 0 {
		pos := w.Position[id]
		half := w.Size[id].X / 2
		pos.X = clamp(pos.X+dx, half, cfg.ScreenWidth-half)
		w.Position[id] = pos
	}

	if !input.Shoot {
		return nil
	}
	return Shoot(w, cfg)
}

// EnemySteering re-aims enemies at the player whenever the player has moved.
// The first run always fires since there is no previous position yet.
type EnemySteering struct {
	last Vec2
	seen bool
}

// Update recomputes enemy velocities if the player position changed since
// the previous call. Returns true if it fired.
func (s *EnemySteering) Update(w *World, cfg Config, rng *rand.Rand) bool {
	if !w.Alive(w.PlayerID) {
		return false
	}
	playerPos := w.GetPlayerPosition()
	if s.seen && playerPos == s.last {
		return false
	}
	s.last = playerPos
	s.seen = true

	for _, id := range w.Enemies() {
		jitter := RandomVec2(rng, cfg.EnemySteeringJitter)
		w.Velocity[id] = Velocity{
			Direction:  playerPos.Sub(w.Position[id]).Add(jitter),
			Multiplier: cfg.EnemySpeedMultiplier,
		}
	}
	return true
}

// Reset forgets the last seen player position
func (s *EnemySteering) Reset() {
	s.seen = false
}

// OutOfBounds reports whether pos lies beyond the screen.
// Only the positive edges are checked unless cfg.CleanupNegative is set.
func OutOfBounds(pos Vec2, cfg Config) bool {
	if pos.X > cfg.ScreenWidth || pos.Y > cfg.ScreenHeight {
		return true
	}
	return cfg.CleanupNegative && (pos.X < 0 || pos.Y < 0)
}

func cleanupTagged(w *World, cfg Config, ids []EntityID) int {
	n := 0
	for _, id := range ids {
		if OutOfBounds(w.Position[id], cfg) {
			w.Despawn(id)
			n++
		}
	}
	return n
}

// CleanupProjectiles queues projectiles that left the screen
func CleanupProjectiles(w *World, cfg Config) int {
	return cleanupTagged(w, cfg, w.Projectiles())
}

// CleanupEnemies queues enemies that left the screen. Their labels go with them.
func CleanupEnemies(w *World, cfg Config) int {
	return cleanupTagged(w, cfg, w.Enemies())
}

// UpdateLabels moves each label to its owner's position whenever the owner
// moved, clamped so the label stays on screen.
func UpdateLabels(w *World, cfg Config) {
	for _, id := range w.Labels() {
		label := w.LabelData[id]
		pos, ok := w.Position[label.Owner]
		if !ok {
			continue
		}
		if label.Synced && pos == label.Anchor {
			continue
		}

		label.Left = clamp(pos.X, 0, cfg.ScreenWidth-cfg.LabelMargin)
		label.Bottom = clamp(pos.Y, 0, cfg.ScreenHeight-cfg.LabelMargin)
		label.Anchor = pos
		label.Synced = true
		w.LabelData[id] = label
	}
}

// RespawnWhenCleared spawns a new fan once every enemy is gone
func RespawnWhenCleared(w *World, cfg Config, rng *rand.Rand) bool {
	if !cfg.RespawnWhenCleared || w.CountEnemies() > 0 {
		return false
	}
	SpawnEnemies(w, cfg, rng)
	return true
}
