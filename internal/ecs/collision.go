package ecs

import "math"

// Overlaps tests two boxes given by center position and full size.
// Touching edges do not count as overlap.
func Overlaps(posA, sizeA, posB, sizeB Vec2) bool {
	return math.Abs(posA.X-posB.X) < (sizeA.X+sizeB.X)/2 &&
		math.Abs(posA.Y-posB.Y) < (sizeA.Y+sizeB.Y)/2
}

// mustSize returns the bounding box of id. Collision is undefined without one.
func (w *World) mustSize(id EntityID) Vec2 {
	size, ok := w.Size[id]
	if !ok {
		panic("ecs: collision participant has no size")
	}
	return size
}

// CheckCollisions runs both pairwise scans for one tick.
//
// Enemy x player overlap publishes PlayerDestroyed and EnemyDestroyed once per pair.
// Projectile x enemy overlap queues the projectile for despawn and publishes
// EnemyCollision. A projectile overlapping several enemies hits all of them
// this tick since the despawn is deferred.
func CheckCollisions(w *World) {
	enemies := w.Enemies()
	players := w.Players()

	for _, enemy := range enemies {
		enemyPos := w.Position[enemy]
		enemySize := w.mustSize(enemy)
		for _, player := range players {
			playerPos := w.Position[player]
			if !Overlaps(enemyPos, enemySize, playerPos, w.mustSize(player)) {
				continue
			}
			Publish(w.Events, PlayerDestroyed{Player: player, At: playerPos})
			Publish(w.Events, EnemyDestroyed{Enemy: enemy, At: playerPos})
		}
	}

	for _, proj := range w.Projectiles() {
		projPos := w.Position[proj]
		projSize := w.mustSize(proj)
		for _, enemy := range enemies {
			enemyPos := w.Position[enemy]
			if !Overlaps(enemyPos, w.mustSize(enemy), projPos, projSize) {
				continue
			}
			w.Despawn(proj)
			Publish(w.Events, EnemyCollision{Enemy: enemy, Projectile: proj, At: enemyPos})
		}
	}
}

// RegisterHitResolution subscribes handlers that despawn enemies named by
// collision events. Does nothing unless cfg.DespawnEnemiesOnHit is set.
func RegisterHitResolution(w *World, cfg Config) {
	if !cfg.DespawnEnemiesOnHit {
		return
	}
	Subscribe(w.Events, func(e EnemyCollision) {
		w.Despawn(e.Enemy)
	})
	Subscribe(w.Events, func(e EnemyDestroyed) {
		w.Despawn(e.Enemy)
	})
}
