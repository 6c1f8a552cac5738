package ecs

import "slices"

// EntityID identifies an entity.
// The low 32 bits are the slot index, the high 32 bits the slot generation.
// A slot is reused after its entity is destroyed, but with a new generation,
// so stale IDs never alias a newer entity.
type EntityID uint64

// NilEntity is never handed out by the registry
const NilEntity EntityID = 0

func makeEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// World holds the entity registry and all component tables
type World struct {
	generations []uint32
	alive       []bool
	free        []uint32

	// Components
	Position  map[EntityID]Vec2
	Velocity  map[EntityID]Velocity
	Size      map[EntityID]Vec2
	EnemyData map[EntityID]Enemy
	LabelData map[EntityID]Label
	Word      map[EntityID]Word

	// Tags
	IsPlayer     map[EntityID]struct{}
	IsEnemy      map[EntityID]struct{}
	IsProjectile map[EntityID]struct{}
	IsLabel      map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID

	// Events raised by systems during a tick
	Events *EventBus

	// Tick counts completed update passes
	Tick uint64

	pending []EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		Position:     make(map[EntityID]Vec2),
		Velocity:     make(map[EntityID]Velocity),
		Size:         make(map[EntityID]Vec2),
		EnemyData:    make(map[EntityID]Enemy),
		LabelData:    make(map[EntityID]Label),
		Word:         make(map[EntityID]Word),
		IsPlayer:     make(map[EntityID]struct{}),
		IsEnemy:      make(map[EntityID]struct{}),
		IsProjectile: make(map[EntityID]struct{}),
		IsLabel:      make(map[EntityID]struct{}),
		Events:       NewEventBus(),
	}
}

// NewEntity allocates an entity ID, reusing a free slot when one exists
func (w *World) NewEntity() EntityID {
	if n := len(w.free); n > 0 {
		index := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[index] = true
		return makeEntityID(index, w.generations[index])
	}

	index := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	w.alive = append(w.alive, true)
	return makeEntityID(index, 1)
}

// Alive reports whether id refers to a live entity
func (w *World) Alive(id EntityID) bool {
	index := id.Index()
	if int(index) >= len(w.generations) {
		return false
	}
	return w.alive[index] && w.generations[index] == id.Generation()
}

// DestroyEntity removes all components of an entity and frees its slot.
// Destroying an enemy also destroys the label it owns.
// Returns false if id was already dead.
func (w *World) DestroyEntity(id EntityID) bool {
	if !w.Alive(id) {
		return false
	}

	if enemy, ok := w.EnemyData[id]; ok && enemy.Label != NilEntity {
		w.DestroyEntity(enemy.Label)
	}

	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Size, id)
	delete(w.EnemyData, id)
	delete(w.LabelData, id)
	delete(w.Word, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsProjectile, id)
	delete(w.IsLabel, id)

	if w.PlayerID == id {
		w.PlayerID = NilEntity
	}

	index := id.Index()
	w.alive[index] = false
	w.generations[index]++
	w.free = append(w.free, index)
	return true
}

// Despawn queues an entity for destruction at the next Flush.
// Systems use this so that removals never disturb an ongoing query.
func (w *World) Despawn(id EntityID) {
	w.pending = append(w.pending, id)
}

// Flush destroys all queued entities and returns how many were removed.
// Duplicate or stale entries are ignored.
func (w *World) Flush() int {
	removed := 0
	for _, id := range w.pending {
		if w.DestroyEntity(id) {
			removed++
		}
	}
	w.pending = w.pending[:0]
	return removed
}

// Players returns player IDs in a stable order
func (w *World) Players() []EntityID { return sortedIDs(w.IsPlayer) }

// Enemies returns enemy IDs in a stable order
func (w *World) Enemies() []EntityID { return sortedIDs(w.IsEnemy) }

// Projectiles returns projectile IDs in a stable order
func (w *World) Projectiles() []EntityID { return sortedIDs(w.IsProjectile) }

// Labels returns label IDs in a stable order
func (w *World) Labels() []EntityID { return sortedIDs(w.IsLabel) }

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}

// GetPlayerPosition returns the player's position.
// Panics if there is no player.
func (w *World) GetPlayerPosition() Vec2 {
	pos, ok := w.Position[w.PlayerID]
	if !ok {
		panic("ecs: no player entity")
	}
	return pos
}

// Map iteration order is random; sorting keeps RNG draws and event order
// reproducible for replays.
func sortedIDs(set map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
