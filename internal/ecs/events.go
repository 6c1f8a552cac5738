package ecs

import "reflect"

// ProjectileShot is published once for every projectile created
type ProjectileShot struct {
	Projectile EntityID
	Origin     Vec2
	Target     EntityID
}

// EnemyCollision is published when a projectile hits an enemy.
// At is the enemy position.
type EnemyCollision struct {
	Enemy      EntityID
	Projectile EntityID
	At         Vec2
}

// EnemyDestroyed is published when an enemy touches the player.
// At is the player position.
type EnemyDestroyed struct {
	Enemy EntityID
	At    Vec2
}

// PlayerDestroyed is published when an enemy touches the player.
// At is the player position.
type PlayerDestroyed struct {
	Player EntityID
	At     Vec2
}

// EventBus dispatches events to handlers keyed by the event's type.
// Handlers run synchronously, in subscription order, on the publishing goroutine.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// NewEventBus creates an empty bus
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers handler for events of type T
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish sends event to every handler subscribed to T
func Publish[T any](bus *EventBus, event T) {
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}
