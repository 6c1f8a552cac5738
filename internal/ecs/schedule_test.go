package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_RunsInDeclaredOrder(t *testing.T) {
	var order []string
	record := func(name string) func(*World) {
		return func(*World) { order = append(order, name) }
	}

	s := NewSchedule().
		AddStartup("camera", record("camera")).
		AddStartup("player", record("player")).
		AddStartup("enemies", record("enemies")).
		AddSystem("move", record("move")).
		AddSystem("collide", record("collide"))

	w := NewWorld()
	s.Tick(w)
	s.Tick(w)

	assert.Equal(t, []string{
		"camera", "player", "enemies",
		"move", "collide",
		"move", "collide",
	}, order)
	assert.Equal(t, uint64(2), w.Tick)
}

func TestSchedule_StartupRunsOnce(t *testing.T) {
	runs := 0
	s := NewSchedule().AddStartup("once", func(*World) { runs++ })
	w := NewWorld()

	s.Startup(w)
	s.Startup(w)
	s.Tick(w)

	assert.Equal(t, 1, runs)
}

func TestSchedule_FlushesAfterTick(t *testing.T) {
	w := NewWorld()
	id := w.CreateProjectile(Vec2{}, Vec2{X: 1, Y: 1}, Velocity{})

	aliveDuringTick := false
	s := NewSchedule().
		AddSystem("despawn", func(w *World) { w.Despawn(id) }).
		AddSystem("observe", func(w *World) { aliveDuringTick = w.Alive(id) })

	s.Tick(w)

	assert.True(t, aliveDuringTick, "later systems in the same tick still see the entity")
	assert.False(t, w.Alive(id), "entity is gone at the end of the tick")
}
