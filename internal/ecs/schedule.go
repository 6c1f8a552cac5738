package ecs

// System is a named function run over the world
type System struct {
	Name string
	Run  func(w *World)
}

// Schedule is an explicit, ordered list of systems.
// Startup systems run once, in declaration order, before the first tick.
// Update systems run every tick in declaration order. Queued despawns are
// flushed after each pass so every system sees a consistent world.
type Schedule struct {
	startup []System
	update  []System
	started bool
}

// NewSchedule creates an empty schedule
func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddStartup appends a startup system
func (s *Schedule) AddStartup(name string, run func(w *World)) *Schedule {
	s.startup = append(s.startup, System{Name: name, Run: run})
	return s
}

// AddSystem appends a per-tick system
func (s *Schedule) AddSystem(name string, run func(w *World)) *Schedule {
	s.update = append(s.update, System{Name: name, Run: run})
	return s
}

// Startup runs the startup systems. Subsequent calls do nothing.
func (s *Schedule) Startup(w *World) {
	if s.started {
		return
	}
	s.started = true
	for _, sys := range s.startup {
		sys.Run(w)
	}
	w.Flush()
}

// Tick runs one update pass. Startup runs first if it has not yet.
func (s *Schedule) Tick(w *World) {
	s.Startup(w)
	for _, sys := range s.update {
		sys.Run(w)
	}
	w.Flush()
	w.Tick++
}
