package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/arcshooter/internal/ecs"
)

// KeyReader reports keyboard state
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys reads the keyboard through Ebitengine
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// ShootKeys are the keys that fire. Listed explicitly since ebiten.Key
// values are not guaranteed to be contiguous.
var ShootKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
	ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
	ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
	ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
	ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
	ebiten.KeyZ,
}

// InputSystem handles player input
type InputSystem struct {
	keys KeyReader
}

// NewInputSystem creates a new input system reading from keys.
// A nil reader uses the Ebitengine keyboard.
func NewInputSystem(keys KeyReader) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys}
}

// GetInput reads the current gameplay input.
// Shoot is set on the tick any letter key goes down.
func (s *InputSystem) GetInput() ecs.InputState {
	return ecs.InputState{
		Left:  s.keys.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: s.keys.IsKeyPressed(ebiten.KeyArrowRight),
		Shoot: s.shootPressed(),
	}
}

func (s *InputSystem) shootPressed() bool {
	for _, key := range ShootKeys {
		if s.keys.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// PausePressed reports an Escape press
func (s *InputSystem) PausePressed() bool {
	return s.keys.IsKeyJustPressed(ebiten.KeyEscape)
}

// RestartPressed reports a Space press
func (s *InputSystem) RestartPressed() bool {
	return s.keys.IsKeyJustPressed(ebiten.KeySpace)
}
