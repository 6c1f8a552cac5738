package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// The zero value is a running game
	var s GameState
	assert.Equal(t, StatePlaying, s)
	assert.Equal(t, GameState(1), StatePaused)
	assert.Equal(t, GameState(2), StateGameOver)
}

func TestGameState_Simulating(t *testing.T) {
	assert.True(t, StatePlaying.Simulating())
	assert.False(t, StatePaused.Simulating())
	assert.False(t, StateGameOver.Simulating())
}

func TestGameState_TogglePause(t *testing.T) {
	assert.Equal(t, StatePaused, StatePlaying.TogglePause())
	assert.Equal(t, StatePlaying, StatePaused.TogglePause())
	assert.Equal(t, StateGameOver, StateGameOver.TogglePause(), "game over cannot be paused")
}
