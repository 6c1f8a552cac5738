package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcshooter/internal/ecs"
)

func TestFrameInput_CompactJSON(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 7, S: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f": 7, "s": true}`, string(data))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, S: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, ecs.InputState{Left: true}, input)

	// Frame 1
	input, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, ecs.InputState{Right: true, Shoot: true}, input)

	// Frame 2
	input, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, ecs.InputState{}, input)
	assert.True(t, replayer.Done())

	// End of frames
	_, ok = replayer.Next()
	assert.False(t, ok)
	assert.Equal(t, ecs.InputState{}, replayer.GetInput(), "idle after the recording ends")
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, ecs.InputState{}))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, ecs.InputState{Shoot: true}))

	// Advance to end
	for !replayer.Done() {
		replayer.GetInput()
	}

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.Next()
	assert.True(t, ok)
	assert.True(t, input.Shoot)
}

func TestNewReplayData(t *testing.T) {
	data := NewReplayData(99999)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(99999), data.Seed)
	assert.NotEmpty(t, data.StartTime)
	assert.Empty(t, data.Frames)

	_, err := uuid.Parse(data.Session)
	assert.NoError(t, err, "session must be a UUID")
	assert.NotEqual(t, data.Session, NewReplayData(99999).Session)

	replayer := NewReplayer(data)
	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, data.Session, replayer.Session())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, ecs.InputState{Left: true})

	assert.Equal(t, int64(12345), data.Seed)
	require.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.L)
		assert.False(t, frame.S)
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		want := CreateTestReplayData(3, ecs.InputState{Right: true})
		raw, err := json.Marshal(want)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		got, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, want.Session, got.Session)
		assert.Equal(t, want.Frames, got.Frames)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("old version", func(t *testing.T) {
		path := filepath.Join(dir, "old.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0", "frames": []}`), 0o644))

		_, err := LoadReplay(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported replay version")
	})
}
