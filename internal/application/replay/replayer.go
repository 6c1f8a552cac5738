package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/arcshooter/internal/ecs"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q (want %s)", data.Version, FormatVersion)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (ecs.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return ecs.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ecs.InputState{
		Left:  fi.L,
		Right: fi.R,
		Shoot: fi.S,
	}, true
}

// GetInput returns the next recorded input, idle once the recording ran out
func (r *Replayer) GetInput() ecs.InputState {
	input, _ := r.Next()
	return input
}

// Done reports whether every frame was played back
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Session returns the recording session ID
func (r *Replayer) Session() string {
	return r.data.Session
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewReplayData starts an empty recording with a fresh session ID
func NewReplayData(seed int64) ReplayData {
	return ReplayData{
		Version:   FormatVersion,
		Session:   uuid.NewString(),
		Seed:      seed,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
	}
}

// CreateTestReplayData creates replay data for testing.
// Every frame holds the given input.
func CreateTestReplayData(frames int, input ecs.InputState) ReplayData {
	data := NewReplayData(12345)
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, FrameInput{
			F: i,
			L: input.Left,
			R: input.Right,
			S: input.Shoot,
		})
	}
	return data
}
