package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Settings configures the tones played for game events
type Settings struct {
	SampleRate int
	Volume     float64 // exponent on base 2, 0 = unchanged
	ShotFreq   float64
	HitFreq    float64
	Duration   time.Duration
}

// SoundManager plays short synthesized tones on shots and hits
type SoundManager struct {
	mu          sync.Mutex
	settings    Settings
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	warned      bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(settings Settings) *SoundManager {
	return &SoundManager{
		settings: settings,
		rate:     beep.SampleRate(settings.SampleRate),
		mixer:    &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayShot plays the projectile tone
func (sm *SoundManager) PlayShot() {
	sm.play(sm.settings.ShotFreq)
}

// PlayHit plays the enemy hit tone
func (sm *SoundManager) PlayHit() {
	sm.play(sm.settings.HitFreq)
}

func (sm *SoundManager) play(freq float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := Tone(sm.rate, freq, sm.settings.Duration, sm.settings.Volume)
	if err != nil {
		if !sm.warned {
			log.Printf("Sound muted: %v", err)
			sm.warned = true
		}
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Tone returns a sine tone of the given length with volume applied
func Tone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %gHz: %w", freq, err)
	}

	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}
