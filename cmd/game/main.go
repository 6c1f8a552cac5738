package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/younwookim/arcshooter/internal/application/game"
	"github.com/younwookim/arcshooter/internal/application/replay"
	"github.com/younwookim/arcshooter/internal/application/scene/playing"
	"github.com/younwookim/arcshooter/internal/infrastructure/asset"
	"github.com/younwookim/arcshooter/internal/infrastructure/audio"
	"github.com/younwookim/arcshooter/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the outcome")
	seedFlag := flag.Int64("seed", 0, "Fixed RNG seed (0 = time based)")
	profileFlag := flag.String("profile", "", "Write a cpu or mem profile to the working directory")
	flag.Parse()

	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q (want cpu or mem)", *profileFlag)
	}

	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		r := runReplay(cfg, *data)
		log.Printf("Replay %s (seed: %d): %d frames, score %d, shots %d, enemies left %d, game over %v",
			r.Session, r.Seed, r.Frames, r.Score, r.Shots, r.Enemies, r.GameOver)
		return
	}

	face, err := asset.LoadFace(cfg.Label.FontPath, cfg.Label.FontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	opts := playing.Options{
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Face:       face,
	}

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(audio.Settings{
			SampleRate: cfg.Audio.SampleRate,
			Volume:     cfg.Audio.Volume,
			ShotFreq:   cfg.Audio.ShotFreq,
			HitFreq:    cfg.Audio.HitFreq,
			Duration:   time.Duration(cfg.Audio.DurationMs) * time.Millisecond,
		})
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	// Create game
	g := game.New(playing.New(cfg, opts), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.Display.Framerate)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
