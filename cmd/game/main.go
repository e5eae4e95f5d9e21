package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/younwookim/td/internal/application/game"
	"github.com/younwookim/td/internal/application/replay"
	"github.com/younwookim/td/internal/application/scene"
	"github.com/younwookim/td/internal/application/scene/playing"
	"github.com/younwookim/td/internal/application/scene/title"
	"github.com/younwookim/td/internal/application/session"
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads the JSON configs from TD_CONFIG_DIR when set, otherwise
// from the embedded defaults, then applies environment overrides
func loadConfig() (*config.GameConfig, error) {
	var loader *config.Loader
	if dir := os.Getenv(config.EnvConfigDir); dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, err
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logEvents reports session events to the standard logger
func logEvents(s *session.Session) {
	s.OnWaveStarted = func(w entity.Wave) {
		log.Printf("Wave %d started (%d enemies)", w.Number, w.TotalEnemies())
	}
	s.OnWaveCleared = func(w entity.Wave) {
		log.Printf("Wave %d cleared", w.Number)
	}
	s.OnTowerPlaced = func(t entity.Tower) {
		log.Printf("Placed %s at (%d,%d)", t.Type, t.Cell.X, t.Cell.Y)
	}
	s.OnStatusChanged = func(from, to state.Status) {
		st := s.State()
		log.Printf("Status %s -> %s (wave %d, score %d)", from, to, st.Wave, st.Score)
	}
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record intents to file (e.g., -record replay.json)")
	flag.Parse()

	// A missing .env is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	logEvents(sess)

	display := cfg.Game.Display
	play := playing.New(sess)
	screenW, screenH := play.Size()

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder("game", 1000/display.Framerate)
		play.SetRecorder(recorder)
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	start := title.New(screenW, screenH, func() scene.Scene { return play })

	// Set up ebiten
	ebiten.SetWindowSize(screenW*display.Scale, screenH*display.Scale)
	ebiten.SetWindowTitle("Tower Defense")
	ebiten.SetTPS(display.Framerate)

	g := game.New(start, screenW, screenH)
	g.SetMaxDelta(time.Duration(cfg.Game.Rules.MaxFrameDeltaMs) * time.Millisecond)
	g.OnTransition = func(from, to scene.Scene, ended game.Timing) {
		log.Printf("Scene %T -> %T after %d frames (%s)", from, to, ended.SceneFrame, ended.SceneElapsed.Round(time.Millisecond))
	}

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.Frame())
		}
	}
}
