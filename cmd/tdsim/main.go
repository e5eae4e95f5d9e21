package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/younwookim/td/internal/application/replay"
	"github.com/younwookim/td/internal/application/session"
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/application/view"
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// placement is one tower given on the command line
type placement struct {
	Type entity.TowerType
	Cell entity.GridPoint
}

// parsePlacements parses "BASIC@3,3;CANNON@13,3"
func parsePlacements(arg string) ([]placement, error) {
	var out []placement
	for _, item := range strings.Split(arg, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kind, at, ok := strings.Cut(item, "@")
		if !ok {
			return nil, fmt.Errorf("placement %q: want TYPE@X,Y", item)
		}
		xs, ys, ok := strings.Cut(at, ",")
		if !ok {
			return nil, fmt.Errorf("placement %q: want TYPE@X,Y", item)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("placement %q: %w", item, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("placement %q: %w", item, err)
		}
		out = append(out, placement{
			Type: entity.TowerType(strings.ToUpper(strings.TrimSpace(kind))),
			Cell: entity.GridPoint{X: x, Y: y},
		})
	}
	return out, nil
}

// intents turns placements into select and place intents
func intents(grid *entity.Grid, places []placement) []system.Intent {
	out := make([]system.Intent, 0, 2*len(places))
	for _, p := range places {
		c := grid.Center(p.Cell)
		out = append(out,
			system.SelectTowerIntent{Type: p.Type},
			system.PlaceTowerIntent{X: c.X, Y: c.Y},
		)
	}
	return out
}

func loadConfig() (*config.GameConfig, error) {
	cfg := config.Default()
	if dir := os.Getenv(config.EnvConfigDir); dir != "" {
		loaded, err := config.NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func logEvents(s *session.Session) {
	s.OnWaveStarted = func(w entity.Wave) {
		log.Printf("Wave %d started (%d enemies)", w.Number, w.TotalEnemies())
	}
	s.OnWaveCleared = func(w entity.Wave) {
		log.Printf("Wave %d cleared", w.Number)
	}
	s.OnEnemyLeaked = func(e entity.Enemy) {
		log.Printf("%s %s leaked", e.Type, e.ID)
	}
	s.OnTowerPlaced = func(t entity.Tower) {
		log.Printf("Placed %s at (%d,%d)", t.Type, t.Cell.X, t.Cell.Y)
	}
	s.OnStatusChanged = func(from, to state.Status) {
		log.Printf("Status %s -> %s", from, to)
	}
}

// runLive drives the session in real time until d elapses, the game ends
// or the process is interrupted
func runLive(ctx context.Context, s *session.Session, places []placement, frame, d time.Duration) *state.GameState {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	runner := session.NewRunner(s, frame)
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	for _, intent := range intents(s.Grid(), places) {
		if err := runner.Submit(ctx, intent); err != nil {
			break
		}
	}

	status := time.NewTicker(time.Second)
	defer status.Stop()
	for {
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
				log.Printf("Runner stopped: %v", err)
			}
			return runner.State()
		case <-status.C:
			st := runner.State()
			log.Printf("wave %d health %d gold %d score %d enemies %d",
				st.Wave, st.Health, st.Gold, st.Score, len(st.Enemies))
			if st.Status.IsTerminal() {
				cancel()
			}
		}
	}
}

// runScript replays a recording on fixed frames as fast as possible
func runScript(s *session.Session, path string, places []placement, maxFrames int) (*state.GameState, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}
	for _, intent := range intents(s.Grid(), places) {
		s.Apply(intent)
	}
	r := replay.NewReplayer(*data)
	log.Printf("Replaying %q (%d frames of %v)", r.Name(), r.TotalFrames(), r.FrameDuration())
	return replay.Play(s, r, time.Now(), maxFrames), nil
}

func main() {
	placeFlag := flag.String("place", "", "towers to place at start, e.g. BASIC@3,3;CANNON@13,3")
	scriptFlag := flag.String("script", "", "replay a recorded intent file deterministically")
	durationFlag := flag.Duration("duration", 60*time.Second, "how long to run in real time")
	frameFlag := flag.Duration("frame", 16*time.Millisecond, "frame interval in real time")
	maxFramesFlag := flag.Int("frames", 36000, "frame limit when replaying a script")
	flag.Parse()

	_ = godotenv.Load()

	places, err := parsePlacements(*placeFlag)
	if err != nil {
		log.Fatalf("Invalid -place: %v", err)
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

	var final *state.GameState
	if *scriptFlag != "" {
		final, err = runScript(sess, *scriptFlag, places, *maxFramesFlag)
		if err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		final = runLive(ctx, sess, places, *frameFlag, *durationFlag)
	}

	fmt.Printf("status %s | wave %d | waves survived %d | health %d | gold %d | score %d | towers %d\n",
		final.Status, final.Wave, view.WavesSurvived(final), final.Health, final.Gold, final.Score, len(final.Towers))
}
