package session

import (
	"fmt"
	"time"

	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// Session runs one game. It owns the current state, the game clock and
// the wave lifecycle.
//
// Every transition publishes a fresh *state.GameState; a state returned by
// State is never modified afterwards and may be read from any goroutine.
// The Session itself is not safe for concurrent use.
type Session struct {
	cfg     *config.GameConfig
	grid    *entity.Grid
	route   entity.Route
	catalog *system.Catalog
	factory *system.Factory
	sim     *system.Simulation
	waves   *system.WaveGenerator
	spawner *system.Spawner
	ids     system.IDSource

	state      *state.GameState
	generation uint64

	// Game clock: the sum of frame deltas while PLAYING
	clock     time.Duration
	lastFrame time.Time
	framing   bool

	wavesStarted int
	current      entity.Wave

	// Event callbacks
	OnWaveStarted   func(wave entity.Wave)
	OnWaveCleared   func(wave entity.Wave)
	OnEnemyLeaked   func(enemy entity.Enemy)
	OnEnemyKilled   func(enemy entity.Enemy)
	OnTowerPlaced   func(tower entity.Tower)
	OnStatusChanged func(from, to state.Status)
}

// New creates a session in its initial state
func New(cfg *config.GameConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	grid, route := system.LoadGrid(cfg.Map)
	catalog := system.LoadCatalog(cfg.Towers, cfg.Enemies)
	factory := system.NewFactory(catalog, grid, route, cfg.Game.Projectile.Speed)

	s := &Session{
		cfg:     cfg,
		grid:    grid,
		route:   route,
		catalog: catalog,
		factory: factory,
		sim:     system.NewSimulation(grid, route, factory, system.NewSimulationConfig(cfg.Game)),
		waves:   system.NewWaveGenerator(cfg.Waves),
		spawner: system.NewSpawner(),
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	rules := s.cfg.Game.Rules
	s.state = state.New(rules.InitialHealth, rules.InitialGold)
	s.clock = 0
	s.framing = false
	s.wavesStarted = 0
	s.current = entity.Wave{}
	s.spawner.Reset()
	s.ids.Reset()
}

// State returns the current snapshot
func (s *Session) State() *state.GameState { return s.state }

// Generation increases on every restart
func (s *Session) Generation() uint64 { return s.generation }

// Clock returns the game clock
func (s *Session) Clock() time.Duration { return s.clock }

// CurrentWave returns the most recently started wave
func (s *Session) CurrentWave() entity.Wave { return s.current }

// PendingSpawns returns the number of enemies still queued
func (s *Session) PendingSpawns() int { return s.spawner.Pending() }

func (s *Session) Grid() *entity.Grid { return s.grid }

func (s *Session) Route() entity.Route { return s.route }

func (s *Session) Catalog() *system.Catalog { return s.catalog }

func (s *Session) Config() *config.GameConfig { return s.cfg }

// Affordable reports, per tower type, whether the current gold covers its cost
func (s *Session) Affordable() map[entity.TowerType]bool {
	out := make(map[entity.TowerType]bool)
	for _, t := range s.catalog.TowerTypes() {
		stats, _ := s.catalog.Tower(t)
		out[t] = s.state.Gold >= stats.Cost
	}
	return out
}

// Apply dispatches an intent and reports whether it was accepted
func (s *Session) Apply(intent system.Intent) bool {
	switch i := intent.(type) {
	case system.SelectTowerIntent:
		return s.SelectTower(i.Type)
	case system.PlaceTowerIntent:
		return s.PlaceTower(i.X, i.Y)
	case system.TogglePauseIntent:
		return s.TogglePause()
	case system.RestartIntent:
		return s.Restart()
	default:
		return false
	}
}

// SelectTower sets the pending placement type; entity.TowerNone clears it.
// Only accepted while PLAYING.
func (s *Session) SelectTower(t entity.TowerType) bool {
	if s.state.Status != state.StatusPlaying {
		return false
	}
	if t != entity.TowerNone {
		if _, ok := s.catalog.Tower(t); !ok {
			return false
		}
	}

	next := s.state.Clone()
	next.Selected = t
	s.state = next
	return true
}

// PlaceTower places the selected tower on the cell under pixel (px, py).
// It is rejected without any state change unless the session is PLAYING,
// a type is selected, gold covers the cost and the cell is free and buildable.
func (s *Session) PlaceTower(px, py float64) bool {
	cur := s.state
	if cur.Status != state.StatusPlaying || cur.Selected == entity.TowerNone {
		return false
	}
	stats, ok := s.catalog.Tower(cur.Selected)
	if !ok || cur.Gold < stats.Cost {
		return false
	}
	if !system.CanPlace(px, py, cur.Towers, s.grid) {
		return false
	}

	cell := s.grid.PixelToGrid(px, py)
	tower, ok := s.factory.CreateTower(cur.Selected, cell, s.ids.NextTower())
	if !ok {
		return false
	}

	next := cur.Clone()
	next.Towers = append(next.Towers, tower)
	next.Gold -= stats.Cost
	next.Selected = entity.TowerNone
	s.state = next

	if s.OnTowerPlaced != nil {
		s.OnTowerPlaced(tower)
	}
	return true
}

// TogglePause switches between PLAYING and PAUSED.
// Terminal states reject it.
func (s *Session) TogglePause() bool {
	switch s.state.Status {
	case state.StatusPlaying:
		s.setStatus(state.StatusPaused)
	case state.StatusPaused:
		s.setStatus(state.StatusPlaying)
	default:
		return false
	}
	// The first frame after either transition only re-seeds the frame timer
	s.framing = false
	return true
}

// Restart discards everything and starts a fresh session. Always accepted.
func (s *Session) Restart() bool {
	from := s.state.Status
	s.reset()
	s.generation++
	if from != state.StatusPlaying && s.OnStatusChanged != nil {
		s.OnStatusChanged(from, state.StatusPlaying)
	}
	return true
}

// Frame advances the game clock to the wall-clock time now and runs one tick.
// The first frame after a start, resume or restart only records now.
// Deltas are clamped to the configured maximum.
func (s *Session) Frame(now time.Time) system.TickReport {
	if s.state.Status != state.StatusPlaying {
		s.framing = false
		return system.TickReport{}
	}
	if !s.framing {
		s.framing = true
		s.lastFrame = now
		return system.TickReport{}
	}

	delta := now.Sub(s.lastFrame)
	s.lastFrame = now
	if delta < 0 {
		delta = 0
	}
	if limit := ms(s.cfg.Game.Rules.MaxFrameDeltaMs); limit > 0 && delta > limit {
		delta = limit
	}
	s.clock += delta

	from := s.state.Status
	next, report := s.sim.Tick(s.state, delta.Seconds(), s.clock, &s.ids)
	s.state = next

	for _, e := range report.Leaked {
		if s.OnEnemyLeaked != nil {
			s.OnEnemyLeaked(e)
		}
	}
	for _, e := range report.Killed {
		if s.OnEnemyKilled != nil {
			s.OnEnemyKilled(e)
		}
	}
	if next.Status != from && s.OnStatusChanged != nil {
		s.OnStatusChanged(from, next.Status)
	}
	return report
}

// SpawnCheck runs the wave lifecycle against the game clock: it closes a
// cleared wave, starts the next one and releases due enemies onto the start
// cell. It returns the enemies spawned.
func (s *Session) SpawnCheck() []entity.Enemy {
	if s.state.Status != state.StatusPlaying {
		return nil
	}

	if s.spawner.CanStartWave(len(s.state.Enemies)) {
		if s.wavesStarted > 0 && !s.current.Completed {
			s.current.Completed = true
			if s.OnWaveCleared != nil {
				s.OnWaveCleared(s.current)
			}
			if v := s.cfg.Game.Rules.VictoryWave; v > 0 && s.current.Number >= v {
				s.setStatus(state.StatusWon)
				return nil
			}
		}
		s.startWave()
	}

	due := s.spawner.Release(s.clock)
	if len(due) == 0 {
		return nil
	}

	spawned := make([]entity.Enemy, 0, len(due))
	for _, t := range due {
		e, ok := s.factory.CreateEnemy(t, s.ids.NextEnemy())
		if !ok {
			continue
		}
		spawned = append(spawned, e)
	}

	next := s.state.Clone()
	next.Enemies = append(next.Enemies, spawned...)
	s.state = next
	return spawned
}

// startWave advances the wave counter, except for the very first wave,
// and queues its enemies after the start delay
func (s *Session) startWave() {
	next := s.state.Clone()
	if s.wavesStarted > 0 {
		next.Wave++
	}
	s.wavesStarted++
	s.state = next

	s.current = s.waves.Generate(next.Wave)
	delay := ms(s.cfg.Game.Rules.WaveStartDelayMs)
	s.spawner.Start(system.ScheduleWave(s.current, s.clock, delay))

	if s.OnWaveStarted != nil {
		s.OnWaveStarted(s.current)
	}
}

func (s *Session) setStatus(to state.Status) {
	from := s.state.Status
	if from == to {
		return
	}
	next := s.state.Clone()
	next.Status = to
	s.state = next
	if s.OnStatusChanged != nil {
		s.OnStatusChanged(from, to)
	}
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
