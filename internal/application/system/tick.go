package system

import (
	"time"

	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// SimulationConfig is the subset of settings a tick depends on
type SimulationConfig struct {
	SnapDistance    float64
	HitRadius       float64
	ScoreMultiplier int
}

// NewSimulationConfig extracts tick settings from game settings
func NewSimulationConfig(cfg *config.GameSettings) SimulationConfig {
	return SimulationConfig{
		SnapDistance:    cfg.Movement.SnapDistance,
		HitRadius:       cfg.Projectile.HitRadius,
		ScoreMultiplier: cfg.Rules.ScoreMultiplier,
	}
}

// Hit records one projectile reaching its target
type Hit struct {
	ProjectileID entity.EntityID
	TowerID      entity.EntityID
	EnemyID      entity.EntityID
	Damage       int
}

// TickReport lists what happened during one tick
type TickReport struct {
	Leaked    []entity.Enemy
	Killed    []entity.Enemy
	Fired     []entity.Projectile
	Hits      []Hit
	Discarded int // projectiles whose target vanished
	GameOver  bool
}

// Simulation advances a GameState by one tick
type Simulation struct {
	grid    *entity.Grid
	route   entity.Route
	factory *Factory
	cfg     SimulationConfig
}

// NewSimulation creates a new simulation over a grid and route
func NewSimulation(grid *entity.Grid, route entity.Route, factory *Factory, cfg SimulationConfig) *Simulation {
	return &Simulation{
		grid:    grid,
		route:   route,
		factory: factory,
		cfg:     cfg,
	}
}

// Tick derives the next state from prev.
// dt is the elapsed time in seconds and now the game clock used for fire
// rates. prev is never modified. States that are not PLAYING are returned
// as an unchanged copy.
func (s *Simulation) Tick(prev *state.GameState, dt float64, now time.Duration, ids *IDSource) (*state.GameState, TickReport) {
	next := prev.Clone()
	var report TickReport
	if next.Status != state.StatusPlaying {
		return next, report
	}

	s.moveEnemies(next, dt)
	s.resolveLeaks(next, &report)
	s.fireTowers(next, now, ids, &report)
	damage := s.moveProjectiles(next, dt, &report)
	s.applyDamage(next, damage, &report)

	return next, report
}

// moveEnemies steps every enemy toward its next waypoint
func (s *Simulation) moveEnemies(next *state.GameState, dt float64) {
	last := s.route.LastIndex()
	step := float64(s.grid.CellSize) * dt

	for i := range next.Enemies {
		e := &next.Enemies[i]
		if e.PathIndex >= last {
			continue
		}
		waypoint := s.grid.Center(s.route[e.PathIndex+1])
		if e.Position.DistanceTo(waypoint) < s.cfg.SnapDistance {
			e.Position = waypoint
			e.PathIndex++
			continue
		}
		e.Position = e.Position.MoveToward(waypoint, e.Speed*step)
	}
}

// resolveLeaks removes enemies standing on the last route cell and charges
// one health each
func (s *Simulation) resolveLeaks(next *state.GameState, report *TickReport) {
	last := s.route.LastIndex()

	kept := next.Enemies[:0]
	for _, e := range next.Enemies {
		if e.PathIndex >= last {
			report.Leaked = append(report.Leaked, e)
			continue
		}
		kept = append(kept, e)
	}
	next.Enemies = kept

	if len(report.Leaked) == 0 {
		return
	}
	next.Health -= len(report.Leaked)
	if next.Health <= 0 {
		next.Health = 0
		next.Status = state.StatusGameOver
		report.GameOver = true
	}
}

// fireTowers retargets every tower and fires those that are ready
func (s *Simulation) fireTowers(next *state.GameState, now time.Duration, ids *IDSource, report *TickReport) {
	for i := range next.Towers {
		t := &next.Towers[i]

		target, ok := FindTarget(*t, next.Enemies, s.grid.CellSize)
		if !ok {
			t.TargetID = entity.NoEntity
			continue
		}
		t.TargetID = target.ID

		if !t.ReadyToFire(now) {
			continue
		}
		p := s.factory.CreateProjectile(*t, target.ID, ids.NextProjectile())
		next.Projectiles = append(next.Projectiles, p)
		t.LastFireTime = now
		t.HasFired = true
		report.Fired = append(report.Fired, p)
	}
}

// moveProjectiles resolves hits and homes the rest toward their targets.
// It returns the damage accumulated per enemy.
func (s *Simulation) moveProjectiles(next *state.GameState, dt float64, report *TickReport) map[entity.EntityID]int {
	index := make(map[entity.EntityID]int, len(next.Enemies))
	for i, e := range next.Enemies {
		index[e.ID] = i
	}

	damage := make(map[entity.EntityID]int)
	kept := next.Projectiles[:0]
	for _, p := range next.Projectiles {
		i, ok := index[p.TargetID]
		if !ok {
			report.Discarded++
			continue
		}
		target := next.Enemies[i]

		if p.Position.DistanceTo(target.Position) < s.cfg.HitRadius {
			damage[target.ID] += p.Damage
			report.Hits = append(report.Hits, Hit{
				ProjectileID: p.ID,
				TowerID:      p.TowerID,
				EnemyID:      target.ID,
				Damage:       p.Damage,
			})
			continue
		}

		p.Position = p.Position.MoveToward(target.Position, p.Speed*dt)
		kept = append(kept, p)
	}
	next.Projectiles = kept

	return damage
}

// applyDamage deals the accumulated damage and pays out kill rewards
func (s *Simulation) applyDamage(next *state.GameState, damage map[entity.EntityID]int, report *TickReport) {
	if len(damage) == 0 {
		return
	}

	alive := next.Enemies[:0]
	for _, e := range next.Enemies {
		if d, ok := damage[e.ID]; ok {
			e.TakeDamage(d)
		}
		if !e.IsAlive() {
			next.Gold += e.Reward
			next.Score += e.Reward * s.cfg.ScoreMultiplier
			report.Killed = append(report.Killed, e)
			continue
		}
		alive = append(alive, e)
	}
	next.Enemies = alive
}
