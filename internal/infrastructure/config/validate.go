package config

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration can drive a session.
// It reports the first problem found.
func (c *GameConfig) Validate() error {
	if c.Game == nil || c.Map == nil || c.Towers == nil || c.Enemies == nil || c.Waves == nil {
		return errors.New("incomplete config: every section must be loaded")
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateRules(); err != nil {
		return err
	}
	if err := c.validateMap(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateWaves()
}

func (c *GameConfig) validateDisplay() error {
	d := c.Game.Display
	if d.Framerate <= 0 || d.Scale <= 0 {
		return fmt.Errorf("display framerate %d and scale %d must be positive", d.Framerate, d.Scale)
	}
	if d.SidebarWidth < 0 || d.ScreenHeight < 0 {
		return errors.New("display sizes must not be negative")
	}
	return nil
}

func (c *GameConfig) validateRules() error {
	r := c.Game.Rules
	switch {
	case r.InitialHealth <= 0:
		return fmt.Errorf("rules.initialHealth must be positive, got %d", r.InitialHealth)
	case r.InitialGold < 0:
		return fmt.Errorf("rules.initialGold must not be negative, got %d", r.InitialGold)
	case r.ScoreMultiplier < 0:
		return fmt.Errorf("rules.scoreMultiplier must not be negative, got %d", r.ScoreMultiplier)
	case r.SpawnCheckIntervalMs <= 0:
		return fmt.Errorf("rules.spawnCheckIntervalMs must be positive, got %d", r.SpawnCheckIntervalMs)
	case r.WaveStartDelayMs < 0:
		return fmt.Errorf("rules.waveStartDelayMs must not be negative, got %d", r.WaveStartDelayMs)
	case r.VictoryWave < 0:
		return fmt.Errorf("rules.victoryWave must not be negative, got %d", r.VictoryWave)
	}
	if c.Game.Projectile.Speed <= 0 || c.Game.Projectile.HitRadius <= 0 {
		return errors.New("projectile speed and hitRadius must be positive")
	}
	if c.Game.Movement.SnapDistance <= 0 {
		return errors.New("movement.snapDistance must be positive")
	}
	return nil
}

func (c *GameConfig) validateMap() error {
	m := c.Map
	if m.Width <= 0 || m.Height <= 0 || m.CellSize <= 0 {
		return fmt.Errorf("map size %dx%d (cell %d) must be positive", m.Width, m.Height, m.CellSize)
	}
	if len(m.Segments) == 0 {
		return errors.New("map has no path segments")
	}
	for i, seg := range m.Segments {
		if seg.From.X != seg.To.X && seg.From.Y != seg.To.Y {
			return fmt.Errorf("segment %d is neither horizontal nor vertical", i)
		}
		for _, p := range []PointConfig{seg.From, seg.To} {
			if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
				return fmt.Errorf("segment %d point (%d,%d) is outside the grid", i, p.X, p.Y)
			}
		}
		if i > 0 && m.Segments[i-1].To != seg.From {
			return fmt.Errorf("segment %d does not start where segment %d ends", i, i-1)
		}
	}
	return nil
}

func (c *GameConfig) validateCatalog() error {
	if len(c.Towers.Order) == 0 {
		return errors.New("towers.order is empty")
	}
	for _, id := range c.Towers.Order {
		t, ok := c.Towers.Types[id]
		if !ok {
			return fmt.Errorf("tower %q is listed in order but not defined", id)
		}
		if t.Cost < 0 || t.Damage <= 0 || t.Range <= 0 || t.FireRateMs <= 0 {
			return fmt.Errorf("tower %q has non-positive stats", id)
		}
	}
	for id, e := range c.Enemies.Types {
		if e.Health <= 0 || e.Speed <= 0 || e.Reward < 0 {
			return fmt.Errorf("enemy %q has invalid stats", id)
		}
	}
	return nil
}

func (c *GameConfig) validateWaves() error {
	w := c.Waves
	if len(w.Predefined) == 0 {
		return errors.New("waves.predefined is empty")
	}
	for i, wave := range w.Predefined {
		for _, g := range wave.Groups {
			if err := c.checkEnemyType(g.Type); err != nil {
				return fmt.Errorf("wave %d: %w", i+1, err)
			}
			if g.Count < 0 || g.SpawnIntervalMs <= 0 {
				return fmt.Errorf("wave %d: group %s has invalid count or interval", i+1, g.Type)
			}
		}
	}
	for _, g := range w.Endless.Groups {
		if err := c.checkEnemyType(g.Type); err != nil {
			return fmt.Errorf("endless: %w", err)
		}
		if g.MinIntervalMs <= 0 || g.CountPerLevel < 0 {
			return fmt.Errorf("endless: group %s has invalid scaling", g.Type)
		}
	}
	if err := c.checkEnemyType(w.Endless.BossType); err != nil {
		return fmt.Errorf("endless boss: %w", err)
	}
	if w.Endless.LevelsPerBoss <= 0 || w.Endless.BossIntervalMs <= 0 {
		return errors.New("endless: levelsPerBoss and bossIntervalMs must be positive")
	}
	return nil
}

func (c *GameConfig) checkEnemyType(id string) error {
	if _, ok := c.Enemies.Types[id]; !ok {
		return fmt.Errorf("unknown enemy type %q", id)
	}
	return nil
}
