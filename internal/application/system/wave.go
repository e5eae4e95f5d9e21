package system

import (
	"time"

	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// WaveGenerator produces wave compositions by number.
// Numbers inside the predefined table return that entry; numbers past it
// are generated from the endless rules and grow with the distance past
// the table.
type WaveGenerator struct {
	predefined []entity.Wave
	endless    config.EndlessConfig
}

// NewWaveGenerator creates a generator from the waves config
func NewWaveGenerator(cfg *config.WavesConfig) *WaveGenerator {
	g := &WaveGenerator{
		predefined: make([]entity.Wave, 0, len(cfg.Predefined)),
		endless:    cfg.Endless,
	}
	for i, w := range cfg.Predefined {
		wave := entity.Wave{Number: i + 1, Groups: make([]entity.SpawnGroup, 0, len(w.Groups))}
		for _, grp := range w.Groups {
			wave.Groups = append(wave.Groups, entity.SpawnGroup{
				Type:     entity.EnemyType(grp.Type),
				Count:    grp.Count,
				Interval: ms(grp.SpawnIntervalMs),
			})
		}
		g.predefined = append(g.predefined, wave)
	}
	return g
}

// PredefinedCount returns the size of the predefined table
func (g *WaveGenerator) PredefinedCount() int {
	return len(g.predefined)
}

// Generate returns the composition of wave n. Numbers below 1 are treated as 1.
func (g *WaveGenerator) Generate(n int) entity.Wave {
	if n < 1 {
		n = 1
	}
	if n <= len(g.predefined) {
		w := g.predefined[n-1]
		w.Groups = append([]entity.SpawnGroup(nil), w.Groups...)
		return w
	}

	level := n - len(g.predefined)
	wave := entity.Wave{Number: n, Groups: make([]entity.SpawnGroup, 0, len(g.endless.Groups)+1)}
	for _, grp := range g.endless.Groups {
		interval := grp.BaseIntervalMs - level*grp.IntervalStepMs
		if interval < grp.MinIntervalMs {
			interval = grp.MinIntervalMs
		}
		wave.Groups = append(wave.Groups, entity.SpawnGroup{
			Type:     entity.EnemyType(grp.Type),
			Count:    grp.BaseCount + level*grp.CountPerLevel,
			Interval: ms(interval),
		})
	}

	if g.endless.BossType != "" && g.endless.LevelsPerBoss > 0 {
		bosses := (level + g.endless.LevelsPerBoss - 1) / g.endless.LevelsPerBoss
		if bosses > 0 {
			wave.Groups = append(wave.Groups, entity.SpawnGroup{
				Type:     entity.EnemyType(g.endless.BossType),
				Count:    bosses,
				Interval: ms(g.endless.BossIntervalMs),
			})
		}
	}

	return wave
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
