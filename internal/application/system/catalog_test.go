package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

func TestLoadCatalog(t *testing.T) {
	cfg := config.Default()
	catalog := LoadCatalog(cfg.Towers, cfg.Enemies)

	t.Run("tower stats", func(t *testing.T) {
		tests := []struct {
			typ      entity.TowerType
			cost     int
			damage   int
			rng      float64
			interval time.Duration
		}{
			{entity.TowerBasic, 50, 10, 3, time.Second},
			{entity.TowerSniper, 100, 40, 6, 2 * time.Second},
			{entity.TowerCannon, 80, 25, 4, 1500 * time.Millisecond},
			{entity.TowerLaser, 120, 8, 5, 300 * time.Millisecond},
		}
		for _, tt := range tests {
			stats, ok := catalog.Tower(tt.typ)
			require.True(t, ok, tt.typ)
			assert.Equal(t, tt.typ, stats.Type)
			assert.Equal(t, tt.cost, stats.Cost)
			assert.Equal(t, tt.damage, stats.Damage)
			assert.Equal(t, tt.rng, stats.Range)
			assert.Equal(t, tt.interval, stats.FireInterval)
			assert.NotEmpty(t, stats.Name)
		}
	})

	t.Run("enemy stats", func(t *testing.T) {
		tests := []struct {
			typ    entity.EnemyType
			health int
			speed  float64
			reward int
		}{
			{entity.EnemyBasic, 50, 1, 10},
			{entity.EnemyFast, 30, 2, 15},
			{entity.EnemyTank, 150, 0.5, 25},
			{entity.EnemyBoss, 500, 0.3, 100},
		}
		for _, tt := range tests {
			stats, ok := catalog.Enemy(tt.typ)
			require.True(t, ok, tt.typ)
			assert.Equal(t, tt.health, stats.Health)
			assert.Equal(t, tt.speed, stats.Speed)
			assert.Equal(t, tt.reward, stats.Reward)
		}
	})

	t.Run("shop order", func(t *testing.T) {
		assert.Equal(t, []entity.TowerType{
			entity.TowerBasic, entity.TowerSniper, entity.TowerCannon, entity.TowerLaser,
		}, catalog.TowerTypes())
	})

	t.Run("unknown types", func(t *testing.T) {
		_, ok := catalog.Tower("MORTAR")
		assert.False(t, ok)
		_, ok = catalog.Tower(entity.TowerNone)
		assert.False(t, ok)
		_, ok = catalog.Enemy("GHOST")
		assert.False(t, ok)
	})

	t.Run("TowerTypes returns a copy", func(t *testing.T) {
		types := catalog.TowerTypes()
		types[0] = "MORTAR"
		assert.Equal(t, entity.TowerBasic, catalog.TowerTypes()[0])
	})
}
