package system

import (
	"time"

	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// Catalog holds the static tower and enemy stat tables
type Catalog struct {
	towers  map[entity.TowerType]entity.TowerStats
	enemies map[entity.EnemyType]entity.EnemyStats
	order   []entity.TowerType
}

// LoadCatalog converts the tower and enemy configs into a Catalog
func LoadCatalog(towers *config.TowersConfig, enemies *config.EnemiesConfig) *Catalog {
	c := &Catalog{
		towers:  make(map[entity.TowerType]entity.TowerStats, len(towers.Types)),
		enemies: make(map[entity.EnemyType]entity.EnemyStats, len(enemies.Types)),
		order:   make([]entity.TowerType, 0, len(towers.Order)),
	}

	for id, t := range towers.Types {
		tt := entity.TowerType(id)
		c.towers[tt] = entity.TowerStats{
			Type:         tt,
			Name:         t.Name,
			Description:  t.Description,
			Cost:         t.Cost,
			Damage:       t.Damage,
			Range:        t.Range,
			FireInterval: time.Duration(t.FireRateMs) * time.Millisecond,
			Color:        t.Color,
		}
	}
	for _, id := range towers.Order {
		if _, ok := c.towers[entity.TowerType(id)]; ok {
			c.order = append(c.order, entity.TowerType(id))
		}
	}

	for id, e := range enemies.Types {
		et := entity.EnemyType(id)
		c.enemies[et] = entity.EnemyStats{
			Type:   et,
			Health: e.Health,
			Speed:  e.Speed,
			Reward: e.Reward,
			Color:  e.Color,
		}
	}

	return c
}

// Tower returns the stats for a tower type
func (c *Catalog) Tower(t entity.TowerType) (entity.TowerStats, bool) {
	stats, ok := c.towers[t]
	return stats, ok
}

// Enemy returns the stats for an enemy type
func (c *Catalog) Enemy(t entity.EnemyType) (entity.EnemyStats, bool) {
	stats, ok := c.enemies[t]
	return stats, ok
}

// TowerTypes returns the tower types in shop order
func (c *Catalog) TowerTypes() []entity.TowerType {
	return append([]entity.TowerType(nil), c.order...)
}
