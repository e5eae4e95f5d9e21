package system

import (
	"strconv"

	"github.com/younwookim/td/internal/domain/entity"
)

// IDSource hands out session-unique entity ids.
// Counters only grow until Reset is called on restart.
type IDSource struct {
	enemies     uint64
	towers      uint64
	projectiles uint64
}

func (s *IDSource) NextEnemy() entity.EntityID {
	id := entity.EntityID("enemy-" + strconv.FormatUint(s.enemies, 10))
	s.enemies++
	return id
}

func (s *IDSource) NextTower() entity.EntityID {
	id := entity.EntityID("tower-" + strconv.FormatUint(s.towers, 10))
	s.towers++
	return id
}

func (s *IDSource) NextProjectile() entity.EntityID {
	id := entity.EntityID("proj-" + strconv.FormatUint(s.projectiles, 10))
	s.projectiles++
	return id
}

// Reset sets every counter back to zero
func (s *IDSource) Reset() {
	*s = IDSource{}
}

// Factory builds entities from catalog stats
type Factory struct {
	catalog         *Catalog
	grid            *entity.Grid
	route           entity.Route
	projectileSpeed float64
}

// NewFactory creates a new entity factory
func NewFactory(catalog *Catalog, grid *entity.Grid, route entity.Route, projectileSpeed float64) *Factory {
	return &Factory{
		catalog:         catalog,
		grid:            grid,
		route:           route,
		projectileSpeed: projectileSpeed,
	}
}

// CreateEnemy places a full-health enemy on the centre of the route's first cell
func (f *Factory) CreateEnemy(t entity.EnemyType, id entity.EntityID) (entity.Enemy, bool) {
	stats, ok := f.catalog.Enemy(t)
	if !ok || len(f.route) == 0 {
		return entity.Enemy{}, false
	}
	return entity.NewEnemy(id, stats, f.grid.Center(f.route[0])), true
}

// CreateTower places a tower of type t on the centre of cell
func (f *Factory) CreateTower(t entity.TowerType, cell entity.GridPoint, id entity.EntityID) (entity.Tower, bool) {
	stats, ok := f.catalog.Tower(t)
	if !ok {
		return entity.Tower{}, false
	}
	return entity.NewTower(id, stats, cell, f.grid.Center(cell)), true
}

// CreateProjectile fires a projectile from tower at target
func (f *Factory) CreateProjectile(tower entity.Tower, target entity.EntityID, id entity.EntityID) entity.Projectile {
	return entity.NewProjectile(id, tower, target, f.projectileSpeed)
}
