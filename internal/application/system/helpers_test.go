package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// createTestMap is a 5x3 field with a straight route along the middle row.
//
//	. . . . .
//	S P P P E
//	. . . . .
func createTestMap() *config.MapConfig {
	return &config.MapConfig{
		Width:         5,
		Height:        3,
		CellSize:      32,
		DedupeCorners: true,
		Segments: []config.SegmentConfig{
			{From: config.PointConfig{X: 0, Y: 1}, To: config.PointConfig{X: 4, Y: 1}},
		},
	}
}

type testWorld struct {
	cfg     *config.GameConfig
	grid    *entity.Grid
	route   entity.Route
	catalog *Catalog
	factory *Factory
	sim     *Simulation
	ids     *IDSource
}

func newTestWorld(t testing.TB) *testWorld {
	t.Helper()

	cfg := config.Default()
	cfg.Map = createTestMap()
	require.NoError(t, cfg.Validate())

	grid, route := LoadGrid(cfg.Map)
	catalog := LoadCatalog(cfg.Towers, cfg.Enemies)
	factory := NewFactory(catalog, grid, route, cfg.Game.Projectile.Speed)

	return &testWorld{
		cfg:     cfg,
		grid:    grid,
		route:   route,
		catalog: catalog,
		factory: factory,
		sim:     NewSimulation(grid, route, factory, NewSimulationConfig(cfg.Game)),
		ids:     &IDSource{},
	}
}

// enemyAt creates an enemy standing on route cell i
func (w *testWorld) enemyAt(t testing.TB, typ entity.EnemyType, i int) entity.Enemy {
	t.Helper()
	e, ok := w.factory.CreateEnemy(typ, w.ids.NextEnemy())
	require.True(t, ok)
	e.PathIndex = i
	e.Position = w.grid.Center(w.route[i])
	return e
}

// towerAt creates a tower on cell (x, y)
func (w *testWorld) towerAt(t testing.TB, typ entity.TowerType, x, y int) entity.Tower {
	t.Helper()
	tower, ok := w.factory.CreateTower(typ, entity.GridPoint{X: x, Y: y}, w.ids.NextTower())
	require.True(t, ok)
	return tower
}
