package view

import (
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/domain/entity"
)

// Preview describes the ghost tower drawn under the pointer
type Preview struct {
	Type   entity.TowerType
	Cell   entity.GridPoint
	Center entity.Position
	Range  float64 // pixels
	Valid  bool    // the tower could be placed here right now
}

// PreviewAt returns the placement preview for pointer (px, py).
// There is no preview unless a tower type is selected and the pointer is on the grid.
func PreviewAt(st *state.GameState, grid *entity.Grid, catalog *system.Catalog, px, py float64) (Preview, bool) {
	if st.Selected == entity.TowerNone {
		return Preview{}, false
	}
	stats, ok := catalog.Tower(st.Selected)
	if !ok {
		return Preview{}, false
	}
	cell := grid.PixelToGrid(px, py)
	if !grid.InBounds(cell.X, cell.Y) {
		return Preview{}, false
	}

	return Preview{
		Type:   st.Selected,
		Cell:   cell,
		Center: grid.Center(cell),
		Range:  stats.Range * float64(grid.CellSize),
		Valid:  st.Gold >= stats.Cost && system.CanPlace(px, py, st.Towers, grid),
	}, true
}
