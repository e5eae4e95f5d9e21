package system

import "github.com/younwookim/td/internal/domain/entity"

// CanPlace reports whether a tower may go on the cell under pixel (px, py):
// the cell must be inside the grid, buildable and unoccupied.
func CanPlace(px, py float64, towers []entity.Tower, grid *entity.Grid) bool {
	cell, ok := grid.CellAtPixel(px, py)
	if !ok || cell.Type != entity.CellBuildable {
		return false
	}
	for _, t := range towers {
		if t.Cell.X == cell.X && t.Cell.Y == cell.Y {
			return false
		}
	}
	return true
}
