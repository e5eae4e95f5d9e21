package entity

import "math"

// CellType represents the type of a grid cell
type CellType int

const (
	CellBuildable CellType = iota
	CellPath
	CellStart
	CellEnd
)

// String returns the string representation of the cell type
func (c CellType) String() string {
	switch c {
	case CellBuildable:
		return "BUILDABLE"
	case CellPath:
		return "PATH"
	case CellStart:
		return "START"
	case CellEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Cell represents a single cell of the map
type Cell struct {
	X, Y int
	Type CellType
}

// Grid is the immutable map the game is played on
type Grid struct {
	Width    int
	Height   int
	CellSize int
	Cells    [][]Cell // indexed [y][x]
}

// InBounds reports whether the cell coordinate lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CellAt returns the cell at the given grid coordinates
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.Cells[y][x], true
}

// PixelToGrid converts pixel coordinates to the containing cell coordinate
func (g *Grid) PixelToGrid(px, py float64) GridPoint {
	size := float64(g.CellSize)
	return GridPoint{
		X: int(math.Floor(px / size)),
		Y: int(math.Floor(py / size)),
	}
}

// CellAtPixel returns the cell containing the given pixel coordinates
func (g *Grid) CellAtPixel(px, py float64) (Cell, bool) {
	p := g.PixelToGrid(px, py)
	return g.CellAt(p.X, p.Y)
}

// Center returns the pixel centre of a cell
func (g *Grid) Center(p GridPoint) Position {
	half := float64(g.CellSize) / 2
	return Position{
		X: float64(p.X*g.CellSize) + half,
		Y: float64(p.Y*g.CellSize) + half,
	}
}

// Route is the ordered list of cells enemies walk from start to end
type Route []GridPoint

// LastIndex returns the index of the final cell
func (r Route) LastIndex() int {
	return len(r) - 1
}
