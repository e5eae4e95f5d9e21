package system

import (
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

// BuildRoute walks each segment cell by cell, from its declared start to
// its declared end, and concatenates the walks in order.
//
// Adjacent segments share their corner cell. With dedupe set the shared
// cell appears once; without it the corner is repeated and enemies spend
// one extra tick on it.
func BuildRoute(segments []config.SegmentConfig, dedupe bool) entity.Route {
	route := make(entity.Route, 0, 64)
	for _, seg := range segments {
		dx := sign(seg.To.X - seg.From.X)
		dy := sign(seg.To.Y - seg.From.Y)
		p := entity.GridPoint{X: seg.From.X, Y: seg.From.Y}
		for {
			if !(dedupe && len(route) > 0 && route[len(route)-1] == p) {
				route = append(route, p)
			}
			if p.X == seg.To.X && p.Y == seg.To.Y {
				break
			}
			p.X += dx
			p.Y += dy
		}
	}
	return route
}

// LoadGrid converts a MapConfig into the grid and the route across it
func LoadGrid(cfg *config.MapConfig) (*entity.Grid, entity.Route) {
	route := BuildRoute(cfg.Segments, cfg.DedupeCorners)

	cells := make([][]entity.Cell, cfg.Height)
	for y := range cells {
		cells[y] = make([]entity.Cell, cfg.Width)
		for x := range cells[y] {
			cells[y][x] = entity.Cell{X: x, Y: y, Type: entity.CellBuildable}
		}
	}

	for _, p := range route {
		cells[p.Y][p.X].Type = entity.CellPath
	}
	if len(route) > 0 {
		start := route[0]
		end := route[route.LastIndex()]
		cells[start.Y][start.X].Type = entity.CellStart
		cells[end.Y][end.X].Type = entity.CellEnd
	}

	return &entity.Grid{
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.CellSize,
		Cells:    cells,
	}, route
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
