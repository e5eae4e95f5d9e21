package system

import "github.com/younwookim/td/internal/domain/entity"

// FindTarget picks the in-range enemy furthest along the route.
// Ties keep the first enemy found.
func FindTarget(tower entity.Tower, enemies []entity.Enemy, cellSize int) (entity.Enemy, bool) {
	reach := tower.RangePixels(cellSize)

	var best entity.Enemy
	found := false
	for _, e := range enemies {
		if tower.Position.DistanceTo(e.Position) > reach {
			continue
		}
		if !found || e.PathIndex > best.PathIndex {
			best = e
			found = true
		}
	}
	return best, found
}
