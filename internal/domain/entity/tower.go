package entity

import "time"

// TowerStats is the catalog entry for a tower type
type TowerStats struct {
	Type         TowerType
	Name         string
	Description  string
	Cost         int
	Damage       int
	Range        float64 // cells
	FireInterval time.Duration
	Color        string
}

// Tower is a placed tower.
// Position, Cell and Type never change after placement.
type Tower struct {
	ID           EntityID
	Type         TowerType
	Position     Position
	Cell         GridPoint
	Cost         int
	Damage       int
	Range        float64 // cells
	FireInterval time.Duration

	// Firing state, on the session's game clock
	LastFireTime time.Duration
	HasFired     bool
	TargetID     EntityID
}

// NewTower creates a tower at the centre of a cell. It has never fired.
func NewTower(id EntityID, stats TowerStats, cell GridPoint, center Position) Tower {
	return Tower{
		ID:           id,
		Type:         stats.Type,
		Position:     center,
		Cell:         cell,
		Cost:         stats.Cost,
		Damage:       stats.Damage,
		Range:        stats.Range,
		FireInterval: stats.FireInterval,
		TargetID:     NoEntity,
	}
}

// RangePixels returns the tower's reach in pixels
func (t Tower) RangePixels(cellSize int) float64 {
	return t.Range * float64(cellSize)
}

// ReadyToFire reports whether the fire interval has elapsed since the last shot
func (t Tower) ReadyToFire(now time.Duration) bool {
	return !t.HasFired || now-t.LastFireTime >= t.FireInterval
}
