package system

import "github.com/younwookim/td/internal/domain/entity"

// Intent represents a player action a session may accept or reject
type Intent interface {
	isIntent()
}

// SelectTowerIntent selects a tower type for placement.
// entity.TowerNone clears the selection.
type SelectTowerIntent struct {
	Type entity.TowerType
}

func (SelectTowerIntent) isIntent() {}

// PlaceTowerIntent places the selected tower on the cell under a pixel
type PlaceTowerIntent struct {
	X, Y float64 // pixels
}

func (PlaceTowerIntent) isIntent() {}

// TogglePauseIntent switches between PLAYING and PAUSED
type TogglePauseIntent struct{}

func (TogglePauseIntent) isIntent() {}

// RestartIntent starts a fresh session
type RestartIntent struct{}

func (RestartIntent) isIntent() {}
