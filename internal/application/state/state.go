package state

import "github.com/younwookim/td/internal/domain/entity"

// Status represents the current status of a session
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
	StatusWon
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME_OVER"
	case StatusWon:
		return "WON"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further ticks or spawns may run
func (s Status) IsTerminal() bool {
	return s == StatusGameOver || s == StatusWon
}

// GameState is one snapshot of the whole game.
// A tick never modifies a snapshot in place; it derives a new one with Clone.
type GameState struct {
	Health   int
	Gold     int
	Wave     int
	Score    int
	Status   Status
	Selected entity.TowerType // TowerNone when nothing is selected

	Enemies     []entity.Enemy
	Towers      []entity.Tower
	Projectiles []entity.Projectile
}

// New returns the initial state of a session
func New(initialHealth, initialGold int) *GameState {
	return &GameState{
		Health:      initialHealth,
		Gold:        initialGold,
		Wave:        1,
		Score:       0,
		Status:      StatusPlaying,
		Selected:    entity.TowerNone,
		Enemies:     []entity.Enemy{},
		Towers:      []entity.Tower{},
		Projectiles: []entity.Projectile{},
	}
}

// Clone returns a deep copy that shares no slices with s
func (s *GameState) Clone() *GameState {
	c := *s
	c.Enemies = append(make([]entity.Enemy, 0, len(s.Enemies)), s.Enemies...)
	c.Towers = append(make([]entity.Tower, 0, len(s.Towers)), s.Towers...)
	c.Projectiles = append(make([]entity.Projectile, 0, len(s.Projectiles)), s.Projectiles...)
	return &c
}

// FindEnemy resolves an enemy by id in the current snapshot
func (s *GameState) FindEnemy(id entity.EntityID) (entity.Enemy, bool) {
	if id == entity.NoEntity {
		return entity.Enemy{}, false
	}
	for _, e := range s.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Enemy{}, false
}

// TowerAt returns the tower occupying a grid cell, if any
func (s *GameState) TowerAt(cell entity.GridPoint) (entity.Tower, bool) {
	for _, t := range s.Towers {
		if t.Cell == cell {
			return t, true
		}
	}
	return entity.Tower{}, false
}
