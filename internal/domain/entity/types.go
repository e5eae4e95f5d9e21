package entity

import "math"

// EntityID is a unique identifier for an entity ("enemy-3", "tower-0", ...)
type EntityID string

// NoEntity is the zero EntityID, used for "no target"
const NoEntity EntityID = ""

// TowerType identifies a tower kind in the catalog
type TowerType string

const (
	TowerNone   TowerType = ""
	TowerBasic  TowerType = "BASIC"
	TowerSniper TowerType = "SNIPER"
	TowerCannon TowerType = "CANNON"
	TowerLaser  TowerType = "LASER"
)

// EnemyType identifies an enemy kind in the catalog
type EnemyType string

const (
	EnemyBasic EnemyType = "BASIC"
	EnemyFast  EnemyType = "FAST"
	EnemyTank  EnemyType = "TANK"
	EnemyBoss  EnemyType = "BOSS"
)

// Position is a point in pixel space
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to o
func (p Position) DistanceTo(o Position) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveToward moves p along the straight line to target by at most step pixels.
// It never overshoots the target.
func (p Position) MoveToward(target Position, step float64) Position {
	dist := p.DistanceTo(target)
	if dist == 0 || step <= 0 {
		return p
	}
	ratio := math.Min(step/dist, 1)
	return Position{
		X: p.X + (target.X-p.X)*ratio,
		Y: p.Y + (target.Y-p.Y)*ratio,
	}
}

// GridPoint is a cell coordinate on the grid
type GridPoint struct {
	X, Y int
}
