package entity

// EnemyStats is the catalog entry for an enemy type
type EnemyStats struct {
	Type   EnemyType
	Health int
	Speed  float64 // cells per second
	Reward int
	Color  string
}

// Enemy represents an enemy walking the route
type Enemy struct {
	ID        EntityID
	Type      EnemyType
	Position  Position
	Health    int
	MaxHealth int
	Speed     float64 // cells per second
	PathIndex int     // index of the last route cell reached
	Reward    int
}

// NewEnemy creates an enemy with full health at the given position
func NewEnemy(id EntityID, stats EnemyStats, pos Position) Enemy {
	return Enemy{
		ID:        id,
		Type:      stats.Type,
		Position:  pos,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Speed:     stats.Speed,
		PathIndex: 0,
		Reward:    stats.Reward,
	}
}

// TakeDamage applies damage and reports whether the enemy died
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive
func (e Enemy) IsAlive() bool {
	return e.Health > 0
}

// HealthRatio returns current health as a fraction of max health
func (e Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}
