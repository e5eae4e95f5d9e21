package entity

// Projectile is a homing shot fired by a tower.
// It re-aims at its target's current position every tick.
type Projectile struct {
	ID       EntityID
	Position Position
	TargetID EntityID
	Damage   int
	Speed    float64 // pixels per second
	TowerID  EntityID
}

// NewProjectile creates a projectile at the firing tower's position
func NewProjectile(id EntityID, from Tower, target EntityID, speed float64) Projectile {
	return Projectile{
		ID:       id,
		Position: from.Position,
		TargetID: target,
		Damage:   from.Damage,
		Speed:    speed,
		TowerID:  from.ID,
	}
}
