package entity

import "time"

// SpawnGroup releases Count enemies of one type, Interval apart
type SpawnGroup struct {
	Type     EnemyType
	Count    int
	Interval time.Duration
}

// Wave is one batch of spawn groups
type Wave struct {
	Number    int
	Groups    []SpawnGroup
	Completed bool // informational only
}

// TotalEnemies returns the number of enemies the wave spawns
func (w Wave) TotalEnemies() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}

// CountOf returns how many enemies of type t the wave spawns
func (w Wave) CountOf(t EnemyType) int {
	n := 0
	for _, g := range w.Groups {
		if g.Type == t {
			n += g.Count
		}
	}
	return n
}
