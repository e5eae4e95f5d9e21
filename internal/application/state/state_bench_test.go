package state

import (
	"fmt"
	"testing"

	"github.com/younwookim/td/internal/domain/entity"
)

var benchSizes = []int{10, 100, 1000}

// crowded returns a state with n enemies, n/10 towers and n projectiles
func crowded(n int) *GameState {
	s := New(20, 200)
	for i := 0; i < n; i++ {
		id := entity.EntityID(fmt.Sprintf("enemy-%d", i+1))
		s.Enemies = append(s.Enemies, entity.Enemy{
			ID:        id,
			Type:      entity.EnemyBasic,
			Position:  entity.Position{X: float64(i), Y: float64(i)},
			Health:    100,
			MaxHealth: 100,
			Speed:     1,
			PathIndex: i % 75,
			Reward:    10,
		})
		s.Projectiles = append(s.Projectiles, entity.Projectile{
			ID:       entity.EntityID(fmt.Sprintf("projectile-%d", i+1)),
			TargetID: id,
			Damage:   10,
			Speed:    200,
		})
		if i%10 == 0 {
			s.Towers = append(s.Towers, entity.Tower{
				ID:   entity.EntityID(fmt.Sprintf("tower-%d", i/10+1)),
				Type: entity.TowerBasic,
				Cell: entity.GridPoint{X: i % 20, Y: i / 20},
			})
		}
	}
	return s
}

// Every transition clones the whole state; this is the per-tick copy cost
func BenchmarkGameState_Clone(b *testing.B) {
	for _, n := range benchSizes {
		s := crowded(n)
		b.Run(fmt.Sprintf("enemies=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = s.Clone()
			}
		})
	}
}

// Renderers resolve every tower target by linear scan
func BenchmarkGameState_FindEnemy(b *testing.B) {
	for _, n := range benchSizes {
		s := crowded(n)
		last := s.Enemies[n-1].ID
		b.Run(fmt.Sprintf("enemies=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, ok := s.FindEnemy(last); !ok {
					b.Fatal("enemy not found")
				}
			}
		})
	}
}
