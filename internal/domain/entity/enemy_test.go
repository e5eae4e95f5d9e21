package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBasicStats = EnemyStats{Type: EnemyBasic, Health: 50, Speed: 1, Reward: 10, Color: "#FF6B6B"}

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy("enemy-0", testBasicStats, Position{16, 80})

	assert.Equal(t, EntityID("enemy-0"), enemy.ID)
	assert.Equal(t, EnemyBasic, enemy.Type)
	assert.Equal(t, Position{16, 80}, enemy.Position)
	assert.Equal(t, 50, enemy.Health)
	assert.Equal(t, 50, enemy.MaxHealth)
	assert.Equal(t, 1.0, enemy.Speed)
	assert.Equal(t, 0, enemy.PathIndex)
	assert.Equal(t, 10, enemy.Reward)
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := NewEnemy("enemy-0", testBasicStats, Position{})

	// Take non-lethal damage
	killed := enemy.TakeDamage(20)
	assert.False(t, killed)
	assert.Equal(t, 30, enemy.Health)

	// Take lethal damage
	killed = enemy.TakeDamage(30)
	assert.True(t, killed)
	assert.Equal(t, 0, enemy.Health)
}

func TestEnemy_IsAlive(t *testing.T) {
	enemy := NewEnemy("enemy-0", testBasicStats, Position{})
	assert.True(t, enemy.IsAlive())

	enemy.Health = 0
	assert.False(t, enemy.IsAlive())

	enemy.Health = -5
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_HealthRatio(t *testing.T) {
	enemy := NewEnemy("enemy-0", testBasicStats, Position{})
	assert.InDelta(t, 1.0, enemy.HealthRatio(), 1e-9)

	enemy.Health = 20
	assert.InDelta(t, 0.4, enemy.HealthRatio(), 1e-9)

	enemy.MaxHealth = 0
	assert.Equal(t, 0.0, enemy.HealthRatio())
}
