package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/domain/entity"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusPlaying, "PLAYING"},
		{StatusPaused, "PAUSED"},
		{StatusGameOver, "GAME_OVER"},
		{StatusWon, "WON"},
		{Status(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Status(0), StatusPlaying)
	assert.Equal(t, Status(1), StatusPaused)
	assert.Equal(t, Status(2), StatusGameOver)
	assert.Equal(t, Status(3), StatusWon)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPlaying.IsTerminal())
	assert.False(t, StatusPaused.IsTerminal())
	assert.True(t, StatusGameOver.IsTerminal())
	assert.True(t, StatusWon.IsTerminal())
}

func TestNew(t *testing.T) {
	s := New(20, 200)

	assert.Equal(t, 20, s.Health)
	assert.Equal(t, 200, s.Gold)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, entity.TowerNone, s.Selected)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Towers)
	assert.Empty(t, s.Projectiles)
}

func TestGameState_Clone(t *testing.T) {
	s := New(20, 200)
	s.Enemies = append(s.Enemies, entity.Enemy{ID: "enemy-0", Health: 50})
	s.Towers = append(s.Towers, entity.Tower{ID: "tower-0"})
	s.Projectiles = append(s.Projectiles, entity.Projectile{ID: "proj-0"})

	c := s.Clone()
	require.Equal(t, s, c)

	c.Enemies[0].Health = 1
	c.Towers[0].TargetID = "enemy-0"
	c.Projectiles[0].Damage = 99
	c.Gold = 0

	assert.Equal(t, 50, s.Enemies[0].Health, "clone must not alias enemies")
	assert.Equal(t, entity.NoEntity, s.Towers[0].TargetID, "clone must not alias towers")
	assert.Equal(t, 0, s.Projectiles[0].Damage, "clone must not alias projectiles")
	assert.Equal(t, 200, s.Gold)
}

func TestGameState_FindEnemy(t *testing.T) {
	s := New(20, 200)
	s.Enemies = []entity.Enemy{{ID: "enemy-0"}, {ID: "enemy-1", Health: 7}}

	e, ok := s.FindEnemy("enemy-1")
	require.True(t, ok)
	assert.Equal(t, 7, e.Health)

	_, ok = s.FindEnemy("enemy-9")
	assert.False(t, ok)

	_, ok = s.FindEnemy(entity.NoEntity)
	assert.False(t, ok)
}

func TestGameState_TowerAt(t *testing.T) {
	s := New(20, 200)
	s.Towers = []entity.Tower{{ID: "tower-0", Cell: entity.GridPoint{X: 3, Y: 4}}}

	tower, ok := s.TowerAt(entity.GridPoint{X: 3, Y: 4})
	require.True(t, ok)
	assert.Equal(t, entity.EntityID("tower-0"), tower.ID)

	_, ok = s.TowerAt(entity.GridPoint{X: 4, Y: 3})
	assert.False(t, ok)
}
