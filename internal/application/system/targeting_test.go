package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/domain/entity"
)

func TestFindTarget(t *testing.T) {
	// BASIC reaches 3 cells = 96px from (80,16)
	tower := entity.Tower{Position: entity.Position{X: 80, Y: 16}, Range: 3}

	t.Run("no enemies", func(t *testing.T) {
		_, ok := FindTarget(tower, nil, 32)
		assert.False(t, ok)
	})

	t.Run("furthest along the route wins", func(t *testing.T) {
		enemies := []entity.Enemy{
			{ID: "enemy-0", PathIndex: 1, Position: entity.Position{X: 48, Y: 48}},
			{ID: "enemy-1", PathIndex: 3, Position: entity.Position{X: 112, Y: 48}},
			{ID: "enemy-2", PathIndex: 2, Position: entity.Position{X: 80, Y: 48}},
			{ID: "enemy-3", PathIndex: 9, Position: entity.Position{X: 400, Y: 400}},
		}

		target, ok := FindTarget(tower, enemies, 32)
		require.True(t, ok)
		assert.Equal(t, entity.EntityID("enemy-1"), target.ID)
	})

	t.Run("ties keep the first found", func(t *testing.T) {
		enemies := []entity.Enemy{
			{ID: "enemy-4", PathIndex: 2, Position: entity.Position{X: 60, Y: 48}},
			{ID: "enemy-5", PathIndex: 2, Position: entity.Position{X: 80, Y: 48}},
		}

		target, ok := FindTarget(tower, enemies, 32)
		require.True(t, ok)
		assert.Equal(t, entity.EntityID("enemy-4"), target.ID)
	})

	t.Run("range boundary is inclusive", func(t *testing.T) {
		enemies := []entity.Enemy{{ID: "enemy-6", Position: entity.Position{X: 176, Y: 16}}}

		_, ok := FindTarget(tower, enemies, 32)
		assert.True(t, ok, "exactly 96px away")

		enemies[0].Position.X = 176.5
		_, ok = FindTarget(tower, enemies, 32)
		assert.False(t, ok)
	})
}
