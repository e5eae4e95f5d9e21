package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/domain/entity"
)

func TestScheduleWave(t *testing.T) {
	wave := entity.Wave{Number: 2, Groups: []entity.SpawnGroup{
		{Type: entity.EnemyBasic, Count: 3, Interval: 800 * time.Millisecond},
		{Type: entity.EnemyFast, Count: 2, Interval: time.Second},
	}}

	entries := ScheduleWave(wave, 10*time.Second, 2*time.Second)

	assert.Equal(t, []SpawnEntry{
		{Type: entity.EnemyBasic, Due: 12 * time.Second},
		{Type: entity.EnemyBasic, Due: 12800 * time.Millisecond},
		{Type: entity.EnemyBasic, Due: 13600 * time.Millisecond},
		{Type: entity.EnemyFast, Due: 12 * time.Second},
		{Type: entity.EnemyFast, Due: 13 * time.Second},
	}, entries)
}

func TestSpawner(t *testing.T) {
	entries := []SpawnEntry{
		{Type: entity.EnemyBasic, Due: 2 * time.Second},
		{Type: entity.EnemyBasic, Due: 3 * time.Second},
		{Type: entity.EnemyFast, Due: 2 * time.Second},
	}

	t.Run("starts idle", func(t *testing.T) {
		s := NewSpawner()
		assert.True(t, s.CanStartWave(0))
		assert.False(t, s.CanStartWave(1), "enemies still alive")
		assert.False(t, s.InProgress())
	})

	t.Run("releases due entries in queue order", func(t *testing.T) {
		s := NewSpawner()
		s.Start(entries)
		require.True(t, s.InProgress())
		assert.False(t, s.CanStartWave(0))

		assert.Empty(t, s.Release(1900*time.Millisecond))
		assert.Equal(t, []entity.EnemyType{entity.EnemyBasic, entity.EnemyFast}, s.Release(2*time.Second))
		assert.Equal(t, 1, s.Pending())
		assert.True(t, s.InProgress())

		assert.Equal(t, []entity.EnemyType{entity.EnemyBasic}, s.Release(5*time.Second))
		assert.Equal(t, 0, s.Pending())
		assert.False(t, s.InProgress())
		assert.True(t, s.CanStartWave(0))
	})

	t.Run("late check releases everything overdue at once", func(t *testing.T) {
		s := NewSpawner()
		s.Start(entries)

		assert.Len(t, s.Release(time.Minute), 3)
		assert.False(t, s.InProgress())
	})

	t.Run("does not keep the caller's slice", func(t *testing.T) {
		own := append([]SpawnEntry(nil), entries...)
		s := NewSpawner()
		s.Start(own)
		s.Release(2 * time.Second)

		assert.Equal(t, entries, own)
	})

	t.Run("empty schedule leaves spawner idle", func(t *testing.T) {
		s := NewSpawner()
		s.Start(nil)
		assert.False(t, s.InProgress())
		assert.True(t, s.CanStartWave(0))
	})

	t.Run("reset", func(t *testing.T) {
		s := NewSpawner()
		s.Start(entries)
		s.Reset()

		assert.Equal(t, 0, s.Pending())
		assert.False(t, s.InProgress())
		assert.Nil(t, s.Release(time.Hour))
	})
}
