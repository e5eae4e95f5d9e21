package system

import (
	"time"

	"github.com/younwookim/td/internal/domain/entity"
)

// SpawnEntry is one pending enemy and the game time it becomes due
type SpawnEntry struct {
	Type entity.EnemyType
	Due  time.Duration
}

// ScheduleWave expands a wave into spawn entries.
// Each group is expanded on its own: the i-th enemy of a group is due at
// start + delay + i*interval, so groups interleave in time.
func ScheduleWave(wave entity.Wave, start, delay time.Duration) []SpawnEntry {
	entries := make([]SpawnEntry, 0, wave.TotalEnemies())
	for _, grp := range wave.Groups {
		for i := 0; i < grp.Count; i++ {
			entries = append(entries, SpawnEntry{
				Type: grp.Type,
				Due:  start + delay + time.Duration(i)*grp.Interval,
			})
		}
	}
	return entries
}

// Spawner owns the spawn queue and the wave-in-progress flag
type Spawner struct {
	queue      []SpawnEntry
	inProgress bool
}

// NewSpawner creates an idle spawner
func NewSpawner() *Spawner {
	return &Spawner{}
}

// CanStartWave reports whether the previous wave is finished:
// nothing alive on the field, nothing queued, no wave in progress.
func (s *Spawner) CanStartWave(liveEnemies int) bool {
	return liveEnemies == 0 && len(s.queue) == 0 && !s.inProgress
}

// Start queues the entries of a new wave.
// An empty schedule leaves the spawner idle.
func (s *Spawner) Start(entries []SpawnEntry) {
	s.queue = append(s.queue[:0], entries...)
	s.inProgress = len(s.queue) > 0
}

// Release removes every entry that is due at now and returns their types
// in queue order. The wave stops being in progress once the queue drains.
func (s *Spawner) Release(now time.Duration) []entity.EnemyType {
	if len(s.queue) == 0 {
		return nil
	}

	var due []entity.EnemyType
	kept := s.queue[:0]
	for _, e := range s.queue {
		if now >= e.Due {
			due = append(due, e.Type)
			continue
		}
		kept = append(kept, e)
	}
	s.queue = kept

	if len(due) > 0 && len(s.queue) == 0 {
		s.inProgress = false
	}
	return due
}

// Pending returns the number of queued entries
func (s *Spawner) Pending() int {
	return len(s.queue)
}

// InProgress reports whether a wave is still spawning
func (s *Spawner) InProgress() bool {
	return s.inProgress
}

// Reset drops the queue and clears the in-progress flag
func (s *Spawner) Reset() {
	s.queue = nil
	s.inProgress = false
}
