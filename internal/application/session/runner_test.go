package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/domain/entity"
)

func TestRunner(t *testing.T) {
	cfg := createTestConfig()
	cfg.Game.Rules.WaveStartDelayMs = 0
	cfg.Game.Rules.SpawnCheckIntervalMs = 5
	s := newTestSession(t, cfg)

	r := NewRunner(s, 5*time.Millisecond)
	assert.Same(t, s.State(), r.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.NoError(t, r.Submit(ctx, system.SelectTowerIntent{Type: entity.TowerBasic}))
	require.NoError(t, r.Submit(ctx, system.PlaceTowerIntent{X: 16, Y: 16}))
	require.Eventually(t, func() bool {
		return len(r.State().Towers) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 150, r.State().Gold)

	require.Eventually(t, func() bool {
		return len(r.State().Enemies) > 0
	}, 2*time.Second, 5*time.Millisecond, "wave 1 spawns")

	require.NoError(t, r.Submit(ctx, system.TogglePauseIntent{}))
	require.Eventually(t, func() bool {
		return r.State().Status == state.StatusPaused
	}, time.Second, 5*time.Millisecond)

	paused := r.State()
	time.Sleep(50 * time.Millisecond)
	assert.Same(t, paused, r.State(), "nothing ticks while paused")

	require.NoError(t, r.Submit(ctx, system.RestartIntent{}))
	require.Eventually(t, func() bool {
		st := r.State()
		return st.Status == state.StatusPlaying && len(st.Towers) == 0 && st.Gold == 200
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunner_SubmitCancelled(t *testing.T) {
	s := newTestSession(t, createTestConfig())
	r := NewRunner(s, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Fill the buffer; nothing drains it without Run
	var err error
	for i := 0; i < 32 && err == nil; i++ {
		err = r.Submit(ctx, system.TogglePauseIntent{})
	}
	assert.ErrorIs(t, err, context.Canceled)
}
