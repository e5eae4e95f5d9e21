package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
)

// Runner drives a Session from one goroutine without a window: a frame
// ticker, a spawn-check ticker and an intent channel. Other goroutines
// submit intents and read the latest published state.
//
// Both tickers run only while the session is PLAYING and are recreated on
// every restart, so ticks scheduled for an earlier session never reach the
// new one.
type Runner struct {
	session    *Session
	frameEvery time.Duration
	spawnEvery time.Duration
	intents    chan system.Intent
	current    atomic.Pointer[state.GameState]
}

// NewRunner creates a runner that ticks the session every frameEvery
func NewRunner(s *Session, frameEvery time.Duration) *Runner {
	r := &Runner{
		session:    s,
		frameEvery: frameEvery,
		spawnEvery: ms(s.cfg.Game.Rules.SpawnCheckIntervalMs),
		intents:    make(chan system.Intent, 16),
	}
	r.current.Store(s.State())
	return r
}

// State returns the most recently published state
func (r *Runner) State() *state.GameState {
	return r.current.Load()
}

// Submit queues an intent for the run loop
func (r *Runner) Submit(ctx context.Context, intent system.Intent) error {
	select {
	case r.intents <- intent:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the session until ctx ends and returns ctx.Err()
func (r *Runner) Run(ctx context.Context) error {
	var frames, spawns *time.Ticker
	stop := func() {
		if frames != nil {
			frames.Stop()
			spawns.Stop()
			frames, spawns = nil, nil
		}
	}
	arm := func() {
		if r.session.State().Status != state.StatusPlaying {
			stop()
			return
		}
		if frames == nil {
			frames = time.NewTicker(r.frameEvery)
			spawns = time.NewTicker(r.spawnEvery)
		}
	}
	defer stop()

	generation := r.session.Generation()
	arm()

	for {
		var frameC, spawnC <-chan time.Time
		if frames != nil {
			frameC, spawnC = frames.C, spawns.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case intent := <-r.intents:
			r.session.Apply(intent)
			if g := r.session.Generation(); g != generation {
				stop()
				generation = g
			}

		case now := <-frameC:
			r.session.Frame(now)

		case <-spawnC:
			r.session.SpawnCheck()
		}

		arm()
		r.current.Store(r.session.State())
	}
}
