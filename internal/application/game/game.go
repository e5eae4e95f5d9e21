// Package game provides the ebiten loop manager: it owns the wall clock,
// frame counters and Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/td/internal/application/scene"
)

// DefaultMaxDelta caps the frame delta the manager reports.
const DefaultMaxDelta = 250 * time.Millisecond

// Timing is the manager's view of the clock after an update.
type Timing struct {
	Frame        uint64        // updates since start
	SceneFrame   uint64        // updates since the current scene was entered
	Delta        time.Duration // clamped gap to the previous update
	SceneElapsed time.Duration // wall time spent in the current scene
}

// Game implements ebiten.Game. Each Update reads the clock once, advances
// the counters and hands the same instant to the current scene.
type Game struct {
	current  scene.Scene
	screenW  int
	screenH  int
	clock    func() time.Time
	maxDelta time.Duration

	frame      uint64
	sceneFrame uint64
	last       time.Time
	entered    time.Time
	delta      time.Duration

	// OnTransition fires after the next scene's OnEnter, with the timing
	// the outgoing scene ended on.
	OnTransition func(from, to scene.Scene, ended Timing)
}

// New creates a Game and enters the initial scene.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current:  initialScene,
		screenW:  screenW,
		screenH:  screenH,
		clock:    time.Now,
		maxDelta: DefaultMaxDelta,
	}
	g.current.OnEnter()
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	now := g.clock()
	g.advance(now)

	next, err := g.current.Update(now)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next, now)
	}
	return nil
}

func (g *Game) advance(now time.Time) {
	g.delta = 0
	if !g.last.IsZero() {
		g.delta = max(now.Sub(g.last), 0)
		if g.maxDelta > 0 && g.delta > g.maxDelta {
			g.delta = g.maxDelta
		}
	}
	if g.entered.IsZero() {
		g.entered = now
	}
	g.last = now
	g.frame++
	g.sceneFrame++
}

// switchTo restarts the per-scene counters at now; the first update in
// the new scene reports the time since the switch.
func (g *Game) switchTo(next scene.Scene, now time.Time) {
	from, ended := g.current, g.Timing()

	from.OnExit()
	g.current = next
	g.current.OnEnter()

	g.entered = now
	g.sceneFrame = 0
	if g.OnTransition != nil {
		g.OnTransition(from, next, ended)
	}
}

// Timing reports the counters as of the last update.
func (g *Game) Timing() Timing {
	t := Timing{Frame: g.frame, SceneFrame: g.sceneFrame, Delta: g.delta}
	if !g.entered.IsZero() {
		t.SceneElapsed = g.last.Sub(g.entered)
	}
	return t
}

// SetClock replaces the wall clock passed to scenes.
// Useful for testing.
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
}

// SetMaxDelta sets the delta clamp; zero or less disables it.
func (g *Game) SetMaxDelta(d time.Duration) {
	g.maxDelta = d
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
