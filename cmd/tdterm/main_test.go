package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/td/internal/application/session"
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	s, err := session.New(config.Default())
	require.NoError(t, err)
	return newModel(s, 50*time.Millisecond)
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModel_PlaceTower(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, entity.GridPoint{X: 10, Y: 10}, m.cursor)

	// (10,10) is on the path; move to (9,9)
	m = press(m, "1", "enter")
	assert.Empty(t, m.sess.State().Towers)

	m = press(m, "up", "left", "enter")
	st := m.sess.State()
	require.Len(t, st.Towers, 1)
	assert.Equal(t, entity.GridPoint{X: 9, Y: 9}, st.Towers[0].Cell)
	assert.Equal(t, 150, st.Gold)
	assert.Contains(t, m.events.lines, "BASIC at (9,9)")
}

func TestModel_SelectAndCancel(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "2")
	assert.Equal(t, entity.TowerSniper, m.sess.State().Selected)
	m = press(m, "esc")
	assert.Equal(t, entity.TowerNone, m.sess.State().Selected)
	m = press(m, "9")
	assert.Equal(t, entity.TowerNone, m.sess.State().Selected, "no ninth tower")
}

func TestModel_CursorStaysOnGrid(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 30; i++ {
		m = press(m, "up", "left")
	}
	assert.Equal(t, entity.GridPoint{X: 0, Y: 0}, m.cursor)
}

func TestModel_StaleTicksDropped(t *testing.T) {
	m := newTestModel(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, cmd := m.Update(frameMsg{epoch: 0, at: now})
	assert.NotNil(t, cmd, "current ticks re-arm")
	_, _ = m.Update(frameMsg{epoch: 0, at: now.Add(50 * time.Millisecond)})
	assert.Equal(t, 50*time.Millisecond, m.sess.Clock())

	m = press(m, "r")
	require.Equal(t, uint64(1), m.sess.Generation())
	require.Equal(t, uint64(1), *m.epoch)

	_, cmd = m.Update(frameMsg{epoch: 0, at: now.Add(100 * time.Millisecond)})
	assert.Nil(t, cmd, "ticks from before the restart stop")
	_, cmd = m.Update(spawnMsg{epoch: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, time.Duration(0), m.sess.Clock())
	assert.Equal(t, 0, m.sess.CurrentWave().Number)

	_, cmd = m.Update(spawnMsg{epoch: 1})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.sess.CurrentWave().Number)
}

func TestModel_Pause(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "p")
	assert.Equal(t, state.StatusPaused, m.sess.State().Status)
	assert.Contains(t, m.View(), "PAUSED")

	m = press(m, " ")
	assert.Equal(t, state.StatusPlaying, m.sess.State().Status)
}

func TestModel_TicksStopWhilePaused(t *testing.T) {
	m := newTestModel(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	m = press(m, "p")
	require.Equal(t, state.StatusPaused, m.sess.State().Status)

	_, cmd := m.Update(frameMsg{epoch: 0, at: now})
	assert.Nil(t, cmd, "frame ticks stop while paused")
	_, cmd = m.Update(spawnMsg{epoch: 0})
	assert.Nil(t, cmd, "spawn checks stop while paused")
	assert.Equal(t, 0, m.sess.CurrentWave().Number)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = next.(model)
	require.Equal(t, state.StatusPlaying, m.sess.State().Status)
	assert.NotNil(t, cmd, "resume starts a new tick chain")

	_, cmd = m.Update(frameMsg{epoch: 1, at: now})
	assert.NotNil(t, cmd)
	_, cmd = m.Update(spawnMsg{epoch: 1})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.sess.CurrentWave().Number)

	_, cmd = m.Update(frameMsg{epoch: 0, at: now.Add(50 * time.Millisecond)})
	assert.Nil(t, cmd, "the chain from before the pause does not double up")
}

func TestModel_PauseKeyWhilePlayingSchedulesNothing(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(0), *m.epoch)
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	assert.Contains(t, out, "TOWER DEFENSE")
	assert.Contains(t, out, "Gold:   200")
	assert.Contains(t, out, "Basic Tower")
	assert.Contains(t, out, "Laser Tower")
}
