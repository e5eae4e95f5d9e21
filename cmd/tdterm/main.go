package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/younwookim/td/internal/application/session"
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/application/view"
	"github.com/younwookim/td/internal/domain/entity"
	"github.com/younwookim/td/internal/infrastructure/config"
)

const maxLogs = 10

// frameMsg and spawnMsg carry the tick epoch they were scheduled for.
// Restart and resume start a new epoch, so older chains die out.
type frameMsg struct {
	epoch uint64
	at    time.Time
}

type spawnMsg struct {
	epoch uint64
}

func frameCmd(epoch uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg{epoch: epoch, at: t} })
}

func spawnCmd(epoch uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return spawnMsg{epoch: epoch} })
}

// eventLog collects session events for the sidebar
type eventLog struct {
	lines []string
}

func (l *eventLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > maxLogs {
		l.lines = l.lines[len(l.lines)-maxLogs:]
	}
	log.Printf(format, args...)
}

type model struct {
	sess       *session.Session
	events     *eventLog
	cursor     entity.GridPoint
	frameEvery time.Duration
	spawnEvery time.Duration

	// epoch is shared by the value copies bubbletea passes around
	epoch *uint64
}

func newModel(s *session.Session, frameEvery time.Duration) model {
	events := &eventLog{}
	s.OnWaveStarted = func(w entity.Wave) {
		events.add("Wave %d: %d enemies", w.Number, w.TotalEnemies())
	}
	s.OnWaveCleared = func(w entity.Wave) {
		events.add("Wave %d cleared", w.Number)
	}
	s.OnEnemyLeaked = func(e entity.Enemy) {
		events.add("%s leaked", e.Type)
	}
	s.OnTowerPlaced = func(t entity.Tower) {
		events.add("%s at (%d,%d)", t.Type, t.Cell.X, t.Cell.Y)
	}
	s.OnStatusChanged = func(from, to state.Status) {
		events.add("%s -> %s", from, to)
	}

	g := s.Grid()
	return model{
		sess:       s,
		events:     events,
		cursor:     entity.GridPoint{X: g.Width / 2, Y: g.Height / 2},
		frameEvery: frameEvery,
		spawnEvery: time.Duration(s.Config().Game.Rules.SpawnCheckIntervalMs) * time.Millisecond,
		epoch:      new(uint64),
	}
}

func (m model) ticks() tea.Cmd {
	e := *m.epoch
	return tea.Batch(frameCmd(e, m.frameEvery), spawnCmd(e, m.spawnEvery))
}

// rearm abandons the running tick chain and starts a fresh one
func (m model) rearm() tea.Cmd {
	*m.epoch++
	return m.ticks()
}

// live reports whether a tick from epoch e should run and reschedule.
// Ticks stop while paused and after the game ends.
func (m model) live(e uint64) bool {
	return e == *m.epoch && m.sess.State().Status == state.StatusPlaying
}

func (m model) Init() tea.Cmd {
	return m.ticks()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.live(msg.epoch) {
			return m, nil
		}
		m.sess.Frame(msg.at)
		if m.sess.State().Status != state.StatusPlaying {
			return m, nil
		}
		return m, frameCmd(msg.epoch, m.frameEvery)

	case spawnMsg:
		if !m.live(msg.epoch) {
			return m, nil
		}
		m.sess.SpawnCheck()
		return m, spawnCmd(msg.epoch, m.spawnEvery)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.sess.Grid()
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.sess.Apply(system.RestartIntent{})
		return m, m.rearm()
	case "p", " ":
		if m.sess.Apply(system.TogglePauseIntent{}) && m.sess.State().Status == state.StatusPlaying {
			return m, m.rearm()
		}
	case "esc", "0":
		m.sess.Apply(system.SelectTowerIntent{Type: entity.TowerNone})
	case "enter":
		c := g.Center(m.cursor)
		m.sess.Apply(system.PlaceTowerIntent{X: c.X, Y: c.Y})
	case "up", "k":
		m.cursor.Y = max(0, m.cursor.Y-1)
	case "down", "j":
		m.cursor.Y = min(g.Height-1, m.cursor.Y+1)
	case "left", "h":
		m.cursor.X = max(0, m.cursor.X-1)
	case "right", "l":
		m.cursor.X = min(g.Width-1, m.cursor.X+1)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			types := m.sess.Catalog().TowerTypes()
			if i := int(key[0] - '1'); i < len(types) {
				m.sess.Apply(system.SelectTowerIntent{Type: types[i]})
			}
		}
	}
	return m, nil
}

// ---- lipgloss styles ----
var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(view.ColorPath)))
	startStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(view.ColorStart))).Bold(true)
	endStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(view.ColorEnd))).Bold(true)
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorOK     = lipgloss.NewStyle().Background(lipgloss.Color("28"))
	cursorBad    = lipgloss.NewStyle().Background(lipgloss.Color("124"))
	cursorIdle   = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	uiBorder     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(30).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func hexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// cellGlyph renders one grid cell two columns wide
func (m model) cellGlyph(st *state.GameState, cell entity.Cell, enemies map[entity.GridPoint]entity.Enemy) string {
	p := entity.GridPoint{X: cell.X, Y: cell.Y}

	if t, ok := st.TowerAt(p); ok {
		stats, _ := m.sess.Catalog().Tower(t.Type)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(stats.Color)).Bold(true)
		return style.Render(string(t.Type[0]) + " ")
	}
	if e, ok := enemies[p]; ok {
		band := view.HealthBandOf(e.HealthRatio())
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(band.Color())))
		return style.Render(strings.ToLower(string(e.Type[0])) + " ")
	}

	switch cell.Type {
	case entity.CellStart:
		return startStyle.Render("S ")
	case entity.CellEnd:
		return endStyle.Render("E ")
	case entity.CellPath:
		return pathStyle.Render(". ")
	default:
		return fieldStyle.Render("· ")
	}
}

func (m model) cursorStyle(st *state.GameState) lipgloss.Style {
	if st.Selected == entity.TowerNone {
		return cursorIdle
	}
	c := m.sess.Grid().Center(m.cursor)
	preview, ok := view.PreviewAt(st, m.sess.Grid(), m.sess.Catalog(), c.X, c.Y)
	if ok && preview.Valid {
		return cursorOK
	}
	return cursorBad
}

func (m model) View() string {
	st := m.sess.State()
	g := m.sess.Grid()

	enemies := make(map[entity.GridPoint]entity.Enemy, len(st.Enemies))
	for _, e := range st.Enemies {
		enemies[g.PixelToGrid(e.Position.X, e.Position.Y)] = e
	}

	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		var b strings.Builder
		for x := 0; x < g.Width; x++ {
			cell, _ := g.CellAt(x, y)
			glyph := m.cellGlyph(st, cell, enemies)
			if x == m.cursor.X && y == m.cursor.Y {
				glyph = m.cursorStyle(st).Render(glyph)
			}
			b.WriteString(glyph)
		}
		rows[y] = b.String()
	}
	mapView := uiBorder.Render(strings.Join(rows, "\n"))

	info := []string{
		titleStyle.Render("TOWER DEFENSE"),
		fmt.Sprintf("Health: %d", st.Health),
		fmt.Sprintf("Gold:   %d", st.Gold),
		fmt.Sprintf("Wave:   %d", st.Wave),
		fmt.Sprintf("Score:  %d", st.Score),
		"",
	}
	for _, e := range view.Shop(m.sess.Catalog(), st) {
		line := fmt.Sprintf("[%d] %-13s %4dg", e.Key, e.Name, e.Cost)
		switch {
		case e.Selected:
			line = titleStyle.Render("> " + line)
		case !e.Affordable:
			line = dimStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		info = append(info, line)
	}
	info = append(info, "", "Events:")
	info = append(info, m.events.lines...)
	sidebar := sidebarStyle.Render(strings.Join(info, "\n"))

	ui := lipgloss.JoinHorizontal(lipgloss.Top, mapView, sidebar)

	footer := "1-9 select | arrows move | enter place | esc cancel | p pause | r restart | q quit"
	switch st.Status {
	case state.StatusPaused:
		footer = bannerStyle.Render("PAUSED") + " | " + footer
	case state.StatusGameOver:
		footer = bannerStyle.Render(fmt.Sprintf("GAME OVER | score %d | waves survived %d | r to play again",
			st.Score, view.WavesSurvived(st)))
	case state.StatusWon:
		footer = titleStyle.Render(fmt.Sprintf("VICTORY | score %d | r to play again", st.Score))
	}
	return lipgloss.JoinVertical(lipgloss.Left, ui, footer)
}

func loadConfig() (*config.GameConfig, error) {
	cfg := config.Default()
	if dir := os.Getenv(config.EnvConfigDir); dir != "" {
		loaded, err := config.NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	frameEvery := flag.Duration("frame", 50*time.Millisecond, "simulation frame interval")
	logFile := flag.String("log", "", "write event log to file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	// The alt screen owns the terminal; events go to the sidebar and the log file
	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "tdterm")
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(sess, *frameEvery), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tdterm: %v\n", err)
		os.Exit(1)
	}
}
