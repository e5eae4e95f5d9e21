// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/td/internal/application/replay"
	"github.com/younwookim/td/internal/application/scene"
	"github.com/younwookim/td/internal/application/session"
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/application/view"
	"github.com/younwookim/td/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{30, 41, 59, 255}
	colorPanel     = color.RGBA{51, 65, 85, 255}
	colorPanelDim  = color.RGBA{30, 35, 45, 255}
	colorSelected  = color.RGBA{250, 204, 21, 255}
	colorText      = color.RGBA{241, 245, 249, 255}
	colorTextDim   = color.RGBA{148, 163, 184, 255}
	colorGold      = color.RGBA{250, 204, 21, 255}
	colorButton    = color.RGBA{37, 99, 235, 255}
	colorRestart   = color.RGBA{22, 163, 74, 255}
	colorPauseBG   = color.RGBA{0, 0, 0, 160}
	colorGameOver  = color.RGBA{80, 0, 0, 200}
	colorVictoryBG = color.RGBA{0, 50, 20, 200}
)

const (
	enemyRadius     = 12
	projectileSize  = 4
	healthBarWidth  = 24
	healthBarHeight = 4
	towerInset      = 4

	shopTop        = 130
	shopItemHeight = 76
	shopItemGap    = 8
	panelPadding   = 10
	buttonHeight   = 32
)

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	input    *system.InputSystem
	face     font.Face
	recorder *replay.Recorder

	screenW  int
	screenH  int
	fieldW   int
	fieldH   int
	sidebarX int
	sidebarW int

	spawnEvery     time.Duration
	lastSpawnCheck time.Time
	generation     uint64

	mouseX int
	mouseY int
}

// New creates a new Playing scene over a session
func New(s *session.Session) *Playing {
	cfg := s.Config()
	grid := s.Grid()
	fieldW := grid.Width * grid.CellSize
	fieldH := grid.Height * grid.CellSize
	sidebarW := cfg.Game.Display.SidebarWidth

	return &Playing{
		session:    s,
		input:      system.NewInputSystem(s.Catalog().TowerTypes()),
		face:       basicfont.Face7x13,
		screenW:    fieldW + sidebarW,
		screenH:    max(fieldH, cfg.Game.Display.ScreenHeight),
		fieldW:     fieldW,
		fieldH:     fieldH,
		sidebarX:   fieldW,
		sidebarW:   sidebarW,
		spawnEvery: time.Duration(cfg.Game.Rules.SpawnCheckIntervalMs) * time.Millisecond,
		generation: s.Generation(),
		mouseX:     -1,
		mouseY:     -1,
	}
}

// SetRecorder records every accepted intent to r
func (p *Playing) SetRecorder(r *replay.Recorder) {
	p.recorder = r
}

// Size returns the screen size the scene lays itself out for
func (p *Playing) Size() (int, int) {
	return p.screenW, p.screenH
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(now time.Time) (scene.Scene, error) {
	p.handleInput(p.input.GetInput())
	p.step(now)
	if p.recorder != nil {
		p.recorder.NextFrame()
	}
	return nil, nil // nil = stay on this scene
}

// handleInput applies one frame of input to the session
func (p *Playing) handleInput(in system.InputState) {
	p.mouseX, p.mouseY = in.MouseX, in.MouseY

	for _, intent := range p.input.Intents(in, p.fieldW) {
		p.apply(intent)
	}

	if !in.MouseClick || in.MouseX < p.sidebarX {
		return
	}
	pt := image.Pt(in.MouseX, in.MouseY)
	switch {
	case pt.In(p.pauseButtonRect()):
		p.apply(system.TogglePauseIntent{})
	case pt.In(p.restartButtonRect()):
		p.apply(system.RestartIntent{})
	default:
		if i := p.shopIndexAt(in.MouseX, in.MouseY); i >= 0 {
			entries := view.Shop(p.session.Catalog(), p.session.State())
			if e := entries[i]; e.Affordable || e.Selected {
				p.apply(system.SelectTowerIntent{Type: e.Toggle()})
			}
		}
	}
}

func (p *Playing) apply(intent system.Intent) {
	if p.session.Apply(intent) && p.recorder != nil {
		p.recorder.Record(intent)
	}
}

// step runs the frame tick and, every spawn interval, the spawn check
func (p *Playing) step(now time.Time) {
	if g := p.session.Generation(); g != p.generation {
		p.generation = g
		p.lastSpawnCheck = time.Time{}
	}
	if p.session.State().Status != state.StatusPlaying {
		p.session.Frame(now)
		p.lastSpawnCheck = time.Time{}
		return
	}

	p.session.Frame(now)
	if p.lastSpawnCheck.IsZero() || now.Sub(p.lastSpawnCheck) >= p.spawnEvery {
		p.lastSpawnCheck = now
		p.session.SpawnCheck()
	}
}

// shopIndexAt returns the shop entry under (x, y), or -1
func (p *Playing) shopIndexAt(x, y int) int {
	pt := image.Pt(x, y)
	for i := range p.session.Catalog().TowerTypes() {
		if pt.In(p.shopEntryRect(i)) {
			return i
		}
	}
	return -1
}

func (p *Playing) shopEntryRect(i int) image.Rectangle {
	x := p.sidebarX + panelPadding
	y := shopTop + i*(shopItemHeight+shopItemGap)
	return image.Rect(x, y, p.sidebarX+p.sidebarW-panelPadding, y+shopItemHeight)
}

func (p *Playing) pauseButtonRect() image.Rectangle {
	x := p.sidebarX + panelPadding
	y := p.screenH - panelPadding - buttonHeight
	w := (p.sidebarW - 3*panelPadding) / 2
	return image.Rect(x, y, x+w, y+buttonHeight)
}

func (p *Playing) restartButtonRect() image.Rectangle {
	pause := p.pauseButtonRect()
	x := pause.Max.X + panelPadding
	return image.Rect(x, pause.Min.Y, x+pause.Dx(), pause.Max.Y)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	st := p.session.State()
	p.drawField(screen)
	p.drawTowerRanges(screen, st)
	p.drawPreview(screen, st)
	p.drawTowers(screen, st)
	p.drawProjectiles(screen, st)
	p.drawEnemies(screen, st)
	p.drawSidebar(screen, st)

	switch st.Status {
	case state.StatusPaused:
		p.drawPauseOverlay(screen)
	case state.StatusGameOver:
		p.drawEndOverlay(screen, st, "GAME OVER", colorGameOver)
	case state.StatusWon:
		p.drawEndOverlay(screen, st, "VICTORY", colorVictoryBG)
	}
}

func (p *Playing) drawField(screen *ebiten.Image) {
	grid := p.session.Grid()
	size := float32(grid.CellSize)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell, _ := grid.CellAt(x, y)
			px := float32(x) * size
			py := float32(y) * size
			vector.DrawFilledRect(screen, px, py, size, size, view.CellColor(cell.Type), false)
			vector.StrokeRect(screen, px, py, size, size, 1, view.ColorGridLine, false)
		}
	}
}

func (p *Playing) drawTowerRanges(screen *ebiten.Image, st *state.GameState) {
	cellSize := p.session.Grid().CellSize
	for _, t := range st.Towers {
		vector.StrokeCircle(screen, float32(t.Position.X), float32(t.Position.Y),
			float32(t.RangePixels(cellSize)), 1, view.ColorTowerRange, true)
	}
}

func (p *Playing) drawPreview(screen *ebiten.Image, st *state.GameState) {
	preview, ok := view.PreviewAt(st, p.session.Grid(), p.session.Catalog(), float64(p.mouseX), float64(p.mouseY))
	if !ok {
		return
	}
	cx, cy := float32(preview.Center.X), float32(preview.Center.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(preview.Range), view.ColorPreviewRange, true)
	vector.StrokeCircle(screen, cx, cy, float32(preview.Range), 2, view.ColorPreviewBorder, true)

	stats, _ := p.session.Catalog().Tower(preview.Type)
	size := float32(p.session.Grid().CellSize - 2*towerInset)
	ghost := fade(view.MustHexColor(stats.Color), 0.6)
	if !preview.Valid {
		ghost = view.ColorInvalid
	}
	vector.DrawFilledRect(screen, cx-size/2, cy-size/2, size, size, ghost, false)
}

func (p *Playing) drawTowers(screen *ebiten.Image, st *state.GameState) {
	size := float32(p.session.Grid().CellSize - 2*towerInset)
	for _, t := range st.Towers {
		stats, _ := p.session.Catalog().Tower(t.Type)
		x := float32(t.Position.X) - size/2
		y := float32(t.Position.Y) - size/2
		vector.DrawFilledRect(screen, x, y, size, size, view.MustHexColor(stats.Color), false)
		vector.StrokeRect(screen, x, y, size, size, 2, view.ColorOutline, false)

		if target, ok := st.FindEnemy(t.TargetID); ok {
			vector.StrokeLine(screen,
				float32(t.Position.X), float32(t.Position.Y),
				float32(target.Position.X), float32(target.Position.Y),
				1, view.ColorTargetLine, true)
		}
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, st *state.GameState) {
	for _, pr := range st.Projectiles {
		x, y := float32(pr.Position.X), float32(pr.Position.Y)
		vector.DrawFilledCircle(screen, x, y, projectileSize, view.ColorProjectile, true)
		vector.StrokeCircle(screen, x, y, projectileSize, 1, view.ColorProjectileBorder, true)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, st *state.GameState) {
	for _, e := range st.Enemies {
		stats, _ := p.session.Catalog().Enemy(e.Type)
		x, y := float32(e.Position.X), float32(e.Position.Y)
		vector.DrawFilledCircle(screen, x, y, enemyRadius, view.MustHexColor(stats.Color), true)
		vector.StrokeCircle(screen, x, y, enemyRadius, 2, view.ColorOutline, true)

		// Health bar
		ratio := e.HealthRatio()
		barX := x - healthBarWidth/2
		barY := y - enemyRadius - 8
		vector.DrawFilledRect(screen, barX, barY, healthBarWidth, healthBarHeight, view.ColorOutline, false)
		vector.DrawFilledRect(screen, barX, barY, float32(view.BarWidth(ratio, healthBarWidth)), healthBarHeight,
			view.HealthBandOf(ratio).Color(), false)
	}
}

func (p *Playing) drawSidebar(screen *ebiten.Image, st *state.GameState) {
	x := float32(p.sidebarX)
	vector.DrawFilledRect(screen, x, 0, float32(p.sidebarW), float32(p.screenH), colorPanelDim, false)

	tx := p.sidebarX + panelPadding
	text.Draw(screen, "TOWER DEFENSE", p.face, tx, 24, colorText)
	text.Draw(screen, fmt.Sprintf("Health %d", st.Health), p.face, tx, 52, colorText)
	text.Draw(screen, fmt.Sprintf("Gold   %d", st.Gold), p.face, tx, 70, colorGold)
	text.Draw(screen, fmt.Sprintf("Wave   %d", st.Wave), p.face, tx, 88, colorText)
	text.Draw(screen, fmt.Sprintf("Score  %d", st.Score), p.face, tx, 106, colorText)

	for i, e := range view.Shop(p.session.Catalog(), st) {
		p.drawShopEntry(screen, p.shopEntryRect(i), e)
	}

	if st.Selected != entity.TowerNone {
		hintY := shopTop + len(p.session.Catalog().TowerTypes())*(shopItemHeight+shopItemGap) + 14
		text.Draw(screen, "Click a green tile", p.face, tx, hintY, colorTextDim)
		text.Draw(screen, "to place your tower", p.face, tx, hintY+16, colorTextDim)
	}

	pauseLabel := "Pause"
	if st.Status == state.StatusPaused {
		pauseLabel = "Resume"
	}
	p.drawButton(screen, p.pauseButtonRect(), pauseLabel, colorButton)
	p.drawButton(screen, p.restartButtonRect(), "Restart", colorRestart)
}

func (p *Playing) drawShopEntry(screen *ebiten.Image, r image.Rectangle, e view.ShopEntry) {
	bg := colorPanel
	fg := colorText
	if !e.Affordable {
		bg = colorPanelDim
		fg = colorTextDim
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.DrawFilledRect(screen, x, y, 6, h, view.MustHexColor(e.Color), false)
	if e.Selected {
		vector.StrokeRect(screen, x, y, w, h, 3, colorSelected, false)
	}

	tx := r.Min.X + 14
	text.Draw(screen, fmt.Sprintf("[%d] %s", e.Key, e.Name), p.face, tx, r.Min.Y+18, fg)
	text.Draw(screen, fmt.Sprintf("Cost %d", e.Cost), p.face, tx, r.Min.Y+36, colorGold)
	text.Draw(screen, fmt.Sprintf("Dmg %d  Rng %.0f", e.Damage, e.Range), p.face, tx, r.Min.Y+52, fg)
	text.Draw(screen, fmt.Sprintf("Rate %.1f/s", e.ShotsPerSec), p.face, tx, r.Min.Y+68, fg)
}

func (p *Playing) drawButton(screen *ebiten.Image, r image.Rectangle, label string, c color.RGBA) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	textX := r.Min.X + (r.Dx()-len(label)*7)/2
	text.Draw(screen, label, p.face, textX, r.Min.Y+21, colorText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.fieldW), float32(p.fieldH), colorPauseBG, false)

	msg := "PAUSED\n\nPress P or Space to resume"
	ebitenutil.DebugPrintAt(screen, msg, p.fieldW/2-80, p.fieldH/2-20)
}

func (p *Playing) drawEndOverlay(screen *ebiten.Image, st *state.GameState, title string, bg color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.fieldW), float32(p.fieldH), bg, false)

	msg := fmt.Sprintf("%s\n\nFinal score: %d\nWaves survived: %d\n\nPress R to play again",
		title, st.Score, view.WavesSurvived(st))
	ebitenutil.DebugPrintAt(screen, msg, p.fieldW/2-70, p.fieldH/2-40)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.lastSpawnCheck = time.Time{}
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {}

// fade scales an opaque colour to alpha a, premultiplied
func fade(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
