// Package title provides the title screen shown before play starts.
package title

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/td/internal/application/scene"
)

var (
	colorBG    = color.RGBA{30, 41, 59, 255}
	colorTitle = color.RGBA{250, 204, 21, 255}
	colorText  = color.RGBA{241, 245, 249, 255}
)

var controls = []string{
	"1-4      select a tower",
	"Click    place the selected tower",
	"Esc/0    cancel selection",
	"P/Space  pause or resume",
	"R        restart",
}

// Title is the title screen.
// It hands over to the scene built by next once the player starts.
type Title struct {
	screenW int
	screenH int
	next    func() scene.Scene
}

// New creates a title screen
func New(screenW, screenH int, next func() scene.Scene) *Title {
	return &Title{
		screenW: screenW,
		screenH: screenH,
		next:    next,
	}
}

// Update waits for Enter, Space or a click
func (t *Title) Update(time.Time) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return t.next(), nil
	}
	return nil, nil
}

// Draw renders the title and the controls
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	face := basicfont.Face7x13
	x := t.screenW/2 - 120
	y := t.screenH / 3

	text.Draw(screen, "TOWER DEFENSE", face, x, y, colorTitle)
	for i, line := range controls {
		text.Draw(screen, line, face, x, y+40+i*18, colorText)
	}
	text.Draw(screen, "Press Enter or click to start", face, x, y+60+len(controls)*18, colorTitle)
}

func (t *Title) OnEnter() {}

func (t *Title) OnExit() {}
