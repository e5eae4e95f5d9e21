package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/td/internal/domain/entity"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// InputSystem turns raw input into intents
type InputSystem struct {
	towers []entity.TowerType
}

// NewInputSystem creates an input system; towers is the shop order bound to keys 1..9
func NewInputSystem(towers []entity.TowerType) *InputSystem {
	return &InputSystem{towers: towers}
}

// InputState holds the input of one frame
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool
	RightClick bool
	Digit      int // 1..9 when a number key was pressed, else 0
	Cancel     bool
	Pause      bool
	Restart    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Cancel:     inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyDigit0),
		Pause:      inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart:    inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Digit = i + 1
			break
		}
	}
	return in
}

// Intents translates one frame of input into intents.
// Clicks left of fieldWidth target the grid; the sidebar is left to the caller.
func (s *InputSystem) Intents(in InputState, fieldWidth int) []Intent {
	var intents []Intent

	if in.Restart {
		intents = append(intents, RestartIntent{})
	}
	if in.Pause {
		intents = append(intents, TogglePauseIntent{})
	}
	if in.Cancel || in.RightClick {
		intents = append(intents, SelectTowerIntent{Type: entity.TowerNone})
	}
	if in.Digit > 0 && in.Digit <= len(s.towers) {
		intents = append(intents, SelectTowerIntent{Type: s.towers[in.Digit-1]})
	}
	if in.MouseClick && in.MouseX >= 0 && in.MouseX < fieldWidth {
		intents = append(intents, PlaceTowerIntent{X: float64(in.MouseX), Y: float64(in.MouseY)})
	}

	return intents
}
