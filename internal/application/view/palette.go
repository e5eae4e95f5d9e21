package view

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/younwookim/td/internal/domain/entity"
)

// Board colours
var (
	ColorBuildable = color.RGBA{0x2d, 0x50, 0x16, 0xff}
	ColorPath      = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	ColorStart     = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	ColorEnd       = color.RGBA{0xf4, 0x43, 0x36, 0xff}
	ColorGridLine  = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}

	ColorProjectile       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	ColorProjectileBorder = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	ColorOutline          = color.RGBA{0x00, 0x00, 0x00, 0xff}

	// Translucent overlays, premultiplied
	ColorTowerRange    = color.RGBA{0x1a, 0x1a, 0x1a, 0x1a}
	ColorTargetLine    = color.RGBA{0x4d, 0x4d, 0x00, 0x4d}
	ColorPreviewRange  = color.RGBA{0x0f, 0x1d, 0x2d, 0x33}
	ColorPreviewBorder = color.RGBA{0x25, 0x48, 0x71, 0x80}
	ColorInvalid       = color.RGBA{0x60, 0x10, 0x10, 0x60}
)

// CellColor returns the fill colour of a cell type
func CellColor(t entity.CellType) color.RGBA {
	switch t {
	case entity.CellPath:
		return ColorPath
	case entity.CellStart:
		return ColorStart
	case entity.CellEnd:
		return ColorEnd
	default:
		return ColorBuildable
	}
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque colour
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHexColor is ParseHexColor for validated catalog colours; bad input
// yields magenta so it stands out on screen.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	}
	return c
}
