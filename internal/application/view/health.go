package view

import "image/color"

// HealthBand classifies a health ratio for the enemy health bar
type HealthBand int

const (
	BandGreen HealthBand = iota
	BandYellow
	BandRed
)

// HealthBandOf returns green above one half, yellow above one quarter,
// red otherwise
func HealthBandOf(ratio float64) HealthBand {
	switch {
	case ratio > 0.5:
		return BandGreen
	case ratio > 0.25:
		return BandYellow
	default:
		return BandRed
	}
}

func (b HealthBand) String() string {
	switch b {
	case BandGreen:
		return "green"
	case BandYellow:
		return "yellow"
	default:
		return "red"
	}
}

// Color returns the bar colour of the band
func (b HealthBand) Color() color.RGBA {
	switch b {
	case BandGreen:
		return color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	case BandYellow:
		return color.RGBA{0xff, 0xc1, 0x07, 0xff}
	default:
		return color.RGBA{0xf4, 0x43, 0x36, 0xff}
	}
}

// BarWidth returns the filled width of a health bar, clamped to [0, full]
func BarWidth(ratio, full float64) float64 {
	switch {
	case ratio <= 0:
		return 0
	case ratio >= 1:
		return full
	default:
		return full * ratio
	}
}
