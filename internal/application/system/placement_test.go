package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/td/internal/domain/entity"
)

func TestCanPlace(t *testing.T) {
	w := newTestWorld(t)
	occupied := []entity.Tower{{ID: "tower-0", Cell: entity.GridPoint{X: 2, Y: 0}}}

	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"buildable cell", 10, 10, true},
		{"buildable cell far corner", 159, 95, true},
		{"start cell", 16, 48, false},
		{"path cell", 48, 48, false},
		{"end cell", 144, 48, false},
		{"occupied cell", 70, 5, false},
		{"left of grid", -1, 10, false},
		{"above grid", 10, -0.5, false},
		{"right of grid", 160, 10, false},
		{"below grid", 10, 96, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanPlace(tt.px, tt.py, occupied, w.grid))
		})
	}
}
