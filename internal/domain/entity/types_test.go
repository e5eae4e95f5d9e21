package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_DistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want float64
	}{
		{"same point", Position{10, 10}, Position{10, 10}, 0},
		{"horizontal", Position{0, 0}, Position{32, 0}, 32},
		{"3-4-5 triangle", Position{0, 0}, Position{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.a.DistanceTo(tt.b), 1e-9)
			assert.InDelta(t, tt.want, tt.b.DistanceTo(tt.a), 1e-9)
		})
	}
}

func TestPosition_MoveToward(t *testing.T) {
	t.Run("moves partial step along the line", func(t *testing.T) {
		p := Position{0, 0}.MoveToward(Position{30, 40}, 5)
		assert.InDelta(t, 3.0, p.X, 1e-9)
		assert.InDelta(t, 4.0, p.Y, 1e-9)
	})

	t.Run("never overshoots", func(t *testing.T) {
		target := Position{10, 0}
		p := Position{0, 0}.MoveToward(target, 100)
		assert.Equal(t, target, p)
	})

	t.Run("zero step stays put", func(t *testing.T) {
		start := Position{7, 7}
		assert.Equal(t, start, start.MoveToward(Position{20, 20}, 0))
	})

	t.Run("already at target", func(t *testing.T) {
		start := Position{5, 5}
		assert.Equal(t, start, start.MoveToward(start, 10))
	})
}
