package title

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/td/internal/application/scene"
)

func TestTitle_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Title)(nil)
}

func TestTitle_StaysWithoutInput(t *testing.T) {
	called := false
	ti := New(860, 640, func() scene.Scene {
		called = true
		return nil
	})

	next, err := ti.Update(time.Now())
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.False(t, called, "next scene is only built on start")
}

func TestTitle_OnEnterOnExit(t *testing.T) {
	ti := New(860, 640, nil)

	assert.NotPanics(t, func() {
		ti.OnEnter()
		ti.OnExit()
	})
}
