//go:build !ebiten

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aztec/internal/app"
)

func TestGUIRequiresBuildTag(t *testing.T) {
	_, _, err := execute(t, "gui")
	assert.ErrorIs(t, err, app.ErrNoGUI)
}
