//go:build !ebiten

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithoutTag(t *testing.T) {
	assert.ErrorIs(t, Run(New(nil, nil, 0, 0)), ErrNoGUI)
}
