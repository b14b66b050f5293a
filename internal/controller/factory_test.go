package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	t.Run("TTY mode returns the interactive UI", func(t *testing.T) {
		ui := NewUI(cmd, true)
		_, ok := ui.(*TUI)
		assert.True(t, ok)
	})

	t.Run("non-TTY mode returns the plain UI", func(t *testing.T) {
		ui := NewUI(cmd, false)
		_, ok := ui.(*SimpleUI)
		assert.True(t, ok)
	})
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
