package osutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorPrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "vim")
	t.Setenv("EDITOR", "emacs")

	assert.Equal(t, "vim", Editor())
}

func TestEditorFallsBackToEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "emacs")

	assert.Equal(t, "emacs", Editor())
}

func TestEditorDefault(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	assert.NotEmpty(t, Editor())
}
