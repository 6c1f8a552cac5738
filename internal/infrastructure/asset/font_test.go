package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFace_BuiltinFallback(t *testing.T) {
	face, err := LoadFace("", 25)
	require.NoError(t, err)

	assert.Equal(t, 25.0, face.Size)
	w, h := text.Measure("nice", face, 0)
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)
}

func TestLoadFace_MissingFile(t *testing.T) {
	_, err := LoadFace("does/not/exist.ttf", 25)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exist.ttf")
}

func TestLoadFace_FromFile(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "regular.ttf")
	broken := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(regular, goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(broken, []byte("not a font"), 0o644))

	face, err := LoadFace(regular, 12)
	require.NoError(t, err)
	assert.Equal(t, 12.0, face.Size)

	_, err = LoadFace(broken, 12)
	assert.Error(t, err)
}
