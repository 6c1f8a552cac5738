package asset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace loads a font face of the given size.
// An empty path falls back to the built-in Go Regular font.
func LoadFace(path string, size float64) (*text.GoTextFace, error) {
	if path == "" {
		return newFace(goregular.TTF, "goregular", size)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return newFace(data, path, size)
}

func newFace(data []byte, name string, size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
