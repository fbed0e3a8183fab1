package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root is the directory asset paths are resolved against.
var Root = "assets"

// LoadFont reads a font file from <Root>/fonts.
func LoadFont(name string) ([]byte, error) {
	path := filepath.Join(Root, "fonts", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("load font %q: empty file", name)
	}
	return b, nil
}
