package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the point size used when a caller asks for size 0.
const DefaultSize = 24

var (
	parsed *truetype.Font
	faces  = map[float64]font.Face{}
)

// Load parses the TrueType data used for every face. Passing nil selects Go Regular.
func Load(ttf []byte) error {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	parsed = f
	faces = map[float64]font.Face{}
	return nil
}

// Face returns the cached face for the given point size.
func Face(size float64) font.Face {
	if size <= 0 {
		size = DefaultSize
	}
	if f, ok := faces[size]; ok {
		return f
	}
	if parsed == nil {
		if err := Load(nil); err != nil {
			panic(err)
		}
	}
	f := truetype.NewFace(parsed, &truetype.Options{Size: size})
	faces[size] = f
	return f
}
