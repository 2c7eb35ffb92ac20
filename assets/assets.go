package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader loads sprite images by name from an asset file system and caches them.
type ImageLoader struct {
	fsys  fs.FS
	dir   string
	cache map[string]*ebiten.Image
}

// NewImageLoader reads "<dir>/<name>.png" files from fsys.
func NewImageLoader(fsys fs.FS, dir string) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		dir:   dir,
		cache: make(map[string]*ebiten.Image),
	}
}

// SpritePath returns the asset path for a sprite name.
func SpritePath(dir, name string) string {
	return path.Join(dir, name+".png")
}

// DecodeSprite reads and decodes the named sprite without creating a GPU image.
func DecodeSprite(fsys fs.FS, dir, name string) (image.Image, error) {
	p := SpritePath(dir, name)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return img, nil
}

// LoadImage returns the cached image for name, loading it on first use.
func (l *ImageLoader) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	src, err := DecodeSprite(l.fsys, l.dir, name)
	if err != nil {
		return nil, err
	}

	img := ebiten.NewImageFromImage(src)
	l.cache[name] = img
	return img, nil
}

// Preload loads every named sprite up front so the first frame does not stall.
func (l *ImageLoader) Preload(names ...[]string) error {
	for _, group := range names {
		for _, name := range group {
			if _, err := l.LoadImage(name); err != nil {
				return err
			}
		}
	}
	return nil
}
