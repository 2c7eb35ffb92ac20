package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// SpritePlaceholder describes a generated stand-in sprite.
type SpritePlaceholder struct {
	Name  string
	Fill  color.RGBA
	Inner color.RGBA
}

var (
	heroFill   = color.RGBA{0, 255, 0, 255}
	heroInner  = color.RGBA{0, 0, 255, 255}
	enemyFill  = color.RGBA{255, 0, 0, 255}
	enemyInner = color.RGBA{0, 0, 0, 255}
)

// SpritePlaceholders lists the sprites the game needs: idle and walk frames
// for both characters.
var SpritePlaceholders = []SpritePlaceholder{
	{"hero_idle1", heroFill, heroInner},
	{"hero_idle2", heroFill, heroInner},
	{"hero_walk1", heroFill, heroInner},
	{"hero_walk2", heroFill, heroInner},
	{"enemy_idle1", enemyFill, enemyInner},
	{"enemy_idle2", enemyFill, enemyInner},
	{"enemy_walk1", enemyFill, enemyInner},
	{"enemy_walk2", enemyFill, enemyInner},
}

// CreateSpriteImage creates a size×size tile filled with fill and an inner
// square inset by a fifth of the size on every side.
func CreateSpriteImage(size int, fill, inner color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
	inset := size / 5
	innerRect := image.Rect(inset, inset, size-inset, size-inset)
	draw.Draw(img, innerRect, &image.Uniform{inner}, image.Point{}, draw.Src)
	return img
}

// EnsurePlaceholders makes sure every sprite and sound the game loads exists
// under dir, generating the missing ones. It returns the paths it created.
func EnsurePlaceholders(dir, imagesDir string, spriteSize int, musicPath, hitPath string, sampleRate int) ([]string, error) {
	var created []string

	imgRoot := filepath.Join(dir, imagesDir)
	if err := os.MkdirAll(imgRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", imgRoot, err)
	}

	for _, sp := range SpritePlaceholders {
		p := filepath.Join(dir, filepath.FromSlash(SpritePath(imagesDir, sp.Name)))
		ok, err := writeIfMissing(p, func(w io.Writer) error {
			return png.Encode(w, CreateSpriteImage(spriteSize, sp.Fill, sp.Inner))
		})
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, p)
		}
	}

	sounds := []struct {
		path    string
		samples func(rate int) []int16
	}{
		{musicPath, MusicSamples},
		{hitPath, HitSamples},
	}
	for _, s := range sounds {
		p := filepath.Join(dir, filepath.FromSlash(s.path))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return created, fmt.Errorf("failed to create %s: %w", filepath.Dir(p), err)
		}
		samples := s.samples
		ok, err := writeIfMissing(p, func(w io.Writer) error {
			return WriteWAV(w, samples(sampleRate), sampleRate)
		})
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, p)
		}
	}

	return created, nil
}

// writeIfMissing creates path with the content produced by write unless it
// already exists. It reports whether a file was written.
func writeIfMissing(path string, write func(io.Writer) error) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return true, nil
}

// wavHeader is the canonical 44-byte RIFF/WAVE header for 16-bit mono PCM.
type wavHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// WriteWAV encodes mono 16-bit PCM samples as a WAV stream.
func WriteWAV(w io.Writer, samples []int16, sampleRate int) error {
	dataSize := uint32(len(samples) * 2)
	h := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, samples)
}

// tone appends a sine tone with a short linear attack and release.
func tone(dst []int16, freq float64, seconds float64, rate int, volume float64) []int16 {
	n := int(seconds * float64(rate))
	ramp := n / 10
	for i := 0; i < n; i++ {
		env := 1.0
		if ramp > 0 {
			if i < ramp {
				env = float64(i) / float64(ramp)
			} else if i > n-ramp {
				env = float64(n-i) / float64(ramp)
			}
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * volume * env
		dst = append(dst, int16(v*math.MaxInt16))
	}
	return dst
}

// MusicSamples synthesises a short looping arpeggio.
func MusicSamples(rate int) []int16 {
	notes := []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 293.66, 349.23}
	var out []int16
	for _, f := range notes {
		out = tone(out, f, 0.25, rate, 0.2)
	}
	return out
}

// HitSamples synthesises a short falling blip.
func HitSamples(rate int) []int16 {
	n := rate * 15 / 100
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		freq := 600 - 400*t
		phase += 2 * math.Pi * freq / float64(rate)
		out[i] = int16(math.Sin(phase) * 0.5 * (1 - t) * math.MaxInt16)
	}
	return out
}
