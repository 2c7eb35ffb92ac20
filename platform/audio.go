package platform

import (
	"fmt"
	"io/fs"

	"github.com/automoto/forest-adventure/assets"
	cfg "github.com/automoto/forest-adventure/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Audio plays background music and one-shot effects. Calls are fire-and-forget.
type Audio interface {
	PlayMusic(path string) error
	PauseMusic()
	ResumeMusic()
	PlaySFX(sound cfg.SoundID)
}

// EbitenAudio plays assets through an Ebitengine audio context.
// Only one may exist per process.
type EbitenAudio struct {
	context     *audio.Context
	loader      *assets.AudioLoader
	music       *audio.Player
	musicKey    string
	musicVolume float64
	sfxVolume   float64
	logger      *log.Logger
}

func NewEbitenAudio(fsys fs.FS, logger *log.Logger) *EbitenAudio {
	if logger == nil {
		logger = log.Default()
	}
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	return &EbitenAudio{
		context:     ctx,
		loader:      assets.NewAudioLoader(ctx, fsys),
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
		logger:      logger,
	}
}

// PreloadSFX decodes all sound effects at startup to avoid lag on first play.
func (a *EbitenAudio) PreloadSFX() error {
	for _, path := range cfg.Sound.SFXPaths {
		if err := a.loader.PreloadSFX(path); err != nil {
			return err
		}
	}
	return nil
}

// PlayMusic starts looping the track at path, replacing any current track.
func (a *EbitenAudio) PlayMusic(path string) error {
	// Already playing this music
	if a.musicKey == path && a.music != nil {
		return nil
	}

	player, err := a.loader.LoadMusic(path)
	if err != nil {
		return fmt.Errorf("play music %s: %w", path, err)
	}

	if a.music != nil {
		_ = a.music.Close()
	}

	player.SetVolume(a.musicVolume)
	player.Play()

	a.music = player
	a.musicKey = path
	return nil
}

func (a *EbitenAudio) PauseMusic() {
	if a.music != nil {
		a.music.Pause()
	}
}

func (a *EbitenAudio) ResumeMusic() {
	if a.music != nil {
		a.music.Play()
	}
}

func (a *EbitenAudio) PlaySFX(sound cfg.SoundID) {
	if a.sfxVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok {
		return
	}

	player, err := a.loader.LoadSFX(path)
	if err != nil {
		a.logger.Debug("could not play sound effect", "path", path, "error", err)
		return
	}

	player.SetVolume(a.sfxVolume)
	player.Play()
}
