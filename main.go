package main

import (
	"os"

	"github.com/automoto/forest-adventure/assets"
	"github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/fonts"
	"github.com/automoto/forest-adventure/platform"
	"github.com/automoto/forest-adventure/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	manager *scenes.Manager
	events  platform.EventPoller
	surface *platform.EbitenSurface
	quit    bool
}

func NewGame(audio platform.Audio, sprites platform.SpriteSource, logger *log.Logger) *Game {
	g := &Game{
		surface: platform.NewEbitenSurface(nil, sprites),
	}
	g.manager = scenes.NewManager(platform.Keyboard{}, audio,
		scenes.WithLogger(logger),
		scenes.WithQuit(func() { g.quit = true }),
	)
	return g
}

func (g *Game) Update() error {
	g.events.Poll(g.manager)
	if g.quit {
		return ebiten.Termination
	}
	g.manager.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Reset(screen)
	g.manager.Render(g.surface)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "forest",
	})

	path, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	created, err := assets.EnsurePlaceholders(
		config.Assets.Dir,
		config.Assets.ImagesDir,
		int(config.Entity.Width),
		config.Sound.Music,
		config.Sound.SFXPaths[config.SoundDamage],
		config.Audio.PlaceholderRate,
	)
	if err != nil {
		logger.Fatal("failed to create placeholder assets", "error", err)
	}
	for _, p := range created {
		logger.Info("created placeholder", "path", p)
	}

	if err := fonts.Load(nil); err != nil {
		logger.Fatal("failed to load font", "error", err)
	}

	fsys := os.DirFS(config.Assets.Dir)
	sprites := assets.NewImageLoader(fsys, config.Assets.ImagesDir)
	if err := sprites.Preload(config.Hero.Frames, config.Enemy.Frames); err != nil {
		logger.Fatal("failed to load sprites", "error", err)
	}

	audio := platform.NewEbitenAudio(fsys, logger)
	if err := audio.PreloadSFX(); err != nil {
		logger.Warn("could not preload sound effects", "error", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame(audio, sprites, logger)); err != nil {
		logger.Fatal("game exited with error", "error", err)
	}
}
