package scenes

import (
	"image"

	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
	"github.com/automoto/forest-adventure/ui"
)

// menuScene shows the title and the start, music and exit buttons.
type menuScene struct {
	m *Manager
}

func (ms *menuScene) buttons() []*ui.Button {
	return []*ui.Button{ms.m.startButton, ms.m.musicButton, ms.m.exitButton}
}

func (ms *menuScene) update() {}

func (ms *menuScene) draw(surface platform.Surface) {
	surface.Fill(cfg.Menu.BackgroundColor)
	for _, b := range ms.buttons() {
		b.Draw(surface)
	}
	x := float64(cfg.C.Width/2 + cfg.Menu.TitleOffsetX)
	y := float64(cfg.C.Height / 4)
	surface.DrawText(cfg.C.Title, x, y, cfg.Menu.TitleColor, cfg.Menu.TitleFontSize)
}

func (ms *menuScene) click(pt image.Point) {
	switch {
	case ms.m.startButton.Contains(pt):
		ms.m.StartGame()
	case ms.m.musicButton.Contains(pt):
		ms.m.toggleMusic()
	case ms.m.exitButton.Contains(pt):
		ms.m.Quit()
	}
}

func (ms *menuScene) pointerMove(pt image.Point) {
	for _, b := range ms.buttons() {
		b.UpdateHover(pt)
	}
}
