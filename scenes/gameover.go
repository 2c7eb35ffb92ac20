package scenes

import (
	"image"
	"image/color"

	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// gameOverScene fades in the game over message above the exit button.
type gameOverScene struct {
	m     *Manager
	fade  *gween.Tween
	alpha float32
}

func newGameOverScene(m *Manager) *gameOverScene {
	m.logger.Info("game over", "health", m.game.health())
	return &gameOverScene{
		m:    m,
		fade: gween.New(0, 1, cfg.GameOver.FadeDuration, ease.OutQuad),
	}
}

func (gs *gameOverScene) update() {
	gs.alpha, _ = gs.fade.Update(1 / float32(cfg.TPS))
}

func (gs *gameOverScene) draw(surface platform.Surface) {
	surface.Fill(cfg.GameOver.BackgroundColor)
	x := float64(cfg.C.Width/2 + cfg.GameOver.MessageOffsetX)
	y := float64(cfg.C.Height / 2)
	surface.DrawText(cfg.GameOver.Message, x, y, fade(cfg.GameOver.TextColor, gs.alpha), cfg.GameOver.FontSize)
	gs.m.exitButton.Draw(surface)
}

func (gs *gameOverScene) click(pt image.Point) {
	if gs.m.exitButton.Contains(pt) {
		gs.m.Quit()
	}
}

func (gs *gameOverScene) pointerMove(image.Point) {}

// fade scales a premultiplied colour by alpha in [0, 1].
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
