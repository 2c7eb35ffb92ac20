package ui

import (
	"image"
	"image/color"

	cfg "github.com/automoto/forest-adventure/config"
	"github.com/automoto/forest-adventure/platform"
)

// Button is a clickable labelled rectangle that darkens while hovered.
type Button struct {
	Rect  image.Rectangle
	Label string

	style   cfg.ButtonConfig
	current color.RGBA
}

func NewButton(x, y int, label string, style cfg.ButtonConfig) *Button {
	return &Button{
		Rect:    image.Rect(x, y, x+style.Width, y+style.Height),
		Label:   label,
		style:   style,
		current: style.Color,
	}
}

func (b *Button) Draw(surface platform.Surface) {
	x, y := float64(b.Rect.Min.X), float64(b.Rect.Min.Y)
	surface.FillRect(x, y, float64(b.Rect.Dx()), float64(b.Rect.Dy()), b.current)
	margin := float64(b.style.Margin)
	surface.DrawText(b.Label, x+margin, y+margin, b.style.TextColor, b.style.FontSize)
}

// Contains reports whether pt lies inside the button. The right and bottom
// edges are exclusive.
func (b *Button) Contains(pt image.Point) bool {
	return pt.In(b.Rect)
}

// UpdateHover switches to the hover colour while pt is inside the button.
func (b *Button) UpdateHover(pt image.Point) {
	if b.Contains(pt) {
		b.current = b.HoverColor()
		return
	}
	b.current = b.style.Color
}

func (b *Button) Color() color.RGBA {
	return b.current
}

func (b *Button) HoverColor() color.RGBA {
	return darken(b.style.Color, b.style.HoverDarken)
}

func (b *Button) SetLabel(label string) {
	b.Label = label
}

func darken(c color.RGBA, amount uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}
