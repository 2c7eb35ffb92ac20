package ui

import (
	"image"
	"image/color"
	"testing"

	cfg "github.com/automoto/forest-adventure/config"
)

type drawCall struct {
	kind string
	x, y float64
	clr  color.Color
	text string
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Fill(clr color.Color) {
	s.calls = append(s.calls, drawCall{kind: "fill", clr: clr})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y, clr: clr})
}

func (s *recordingSurface) DrawText(str string, x, y float64, clr color.Color, size float64) {
	s.calls = append(s.calls, drawCall{kind: "text", x: x, y: y, clr: clr, text: str})
}

func (s *recordingSurface) DrawSprite(name string, x, y float64) {}

func testStyle() cfg.ButtonConfig {
	return cfg.ButtonConfig{
		Width:       200,
		Height:      50,
		Margin:      10,
		HoverDarken: 50,
		FontSize:    24,
		Color:       color.RGBA{R: 30, G: 120, B: 255, A: 255},
		TextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func TestButtonContains(t *testing.T) {
	b := NewButton(300, 250, "Start Game", testStyle())

	tests := []struct {
		pt   image.Point
		want bool
	}{
		{image.Pt(300, 250), true},
		{image.Pt(499, 299), true},
		{image.Pt(400, 275), true},
		{image.Pt(500, 275), false},
		{image.Pt(400, 300), false},
		{image.Pt(299, 250), false},
		{image.Pt(300, 249), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestButtonHoverColor(t *testing.T) {
	b := NewButton(0, 0, "x", testStyle())
	want := color.RGBA{R: 0, G: 70, B: 205, A: 255}
	if got := b.HoverColor(); got != want {
		t.Errorf("HoverColor() = %v, want %v", got, want)
	}
}

func TestButtonUpdateHoverIsIdempotent(t *testing.T) {
	b := NewButton(300, 250, "x", testStyle())
	inside, outside := image.Pt(310, 260), image.Pt(10, 10)

	b.UpdateHover(inside)
	first := b.Color()
	b.UpdateHover(inside)
	if b.Color() != first {
		t.Errorf("second hover changed colour: %v -> %v", first, b.Color())
	}
	if first != b.HoverColor() {
		t.Errorf("hovered colour = %v, want %v", first, b.HoverColor())
	}

	b.UpdateHover(outside)
	b.UpdateHover(outside)
	if b.Color() != testStyle().Color {
		t.Errorf("colour after leaving = %v, want base %v", b.Color(), testStyle().Color)
	}
}

func TestButtonsDoNotShareColourState(t *testing.T) {
	style := testStyle()
	a := NewButton(0, 0, "a", style)
	b := NewButton(0, 100, "b", style)

	a.UpdateHover(image.Pt(5, 5))
	if b.Color() != style.Color {
		t.Errorf("hovering a changed b to %v", b.Color())
	}
}

func TestButtonDraw(t *testing.T) {
	b := NewButton(300, 250, "Exit", testStyle())
	b.UpdateHover(image.Pt(301, 251))
	s := &recordingSurface{}

	b.Draw(s)

	if len(s.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(s.calls))
	}
	if c := s.calls[0]; c.kind != "rect" || c.x != 300 || c.y != 250 || c.clr != b.HoverColor() {
		t.Errorf("rect call = %+v", c)
	}
	if c := s.calls[1]; c.kind != "text" || c.x != 310 || c.y != 260 || c.text != "Exit" {
		t.Errorf("text call = %+v", c)
	}
}
