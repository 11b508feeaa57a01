package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonColor  = color.RGBA{R: 80, G: 120, B: 180, A: 255}
	buttonHover  = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	buttonBorder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Button calls OnClick once per press.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()

	held  bool
	hover bool
}

func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, W: 200, H: 20, OnClick: onClick}
}

func (b *Button) press(x, y float64, down bool) {
	b.hover = x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
	if !b.hover || !down {
		b.held = false
		return
	}
	if !b.held && b.OnClick != nil {
		b.OnClick()
	}
	b.held = true
}

func (b *Button) Update() {
	mx, my := ebiten.CursorPosition()
	b.press(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonColor
	if b.hover {
		bg = buttonHover
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, buttonBorder, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+6), int(b.Y+2))
}

// Caption is empty: the label is drawn inside the button.
func (b *Button) Caption() string { return "" }

func (b *Button) Height() float64 { return b.H }

func (b *Button) MoveTo(x, y, width float64) {
	b.X, b.Y, b.W = x, y, width
}
