package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	checkboxBorder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkboxFill   = color.RGBA{R: 100, G: 200, B: 100, A: 255}
)

// Checkbox toggles a boolean on each new press.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64

	// OnToggle is called with the new value.
	OnToggle func(v bool)

	held bool // button still down since the last toggle
}

func NewCheckbox(label string, value bool, onToggle func(bool)) *Checkbox {
	return &Checkbox{Label: label, Value: value, Size: 16, OnToggle: onToggle}
}

// press toggles once per press while the cursor is over the box.
func (c *Checkbox) press(x, y float64, down bool) {
	over := x >= c.X && x <= c.X+c.Size && y >= c.Y && y <= c.Y+c.Size
	if !over || !down {
		c.held = false
		return
	}
	if c.held {
		return
	}
	c.held = true
	c.Value = !c.Value
	if c.OnToggle != nil {
		c.OnToggle(c.Value)
	}
}

func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	c.press(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), 2, checkboxBorder, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+2), float32(c.Y+2), float32(c.Size-4), float32(c.Size-4), checkboxFill, true)
	}
}

func (c *Checkbox) Caption() string { return c.Label }

func (c *Checkbox) Height() float64 { return c.Size }

func (c *Checkbox) MoveTo(x, y, _ float64) {
	c.X, c.Y = x, y
}
