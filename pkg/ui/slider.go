package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	sliderTrack = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	sliderFill  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Slider edits a float value by pressing or dragging along its bar.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64

	// OnChange is called every time Value moves.
	OnChange func(v float64)
}

// NewSlider returns a slider with value clamped to [min, max]. The panel
// holding it sets its position and width.
func NewSlider(label string, min, max, value float64, onChange func(float64)) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, W: 200, H: 10, OnChange: onChange}
	s.Value = s.clamp(value)
	return s
}

// Set moves the slider to v, clamped to its range.
func (s *Slider) Set(v float64) {
	v = s.clamp(v)
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Reset moves the slider to v, clamped to its range, without calling OnChange.
func (s *Slider) Reset(v float64) {
	s.Value = s.clamp(v)
}

// Contains reports whether the point is over the bar.
func (s *Slider) Contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// valueAt maps a cursor x to a value.
func (s *Slider) valueAt(x float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	return s.clamp(s.Min + (x-s.X)/s.W*(s.Max-s.Min))
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func (s *Slider) press(x, y float64, down bool) {
	if down && s.Contains(x, y) {
		s.Set(s.valueAt(x))
	}
}

func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	s.press(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (s *Slider) Draw(screen *ebiten.Image) {
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), sliderTrack, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), sliderFill, true)
}

func (s *Slider) Caption() string { return fmt.Sprintf("%s: %.3f", s.Label, s.Value) }

func (s *Slider) Height() float64 { return s.H }

func (s *Slider) MoveTo(x, y, width float64) {
	s.X, s.Y, s.W = x, y, width
}
