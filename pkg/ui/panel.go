// Package ui holds the small immediate-mode widgets used to tune a running
// simulation from inside an ebiten window.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	padding       = 10.0
	titleHeight   = 25.0
	sectionHeight = 25.0
	captionHeight = 15.0
	widgetGap     = 10.0
	scrollStep    = 20.0
)

// Widget is anything a Panel can stack vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	// Caption is drawn above the widget; empty means none.
	Caption() string
	Height() float64
	MoveTo(x, y, width float64)
}

type entry struct {
	section string // set for section headers, which have no widget
	widget  Widget
}

// Panel is a scrollable column of widgets grouped in sections.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	ScrollOffset  float64

	BGColor      color.RGBA
	BorderColor  color.RGBA
	SectionColor color.RGBA

	entries []entry
}

func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title:        title,
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		BGColor:      color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor:  color.RGBA{R: 100, G: 100, B: 110, A: 255},
		SectionColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// AddSection starts a new titled group.
func (p *Panel) AddSection(title string) {
	p.entries = append(p.entries, entry{section: title})
}

// Add appends w to the current section and lays the panel out again.
func (p *Panel) Add(w Widget) {
	p.entries = append(p.entries, entry{widget: w})
	p.layout()
}

// Widgets returns the widgets in display order.
func (p *Panel) Widgets() []Widget {
	var ws []Widget
	for _, e := range p.entries {
		if e.widget != nil {
			ws = append(ws, e.widget)
		}
	}
	return ws
}

// Contains reports whether the point is over the panel.
func (p *Panel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// contentHeight is the height of everything below the title.
func (p *Panel) contentHeight() float64 {
	h := 0.0
	for _, e := range p.entries {
		if e.widget == nil {
			h += sectionHeight
			continue
		}
		if e.widget.Caption() != "" {
			h += captionHeight
		}
		h += e.widget.Height() + widgetGap
	}
	return h
}

// Scroll moves the content by dy wheel steps, within bounds.
func (p *Panel) Scroll(dy float64) {
	p.ScrollOffset -= dy * scrollStep
	maxScroll := max(0, p.contentHeight()-(p.Height-titleHeight-padding))
	p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
	p.layout()
}

// layout positions every widget from the current scroll offset.
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for _, e := range p.entries {
		if e.widget == nil {
			y += sectionHeight
			continue
		}
		if e.widget.Caption() != "" {
			y += captionHeight
		}
		e.widget.MoveTo(p.X+padding, y, p.Width-2*padding)
		y += e.widget.Height() + widgetGap
	}
}

// visible reports whether a row starting at y fits inside the panel.
func (p *Panel) visible(y, h float64) bool {
	return y >= p.Y+titleHeight && y+h <= p.Y+p.Height
}

// Update scrolls on the mouse wheel and lets visible widgets handle input.
func (p *Panel) Update() {
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(float64(mx), float64(my)) {
		p.Scroll(dy)
	}
	y := p.Y + titleHeight - p.ScrollOffset
	for _, e := range p.entries {
		if e.widget == nil {
			y += sectionHeight
			continue
		}
		if e.widget.Caption() != "" {
			y += captionHeight
		}
		if p.visible(y, e.widget.Height()) {
			e.widget.Update()
		}
		y += e.widget.Height() + widgetGap
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+padding), int(p.Y+5))

	y := p.Y + titleHeight - p.ScrollOffset
	for _, e := range p.entries {
		if e.widget == nil {
			if p.visible(y, sectionHeight-5) {
				vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20, p.SectionColor, true)
				ebitenutil.DebugPrintAt(screen, e.section, int(p.X+padding), int(y+3))
			}
			y += sectionHeight
			continue
		}
		if c := e.widget.Caption(); c != "" {
			if p.visible(y, captionHeight) {
				ebitenutil.DebugPrintAt(screen, c, int(p.X+padding), int(y))
			}
			y += captionHeight
		}
		if p.visible(y, e.widget.Height()) {
			e.widget.Draw(screen)
		}
		y += e.widget.Height() + widgetGap
	}
}
