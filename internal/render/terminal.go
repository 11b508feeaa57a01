package render

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// FrameInterval paces the terminal loop at about 60 frames per second.
const FrameInterval = 16 * time.Millisecond

// Heading glyphs, clockwise from east. Screen y grows downward so a heading
// of +Pi/2 points down.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Terminal draws one arrow per boid in a terminal, scaling the world to the
// screen. The last row holds a status line.
type Terminal struct {
	screen tcell.Screen
	engine *flock.Engine
	opts   Options

	cols, rows int
}

// NewTerminal takes over the terminal. Call Close to restore it.
func NewTerminal(e *flock.Engine, opts Options) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	return newTerminal(screen, e, opts), nil
}

func newTerminal(screen tcell.Screen, e *flock.Engine, opts Options) *Terminal {
	t := &Terminal{screen: screen, engine: e, opts: opts}
	screen.HideCursor()
	t.resize()
	return t
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run drives the simulation until ctx is done, a quit key is pressed or the
// frame budget is spent. Events are only looked at between frames.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go t.pollEvents(events, done)

	t.opts.logger().Infof("terminal view %dx%d with %d boids", t.cols, t.rows, len(t.engine.Flock()))
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !t.handleEvent(ev) {
				t.opts.logger().Infof("stopping after %d frames", t.engine.Frame())
				return nil
			}

		case <-ticker.C:
			if t.opts.done(t.engine) {
				return nil
			}
			t.frame(ctx)
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is
// closed.
func (t *Terminal) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalised
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent returns false when the user asked to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

func (t *Terminal) resize() {
	t.cols, t.rows = t.screen.Size()
	// Reserve the status line
	t.rows--
}

// frame computes and draws one frame.
func (t *Terminal) frame(ctx context.Context) {
	t.screen.Clear()
	t.engine.Step(t.plot)
	t.drawStatus()
	t.screen.Show()
	t.opts.report(ctx, t.engine)
}

// plot is the per-boid hand-off of the integration pass.
func (t *Terminal) plot(_ int, b flock.Boid) {
	col, row, ok := t.cell(b.Pos)
	if !ok {
		return
	}
	t.screen.SetContent(col, row, arrow(b.Heading()), nil, t.speedStyle(b.Speed()))
}

// cell maps a world position to a screen cell. Positions outside the world
// (boids drift past the edges before turning back) are not drawn.
func (t *Terminal) cell(p geometry.Vector2D) (col, row int, ok bool) {
	s := t.engine.Settings()
	if t.cols <= 0 || t.rows <= 0 || p.X < 0 || p.Y < 0 || p.X >= s.Width || p.Y >= s.Height {
		return 0, 0, false
	}
	col = int(p.X / s.Width * float64(t.cols))
	row = int(p.Y / s.Height * float64(t.rows))
	return col, row, true
}

// speedStyle shades slow boids blue and fast boids red.
func (t *Terminal) speedStyle(speed float64) tcell.Style {
	s := t.engine.Settings()
	ratio := 0.0
	if s.MaxSpeed > s.MinSpeed {
		ratio = math.Max(0, math.Min(1, (speed-s.MinSpeed)/(s.MaxSpeed-s.MinSpeed)))
	}
	r := int32(80 + 175*ratio)
	b := int32(255 - 175*ratio)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, 80, b))
}

func (t *Terminal) drawStatus() {
	st := t.engine.Stats()
	msg := fmt.Sprintf(" frame %d | %d boids | speed %.2f | contained %d | q/Esc to quit ",
		st.Frame, st.Boids, st.MeanSpeed, st.Contained)
	style := tcell.StyleDefault.Reverse(true)
	for i, ch := range []rune(msg) {
		if i >= t.cols {
			break
		}
		t.screen.SetContent(i, t.rows, ch, nil, style)
	}
}

// arrow returns the glyph closest to the heading angle.
func arrow(angle float64) rune {
	sector := int(math.Round(angle/(math.Pi/4))) % len(arrows)
	if sector < 0 {
		sector += len(arrows)
	}
	return arrows[sector]
}
