package render

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
)

const (
	triangleLength    = 10.0
	triangleHalfWidth = 5.0
)

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	statsPanel = color.RGBA{R: 40, G: 40, B: 45, A: 230}

	// Nose red, tail corners green and blue.
	vertexColors = [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
)

// Window draws the flock as coloured triangles in an ebiten window.
// It implements ebiten.Game.
type Window struct {
	ctx    context.Context
	engine *flock.Engine
	opts   Options
	title  string

	// Owned drawing resources
	pixel    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16

	showStats  bool
	showTuning bool
	tuning     *tuning
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow prepares a window for e. Nothing is opened until Run.
func NewWindow(ctx context.Context, e *flock.Engine, title string, opts Options) *Window {
	n := len(e.Flock())
	pixel := ebiten.NewImage(3, 3)
	pixel.Fill(color.White)

	w := &Window{
		ctx:      ctx,
		engine:   e,
		opts:     opts,
		title:    title,
		pixel:    pixel,
		vertices: make([]ebiten.Vertex, 0, 3*n),
		indices:  make([]uint16, 0, 3*n),
	}
	w.tuning = newTuning(e, &w.showStats)
	return w
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// the frame budget is spent. It returns the error reported by ebiten, if any.
func (w *Window) Run() error {
	s := w.engine.Settings()
	ebiten.SetWindowSize(int(s.Width), int(s.Height))
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowClosingHandled(true)

	w.opts.logger().Infof("opening %.0fx%.0f window with %d boids", s.Width, s.Height, len(w.engine.Flock()))
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window closed with error: %w", err)
	}
	return nil
}

// Close releases the GPU resources held by the window.
func (w *Window) Close() {
	if w.pixel != nil {
		w.pixel.Deallocate()
		w.pixel = nil
	}
}

// Update runs one simulation frame. Quit requests and tuning changes are only
// honoured here, between frames.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || w.opts.done(w.engine) {
		w.opts.logger().Infof("stopping after %d frames", w.engine.Frame())
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		w.showStats = !w.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		w.showTuning = !w.showTuning
	}
	if w.showTuning {
		w.tuning.update(w.showStats)
	}

	w.vertices = w.vertices[:0]
	w.indices = w.indices[:0]
	w.engine.Step(w.appendBoid)
	w.opts.report(w.ctx, w.engine)
	return nil
}

// appendBoid is the per-boid hand-off of the integration pass.
func (w *Window) appendBoid(_ int, b flock.Boid) {
	base := uint16(len(w.vertices))
	for k, p := range flock.Triangle(b, triangleLength, triangleHalfWidth) {
		c := vertexColors[k]
		w.vertices = append(w.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: 1,
		})
	}
	w.indices = append(w.indices, base, base+1, base+2)
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	screen.DrawTriangles(w.vertices, w.indices, w.pixel, &ebiten.DrawTrianglesOptions{})

	if w.showStats {
		st := w.engine.Stats()
		msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nFrame: %d\nSpeed: %.2f [%.2f, %.2f]\nContained: %d\nStep: %.2fms",
			ebiten.ActualFPS(), ebiten.ActualTPS(), st.Frame,
			st.MeanSpeed, st.MinSpeed, st.MaxSpeed, st.Contained,
			float64(st.Elapsed.Microseconds())/1000.0)
		// Debug text is white, give it a dark backdrop
		vector.FillRect(screen, 0, 0, 190, 100, statsPanel, true)
		ebitenutil.DebugPrintAt(screen, msg, 5, 5)
	}
	if w.showTuning {
		w.tuning.panel.Draw(screen)
	}
}

func (w *Window) Layout(_, _ int) (int, int) {
	s := w.engine.Settings()
	return int(s.Width), int(s.Height)
}
