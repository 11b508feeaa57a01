// Package render holds the collaborators that drive the simulation loop and
// draw the flock: an ebiten window, a tcell terminal view and a headless
// runner. Each one owns its resources and calls flock.Engine.Step exactly
// once per frame, to completion, before drawing.
package render

import (
	"context"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/tochemey/goakt/v3/log"
)

// StatsSink receives a copy of every frame statistics.
type StatsSink interface {
	Report(ctx context.Context, st flock.FrameStats) error
}

// Options are shared by every renderer.
type Options struct {
	// MaxFrames stops the loop after that many frames; 0 runs until quit.
	MaxFrames uint64
	// Sink is optional.
	Sink StatsSink
	// Logger defaults to log.DiscardLogger.
	Logger log.Logger
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.DiscardLogger
	}
	return o.Logger
}

// done reports whether the frame budget is spent.
func (o Options) done(e *flock.Engine) bool {
	return o.MaxFrames > 0 && e.Frame() >= o.MaxFrames
}

// report forwards the last frame statistics to the sink, if any.
// Telemetry failures are logged and never stop the simulation.
func (o Options) report(ctx context.Context, e *flock.Engine) {
	if o.Sink == nil {
		return
	}
	if err := o.Sink.Report(ctx, e.Stats()); err != nil {
		o.logger().Warnf("frame %d: telemetry report failed: %v", e.Frame(), err)
	}
}
