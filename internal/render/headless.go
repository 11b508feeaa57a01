package render

import (
	"context"
	"errors"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
)

// ErrNoFrameBudget is returned when a headless run has no MaxFrames.
var ErrNoFrameBudget = errors.New("headless run needs a frame budget")

// Headless runs the simulation as fast as possible with nothing drawn.
// It is used for benchmarks and smoke runs.
type Headless struct {
	engine *flock.Engine
	opts   Options
}

func NewHeadless(e *flock.Engine, opts Options) *Headless {
	return &Headless{engine: e, opts: opts}
}

// Run computes MaxFrames frames, or fewer if ctx is cancelled first.
func (h *Headless) Run(ctx context.Context) error {
	if h.opts.MaxFrames == 0 {
		return ErrNoFrameBudget
	}
	for !h.opts.done(h.engine) {
		if ctx.Err() != nil {
			break
		}
		h.engine.Step(nil)
		h.opts.report(ctx, h.engine)
	}

	st := h.engine.Stats()
	h.opts.logger().Infof("headless run done: %d frames, mean speed %.2f, last step %s",
		st.Frame, st.MeanSpeed, st.Elapsed)
	return nil
}
