package render

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/tochemey/goakt/v3/log"
)

// recordingSink keeps every reported frame.
type recordingSink struct {
	frames []flock.FrameStats
	err    error
}

func (r *recordingSink) Report(_ context.Context, st flock.FrameStats) error {
	r.frames = append(r.frames, st)
	return r.err
}

func newTestEngine(n int) *flock.Engine {
	s := testSettings()
	return flock.NewEngine(flock.NewFlock(n, s, rand.New(rand.NewPCG(9, 9))), s)
}

func TestHeadless_RunsFrameBudget(t *testing.T) {
	sink := &recordingSink{}
	e := newTestEngine(30)

	if err := NewHeadless(e, Options{MaxFrames: 5, Sink: sink, Logger: log.DiscardLogger}).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if e.Frame() != 5 {
		t.Errorf("Frame() = %d; want 5", e.Frame())
	}
	if len(sink.frames) != 5 {
		t.Fatalf("sink got %d frames; want 5", len(sink.frames))
	}
	for i, st := range sink.frames {
		if st.Frame != uint64(i+1) || st.Boids != 30 {
			t.Errorf("report %d = %+v; want frame %d with 30 boids", i, st, i+1)
		}
	}
}

func TestHeadless_SinkErrorsDoNotStopTheRun(t *testing.T) {
	sink := &recordingSink{err: errors.New("mailbox full")}
	e := newTestEngine(10)

	if err := NewHeadless(e, Options{MaxFrames: 3, Sink: sink}).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if e.Frame() != 3 {
		t.Errorf("Frame() = %d; want 3", e.Frame())
	}
}

func TestHeadless_NeedsFrameBudget(t *testing.T) {
	err := NewHeadless(newTestEngine(1), Options{}).Run(context.Background())
	if !errors.Is(err, ErrNoFrameBudget) {
		t.Errorf("Run() error = %v; want ErrNoFrameBudget", err)
	}
}

func TestHeadless_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestEngine(10)
	if err := NewHeadless(e, Options{MaxFrames: 100}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if e.Frame() != 0 {
		t.Errorf("Frame() = %d; want 0 after cancellation", e.Frame())
	}
}
