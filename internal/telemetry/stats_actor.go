package telemetry

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// statsActor aggregates frame statistics. All its state is only touched from
// Receive, so it needs no locking.
type statsActor struct {
	interval time.Duration

	// Totals since start
	frames    uint64
	speedSum  float64
	contained int
	elapsed   time.Duration

	// Current logging window
	windowStart  time.Time
	windowFrames int
	lastFrame    frameSample
}

var _ actor.Actor = (*statsActor)(nil)

func newStatsActor(interval time.Duration) *statsActor {
	return &statsActor{interval: interval}
}

func (s *statsActor) PreStart(ctx *actor.Context) error {
	s.windowStart = time.Now()
	return nil
}

func (s *statsActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Debugf("%s started", ctx.Self().Name())

	case *structpb.Struct:
		sample := decodeStats(msg)
		s.record(sample)
		s.logWindow(ctx)

	case *emptypb.Empty:
		ctx.Response(encodeSummary(s.summary()))

	default:
		ctx.Unhandled()
	}
}

func (s *statsActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("telemetry stopped after %d frames", s.frames)
	return nil
}

func (s *statsActor) record(f frameSample) {
	s.frames++
	s.speedSum += f.meanSpeed
	s.contained += f.contained
	s.elapsed += f.elapsed
	s.windowFrames++
	s.lastFrame = f
}

func (s *statsActor) logWindow(ctx *actor.ReceiveContext) {
	if s.interval <= 0 || time.Since(s.windowStart) < s.interval {
		return
	}
	ctx.Logger().Infof("🐦 frame %d | %d frames/%s | %d boids | speed %.2f [%.2f, %.2f] | contained %d | step %.2fms",
		s.lastFrame.frame, s.windowFrames, s.interval, s.lastFrame.boids,
		s.lastFrame.meanSpeed, s.lastFrame.minSpeed, s.lastFrame.maxSpeed,
		s.lastFrame.contained, float64(s.lastFrame.elapsed.Microseconds())/1000.0)
	s.windowFrames = 0
	s.windowStart = time.Now()
}

func (s *statsActor) summary() Summary {
	sum := Summary{Frames: s.frames, Contained: s.contained}
	if s.frames > 0 {
		sum.MeanSpeed = s.speedSum / float64(s.frames)
		sum.AvgStep = s.elapsed / time.Duration(s.frames)
	}
	return sum
}
