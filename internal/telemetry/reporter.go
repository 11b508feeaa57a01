// Package telemetry logs frame statistics away from the simulation loop.
//
// The simulation never blocks on telemetry: every frame it Tells a copy of its
// flock.FrameStats to an actor that aggregates and logs them once per interval.
// The actor never sees the flock itself.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	systemName = "BoidsTelemetry"
	actorName  = "frame-stats"
	askTimeout = 2 * time.Second
)

// Reporter owns the actor system hosting the statistics actor.
type Reporter struct {
	system actor.ActorSystem
	pid    *actor.PID
}

// Summary is the aggregate of every frame reported so far.
type Summary struct {
	Frames    uint64
	MeanSpeed float64 // average of the per-frame mean speeds
	Contained int     // total containment corrections
	AvgStep   time.Duration
}

// Start boots the actor system and spawns the statistics actor, which logs a
// line every interval through logger.
func Start(ctx context.Context, logger log.Logger, interval time.Duration) (*Reporter, error) {
	system, err := actor.NewActorSystem(systemName,
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	pid, err := system.Spawn(ctx, actorName, newStatsActor(interval))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn %s: %w", actorName, err)
	}

	return &Reporter{system: system, pid: pid}, nil
}

// Report sends a copy of st to the statistics actor without waiting.
func (r *Reporter) Report(ctx context.Context, st flock.FrameStats) error {
	msg, err := encodeStats(st)
	if err != nil {
		return err
	}
	return r.system.NoSender().Tell(ctx, r.pid, msg)
}

// Summary asks the statistics actor for the aggregate of all reported frames.
func (r *Reporter) Summary(ctx context.Context) (Summary, error) {
	resp, err := r.system.NoSender().Ask(ctx, r.pid, &emptypb.Empty{}, askTimeout)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to query %s: %w", actorName, err)
	}
	return decodeSummary(resp)
}

// Stop shuts the actor system down.
func (r *Reporter) Stop(ctx context.Context) error {
	return r.system.Stop(ctx)
}
