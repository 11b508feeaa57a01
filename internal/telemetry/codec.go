package telemetry

import (
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names shared by the frame and summary messages.
const (
	fieldFrame     = "frame"
	fieldBoids     = "boids"
	fieldMeanSpeed = "meanSpeed"
	fieldMinSpeed  = "minSpeed"
	fieldMaxSpeed  = "maxSpeed"
	fieldContained = "contained"
	fieldElapsedNs = "elapsedNs"
	fieldFrames    = "frames"
	fieldAvgStepNs = "avgStepNs"
)

// frameSample is the actor-side view of one flock.FrameStats.
type frameSample struct {
	frame     uint64
	boids     int
	meanSpeed float64
	minSpeed  float64
	maxSpeed  float64
	contained int
	elapsed   time.Duration
}

func encodeStats(st flock.FrameStats) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		fieldFrame:     st.Frame,
		fieldBoids:     st.Boids,
		fieldMeanSpeed: st.MeanSpeed,
		fieldMinSpeed:  st.MinSpeed,
		fieldMaxSpeed:  st.MaxSpeed,
		fieldContained: st.Contained,
		fieldElapsedNs: st.Elapsed.Nanoseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame %d: %w", st.Frame, err)
	}
	return msg, nil
}

func decodeStats(msg *structpb.Struct) frameSample {
	f := msg.GetFields()
	return frameSample{
		frame:     uint64(f[fieldFrame].GetNumberValue()),
		boids:     int(f[fieldBoids].GetNumberValue()),
		meanSpeed: f[fieldMeanSpeed].GetNumberValue(),
		minSpeed:  f[fieldMinSpeed].GetNumberValue(),
		maxSpeed:  f[fieldMaxSpeed].GetNumberValue(),
		contained: int(f[fieldContained].GetNumberValue()),
		elapsed:   time.Duration(f[fieldElapsedNs].GetNumberValue()),
	}
}

func encodeSummary(s Summary) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldFrames:    structpb.NewNumberValue(float64(s.Frames)),
		fieldMeanSpeed: structpb.NewNumberValue(s.MeanSpeed),
		fieldContained: structpb.NewNumberValue(float64(s.Contained)),
		fieldAvgStepNs: structpb.NewNumberValue(float64(s.AvgStep.Nanoseconds())),
	}}
}

func decodeSummary(msg proto.Message) (Summary, error) {
	st, ok := msg.(*structpb.Struct)
	if !ok {
		return Summary{}, fmt.Errorf("unexpected summary message %T", msg)
	}
	f := st.GetFields()
	return Summary{
		Frames:    uint64(f[fieldFrames].GetNumberValue()),
		MeanSpeed: f[fieldMeanSpeed].GetNumberValue(),
		Contained: int(f[fieldContained].GetNumberValue()),
		AvgStep:   time.Duration(f[fieldAvgStepNs].GetNumberValue()),
	}, nil
}
