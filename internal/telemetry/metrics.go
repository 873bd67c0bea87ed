// Package telemetry records frame and gameplay metrics through the global
// OpenTelemetry meter. With no SDK installed every instrument is a no-op.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"marsrover/internal/scene"
)

const instrumentationName = "marsrover/internal/telemetry"

func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// FrameMetrics counts frames and scene events. Methods are safe to call on
// the frame thread only, like the rest of the scene.
type FrameMetrics struct {
	frames    metric.Int64Counter
	frameTime metric.Float64Histogram
	events    metric.Int64Counter

	// Totals mirror the counters for the shutdown log.
	Frames   int64
	Crystals int64
	WallHits int64
}

func NewFrameMetrics(m metric.Meter) (*FrameMetrics, error) {
	fm := &FrameMetrics{}
	var err error

	fm.frames, err = m.Int64Counter(
		"marsrover.frames",
		metric.WithDescription("Frames rendered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	fm.frameTime, err = m.Float64Histogram(
		"marsrover.frame.duration",
		metric.WithDescription("Wall time between frames"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame time histogram: %w", err)
	}

	fm.events, err = m.Int64Counter(
		"marsrover.scene.events",
		metric.WithDescription("Scene events by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	return fm, nil
}

var eventNames = map[scene.EventType]string{
	scene.EventCrystalCollected: "crystal_collected",
	scene.EventMusicStarted:     "music_started",
	scene.EventMusicStopped:     "music_stopped",
	scene.EventWallHit:          "wall_hit",
}

// Attach subscribes to every scene event type. Call it once during setup.
func (fm *FrameMetrics) Attach(bus *scene.EventBus) {
	for t, name := range eventNames {
		attrs := metric.WithAttributes(attribute.String("event", name))
		bus.Subscribe(t, func(e scene.Event) {
			fm.events.Add(context.Background(), 1, attrs)
			switch e.Type {
			case scene.EventCrystalCollected:
				fm.Crystals++
			case scene.EventWallHit:
				fm.WallHits++
			}
		})
	}
}

// RecordFrame counts one frame that took dt seconds.
func (fm *FrameMetrics) RecordFrame(ctx context.Context, dt float64) {
	fm.frames.Add(ctx, 1)
	fm.frameTime.Record(ctx, dt)
	fm.Frames++
}
