// Package telemetry provides hierarchical timing collection for the parse,
// transform, and render stages.
//
// Collectors travel through context so instrumentation stays non-intrusive:
// code calls telemetry.FromContext(ctx).Start(...) and gets a no-op timer
// when telemetry is disabled.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := collector.Start("Edit smb.conf")
//	// ... parse, transform, render ...
//	timer.End()
//
//	collector.Report(os.Stderr, nil)
package telemetry

import (
	"context"
	"io"

	"github.com/sbstp/smbconf/output"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects timing data for a tree of operations.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings. Styles may be nil for plain
	// output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from a context, or a no-op collector
// when none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// noOpCollector and noOpTimer give zero overhead when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer              { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer, s *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
