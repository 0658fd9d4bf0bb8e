// Package telemetry provides a no-op telemetry implementation for quiet
// mode and tests. The progrock subpackage provides the real recorder.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/lode/internal/core/ports"
)

// Noop is a Telemetry implementation that records nothing.
type Noop struct{}

// NewNoop creates a no-op telemetry recorder.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

type noopVertex struct{}

func (v *noopVertex) Stdout() io.Writer { return io.Discard }
func (v *noopVertex) Cached()           {}
func (v *noopVertex) Complete(error)    {}

var _ ports.Telemetry = (*Noop)(nil)
