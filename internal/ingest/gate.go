// Package ingest terminates connections from input producers and runs every
// raw event through the validation gate before it reaches the modeling
// stages. Rejected events are logged and dropped; nothing here keeps
// per-stroke state.
package ingest

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/inkstream/inkstream/pkg/input"
)

// Gate admits raw input events into the pipeline.
type Gate struct {
	log      *zap.Logger
	accepted atomic.Uint64
	rejected atomic.Uint64
}

// GateStats is a snapshot of the gate's counters.
type GateStats struct {
	Accepted uint64
	Rejected uint64
}

func NewGate(log *zap.Logger) *Gate {
	return &Gate{log: log}
}

// Admit validates ev and returns the validation error unchanged. Rejections
// are counted and logged with the session they arrived on.
func (g *Gate) Admit(session string, ev input.Input) error {
	if err := input.ValidateInput(ev); err != nil {
		g.rejected.Add(1)
		g.log.Warn("event rejected",
			zap.String("session", session),
			zap.Stringer("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	g.accepted.Add(1)
	return nil
}

// Stats returns the current counter values.
func (g *Gate) Stats() GateStats {
	return GateStats{
		Accepted: g.accepted.Load(),
		Rejected: g.rejected.Load(),
	}
}
