// Package input defines the raw input-event sample produced by pointer and
// stylus devices and the validation gate every sample must pass before it
// reaches the stroke-modeling stages.
package input

import (
	"fmt"

	"github.com/inkstream/inkstream/pkg/geometry"
)

// EventType identifies where in a stroke an input sample was observed.
type EventType int

const (
	// Down is the first sample of a stroke, when the pointer makes contact.
	Down EventType = iota
	// Move is an intermediate sample while the pointer stays in contact.
	Move
	// Up is the final sample of a stroke, when the pointer lifts.
	Up
)

func (e EventType) String() string {
	switch e {
	case Down:
		return "Down"
	case Move:
		return "Move"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("EventType(%d)", int(e))
	}
}

// Time is a point in time, measured in seconds. The zero point is up to the
// producer; only differences between values are meaningful.
type Time float64

// Value returns the time as a plain float64 of seconds.
func (t Time) Value() float64 { return float64(t) }

// Duration is a span of time, measured in seconds.
type Duration float64

// Value returns the duration as a plain float64 of seconds.
func (d Duration) Value() float64 { return float64(d) }

// Unknown is the sentinel value for Pressure, Tilt, and Orientation when the
// device does not report that channel.
const Unknown = -1

// Input is one sample observed from an input device. It is passed by value,
// carries no identity, and is never mutated after construction.
type Input struct {
	EventType EventType
	Position  geometry.Vec2
	// Time must increase monotonically within a stroke.
	Time Time
	// Pressure is in [0, 1], or Unknown.
	Pressure float64
	// Tilt is the angle between the stylus and the surface normal, in
	// radians in [0, π/2], or Unknown.
	Tilt float64
	// Orientation is the angle of the stylus' projection onto the surface,
	// in radians in [0, 2π), or Unknown.
	Orientation float64
}

// NewInput returns an Input with Pressure, Tilt and Orientation set to
// Unknown, matching devices that report position and time only.
func NewInput(eventType EventType, position geometry.Vec2, t Time) Input {
	return Input{
		EventType:   eventType,
		Position:    position,
		Time:        t,
		Pressure:    Unknown,
		Tilt:        Unknown,
		Orientation: Unknown,
	}
}

func (in Input) String() string {
	return fmt.Sprintf("<Input: %v, pos=%v, time=%g>", in.EventType, in.Position, in.Time.Value())
}
