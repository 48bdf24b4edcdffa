package input

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput classifies a malformed input event. Errors returned by
// ValidateInput wrap it; test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidateFinite returns an error wrapping ErrInvalidInput and naming the
// field when value is NaN or infinite.
func ValidateFinite(value float64, name string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite, was %v", ErrInvalidInput, name, value)
	}
	return nil
}

// ValidateInput checks an event before it enters the pipeline. Checks run in
// a fixed order and the first failure is returned: event type must be one of
// Down, Move, Up; then position.x, position.y, and time must each be finite.
//
// Pressure, tilt and orientation are deliberately not checked. Unknown
// values for those channels should be Unknown (-1), but some producers
// forward NaN for them and such events are otherwise usable.
func ValidateInput(in Input) error {
	switch in.EventType {
	case Down, Move, Up:
	default:
		return fmt.Errorf("%w: unknown event type %v", ErrInvalidInput, in.EventType)
	}
	if err := ValidateFinite(in.Position.X, "Input.position.x"); err != nil {
		return err
	}
	if err := ValidateFinite(in.Position.Y, "Input.position.y"); err != nil {
		return err
	}
	if err := ValidateFinite(in.Time.Value(), "Input.time"); err != nil {
		return err
	}
	return nil
}
