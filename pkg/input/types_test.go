package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkstream/inkstream/pkg/geometry"
)

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "Down", Down.String())
	assert.Equal(t, "Move", Move.String())
	assert.Equal(t, "Up", Up.String())
	assert.Equal(t, "EventType(-1)", EventType(-1).String())
	assert.Equal(t, "EventType(42)", EventType(42).String())
}

func TestNewInputDefaultsAuxToUnknown(t *testing.T) {
	in := NewInput(Move, geometry.Vec2{X: 1, Y: 2}, 0.25)

	assert.Equal(t, Move, in.EventType)
	assert.Equal(t, geometry.Vec2{X: 1, Y: 2}, in.Position)
	assert.Equal(t, 0.25, in.Time.Value())
	assert.Equal(t, float64(Unknown), in.Pressure)
	assert.Equal(t, float64(Unknown), in.Tilt)
	assert.Equal(t, float64(Unknown), in.Orientation)
}

func TestTimeAndDurationValue(t *testing.T) {
	assert.Equal(t, 1.5, Time(1.5).Value())
	assert.Equal(t, -0.25, Duration(-0.25).Value())
}

func TestInputString(t *testing.T) {
	in := NewInput(Down, geometry.Vec2{X: 3, Y: 4}, 2)
	assert.Equal(t, "<Input: Down, pos=(3, 4), time=2>", in.String())
}
