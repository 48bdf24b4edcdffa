package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestPointOnSegment(t *testing.T) {
	segStart := Vec2{X: 0, Y: 0}
	segEnd := Vec2{X: 10, Y: 0}

	tests := []struct {
		name  string
		point Vec2
		want  float64
	}{
		{"above the middle", Vec2{X: 5, Y: 5}, 0.5},
		{"before the start", Vec2{X: -5, Y: 0}, 0},
		{"past the end", Vec2{X: 15, Y: 0}, 1},
		{"on the segment", Vec2{X: 2.5, Y: 0}, 0.25},
		{"off axis, interior", Vec2{X: 7.5, Y: -100}, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestPointOnSegment(segStart, segEnd, tt.point))
		})
	}
}

func TestNearestPointOnSegmentDiagonal(t *testing.T) {
	got := NearestPointOnSegment(Vec2{X: 1, Y: 1}, Vec2{X: 3, Y: 3}, Vec2{X: 1, Y: 3})
	assert.InDelta(t, 0.5, got, 1e-12)
}

func TestNearestPointOnSegmentDegenerate(t *testing.T) {
	p := Vec2{X: 4, Y: -4}
	points := []Vec2{{}, {X: 100, Y: 100}, p}
	for _, point := range points {
		assert.Equal(t, 0.0, NearestPointOnSegment(p, p, point),
			"degenerate segment at %v, point %v", p, point)
	}
}
