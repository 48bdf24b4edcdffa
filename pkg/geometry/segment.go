package geometry

// NearestPointOnSegment returns the point on the segment from segStart to
// segEnd that is closest to point, expressed as the ratio t in [0, 1] such
// that segStart + t*(segEnd-segStart) is that point. A degenerate segment
// (segStart == segEnd) yields 0 without evaluating the projection ratio.
func NearestPointOnSegment(segStart, segEnd, point Vec2) float64 {
	if segStart == segEnd {
		return 0
	}
	segment := segEnd.Sub(segStart)
	projection := point.Sub(segStart)
	return Clamp01(projection.Dot(segment) / segment.Dot(segment))
}
