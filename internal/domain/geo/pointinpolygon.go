package geo

// horizontalEdgeEpsilon keeps the x-intercept computation finite when an
// edge is horizontal (yj == yi). Inherited from the original geofencing
// implementation; do not change without revisiting resolver behavior.
const horizontalEdgeEpsilon = 1e-9

// Contains reports whether the point (lat, lng) lies inside the polygon
// using the ray-casting even-odd rule: a horizontal ray cast eastward from
// the point crosses an edge when the edge's vertices straddle the point's
// latitude and the edge's x-intercept at that latitude lies east of the
// point. An odd crossing count means inside.
//
// Membership of a point exactly on an edge is undefined (standard
// ray-casting ambiguity); callers must not rely on either outcome.
// An empty or degenerate polygon contains nothing.
func (p Polygon) Contains(lat, lng float64) bool {
	if len(p) < MinPolygonVertices {
		return false
	}

	x, y := lng, lat
	inside := false
	n := len(p)

	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		xi, yi := p[i].Lng, p[i].Lat
		xj, yj := p[j].Lng, p[j].Lat

		straddles := (yi > y) != (yj > y)
		if straddles && x < (xj-xi)*(y-yi)/(yj-yi+horizontalEdgeEpsilon)+xi {
			inside = !inside
		}
	}

	return inside
}
