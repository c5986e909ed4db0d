package curve

import "math"

// Summary describes a traced polyline.
type Summary struct {
	Points    int     // vertex count, including the starting move
	Segments  int     // line segments
	Length    float64 // total Euclidean length
	MaxRadius float64 // max distance of a vertex from the origin
	Closure   float64 // distance from the final vertex back to the first
}

// Summarize computes polyline statistics over the vertices.
func Summarize(pts []Point) Summary {
	s := Summary{Points: len(pts)}
	if len(pts) == 0 {
		return s
	}
	s.Segments = len(pts) - 1
	for i, p := range pts {
		if r := math.Hypot(p.X, p.Y); r > s.MaxRadius {
			s.MaxRadius = r
		}
		if i > 0 {
			s.Length += math.Hypot(p.X-pts[i-1].X, p.Y-pts[i-1].Y)
		}
	}
	first, last := pts[0], pts[len(pts)-1]
	s.Closure = math.Hypot(last.X-first.X, last.Y-first.Y)
	return s
}

// Radii returns the distance of each vertex from the origin, in trace
// order.
func Radii(pts []Point) []float64 {
	rs := make([]float64, len(pts))
	for i, p := range pts {
		rs[i] = math.Hypot(p.X, p.Y)
	}
	return rs
}
