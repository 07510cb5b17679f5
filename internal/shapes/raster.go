package shapes

import "math"

// Contains reports whether the normalized point (u, v) lies inside the
// outline of k. Both axes run from -1 to 1 with v growing downward, so a
// renderer can sample one point per terminal cell.
func Contains(k Kind, u, v float64) bool {
	switch k {
	case Rectangle:
		return math.Abs(u) <= 0.9 && math.Abs(v) <= 0.6
	case Circle:
		return u*u+v*v <= 0.9*0.9
	case Triangle:
		return inPolygon(u, v, [][2]float64{{0, -0.9}, {0.9, 0.8}, {-0.9, 0.8}})
	case Trapezoid:
		return inPolygon(u, v, [][2]float64{{-0.5, -0.6}, {0.5, -0.6}, {0.9, 0.6}, {-0.9, 0.6}})
	case Pentagon:
		return inPolygon(u, v, regular(5, 0.9))
	case Hexagon:
		return inPolygon(u, v, regular(6, 0.9))
	default:
		return false
	}
}

// regular returns the corners of a regular polygon with one corner at the top.
func regular(n int, radius float64) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = [2]float64{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return pts
}

// inPolygon tests a point against a convex polygon given in either winding.
func inPolygon(u, v float64, pts [][2]float64) bool {
	var pos, neg bool
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		cross := (b[0]-a[0])*(v-a[1]) - (b[1]-a[1])*(u-a[0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
