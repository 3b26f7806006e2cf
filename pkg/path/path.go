// pkg/path/path.go
package path

import (
	"fmt"
	"math"
	"sort"
)

// Point is a 2D coordinate in screen space.
type Point struct {
	X, Y float64
}

// Path is an immutable polyline the balloons travel along. A balloon's
// position is a single scalar: the distance walked from the first waypoint.
type Path struct {
	points []Point
	cum    []float64 // cum[i] = distance from points[0] to points[i]
	total  float64
}

// New builds a path from an ordered waypoint list. It needs at least two
// waypoints and rejects zero-length segments, so cumulative lengths are
// strictly increasing.
func New(points []Point) (*Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("path needs at least 2 waypoints, got %d", len(points))
	}
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		seg := dist(points[i-1], points[i])
		if seg <= 0 {
			return nil, fmt.Errorf("zero-length segment at waypoint %d", i)
		}
		cum[i] = cum[i-1] + seg
	}
	p := &Path{
		points: append([]Point(nil), points...),
		cum:    cum,
		total:  cum[len(cum)-1],
	}
	return p, nil
}

// Length returns the total path length.
func (p *Path) Length() float64 {
	return p.total
}

// Points returns the waypoint list for drawing.
func (p *Path) Points() []Point {
	return p.points
}

// PositionAt maps a progress distance to a position and a unit heading
// vector. Progress is clamped to [0, Length].
func (p *Path) PositionAt(progress float64) (Point, Point) {
	if progress <= 0 {
		return p.points[0], p.segmentDir(0)
	}
	if progress >= p.total {
		last := len(p.points) - 1
		return p.points[last], p.segmentDir(last - 1)
	}
	// Index of the first cumulative length >= progress; the containing
	// segment ends at that waypoint.
	i := sort.SearchFloat64s(p.cum, progress)
	seg := i - 1
	t := (progress - p.cum[seg]) / (p.cum[i] - p.cum[seg])
	a, b := p.points[seg], p.points[i]
	pos := Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
	return pos, p.segmentDir(seg)
}

// DistanceTo returns the shortest distance from (x, y) to the polyline.
// Placement validation uses it to keep towers off the track.
func (p *Path) DistanceTo(x, y float64) float64 {
	q := Point{X: x, Y: y}
	min := math.MaxFloat64
	for i := 1; i < len(p.points); i++ {
		if d := pointSegmentDist(q, p.points[i-1], p.points[i]); d < min {
			min = d
		}
	}
	return min
}

func (p *Path) segmentDir(seg int) Point {
	a, b := p.points[seg], p.points[seg+1]
	d := dist(a, b)
	return Point{X: (b.X - a.X) / d, Y: (b.Y - a.Y) / d}
}

func dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func pointSegmentDist(q, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	t := ((q.X-a.X)*abx + (q.Y-a.Y)*aby) / (abx*abx + aby*aby)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return dist(q, Point{X: a.X + abx*t, Y: a.Y + aby*t})
}
