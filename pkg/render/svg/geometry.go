package svg

import (
	"math"

	"github.com/matzehuels/dagsvg/pkg/layout"
)

// ToCanvas maps a layout-space point to canvas pixels. The y axis is
// inverted: layout space grows upward, canvas space grows downward.
func (c Config) ToCanvas(p layout.Point) (x, y float64) {
	return float64(c.CanvasWidth)/2 + p.X*c.ScaleX,
		float64(c.CanvasHeight)/2 - p.Y*c.ScaleY
}

// FromCanvas is the inverse of [Config.ToCanvas]. Scales must be non-zero.
func (c Config) FromCanvas(x, y float64) layout.Point {
	return layout.Point{
		X: (x - float64(c.CanvasWidth)/2) / c.ScaleX,
		Y: (float64(c.CanvasHeight)/2 - y) / c.ScaleY,
	}
}

// Segment is a line between two canvas-space points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	dx, dy := s.X2-s.X1, s.Y2-s.Y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Shorten moves the start of s forward by start pixels and the end back by
// end pixels, both along the direction from start to end. A zero-length
// segment is returned unchanged.
func Shorten(s Segment, start, end float64) Segment {
	length := s.Length()
	if length == 0 {
		return s
	}
	ux, uy := (s.X2-s.X1)/length, (s.Y2-s.Y1)/length
	return Segment{
		X1: s.X1 + ux*start,
		Y1: s.Y1 + uy*start,
		X2: s.X2 - ux*end,
		Y2: s.Y2 - uy*end,
	}
}
