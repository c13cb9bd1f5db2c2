// Package geom holds the plane and space helpers used to lay out a moored frame.
//
// Angles are in degrees. The frame uses a project-fixed coordinate system
// with z negative downward from the free surface.
package geom

import (
	"math"
	"strconv"
	"strings"
)

// Vec3 is a position in the project frame.
type Vec3 struct {
	X, Y, Z float64
}

// Rotate turns (x, y) by deg degrees about the origin:
//
//	x' = x·cos θ + y·sin θ
//	y' = y·cos θ − x·sin θ
//
// Positive angles rotate clockwise when y points north.
func Rotate(x, y, deg float64) (float64, float64) {
	r := Radians(deg)
	sin, cos := math.Sin(r), math.Cos(r)
	return x*cos + y*sin, y*cos - x*sin
}

// Polar converts a horizontal length and bearing to cartesian coordinates
// displaced by (x0, y0). Bearings are measured from the y axis.
func Polar(length, deg, x0, y0 float64) (float64, float64) {
	r := Radians(deg)
	return x0 + length*math.Sin(r), y0 + length*math.Cos(r)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Hypot returns the length of the hypotenuse for a horizontal run and a
// vertical drop.
func Hypot(horizontal, vertical float64) float64 {
	return math.Sqrt(horizontal*horizontal + vertical*vertical)
}

// Format writes v in its shortest round-trip decimal form. Integral values
// keep a trailing ".0" and magnitudes outside [1e-4, 1e16) use exponent
// notation, matching the number format the simulation tool reads.
func Format(v float64) string {
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
