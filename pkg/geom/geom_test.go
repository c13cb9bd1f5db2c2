package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		deg    float64
		wx, wy float64
	}{
		{"zero", 3, 4, 0, 3, 4},
		{"quarter", 1, 0, 90, 0, -1},
		{"quarter y", 0, 1, 90, 1, 0},
		{"half", 2, 5, 180, -2, -5},
		{"negative quarter", 1, 0, -90, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Rotate(tt.x, tt.y, tt.deg)
			if !near(x, tt.wx) || !near(y, tt.wy) {
				t.Errorf("Rotate(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, tt.deg, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestRotateInverse(t *testing.T) {
	points := [][2]float64{{0, 0}, {20, 0}, {0, 20}, {37.5, -12.25}, {-100, 250}}
	angles := []float64{-270, -45, 0, 13.7, 90, 123.4, 359}

	for _, p := range points {
		for _, deg := range angles {
			x, y := Rotate(p[0], p[1], deg)
			bx, by := Rotate(x, y, -deg)
			if !near(bx, p[0]) || !near(by, p[1]) {
				t.Errorf("Rotate(Rotate(%v, %v), %v) = (%v, %v)", p, deg, -deg, bx, by)
			}
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	x, y := Rotate(30, 40, 71)
	if !near(math.Hypot(x, y), 50) {
		t.Errorf("length after rotation = %v, want 50", math.Hypot(x, y))
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name   string
		l, deg float64
		x0, y0 float64
		wx, wy float64
	}{
		{"north", 10, 0, 0, 0, 0, 10},
		{"east", 10, 90, 0, 0, 10, 0},
		{"south displaced", 5, 180, 1, 1, 1, -4},
		{"diagonal", math.Sqrt2, 45, 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Polar(tt.l, tt.deg, tt.x0, tt.y0)
			if !near(x, tt.wx) || !near(y, tt.wy) {
				t.Errorf("Polar(%v, %v) = (%v, %v), want (%v, %v)", tt.l, tt.deg, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestHypot(t *testing.T) {
	if got := Hypot(50, 50); !near(got, 50*math.Sqrt2) {
		t.Errorf("Hypot(50, 50) = %v", got)
	}
	// Square root of the sum of squares, not math.Hypot's scaled form.
	for _, tt := range []struct{ h, d float64 }{{250, 72}, {90.5, 47.25}, {3, 4}} {
		if got, want := Hypot(tt.h, tt.d), math.Sqrt(tt.h*tt.h+tt.d*tt.d); got != want {
			t.Errorf("Hypot(%v, %v) = %v, want %v", tt.h, tt.d, got, want)
		}
	}
}

func TestRadians(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, 135, 225, 333.3} {
		if got, want := Radians(deg), deg*(math.Pi/180); got != want {
			t.Errorf("Radians(%v) = %v, want %v", deg, got, want)
		}
	}
	if got := Radians(180); got != math.Pi {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{-5, "-5.0"},
		{20, "20.0"},
		{0.1, "0.1"},
		{-30.25, "-30.25"},
		{1.2246467991473532e-16, "1.2246467991473532e-16"},
		{1e16, "1e+16"},
		{123456.5, "123456.5"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
