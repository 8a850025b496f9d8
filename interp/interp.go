// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp converts an ordered point sequence into a vector
// path under one of six interpolation methods. All methods degrade
// gracefully: an empty input yields an empty path, a single point a
// degenerate one, and an unknown method name falls back to [Linear].
package interp

import (
	"log/slog"

	"github.com/declview/chart/scene"
)

// Method names a curve-fitting algorithm for connecting points.
type Method string

const (
	// Linear connects consecutive points with straight segments.
	Linear Method = "linear"

	// Step places a vertical transition at the midpoint between
	// consecutive points.
	Step Method = "step"

	// StepStart transitions vertically at the first point, then
	// runs horizontally.
	StepStart Method = "stepStart"

	// StepEnd runs horizontally, then transitions vertically at
	// the second point.
	StepEnd Method = "stepEnd"

	// CatmullRom fits a Catmull-Rom spline (tension 0.5) through
	// the points, emitting one cubic segment per interval.
	CatmullRom Method = "catmullRom"

	// Monotone fits a cubic through the points using finite-difference
	// tangents, which avoids the overshoot Catmull-Rom can produce.
	Monotone Method = "monotone"
)

// catmullRomTension is the default spline tension.
const catmullRomTension = 0.5

// ParseMethod returns the method for the given name,
// falling back to Linear for unrecognized names.
func ParseMethod(name string) Method {
	switch Method(name) {
	case Linear, Step, StepStart, StepEnd, CatmullRom, Monotone:
		return Method(name)
	}
	slog.Debug("interp: unknown method, using linear", "method", name)
	return Linear
}

// Interpolate builds the path connecting pts under the given method.
// The points are used in the order given; callers sort beforehand.
func Interpolate(pts []scene.Point, m Method) *scene.Path {
	p := &scene.Path{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 1 {
		return p
	}
	switch m {
	case Step:
		step(p, pts, 0.5)
	case StepStart:
		step(p, pts, 0)
	case StepEnd:
		step(p, pts, 1)
	case CatmullRom:
		catmullRom(p, pts)
	case Monotone:
		monotone(p, pts)
	default:
		linear(p, pts)
	}
	return p
}

// CloseToBaseline extends a path down to the given baseline y at its
// last point, back along the baseline to the first point, and closes
// it, turning a line path into an area fill outline.
func CloseToBaseline(p *scene.Path, first, last scene.Point, baseY float32) *scene.Path {
	if p.Empty() {
		return p
	}
	p.LineTo(last.X, baseY)
	p.LineTo(first.X, baseY)
	p.Close()
	return p
}

func linear(p *scene.Path, pts []scene.Point) {
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// step draws a parameterized step between consecutive points, with the
// vertical transition at fraction t of the horizontal interval:
// 0 steps at the start, 1 at the end, 0.5 at the midpoint.
func step(p *scene.Path, pts []scene.Point, t float32) {
	prev := pts[0]
	for _, pt := range pts[1:] {
		xm := prev.X + (pt.X-prev.X)*t
		p.LineTo(xm, prev.Y)
		p.LineTo(xm, pt.Y)
		p.LineTo(pt.X, pt.Y)
		prev = pt
	}
}

// catmullRom emits one cubic per interval, deriving control points
// from the neighboring points (clamped at the sequence boundaries):
//
//	cp1 = p1 + (p2-p0)/6 * tension
//	cp2 = p2 - (p3-p1)/6 * tension
//
// Two points degenerate to a straight segment.
func catmullRom(p *scene.Path, pts []scene.Point) {
	if len(pts) == 2 {
		linear(p, pts)
		return
	}
	n := len(pts)
	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]

		c1 := scene.Pt(
			p1.X+(p2.X-p0.X)/6*catmullRomTension,
			p1.Y+(p2.Y-p0.Y)/6*catmullRomTension,
		)
		c2 := scene.Pt(
			p2.X-(p3.X-p1.X)/6*catmullRomTension,
			p2.Y-(p3.Y-p1.Y)/6*catmullRomTension,
		)
		p.CubicTo(c1, c2, p2)
	}
}

// monotone computes per-point tangents by finite differences (endpoint
// tangent = the adjacent interval's slope, interior tangent = average
// of the two adjacent slopes) and emits one cubic per interval with
// dx/3-scaled control offsets.
func monotone(p *scene.Path, pts []scene.Point) {
	n := len(pts)
	slopes := make([]float32, n-1)
	for i := 0; i < n-1; i++ {
		dx := pts[i+1].X - pts[i].X
		if dx == 0 {
			slopes[i] = 0
			continue
		}
		slopes[i] = (pts[i+1].Y - pts[i].Y) / dx
	}
	tangents := make([]float32, n)
	tangents[0] = slopes[0]
	tangents[n-1] = slopes[n-2]
	for i := 1; i < n-1; i++ {
		tangents[i] = (slopes[i-1] + slopes[i]) / 2
	}
	for i := 0; i < n-1; i++ {
		p1 := pts[i]
		p2 := pts[i+1]
		dx := (p2.X - p1.X) / 3
		c1 := scene.Pt(p1.X+dx, p1.Y+tangents[i]*dx)
		c2 := scene.Pt(p2.X-dx, p2.Y-tangents[i+1]*dx)
		p.CubicTo(c1, c2, p2)
	}
}
