// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/declview/chart/scene"

	"github.com/chewxy/math32"
)

// RadiusKind selects how a sector radius value is interpreted.
type RadiusKind int32

const (
	// RadiusRatio is a fraction of the available radius.
	RadiusRatio RadiusKind = iota

	// RadiusFixed is a length in pixels.
	RadiusFixed

	// RadiusInset is a pixel inset from the available radius.
	RadiusInset
)

// RadiusSpec configures a sector's inner or outer radius.
// The zero value is a ratio of 0.
type RadiusSpec struct {
	Kind  RadiusKind
	Value float32
}

// Ratio specifies a radius as a fraction of the available radius.
func Ratio(v float32) RadiusSpec { return RadiusSpec{Kind: RadiusRatio, Value: v} }

// Fixed specifies a radius in pixels.
func Fixed(px float32) RadiusSpec { return RadiusSpec{Kind: RadiusFixed, Value: px} }

// Inset specifies a radius inset from the plot edge, in pixels.
func Inset(px float32) RadiusSpec { return RadiusSpec{Kind: RadiusInset, Value: px} }

// resolve converts the spec to pixels given the available radius.
func (r RadiusSpec) resolve(avail float32) float32 {
	switch r.Kind {
	case RadiusFixed:
		return r.Value
	case RadiusInset:
		return avail - r.Value
	}
	return r.Value * avail
}

// sectorGeom is the chart-resolved geometry handed to one sector
// mark: its accumulated angular span and the shared polar frame.
type sectorGeom struct {
	start, end float32 // radians, 0 pointing up, clockwise
	cx, cy     float32
	avail      float32
}

// polar converts an angle and radius to scene coordinates. Angle 0
// points up, so the conversion rotates by -pi/2.
func (g sectorGeom) polar(ang, r float32) scene.Point {
	sin, cos := math32.Sincos(ang - math32.Pi/2)
	return scene.Pt(g.cx+r*cos, g.cy+r*sin)
}

// renderSector draws one pie or donut slice for the resolved angular
// span. The angular inset trims half the configured gap from each side
// of the slice; slices whose span vanishes produce nothing.
func (m *Mark) renderSector(g sectorGeom, fill string) scene.Node {
	start, end := g.start, g.end
	if m.AngularInset > 0 {
		half := m.AngularInset * math32.Pi / 180 / 2
		start += half
		end -= half
	}
	if end <= start {
		return nil
	}
	outer := m.Outer.resolve(g.avail)
	inner := math32.Max(0, m.Inner.resolve(g.avail))
	if outer <= 0 {
		return nil
	}
	inner = math32.Min(inner, outer)
	large := end-start > math32.Pi
	rOut := scene.Pt(outer, outer)

	p := &scene.Path{Fill: fill, Opacity: m.Opacity}
	if inner <= 0 {
		// Pie slice: center, out to the arc start, sweep, close.
		p.MoveTo(g.cx, g.cy)
		so := g.polar(start, outer)
		p.LineTo(so.X, so.Y)
		p.ArcTo(rOut, large, true, g.polar(end, outer))
		p.Close()
	} else {
		// Donut segment: outer arc, radial line in, inner arc back.
		so := g.polar(start, outer)
		p.MoveTo(so.X, so.Y)
		p.ArcTo(rOut, large, true, g.polar(end, outer))
		ei := g.polar(end, inner)
		p.LineTo(ei.X, ei.Y)
		p.ArcTo(scene.Pt(inner, inner), large, false, g.polar(start, inner))
		p.Close()
	}
	if m.Annotation == "" {
		return p
	}
	mid := g.polar((start+end)/2, (inner+outer)/2)
	grp := &scene.Group{}
	grp.Add(p, &scene.Text{
		X:       mid.X,
		Y:       mid.Y,
		Content: m.Annotation,
		Anchor:  scene.AnchorMiddle,
		Size:    11,
	})
	return grp
}
