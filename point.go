// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"log/slog"

	"github.com/declview/chart/scene"

	"github.com/chewxy/math32"
)

// SymbolKind is the shape drawn for a point mark.
type SymbolKind int32

const (
	SymbolCircle SymbolKind = iota
	SymbolSquare
	SymbolTriangle
	SymbolDiamond
	SymbolCross
	SymbolPlus
	SymbolStar
)

func (s SymbolKind) String() string {
	switch s {
	case SymbolSquare:
		return "square"
	case SymbolTriangle:
		return "triangle"
	case SymbolDiamond:
		return "diamond"
	case SymbolCross:
		return "cross"
	case SymbolPlus:
		return "plus"
	case SymbolStar:
		return "star"
	}
	return "circle"
}

// ParseSymbol returns the symbol for the given name, falling back to
// a circle for unrecognized names.
func ParseSymbol(name string) SymbolKind {
	switch name {
	case "circle":
		return SymbolCircle
	case "square":
		return SymbolSquare
	case "triangle":
		return SymbolTriangle
	case "diamond":
		return SymbolDiamond
	case "cross":
		return SymbolCross
	case "plus":
		return SymbolPlus
	case "star":
		return SymbolStar
	}
	slog.Debug("chart: unknown symbol, using circle", "symbol", name)
	return SymbolCircle
}

// renderPoint draws the mark's symbol at its (x, y) position, sized
// so the symbol covers SymbolArea square pixels.
func (m *Mark) renderPoint(ctx *renderContext) scene.Node {
	pos, ok := m.point(ctx)
	if !ok {
		return nil
	}
	r := math32.Sqrt(m.SymbolArea / math32.Pi)
	fill := m.fill(ctx)
	var node scene.Node
	switch m.Symbol {
	case SymbolSquare:
		node = &scene.Rect{
			X: pos.X - r, Y: pos.Y - r,
			Width: 2 * r, Height: 2 * r,
			Fill: fill, Opacity: m.Opacity,
		}
	case SymbolTriangle:
		node = polygonAt(pos, fill, m.Opacity,
			scene.Pt(0, -r), scene.Pt(-r, r), scene.Pt(r, r))
	case SymbolDiamond:
		node = polygonAt(pos, fill, m.Opacity,
			scene.Pt(0, -r), scene.Pt(r, 0), scene.Pt(0, r), scene.Pt(-r, 0))
	case SymbolPlus:
		node = polygonAt(pos, fill, m.Opacity, plusOutline(r)...)
	case SymbolCross:
		node = polygonAt(pos, fill, m.Opacity, rotate(plusOutline(r), math32.Pi/4)...)
	case SymbolStar:
		node = polygonAt(pos, fill, m.Opacity, starOutline(r)...)
	default:
		node = &scene.Circle{CX: pos.X, CY: pos.Y, R: r, Fill: fill, Opacity: m.Opacity}
	}
	if m.Annotation == "" {
		return node
	}
	g := &scene.Group{}
	g.Add(node, &scene.Text{
		X:       pos.X,
		Y:       pos.Y - r - 4,
		Content: m.Annotation,
		Anchor:  scene.AnchorMiddle,
		Size:    11,
	})
	return g
}

// polygonAt builds a polygon from offsets relative to a center point.
func polygonAt(center scene.Point, fill string, opacity float32, offsets ...scene.Point) *scene.Polygon {
	pts := make([]scene.Point, len(offsets))
	for i, o := range offsets {
		pts[i] = scene.Pt(center.X+o.X, center.Y+o.Y)
	}
	return &scene.Polygon{Points: pts, Fill: fill, Opacity: opacity}
}

// plusOutline traces a plus sign of extent r with arms r/3 thick,
// as offsets from the center.
func plusOutline(r float32) []scene.Point {
	t := r / 3
	return []scene.Point{
		{X: -t, Y: -r}, {X: t, Y: -r}, {X: t, Y: -t}, {X: r, Y: -t},
		{X: r, Y: t}, {X: t, Y: t}, {X: t, Y: r}, {X: -t, Y: r},
		{X: -t, Y: t}, {X: -r, Y: t}, {X: -r, Y: -t}, {X: -t, Y: -t},
	}
}

// starOutline traces a five-pointed star of outer radius r.
func starOutline(r float32) []scene.Point {
	const inner = 0.4
	pts := make([]scene.Point, 10)
	for i := range pts {
		rad := r
		if i%2 == 1 {
			rad *= inner
		}
		ang := float32(i)*math32.Pi/5 - math32.Pi/2
		pts[i] = scene.Pt(rad*math32.Cos(ang), rad*math32.Sin(ang))
	}
	return pts
}

// rotate rotates offsets about the origin.
func rotate(pts []scene.Point, ang float32) []scene.Point {
	sin, cos := math32.Sincos(ang)
	out := make([]scene.Point, len(pts))
	for i, p := range pts {
		out[i] = scene.Pt(p.X*cos-p.Y*sin, p.X*sin+p.Y*cos)
	}
	return out
}
