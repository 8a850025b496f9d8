// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/declview/chart/scene"

	"github.com/chewxy/math32"
)

// renderRect draws a rectangle bounded independently per axis: the
// explicit start/end pair when given, the category band of a lone
// nominal value, or the full plot extent when the axis is unconstrained.
func (m *Mark) renderRect(ctx *renderContext) scene.Node {
	x0, x1 := m.rectSpan(ctx.x, m.X, m.XStart, m.XEnd, ctx.size.X, ctx.px)
	y0, y1 := m.rectSpan(ctx.y, m.Y, m.YStart, m.YEnd, ctx.size.Y, ctx.py)
	return &scene.Rect{
		X:       math32.Min(x0, x1),
		Y:       math32.Min(y0, y1),
		Width:   math32.Abs(x1 - x0),
		Height:  math32.Abs(y1 - y0),
		Fill:    m.fill(ctx),
		Opacity: m.Opacity,
		Radius:  m.Radius,
	}
}

// rectSpan resolves one axis interval for a rectangle mark.
func (m *Mark) rectSpan(s Scale, v, start, end *PlottableValue, size float32, pos func(*PlottableValue) float32) (float32, float32) {
	switch {
	case start != nil && end != nil:
		return pos(start), pos(end)
	case v != nil && v.Type == Nominal:
		p := s.Position(v)
		return p, p + s.Bandwidth()
	}
	return 0, size
}
