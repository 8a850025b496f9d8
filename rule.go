// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/declview/chart/scene"

// renderRule draws a rule line. Exactly one of four configurations is
// legal: a lone y (full-span horizontal), a lone x (full-span
// vertical), xStart/xEnd with y (bounded horizontal), or yStart/yEnd
// with x (bounded vertical). Anything else produces nothing.
func (m *Mark) renderRule(ctx *renderContext) scene.Node {
	hasX := m.X != nil
	hasY := m.Y != nil
	hasXR := m.XStart != nil && m.XEnd != nil
	hasYR := m.YStart != nil && m.YEnd != nil

	ln := &scene.Line{
		Stroke:  m.fill(ctx),
		Width:   m.Line.Width,
		Dash:    m.Line.Dash,
		Opacity: m.Opacity,
	}
	switch {
	case hasXR && hasY && !hasX && !hasYR:
		y := ctx.py(m.Y)
		ln.X1, ln.Y1 = ctx.px(m.XStart), y
		ln.X2, ln.Y2 = ctx.px(m.XEnd), y
	case hasYR && hasX && !hasY && !hasXR:
		x := ctx.px(m.X)
		ln.X1, ln.Y1 = x, ctx.py(m.YStart)
		ln.X2, ln.Y2 = x, ctx.py(m.YEnd)
	case hasY && !hasX && !hasXR && !hasYR:
		y := ctx.py(m.Y)
		ln.X1, ln.Y1 = 0, y
		ln.X2, ln.Y2 = ctx.size.X, y
	case hasX && !hasY && !hasXR && !hasYR:
		x := ctx.px(m.X)
		ln.X1, ln.Y1 = x, 0
		ln.X2, ln.Y2 = x, ctx.size.Y
	default:
		return nil
	}
	return ln
}
