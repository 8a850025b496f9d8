// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/declview/chart/scene"

	"github.com/chewxy/math32"
)

// renderBar emits the rectangle for one bar mark. The nominal axis
// supplies the band position and width; the quantitative axis supplies
// the interval from the value to the zero baseline, shifted by base
// when the bar is stacked, or the explicit start/end pair for ranged
// bars. Bars with no nominal axis produce nothing.
func (m *Mark) renderBar(ctx *renderContext, base float64) scene.Node {
	var box *scene.Rect
	switch {
	case m.X != nil && m.X.Type == Nominal:
		box = m.verticalBar(ctx, base)
	case m.Y != nil && m.Y.Type == Nominal:
		box = m.horizontalBar(ctx, base)
	}
	if box == nil {
		return nil
	}
	box.Fill = m.fill(ctx)
	box.Opacity = m.Opacity
	box.Radius = m.Radius
	if m.Annotation == "" {
		return box
	}
	g := &scene.Group{}
	g.Add(box, &scene.Text{
		X:       box.X + box.Width/2,
		Y:       box.Y - 4,
		Content: m.Annotation,
		Anchor:  scene.AnchorMiddle,
		Size:    11,
	})
	return g
}

func (m *Mark) verticalBar(ctx *renderContext, base float64) *scene.Rect {
	x := ctx.x.Position(m.X)
	w := ctx.x.Bandwidth()
	var y0, y1 float32
	switch {
	case m.YStart != nil && m.YEnd != nil:
		y0 = ctx.y.Position(m.YStart)
		y1 = ctx.y.Position(m.YEnd)
	case m.Y != nil:
		y0 = ctx.y.PositionValue(base)
		y1 = ctx.y.PositionValue(base + m.Y.Number)
	default:
		return nil
	}
	return &scene.Rect{
		X:      x,
		Y:      math32.Min(y0, y1),
		Width:  w,
		Height: math32.Abs(y1 - y0),
	}
}

func (m *Mark) horizontalBar(ctx *renderContext, base float64) *scene.Rect {
	y := ctx.y.Position(m.Y)
	h := ctx.y.Bandwidth()
	var x0, x1 float32
	switch {
	case m.XStart != nil && m.XEnd != nil:
		x0 = ctx.x.Position(m.XStart)
		x1 = ctx.x.Position(m.XEnd)
	case m.X != nil:
		x0 = ctx.x.PositionValue(base)
		x1 = ctx.x.PositionValue(base + m.X.Number)
	default:
		return nil
	}
	return &scene.Rect{
		X:      math32.Min(x0, x1),
		Y:      y,
		Width:  math32.Abs(x1 - x0),
		Height: h,
	}
}
