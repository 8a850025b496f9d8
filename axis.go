// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/declview/chart/scene"

// Axis and gridline styling shared by both axes.
const (
	axisColor     = "#444444"
	gridColor     = "#e0e0e0"
	tickLength    = 5
	tickLabelSize = 11
	axisLabelSize = 12
)

// AxisConfig controls one axis of a chart.
type AxisConfig struct {
	// Hidden suppresses the axis line, ticks, and labels.
	// Gridlines are controlled separately.
	Hidden bool

	// GridLines overrides whether gridlines are drawn at tick
	// positions; the default draws them.
	GridLines DefaultOffOn

	// Label is the axis title.
	Label string

	// TickCount is the desired number of ticks for a quantitative
	// axis; 0 uses the default. Nominal axes tick every category.
	TickCount int

	// TickValues explicitly sets quantitative tick positions,
	// bypassing generation.
	TickValues []float64
}

// axisTicks resolves the ticks for one axis from its scale and config.
func (a *AxisConfig) axisTicks(s Scale) []Tick {
	if len(a.TickValues) > 0 && s.Kind() == ScaleLinear {
		ts := make([]Tick, len(a.TickValues))
		for i, v := range a.TickValues {
			ts[i] = Tick{Value: v, Label: formatTick(v, false)}
		}
		return ts
	}
	n := a.TickCount
	if n <= 0 {
		n = defaultTickCount
	}
	return s.Ticks(n)
}

// tickPos maps a tick to its axis position, centering band ticks.
func tickPos(s Scale, t Tick) float32 {
	p := s.PositionValue(t.Value)
	if s.Kind() == ScaleBand {
		p += s.Bandwidth() / 2
	}
	return p
}

// drawXAxis emits the bottom axis: gridlines into the plot group,
// the axis line, tick marks, and labels into root coordinates.
func (c *Chart) drawXAxis(root, pg *scene.Group, s Scale, w, h float32) {
	ticks := c.xAxis.axisTicks(s)
	if c.xAxis.GridLines != Off {
		for _, t := range ticks {
			x := tickPos(s, t)
			if x < 0 || x > w {
				continue
			}
			pg.Add(&scene.Line{X1: x, Y1: 0, X2: x, Y2: h, Stroke: gridColor, Width: 1})
		}
	}
	if c.xAxis.Hidden {
		return
	}
	g := &scene.Group{Z: 1}
	y := c.padding.Top + h
	g.Add(&scene.Line{
		X1: c.padding.Left, Y1: y,
		X2: c.padding.Left + w, Y2: y,
		Stroke: axisColor, Width: 1,
	})
	for _, t := range ticks {
		x := tickPos(s, t)
		if x < 0 || x > w {
			continue
		}
		x += c.padding.Left
		g.Add(
			&scene.Line{X1: x, Y1: y, X2: x, Y2: y + tickLength, Stroke: axisColor, Width: 1},
			&scene.Text{
				X: x, Y: y + tickLength + tickLabelSize,
				Content: t.Label,
				Anchor:  scene.AnchorMiddle,
				Size:    tickLabelSize,
				Color:   axisColor,
			},
		)
	}
	if c.xAxis.Label != "" {
		g.Add(&scene.Text{
			X: c.padding.Left + w/2, Y: c.height - 4,
			Content: c.xAxis.Label,
			Anchor:  scene.AnchorMiddle,
			Size:    axisLabelSize,
			Color:   axisColor,
		})
	}
	root.Add(g)
}

// drawYAxis emits the left axis, mirroring drawXAxis.
func (c *Chart) drawYAxis(root, pg *scene.Group, s Scale, w, h float32) {
	ticks := c.yAxis.axisTicks(s)
	if c.yAxis.GridLines != Off {
		for _, t := range ticks {
			y := tickPos(s, t)
			if y < 0 || y > h {
				continue
			}
			pg.Add(&scene.Line{X1: 0, Y1: y, X2: w, Y2: y, Stroke: gridColor, Width: 1})
		}
	}
	if c.yAxis.Hidden {
		return
	}
	g := &scene.Group{Z: 1}
	x := c.padding.Left
	g.Add(&scene.Line{
		X1: x, Y1: c.padding.Top,
		X2: x, Y2: c.padding.Top + h,
		Stroke: axisColor, Width: 1,
	})
	for _, t := range ticks {
		y := tickPos(s, t)
		if y < 0 || y > h {
			continue
		}
		y += c.padding.Top
		g.Add(
			&scene.Line{X1: x - tickLength, Y1: y, X2: x, Y2: y, Stroke: axisColor, Width: 1},
			&scene.Text{
				X: x - tickLength - 3, Y: y + tickLabelSize/2 - 1,
				Content: t.Label,
				Anchor:  scene.AnchorEnd,
				Size:    tickLabelSize,
				Color:   axisColor,
			},
		)
	}
	if c.yAxis.Label != "" {
		g.Add(&scene.Text{
			X: x, Y: c.padding.Top - 8,
			Content: c.yAxis.Label,
			Anchor:  scene.AnchorStart,
			Size:    axisLabelSize,
			Color:   axisColor,
		})
	}
	root.Add(g)
}
