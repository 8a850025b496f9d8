// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart is a declarative charting engine: given a dataset and
// per-item mark descriptions (bar, line, point, area, rule, rectangle,
// sector), it infers axis scales, resolves mark geometry, groups marks
// into series, interpolates paths, and emits a renderable vector scene.
//
// A Chart is a long-lived [view.View]; every Render pass rebuilds the
// mark list from the data, derives fresh scales and series groupings,
// and emits the scene from scratch. Rendering is synchronous,
// single-threaded, and idempotent, and degrades gracefully: marks
// missing required values are skipped, degenerate scale domains are
// widened, and unknown interpolation or symbol names fall back to
// sane defaults. Render never fails under well-typed input.
package chart

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/declview/chart/interp"
	"github.com/declview/chart/scene"
	"github.com/declview/chart/view"

	"github.com/chewxy/math32"
)

// DefaultOffOn overrides a default-on/off decision: Default defers to
// the engine, Off and On force the choice.
type DefaultOffOn int32

const (
	Default DefaultOffOn = iota
	Off
	On
)

// Insets are the paddings between the frame and the plot area.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Default frame and padding.
var (
	defaultFrame  = scene.Pt(640, 480)
	defaultInsets = Insets{Top: 24, Right: 24, Bottom: 44, Left: 54}
)

// renderOrder is the fixed back-to-front z-order of Cartesian mark
// kinds, independent of declaration order.
var renderOrder = []MarkKind{KindRect, KindArea, KindBar, KindRule, KindLine, KindPoint}

// Chart is a [view.View].
var _ view.View = (*Chart)(nil)

// Chart owns a data source and its mark builder, plus frame, axis,
// scale, and legend configuration. Configuration mutates in place via
// the fluent methods; all derived state (marks, scales, series,
// color assignments) is ephemeral per render pass.
type Chart struct {
	build func() []*Mark

	width, height float32
	padding       Insets
	title         string

	xAxis, yAxis   AxisConfig
	xScale, yScale ScaleConfig
	legend         LegendConfig

	background view.Color
	plotFill   view.Color
	palette    []view.Color
}

// New returns a chart over a data array: the builder runs once per
// item on every render pass, and items whose builder returns nil
// contribute no mark.
func New[T any](data []T, build func(item T) *Mark) *Chart {
	return NewFunc(func() []*Mark {
		marks := make([]*Mark, 0, len(data))
		for _, item := range data {
			if m := build(item); m != nil {
				marks = append(marks, m)
			}
		}
		return marks
	})
}

// NewMarks returns a chart over a static mark list.
func NewMarks(marks ...*Mark) *Chart {
	return NewFunc(func() []*Mark {
		out := make([]*Mark, 0, len(marks))
		for _, m := range marks {
			if m != nil {
				out = append(out, m)
			}
		}
		return out
	})
}

// NewFunc returns a chart whose builder produces the full mark list.
func NewFunc(build func() []*Mark) *Chart {
	return &Chart{
		build:   build,
		width:   defaultFrame.X,
		height:  defaultFrame.Y,
		padding: defaultInsets,
		palette: DefaultPalette,
	}
}

//////// Configuration

// Frame sets the chart's outer pixel dimensions.
func (c *Chart) Frame(width, height float32) *Chart {
	c.width, c.height = width, height
	return c
}

// Padding sets the insets between the frame and the plot area.
func (c *Chart) Padding(in Insets) *Chart {
	c.padding = in
	return c
}

// Title sets the chart title, drawn centered at the top.
func (c *Chart) Title(t string) *Chart {
	c.title = t
	return c
}

// XAxis configures the horizontal axis.
func (c *Chart) XAxis(a AxisConfig) *Chart {
	c.xAxis = a
	return c
}

// YAxis configures the vertical axis.
func (c *Chart) YAxis(a AxisConfig) *Chart {
	c.yAxis = a
	return c
}

// XScale overrides the inferred horizontal scale.
func (c *Chart) XScale(s ScaleConfig) *Chart {
	c.xScale = s
	return c
}

// YScale overrides the inferred vertical scale.
func (c *Chart) YScale(s ScaleConfig) *Chart {
	c.yScale = s
	return c
}

// Legend configures legend visibility and placement.
func (c *Chart) Legend(l LegendConfig) *Chart {
	c.legend = l
	return c
}

// Background sets the frame background fill.
func (c *Chart) Background(col view.Color) *Chart {
	c.background = col
	return c
}

// PlotStyle sets the plot-area background fill.
func (c *Chart) PlotStyle(fill view.Color) *Chart {
	c.plotFill = fill
	return c
}

// Palette overrides the categorical color palette for this chart.
func (c *Chart) Palette(p []view.Color) *Chart {
	if len(p) > 0 {
		c.palette = p
	}
	return c
}

//////// Rendering

// Render builds the chart scene, implementing [view.View]. It fully
// recomputes marks, scales, and series groupings from the current
// configuration and data; nothing carries over between calls.
func (c *Chart) Render() *scene.Group {
	root := &scene.Group{}
	if !c.background.IsZero() {
		root.Add(&scene.Rect{Width: c.width, Height: c.height, Fill: c.background.CSS()})
	}

	marks := c.build()
	cs := newColorScale(marks, c.palette)

	polar := false
	for _, m := range marks {
		if m.Kind == KindSector {
			polar = true
			break
		}
	}
	if polar {
		c.renderPolar(root, marks, cs)
	} else {
		c.renderCartesian(root, marks, cs)
	}
	c.drawLegend(root, cs)

	if c.title != "" {
		root.Add(&scene.Text{
			X: c.width / 2, Y: 16,
			Content: c.title,
			Anchor:  scene.AnchorMiddle,
			Size:    14,
		})
	}
	return root
}

// WriteSVG serializes a render pass as an SVG document.
func (c *Chart) WriteSVG(w io.Writer) {
	scene.WriteSVG(w, c.Render(), c.width, c.height)
}

// SVGString returns a render pass as an SVG document string.
func (c *Chart) SVGString() string {
	return c.Render().SVGString(c.width, c.height)
}

// SVGToFile renders the chart and writes the SVG document to filename.
func (c *Chart) SVGToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	c.WriteSVG(f)
	return f.Close()
}

// plotSize returns the plot-area dimensions inside the padding.
func (c *Chart) plotSize() (w, h float32) {
	return c.width - c.padding.Left - c.padding.Right,
		c.height - c.padding.Top - c.padding.Bottom
}

func (c *Chart) renderCartesian(root *scene.Group, marks []*Mark, cs *colorScale) {
	w, h := c.plotSize()

	var xs, ys []*PlottableValue
	for _, m := range marks {
		xs = append(xs, m.X, m.XStart, m.XEnd)
		ys = append(ys, m.Y, m.YStart, m.YEnd)
	}
	sx, sy := stackExtents(marks)
	xs = append(xs, sx...)
	ys = append(ys, sy...)
	ctx := &renderContext{
		x:        buildScale(xs, w, false, c.xScale),
		y:        buildScale(ys, h, true, c.yScale),
		size:     scene.Pt(w, h),
		colorOf:  cs.of,
		fallback: c.palette[0].CSS(),
	}

	pg := &scene.Group{Tx: c.padding.Left, Ty: c.padding.Top, Z: 1}
	if !c.plotFill.IsZero() {
		pg.Add(&scene.Rect{Width: w, Height: h, Fill: c.plotFill.CSS()})
	}
	c.drawXAxis(root, pg, ctx.x, w, h)
	c.drawYAxis(root, pg, ctx.y, w, h)

	for _, kind := range renderOrder {
		switch kind {
		case KindBar:
			c.renderBars(pg, ctx, marks)
		case KindLine, KindArea:
			c.renderSeries(pg, ctx, marks, kind)
		default:
			for _, m := range marks {
				if m.Kind != kind {
					continue
				}
				pg.Add(m.render(ctx))
			}
		}
	}
	root.Add(pg)
}

// stackExtents returns the cumulative stacked totals of bar marks so
// the value scale's domain covers the full stack height, not just the
// tallest individual segment.
func stackExtents(marks []*Mark) (xs, ys []*PlottableValue) {
	pos := map[string]float64{}
	neg := map[string]float64{}
	for _, m := range marks {
		if m.Kind != KindBar || m.Stack != StackingStandard {
			continue
		}
		cat, val := m.stackSlots()
		if cat == nil || val == nil {
			continue
		}
		key := cat.Key()
		var total float64
		if val.Number >= 0 {
			pos[key] += val.Number
			total = pos[key]
		} else {
			neg[key] += val.Number
			total = neg[key]
		}
		pv := &PlottableValue{Label: val.Label, Number: total, Type: val.Type}
		if cat == m.X {
			ys = append(ys, pv)
		} else {
			xs = append(xs, pv)
		}
	}
	return xs, ys
}

// renderBars emits all bar marks, stacking same-category bars
// cumulatively (offset by sign) unless unstacked or explicitly ranged.
func (c *Chart) renderBars(pg *scene.Group, ctx *renderContext, marks []*Mark) {
	pos := map[string]float64{}
	neg := map[string]float64{}
	for _, m := range marks {
		if m.Kind != KindBar {
			continue
		}
		base := 0.0
		cat, val := m.stackSlots()
		if m.Stack == StackingStandard && cat != nil && val != nil {
			key := cat.Key()
			if val.Number >= 0 {
				base = pos[key]
				pos[key] += val.Number
			} else {
				base = neg[key]
				neg[key] += val.Number
			}
		}
		pg.Add(m.renderBar(ctx, base))
	}
}

// stackSlots returns the category and value slots a bar stacks on,
// or nils when the bar does not participate in stacking.
func (m *Mark) stackSlots() (cat, val *PlottableValue) {
	switch {
	case m.X != nil && m.X.Type == Nominal && m.Y != nil && m.YStart == nil:
		return m.X, m.Y
	case m.Y != nil && m.Y.Type == Nominal && m.X != nil && m.XStart == nil:
		return m.Y, m.X
	}
	return nil, nil
}

// renderSeries groups line or area marks by their color-by-field
// value, sorts each group's points by x, and emits one interpolated
// path per group.
func (c *Chart) renderSeries(pg *scene.Group, ctx *renderContext, marks []*Mark, kind MarkKind) {
	var keys []string
	groups := map[string][]*Mark{}
	for _, m := range marks {
		if m.Kind != kind {
			continue
		}
		key := m.seriesKey()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], m)
	}
	for _, key := range keys {
		series := groups[key]
		var pts []scene.Point
		for _, m := range series {
			if p, ok := m.point(ctx); ok {
				pts = append(pts, p)
			}
		}
		if len(pts) == 0 {
			continue
		}
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

		lead := series[0]
		path := interp.Interpolate(pts, lead.Interp)
		if kind == KindArea {
			baseY := ctx.y.PositionValue(0)
			if lead.YStart != nil {
				baseY = ctx.y.Position(lead.YStart)
			}
			interp.CloseToBaseline(path, pts[0], pts[len(pts)-1], baseY)
			path.Fill = lead.fill(ctx)
		} else {
			path.Stroke = lead.fill(ctx)
			path.Width = lead.Line.Width
			path.Dash = lead.Line.Dash
		}
		path.Opacity = lead.Opacity
		pg.Add(path)
	}
}

// renderPolar lays sector marks around the plot center: each slice's
// angular span is its share of the total angle value, accumulated in
// insertion order from angle zero. A zero total renders nothing.
func (c *Chart) renderPolar(root *scene.Group, marks []*Mark, cs *colorScale) {
	w, h := c.plotSize()
	g := sectorGeom{
		cx:    c.padding.Left + w/2,
		cy:    c.padding.Top + h/2,
		avail: math32.Min(w, h) / 2,
	}

	var sectors []*Mark
	total := 0.0
	for _, m := range marks {
		if m.Kind != KindSector || m.Angle == nil || m.Angle.Number <= 0 {
			continue
		}
		sectors = append(sectors, m)
		total += m.Angle.Number
	}
	if total <= 0 {
		slog.Debug("chart: sector marks sum to zero angle, rendering nothing")
		return
	}

	pg := &scene.Group{Z: 1}
	angle := float32(0)
	for i, m := range sectors {
		span := float32(m.Angle.Number/total) * 2 * math32.Pi
		sg := g
		sg.start = angle
		sg.end = angle + span
		angle += span

		fill := c.palette[i%len(c.palette)].CSS()
		if m.ColorBy != nil {
			fill = cs.of(m.ColorBy)
		} else if !m.Color.IsZero() {
			fill = m.Color.CSS()
		}
		pg.Add(m.renderSector(sg, fill))
	}
	root.Add(pg)
}
