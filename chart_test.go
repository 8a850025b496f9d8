// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declview/chart/scene"
	"github.com/declview/chart/view"
)

// collect gathers all nodes in the subtree matching the filter.
func collect(root *scene.Group, match func(scene.Node) bool) []scene.Node {
	var out []scene.Node
	var walk func(g *scene.Group)
	walk = func(g *scene.Group) {
		for _, k := range g.Kids {
			if match(k) {
				out = append(out, k)
			}
			if sub, ok := k.(*scene.Group); ok {
				walk(sub)
			}
		}
	}
	walk(root)
	return out
}

func rects(root *scene.Group) []*scene.Rect {
	ns := collect(root, func(n scene.Node) bool { _, ok := n.(*scene.Rect); return ok })
	out := make([]*scene.Rect, len(ns))
	for i, n := range ns {
		out[i] = n.(*scene.Rect)
	}
	return out
}

func strokedPaths(root *scene.Group) []*scene.Path {
	var out []*scene.Path
	for _, n := range collect(root, func(n scene.Node) bool { _, ok := n.(*scene.Path); return ok }) {
		if p := n.(*scene.Path); p.Stroke != "" {
			out = append(out, p)
		}
	}
	return out
}

type row struct {
	Month string
	Sales float64
}

func TestBarHeightsProportional(t *testing.T) {
	data := []row{{"Jan", 10}, {"Feb", 20}}
	c := New(data, func(d row) *Mark {
		return NewBar(MarkValues{X: Value("month", d.Month), Y: Value("sales", d.Sales)})
	}).Frame(400, 300)

	root := c.Render()
	bars := rects(root)
	require.Len(t, bars, 2)

	jan, feb := bars[0], bars[1]
	assert.InDelta(t, 2*jan.Height, feb.Height, 1e-3)
	assert.Less(t, jan.X, feb.X)
	// Both bars rest on the zero baseline at the plot bottom.
	_, plotH := c.plotSize()
	assert.InDelta(t, plotH, jan.Y+jan.Height, 1e-3)
	assert.InDelta(t, plotH, feb.Y+feb.Height, 1e-3)
}

func TestNegativeBarExtendsBelowZero(t *testing.T) {
	data := []row{{"a", 10}, {"b", -5}}
	c := New(data, func(d row) *Mark {
		return NewBar(MarkValues{X: Value("cat", d.Month), Y: Value("v", d.Sales)})
	})
	root := c.Render()
	bars := rects(root)
	require.Len(t, bars, 2)

	_, plotH := c.plotSize()
	ys := buildScale(quants("v", 10, -5), plotH, true, ScaleConfig{})
	zero := ys.PositionValue(0)
	// Positive bar sits above the zero line, negative below it.
	assert.InDelta(t, zero, bars[0].Y+bars[0].Height, 1e-3)
	assert.InDelta(t, zero, bars[1].Y, 1e-3)
}

func TestRangedBar(t *testing.T) {
	m := NewBar(MarkValues{
		X:      Value("cat", "a"),
		YStart: Value("lo", 10.0),
		YEnd:   Value("hi", 30.0),
	})
	c := NewMarks(m)
	bars := rects(c.Render())
	require.Len(t, bars, 1)

	_, plotH := c.plotSize()
	ys := buildScale(quants("v", 10, 30), plotH, true, ScaleConfig{})
	assert.InDelta(t, ys.PositionValue(30), bars[0].Y, 1e-3)
	assert.InDelta(t, ys.PositionValue(10)-ys.PositionValue(30), bars[0].Height, 1e-3)
}

func TestStackedBars(t *testing.T) {
	c := NewMarks(
		NewBar(MarkValues{X: Value("cat", "a"), Y: Value("v", 10.0)}),
		NewBar(MarkValues{X: Value("cat", "a"), Y: Value("v", 20.0)}),
	)
	bars := rects(c.Render())
	require.Len(t, bars, 2)
	// The second bar starts where the first ends.
	assert.InDelta(t, bars[0].Y, bars[1].Y+bars[1].Height, 1e-3)

	// Unstacked bars both start at the baseline.
	c = NewMarks(
		NewBar(MarkValues{X: Value("cat", "a"), Y: Value("v", 10.0)}).SetStacking(StackingUnstacked),
		NewBar(MarkValues{X: Value("cat", "a"), Y: Value("v", 20.0)}).SetStacking(StackingUnstacked),
	)
	bars = rects(c.Render())
	require.Len(t, bars, 2)
	assert.InDelta(t, bars[0].Y+bars[0].Height, bars[1].Y+bars[1].Height, 1e-3)
}

func TestTwoSeriesLines(t *testing.T) {
	type obs struct {
		x, y   float64
		series string
	}
	data := []obs{
		{3, 5, "a"}, {1, 2, "a"}, {2, 9, "b"},
		{1, 4, "b"}, {2, 3, "a"}, {3, 1, "b"},
	}
	c := New(data, func(d obs) *Mark {
		return NewLine(MarkValues{
			X:      Value("x", d.x),
			Y:      Value("y", d.y),
			Series: Value("series", d.series),
		})
	})
	root := c.Render()

	paths := strokedPaths(root)
	require.Len(t, paths, 2)
	for _, p := range paths {
		prev := float32(-1)
		for _, cmd := range p.Cmds {
			assert.GreaterOrEqual(t, cmd.P0.X, prev, "series paths are sorted by x")
			prev = cmd.P0.X
		}
	}
	// Distinct series get distinct palette colors.
	assert.NotEqual(t, paths[0].Stroke, paths[1].Stroke)
}

func TestAreaClosesToBaseline(t *testing.T) {
	c := NewMarks(
		NewArea(MarkValues{X: Value("x", 1.0), Y: Value("y", 5.0)}),
		NewArea(MarkValues{X: Value("x", 2.0), Y: Value("y", 8.0)}),
	)
	root := c.Render()
	var area *scene.Path
	for _, n := range collect(root, func(n scene.Node) bool { _, ok := n.(*scene.Path); return ok }) {
		if p := n.(*scene.Path); p.Fill != "" {
			area = p
		}
	}
	require.NotNil(t, area)
	n := len(area.Cmds)
	assert.Equal(t, scene.CloseKind, area.Cmds[n-1].Kind)

	_, plotH := c.plotSize()
	ys := buildScale(quants("y", 5, 8), plotH, true, ScaleConfig{})
	zero := ys.PositionValue(0)
	assert.InDelta(t, zero, area.Cmds[n-2].P0.Y, 1e-3)
	assert.InDelta(t, zero, area.Cmds[n-3].P0.Y, 1e-3)
}

func TestLegendDomainCount(t *testing.T) {
	data := []row{{"Jan", 10}, {"Feb", 20}, {"Mar", 15}}
	c := New(data, func(d row) *Mark {
		return NewBar(MarkValues{X: Value("m", d.Month), Y: Value("v", d.Sales)}).
			ForegroundStyleBy(Value("region", d.Month))
	})
	marks := c.build()
	cs := newColorScale(marks, DefaultPalette)
	assert.Len(t, cs.domain, 3)

	root := c.Render()
	swatches := 0
	for _, r := range rects(root) {
		if r.Width == legendSwatch && r.Height == legendSwatch {
			swatches++
		}
	}
	assert.Equal(t, 3, swatches)
}

func TestLegendHiddenForSingleSeries(t *testing.T) {
	one := NewMarks(
		NewBar(MarkValues{X: Value("m", "Jan"), Y: Value("v", 1.0)}).
			ForegroundStyleBy(Value("s", "only")),
	)
	swatches := 0
	for _, r := range rects(one.Render()) {
		if r.Width == legendSwatch && r.Height == legendSwatch {
			swatches++
		}
	}
	assert.Zero(t, swatches)

	// Forcing the legend on shows the single entry.
	one.Legend(LegendConfig{Visibility: On})
	swatches = 0
	for _, r := range rects(one.Render()) {
		if r.Width == legendSwatch && r.Height == legendSwatch {
			swatches++
		}
	}
	assert.Equal(t, 1, swatches)
}

func TestRenderIdempotent(t *testing.T) {
	data := []row{{"Jan", 10}, {"Feb", 20}}
	c := New(data, func(d row) *Mark {
		return NewBar(MarkValues{X: Value("m", d.Month), Y: Value("v", d.Sales)}).
			ForegroundStyleBy(Value("m", d.Month))
	}).Title("sales").Background(view.RGB(255, 255, 255))

	a := c.Render()
	b := c.Render()
	assert.Empty(t, cmp.Diff(a, b))
	assert.Equal(t, a.NodeCount(), b.NodeCount())
}

func TestRuleConfigurations(t *testing.T) {
	ctx := &renderContext{
		x:        buildScale(quants("x", 0, 10), 100, false, ScaleConfig{}),
		y:        buildScale(quants("y", 0, 10), 50, true, ScaleConfig{}),
		size:     scene.Pt(100, 50),
		fallback: "#000",
	}

	// Lone y: full-span horizontal.
	n := NewRule(MarkValues{Y: Value("y", 5.0)}).renderRule(ctx)
	require.NotNil(t, n)
	ln := n.(*scene.Line)
	assert.Equal(t, float32(0), ln.X1)
	assert.Equal(t, float32(100), ln.X2)
	assert.Equal(t, ln.Y1, ln.Y2)

	// Lone x: full-span vertical.
	n = NewRule(MarkValues{X: Value("x", 5.0)}).renderRule(ctx)
	require.NotNil(t, n)
	ln = n.(*scene.Line)
	assert.Equal(t, float32(0), ln.Y1)
	assert.Equal(t, float32(50), ln.Y2)

	// Bounded horizontal segment.
	n = NewRule(MarkValues{
		XStart: Value("x", 2.0), XEnd: Value("x", 8.0), Y: Value("y", 5.0),
	}).renderRule(ctx)
	require.NotNil(t, n)
	ln = n.(*scene.Line)
	assert.InDelta(t, 20, ln.X1, 1e-3)
	assert.InDelta(t, 80, ln.X2, 1e-3)

	// Bounded vertical segment.
	n = NewRule(MarkValues{
		YStart: Value("y", 2.0), YEnd: Value("y", 8.0), X: Value("x", 5.0),
	}).renderRule(ctx)
	require.NotNil(t, n)

	// Ambiguous and empty configurations produce nothing.
	assert.Nil(t, NewRule(MarkValues{X: Value("x", 1.0), Y: Value("y", 1.0)}).renderRule(ctx))
	assert.Nil(t, NewRule(MarkValues{}).renderRule(ctx))
	assert.Nil(t, NewRule(MarkValues{XStart: Value("x", 1.0)}).renderRule(ctx))
}

func TestRectFallbacks(t *testing.T) {
	ctx := &renderContext{
		x:        buildScale(nominals("cat", "A", "B"), 100, false, ScaleConfig{}),
		y:        buildScale(quants("y", 0, 10), 50, true, ScaleConfig{}),
		size:     scene.Pt(100, 50),
		fallback: "#000",
	}

	// Nominal x falls back to the category band; unconstrained y
	// spans the full plot height.
	n := NewRect(MarkValues{X: Value("cat", "B")}).renderRect(ctx)
	require.NotNil(t, n)
	r := n.(*scene.Rect)
	assert.InDelta(t, 55, r.X, 1e-3) // band 50, inset 5
	assert.InDelta(t, 40, r.Width, 1e-3)
	assert.Equal(t, float32(0), r.Y)
	assert.Equal(t, float32(50), r.Height)

	// Explicit pairs win on both axes.
	n = NewRect(MarkValues{
		XStart: Value("x", "A"), XEnd: Value("x", "B"),
		YStart: Value("y", 2.0), YEnd: Value("y", 8.0),
	}).renderRect(ctx)
	require.NotNil(t, n)
}

func TestPointSymbolFallback(t *testing.T) {
	m := NewPoint(MarkValues{X: Value("x", 1.0), Y: Value("y", 1.0)}).SetSymbol("hexagon")
	assert.Equal(t, SymbolCircle, m.Symbol)

	ctx := &renderContext{
		x:        buildScale(quants("x", 0, 2), 100, false, ScaleConfig{}),
		y:        buildScale(quants("y", 0, 2), 100, true, ScaleConfig{}),
		size:     scene.Pt(100, 100),
		fallback: "#000",
	}
	n := m.renderPoint(ctx)
	_, ok := n.(*scene.Circle)
	assert.True(t, ok)

	// Missing y: no geometry, no panic.
	assert.Nil(t, NewPoint(MarkValues{X: Value("x", 1.0)}).renderPoint(ctx))
}

func TestPointSymbolShapes(t *testing.T) {
	ctx := &renderContext{
		x:        buildScale(quants("x", 0, 2), 100, false, ScaleConfig{}),
		y:        buildScale(quants("y", 0, 2), 100, true, ScaleConfig{}),
		size:     scene.Pt(100, 100),
		fallback: "#000",
	}
	vals := MarkValues{X: Value("x", 1.0), Y: Value("y", 1.0)}

	for name, want := range map[string]int{
		"triangle": 3, "diamond": 4, "plus": 12, "cross": 12, "star": 10,
	} {
		n := NewPoint(vals).SetSymbol(name).renderPoint(ctx)
		poly, ok := n.(*scene.Polygon)
		require.True(t, ok, name)
		assert.Len(t, poly.Points, want, name)
	}

	n := NewPoint(vals).SetSymbol("square").renderPoint(ctx)
	_, ok := n.(*scene.Rect)
	assert.True(t, ok)
}

func TestZOrderFixed(t *testing.T) {
	// Declared points-first, but bars must render before lines and
	// lines before points.
	c := NewMarks(
		NewPoint(MarkValues{X: Value("x", 1.0), Y: Value("y", 1.0)}),
		NewLine(MarkValues{X: Value("x", 1.0), Y: Value("y", 1.0)}),
		NewLine(MarkValues{X: Value("x", 2.0), Y: Value("y", 2.0)}),
		NewRule(MarkValues{Y: Value("y", 1.5)}),
	).XAxis(AxisConfig{Hidden: true, GridLines: Off}).
		YAxis(AxisConfig{Hidden: true, GridLines: Off})

	root := c.Render()
	// The plot group is the only child group with marks.
	var pg *scene.Group
	for _, k := range root.Kids {
		if g, ok := k.(*scene.Group); ok {
			pg = g
		}
	}
	require.NotNil(t, pg)

	order := map[string]int{}
	for i, k := range pg.Kids {
		switch k.(type) {
		case *scene.Line:
			order["rule"] = i
		case *scene.Path:
			order["line"] = i
		case *scene.Circle:
			order["point"] = i
		}
	}
	assert.Less(t, order["rule"], order["line"])
	assert.Less(t, order["line"], order["point"])
}

func TestMissingValuesSkippedSilently(t *testing.T) {
	c := NewMarks(
		NewBar(MarkValues{X: Value("cat", "a")}),  // no y
		NewBar(MarkValues{Y: Value("v", 3.0)}),    // no nominal axis
		NewPoint(MarkValues{Y: Value("v", 1.0)}),  // no x
		nil,
	)
	assert.NotPanics(t, func() { c.Render() })
	assert.Empty(t, rects(c.Render()))
}

func TestBuilderSkipsNilMarks(t *testing.T) {
	data := []row{{"Jan", 10}, {"skip", 0}, {"Feb", 20}}
	c := New(data, func(d row) *Mark {
		if d.Month == "skip" {
			return nil
		}
		return NewBar(MarkValues{X: Value("m", d.Month), Y: Value("v", d.Sales)})
	})
	assert.Len(t, c.build(), 2)
}

func TestSVGStringEndToEnd(t *testing.T) {
	data := []row{{"Jan", 10}, {"Feb", 20}}
	c := New(data, func(d row) *Mark {
		return NewBar(MarkValues{X: Value("m", d.Month), Y: Value("v", d.Sales)})
	}).Title("Sales").Frame(320, 240)

	out := c.SVGString()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<rect")
	assert.Contains(t, out, "Sales")
	assert.True(t, strings.Contains(out, "</svg>"))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSVGToFile(t *testing.T) {
	c := NewMarks(NewBar(MarkValues{X: Value("m", "Jan"), Y: Value("v", 1.0)}))
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, c.SVGToFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "</svg>")
}

func TestTemporalAxis(t *testing.T) {
	c := NewMarks(
		NewLine(MarkValues{X: Value("t", date(2024, time.January, 1)), Y: Value("v", 1.0)}),
		NewLine(MarkValues{X: Value("t", date(2024, time.June, 1)), Y: Value("v", 2.0)}),
	)
	assert.NotPanics(t, func() { c.Render() })

	w, _ := c.plotSize()
	xs := buildScale([]*PlottableValue{
		Value("t", date(2024, time.January, 1)), Value("t", date(2024, time.June, 1)),
	}, w, false, ScaleConfig{})
	// Temporal domains anchor at the first instant, not the epoch.
	min, _ := xs.Domain()
	assert.Equal(t, float64(date(2024, time.January, 1).Unix()), min)
}
