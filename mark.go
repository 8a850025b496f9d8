// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/declview/chart/interp"
	"github.com/declview/chart/scene"
	"github.com/declview/chart/view"
)

// MarkKind is the variant tag of a [Mark]. Marks form a closed set;
// the orchestrator switches exhaustively on the kind for z-ordering,
// series grouping, and polar dispatch.
type MarkKind int32

const (
	KindBar MarkKind = iota
	KindLine
	KindPoint
	KindArea
	KindRule
	KindRect
	KindSector
)

func (k MarkKind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindPoint:
		return "point"
	case KindArea:
		return "area"
	case KindRule:
		return "rule"
	case KindRect:
		return "rect"
	case KindSector:
		return "sector"
	}
	return "invalid"
}

// Stacking selects how same-category bar marks combine.
type Stacking int32

const (
	// StackingStandard stacks same-category bars cumulatively,
	// offset by sign so negative values stack downward.
	StackingStandard Stacking = iota

	// StackingUnstacked draws every bar from the zero baseline.
	StackingUnstacked
)

// LineStyle holds stroke properties for line-drawing marks.
type LineStyle struct {
	Width float32
	Dash  []float32
}

// MarkValues is the options set for mark constructors, holding the
// plotted-value slots a variant may bind. Unused slots stay nil; a
// variant missing a slot it requires renders nothing.
type MarkValues struct {
	X, Y         *PlottableValue
	XStart, XEnd *PlottableValue
	YStart, YEnd *PlottableValue
	Angle        *PlottableValue
	Series       *PlottableValue
}

// Mark is one declarative geometric primitive bound to plotted values
// and style. Marks are built fresh on every render pass, styled with
// fluent setters, consumed by the render, and discarded.
type Mark struct {
	Kind MarkKind

	// Plotted value slots.
	X, Y         *PlottableValue
	XStart, XEnd *PlottableValue
	YStart, YEnd *PlottableValue
	Angle        *PlottableValue

	// Style state.
	Color      view.Color      // explicit color; zero uses ColorBy or palette
	ColorBy    *PlottableValue // color (and series) assigned by field value
	Opacity    float32
	Radius     float32 // corner radius for bars and rectangles
	Line       LineStyle
	Interp     interp.Method
	Stack      Stacking
	Symbol     SymbolKind
	SymbolArea float32 // symbol size as area, radius = sqrt(area/pi)
	Annotation string

	// Sector radius configuration.
	Inner, Outer RadiusSpec
	AngularInset float32 // slice gap in degrees
}

func newMark(kind MarkKind, vals MarkValues) *Mark {
	m := &Mark{
		Kind:       kind,
		X:          vals.X,
		Y:          vals.Y,
		XStart:     vals.XStart,
		XEnd:       vals.XEnd,
		YStart:     vals.YStart,
		YEnd:       vals.YEnd,
		Angle:      vals.Angle,
		ColorBy:    vals.Series,
		Opacity:    1,
		Line:       LineStyle{Width: 2},
		Interp:     interp.Linear,
		SymbolArea: 36,
		Outer:      Ratio(1),
	}
	return m
}

// NewBar returns a bar mark. One axis must be nominal (the band) and
// the other quantitative; ranged bars bind YStart/YEnd (or
// XStart/XEnd for horizontal bars) instead of a single value.
func NewBar(vals MarkValues) *Mark { return newMark(KindBar, vals) }

// NewLine returns a line mark. Same-series line marks are joined into
// one interpolated path per render pass.
func NewLine(vals MarkValues) *Mark { return newMark(KindLine, vals) }

// NewPoint returns a point mark drawing one symbol at (x, y).
func NewPoint(vals MarkValues) *Mark { return newMark(KindPoint, vals) }

// NewArea returns an area mark: a line mark whose path is closed down
// to YStart or the zero baseline and filled.
func NewArea(vals MarkValues) *Mark { return newMark(KindArea, vals) }

// NewRule returns a rule mark: a full-span line at x or y, or a
// bounded segment when a start/end pair on the orthogonal axis is given.
func NewRule(vals MarkValues) *Mark { return newMark(KindRule, vals) }

// NewRect returns a rectangle mark bounded by XStart/XEnd and
// YStart/YEnd, falling back per axis to a category band or the full
// plot extent.
func NewRect(vals MarkValues) *Mark { return newMark(KindRect, vals) }

// NewSector returns a sector mark for pie and donut charts. The
// angular span is the mark's Angle value as a fraction of the total
// across all sector marks.
func NewSector(vals MarkValues) *Mark { return newMark(KindSector, vals) }

//////// Fluent style setters

// ForegroundStyle sets an explicit mark color.
func (m *Mark) ForegroundStyle(c view.Color) *Mark {
	m.Color = c
	return m
}

// ForegroundStyleBy colors the mark by a field value: marks sharing
// the same value share a palette color and form one series.
func (m *Mark) ForegroundStyleBy(v *PlottableValue) *Mark {
	m.ColorBy = v
	return m
}

// SetOpacity sets the mark opacity in [0, 1].
func (m *Mark) SetOpacity(o float32) *Mark {
	m.Opacity = o
	return m
}

// CornerRadius rounds bar and rectangle corners.
func (m *Mark) CornerRadius(r float32) *Mark {
	m.Radius = r
	return m
}

// Annotate attaches a text annotation above the mark.
func (m *Mark) Annotate(text string) *Mark {
	m.Annotation = text
	return m
}

// SetSymbol selects the point symbol by name, falling back to a
// circle for unknown names.
func (m *Mark) SetSymbol(name string) *Mark {
	m.Symbol = ParseSymbol(name)
	return m
}

// SymbolSize sets the symbol area; the drawn radius is sqrt(area/pi).
func (m *Mark) SymbolSize(area float32) *Mark {
	m.SymbolArea = area
	return m
}

// SetLineStyle sets the stroke width and dash pattern.
func (m *Mark) SetLineStyle(s LineStyle) *Mark {
	m.Line = s
	return m
}

// Interpolation selects the series interpolation method by name,
// falling back to linear for unknown names.
func (m *Mark) Interpolation(method string) *Mark {
	m.Interp = interp.ParseMethod(method)
	return m
}

// SetStacking sets the bar stacking mode.
func (m *Mark) SetStacking(s Stacking) *Mark {
	m.Stack = s
	return m
}

// InnerRadius sets the sector inner radius (donut hole).
func (m *Mark) InnerRadius(r RadiusSpec) *Mark {
	m.Inner = r
	return m
}

// OuterRadius sets the sector outer radius.
func (m *Mark) OuterRadius(r RadiusSpec) *Mark {
	m.Outer = r
	return m
}

// SetAngularInset sets the gap between adjacent slices, in degrees.
func (m *Mark) SetAngularInset(deg float32) *Mark {
	m.AngularInset = deg
	return m
}

//////// Render plumbing

// renderContext supplies a mark render with the resolved axis scales,
// the plot-area size, and the color scale of the current pass.
type renderContext struct {
	x, y     Scale
	size     scene.Point
	colorOf  func(*PlottableValue) string
	fallback string // color for marks with neither Color nor ColorBy
}

// px positions a value on the x axis, centering nominal values
// within their category band.
func (ctx *renderContext) px(v *PlottableValue) float32 {
	p := ctx.x.Position(v)
	if v.Type == Nominal {
		p += ctx.x.Bandwidth() / 2
	}
	return p
}

// py positions a value on the y axis, centering nominal values
// within their category band.
func (ctx *renderContext) py(v *PlottableValue) float32 {
	p := ctx.y.Position(v)
	if v.Type == Nominal {
		p += ctx.y.Bandwidth() / 2
	}
	return p
}

// fill resolves the mark's paint color for this pass.
func (m *Mark) fill(ctx *renderContext) string {
	if m.ColorBy != nil && ctx.colorOf != nil {
		return ctx.colorOf(m.ColorBy)
	}
	if !m.Color.IsZero() {
		return m.Color.CSS()
	}
	return ctx.fallback
}

// seriesKey groups line and area marks into series.
func (m *Mark) seriesKey() string {
	if m.ColorBy == nil {
		return "default"
	}
	return m.ColorBy.Key()
}

// point resolves the mark's (x, y) plot position for series marks.
func (m *Mark) point(ctx *renderContext) (scene.Point, bool) {
	if m.X == nil || m.Y == nil {
		return scene.Point{}, false
	}
	return scene.Pt(ctx.px(m.X), ctx.py(m.Y)), true
}

// render emits the mark's geometry, or nil when a required value is
// missing. Line, area, and sector marks do not render individually:
// the orchestrator groups lines and areas into series paths and
// resolves sector angles chart-wide.
func (m *Mark) render(ctx *renderContext) scene.Node {
	switch m.Kind {
	case KindBar:
		return m.renderBar(ctx, 0)
	case KindPoint:
		return m.renderPoint(ctx)
	case KindRule:
		return m.renderRule(ctx)
	case KindRect:
		return m.renderRect(ctx)
	}
	return nil
}
