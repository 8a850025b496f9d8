// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the primitive vector nodes a chart render
// pass emits: rectangles, lines, paths, circles, polygons, text, and
// translation groups. The nodes are plain data, directly serializable
// to a vector-graphics markup tree; the SVG backend in this package is
// one such serialization, and tests compare the trees in memory.
package scene

import "sort"

// Point is a position in pixel space.
type Point struct {
	X, Y float32
}

// Pt returns a new point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Node is one primitive element of a rendered scene.
// Colors are CSS color strings; an empty string means "none".
type Node interface {
	node()
}

// Rect is an axis-aligned filled rectangle, with optional rounded corners.
type Rect struct {
	X, Y          float32
	Width, Height float32
	Fill          string
	Stroke        string
	StrokeWidth   float32
	Opacity       float32
	Radius        float32
}

// Line is a single stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float32
	Stroke         string
	Width          float32
	Dash           []float32
	Opacity        float32
}

// Path is a vector path, filled and/or stroked.
type Path struct {
	Cmds    []Cmd
	Fill    string
	Stroke  string
	Width   float32
	Dash    []float32
	Opacity float32
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R float32
	Fill      string
	Opacity   float32
}

// Polygon is a closed filled polygon.
type Polygon struct {
	Points  []Point
	Fill    string
	Opacity float32
}

// Anchor values for [Text].
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Text is a text label anchored at X, Y.
type Text struct {
	X, Y    float32
	Content string
	Anchor  string
	Size    float32
	Color   string
	Family  string
}

// Group holds child nodes under a translation offset.
// Z orders sibling groups back to front; non-group siblings sort as 0.
type Group struct {
	Tx, Ty float32
	Z      int
	Kids   []Node
}

func (*Rect) node()    {}
func (*Line) node()    {}
func (*Path) node()    {}
func (*Circle) node()  {}
func (*Polygon) node() {}
func (*Text) node()    {}
func (*Group) node()   {}

// Add appends child nodes, skipping nils so callers can pass
// mark render results directly.
func (g *Group) Add(kids ...Node) *Group {
	for _, k := range kids {
		if k == nil {
			continue
		}
		g.Kids = append(g.Kids, k)
	}
	return g
}

// NodeCount returns the total number of nodes in the subtree,
// including g itself.
func (g *Group) NodeCount() int {
	n := 1
	for _, k := range g.Kids {
		if sub, ok := k.(*Group); ok {
			n += sub.NodeCount()
		} else {
			n++
		}
	}
	return n
}

// zOrdered returns the children in z order, stable for equal z.
func (g *Group) zOrdered() []Node {
	kids := make([]Node, len(g.Kids))
	copy(kids, g.Kids)
	sort.SliceStable(kids, func(i, j int) bool {
		return zOf(kids[i]) < zOf(kids[j])
	})
	return kids
}

func zOf(n Node) int {
	if g, ok := n.(*Group); ok {
		return g.Z
	}
	return 0
}
