// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// WriteSVG serializes the scene rooted at g as an SVG document of the
// given pixel size. Sibling groups are emitted in z order.
func WriteSVG(w io.Writer, g *Group, width, height float32) {
	c := svg.New(w)
	c.Start(float64(width), float64(height))
	writeGroup(c, g)
	c.End()
}

// SVGString returns the scene as an SVG document string.
func (g *Group) SVGString(width, height float32) string {
	b := &bytes.Buffer{}
	WriteSVG(b, g, width, height)
	return b.String()
}

func writeGroup(c *svg.SVG, g *Group) {
	translated := g.Tx != 0 || g.Ty != 0
	if translated {
		c.Gtransform(fmt.Sprintf("translate(%g,%g)", g.Tx, g.Ty))
	} else {
		c.Group()
	}
	for _, k := range g.zOrdered() {
		writeNode(c, k)
	}
	c.Gend()
}

func writeNode(c *svg.SVG, n Node) {
	switch n := n.(type) {
	case *Group:
		writeGroup(c, n)
	case *Rect:
		st := paintStyle(n.Fill, n.Stroke, n.StrokeWidth, nil, n.Opacity)
		if n.Radius > 0 {
			c.Roundrect(float64(n.X), float64(n.Y), float64(n.Width), float64(n.Height),
				float64(n.Radius), float64(n.Radius), st)
		} else {
			c.Rect(float64(n.X), float64(n.Y), float64(n.Width), float64(n.Height), st)
		}
	case *Line:
		c.Line(float64(n.X1), float64(n.Y1), float64(n.X2), float64(n.Y2),
			paintStyle("none", n.Stroke, n.Width, n.Dash, n.Opacity))
	case *Path:
		c.Path(n.D(), paintStyle(n.Fill, n.Stroke, n.Width, n.Dash, n.Opacity))
	case *Circle:
		c.Circle(float64(n.CX), float64(n.CY), float64(n.R),
			paintStyle(n.Fill, "", 0, nil, n.Opacity))
	case *Polygon:
		xs := make([]float64, len(n.Points))
		ys := make([]float64, len(n.Points))
		for i, p := range n.Points {
			xs[i] = float64(p.X)
			ys[i] = float64(p.Y)
		}
		c.Polygon(xs, ys, paintStyle(n.Fill, "", 0, nil, n.Opacity))
	case *Text:
		c.Text(float64(n.X), float64(n.Y), n.Content, textStyle(n))
	}
}

// paintStyle builds a CSS style string for fill/stroke nodes.
// Empty fill means no fill is emitted explicitly as "none" for
// stroked-only shapes; empty stroke omits stroking.
func paintStyle(fill, stroke string, width float32, dash []float32, opacity float32) string {
	var parts []string
	if fill == "" {
		fill = "none"
	}
	parts = append(parts, "fill:"+fill)
	if stroke != "" {
		parts = append(parts, "stroke:"+stroke)
		if width > 0 {
			parts = append(parts, fmt.Sprintf("stroke-width:%g", width))
		}
		if len(dash) > 0 {
			ds := make([]string, len(dash))
			for i, d := range dash {
				ds[i] = fmt.Sprintf("%g", d)
			}
			parts = append(parts, "stroke-dasharray:"+strings.Join(ds, ","))
		}
	}
	if opacity > 0 && opacity < 1 {
		parts = append(parts, fmt.Sprintf("opacity:%g", opacity))
	}
	return strings.Join(parts, ";")
}

func textStyle(t *Text) string {
	anchor := t.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	size := t.Size
	if size == 0 {
		size = 12
	}
	color := t.Color
	if color == "" {
		color = "#000"
	}
	family := t.Family
	if family == "" {
		family = "sans-serif"
	}
	return fmt.Sprintf("text-anchor:%s;font-size:%gpx;font-family:%s;fill:%s",
		anchor, size, family, color)
}
