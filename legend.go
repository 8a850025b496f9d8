// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/declview/chart/scene"

// LegendPosition places the legend in one corner of the frame.
type LegendPosition int32

const (
	LegendTopRight LegendPosition = iota
	LegendTopLeft
	LegendBottomRight
	LegendBottomLeft
)

// LegendConfig controls legend rendering. By default the legend
// appears only when more than one color-scale domain value exists.
type LegendConfig struct {
	Visibility DefaultOffOn
	Position   LegendPosition
}

const (
	legendSwatch   = 10
	legendRowH     = 16
	legendTextSize = 11
	legendPad      = 8
)

// showLegend decides legend visibility for the current pass.
func (c *Chart) showLegend(cs *colorScale) bool {
	switch c.legend.Visibility {
	case Off:
		return false
	case On:
		return len(cs.domain) > 0
	}
	return len(cs.domain) > 1
}

// drawLegend emits one swatch-and-label row per color domain value,
// in the configured corner of the frame.
func (c *Chart) drawLegend(root *scene.Group, cs *colorScale) {
	if !c.showLegend(cs) {
		return
	}
	// Estimate width from the longest label.
	longest := 0
	for _, key := range cs.domain {
		if len(key) > longest {
			longest = len(key)
		}
	}
	w := float32(legendSwatch + 6 + longest*7)
	h := float32(len(cs.domain) * legendRowH)

	var x, y float32
	switch c.legend.Position {
	case LegendTopLeft:
		x = c.padding.Left + legendPad
		y = c.padding.Top + legendPad
	case LegendBottomRight:
		x = c.width - c.padding.Right - legendPad - w
		y = c.height - c.padding.Bottom - legendPad - h
	case LegendBottomLeft:
		x = c.padding.Left + legendPad
		y = c.height - c.padding.Bottom - legendPad - h
	default: // top right
		x = c.width - c.padding.Right - legendPad - w
		y = c.padding.Top + legendPad
	}

	g := &scene.Group{Tx: x, Ty: y, Z: 2}
	for i, key := range cs.domain {
		ry := float32(i * legendRowH)
		g.Add(
			&scene.Rect{
				X: 0, Y: ry,
				Width: legendSwatch, Height: legendSwatch,
				Fill: cs.color(key).CSS(),
			},
			&scene.Text{
				X: legendSwatch + 6, Y: ry + legendSwatch - 1,
				Content: key,
				Anchor:  scene.AnchorStart,
				Size:    legendTextSize,
			},
		)
	}
	root.Add(g)
}
