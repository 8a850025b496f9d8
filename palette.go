// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/declview/chart/view"

// DefaultPalette is the built-in ten-color categorical palette.
// Color-by-field values are assigned palette colors in first-seen
// order within one render pass, wrapping modulo the palette length.
// Charts can override it per instance with [Chart.Palette]; the
// package-level value is never mutated.
var DefaultPalette = []view.Color{
	view.RGB(0x1f, 0x77, 0xb4), // blue
	view.RGB(0xff, 0x7f, 0x0e), // orange
	view.RGB(0x2c, 0xa0, 0x2c), // green
	view.RGB(0xd6, 0x27, 0x28), // red
	view.RGB(0x94, 0x67, 0xbd), // violet
	view.RGB(0x8c, 0x56, 0x4b), // brown
	view.RGB(0xe3, 0x77, 0xc2), // pink
	view.RGB(0x7f, 0x7f, 0x7f), // gray
	view.RGB(0xbc, 0xbd, 0x22), // olive
	view.RGB(0x17, 0xbe, 0xcf), // cyan
}

// colorScale maps color-by-field values to palette colors, assigned
// by discovery order within the current render pass. It is rebuilt
// from scratch every pass, so assignments are stable within one render
// but not across renders if the categories appear in a different order.
type colorScale struct {
	domain  []string
	indexes map[string]int
	palette []view.Color
}

func newColorScale(marks []*Mark, palette []view.Color) *colorScale {
	cs := &colorScale{indexes: map[string]int{}, palette: palette}
	for _, m := range marks {
		if m.ColorBy == nil {
			continue
		}
		key := m.ColorBy.Key()
		if _, ok := cs.indexes[key]; ok {
			continue
		}
		cs.indexes[key] = len(cs.domain)
		cs.domain = append(cs.domain, key)
	}
	return cs
}

// color returns the palette color for a field value's key.
func (cs *colorScale) color(key string) view.Color {
	i := cs.indexes[key]
	return cs.palette[i%len(cs.palette)]
}

// of is the color function handed to mark renders.
func (cs *colorScale) of(v *PlottableValue) string {
	return cs.color(v.Key()).CSS()
}
