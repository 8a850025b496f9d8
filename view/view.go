// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view declares the minimal contract the charting engine
// consumes from the toolkit's base view layer: the [View] rendering
// capability and the opaque [Color] and [Font] style values. The full
// modifier system (padding, frames, event handlers) lives in the
// toolkit itself; charts only need to satisfy [View] and accept these
// value types as style inputs.
package view

import (
	"fmt"

	"github.com/declview/chart/scene"
)

// View is anything that can produce a renderable scene.
// The toolkit calls Render once per display pass; the result is
// handed to a serialization backend (SVG, canvas, test tree).
type View interface {
	Render() *scene.Group
}

// Color is an opaque RGBA style value. The zero value means "unset",
// which style consumers interpret as "use the default" (for chart
// marks, the palette color).
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// RGBA implements the standard library image/color.Color interface,
// returning alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * uint32(c.A) / 255
	r |= r << 8
	g = uint32(c.G) * uint32(c.A) / 255
	g |= g << 8
	b = uint32(c.B) * uint32(c.A) / 255
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// CSS returns the color as a CSS color string, either #rrggbb for
// opaque colors or rgba(...) when alpha is involved.
func (c Color) CSS() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

// Font is an opaque font style value.
type Font struct {
	Family string
	Size   float32
}

// CSS returns the font as a CSS shorthand value.
func (f Font) CSS() string {
	fam := f.Family
	if fam == "" {
		fam = "sans-serif"
	}
	sz := f.Size
	if sz == 0 {
		sz = 12
	}
	return fmt.Sprintf("%gpx %s", sz, fam)
}
