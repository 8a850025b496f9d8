// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strconv"
	"strings"
)

// CmdKind is the kind of one path command.
type CmdKind int32

const (
	// MoveToKind starts a new subpath at P0.
	MoveToKind CmdKind = iota + 1

	// LineToKind draws a line from the current point to P0.
	LineToKind

	// CubicToKind draws a cubic Bezier with control points P0, P1 to P2.
	CubicToKind

	// ArcToKind draws an elliptical arc with radii Radius to P0.
	ArcToKind

	// CloseKind closes the current subpath.
	CloseKind
)

// Cmd is one path command. A valid path starts each subpath
// with a MoveTo.
type Cmd struct {
	Kind       CmdKind
	P0, P1, P2 Point

	// Arc parameters, used only by ArcToKind.
	Radius   Point
	LargeArc bool
	Sweep    bool
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.Cmds = append(p.Cmds, Cmd{Kind: MoveToKind, P0: Pt(x, y)})
	return p
}

// LineTo draws a line from the current point.
func (p *Path) LineTo(x, y float32) *Path {
	p.Cmds = append(p.Cmds, Cmd{Kind: LineToKind, P0: Pt(x, y)})
	return p
}

// CubicTo draws a cubic Bezier via control points c1 and c2 to end.
func (p *Path) CubicTo(c1, c2, end Point) *Path {
	p.Cmds = append(p.Cmds, Cmd{Kind: CubicToKind, P0: c1, P1: c2, P2: end})
	return p
}

// ArcTo draws an elliptical arc with the given radii to end.
func (p *Path) ArcTo(radius Point, largeArc, sweep bool, end Point) *Path {
	p.Cmds = append(p.Cmds, Cmd{Kind: ArcToKind, P0: end, Radius: radius, LargeArc: largeArc, Sweep: sweep})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Cmds = append(p.Cmds, Cmd{Kind: CloseKind})
	return p
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return p == nil || len(p.Cmds) == 0
}

// Start returns the first MoveTo point of the path.
func (p *Path) Start() (Point, bool) {
	for _, c := range p.Cmds {
		if c.Kind == MoveToKind {
			return c.P0, true
		}
	}
	return Point{}, false
}

// D returns the path in SVG path-data form.
func (p *Path) D() string {
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Kind {
		case MoveToKind:
			b.WriteByte('M')
			writePt(&b, c.P0)
		case LineToKind:
			b.WriteByte('L')
			writePt(&b, c.P0)
		case CubicToKind:
			b.WriteByte('C')
			writePt(&b, c.P0)
			b.WriteByte(' ')
			writePt(&b, c.P1)
			b.WriteByte(' ')
			writePt(&b, c.P2)
		case ArcToKind:
			b.WriteByte('A')
			writePt(&b, c.Radius)
			b.WriteString(" 0 ")
			b.WriteString(flag(c.LargeArc))
			b.WriteByte(' ')
			b.WriteString(flag(c.Sweep))
			b.WriteByte(' ')
			writePt(&b, c.P0)
		case CloseKind:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePt(b *strings.Builder, p Point) {
	b.WriteString(fmtF(p.X))
	b.WriteByte(',')
	b.WriteString(fmtF(p.Y))
}

func fmtF(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
