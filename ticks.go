// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"
	"time"
)

// defaultTickCount is the target tick count when the axis
// configuration does not specify one.
const defaultTickCount = 5

// Tick is one axis tick mark.
type Tick struct {
	// Value is the tick position in domain units. For band scales
	// it is the category index.
	Value float64

	// Label is the rendered tick text.
	Label string
}

// generateTicks returns approximately want tick values covering
// [min, max], stepping by the ideal span/want rounded to the nearest
// 1, 2, 5 or 10 multiple of a power of ten so tick values stay "nice".
func generateTicks(min, max float64, want int) []float64 {
	if want <= 0 {
		want = defaultTickCount
	}
	span := max - min
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return []float64{min}
	}
	step := niceStep(span / float64(want))
	var ticks []float64
	// Snap the first tick up to a step multiple; tolerate float
	// error at the top so max itself is included when it lands
	// on a multiple.
	eps := step * 1e-9
	for v := math.Ceil(min/step) * step; v <= max+eps; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// niceStep rounds the ideal step up to the nearest 1, 2, 5 or 10
// multiple of its power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	}
	return 10 * mag
}

// formatTick renders a tick value, as a date for temporal axes.
func formatTick(v float64, temporal bool) string {
	if temporal {
		return time.Unix(int64(v), 0).UTC().Format("2006-01-02")
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
