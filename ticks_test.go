// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isNiceStep reports whether step is a 1, 2 or 5 multiple of a
// power of ten.
func isNiceStep(step float64) bool {
	mag := math.Pow(10, math.Floor(math.Log10(step)))
	norm := step / mag
	for _, n := range []float64{1, 2, 5, 10} {
		if math.Abs(norm-n) < 1e-9 {
			return true
		}
	}
	return false
}

func TestTickNiceness(t *testing.T) {
	ticks := generateTicks(0, 97, 5)
	require.NotEmpty(t, ticks)
	assert.Equal(t, []float64{0, 20, 40, 60, 80}, ticks)

	step := ticks[1] - ticks[0]
	assert.True(t, isNiceStep(step), "step %v is not nice", step)
	for _, v := range ticks {
		// Every tick lands on a step multiple: never e.g. 13.
		assert.InDelta(t, math.Round(v/step)*step, v, 1e-9)
	}
}

func TestTickStepFamilies(t *testing.T) {
	cases := []struct {
		min, max float64
		want     int
		step     float64
	}{
		{0, 10, 5, 2},
		{0, 1, 5, 0.2},
		{0, 500, 5, 100},
		{0, 0.03, 5, 0.005},
		{-50, 50, 5, 20},
	}
	for _, tc := range cases {
		ticks := generateTicks(tc.min, tc.max, tc.want)
		require.GreaterOrEqual(t, len(ticks), 2, "range [%v,%v]", tc.min, tc.max)
		for i := 1; i < len(ticks); i++ {
			assert.InDelta(t, tc.step, ticks[i]-ticks[i-1], tc.step*1e-6)
		}
		assert.GreaterOrEqual(t, ticks[0], tc.min)
		assert.LessOrEqual(t, ticks[len(ticks)-1], tc.max+tc.step*1e-6)
	}
}

func TestTicksIncludeEndpointOnMultiple(t *testing.T) {
	ticks := generateTicks(0, 100, 5)
	assert.Equal(t, 100.0, ticks[len(ticks)-1])
}

func TestTicksDegenerateSpan(t *testing.T) {
	assert.Equal(t, []float64{7}, generateTicks(7, 7, 5))
	assert.Equal(t, []float64{7}, generateTicks(7, 3, 5))
}

func TestFormatTickTemporal(t *testing.T) {
	// 2024-03-01T00:00:00Z
	assert.Equal(t, "2024-03-01", formatTick(1709251200, true))
	assert.Equal(t, "42", formatTick(42, false))
}
