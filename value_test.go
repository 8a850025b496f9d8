// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueInference(t *testing.T) {
	v := Value("sales", 42)
	assert.Equal(t, Quantitative, v.Type)
	assert.Equal(t, 42.0, v.Number)
	assert.Equal(t, "sales", v.Label)

	v = Value("ratio", 0.5)
	assert.Equal(t, Quantitative, v.Type)
	assert.Equal(t, 0.5, v.Number)

	v = Value("count", uint16(7))
	assert.Equal(t, Quantitative, v.Type)
	assert.Equal(t, 7.0, v.Number)

	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	v = Value("when", ts)
	assert.Equal(t, Temporal, v.Type)
	assert.Equal(t, float64(ts.Unix()), v.Number)

	v = Value("month", "Jan")
	assert.Equal(t, Nominal, v.Type)
	assert.Equal(t, "Jan", v.Key())

	type tag struct{ name string }
	v = Value("group", tag{"a"})
	assert.Equal(t, Nominal, v.Type)
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "Feb", Value("m", "Feb").Key())
	assert.Equal(t, "3", Value("n", 3).Key())
	var v *PlottableValue
	assert.Equal(t, "", v.Key())
}
