// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// ScaleKind distinguishes the two position-mapping strategies.
type ScaleKind int32

const (
	// ScaleBand positions nominal categories in equal-width bands.
	ScaleBand ScaleKind = iota

	// ScaleLinear maps a continuous domain onto the axis proportionally.
	ScaleLinear
)

// bandInset is the fraction of each band left empty on each side.
const bandInset = 0.1

// Scale maps plotted values to positions along one axis, in pixels
// from the plot-area origin. Implementations never fail: values
// outside the domain extrapolate, unknown categories map to zero.
type Scale interface {
	// Kind reports the scale strategy.
	Kind() ScaleKind

	// Position returns the axis position of the value. For band
	// scales this is the leading edge of the category's usable band.
	Position(v *PlottableValue) float32

	// PositionValue returns the position for a bare number on a
	// linear scale. Band scales position by category index.
	PositionValue(x float64) float32

	// Invert maps an axis position back to a domain value, for
	// hit-testing. Band scales return the category index.
	Invert(px float32) float64

	// Bandwidth is the usable width of one category band,
	// zero for linear scales.
	Bandwidth() float32

	// Domain returns the continuous domain, zero for band scales.
	Domain() (min, max float64)

	// Categories returns the nominal domain in first-seen order,
	// nil for linear scales.
	Categories() []string

	// Ticks returns approximately n tick marks covering the domain.
	Ticks(n int) []Tick
}

// ScaleConfig overrides pieces of the inferred scale for one axis.
type ScaleConfig struct {
	// Min and Max explicitly set the quantitative domain when
	// both are non-nil, bypassing inference from the data.
	Min, Max *float64
}

// buildScale constructs the scale for one axis from every value
// plotted on it across all marks. The scale kind follows the type of
// the first value; vertical linear scales are inverted so larger
// values plot higher. An empty value set yields a constant-zero scale.
func buildScale(values []*PlottableValue, size float32, vertical bool, cfg ScaleConfig) Scale {
	var first *PlottableValue
	for _, v := range values {
		if v != nil {
			first = v
			break
		}
	}
	if first == nil {
		return zeroScale{}
	}
	if first.Type == Nominal {
		return newBandScale(values, size)
	}
	return newLinearScale(values, size, vertical, cfg, first.Type == Temporal)
}

//////// Band scale

type bandScale struct {
	cats  []string
	index map[string]int
	size  float32
	band  float32 // full per-category width
	inset float32
}

func newBandScale(values []*PlottableValue, size float32) *bandScale {
	s := &bandScale{size: size, index: map[string]int{}}
	for _, v := range values {
		if v == nil {
			continue
		}
		key := v.Key()
		if _, ok := s.index[key]; ok {
			continue
		}
		s.index[key] = len(s.cats)
		s.cats = append(s.cats, key)
	}
	s.band = size / float32(len(s.cats))
	s.inset = bandInset * s.band
	return s
}

func (s *bandScale) Kind() ScaleKind { return ScaleBand }

func (s *bandScale) Position(v *PlottableValue) float32 {
	i, ok := s.index[v.Key()]
	if !ok {
		return 0
	}
	return float32(i)*s.band + s.inset
}

func (s *bandScale) PositionValue(x float64) float32 {
	return float32(x)*s.band + s.inset
}

func (s *bandScale) Invert(px float32) float64 {
	if s.band == 0 {
		return 0
	}
	i := math.Floor(float64(px / s.band))
	return math.Max(0, math.Min(i, float64(len(s.cats)-1)))
}

func (s *bandScale) Bandwidth() float32 { return s.band - 2*s.inset }

func (s *bandScale) Domain() (float64, float64) { return 0, 0 }

func (s *bandScale) Categories() []string { return s.cats }

// Ticks for a band scale are the full category list, positioned
// at band centers by the axis renderer.
func (s *bandScale) Ticks(n int) []Tick {
	ts := make([]Tick, len(s.cats))
	for i, c := range s.cats {
		ts[i] = Tick{Value: float64(i), Label: c}
	}
	return ts
}

//////// Linear scale

type linearScale struct {
	min, max float64
	size     float32
	vertical bool
	temporal bool
}

func newLinearScale(values []*PlottableValue, size float32, vertical bool, cfg ScaleConfig, temporal bool) *linearScale {
	s := &linearScale{size: size, vertical: vertical, temporal: temporal}
	if cfg.Min != nil && cfg.Max != nil {
		s.min, s.max = *cfg.Min, *cfg.Max
	} else {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for _, v := range values {
			if v == nil || v.Type == Nominal {
				continue
			}
			lo = math.Min(lo, v.Number)
			hi = math.Max(hi, v.Number)
		}
		s.min = math.Min(0, lo)
		s.max = hi
		if temporal {
			// Time axes anchor at the data, not at the epoch.
			s.min = lo
		}
	}
	if s.max == s.min {
		s.min--
		s.max++
	}
	return s
}

func (s *linearScale) Kind() ScaleKind { return ScaleLinear }

func (s *linearScale) Position(v *PlottableValue) float32 {
	return s.PositionValue(v.Number)
}

func (s *linearScale) PositionValue(x float64) float32 {
	norm := (x - s.min) / (s.max - s.min)
	px := s.size * float32(norm)
	if s.vertical {
		return s.size - px
	}
	return px
}

func (s *linearScale) Invert(px float32) float64 {
	if s.size == 0 {
		return s.min
	}
	if s.vertical {
		px = s.size - px
	}
	return s.min + (s.max-s.min)*float64(px/s.size)
}

func (s *linearScale) Bandwidth() float32 { return 0 }

func (s *linearScale) Domain() (float64, float64) { return s.min, s.max }

func (s *linearScale) Categories() []string { return nil }

func (s *linearScale) Ticks(n int) []Tick {
	vals := generateTicks(s.min, s.max, n)
	ts := make([]Tick, len(vals))
	for i, v := range vals {
		ts[i] = Tick{Value: v, Label: formatTick(v, s.temporal)}
	}
	return ts
}

//////// Zero scale

// zeroScale is the degenerate scale used when an axis has no values:
// every position is 0 and the domain is empty.
type zeroScale struct{}

func (zeroScale) Kind() ScaleKind { return ScaleLinear }

func (zeroScale) Position(*PlottableValue) float32 { return 0 }

func (zeroScale) PositionValue(float64) float32 { return 0 }

func (zeroScale) Invert(float32) float64 { return 0 }

func (zeroScale) Bandwidth() float32 { return 0 }

func (zeroScale) Domain() (float64, float64) { return 0, 0 }

func (zeroScale) Categories() []string { return nil }

func (zeroScale) Ticks(int) []Tick { return nil }
