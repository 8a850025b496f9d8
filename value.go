// Copyright (c) 2026, Declview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"
)

// ValueType is the inferred semantic type of a plotted value,
// which drives scale selection for the axis it appears on.
type ValueType int32

const (
	// Nominal values are categories positioned by a band scale.
	Nominal ValueType = iota

	// Quantitative values are continuous numbers positioned by
	// a linear scale.
	Quantitative

	// Temporal values are instants in time, positioned linearly
	// by their Unix time.
	Temporal
)

func (t ValueType) String() string {
	switch t {
	case Quantitative:
		return "quantitative"
	case Temporal:
		return "temporal"
	}
	return "nominal"
}

// PlottableValue wraps one raw datum with the axis label it belongs to
// and its inferred [ValueType]. It is immutable once constructed and
// lives only as long as the mark holding it.
type PlottableValue struct {
	// Label is the axis label for this value.
	Label string

	// Raw is the datum as given.
	Raw any

	// Number is the numeric form used by linear scales. It is
	// unused for nominal values, whose position comes from their
	// category index.
	Number float64

	// Type is the inferred semantic type.
	Type ValueType
}

// Value wraps a raw datum for plotting. It is total: numbers of any
// Go numeric kind infer as quantitative, time.Time as temporal, and
// everything else as a nominal category.
func Value(label string, raw any) *PlottableValue {
	v := &PlottableValue{Label: label, Raw: raw}
	switch x := raw.(type) {
	case float64:
		v.Type = Quantitative
		v.Number = x
	case float32:
		v.Type = Quantitative
		v.Number = float64(x)
	case int:
		v.Type = Quantitative
		v.Number = float64(x)
	case int8:
		v.Type = Quantitative
		v.Number = float64(x)
	case int16:
		v.Type = Quantitative
		v.Number = float64(x)
	case int32:
		v.Type = Quantitative
		v.Number = float64(x)
	case int64:
		v.Type = Quantitative
		v.Number = float64(x)
	case uint:
		v.Type = Quantitative
		v.Number = float64(x)
	case uint8:
		v.Type = Quantitative
		v.Number = float64(x)
	case uint16:
		v.Type = Quantitative
		v.Number = float64(x)
	case uint32:
		v.Type = Quantitative
		v.Number = float64(x)
	case uint64:
		v.Type = Quantitative
		v.Number = float64(x)
	case time.Time:
		v.Type = Temporal
		v.Number = float64(x.Unix())
	case *time.Time:
		if x != nil {
			v.Type = Temporal
			v.Number = float64(x.Unix())
		}
	default:
		v.Type = Nominal
	}
	return v
}

// Key returns the category key used for band-scale domains and
// color-by-field grouping.
func (v *PlottableValue) Key() string {
	if v == nil {
		return ""
	}
	if s, ok := v.Raw.(string); ok {
		return s
	}
	return fmt.Sprint(v.Raw)
}
