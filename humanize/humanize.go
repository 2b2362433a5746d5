// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package humanize implements abbreviated,
// human-readable formatting of axis values.
package humanize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// Suffixes for thousands, millions, billions, and trillions.
var suffixes = []string{"", "K", "M", "B", "D"}

// MaxPrecision is the largest number of decimal digits
// used by Calibrate when searching for distinct labels.
const MaxPrecision = 12

// Number formats a non-negative number
// as a grouped-thousands string with prec decimal digits,
// scaled to the suffix of its order of magnitude;
// for example Number(12500, 1) is "12.5K".
func Number(v float64, prec int) (string, error) {
	if v < 0 {
		return "", fmt.Errorf("humanize: non-negative number assumed, but received %g", v)
	}

	order := 0
	x := v
	if v > 0 {
		order = int(math.Log10(v)) / 3
		if order < 0 {
			order = 0
		}
		if order >= len(suffixes) {
			return "", fmt.Errorf("humanize: number %g out of range", v)
		}
		x = v / math.Pow(10, float64(order*3))
	}
	return group(strconv.FormatFloat(x, 'f', prec, 64)) + suffixes[order], nil
}

// group inserts thousands separators
// into the integer part of a formatted number.
func group(s string) string {
	ip := s
	fp := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		ip, fp = s[:dot], s[dot:]
	}
	if len(ip) <= 3 {
		return s
	}

	var b strings.Builder
	pre := len(ip) % 3
	if pre > 0 {
		b.WriteString(ip[:pre])
	}
	for i := pre; i < len(ip); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(ip[i : i+3])
	}
	b.WriteString(fp)
	return b.String()
}

// Calibrate formats a sequence of tick values,
// increasing the shared decimal precision
// until all labels are textually distinct.
// It fails if the labels still collide at MaxPrecision,
// as happens when two tick values are equal.
func Calibrate(ticks []float64) ([]string, error) {
	for prec := 0; prec <= MaxPrecision; prec++ {
		labels := make([]string, len(ticks))
		seen := make(map[string]bool, len(ticks))
		collide := false
		for i, v := range ticks {
			l, err := Number(v, prec)
			if err != nil {
				return nil, err
			}
			labels[i] = l
			if seen[l] {
				collide = true
			}
			seen[l] = true
		}
		if !collide {
			return labels, nil
		}
	}
	return nil, fmt.Errorf("humanize: labels collide at precision %d", MaxPrecision)
}

// A Ticker is a plot.Ticker
// that rewrites the labels of an underlying ticker
// with calibrated human-readable labels.
type Ticker struct {
	// Base is the source of tick marks.
	// If it is nil, plot.DefaultTicks will be used.
	Base plot.Ticker
}

// Ticks implements the plot.Ticker interface.
func (tk Ticker) Ticks(min, max float64) []plot.Tick {
	base := tk.Base
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := base.Ticks(min, max)

	var vals []float64
	var pos []int
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		vals = append(vals, t.Value)
		pos = append(pos, i)
	}

	labels, err := Calibrate(vals)
	if err != nil {
		// keep the default labels
		return ticks
	}
	for i, p := range pos {
		ticks[p].Label = labels[i]
	}
	return ticks
}
