// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package humanize_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/panplot/humanize"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{0, 0, "0"},
		{0, 1, "0.0"},
		{999, 0, "999"},
		{1500, 0, "2K"},
		{12500, 1, "12.5K"},
		{999999, 0, "1,000K"},
		{1000000, 0, "1M"},
		{2500000000, 1, "2.5B"},
		{1000000000000, 0, "1D"},
	}

	for _, test := range tests {
		got, err := humanize.Number(test.v, test.prec)
		if err != nil {
			t.Errorf("number %g: unexpected error: %v", test.v, err)
			continue
		}
		if got != test.want {
			t.Errorf("number %g (precision %d): got %q, want %q", test.v, test.prec, got, test.want)
		}
	}
}

func TestNumberError(t *testing.T) {
	if _, err := humanize.Number(-1, 0); err == nil {
		t.Errorf("negative number: expecting error")
	}
	if _, err := humanize.Number(1e15, 0); err == nil {
		t.Errorf("out of range number: expecting error")
	}
}

func TestCalibrate(t *testing.T) {
	tests := map[string]struct {
		ticks []float64
		want  []string
	}{
		"distinct at zero": {
			ticks: []float64{0, 1000, 1000000},
			want:  []string{"0", "1K", "1M"},
		},
		"raised precision": {
			ticks: []float64{1000, 1400},
			want:  []string{"1.0K", "1.4K"},
		},
	}

	for name, test := range tests {
		got, err := humanize.Calibrate(test.ticks)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}

	// equal values never become distinct
	if _, err := humanize.Calibrate([]float64{5, 5}); err == nil {
		t.Errorf("equal ticks: expecting error")
	}
}

func TestTicker(t *testing.T) {
	ticks := humanize.Ticker{}.Ticks(0, 2500000)
	if len(ticks) == 0 {
		t.Fatalf("expecting tick marks")
	}

	seen := make(map[string]bool)
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		if strings.ContainsAny(tk.Label, "e+") {
			t.Errorf("tick %g: label %q is not humanized", tk.Value, tk.Label)
		}
		if seen[tk.Label] {
			t.Errorf("tick %g: duplicated label %q", tk.Value, tk.Label)
		}
		seen[tk.Label] = true
	}
}
