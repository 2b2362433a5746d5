// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package barplot_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/js-arias/panplot/barplot"
	"github.com/js-arias/panplot/growth"
)

func makeTable(t testing.TB) *growth.Table {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "# this file was generated by panacus histgrowth -c node graph.gfa\n")
	fmt.Fprintf(&b, "coverage\t1\t2\t1\n")
	fmt.Fprintf(&b, "quorum\t1\t1\t2\n")
	for x := 1; x <= 10; x++ {
		v := 2 * math.Pow(float64(x), 1.5)
		fmt.Fprintf(&b, "%d\t%.0f\t%.0f\t%.0f\n", x, 1000*v, 800*v, 600*v)
	}

	tb, _, err := growth.ReadTSV(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tb
}

func TestNew(t *testing.T) {
	tb := makeTable(t)

	ch, err := barplot.New(tb, barplot.Config{
		Title:     "graph.histgrowth.tsv",
		CountType: "node",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := ch.Bars(); b != 3 {
		t.Errorf("got %d bar series, want 3", b)
	}
	if l := ch.Lines(); l != 0 {
		t.Errorf("got %d growth curves, want 0", l)
	}
}

func TestNewWithGrowthCurves(t *testing.T) {
	tb := makeTable(t)

	ch, err := barplot.New(tb, barplot.Config{
		Title:          "graph.histgrowth.tsv",
		CountType:      "node",
		EstimateGrowth: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := ch.Bars(); b != 3 {
		t.Errorf("got %d bar series, want 3", b)
	}

	// two columns with a quorum of one
	if l := ch.Lines(); l != 2 {
		t.Errorf("got %d growth curves, want 2", l)
	}
	fits := ch.Fits()
	if len(fits) != 2 {
		t.Fatalf("got %d fits, want 2", len(fits))
	}
	for _, f := range fits {
		if f.Column.Quorum != 1 {
			t.Errorf("column (%d, %d): fit on a quorum other than 1", f.Column.Coverage, f.Column.Quorum)
		}
		if math.Abs(f.Params.Gamma-1.5) > 0.05 {
			t.Errorf("column (%d, %d): got γ = %.6f, want 1.5", f.Column.Coverage, f.Column.Quorum, f.Params.Gamma)
		}
	}
}

func TestNewEmptyTable(t *testing.T) {
	if _, err := barplot.New(&growth.Table{}, barplot.Config{Title: "empty"}); err == nil {
		t.Errorf("empty table: expecting error")
	}
}

func TestWriteTo(t *testing.T) {
	tb := makeTable(t)

	ch, err := barplot.New(tb, barplot.Config{
		Title:          "graph.histgrowth.tsv",
		CountType:      "node",
		EstimateGrowth: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := ch.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF marker")
	}
}
