// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package barplot implements drawing
// of a pangenome growth table
// as a PDF bar chart.
package barplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/js-arias/blind"
	"github.com/js-arias/panplot/fit"
	"github.com/js-arias/panplot/growth"
	"github.com/js-arias/panplot/humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Page size of the output document.
const (
	width  = 10 * vg.Inch
	height = 6 * vg.Inch
)

// A Config contains the explicit drawing options of a chart.
type Config struct {
	// Title is the display label of the source file,
	// usually its base name.
	Title string

	// CountType is the unit counted by the table.
	CountType string

	// EstimateGrowth adds a least-squares growth curve
	// to every column with a quorum of one.
	EstimateGrowth bool
}

// A Fit is an estimated growth curve for a table column.
type Fit struct {
	Column growth.Pair
	Params fit.PowerLaw
}

// A Chart is a bar chart of a growth table,
// with one bar series per coverage-quorum column,
// drawn in column order at the same sample positions.
type Chart struct {
	p     *plot.Plot
	bars  int
	lines int
	fits  []Fit
}

// New creates a bar chart from a growth table.
func New(t *growth.Table, cfg Config) (*Chart, error) {
	if t.Rows() == 0 {
		return nil, fmt.Errorf("while building chart: empty table")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pangenome growth (%s)", cfg.Title)
	p.X.Label.Text = "samples"
	p.Y.Label.Text = "#" + cfg.CountType
	p.Y.Tick.Marker = humanize.Ticker{}
	p.X.Tick.Label.Rotation = 65 * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Legend.Left = true

	ch := &Chart{p: p}

	cols := t.Columns()
	w := vg.Length(0.8) * width / vg.Length(t.Rows())
	for i, cq := range cols {
		bars, err := plotter.NewBarChart(plotter.Values(t.Column(cq)), w)
		if err != nil {
			return nil, fmt.Errorf("while building chart: %v", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = blind.Sequential(blind.RainbowPurpleToRed, (float64(i)+0.5)/float64(len(cols)))
		p.Add(bars)
		p.Legend.Add(fmt.Sprintf("coverage ≥ %d, quorum ≥ %d", cq.Coverage, cq.Quorum), bars)
		ch.bars++

		if !cfg.EstimateGrowth || cq.Quorum != 1 {
			continue
		}
		if err := ch.addGrowthCurve(t, cq); err != nil {
			return nil, err
		}
	}
	p.NominalX(t.Samples()...)

	return ch, nil
}

func (ch *Chart) addGrowthCurve(t *growth.Table, cq growth.Pair) error {
	params, curve, err := fit.Growth(t.Column(cq))
	if err != nil {
		return fmt.Errorf("column (%d, %d): %v", cq.Coverage, cq.Quorum, err)
	}

	pts := make(plotter.XYs, len(curve))
	for i, v := range curve {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	l.LineStyle.Color = color.Black
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(2)}

	m, err := humanize.Number(params.M, 1)
	if err != nil {
		return fmt.Errorf("column (%d, %d): %v", cq.Coverage, cq.Quorum, err)
	}
	ch.p.Add(l)
	ch.p.Legend.Add(fmt.Sprintf("coverage ≥ %d, quorum ≥ %d, LS-fit to m·x^γ (m=%s, γ=%.3f)", cq.Coverage, cq.Quorum, m, params.Gamma), l)

	ch.lines++
	ch.fits = append(ch.fits, Fit{Column: cq, Params: params})
	return nil
}

// Bars returns the number of bar series in the chart.
func (ch *Chart) Bars() int {
	return ch.bars
}

// Lines returns the number of growth curves in the chart.
func (ch *Chart) Lines() int {
	return ch.lines
}

// Fits returns the estimated growth curves of the chart,
// in column order.
func (ch *Chart) Fits() []Fit {
	return ch.fits
}

// WriteTo writes the chart as a single-page PDF document.
func (ch *Chart) WriteTo(w io.Writer) error {
	wt, err := ch.p.WriterTo(width, height, "pdf")
	if err != nil {
		return fmt.Errorf("while encoding PDF: %v", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("while writing PDF: %v", err)
	}
	return nil
}
