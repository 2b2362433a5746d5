// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PanPlot is a tool to visualize pangenome growth statistics
// computed by panacus.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/js-arias/command"
	"github.com/js-arias/panplot/barplot"
	"github.com/js-arias/panplot/growth"
	"github.com/lmittmann/tint"
)

var app = &command.Command{
	Usage: "panplot [-e|--estimate_growth_params] <growth-table>",
	Short: "visualize pangenome growth statistics",
	Long: `
PanPlot reads a growth table computed by panacus and draws it as a bar chart,
with one bar series per coverage-quorum column. The PDF document will be
printed in the standard output.

The argument of the command is the name of the growth table file.

If the flag -e, or --estimate_growth_params, is given, a least-squares fit of
the growth curve m*x^γ will be drawn over every column with a quorum of one,
and the estimated parameters will be reported in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var estimate bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&estimate, "estimate_growth_params", false, "")
	c.Flags().BoolVar(&estimate, "e", false, "")
}

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting growth table file")
	}
	name := args[0]

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	t, h, err := growth.ReadTSV(f)
	if err != nil {
		if errors.Is(err, growth.ErrBadHeader) {
			return fmt.Errorf("input file %q has wrong header. It doesn't seem to be generated by panacus", name)
		}
		if errors.Is(err, growth.ErrNotGrowth) {
			return fmt.Errorf("input file %q is not a growth table", name)
		}
		return fmt.Errorf("on file %q: %v", name, err)
	}

	ch, err := barplot.New(t, barplot.Config{
		Title:          filepath.Base(name),
		CountType:      h.CountType(),
		EstimateGrowth: estimate,
	})
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	for _, ft := range ch.Fits() {
		slog.Info("estimated growth curve",
			"coverage", ft.Column.Coverage,
			"quorum", ft.Column.Quorum,
			"m", ft.Params.M,
			"gamma", ft.Params.Gamma)
	}

	if err := ch.WriteTo(c.Stdout()); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

func main() {
	app.Main()
}
