// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fit implements least-squares estimation
// of pangenome growth parameters.
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ErrNoConverge is returned when the least-squares optimization
// stops without reaching convergence.
var ErrNoConverge = errors.New("fit did not converge")

// A PowerLaw is a growth curve of the form
//
//	y = m * x^γ
//
// as used by Heaps' law.
type PowerLaw struct {
	M     float64
	Gamma float64
}

// Eval returns the value of the growth curve at x.
func (p PowerLaw) Eval(x float64) float64 {
	return p.M * math.Pow(x, p.Gamma)
}

// Growth fits a power law to a growth column
// over the sample indices 1..len(y)
// by nonlinear least squares,
// starting from m=1, γ=1.
// It returns the fitted parameters
// and the curve evaluated at the same sample indices.
func Growth(y []float64) (PowerLaw, []float64, error) {
	if len(y) < 2 {
		return PowerLaw{}, nil, fmt.Errorf("growth fit: expecting at least 2 samples, got %d", len(y))
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			var ss float64
			for i, v := range y {
				x := float64(i + 1)
				d := p[0]*math.Pow(x, p[1]) - v
				ss += d * d
			}
			return ss
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: 1000 * len(y),
	}

	res, err := optimize.Minimize(problem, []float64{1, 1}, settings, &optimize.NelderMead{})
	if err != nil {
		return PowerLaw{}, nil, fmt.Errorf("growth fit: %w: %v", ErrNoConverge, err)
	}
	switch res.Status {
	case optimize.Failure, optimize.IterationLimit, optimize.FunctionEvaluationLimit:
		return PowerLaw{}, nil, fmt.Errorf("growth fit: %w: optimizer status: %s", ErrNoConverge, res.Status)
	}

	p := PowerLaw{M: res.X[0], Gamma: res.X[1]}
	curve := make([]float64, len(y))
	for i := range curve {
		curve[i] = p.Eval(float64(i + 1))
	}
	return p, curve, nil
}
