package simplex

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

// ErrMismatch is returned by CrossCheck when the reference solver disagrees.
var ErrMismatch = errors.New("reference solver disagrees")

// StandardForm converts p into min c·x s.t. A·x = b, x >= 0 by appending one slack or
// surplus column per inequality and negating the objective of maximization problems.
// Rows with a negative right-hand side are negated. p must have at least one constraint.
func StandardForm(p *model.Problem) (c []float64, A *mat.Dense, b []float64) {
	m, nvars := p.NumRows(), p.NumVars()
	n := nvars
	for _, con := range p.Constraints {
		if con.Op != model.Equal {
			n++
		}
	}

	c = make([]float64, n)
	copy(c, minCost(p))

	A = mat.NewDense(m, n, nil)
	b = make([]float64, m)
	next := nvars
	for i, con := range p.Constraints {
		sign := float64(1)
		if con.RHS < 0 {
			sign = -1
		}
		for j, a := range con.Coefficients {
			A.Set(i, j, sign*a)
		}
		b[i] = sign * con.RHS
		switch con.Op {
		case model.LessEqual:
			A.Set(i, next, sign)
			next++
		case model.GreaterEqual:
			A.Set(i, next, -sign)
			next++
		}
	}
	return c, A, b
}

// minCost returns the objective of p as a minimization over the structural variables.
func minCost(p *model.Problem) []float64 {
	c := make([]float64, p.NumVars())
	for j, v := range p.Variables {
		c[j] = v.Objective
		if p.Sense == model.Maximize {
			c[j] = -c[j]
		}
	}
	return c
}

type reference struct {
	f   float64
	err error
}

// CrossCheck solves p with gonum's simplex implementation and compares its outcome with
// sol. Objectives are compared with a tolerance relative to their magnitude.
func CrossCheck(p *model.Problem, sol *Solution, tol float64) error {
	return CrossCheckContext(context.Background(), p, sol, tol)
}

// CrossCheckContext is CrossCheck bounded by ctx. gonum's simplex can cycle on
// degenerate problems and cannot be interrupted; when ctx is done first the reference
// solve is abandoned and the context error is returned.
func CrossCheckContext(ctx context.Context, p *model.Problem, sol *Solution, tol float64) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "reference solver")
	}

	var ref reference
	if p.NumRows() == 0 {
		ref = unconstrained(p)
	} else {
		c, A, b := StandardForm(p)
		if r, cols := A.Dims(); r > cols {
			return errors.Wrapf(ErrMismatch, "standard form is %dx%d, reference solver needs more columns than rows", r, cols)
		}
		done := make(chan reference, 1)
		go func() {
			f, _, err := lp.Simplex(c, A, b, 0, nil)
			done <- reference{f: f, err: err}
		}()
		select {
		case ref = <-done:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "reference solver")
		}
	}
	return compare(p, sol, ref, tol)
}

// unconstrained solves min c·x over x >= 0: the optimum is 0 at the origin unless some
// cost is negative.
func unconstrained(p *model.Problem) reference {
	for _, c := range minCost(p) {
		if c < 0 {
			return reference{err: lp.ErrUnbounded}
		}
	}
	return reference{}
}

func compare(p *model.Problem, sol *Solution, ref reference, tol float64) error {
	f, err := ref.f, ref.err
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		if sol.IsInfeasible() {
			return nil
		}
		return errors.Wrapf(ErrMismatch, "reference reports infeasible, got %v", sol.Status)
	case errors.Is(err, lp.ErrUnbounded):
		if sol.IsUnbounded() {
			return nil
		}
		return errors.Wrapf(ErrMismatch, "reference reports unbounded, got %v", sol.Status)
	case err != nil:
		return errors.Wrap(err, "reference solver")
	}

	if !sol.IsOptimal() {
		return errors.Wrapf(ErrMismatch, "reference found an optimum, got %v", sol.Status)
	}
	if p.Sense == model.Maximize {
		f = -f
	}
	if math.Abs(f-sol.Objective) > tol*math.Max(1, math.Abs(f)) {
		return errors.Wrapf(ErrMismatch, "objective %g, reference %g", sol.Objective, f)
	}
	return nil
}
