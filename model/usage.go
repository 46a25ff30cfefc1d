package model

import (
	"math"

	"github.com/pkg/errors"
)

// Usage describes how an assignment consumes one constraint.
type Usage struct {
	Name string
	Op   Op
	// LHS is Coefficients · x.
	LHS float64
	RHS float64
	// Slack is the distance to the bound in the feasible direction; negative when violated.
	// For equality rows it is -|LHS-RHS|.
	Slack float64
	// Utilization is LHS/RHS in percent, 0 when RHS is 0.
	Utilization float64
	Binding     bool
	Satisfied   bool
}

// Evaluate computes per-constraint usage of x. Values within tol of the bound count as binding.
func (p *Problem) Evaluate(x []float64, tol float64) ([]Usage, error) {
	if len(x) != len(p.Variables) {
		return nil, errors.Wrapf(ErrInvalidProblem, "assignment has %d values, want %d", len(x), len(p.Variables))
	}
	usage := make([]Usage, len(p.Constraints))
	for i, c := range p.Constraints {
		lhs := float64(0)
		for j, a := range c.Coefficients {
			lhs += a * x[j]
		}

		var slack float64
		switch c.Op {
		case LessEqual:
			slack = c.RHS - lhs
		case GreaterEqual:
			slack = lhs - c.RHS
		default:
			slack = -math.Abs(lhs - c.RHS)
		}

		// tolerance is relative to the magnitude of the row
		scale := math.Max(1, math.Max(math.Abs(lhs), math.Abs(c.RHS)))
		u := Usage{
			Name:      p.RowName(i),
			Op:        c.Op,
			LHS:       lhs,
			RHS:       c.RHS,
			Slack:     slack,
			Binding:   math.Abs(lhs-c.RHS) <= tol*scale,
			Satisfied: slack >= -tol*scale,
		}
		if c.RHS != 0 {
			u.Utilization = lhs / c.RHS * 100
		}
		usage[i] = u
	}
	return usage, nil
}

// Feasible reports whether x is non-negative and satisfies every constraint within tol.
func (p *Problem) Feasible(x []float64, tol float64) bool {
	usage, err := p.Evaluate(x, tol)
	if err != nil {
		return false
	}
	for _, v := range x {
		if v < -tol {
			return false
		}
	}
	for _, u := range usage {
		if !u.Satisfied {
			return false
		}
	}
	return true
}
