package simplex

import (
	"math"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

// fillSensitivity derives shadow prices, reduced costs, objective ranges and RHS ranges
// from the optimal tableau.
func (s *solver) fillSensitivity(sol *Solution) {
	tb, tol := s.tb, s.cfg.tol
	z := tb.objRow()
	sign := float64(1)
	if s.p.Sense == model.Minimize {
		sign = -1
	}

	sol.ShadowPrices = make([]float64, tb.m)
	sol.RHSRanges = make([]Range, tb.m)
	for i := range tb.m {
		k := tb.idCol[i]
		y := z[k] * tb.rowSign[i] * sign
		if math.Abs(y) <= tol {
			y = 0
		}
		sol.ShadowPrices[i] = y

		lo, hi := s.rhsRange(k)
		if tb.rowSign[i] < 0 {
			lo, hi = -hi, -lo
		}
		b := s.p.Constraints[i].RHS
		sol.RHSRanges[i] = Range{Lower: b + lo, Upper: b + hi}
	}

	sol.ReducedCosts = make([]float64, tb.nvars)
	sol.ObjectiveRanges = make([]Range, tb.nvars)
	for j := range tb.nvars {
		c := sign * s.p.Variables[j].Objective
		var lo, hi float64
		if r := tb.rowOf[j]; r < 0 {
			d := z[j]
			if math.Abs(d) <= tol {
				d = 0
			}
			sol.ReducedCosts[j] = d
			lo, hi = math.Inf(-1), c+d
		} else {
			dec, inc := s.basicCostRange(r)
			lo, hi = c-dec, c+inc
		}
		if sign < 0 {
			lo, hi = -hi, -lo
		}
		sol.ObjectiveRanges[j] = Range{Lower: lo, Upper: hi}
	}
}

// basicCostRange returns how far the cost of the variable basic in row r can decrease
// and increase before some non-basic column prices out negative.
func (s *solver) basicCostRange(r int) (dec, inc float64) {
	tb, tol := s.tb, s.cfg.tol
	z := tb.objRow()
	dec, inc = math.Inf(1), math.Inf(1)
	for k := range tb.n {
		if tb.rowOf[k] >= 0 || tb.kinds[k] == artificial {
			continue
		}
		a := tb.At(r, k)
		d := math.Max(z[k], 0)
		switch {
		case a > tol:
			dec = math.Min(dec, d/a)
		case a < -tol:
			inc = math.Min(inc, d/-a)
		}
	}
	return dec, inc
}

// rhsRange returns the allowed change of the normalized RHS of the row owning identity
// column k that keeps every basic variable non-negative.
func (s *solver) rhsRange(k int) (lo, hi float64) {
	tb, tol := s.tb, s.cfg.tol
	lo, hi = math.Inf(-1), math.Inf(1)
	for r := range tb.m {
		a := tb.At(r, k)
		b := math.Max(tb.rhs(r), 0)
		switch {
		case a > tol:
			lo = math.Max(lo, -b/a)
		case a < -tol:
			hi = math.Min(hi, b/-a)
		}
	}
	return lo, hi
}
