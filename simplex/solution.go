package simplex

import "math"

// Status is the terminal outcome of a solve.
type Status int

const (
	StatusOptimal Status = iota
	StatusUnbounded
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusInfeasible:
		return "infeasible"
	}
	return "unknown"
}

// IterationRecord is a snapshot taken after a pivot. Iteration 0 is the initial basis.
type IterationRecord struct {
	Iteration int
	Phase     int
	// Entering and Leaving name the columns exchanged by the pivot; empty for iteration 0.
	Entering string
	Leaving  string
	// Objective is the problem's own objective evaluated at Values.
	Objective float64
	Values    []float64
}

// Range is a closed interval; infinite ends are ±Inf.
type Range struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

// Solution holds the result of a solve. Only Status, Iterations and Trace are set
// unless Status is StatusOptimal.
type Solution struct {
	Status Status

	// Values are the optimal values of the decision variables.
	Values []float64

	// Objective is the optimal objective value.
	Objective float64

	// ShadowPrices holds the marginal change of the objective per unit increase of each
	// constraint's right-hand side.
	ShadowPrices []float64

	// Slacks holds the unused capacity of each constraint at the optimum.
	Slacks []float64

	// ReducedCosts holds the final objective-row coefficient of each variable, 0 when basic.
	ReducedCosts []float64

	// ObjectiveRanges holds, per variable, the interval of its objective coefficient over
	// which the optimal basis stays optimal.
	ObjectiveRanges []Range

	// RHSRanges holds, per constraint, the interval of its right-hand side over which the
	// optimal basis stays feasible and ShadowPrices stay valid.
	RHSRanges []Range

	// Basis names the basic column of every row at termination.
	Basis []string

	// Iterations is the number of pivots performed.
	Iterations int

	Trace []IterationRecord
}

func (s *Solution) IsOptimal() bool    { return s.Status == StatusOptimal }
func (s *Solution) IsUnbounded() bool  { return s.Status == StatusUnbounded }
func (s *Solution) IsInfeasible() bool { return s.Status == StatusInfeasible }

// Value returns the value of variable j, 0 if out of range.
func (s *Solution) Value(j int) float64 {
	if j < 0 || j >= len(s.Values) {
		return 0
	}
	return s.Values[j]
}

// Binding reports whether constraint i has no slack left at the optimum.
func (s *Solution) Binding(i int, tol float64) bool {
	if i < 0 || i >= len(s.Slacks) {
		return false
	}
	return math.Abs(s.Slacks[i]) <= tol
}

// Final returns the last record of the trace.
func (s *Solution) Final() IterationRecord {
	if len(s.Trace) == 0 {
		return IterationRecord{}
	}
	return s.Trace[len(s.Trace)-1]
}
