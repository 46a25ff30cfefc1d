package simplex

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

var (
	// ErrInvalidProblem is returned for malformed problems.
	ErrInvalidProblem = model.ErrInvalidProblem
	// ErrUnbounded is returned when the objective can grow without limit.
	ErrUnbounded = errors.New("problem is unbounded")
	// ErrInfeasible is returned when no point satisfies every constraint.
	ErrInfeasible = errors.New("problem is infeasible")
	// ErrIterationLimit is returned when the pivot budget is exhausted.
	ErrIterationLimit = errors.New("iteration limit reached")
)

type solver struct {
	p   *model.Problem
	tb  *Tableau
	cfg *config

	trace []IterationRecord
}

// Solve solves p by the two-phase tableau simplex method.
//
// It returns the optimal solution and a nil error, or a solution carrying the status and
// the trace up to termination together with an error wrapping ErrUnbounded or
// ErrInfeasible. Malformed problems and exhausted iteration budgets yield a nil solution.
// p is not modified, and repeated calls on the same problem produce identical traces.
func Solve(p *model.Problem, opts ...Option) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &solver{
		p:   p,
		tb:  NewTableau(p),
		cfg: newConfig(opts),
	}
	return s.solve()
}

func (s *solver) solve() (*Solution, error) {
	tb, tol := s.tb, s.cfg.tol
	log := s.cfg.log.WithField("problem", s.p.Name)

	phase := 2
	if tb.hasArtificial() {
		phase = 1
	}
	s.record(phase, -1, -1)

	if phase == 1 {
		cost := make([]float64, tb.n)
		for j, k := range tb.kinds {
			if k == artificial {
				cost[j] = -1
			}
		}
		tb.priceOut(cost)
		status, err := s.iterate(1, func(int) bool { return true })
		if err != nil {
			return nil, err
		}
		if status != StatusOptimal {
			// the auxiliary objective is bounded by 0
			return nil, errors.New("phase one did not reach an optimum")
		}

		if w := tb.objRow()[tb.n]; w < -tol*s.scale() {
			log.WithField("infeasibility", -w).Debug("phase one ended with positive artificial sum")
			return s.terminal(StatusInfeasible), errors.Wrapf(ErrInfeasible, "sum of artificial variables is %g", -w)
		}
		s.driveOutArtificials(log)
	}

	cost := make([]float64, tb.n)
	for j := range tb.nvars {
		cost[j] = s.p.Variables[j].Objective
		if s.p.Sense == model.Minimize {
			cost[j] = -cost[j]
		}
	}
	tb.priceOut(cost)
	status, err := s.iterate(2, func(j int) bool { return tb.kinds[j] != artificial })
	if err != nil {
		return nil, err
	}
	if status == StatusUnbounded {
		return s.terminal(StatusUnbounded), errors.WithStack(ErrUnbounded)
	}

	sol := s.terminal(StatusOptimal)
	sol.Values = tb.assignment(tol)
	sol.Objective = s.p.Objective(sol.Values)
	sol.Basis = tb.basicNames()
	s.fillSensitivity(sol)

	usage, err := s.p.Evaluate(sol.Values, tol)
	if err != nil {
		return nil, err
	}
	sol.Slacks = make([]float64, len(usage))
	for i, u := range usage {
		sol.Slacks[i] = u.Slack
	}

	log.WithFields(logrus.Fields{
		"objective":  sol.Objective,
		"iterations": sol.Iterations,
	}).Debug("optimal solution found")
	return sol, nil
}

// iterate pivots until the objective row prices out or the entering column is unbounded.
func (s *solver) iterate(phase int, eligible func(j int) bool) (Status, error) {
	tb, tol := s.tb, s.cfg.tol
	degenerate := 0
	for {
		e := tb.entering(eligible, degenerate >= blandAfter, tol)
		if e < 0 {
			return StatusOptimal, nil
		}

		r, step := tb.leaving(e, tol)
		if r < 0 {
			s.cfg.log.WithFields(logrus.Fields{
				"phase":    phase,
				"entering": tb.names[e],
			}).Debug("no positive entry in entering column")
			return StatusUnbounded, nil
		}

		if len(s.trace)-1 >= s.cfg.maxIterations {
			return StatusOptimal, errors.Wrapf(ErrIterationLimit, "after %d iterations", s.cfg.maxIterations)
		}

		if step <= tol {
			degenerate++
		} else {
			degenerate = 0
		}

		leaving := tb.basis[r]
		tb.pivot(r, e)
		rec := s.record(phase, e, leaving)

		s.cfg.log.WithFields(logrus.Fields{
			"phase":     phase,
			"iteration": rec.Iteration,
			"entering":  rec.Entering,
			"leaving":   rec.Leaving,
			"objective": rec.Objective,
		}).Debug("base change")
	}
}

// driveOutArtificials pivots basic artificial columns out of the basis after a
// feasible phase one. Rows with no non-artificial entry are redundant and keep their
// artificial at zero level; artificial columns never re-enter in phase two.
func (s *solver) driveOutArtificials(log logrus.FieldLogger) {
	tb, tol := s.tb, s.cfg.tol
	for r := range tb.m {
		if tb.kinds[tb.basis[r]] != artificial {
			continue
		}
		for j := range tb.n {
			if tb.kinds[j] == artificial || tb.rowOf[j] >= 0 || math.Abs(tb.At(r, j)) <= tol {
				continue
			}
			log.WithFields(logrus.Fields{
				"leaving":  tb.names[tb.basis[r]],
				"entering": tb.names[j],
			}).Debug("artificial driven out of basis")
			tb.pivot(r, j)
			break
		}
	}
}

func (s *solver) record(phase, entering, leaving int) IterationRecord {
	x := s.tb.assignment(s.cfg.tol)
	rec := IterationRecord{
		Iteration: len(s.trace),
		Phase:     phase,
		Objective: s.p.Objective(x),
		Values:    x,
	}
	if entering >= 0 {
		rec.Entering = s.tb.names[entering]
		rec.Leaving = s.tb.names[leaving]
	}
	s.trace = append(s.trace, rec)
	return rec
}

func (s *solver) terminal(status Status) *Solution {
	return &Solution{
		Status:     status,
		Iterations: len(s.trace) - 1,
		Trace:      s.trace,
	}
}

// scale is the magnitude used to make the phase one test relative.
func (s *solver) scale() float64 {
	sc := float64(1)
	for _, c := range s.p.Constraints {
		sc = math.Max(sc, math.Abs(c.RHS))
	}
	return sc
}
