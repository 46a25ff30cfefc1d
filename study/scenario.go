package study

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
)

// Scenario scales the capacity of one resource.
type Scenario struct {
	Name     string
	Resource string
	// Factor multiplies the base capacity; 1.2 is a 20% increase.
	Factor float64
}

// DefaultScenarios are the what-if cases of the original dashboard.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "+20% HBM3", Resource: "HBM3 memory", Factor: 1.2},
		{Name: "+50% HBM3", Resource: "HBM3 memory", Factor: 1.5},
		{Name: "+20% Budget", Resource: "Budget", Factor: 1.2},
	}
}

// ScenarioResult is the optimum of one scenario.
type ScenarioResult struct {
	Scenario Scenario
	Capacity float64
	Status   simplex.Status

	Objective float64
	// Delta is the change of the objective against the base optimum.
	Delta float64
	// Predicted is the change implied by the base shadow price; valid only when
	// WithinRange is set.
	Predicted   float64
	WithinRange bool
	TotalUnits  float64
	Values      []float64
}

// Scenarios solves the base study and every scenario. The first result is the base case.
// Scenarios are solved one after the other on copies of the base problem.
func (s *Study) Scenarios(scenarios []Scenario, opts ...simplex.Option) ([]ScenarioResult, error) {
	base, err := s.Run(opts...)
	if err != nil {
		return nil, err
	}
	results := []ScenarioResult{{
		Scenario:   Scenario{Name: "Base", Factor: 1},
		Status:     base.Solution.Status,
		Objective:  base.Solution.Objective,
		TotalUnits: base.Plan.TotalUnits,
		Values:     base.Solution.Values,
	}}

	for _, sc := range scenarios {
		i, err := s.Resource(sc.Resource)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %s", sc.Name)
		}
		capacity := s.Resources[i].Capacity * sc.Factor
		p, err := base.Problem.WithRHS(i, capacity)
		if err != nil {
			return nil, err
		}

		res := ScenarioResult{
			Scenario:    sc,
			Capacity:    capacity,
			Predicted:   base.Solution.ShadowPrices[i] * (capacity - s.Resources[i].Capacity),
			WithinRange: base.Solution.RHSRanges[i].Contains(capacity),
		}
		sol, err := simplex.Solve(p, opts...)
		if sol == nil {
			return nil, errors.Wrapf(err, "scenario %s", sc.Name)
		}
		res.Status = sol.Status
		if err != nil {
			logrus.WithError(err).WithField("scenario", sc.Name).Warn("scenario has no optimum")
			results = append(results, res)
			continue
		}

		res.Objective = sol.Objective
		res.Delta = sol.Objective - base.Solution.Objective
		res.Values = sol.Values
		for _, v := range sol.Values {
			res.TotalUnits += v
		}
		results = append(results, res)
	}
	return results, nil
}
