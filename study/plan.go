package study

import (
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

const planTolerance = 1e-6

// DashboardPlan is the production plan the original dashboard reported. It is feasible
// but not optimal for Default.
var DashboardPlan = []float64{2000, 5000, 0, 600}

// ProductLine is the KPI summary of one product in a plan.
type ProductLine struct {
	Product
	Quantity float64
	Profit   float64
}

// Plan is a production plan evaluated against the study.
type Plan struct {
	Quantities []float64
	Lines      []ProductLine
	Resources  []model.Usage

	TotalUnits  float64
	TotalProfit float64
	Feasible    bool
}

// EvaluatePlan computes profit and resource usage of the given quantities.
func (s *Study) EvaluatePlan(quantities []float64) (*Plan, error) {
	p, err := s.Problem()
	if err != nil {
		return nil, err
	}
	usage, err := p.Evaluate(quantities, planTolerance)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Quantities: append([]float64(nil), quantities...),
		Lines:      make([]ProductLine, len(s.Products)),
		Resources:  usage,
		Feasible:   p.Feasible(quantities, planTolerance),
	}
	for j, prod := range s.Products {
		line := ProductLine{
			Product:  prod,
			Quantity: quantities[j],
			Profit:   quantities[j] * prod.Profit(),
		}
		plan.Lines[j] = line
		plan.TotalUnits += line.Quantity
		plan.TotalProfit += line.Profit
	}
	return plan, nil
}
