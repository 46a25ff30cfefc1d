package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
)

const tol = 1e-6

func TestDefaultProblem(t *testing.T) {
	p, err := Default().Problem()
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	profits := []float64{849, 319, 5200, 15500}
	for j, v := range p.Variables {
		assert.Equal(t, profits[j], v.Objective, v.Name)
	}
	assert.Equal(t, "HBM3 memory", p.RowName(3))
	assert.Equal(t, 1000.0, p.Constraints[3].RHS)
}

func TestMargins(t *testing.T) {
	s := Default()
	assert.InDelta(t, 53.1, s.Products[0].Margin(), 0.05)
	assert.InDelta(t, 51.7, s.Products[3].Margin(), 0.05)
	assert.Equal(t, 0.0, Product{}.Margin())
}

func TestRun(t *testing.T) {
	res, err := Default().Run()
	require.NoError(t, err)

	sol := res.Solution
	assert.InDeltaSlice(t, []float64{4375, 0, 0, 1000}, sol.Values, tol)
	assert.InDelta(t, 19214375, sol.Objective, tol)
	assert.Greater(t, sol.ShadowPrices[3], 0.0)

	plan := res.Plan
	assert.True(t, plan.Feasible)
	assert.InDelta(t, 5375, plan.TotalUnits, tol)
	assert.InDelta(t, sol.Objective, plan.TotalProfit, tol)
	assert.InDelta(t, 100, plan.Resources[3].Utilization, tol)
	assert.True(t, plan.Resources[3].Binding)
	assert.InDelta(t, 3714375, plan.Lines[0].Profit, tol)
}

func TestEvaluateDashboardPlan(t *testing.T) {
	s := Default()
	plan, err := s.EvaluatePlan(DashboardPlan)
	require.NoError(t, err)

	assert.True(t, plan.Feasible)
	assert.InDelta(t, 12593000, plan.TotalProfit, tol)
	assert.InDelta(t, 7600, plan.TotalUnits, tol)
	wantUsed := []float64{50000, 7600, 108000, 600, 11600000}
	for i, u := range plan.Resources {
		assert.InDelta(t, wantUsed[i], u.LHS, tol, u.Name)
	}
	assert.InDelta(t, 60, plan.Resources[3].Utilization, tol)
	assert.False(t, plan.Resources[3].Binding)

	res, err := s.Run()
	require.NoError(t, err)
	assert.Greater(t, res.Solution.Objective, plan.TotalProfit)

	_, err = s.EvaluatePlan([]float64{1, 2})
	assert.Error(t, err)
}

func TestScenarios(t *testing.T) {
	results, err := Default().Scenarios(DefaultScenarios())
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "Base", results[0].Scenario.Name)
	assert.InDelta(t, 19214375, results[0].Objective, tol)

	want := []struct {
		objective float64
		units     float64
	}{
		{21996000, 5200},
		{26168437.5, 4937.5},
		{19214375, 5375},
	}
	for k, w := range want {
		r := results[k+1]
		assert.Equal(t, simplex.StatusOptimal, r.Status, r.Scenario.Name)
		assert.InDelta(t, w.objective, r.Objective, tol, r.Scenario.Name)
		assert.InDelta(t, w.units, r.TotalUnits, tol, r.Scenario.Name)
		assert.True(t, r.WithinRange, r.Scenario.Name)
		assert.InDelta(t, r.Predicted, r.Delta, 1e-4, r.Scenario.Name)
	}
}

func TestScenarioUnknownResource(t *testing.T) {
	_, err := Default().Scenarios([]Scenario{{Name: "bad", Resource: "Unobtainium", Factor: 2}})
	assert.Error(t, err)
}
