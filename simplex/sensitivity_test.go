package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveRanges(t *testing.T) {
	sol, err := Solve(gpuProblem(t))
	require.NoError(t, err)

	want := []Range{
		{Lower: 510.4, Upper: 8266.666666666666},
		{Lower: math.Inf(-1), Upper: 530.625},
		{Lower: math.Inf(-1), Upper: 15181.625},
		{Lower: 5518.375, Upper: math.Inf(1)},
	}
	require.Len(t, sol.ObjectiveRanges, len(want))
	for j, w := range want {
		got := sol.ObjectiveRanges[j]
		assertBound(t, w.Lower, got.Lower)
		assertBound(t, w.Upper, got.Upper)
		assert.True(t, got.Contains(gpuProblem(t).Variables[j].Objective), "variable %d", j)
	}
}

func TestRHSRanges(t *testing.T) {
	sol, err := Solve(gpuProblem(t))
	require.NoError(t, err)

	want := []Range{
		{Lower: 15000, Upper: 65000},
		{Lower: 5375, Upper: math.Inf(1)},
		{Lower: 105000, Upper: math.Inf(1)},
		{Lower: 0, Upper: 3078.7589498806683},
		{Lower: 17781250, Upper: math.Inf(1)},
	}
	require.Len(t, sol.RHSRanges, len(want))
	for i, w := range want {
		assertBound(t, w.Lower, sol.RHSRanges[i].Lower)
		assertBound(t, w.Upper, sol.RHSRanges[i].Upper)
	}
}

// Inside its RHS range a shadow price predicts the change of the optimum exactly.
func TestShadowPricesMatchResolve(t *testing.T) {
	p := gpuProblem(t)
	base, err := Solve(p)
	require.NoError(t, err)

	for i, delta := range []float64{100, 100, 100, 100, 1000} {
		rhs := p.Constraints[i].RHS + delta
		require.True(t, base.RHSRanges[i].Contains(rhs), "row %d", i)

		q, err := p.WithRHS(i, rhs)
		require.NoError(t, err)
		sol, err := Solve(q)
		require.NoError(t, err)
		assert.InDelta(t, base.ShadowPrices[i]*delta, sol.Objective-base.Objective, 1e-4, "row %d", i)
	}
}

// Raising a binding capacity beyond its RHS range changes the optimal basis.
func TestRHSRangeBoundary(t *testing.T) {
	p := gpuProblem(t)
	base, err := Solve(p)
	require.NoError(t, err)

	q, err := p.WithRHS(3, base.RHSRanges[3].Upper+500)
	require.NoError(t, err)
	sol, err := Solve(q)
	require.NoError(t, err)
	assert.NotEqual(t, base.Basis, sol.Basis)
}

func assertBound(t *testing.T, want, got float64) {
	t.Helper()
	if math.IsInf(want, 0) {
		assert.Equal(t, want, got)
		return
	}
	assert.InDelta(t, want, got, testTol)
}
