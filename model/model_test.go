package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProblem(t *testing.T) *Problem {
	p := NewProblem("test", Maximize)
	require.NoError(t, p.AddVariable("a", 3))
	require.NoError(t, p.AddVariable("b", 2))
	require.NoError(t, p.AddConstraint("cap", []float64{1, 1}, LessEqual, 4))
	require.NoError(t, p.AddConstraint("", []float64{1, 3}, LessEqual, 6))
	return p
}

func TestValidate(t *testing.T) {
	p := newTestProblem(t)
	require.NoError(t, p.Validate())

	cases := map[string]func(p *Problem){
		"short row":   func(p *Problem) { p.Constraints[0].Coefficients = []float64{1} },
		"nan rhs":     func(p *Problem) { p.Constraints[1].RHS = math.NaN() },
		"inf coef":    func(p *Problem) { p.Constraints[1].Coefficients[0] = math.Inf(1) },
		"inf obj":     func(p *Problem) { p.Variables[0].Objective = math.Inf(-1) },
		"bad op":      func(p *Problem) { p.Constraints[0].Op = "<" },
		"no variable": func(p *Problem) { p.Variables = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			q := newTestProblem(t)
			mutate(q)
			err := q.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProblem))
		})
	}
}

func TestAddConstraintRowLength(t *testing.T) {
	p := newTestProblem(t)
	err := p.AddConstraint("bad", []float64{1, 2, 3}, LessEqual, 1)
	assert.True(t, errors.Is(err, ErrInvalidProblem))
	assert.Equal(t, 2, p.NumRows())

	err = p.AddVariable("late", 1)
	assert.True(t, errors.Is(err, ErrInvalidProblem))
}

func TestNames(t *testing.T) {
	p := newTestProblem(t)
	assert.Equal(t, "cap", p.RowName(0))
	assert.Equal(t, "c2", p.RowName(1))
	p.Variables[1].Name = ""
	assert.Equal(t, "x2", p.VarName(1))
}

func TestEvaluate(t *testing.T) {
	p := newTestProblem(t)
	usage, err := p.Evaluate([]float64{3, 1}, 1e-9)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	assert.Equal(t, 4.0, usage[0].LHS)
	assert.True(t, usage[0].Binding)
	assert.Equal(t, 100.0, usage[0].Utilization)
	assert.Equal(t, 0.0, usage[0].Slack)

	assert.Equal(t, 6.0, usage[1].LHS)
	assert.True(t, usage[1].Binding)

	assert.Equal(t, 11.0, p.Objective([]float64{3, 1}))
	assert.True(t, p.Feasible([]float64{3, 1}, 1e-9))
	assert.False(t, p.Feasible([]float64{4, 1}, 1e-9))
	assert.False(t, p.Feasible([]float64{-1, 0}, 1e-9))

	_, err = p.Evaluate([]float64{1}, 1e-9)
	assert.True(t, errors.Is(err, ErrInvalidProblem))
}

func TestEvaluateOperators(t *testing.T) {
	p := NewProblem("ops", Minimize)
	require.NoError(t, p.AddVariable("a", 1))
	require.NoError(t, p.AddConstraint("ge", []float64{1}, GreaterEqual, 2))
	require.NoError(t, p.AddConstraint("eq", []float64{1}, Equal, 3))

	usage, err := p.Evaluate([]float64{3}, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 1.0, usage[0].Slack)
	assert.False(t, usage[0].Binding)
	assert.True(t, usage[1].Satisfied)

	usage, err = p.Evaluate([]float64{1}, 1e-9)
	require.NoError(t, err)
	assert.False(t, usage[0].Satisfied)
	assert.Equal(t, -2.0, usage[1].Slack)
	assert.False(t, usage[1].Satisfied)
}

func TestWithRHSCopies(t *testing.T) {
	p := newTestProblem(t)
	q, err := p.WithRHS(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, q.Constraints[0].RHS)
	assert.Equal(t, 4.0, p.Constraints[0].RHS)

	q.Constraints[1].Coefficients[0] = 99
	assert.Equal(t, 1.0, p.Constraints[1].Coefficients[0])

	_, err = p.WithRHS(5, 1)
	assert.True(t, errors.Is(err, ErrInvalidProblem))
}

func TestParseSense(t *testing.T) {
	s, err := ParseSense("minimize")
	require.NoError(t, err)
	assert.Equal(t, Minimize, s)
	s, err = ParseSense("")
	require.NoError(t, err)
	assert.Equal(t, Maximize, s)
	_, err = ParseSense("sideways")
	assert.True(t, errors.Is(err, ErrInvalidProblem))
	assert.Equal(t, GreaterEqual, LessEqual.Flip())
	assert.Equal(t, Equal, Equal.Flip())
}
