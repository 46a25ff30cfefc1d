package instance

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
)

func TestLoadYAML(t *testing.T) {
	p, err := LoadYAML("testdata/gpu.yaml")
	require.NoError(t, err)

	assert.Equal(t, "production mix", p.Name)
	assert.Equal(t, model.Maximize, p.Sense)
	require.Equal(t, 4, p.NumVars())
	require.Equal(t, 5, p.NumRows())
	assert.Equal(t, "H100", p.VarName(3))
	assert.Equal(t, model.LessEqual, p.Constraints[1].Op)
	assert.Equal(t, []float64{750, 280, 4800, 14500}, p.Constraints[4].Coefficients)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.InDelta(t, 19214375, sol.Objective, 1e-6)
}

func TestYAMLRoundTrip(t *testing.T) {
	p, err := LoadYAML("testdata/gpu.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, p))
	q, err := ReadYAML(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadYAMLInvalid(t *testing.T) {
	cases := map[string]string{
		"row length": `
variables: [{name: a, objective: 1}, {name: b, objective: 2}]
constraints: [{coefficients: [1], rhs: 3}]
`,
		"sense": `
sense: sideways
variables: [{name: a, objective: 1}]
constraints: []
`,
		"no variables": `
constraints: []
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(doc))
			assert.True(t, errors.Is(err, model.ErrInvalidProblem), "err = %v", err)
		})
	}

	_, err := ReadYAML(strings.NewReader("variables: [unterminated"))
	assert.Error(t, err)

	_, err = LoadYAML("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestConstructModelFromFile(t *testing.T) {
	p, err := NewReader("testdata/mintest.mps").ConstructModelFromFile()
	require.NoError(t, err)

	assert.Equal(t, model.Minimize, p.Sense)
	require.Equal(t, 2, p.NumVars())
	assert.Equal(t, "X1", p.VarName(0))
	assert.Equal(t, 3.0, p.Variables[1].Objective)

	require.Equal(t, 2, p.NumRows())
	assert.Equal(t, model.Constraint{Name: "LIM1", Coefficients: []float64{1, 1}, Op: model.GreaterEqual, RHS: 4}, p.Constraints[0])
	assert.Equal(t, model.Constraint{Name: "X1_ub", Coefficients: []float64{1, 0}, Op: model.LessEqual, RHS: 3}, p.Constraints[1])

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.InDelta(t, 9, sol.Objective, 1e-6)
}
