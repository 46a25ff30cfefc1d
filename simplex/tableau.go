package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

type columnKind int

const (
	structural columnKind = iota
	slack
	surplus
	artificial
)

// Tableau is a dense simplex tableau in standard form.
//
// Rows 0..m-1 hold the constraints, row m is the objective row. Columns 0..n-1 hold the
// structural, slack/surplus and artificial variables in that order, column n is the RHS.
// For every row i, column basis[i] is an identity column.
type Tableau struct {
	t *mat.Dense

	m, n  int
	nvars int

	basis []int
	// rowOf[j] is the row where column j is basic, -1 if non-basic
	rowOf []int
	kinds []columnKind
	names []string

	// idCol[i] is the slack or artificial column carrying the +1 of row i
	idCol []int
	// rowSign[i] is -1 when row i was multiplied by -1 to make its RHS non-negative
	rowSign []float64
}

// NewTableau builds the initial tableau of p. The objective row is left empty; call
// priceOut before pivoting.
func NewTableau(p *model.Problem) *Tableau {
	m, nvars := p.NumRows(), p.NumVars()

	ops := make([]model.Op, m)
	rowSign := make([]float64, m)
	nslack, nart := 0, 0
	for i, c := range p.Constraints {
		ops[i], rowSign[i] = c.Op, 1
		if c.RHS < 0 {
			ops[i], rowSign[i] = c.Op.Flip(), -1
		}
		if ops[i] != model.Equal {
			nslack++
		}
		if ops[i] != model.LessEqual {
			nart++
		}
	}

	n := nvars + nslack + nart
	tb := &Tableau{
		t:       mat.NewDense(m+1, n+1, nil),
		m:       m,
		n:       n,
		nvars:   nvars,
		basis:   make([]int, m),
		rowOf:   make([]int, n),
		kinds:   make([]columnKind, n),
		names:   make([]string, n),
		idCol:   make([]int, m),
		rowSign: rowSign,
	}
	for j := range n {
		tb.rowOf[j] = -1
	}
	for j := range nvars {
		tb.names[j] = p.VarName(j)
	}

	next := nvars
	for i, c := range p.Constraints {
		row := tb.t.RawRowView(i)
		floats.ScaleTo(row[:nvars], rowSign[i], c.Coefficients)
		row[n] = rowSign[i] * c.RHS
		if ops[i] == model.Equal {
			continue
		}
		tb.kinds[next] = slack
		tb.names[next] = fmt.Sprintf("s(%s)", p.RowName(i))
		row[next] = 1
		if ops[i] == model.GreaterEqual {
			tb.kinds[next] = surplus
			tb.names[next] = fmt.Sprintf("e(%s)", p.RowName(i))
			row[next] = -1
		} else {
			tb.idCol[i] = next
			tb.setBasic(i, next)
		}
		next++
	}
	for i := range m {
		if ops[i] == model.LessEqual {
			continue
		}
		tb.kinds[next] = artificial
		tb.names[next] = fmt.Sprintf("a(%s)", p.RowName(i))
		tb.t.Set(i, next, 1)
		tb.idCol[i] = next
		tb.setBasic(i, next)
		next++
	}
	return tb
}

func (tb *Tableau) setBasic(r, j int) {
	tb.basis[r] = j
	tb.rowOf[j] = r
}

// Dims returns the number of constraint rows and variable columns.
func (tb *Tableau) Dims() (rows, cols int) { return tb.m, tb.n }

// Basis returns the basic column of every row.
func (tb *Tableau) Basis() []int { return append([]int(nil), tb.basis...) }

// ColumnName returns the name of column j.
func (tb *Tableau) ColumnName(j int) string { return tb.names[j] }

// At returns the tableau entry at row i, column j. Row m is the objective row, column n the RHS.
func (tb *Tableau) At(i, j int) float64 { return tb.t.At(i, j) }

func (tb *Tableau) objRow() []float64 { return tb.t.RawRowView(tb.m) }

func (tb *Tableau) rhs(i int) float64 { return tb.t.At(i, tb.n) }

func (tb *Tableau) hasArtificial() bool {
	for _, k := range tb.kinds {
		if k == artificial {
			return true
		}
	}
	return false
}

// priceOut rewrites the objective row for maximizing cost·x under the current basis:
// z_j = c_B·T_j - c_j and z_rhs = c_B·b.
func (tb *Tableau) priceOut(cost []float64) {
	z := tb.objRow()
	for j := range z {
		z[j] = 0
	}
	floats.AddScaled(z[:tb.n], -1, cost)
	for i, b := range tb.basis {
		if c := cost[b]; c != 0 {
			floats.AddScaled(z, c, tb.t.RawRowView(i))
		}
	}
}

// entering picks the non-basic eligible column with the most negative objective-row
// coefficient, lowest index on ties. With bland set it returns the lowest eligible
// index with a negative coefficient. It returns -1 at optimality.
func (tb *Tableau) entering(eligible func(j int) bool, bland bool, tol float64) int {
	z := tb.objRow()
	e := -1
	for j := range tb.n {
		if tb.rowOf[j] >= 0 || !eligible(j) || z[j] >= -tol {
			continue
		}
		if bland {
			return j
		}
		if e < 0 || z[j] < z[e]-tol {
			e = j
		}
	}
	return e
}

// leaving runs the ratio test on column e. Ties go to the row whose basic column has
// the lowest index. It returns -1 when no entry of the column is positive.
func (tb *Tableau) leaving(e int, tol float64) (int, float64) {
	r, best := -1, math.Inf(1)
	for i := range tb.m {
		a := tb.t.At(i, e)
		if a <= tol {
			continue
		}
		ratio := math.Max(tb.rhs(i), 0) / a
		if r < 0 {
			r, best = i, ratio
			continue
		}
		eps := tol * math.Max(1, math.Abs(best))
		if ratio < best-eps || (math.Abs(ratio-best) <= eps && tb.basis[i] < tb.basis[r]) {
			r, best = i, ratio
		}
	}
	return r, best
}

// pivot makes column e basic in row r.
func (tb *Tableau) pivot(r, e int) {
	pr := tb.t.RawRowView(r)
	floats.Scale(1/pr[e], pr)
	pr[e] = 1
	for i := 0; i <= tb.m; i++ {
		if i == r {
			continue
		}
		row := tb.t.RawRowView(i)
		if f := row[e]; f != 0 {
			floats.AddScaled(row, -f, pr)
			row[e] = 0
		}
	}
	tb.rowOf[tb.basis[r]] = -1
	tb.setBasic(r, e)
}

// assignment returns the values of the structural variables: basic variables take
// their row's RHS, non-basic variables are 0.
func (tb *Tableau) assignment(tol float64) []float64 {
	x := make([]float64, tb.nvars)
	for j := range tb.nvars {
		if r := tb.rowOf[j]; r >= 0 {
			if v := tb.rhs(r); math.Abs(v) > tol {
				x[j] = v
			}
		}
	}
	return x
}

// basicNames returns the names of the basic columns in row order.
func (tb *Tableau) basicNames() []string {
	names := make([]string, tb.m)
	for i, b := range tb.basis {
		names[i] = tb.names[b]
	}
	return names
}

func (tb *Tableau) String() string {
	return fmt.Sprintf("%v", mat.Formatted(tb.t, mat.Prefix("    "), mat.Squeeze()))
}
