// Package report renders solver output as text tables.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/study"
)

const (
	// bindingTolerance decides which constraints are reported as binding.
	bindingTolerance = 1e-6
	// stabilityMargin is the relative change of an objective coefficient that must stay
	// inside its range for the optimum to be reported as stable.
	stabilityMargin = 0.1
)

// stable reports whether c can move by stabilityMargin in both directions without
// leaving r.
func stable(c float64, r simplex.Range) bool {
	d := stabilityMargin * math.Abs(c)
	return r.Contains(c-d) && r.Contains(c+d)
}

// impact labels a resource by its shadow price: scarce resources are critical.
func impact(price float64) string {
	if price == 0 {
		return "none"
	}
	return "critical"
}

// Trace writes one row per iteration: phase, pivot, objective and variable values.
func Trace(w io.Writer, p *model.Problem, trace []simplex.IterationRecord) {
	headers := []string{"Iteration", "Phase", "Entering", "Leaving", "Objective"}
	for j := range p.Variables {
		headers = append(headers, p.VarName(j))
	}
	t := NewTable(headers, nil)
	for _, rec := range trace {
		row := []string{
			fmt.Sprint(rec.Iteration),
			fmt.Sprint(rec.Phase),
			rec.Entering,
			rec.Leaving,
			number(rec.Objective),
		}
		for _, v := range rec.Values {
			row = append(row, number(v))
		}
		t.Append(row...)
	}
	t.Draw(w)
}

// Solution writes the status, objective and per-variable values with their reduced
// costs and objective ranges. A variable is stable when its coefficient can change by
// 10% either way without changing the optimal basis.
func Solution(w io.Writer, p *model.Problem, sol *simplex.Solution) {
	fmt.Fprintf(w, "Status: %s after %d iterations\n", sol.Status, sol.Iterations)
	if !sol.IsOptimal() {
		return
	}
	fmt.Fprintf(w, "Objective (%s): %s\n", p.Sense, number(sol.Objective))

	t := NewTable([]string{"Variable", "Value", "Coefficient", "Reduced cost", "Min coefficient", "Max coefficient", "Stable"}, nil)
	for j, v := range p.Variables {
		r := sol.ObjectiveRanges[j]
		t.Append(p.VarName(j), number(sol.Values[j]), number(v.Objective), number(sol.ReducedCosts[j]), number(r.Lower), number(r.Upper), yesNo(stable(v.Objective, r)))
	}
	t.Draw(w)
}

// ShadowPrices writes per-constraint slack, shadow price and right-hand-side range.
func ShadowPrices(w io.Writer, p *model.Problem, sol *simplex.Solution) {
	if !sol.IsOptimal() {
		return
	}
	t := NewTable([]string{"Constraint", "RHS", "Slack", "Binding", "Shadow price", "Impact", "Min RHS", "Max RHS"}, nil)
	for i, c := range p.Constraints {
		r := sol.RHSRanges[i]
		y := sol.ShadowPrices[i]
		t.Append(p.RowName(i), number(c.RHS), number(sol.Slacks[i]), yesNo(sol.Binding(i, bindingTolerance)), number(y), impact(y), number(r.Lower), number(r.Upper))
	}
	t.Draw(w)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Resources writes the usage of every constraint by a plan.
func Resources(w io.Writer, s *study.Study, plan *study.Plan) {
	t := NewTable([]string{"Resource", "Used", "Available", "Utilization %", "Unit"}, nil)
	for i, u := range plan.Resources {
		t.Append(u.Name, number(u.LHS), number(u.RHS), fixed(u.Utilization, 1), s.Resources[i].Unit)
	}
	t.Draw(w)
}

// Products writes the KPI summary of a plan.
func Products(w io.Writer, plan *study.Plan) {
	t := NewTable([]string{"Product", "Quantity", "Price", "Cost", "Unit profit", "Margin %", "Profit"}, nil)
	for _, l := range plan.Lines {
		t.Append(l.Name, number(l.Quantity), number(l.Price), number(l.Cost), number(l.Product.Profit()), fixed(l.Margin(), 1), number(l.Profit))
	}
	t.Append("Total", number(plan.TotalUnits), "", "", "", "", number(plan.TotalProfit))
	t.Draw(w)
	if !plan.Feasible {
		fmt.Fprintln(w, "Plan violates at least one constraint")
	}
}

// Scenarios writes the what-if results.
func Scenarios(w io.Writer, results []study.ScenarioResult) {
	t := NewTable([]string{"Scenario", "Status", "Capacity", "Objective", "Delta", "Predicted", "Units"}, nil)
	for _, r := range results {
		capacity, predicted := "", ""
		if r.Scenario.Resource != "" {
			capacity = number(r.Capacity)
			predicted = "outside range"
			if r.WithinRange {
				predicted = number(r.Predicted)
			}
		}
		t.Append(r.Scenario.Name, r.Status.String(), capacity, number(r.Objective), number(r.Delta), predicted, number(r.TotalUnits))
	}
	t.Draw(w)
}
