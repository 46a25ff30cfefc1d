package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidProblem is returned when a problem is malformed.
var ErrInvalidProblem = errors.New("invalid problem")

// Sense is the optimization direction.
type Sense int

const (
	Maximize Sense = iota
	Minimize
)

func (s Sense) String() string {
	if s == Minimize {
		return "min"
	}
	return "max"
}

// ParseSense accepts "max"/"maximize" and "min"/"minimize". An empty string means Maximize.
func ParseSense(s string) (Sense, error) {
	switch s {
	case "", "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	}
	return Maximize, errors.Wrapf(ErrInvalidProblem, "unknown sense %q", s)
}

// Op is the comparison operator of a constraint.
type Op string

const (
	LessEqual    Op = "<="
	GreaterEqual Op = ">="
	Equal        Op = "="
)

// Flip returns the operator obtained by multiplying both sides by -1.
func (o Op) Flip() Op {
	switch o {
	case LessEqual:
		return GreaterEqual
	case GreaterEqual:
		return LessEqual
	}
	return o
}

func (o Op) valid() bool {
	return o == LessEqual || o == GreaterEqual || o == Equal
}

// Variable is a non-negative decision variable.
type Variable struct {
	Name      string  `json:"name"`
	Objective float64 `json:"objective"`
}

// Constraint is a linear row: Coefficients · x Op RHS.
type Constraint struct {
	Name         string    `json:"name"`
	Coefficients []float64 `json:"coefficients"`
	Op           Op        `json:"op"`
	RHS          float64   `json:"rhs"`
}

// Problem is a linear program over non-negative variables.
// Variable and constraint order is significant: pivoting tie-breaks use it.
type Problem struct {
	Name        string       `json:"name,omitempty"`
	Sense       Sense        `json:"-"`
	Variables   []Variable   `json:"variables"`
	Constraints []Constraint `json:"constraints"`
}

// NewProblem returns an empty problem.
func NewProblem(name string, sense Sense) *Problem {
	return &Problem{
		Name:  name,
		Sense: sense,
	}
}

// AddVariable appends a variable. It must be called before any constraint is added.
func (p *Problem) AddVariable(name string, objective float64) error {
	if len(p.Constraints) > 0 {
		return errors.Wrapf(ErrInvalidProblem, "variable %q added after constraints", name)
	}
	p.Variables = append(p.Variables, Variable{Name: name, Objective: objective})
	return nil
}

// AddConstraint appends a constraint row.
func (p *Problem) AddConstraint(name string, coefs []float64, op Op, rhs float64) error {
	if len(coefs) != len(p.Variables) {
		return errors.Wrapf(ErrInvalidProblem, "constraint %q has %d coefficients, want %d", name, len(coefs), len(p.Variables))
	}
	p.Constraints = append(p.Constraints, Constraint{
		Name:         name,
		Coefficients: append([]float64(nil), coefs...),
		Op:           op,
		RHS:          rhs,
	})
	return nil
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int { return len(p.Variables) }

// NumRows returns the number of constraints.
func (p *Problem) NumRows() int { return len(p.Constraints) }

// Validate checks the shape and values of the problem.
func (p *Problem) Validate() error {
	if p == nil || len(p.Variables) == 0 {
		return errors.Wrap(ErrInvalidProblem, "no variables")
	}
	if p.Sense != Maximize && p.Sense != Minimize {
		return errors.Wrapf(ErrInvalidProblem, "unknown sense %d", p.Sense)
	}
	for j, v := range p.Variables {
		if !finite(v.Objective) {
			return errors.Wrapf(ErrInvalidProblem, "variable %s: objective coefficient %v", p.VarName(j), v.Objective)
		}
	}
	for i, c := range p.Constraints {
		name := p.RowName(i)
		if len(c.Coefficients) != len(p.Variables) {
			return errors.Wrapf(ErrInvalidProblem, "constraint %s has %d coefficients, want %d", name, len(c.Coefficients), len(p.Variables))
		}
		if !c.Op.valid() {
			return errors.Wrapf(ErrInvalidProblem, "constraint %s: unknown operator %q", name, c.Op)
		}
		if !finite(c.RHS) {
			return errors.Wrapf(ErrInvalidProblem, "constraint %s: rhs %v", name, c.RHS)
		}
		for j, a := range c.Coefficients {
			if !finite(a) {
				return errors.Wrapf(ErrInvalidProblem, "constraint %s: coefficient %d is %v", name, j, a)
			}
		}
	}
	return nil
}

// VarName returns the name of variable j, or x<j+1> when unnamed.
func (p *Problem) VarName(j int) string {
	if n := p.Variables[j].Name; n != "" {
		return n
	}
	return fmt.Sprintf("x%d", j+1)
}

// RowName returns the name of constraint i, or c<i+1> when unnamed.
func (p *Problem) RowName(i int) string {
	if n := p.Constraints[i].Name; n != "" {
		return n
	}
	return fmt.Sprintf("c%d", i+1)
}

// Objective evaluates the objective function at x.
func (p *Problem) Objective(x []float64) float64 {
	z := float64(0)
	for j, v := range p.Variables {
		if j < len(x) {
			z += v.Objective * x[j]
		}
	}
	return z
}

// Clone returns a deep copy of the problem.
func (p *Problem) Clone() *Problem {
	q := &Problem{
		Name:        p.Name,
		Sense:       p.Sense,
		Variables:   append([]Variable(nil), p.Variables...),
		Constraints: make([]Constraint, len(p.Constraints)),
	}
	for i, c := range p.Constraints {
		c.Coefficients = append([]float64(nil), c.Coefficients...)
		q.Constraints[i] = c
	}
	return q
}

// WithRHS returns a copy of the problem with the right-hand side of row i replaced.
func (p *Problem) WithRHS(i int, rhs float64) (*Problem, error) {
	if i < 0 || i >= len(p.Constraints) {
		return nil, errors.Wrapf(ErrInvalidProblem, "row %d does not exist", i)
	}
	q := p.Clone()
	q.Constraints[i].RHS = rhs
	return q, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
