// Package study holds the GPU production-mix study: four products competing for five
// manufacturing resources.
package study

import (
	"github.com/pkg/errors"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
)

// Product is a decision variable of the study.
type Product struct {
	Name  string
	Price float64
	Cost  float64
}

// Profit is the unit profit, price minus cost.
func (p Product) Profit() float64 { return p.Price - p.Cost }

// Margin is the unit profit as a percentage of the price.
func (p Product) Margin() float64 {
	if p.Price == 0 {
		return 0
	}
	return p.Profit() / p.Price * 100
}

// Resource is a capacity constraint of the study. Usage holds the consumption per unit
// of each product, in product order.
type Resource struct {
	Name     string
	Unit     string
	Capacity float64
	Usage    []float64
}

// Study is a production-mix model.
type Study struct {
	Name      string
	Products  []Product
	Resources []Resource
}

// Default returns the GPU production-mix study.
func Default() *Study {
	return &Study{
		Name: "GPU production mix",
		Products: []Product{
			{Name: "RTX 4090", Price: 1599, Cost: 750},
			{Name: "RTX 4070", Price: 599, Cost: 280},
			{Name: "A100", Price: 10000, Cost: 4800},
			{Name: "H100", Price: 30000, Cost: 14500},
		},
		Resources: []Resource{
			{Name: "Fabrication hours", Unit: "hrs", Capacity: 50000, Usage: []float64{8, 5, 12, 15}},
			{Name: "Packaging", Unit: "units", Capacity: 35000, Usage: []float64{1, 1, 1, 1}},
			{Name: "GDDR6X memory", Unit: "GB", Capacity: 150000, Usage: []float64{24, 12, 0, 0}},
			{Name: "HBM3 memory", Unit: "GB", Capacity: 1000, Usage: []float64{0, 0, 1, 1}},
			{Name: "Budget", Unit: "$", Capacity: 45000000, Usage: []float64{750, 280, 4800, 14500}},
		},
	}
}

// Problem builds the linear program maximizing total profit.
func (s *Study) Problem() (*model.Problem, error) {
	p := model.NewProblem(s.Name, model.Maximize)
	for _, prod := range s.Products {
		if err := p.AddVariable(prod.Name, prod.Profit()); err != nil {
			return nil, err
		}
	}
	for _, r := range s.Resources {
		if err := p.AddConstraint(r.Name, r.Usage, model.LessEqual, r.Capacity); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Resource returns the index of the named resource.
func (s *Study) Resource(name string) (int, error) {
	for i, r := range s.Resources {
		if r.Name == name {
			return i, nil
		}
	}
	return -1, errors.Errorf("unknown resource %q", name)
}

// Result is a solved study.
type Result struct {
	Study    *Study
	Problem  *model.Problem
	Solution *simplex.Solution
	Plan     *Plan
}

// Run solves the study.
func (s *Study) Run(opts ...simplex.Option) (*Result, error) {
	p, err := s.Problem()
	if err != nil {
		return nil, err
	}
	sol, err := simplex.Solve(p, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "solving %s", s.Name)
	}
	plan, err := s.EvaluatePlan(sol.Values)
	if err != nil {
		return nil, err
	}
	return &Result{
		Study:    s,
		Problem:  p,
		Solution: sol,
		Plan:     plan,
	}, nil
}
