package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/instance"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/report"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/study"
)

type studyOptions struct {
	solverOptions
	scenarios bool
	plan      []float64
	export    bool
}

func newStudyCmd() *cobra.Command {
	o := studyOptions{}

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Runs the GPU production-mix study",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, study.Default())
		},
	}

	cmd.Flags().BoolVar(&o.scenarios, "scenarios", false, "re-solve the capacity what-if scenarios")
	cmd.Flags().Float64SliceVar(&o.plan, "plan", nil, "evaluate a fixed plan, one quantity per product")
	cmd.Flags().BoolVar(&o.export, "export", false, "print the study as a YAML problem document and exit")
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *studyOptions) run(cmd *cobra.Command, s *study.Study) error {
	out := cmd.OutOrStdout()

	if o.export {
		p, err := s.Problem()
		if err != nil {
			return err
		}
		return instance.WriteYAML(out, p)
	}

	if len(o.plan) > 0 {
		plan, err := s.EvaluatePlan(o.plan)
		if err != nil {
			return errors.Wrap(err, "--plan")
		}
		fmt.Fprintln(out, "Plan")
		report.Products(out, plan)
		report.Resources(out, s, plan)
	}

	res, err := s.Run(o.options()...)
	if err != nil {
		return err
	}
	if err := o.crossCheck(cmd.Context(), res.Problem, res.Solution); err != nil {
		return err
	}

	fmt.Fprintln(out, "Simplex iterations")
	report.Trace(out, res.Problem, res.Solution.Trace)
	fmt.Fprintln(out, "Optimal plan")
	report.Solution(out, res.Problem, res.Solution)
	report.Products(out, res.Plan)
	report.Resources(out, s, res.Plan)
	report.ShadowPrices(out, res.Problem, res.Solution)

	if o.scenarios {
		results, err := s.Scenarios(study.DefaultScenarios(), o.options()...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Scenarios")
		report.Scenarios(out, results)
	}
	return nil
}
