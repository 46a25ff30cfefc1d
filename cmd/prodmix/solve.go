package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/instance"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/report"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
)

type solveOptions struct {
	solverOptions
	mpsFile  string
	yamlFile string
}

func newSolveCmd() *cobra.Command {
	o := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solves a problem read from an MPS or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.load()
			if err != nil {
				return err
			}
			return o.run(cmd, p)
		},
	}

	cmd.Flags().StringVar(&o.mpsFile, "mps", "", "path to a free-format MPS file")
	cmd.Flags().StringVar(&o.yamlFile, "yaml", "", "path to a YAML problem document")
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *solveOptions) load() (*model.Problem, error) {
	switch {
	case o.mpsFile != "" && o.yamlFile != "":
		return nil, errors.New("--mps and --yaml are mutually exclusive")
	case o.mpsFile != "":
		return instance.NewReader(o.mpsFile).ConstructModelFromFile()
	case o.yamlFile != "":
		return instance.LoadYAML(o.yamlFile)
	}
	return nil, errors.New("one of --mps or --yaml is required")
}

func (o *solveOptions) run(cmd *cobra.Command, p *model.Problem) error {
	logrus.WithFields(logrus.Fields{
		"problem":     p.Name,
		"variables":   p.NumVars(),
		"constraints": p.NumRows(),
	}).Info("solving")

	out := cmd.OutOrStdout()
	sol, err := simplex.Solve(p, o.options()...)
	if sol == nil {
		return err
	}
	report.Trace(out, p, sol.Trace)
	report.Solution(out, p, sol)
	report.ShadowPrices(out, p, sol)

	if verr := o.crossCheck(cmd.Context(), p, sol); verr != nil {
		return verr
	}
	return err
}
