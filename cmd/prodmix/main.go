package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/simplex"
)

const logLevelEnv = "PRODMIX_LOG"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "prodmix",
		Short:        "Solves production-mix linear programs with the simplex method",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return errors.Wrapf(err, "invalid --log-level")
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = logrus.InfoLevel.String()
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "log level: debug, info, warn, error (env "+logLevelEnv+")")

	cmd.AddCommand(newSolveCmd(), newStudyCmd())
	return cmd
}

// solverOptions are the flags shared by every command that runs the solver.
type solverOptions struct {
	maxIterations int
	tolerance     float64
	verify        bool
	verifyTimeout time.Duration
}

func (o *solverOptions) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.maxIterations, "max-iterations", 10000, "maximum number of pivots")
	fs.Float64Var(&o.tolerance, "tolerance", 1e-9, "numerical tolerance for pricing and ratio tests")
	fs.BoolVar(&o.verify, "verify", false, "cross-check the optimum with gonum's simplex implementation")
	fs.DurationVar(&o.verifyTimeout, "verify-timeout", 30*time.Second, "give up on --verify after this long; gonum's simplex may cycle on degenerate problems")
}

// crossCheck runs the reference solver on p when --verify is set.
func (o *solverOptions) crossCheck(ctx context.Context, p *model.Problem, sol *simplex.Solution) error {
	if !o.verify {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, o.verifyTimeout)
	defer cancel()
	if err := simplex.CrossCheckContext(ctx, p, sol, 1e-6); err != nil {
		return err
	}
	logrus.Info("reference solver agrees")
	return nil
}

func (o *solverOptions) options() []simplex.Option {
	return []simplex.Option{
		simplex.WithMaxIterations(o.maxIterations),
		simplex.WithTolerance(o.tolerance),
		simplex.WithLogger(logrus.StandardLogger()),
	}
}
