package simplex

import "github.com/sirupsen/logrus"

const (
	defaultTolerance     = 1e-9
	defaultMaxIterations = 10000

	// blandAfter is the number of consecutive degenerate pivots after which the
	// entering rule falls back to Bland's rule.
	blandAfter = 10
)

// Option configures a solve.
type Option func(*config)

type config struct {
	tol           float64
	maxIterations int
	log           logrus.FieldLogger
}

func newConfig(opts []Option) *config {
	c := &config{
		tol:           defaultTolerance,
		maxIterations: defaultMaxIterations,
		log:           logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithTolerance sets the tolerance used for pricing, ratio tests and feasibility.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

// WithMaxIterations bounds the number of pivots over both phases.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithLogger sets the logger receiving per-iteration debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
