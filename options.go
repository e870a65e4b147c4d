package kmeans

import (
	"math/rand"
	"time"

	"github.com/hupe1980/kmeans/distance"
)

// DefaultMaxIterations is the default cap on clustering iterations.
const DefaultMaxIterations = 100

// Rand is the source of randomness used for centroid seeding and
// empty-cluster reseeding. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

type options struct {
	distance      distance.Func
	rand          Rand
	maxIterations int
	tolerance     float64
	logger        *Logger
}

// Option configures KMeans constructor behavior.
type Option func(*options)

// WithDistance configures the distance function used for all point/centroid
// comparisons. If nil is passed, distance.SquaredEuclidean is used.
//
// The pruning logic assumes the function is symmetric and satisfies the
// triangle inequality.
func WithDistance(fn distance.Func) Option {
	return func(o *options) {
		if fn == nil {
			fn = distance.SquaredEuclidean
		}
		o.distance = fn
	}
}

// WithRand configures the random source used for centroid seeding and
// empty-cluster reseeding. Inject a fixed-seed source for reproducible runs.
//
// If nil is passed, a source seeded from the current time is used.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithMaxIterations caps the number of clustering iterations.
//
// The cap is a safety valve: the convergence test compares centroid
// coordinates, which can jitter indefinitely under some inputs. Hitting the
// cap terminates the run with the current assignment.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithTolerance configures the centroid-movement tolerance used by the
// convergence test. The default 0 requires exact coordinate equality.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance >= 0 {
			o.tolerance = tolerance
		}
	}
}

// WithLogger configures structured logging for the clustering loop.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		distance:      distance.SquaredEuclidean,
		maxIterations: DefaultMaxIterations,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
