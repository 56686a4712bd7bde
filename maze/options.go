package maze

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// DefaultWallRemovalRatio is the share of cells used as the number of extra
// wall removal attempts after carving.
const DefaultWallRemovalRatio = 0.10

// Option configures Generate.
type Option func(*options)

type options struct {
	rng   *rand.Rand
	ratio float64
	log   *slog.Logger
	err   error
}

func defaultOptions() options {
	return options{ratio: DefaultWallRemovalRatio}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r instead of a fresh source. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithWallRemovalRatio sets the share of cells used as extra wall removal
// attempts. 0 keeps the carved maze perfect.
func WithWallRemovalRatio(ratio float64) Option {
	return func(o *options) {
		if !(ratio >= 0 && ratio <= 1) {
			o.err = fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
			return
		}
		o.ratio = ratio
	}
}

// WithLogger routes generation diagnostics to log at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func (o *options) random() *rand.Rand {
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o.rng
}
