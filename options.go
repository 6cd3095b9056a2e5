package linreg

import (
	"errors"

	"github.com/arloliu/linreg/internal/options"
)

// ciConfig holds the settings for SlopeConfidenceInterval.
type ciConfig struct {
	quantile QuantileFunc
}

// CIOption is a functional option for SlopeConfidenceInterval.
type CIOption = options.Option[*ciConfig]

// newCIConfig returns the default configuration modified by the given
// options.
func newCIConfig(opts ...CIOption) (*ciConfig, error) {
	cfg := &ciConfig{quantile: studentTQuantile}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithQuantileFunc replaces the default gonum-backed Student's t
// quantile source with fn.
func WithQuantileFunc(fn QuantileFunc) CIOption {
	return func(cfg *ciConfig) error {
		if fn == nil {
			return errors.New("quantile function must not be nil")
		}
		cfg.quantile = fn

		return nil
	}
}
