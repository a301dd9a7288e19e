package diagnosis

import (
	"fmt"

	"github.com/dtroode/diagnosis-server/internal/model"
)

// StandardScaler centres each feature on its training mean and divides by
// its training standard deviation.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("%w: scaler has %d means and %d scales", model.ErrInvalidArtifact, len(mean), len(scale))
	}

	s := &StandardScaler{
		mean:  append([]float64(nil), mean...),
		scale: make([]float64, len(scale)),
	}
	for i, v := range scale {
		// zero variance features pass through unscaled
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}

	return s, nil
}

func (s *StandardScaler) Transform(values []float64) ([]float64, error) {
	if len(values) != len(s.mean) {
		return nil, fmt.Errorf("%w: got %d, want %d", model.ErrFeatureCount, len(values), len(s.mean))
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}

	return out, nil
}
