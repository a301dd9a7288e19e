package diagnosis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtroode/diagnosis-server/internal/model"
)

type artifact struct {
	Features []string `json:"features"`
	Scaler   struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	Classifier struct {
		Coefficients []float64 `json:"coefficients"`
		Intercept    float64   `json:"intercept"`
	} `json:"classifier"`
}

// Predictor runs the scaler and the classifier on raw measurements.
type Predictor struct {
	scaler     model.Scaler
	classifier model.Classifier
}

func NewPredictor(scaler model.Scaler, classifier model.Classifier) *Predictor {
	return &Predictor{scaler: scaler, classifier: classifier}
}

// Load reads a trained model artifact from blob. The artifact's feature list
// must match Features exactly.
func Load(ctx context.Context, blob model.BlobStore) (*Predictor, error) {
	data, err := blob.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidArtifact, err)
	}

	if len(a.Features) != len(Features) {
		return nil, fmt.Errorf("%w: artifact has %d features, want %d", model.ErrInvalidArtifact, len(a.Features), len(Features))
	}
	for i, key := range a.Features {
		if key != Features[i].Key {
			return nil, fmt.Errorf("%w: feature %d is %q, want %q", model.ErrInvalidArtifact, i, key, Features[i].Key)
		}
	}

	if len(a.Scaler.Mean) != len(Features) {
		return nil, fmt.Errorf("%w: scaler has %d values, want %d", model.ErrInvalidArtifact, len(a.Scaler.Mean), len(Features))
	}
	if len(a.Classifier.Coefficients) != len(Features) {
		return nil, fmt.Errorf("%w: classifier has %d coefficients, want %d", model.ErrInvalidArtifact, len(a.Classifier.Coefficients), len(Features))
	}

	scaler, err := NewStandardScaler(a.Scaler.Mean, a.Scaler.Scale)
	if err != nil {
		return nil, err
	}

	return NewPredictor(scaler, NewLogisticClassifier(a.Classifier.Coefficients, a.Classifier.Intercept)), nil
}

func (p *Predictor) Predict(ctx context.Context, values []float64) (model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return model.Prediction{}, err
	}

	scaled, err := p.scaler.Transform(values)
	if err != nil {
		return model.Prediction{}, err
	}

	return p.classifier.Classify(scaled)
}
