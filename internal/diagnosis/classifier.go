package diagnosis

import (
	"fmt"
	"math"

	"github.com/dtroode/diagnosis-server/internal/model"
)

// LogisticClassifier is a binary logistic regression where the positive
// class is malignant.
type LogisticClassifier struct {
	coefficients []float64
	intercept    float64
}

func NewLogisticClassifier(coefficients []float64, intercept float64) *LogisticClassifier {
	return &LogisticClassifier{
		coefficients: append([]float64(nil), coefficients...),
		intercept:    intercept,
	}
}

// Decision returns the signed distance of values from the decision boundary.
func (c *LogisticClassifier) Decision(values []float64) (float64, error) {
	if len(values) != len(c.coefficients) {
		return 0, fmt.Errorf("%w: got %d, want %d", model.ErrFeatureCount, len(values), len(c.coefficients))
	}

	z := c.intercept
	for i, v := range values {
		z += c.coefficients[i] * v
	}

	return z, nil
}

func (c *LogisticClassifier) Classify(values []float64) (model.Prediction, error) {
	z, err := c.Decision(values)
	if err != nil {
		return model.Prediction{}, err
	}

	malignant := 1 / (1 + math.Exp(-z))
	p := model.Prediction{
		Label:                model.LabelBenign,
		ProbabilityBenign:    1 - malignant,
		ProbabilityMalignant: malignant,
	}
	if z > 0 {
		p.Label = model.LabelMalignant
	}

	return p, nil
}
