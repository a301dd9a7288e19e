package model

import "context"

// Diagnosis labels produced by the classifier.
const (
	LabelBenign    = "benign"
	LabelMalignant = "malignant"
)

// Prediction is the classifier output for one feature vector.
type Prediction struct {
	Label                string
	ProbabilityBenign    float64
	ProbabilityMalignant float64
}

// Scaler normalises a raw feature vector.
type Scaler interface {
	Transform(values []float64) ([]float64, error)
}

// Classifier turns a normalised feature vector into a prediction.
type Classifier interface {
	Classify(values []float64) (Prediction, error)
}

// Predictor runs the full scaler and classifier pipeline on raw measurements.
type Predictor interface {
	Predict(ctx context.Context, values []float64) (Prediction, error)
}
