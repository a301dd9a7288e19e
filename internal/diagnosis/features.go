package diagnosis

import (
	"fmt"

	"github.com/dtroode/diagnosis-server/internal/model"
)

// Feature is one cell nucleus measurement the classifier expects.
type Feature struct {
	Key   string
	Label string
}

// Features lists the measurements in the order the classifier consumes them.
var Features = []Feature{
	{Key: "radius_mean", Label: "Radius (mean)"},
	{Key: "texture_mean", Label: "Texture (mean)"},
	{Key: "perimeter_mean", Label: "Perimeter (mean)"},
	{Key: "area_mean", Label: "Area (mean)"},
	{Key: "smoothness_mean", Label: "Smoothness (mean)"},
	{Key: "compactness_mean", Label: "Compactness (mean)"},
	{Key: "concavity_mean", Label: "Concavity (mean)"},
	{Key: "concave points_mean", Label: "Concave points (mean)"},
	{Key: "symmetry_mean", Label: "Symmetry (mean)"},
	{Key: "fractal_dimension_mean", Label: "Fractal dimension (mean)"},
	{Key: "radius_se", Label: "Radius (se)"},
	{Key: "texture_se", Label: "Texture (se)"},
	{Key: "perimeter_se", Label: "Perimeter (se)"},
	{Key: "area_se", Label: "Area (se)"},
	{Key: "smoothness_se", Label: "Smoothness (se)"},
	{Key: "compactness_se", Label: "Compactness (se)"},
	{Key: "concavity_se", Label: "Concavity (se)"},
	{Key: "concave points_se", Label: "Concave points (se)"},
	{Key: "symmetry_se", Label: "Symmetry (se)"},
	{Key: "fractal_dimension_se", Label: "Fractal dimension (se)"},
	{Key: "radius_worst", Label: "Radius (worst)"},
	{Key: "texture_worst", Label: "Texture (worst)"},
	{Key: "perimeter_worst", Label: "Perimeter (worst)"},
	{Key: "area_worst", Label: "Area (worst)"},
	{Key: "smoothness_worst", Label: "Smoothness (worst)"},
	{Key: "compactness_worst", Label: "Compactness (worst)"},
	{Key: "concavity_worst", Label: "Concavity (worst)"},
	{Key: "concave points_worst", Label: "Concave points (worst)"},
	{Key: "symmetry_worst", Label: "Symmetry (worst)"},
	{Key: "fractal_dimension_worst", Label: "Fractal dimension (worst)"},
}

var featureIndex = func() map[string]int {
	idx := make(map[string]int, len(Features))
	for i, f := range Features {
		idx[f.Key] = i
	}
	return idx
}()

// Vector orders submitted measurements by Features. Every feature must be
// present and no other key is accepted.
func Vector(values map[string]float64) ([]float64, error) {
	for key := range values {
		if _, ok := featureIndex[key]; !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownFeature, key)
		}
	}

	vec := make([]float64, len(Features))
	for i, f := range Features {
		v, ok := values[f.Key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrMissingFeature, f.Key)
		}
		vec[i] = v
	}

	return vec, nil
}
