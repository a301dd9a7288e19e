package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/diagnosis-server/internal/diagnosis"
	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
)

// Diagnosis handles the diagnosis.v1.Diagnosis endpoints.
type Diagnosis struct {
	predictor      model.Predictor
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewDiagnosis creates a Diagnosis handler. predictor may be nil, in which
// case Predict answers Unavailable.
func NewDiagnosis(predictor model.Predictor, contextManager model.ContextManager, logger *logger.Logger) *Diagnosis {
	return &Diagnosis{
		predictor:      predictor,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Features lists the measurements Predict expects.
func (h *Diagnosis) Features(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	features := make([]any, 0, len(diagnosis.Features))
	for _, f := range diagnosis.Features {
		features = append(features, map[string]any{
			"key":   f.Key,
			"label": f.Label,
		})
	}

	return response(map[string]any{
		"features": features,
	})
}

// Predict classifies one set of measurements.
func (h *Diagnosis) Predict(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if h.predictor == nil {
		return nil, handleError(model.ErrPredictorNotLoaded)
	}

	values, err := numberMap(req, "features")
	if err != nil {
		return nil, err
	}

	vec, err := diagnosis.Vector(values)
	if err != nil {
		return nil, handleError(err)
	}

	email, _ := h.contextManager.GetEmailFromContext(ctx)

	prediction, err := h.predictor.Predict(ctx, vec)
	if err != nil {
		h.logger.Error("Diagnosis handler: prediction failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Diagnosis handler: prediction completed",
		"email", email,
		"label", prediction.Label)

	return response(map[string]any{
		"label":                 prediction.Label,
		"probability_benign":    prediction.ProbabilityBenign,
		"probability_malignant": prediction.ProbabilityMalignant,
	})
}
