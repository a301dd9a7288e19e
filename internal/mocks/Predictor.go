package mocks

import (
	"context"

	model "github.com/dtroode/diagnosis-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// Predictor is a mock type for the Predictor type
type Predictor struct {
	mock.Mock
}

// Predict provides a mock function with given fields: ctx, values
func (_m *Predictor) Predict(ctx context.Context, values []float64) (model.Prediction, error) {
	ret := _m.Called(ctx, values)

	if len(ret) == 0 {
		panic("no return value specified for Predict")
	}

	if rf, ok := ret.Get(0).(func(context.Context, []float64) (model.Prediction, error)); ok {
		return rf(ctx, values)
	}

	return ret.Get(0).(model.Prediction), ret.Error(1)
}

// NewPredictor creates a new instance of Predictor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewPredictor(t interface {
	mock.TestingT
	Cleanup(func())
}) *Predictor {
	mock := &Predictor{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
