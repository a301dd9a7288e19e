package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// SessionValidator is a mock type for the SessionValidator type
type SessionValidator struct {
	mock.Mock
}

// Validate provides a mock function with given fields: ctx, token
func (_m *SessionValidator) Validate(ctx context.Context, token string) (string, bool, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Validate")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (string, bool, error)); ok {
		return rf(ctx, token)
	}

	return ret.String(0), ret.Bool(1), ret.Error(2)
}

// NewSessionValidator creates a new instance of SessionValidator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionValidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionValidator {
	mock := &SessionValidator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
