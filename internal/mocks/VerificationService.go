package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// VerificationService is a mock type for the VerificationService type
type VerificationService struct {
	mock.Mock
}

// Confirm provides a mock function with given fields: ctx, token
func (_m *VerificationService) Confirm(ctx context.Context, token string) (string, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Confirm")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, token)
	}

	return ret.String(0), ret.Error(1)
}

// Issue provides a mock function with given fields: ctx, email
func (_m *VerificationService) Issue(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, email)
	}

	return ret.Error(0)
}

// NewVerificationService creates a new instance of VerificationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewVerificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *VerificationService {
	mock := &VerificationService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
