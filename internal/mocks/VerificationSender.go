package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// VerificationSender is a mock type for the VerificationSender type
type VerificationSender struct {
	mock.Mock
}

// SendVerification provides a mock function with given fields: ctx, email, token
func (_m *VerificationSender) SendVerification(ctx context.Context, email string, token string) error {
	ret := _m.Called(ctx, email, token)

	if len(ret) == 0 {
		panic("no return value specified for SendVerification")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		return rf(ctx, email, token)
	}

	return ret.Error(0)
}

// NewVerificationSender creates a new instance of VerificationSender. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewVerificationSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *VerificationSender {
	mock := &VerificationSender{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
