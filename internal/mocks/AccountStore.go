package mocks

import (
	"context"

	model "github.com/dtroode/diagnosis-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// AccountStore is a mock type for the AccountStore type
type AccountStore struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *AccountStore) Load(ctx context.Context) (map[string]model.Account, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 map[string]model.Account
	if rf, ok := ret.Get(0).(func(context.Context) (map[string]model.Account, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]model.Account)
	}

	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, accounts
func (_m *AccountStore) Save(ctx context.Context, accounts map[string]model.Account) error {
	ret := _m.Called(ctx, accounts)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(context.Context, map[string]model.Account) error); ok {
		return rf(ctx, accounts)
	}
	return ret.Error(0)
}

// NewAccountStore creates a new instance of AccountStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAccountStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountStore {
	mock := &AccountStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
