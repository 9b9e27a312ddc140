package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// MockPasswordHasher_Expecter provides the fluent expectation API.
type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

func (_e *MockPasswordHasher_Expecter) Check(password any, hash any) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

// NewMockPasswordHasher creates a new mock bound to the test lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
