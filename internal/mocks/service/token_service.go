package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// MockTokenService_Expecter provides the fluent expectation API.
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	ret := _m.Called(userID, roles)

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_e *MockTokenService_Expecter) GenerateTokens(userID any, roles any) *mock.Call {
	return _e.mock.On("GenerateTokens", userID, roles)
}

func (_m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	ret := _m.Called(tokenString, secret)

	var r0 *jwt.Token
	if v, ok := ret.Get(0).(*jwt.Token); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) ValidateToken(tokenString any, secret any) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString, secret)
}

func (_m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	ret := _m.Called()

	d, _ := ret.Get(0).(time.Duration)

	return d
}

func (_e *MockTokenService_Expecter) GetRefreshTokenDuration() *mock.Call {
	return _e.mock.On("GetRefreshTokenDuration")
}

// NewMockTokenService creates a new mock bound to the test lifecycle.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
