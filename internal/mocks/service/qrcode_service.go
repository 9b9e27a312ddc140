package service

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// MockQRCodeService_Expecter provides the fluent expectation API.
type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GeneratePaymentQR(authorizationURL string) ([]byte, error) {
	ret := _m.Called(authorizationURL)

	var r0 []byte
	if v, ok := ret.Get(0).([]byte); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GeneratePaymentQR(authorizationURL any) *mock.Call {
	return _e.mock.On("GeneratePaymentQR", authorizationURL)
}

// NewMockQRCodeService creates a new mock bound to the test lifecycle.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
