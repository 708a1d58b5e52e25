// Package testutils holds test doubles shared by package tests.
package testutils

import (
	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/stretchr/testify/mock"
)

// MockExchange is a testify mock satisfying account.Exchange.
type MockExchange struct {
	mock.Mock
}

// NewMockExchange returns a MockExchange whose expectations are asserted when
// the test finishes.
func NewMockExchange(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExchange {
	m := &MockExchange{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Convert records the call and returns the configured result.
func (m *MockExchange) Convert(amount int64, base, quote money.Code) (int64, error) {
	args := m.Called(amount, base, quote)
	return args.Get(0).(int64), args.Error(1)
}
