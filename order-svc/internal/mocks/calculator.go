package mocks

import (
	"pizza-order/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Calculator struct {
	mock.Mock
}

func (m *Calculator) Compute(order domain.Order) (domain.Receipt, error) {
	args := m.Called(order)
	return args.Get(0).(domain.Receipt), args.Error(1)
}
