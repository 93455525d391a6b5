package mocks

import (
	"pizza-order/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FormController struct {
	mock.Mock
}

func (m *FormController) State() domain.FormState {
	args := m.Called()
	return args.Get(0).(domain.FormState)
}

func (m *FormController) SelectCrust(crust domain.CrustType) {
	m.Called(crust)
}

func (m *FormController) SelectSize(size domain.Size) {
	m.Called(size)
}

func (m *FormController) SetToppings(toppings []domain.Topping) {
	m.Called(toppings)
}

func (m *FormController) ToggleTopping(topping domain.Topping, selected bool) {
	m.Called(topping, selected)
}

func (m *FormController) Apply(order domain.Order) {
	m.Called(order)
}

func (m *FormController) Submit() (domain.Receipt, error) {
	args := m.Called()
	return args.Get(0).(domain.Receipt), args.Error(1)
}

func (m *FormController) Clear() {
	m.Called()
}

func (m *FormController) Quit(confirmed bool) bool {
	args := m.Called(confirmed)
	return args.Bool(0)
}
