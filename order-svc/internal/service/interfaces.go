package service

import "pizza-order/order-svc/internal/domain"

type Calculator interface {
	Compute(order domain.Order) (domain.Receipt, error)
}

type FormControllerInterface interface {
	State() domain.FormState
	SelectCrust(crust domain.CrustType)
	SelectSize(size domain.Size)
	SetToppings(toppings []domain.Topping)
	ToggleTopping(topping domain.Topping, selected bool)
	Apply(order domain.Order)
	Submit() (domain.Receipt, error)
	Clear()
	Quit(confirmed bool) bool
}

type QRGenerator interface {
	Generate(text string) ([]byte, error)
}
