package service

import "pizza-order/order-svc/internal/domain"

// ComputeReceipt prices an order. The crust check runs before the topping
// check, so an order missing both reports only the crust.
func ComputeReceipt(order domain.Order) (domain.Receipt, error) {
	if !order.Crust.Selected() {
		return domain.Receipt{}, domain.MissingCrust()
	}
	if order.Toppings.Len() == 0 {
		return domain.Receipt{}, domain.MissingToppings()
	}

	sizePrice := order.Size.Price()
	items := []domain.LineItem{{
		Label: order.Crust.String() + " Crust, " + order.Size.String(),
		Price: sizePrice,
	}}
	subtotal := sizePrice
	for _, t := range order.Toppings.List() {
		items = append(items, domain.LineItem{Label: t.String(), Price: domain.ToppingPrice})
		subtotal = subtotal.Add(domain.ToppingPrice)
	}

	tax := subtotal.Mul(domain.TaxRate)
	return domain.Receipt{
		LineItems: items,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
	}, nil
}

type OrderCalculator struct{}

func (OrderCalculator) Compute(order domain.Order) (domain.Receipt, error) {
	return ComputeReceipt(order)
}

var _ Calculator = OrderCalculator{}
