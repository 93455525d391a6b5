package service

import (
	"errors"
	"sync"

	"pizza-order/order-svc/internal/domain"
	"pizza-order/order-svc/internal/metrics"
)

// FormService owns the one in-progress order and the text in the receipt
// display. Every method is safe to call from concurrent handlers.
type FormService struct {
	mu          sync.Mutex
	calc        Calculator
	order       domain.Order
	receiptText string

	quit     func()
	quitOnce sync.Once
}

// NewFormService returns a form in its initial state. quit is the only way
// the process is asked to terminate and runs at most once.
func NewFormService(calc Calculator, quit func()) *FormService {
	if calc == nil {
		calc = OrderCalculator{}
	}
	return &FormService{
		calc:  calc,
		order: domain.NewOrder(),
		quit:  quit,
	}
}

func (s *FormService) State() domain.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FormState{Order: s.order, ReceiptText: s.receiptText}
}

func (s *FormService) SelectCrust(crust domain.CrustType) {
	s.mu.Lock()
	s.order.Crust = crust
	s.mu.Unlock()
}

func (s *FormService) SelectSize(size domain.Size) {
	s.mu.Lock()
	s.order.Size = size
	s.mu.Unlock()
}

func (s *FormService) SetToppings(toppings []domain.Topping) {
	s.mu.Lock()
	s.order.Toppings = domain.NewToppingSet(toppings...)
	s.mu.Unlock()
}

func (s *FormService) ToggleTopping(topping domain.Topping, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if selected {
		s.order.Toppings = s.order.Toppings.With(topping)
	} else {
		s.order.Toppings = s.order.Toppings.Without(topping)
	}
}

// Apply replaces all selections at once, as a full form post does.
func (s *FormService) Apply(order domain.Order) {
	s.mu.Lock()
	s.order = order
	s.mu.Unlock()
}

// Submit prices the current selections. On a validation error the displayed
// receipt is left as it was.
func (s *FormService) Submit() (domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.calc.Compute(s.order)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailures.WithLabelValues(verr.Code).Inc()
		}
		return domain.Receipt{}, err
	}

	s.receiptText = FormatReceipt(receipt)
	metrics.ReceiptsTotal.Inc()
	return receipt, nil
}

func (s *FormService) Clear() {
	s.mu.Lock()
	s.order = domain.NewOrder()
	s.receiptText = ""
	s.mu.Unlock()
}

// Quit terminates only on explicit confirmation. Declining changes nothing.
func (s *FormService) Quit(confirmed bool) bool {
	if !confirmed {
		return false
	}
	s.quitOnce.Do(func() {
		if s.quit != nil {
			s.quit()
		}
	})
	return true
}

var _ FormControllerInterface = (*FormService)(nil)
