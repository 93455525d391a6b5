package tests

import (
	"errors"
	"testing"

	"pizza-order/order-svc/internal/domain"
	"pizza-order/order-svc/internal/mocks"
	"pizza-order/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputeReceipt_Examples(t *testing.T) {
	tests := []struct {
		name      string
		order     domain.Order
		wantLines []string
		subtotal  string
		tax       string
		total     string
	}{
		{
			name: "regular medium cheese bacon",
			order: domain.Order{
				Crust:    domain.CrustRegular,
				Size:     domain.SizeMedium,
				Toppings: domain.NewToppingSet(domain.ToppingCheese, domain.ToppingBacon),
			},
			wantLines: []string{"Regular Crust, Medium", "Cheese", "Bacon"},
			subtotal:  "14.00",
			tax:       "0.98",
			total:     "14.98",
		},
		{
			name: "thin super pepperoni",
			order: domain.Order{
				Crust:    domain.CrustThin,
				Size:     domain.SizeSuper,
				Toppings: domain.NewToppingSet(domain.ToppingPepperoni),
			},
			wantLines: []string{"Thin Crust, Super"},
			subtotal:  "21.00",
			tax:       "1.47",
			total:     "22.47",
		},
		{
			name: "deep dish large everything",
			order: domain.Order{
				Crust:    domain.CrustDeepDish,
				Size:     domain.SizeLarge,
				Toppings: domain.NewToppingSet(domain.Toppings...),
			},
			wantLines: []string{"Deep-dish Crust, Large", "Cheese", "Pepperoni", "Mushrooms", "Olives", "Bacon", "Pineapple"},
			subtotal:  "22.00",
			tax:       "1.54",
			total:     "23.54",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			receipt, err := service.ComputeReceipt(testCase.order)
			require.NoError(t, err)

			for i, label := range testCase.wantLines {
				assert.Equal(t, label, receipt.LineItems[i].Label)
			}
			assertMoney(t, testCase.subtotal, receipt.Subtotal)
			assertMoney(t, testCase.tax, receipt.Tax)
			assertMoney(t, testCase.total, receipt.Total)
		})
	}
}

func TestComputeReceipt_SubtotalForEverySize(t *testing.T) {
	prices := map[domain.Size]string{
		domain.SizeSmall:  "8",
		domain.SizeMedium: "12",
		domain.SizeLarge:  "16",
		domain.SizeSuper:  "20",
	}

	for _, size := range domain.Sizes {
		for n := 1; n <= len(domain.Toppings); n++ {
			order := domain.Order{
				Crust:    domain.CrustThin,
				Size:     size,
				Toppings: domain.NewToppingSet(domain.Toppings[:n]...),
			}

			receipt, err := service.ComputeReceipt(order)
			require.NoError(t, err)

			wantSubtotal := dec(prices[size]).Add(decimal.NewFromInt(int64(n)))
			assertMoney(t, wantSubtotal.String(), receipt.Subtotal)
			assertMoney(t, wantSubtotal.Mul(dec("0.07")).String(), receipt.Tax)
			assertMoney(t, receipt.Subtotal.Add(receipt.Tax).String(), receipt.Total)
			assert.Len(t, receipt.LineItems, n+1)
			assertMoney(t, prices[size], receipt.LineItems[0].Price)
		}
	}
}

func TestComputeReceipt_SmallWithThreeToppings(t *testing.T) {
	order := domain.Order{
		Crust:    domain.CrustRegular,
		Size:     domain.SizeSmall,
		Toppings: domain.NewToppingSet(domain.ToppingCheese, domain.ToppingOlives, domain.ToppingBacon),
	}

	receipt, err := service.ComputeReceipt(order)
	require.NoError(t, err)

	assertMoney(t, "11", receipt.Subtotal)
	assertMoney(t, "0.77", receipt.Tax)
	assertMoney(t, "11.77", receipt.Total)
}

func TestComputeReceipt_ToppingsFollowDeclarationOrder(t *testing.T) {
	order := domain.Order{
		Crust:    domain.CrustThin,
		Size:     domain.SizeSmall,
		Toppings: domain.NewToppingSet(domain.ToppingPineapple, domain.ToppingCheese, domain.ToppingOlives),
	}

	receipt, err := service.ComputeReceipt(order)
	require.NoError(t, err)

	labels := []string{}
	for _, item := range receipt.LineItems[1:] {
		labels = append(labels, item.Label)
		assertMoney(t, "1", item.Price)
	}
	assert.Equal(t, []string{"Cheese", "Olives", "Pineapple"}, labels)
}

func TestComputeReceipt_Validation(t *testing.T) {
	tests := []struct {
		name     string
		order    domain.Order
		wantErr  error
		wantCode string
	}{
		{
			name:     "no crust no toppings reports crust",
			order:    domain.NewOrder(),
			wantErr:  domain.ErrMissingCrust,
			wantCode: "missing_crust",
		},
		{
			name:     "no crust with toppings",
			order:    domain.Order{Size: domain.SizeSuper, Toppings: domain.NewToppingSet(domain.ToppingCheese)},
			wantErr:  domain.ErrMissingCrust,
			wantCode: "missing_crust",
		},
		{
			name:     "crust without toppings",
			order:    domain.Order{Crust: domain.CrustDeepDish, Size: domain.SizeLarge},
			wantErr:  domain.ErrMissingToppings,
			wantCode: "missing_toppings",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			receipt, err := service.ComputeReceipt(testCase.order)

			assert.ErrorIs(t, err, testCase.wantErr)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, testCase.wantCode, verr.Code)
			assert.Empty(t, receipt.LineItems)
		})
	}
}

func TestFormatReceipt(t *testing.T) {
	receipt, err := service.ComputeReceipt(domain.Order{
		Crust:    domain.CrustRegular,
		Size:     domain.SizeMedium,
		Toppings: domain.NewToppingSet(domain.ToppingCheese, domain.ToppingBacon),
	})
	require.NoError(t, err)

	want := "=========================================\n" +
		"Regular Crust, Medium          $12.00\n" +
		"Cheese                         $1.00\n" +
		"Bacon                          $1.00\n" +
		"\n" +
		"Sub-total:                     $14.00\n" +
		"Tax:                           $0.98\n" +
		"---------------------------------------------\n" +
		"Total:                         $14.98\n" +
		"=========================================\n"

	assert.Equal(t, want, service.FormatReceipt(receipt))
}

func TestFormService_InitialState(t *testing.T) {
	form := service.NewFormService(nil, nil)

	state := form.State()
	assert.Equal(t, domain.NewOrder(), state.Order)
	assert.False(t, state.Order.Crust.Selected())
	assert.Equal(t, domain.SizeSmall, state.Order.Size)
	assert.Zero(t, state.Order.Toppings.Len())
	assert.Empty(t, state.ReceiptText)
}

func TestFormService_SelectionsAndSubmit(t *testing.T) {
	form := service.NewFormService(service.OrderCalculator{}, nil)

	form.SelectCrust(domain.CrustThin)
	form.SelectSize(domain.SizeSuper)
	form.ToggleTopping(domain.ToppingPepperoni, true)
	form.ToggleTopping(domain.ToppingOlives, true)
	form.ToggleTopping(domain.ToppingOlives, false)

	receipt, err := form.Submit()
	require.NoError(t, err)
	assertMoney(t, "22.47", receipt.Total)

	state := form.State()
	assert.Equal(t, service.FormatReceipt(receipt), state.ReceiptText)
	assert.Equal(t, []domain.Topping{domain.ToppingPepperoni}, state.Order.Toppings.List())
}

func TestFormService_SubmitErrorLeavesReceipt(t *testing.T) {
	form := service.NewFormService(service.OrderCalculator{}, nil)
	form.Apply(domain.Order{
		Crust:    domain.CrustRegular,
		Size:     domain.SizeMedium,
		Toppings: domain.NewToppingSet(domain.ToppingCheese),
	})
	_, err := form.Submit()
	require.NoError(t, err)
	before := form.State().ReceiptText
	require.NotEmpty(t, before)

	form.SelectCrust(domain.CrustNone)
	_, err = form.Submit()
	assert.ErrorIs(t, err, domain.ErrMissingCrust)
	assert.Equal(t, before, form.State().ReceiptText)

	form.SelectCrust(domain.CrustThin)
	form.SetToppings(nil)
	_, err = form.Submit()
	assert.ErrorIs(t, err, domain.ErrMissingToppings)
	assert.Equal(t, before, form.State().ReceiptText)
}

func TestFormService_UsesCalculator(t *testing.T) {
	calc := new(mocks.Calculator)
	order := domain.Order{Crust: domain.CrustThin, Toppings: domain.NewToppingSet(domain.ToppingCheese)}
	calc.On("Compute", order).Return(domain.Receipt{}, assert.AnError).Once()

	form := service.NewFormService(calc, nil)
	form.Apply(order)
	_, err := form.Submit()

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, form.State().ReceiptText)
	calc.AssertExpectations(t)
}

func TestFormService_Clear(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*service.FormService)
	}{
		{
			name:  "fresh form",
			setup: func(*service.FormService) {},
		},
		{
			name: "selections only",
			setup: func(f *service.FormService) {
				f.SelectCrust(domain.CrustDeepDish)
				f.SelectSize(domain.SizeLarge)
				f.SetToppings([]domain.Topping{domain.ToppingBacon, domain.ToppingMushrooms})
			},
		},
		{
			name: "after a receipt",
			setup: func(f *service.FormService) {
				f.Apply(domain.Order{Crust: domain.CrustThin, Size: domain.SizeSuper, Toppings: domain.NewToppingSet(domain.ToppingCheese)})
				f.Submit()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			form := service.NewFormService(nil, nil)
			testCase.setup(form)

			form.Clear()

			state := form.State()
			assert.Equal(t, domain.NewOrder(), state.Order)
			assert.Empty(t, state.ReceiptText)
		})
	}
}

func TestFormService_Quit(t *testing.T) {
	calls := 0
	form := service.NewFormService(nil, func() { calls++ })

	assert.False(t, form.Quit(false))
	assert.Equal(t, 0, calls)

	assert.True(t, form.Quit(true))
	assert.True(t, form.Quit(true))
	assert.Equal(t, 1, calls)
}

func TestFormService_QuitDeclinedKeepsState(t *testing.T) {
	form := service.NewFormService(nil, func() { t.Fatal("quit must not run") })
	form.SelectCrust(domain.CrustRegular)

	form.Quit(false)

	assert.Equal(t, domain.CrustRegular, form.State().Order.Crust)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{Size: 128}

	png, err := gen.Generate("Total: $14.98")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = gen.Generate("")
	assert.ErrorIs(t, err, service.ErrNoReceipt)
}
