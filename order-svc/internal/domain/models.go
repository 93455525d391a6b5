package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CrustType int

const (
	CrustNone CrustType = iota
	CrustThin
	CrustRegular
	CrustDeepDish
)

var crustLabels = map[CrustType]string{
	CrustThin:     "Thin",
	CrustRegular:  "Regular",
	CrustDeepDish: "Deep-dish",
}

// Crusts lists the selectable crusts in display order.
var Crusts = []CrustType{CrustThin, CrustRegular, CrustDeepDish}

func (c CrustType) String() string {
	return crustLabels[c]
}

func (c CrustType) Selected() bool {
	_, ok := crustLabels[c]
	return ok
}

// ParseCrust accepts a crust label in any case; "deepdish" is also accepted.
// An empty string parses to CrustNone.
func ParseCrust(s string) (CrustType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CrustNone, nil
	}
	if strings.EqualFold(s, "deepdish") {
		return CrustDeepDish, nil
	}
	for _, c := range Crusts {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return CrustNone, unknownOption("crust", s)
}

type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeSuper
)

var sizeLabels = [...]string{"Small", "Medium", "Large", "Super"}

var sizePrices = [...]decimal.Decimal{
	decimal.NewFromInt(8),
	decimal.NewFromInt(12),
	decimal.NewFromInt(16),
	decimal.NewFromInt(20),
}

// Sizes lists the sizes in drop-down order; the first one is the default.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeSuper}

func (s Size) String() string {
	if !s.valid() {
		return ""
	}
	return sizeLabels[s]
}

func (s Size) Price() decimal.Decimal {
	if !s.valid() {
		return decimal.Zero
	}
	return sizePrices[s]
}

func (s Size) valid() bool {
	return s >= SizeSmall && s <= SizeSuper
}

func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SizeSmall, nil
	}
	for _, size := range Sizes {
		if strings.EqualFold(s, size.String()) {
			return size, nil
		}
	}
	return SizeSmall, unknownOption("size", s)
}

type Topping int

const (
	ToppingCheese Topping = iota
	ToppingPepperoni
	ToppingMushrooms
	ToppingOlives
	ToppingBacon
	ToppingPineapple
)

var toppingLabels = [...]string{"Cheese", "Pepperoni", "Mushrooms", "Olives", "Bacon", "Pineapple"}

// Toppings lists every topping in declaration order. Receipt lines follow it.
var Toppings = []Topping{
	ToppingCheese,
	ToppingPepperoni,
	ToppingMushrooms,
	ToppingOlives,
	ToppingBacon,
	ToppingPineapple,
}

var (
	ToppingPrice = decimal.NewFromInt(1)
	TaxRate      = decimal.RequireFromString("0.07")
)

func (t Topping) String() string {
	if t < ToppingCheese || t > ToppingPineapple {
		return ""
	}
	return toppingLabels[t]
}

func ParseTopping(s string) (Topping, error) {
	s = strings.TrimSpace(s)
	for _, t := range Toppings {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, unknownOption("topping", s)
}

// ToppingSet is a set of toppings stored as a bit mask, so iteration order
// never depends on the order toppings were picked.
type ToppingSet uint8

func NewToppingSet(toppings ...Topping) ToppingSet {
	var set ToppingSet
	for _, t := range toppings {
		set = set.With(t)
	}
	return set
}

func (s ToppingSet) With(t Topping) ToppingSet {
	if t.String() == "" {
		return s
	}
	return s | 1<<uint(t)
}

func (s ToppingSet) Without(t Topping) ToppingSet {
	if t.String() == "" {
		return s
	}
	return s &^ (1 << uint(t))
}

func (s ToppingSet) Has(t Topping) bool {
	return t.String() != "" && s&(1<<uint(t)) != 0
}

func (s ToppingSet) Len() int {
	n := 0
	for _, t := range Toppings {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// List returns the selected toppings in declaration order.
func (s ToppingSet) List() []Topping {
	list := make([]Topping, 0, len(Toppings))
	for _, t := range Toppings {
		if s.Has(t) {
			list = append(list, t)
		}
	}
	return list
}

type Order struct {
	Crust    CrustType
	Size     Size
	Toppings ToppingSet
}

// NewOrder returns the order a freshly loaded form starts with.
func NewOrder() Order {
	return Order{Crust: CrustNone, Size: SizeSmall}
}

type LineItem struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type Receipt struct {
	LineItems []LineItem      `json:"line_items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

type FormState struct {
	Order       Order
	ReceiptText string
}
