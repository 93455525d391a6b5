package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pizza-order/order-svc/internal/domain"
)

const (
	receiptBorder  = "========================================="
	receiptDivider = "---------------------------------------------"
)

// FormatReceipt renders the receipt shown in the order details area.
// Amounts are rounded to two places here and nowhere else.
func FormatReceipt(r domain.Receipt) string {
	var b strings.Builder
	b.WriteString(receiptBorder + "\n")
	for _, item := range r.LineItems {
		fmt.Fprintf(&b, "%-30s $%s\n", item.Label, money(item.Price))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-30s $%s\n", "Sub-total:", money(r.Subtotal))
	fmt.Fprintf(&b, "%-30s $%s\n", "Tax:", money(r.Tax))
	b.WriteString(receiptDivider + "\n")
	fmt.Fprintf(&b, "%-30s $%s\n", "Total:", money(r.Total))
	b.WriteString(receiptBorder + "\n")
	return b.String()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
