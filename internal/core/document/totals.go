package document

// LineItem is a single row of a document's item list. Items persist as JSON
// text in the document tables.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Discount kinds accepted on invoices and quotes. An empty DiscountType
// means no discount.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Subtotal sums quantity * unit price over the items.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}

// Total computes the persisted total for an invoice or quote: the subtotal
// with the discount applied. A negative result is clamped to zero.
func Total(items []LineItem, discountType string, discountValue float64) float64 {
	total := Subtotal(items)
	switch discountType {
	case DiscountPercentage:
		total -= total * discountValue / 100
	case DiscountFixed:
		total -= discountValue
	}
	if total < 0 {
		return 0
	}
	return total
}

// QuantityTotal computes the persisted total for a delivery note: the summed
// quantity across items.
func QuantityTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Quantity
	}
	return total
}
