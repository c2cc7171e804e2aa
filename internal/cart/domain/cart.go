package domain

import (
	"encoding/json"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// TaxRate is the flat rate applied to the subtotal. The demo is not
// jurisdiction-aware.
const TaxRate = 0.08

// LineItem is one product-and-quantity entry in a cart. A cart holds at most
// one line item per ProductID.
type LineItem struct {
	ProductID int64
	Title     string
	Category  catalog.Category
	Price     float64
	Quantity  int64
}

func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Cart is an ordered list of line items, insertion order preserved.
type Cart struct {
	Items []LineItem
}

func (c Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.LineTotal()
	}
	return sum
}

func (c Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

func (c Cart) GrandTotal() float64 {
	return c.Subtotal() + c.Tax()
}

func (c Cart) ItemCount() int64 {
	var n int64
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// wireItem is the persisted shape of a line item. The keys match the slot
// format the storefront has always written.
type wireItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// Encode serializes the cart for the persisted slot.
func (c Cart) Encode() ([]byte, error) {
	wire := make([]wireItem, 0, len(c.Items))
	for _, it := range c.Items {
		wire = append(wire, wireItem{
			ID:       it.ProductID,
			Title:    it.Title,
			Category: string(it.Category),
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return json.Marshal(wire)
}

// Decode parses a persisted slot payload. Any parse failure yields an error;
// callers treat that as an empty cart.
func Decode(data []byte) (Cart, error) {
	var wire []wireItem
	if err := json.Unmarshal(data, &wire); err != nil {
		return Cart{}, err
	}

	items := make([]LineItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, LineItem{
			ProductID: w.ID,
			Title:     w.Title,
			Category:  catalog.Category(w.Category),
			Price:     w.Price,
			Quantity:  w.Quantity,
		})
	}
	return Cart{Items: items}, nil
}
