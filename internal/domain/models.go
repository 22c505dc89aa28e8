package domain

// LowStockThreshold is the quantity below which a product reports "low".
const LowStockThreshold = 10

// DefaultCategory is applied when a product is created without one.
const DefaultCategory = "electronics"

type Product struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Description string  `db:"description" json:"description,omitempty"`
	Category    string  `db:"category" json:"category"`
	SKU         string  `db:"sku" json:"sku,omitempty"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

// Status is derived from quantity, never persisted.
func (p Product) Status() string {
	if p.Quantity < LowStockThreshold {
		return "low"
	}
	return "active"
}

func (p Product) TotalValue() float64 {
	return p.Price * float64(p.Quantity)
}

// ProductView is the wire shape of a product: the stored record plus the
// derived status and total value.
type ProductView struct {
	Product
	Status     string  `json:"status"`
	TotalValue float64 `json:"totalValue"`
}

func (p Product) View() ProductView {
	return ProductView{Product: p, Status: p.Status(), TotalValue: p.TotalValue()}
}

func Views(ps []Product) []ProductView {
	out := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.View())
	}
	return out
}
