package order

import "github.com/shopspring/decimal"

// Column scales of quantity and price; values are held at these scales so a
// reloaded order multiplies back to the stored total.
const (
	QuantityScale = 3
	PriceScale    = 2
)

func RoundQuantity(q float64) float64 {
	return decimal.NewFromFloat(q).Round(QuantityScale).InexactFloat64()
}

func RoundPrice(p float64) float64 {
	return decimal.NewFromFloat(p).Round(PriceScale).InexactFloat64()
}

// TotalAmount multiplies quantity by price without binary float drift.
func TotalAmount(quantity, price float64) float64 {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price)).InexactFloat64()
}

// Recompute rounds the operands to their column scales and refreshes
// TotalAmount from them.
func (o *Order) Recompute() {
	o.Quantity = RoundQuantity(o.Quantity)
	o.Price = RoundPrice(o.Price)
	o.TotalAmount = TotalAmount(o.Quantity, o.Price)
}
