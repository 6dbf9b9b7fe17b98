package catalog

// ApplyPricing derives the two discounted prices from their inputs. The write
// path calls it immediately before every persist that touches price, discount
// or specialDiscount; the derived fields are never caller-settable.
func ApplyPricing(price, discount, specialDiscount float64) (finalPrice, finalSpecialPrice float64) {
	finalPrice = price
	if discount > 0 {
		finalPrice = price - price*discount/100
	}
	finalSpecialPrice = price
	if specialDiscount > 0 {
		finalSpecialPrice = price - price*specialDiscount/100
	}
	return finalPrice, finalSpecialPrice
}
