package domain

type Product struct {
	SKU         string  `db:"sku"`
	Name        string  `db:"name"`
	Brand       string  `db:"brand"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	Subcategory string  `db:"subcategory"`
	Price       float64 `db:"price"`        // regular price, > 0
	MemberPrice float64 `db:"member_price"` // 0 < member_price <= price
	Quantity    int     `db:"quantity"`     // stock on hand, >= 0

	// Food-only fields, meaningful when IsFood is set.
	IsFood      bool   `db:"is_food"`
	ExpiryDate  string `db:"expiry_date"`
	Ingredients string `db:"ingredients"`
	Storage     string `db:"storage"`
	Allergens   string `db:"allergens"`
}

// EffectivePrice returns the member price for VIP customers, the regular
// price otherwise.
func (p Product) EffectivePrice(isVIP bool) float64 {
	if isVIP {
		return p.MemberPrice
	}
	return p.Price
}

func (p Product) InStock() bool { return p.Quantity > 0 }

// ValidPricing checks the price invariants enforced on admin writes.
func (p Product) ValidPricing() bool {
	return p.Price > 0 && p.MemberPrice > 0 && p.MemberPrice <= p.Price
}
