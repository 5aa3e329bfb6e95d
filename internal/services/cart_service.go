package services

import (
	"fmt"

	"monamart/internal/domain"
	"monamart/internal/repos"
)

// CartService resolves SKUs against the live catalog and applies the
// cart's business rules. The cart itself is session state owned by the
// caller.
type CartService struct {
	Prods *repos.ProductRepo
}

func NewCartService(prods *repos.ProductRepo) *CartService {
	return &CartService{Prods: prods}
}

func (s *CartService) Add(cart *domain.Cart, sku string, qty int) (bool, string) {
	p, err := s.Prods.Get(sku)
	if err != nil {
		return false, fmt.Sprintf("Product with SKU %s not found", sku)
	}
	return cart.AddItem(p, qty)
}

func (s *CartService) Update(cart *domain.Cart, sku string, qty int) (bool, string) {
	return cart.UpdateQuantity(sku, qty, s.Prods.CurrentStock(sku))
}

func (s *CartService) Remove(cart *domain.Cart, sku string) (bool, string) {
	return cart.RemoveItem(sku)
}

// ValidateCheckoutReady re-checks every line against live stock,
// short-circuiting on the first failure.
func (s *CartService) ValidateCheckoutReady(cart *domain.Cart) (bool, string) {
	if cart.IsEmpty() {
		return false, "Cart is empty"
	}
	if ok, msg := cart.ValidateAllStock(s.Prods.CurrentStock); !ok {
		return false, msg
	}
	return true, "Cart is ready for checkout"
}
