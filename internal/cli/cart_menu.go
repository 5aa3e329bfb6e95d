package cli

import (
	"monamart/internal/domain"
	"monamart/internal/validate"
)

func (s *Session) cartMenu() {
	for {
		s.banner("YOUR CART")
		isVIP := s.Customer.IsVIP()
		s.renderCart(isVIP)
		s.printf("Total items: %d/%d\n", s.Cart.TotalQuantity(), domain.MaxCartQuantity)
		s.printf("Subtotal: $%.2f\n", s.Cart.Subtotal(isVIP))
		if isVIP {
			if savings := s.Cart.VIPSavings(); savings > 0 {
				s.printf("VIP savings: $%.2f\n", savings)
			}
		}
		s.line("-")
		s.printf("1) Checkout\n2) Remove an item\n3) Update quantity\n4) Clear cart\n5) View available promotions\n0) Back\n")
		switch s.prompt("\n> ") {
		case "1":
			s.checkoutFlow()
		case "2":
			s.removeItemFlow()
		case "3":
			s.updateQuantityFlow()
		case "4":
			if s.confirm("Clear all items from cart?") {
				s.Cart.Clear()
				s.result(true, "Cart cleared")
				s.pause()
			}
		case "5":
			s.showPromotions()
		case "0", "m":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) renderCart(isVIP bool) {
	lines := s.Cart.Lines()
	if len(lines) == 0 {
		s.printf("\nYour cart is empty.\n\n")
		return
	}
	s.printf("\n%-10s %-24s %4s %10s %10s %10s\n", "SKU", "Name", "Qty", "Unit$", "VIP$", "Line$")
	s.line("-")
	for _, l := range lines {
		s.printf("%-10s %-24.24s %4d %10.2f %10.2f %10.2f\n",
			l.Product.SKU, l.Product.Name, l.Quantity,
			l.Product.Price, l.Product.MemberPrice, l.LineTotal(isVIP))
	}
	s.printf("\n")
}

func (s *Session) removeItemFlow() {
	if s.Cart.IsEmpty() {
		s.printf("Cart is empty.\n")
		s.pause()
		return
	}
	sku, ok := validate.SKU(s.prompt("\nEnter SKU to remove: "))
	if !ok {
		s.result(false, "Invalid SKU")
		s.pause()
		return
	}
	ok, msg := s.Carts.Remove(s.Cart, sku)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) updateQuantityFlow() {
	if s.Cart.IsEmpty() {
		s.printf("Cart is empty.\n")
		s.pause()
		return
	}
	sku, ok := validate.SKU(s.prompt("\nEnter SKU to update: "))
	if !ok {
		s.result(false, "Invalid SKU")
		s.pause()
		return
	}
	line, found := s.Cart.FindBySKU(sku)
	if !found {
		s.result(false, "Product not found in cart")
		s.pause()
		return
	}
	s.printf("Current quantity: %d\n", line.Quantity)
	qty, ok := validate.Qty(s.prompt("New quantity (1-10): "))
	if !ok {
		s.result(false, "Invalid quantity")
		s.pause()
		return
	}
	ok, msg := s.Carts.Update(s.Cart, sku, qty)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) showPromotions() {
	s.banner("AVAILABLE PROMOTIONS")
	for _, p := range domain.AllPromotions() {
		s.printf("\nCode: %s\n", p.Code())
		s.printf("  Description:  %s\n", p.Description())
		s.printf("  Discount:     %.0f%% off products subtotal\n", p.Rate()*100)
		s.printf("  Requirements: %s\n", p.Requirements())
		delivery, _ := p.Eligible(s.Customer, domain.FulfilmentDelivery, s.Checkout.Orders)
		pickup, _ := p.Eligible(s.Customer, domain.FulfilmentPickup, s.Checkout.Orders)
		switch {
		case delivery && pickup:
			s.printf("  + Eligible for both delivery and pickup\n")
		case delivery:
			s.printf("  + Eligible for delivery orders\n")
		case pickup:
			s.printf("  + Eligible for pickup orders\n")
		default:
			s.printf("  x Not currently eligible\n")
		}
	}
	s.pause()
}
