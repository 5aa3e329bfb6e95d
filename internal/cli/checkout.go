package cli

import (
	"monamart/internal/domain"
	"monamart/internal/validate"
)

func (s *Session) checkoutFlow() {
	ok, msg := s.Carts.ValidateCheckoutReady(s.Cart)
	if !ok {
		s.result(false, msg)
		s.pause()
		return
	}

	builder := domain.NewOrderBuilder(s.Customer)

	fulfilment, done := s.chooseFulfilment(builder)
	if !done {
		return
	}

	promo := s.choosePromotion(fulfilment)
	builder.AddItemsFromCart(s.Cart.Lines()).ApplyPromotion(promo)

	order, err := builder.Build()
	if err != nil {
		s.result(false, err.Error())
		s.pause()
		return
	}

	s.renderOrderSummary(order)
	if !s.confirm("Place this order?") {
		s.printf("Order cancelled.\n")
		s.pause()
		return
	}

	ok, msg = s.Checkout.PlaceOrder(order, &s.Customer)
	s.result(ok, msg)
	if ok {
		s.printf("Order ID: %s\n", order.ID)
		s.printf("New balance: $%.2f\n", s.Customer.Funds)
		s.Cart.Clear()
	}
	s.pause()
}

// chooseFulfilment asks delivery or pickup and configures the builder.
// Returns false when the user backs out.
func (s *Session) chooseFulfilment(builder *domain.OrderBuilder) (string, bool) {
	for {
		s.printf("\nFulfilment:\n1) Delivery")
		if s.Customer.IsStudent {
			s.printf(" (free for students)")
		} else {
			s.printf(" ($%.2f fee)", domain.DeliveryFee)
		}
		s.printf("\n2) Pickup")
		if s.Customer.IsStudent {
			s.printf(" (5%% student discount)")
		}
		s.printf("\n0) Cancel\n")
		switch s.prompt("\n> ") {
		case "1":
			address := s.Customer.Address
			if address != "" {
				s.printf("Delivery address on file: %s\n", address)
				if !s.confirm("Deliver to this address?") {
					address = ""
				}
			}
			if address == "" {
				address = s.prompt("Delivery address: ")
				if address == "" {
					s.result(false, "Delivery address is required")
					continue
				}
			}
			builder.SetDelivery(address)
			return domain.FulfilmentDelivery, true
		case "2":
			storeID, ok := s.chooseStore()
			if !ok {
				continue
			}
			builder.SetPickup(storeID)
			return domain.FulfilmentPickup, true
		case "0":
			return "", false
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) chooseStore() (string, bool) {
	stores, err := s.Stores.List()
	if err != nil || len(stores) == 0 {
		s.result(false, "No pickup stores available")
		return "", false
	}
	s.printf("\nPickup stores:\n")
	for _, st := range stores {
		s.printf("  %-10s %s, %s (%s)\n", st.ID, st.Name, st.Address, st.Hours)
	}
	id, ok := validate.StoreID(s.prompt("\nStore ID: "))
	if !ok || !s.Stores.Exists(id) {
		s.result(false, "Unknown store ID")
		return "", false
	}
	return id, true
}

// choosePromotion offers eligible promo codes; nil means none applied.
func (s *Session) choosePromotion(fulfilment string) domain.Promotion {
	eligible := s.Checkout.EligiblePromos(s.Customer, fulfilment)
	if len(eligible) == 0 {
		return nil
	}
	s.printf("\nEligible promotions:\n")
	for _, p := range eligible {
		s.printf("  %-16s %s\n", p.Code(), p.Description())
	}
	if s.Customer.IsStudent && fulfilment == domain.FulfilmentPickup {
		s.printf("Note: applying a promotion replaces your student discount.\n")
	}
	for {
		code := s.prompt("\nPromo code (blank = none): ")
		if code == "" {
			return nil
		}
		p, ok, msg := s.Checkout.ValidatePromo(code, s.Customer, fulfilment)
		s.result(ok, msg)
		if ok {
			return p
		}
	}
}

func (s *Session) renderOrderSummary(o domain.Order) {
	s.banner("ORDER SUMMARY")
	s.printf("Order ID:   %s\n", o.ID)
	if o.Fulfilment == domain.FulfilmentDelivery {
		s.printf("Fulfilment: DELIVERY to %s\n", o.DeliveryAddress)
	} else {
		s.printf("Fulfilment: PICKUP at %s\n", o.StoreID)
	}
	s.printf("\n%-10s %-24s %4s %10s %10s\n", "SKU", "Name", "Qty", "Unit$", "Line$")
	s.line("-")
	for _, l := range o.Lines {
		unit := l.UnitPrice
		if o.IsVIP {
			unit = l.MemberPrice
		}
		s.printf("%-10s %-24.24s %4d %10.2f %10.2f\n", l.SKU, l.Name, l.Quantity, unit, l.LineTotal)
	}
	s.line("-")
	s.printf("%-40s %10.2f\n", "Subtotal:", o.Subtotal)
	if o.StudentDiscount > 0 {
		s.printf("%-40s %10.2f\n", "Student discount (5%):", -o.StudentDiscount)
	}
	if o.PromoCode != "" {
		s.printf("%-40s %10.2f\n", "Promo "+o.PromoCode+":", -o.PromoDiscount)
	}
	if o.Fulfilment == domain.FulfilmentDelivery {
		if o.DeliveryFee > 0 {
			s.printf("%-40s %10.2f\n", "Delivery fee:", o.DeliveryFee)
		} else {
			s.printf("%-40s %10s\n", "Delivery fee:", "waived")
		}
	}
	s.printf("%-40s %10.2f\n", "TOTAL:", o.Total)
	s.printf("\nYour balance: $%.2f\n", s.Customer.Funds)
}
