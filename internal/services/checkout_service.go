package services

import (
	"monamart/internal/domain"
	applog "monamart/internal/log"
	"monamart/internal/repos"
)

// CheckoutService validates promotions and places built orders.
type CheckoutService struct {
	Orders   *repos.OrderRepo
	Users    *repos.UserRepo
	Checkout *repos.CheckoutRepo
}

func NewCheckoutService(orders *repos.OrderRepo, users *repos.UserRepo, checkout *repos.CheckoutRepo) *CheckoutService {
	return &CheckoutService{Orders: orders, Users: users, Checkout: checkout}
}

// ValidatePromo resolves a promo code and checks eligibility against the
// customer's order history.
func (s *CheckoutService) ValidatePromo(code string, c domain.Customer, fulfilment string) (domain.Promotion, bool, string) {
	return domain.ValidatePromotion(code, c, fulfilment, s.Orders)
}

// EligiblePromos lists the promotions this customer could apply for the
// given fulfilment type.
func (s *CheckoutService) EligiblePromos(c domain.Customer, fulfilment string) []domain.Promotion {
	var out []domain.Promotion
	for _, p := range domain.AllPromotions() {
		if ok, _ := p.Eligible(c, fulfilment, s.Orders); ok {
			out = append(out, p)
		}
	}
	return out
}

// PlaceOrder commits the order atomically: funds debit, stock decrement
// and persistence succeed or fail together. On success the caller's
// customer snapshot is refreshed with the new balance.
func (s *CheckoutService) PlaceOrder(o domain.Order, c *domain.Customer) (bool, string) {
	ok, msg := s.Checkout.Commit(o)
	if !ok {
		applog.Warn(o.CustomerEmail, "checkout.fail", map[string]any{"order_id": o.ID, "reason": msg})
		return false, msg
	}
	if funds, err := s.Users.GetFunds(c.Email); err == nil {
		c.Funds = funds
	}
	applog.Audit(o.CustomerEmail, "checkout.placed", map[string]any{
		"order_id": o.ID, "total": o.Total, "fulfilment": o.Fulfilment, "promo": o.PromoCode,
	})
	return true, msg
}

func (s *CheckoutService) OrderHistory(email string) ([]repos.OrderRecord, error) {
	return s.Orders.ListByEmail(email)
}
