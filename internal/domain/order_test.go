package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"monamart/internal/domain"
)

func cartWith(t *testing.T, p domain.Product, qty int) *domain.Cart {
	t.Helper()
	cart := domain.NewCart()
	if ok, msg := cart.AddItem(p, qty); !ok {
		t.Fatalf("add failed: %s", msg)
	}
	return cart
}

func TestOrderBuilder_RequiresItemsAndFulfilment(t *testing.T) {
	c := domain.Customer{Email: "alice@monamart.test"}

	_, err := domain.NewOrderBuilder(c).SetPickup("clayton").Build()
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}

	cart := cartWith(t, product("MILK-2L", 4.50, 4.00, 40), 1)
	_, err = domain.NewOrderBuilder(c).AddItemsFromCart(cart.Lines()).Build()
	if !errors.Is(err, domain.ErrFulfilmentNotSet) {
		t.Fatalf("want ErrFulfilmentNotSet, got %v", err)
	}
}

// Non-VIP student, pickup, no promo: 3 x $10.00 = $30.00, 5% student
// discount $1.50, no fee, total $28.50.
func TestOrderBuilder_StudentPickup(t *testing.T) {
	c := domain.Customer{Email: "alice@monamart.test", IsStudent: true}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 3)

	o, err := domain.NewOrderBuilder(c).
		SetPickup("clayton").
		AddItemsFromCart(cart.Lines()).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if o.Subtotal != 30.00 || o.StudentDiscount != 1.50 || o.PromoDiscount != 0 ||
		o.DeliveryFee != 0 || o.Total != 28.50 {
		t.Fatalf("bad pricing: %+v", o)
	}
	if o.StoreID != "CLAYTON" {
		t.Fatalf("store ID not normalized: %q", o.StoreID)
	}
}

// Same cart with the 20% first-pickup promo: the promo replaces the
// student discount, total $24.00.
func TestOrderBuilder_PromoReplacesStudentDiscount(t *testing.T) {
	c := domain.Customer{Email: "alice@monamart.test", IsStudent: true}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 3)

	promo, ok, msg := domain.ValidatePromotion("FIRSTPICKUP20", c, domain.FulfilmentPickup, stubHistory{})
	if !ok {
		t.Fatalf("promo validation failed: %s", msg)
	}

	o, err := domain.NewOrderBuilder(c).
		SetPickup("CLAYTON").
		AddItemsFromCart(cart.Lines()).
		ApplyPromotion(promo).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if o.Subtotal != 30.00 || o.PromoDiscount != 6.00 || o.StudentDiscount != 0 || o.Total != 24.00 {
		t.Fatalf("bad pricing: %+v", o)
	}
	if o.PromoCode != "FIRSTPICKUP20" {
		t.Fatalf("promo code not recorded: %q", o.PromoCode)
	}
}

// Non-student delivery: $50.00 subtotal plus the $20.00 fee.
func TestOrderBuilder_DeliveryFee(t *testing.T) {
	c := domain.Customer{Email: "carol@monamart.test"}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 5)

	o, err := domain.NewOrderBuilder(c).
		SetDelivery("3 Exhibition St, Melbourne VIC").
		AddItemsFromCart(cart.Lines()).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if o.Subtotal != 50.00 || o.DeliveryFee != 20.00 || o.Total != 70.00 {
		t.Fatalf("bad pricing: %+v", o)
	}
	if o.DeliveryAddress == "" || o.StoreID != "" {
		t.Fatalf("fulfilment fields: %+v", o)
	}
}

func TestOrderBuilder_StudentDeliveryFeeWaived(t *testing.T) {
	c := domain.Customer{Email: "alice@monamart.test", IsStudent: true}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 5)

	o, err := domain.NewOrderBuilder(c).
		SetDelivery("8 Innovation Walk").
		AddItemsFromCart(cart.Lines()).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	// Fee waived, but the student discount is pickup-only.
	if o.DeliveryFee != 0 || o.StudentDiscount != 0 || o.Total != 50.00 {
		t.Fatalf("bad pricing: %+v", o)
	}
}

func TestOrderBuilder_VIPUsesMemberPrices(t *testing.T) {
	c := domain.Customer{
		Email:      "bob@monamart.test",
		VIPExpires: time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
	}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 3)

	o, err := domain.NewOrderBuilder(c).
		SetPickup("CITY").
		AddItemsFromCart(cart.Lines()).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if !o.IsVIP || o.Subtotal != 24.00 || o.Total != 24.00 {
		t.Fatalf("bad pricing: %+v", o)
	}
	if o.Lines[0].LineTotal != 24.00 {
		t.Fatalf("line total should use member price: %+v", o.Lines[0])
	}
}

func TestOrderBuilder_SnapshotImmuneToCartMutation(t *testing.T) {
	c := domain.Customer{Email: "carol@monamart.test"}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 2)

	b := domain.NewOrderBuilder(c).SetPickup("CITY").AddItemsFromCart(cart.Lines())
	cart.UpdateQuantity("WIDGET", 9, 50)
	cart.Clear()

	o, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Lines) != 1 || o.Lines[0].Quantity != 2 || o.Total != 20.00 {
		t.Fatalf("snapshot mutated: %+v", o)
	}
}

func TestOrderBuilder_OrderIDFormat(t *testing.T) {
	c := domain.Customer{Email: "carol@monamart.test"}
	cart := cartWith(t, product("WIDGET", 10.00, 8.00, 50), 1)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		o, err := domain.NewOrderBuilder(c).SetPickup("CITY").AddItemsFromCart(cart.Lines()).Build()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(o.ID, "ORD-") || len(o.ID) != 12 {
			t.Fatalf("bad order ID: %q", o.ID)
		}
		if seen[o.ID] {
			t.Fatalf("duplicate order ID: %q", o.ID)
		}
		seen[o.ID] = true
	}
}
