package services_test

import (
	"testing"

	"monamart/internal/domain"
	"monamart/internal/repos"
	"monamart/internal/services"
)

func TestCartService_AddResolvesCatalog(t *testing.T) {
	db := testDB(t)
	carts := services.NewCartService(repos.NewProductRepo(db))
	cart := domain.NewCart()

	if ok, msg := carts.Add(cart, "NOPE-SKU", 1); ok {
		t.Fatal("unknown SKU accepted")
	} else if msg != "Product with SKU NOPE-SKU not found" {
		t.Fatalf("unexpected message: %q", msg)
	}

	if ok, _ := carts.Add(cart, "TOWEL-4PK", 1); ok {
		t.Fatal("zero-stock product accepted")
	}
	if !cart.IsEmpty() {
		t.Fatal("rejected adds must leave cart empty")
	}

	if ok, msg := carts.Add(cart, "MILK-2L", 2); !ok {
		t.Fatalf("add failed: %s", msg)
	}
	if cart.TotalQuantity() != 2 {
		t.Fatalf("want 2 items, got %d", cart.TotalQuantity())
	}
}

func TestCartService_ValidateCheckoutReady(t *testing.T) {
	db := testDB(t)
	prodRepo := repos.NewProductRepo(db)
	carts := services.NewCartService(prodRepo)
	cart := domain.NewCart()

	if ok, msg := carts.ValidateCheckoutReady(cart); ok || msg != "Cart is empty" {
		t.Fatalf("empty cart: ok=%v msg=%q", ok, msg)
	}

	if ok, msg := carts.Add(cart, "RICE-5KG", 5); !ok {
		t.Fatalf("add failed: %s", msg)
	}
	if ok, msg := carts.ValidateCheckoutReady(cart); !ok {
		t.Fatalf("expected ready: %q", msg)
	}

	// Stock drains between add and checkout.
	if !prodRepo.DecrementStock("RICE-5KG", 9) {
		t.Fatal("could not drain stock")
	}
	ok, msg := carts.ValidateCheckoutReady(cart)
	if ok {
		t.Fatal("stale cart validated")
	}
	if msg != "Only 3 units of Jasmine Rice 5kg available" {
		t.Fatalf("unexpected message: %q", msg)
	}

	// Update against live stock caps at what is left.
	if ok, _ := carts.Update(cart, "RICE-5KG", 5); ok {
		t.Fatal("update above live stock accepted")
	}
	if ok, msg := carts.Update(cart, "RICE-5KG", 3); !ok {
		t.Fatalf("update failed: %s", msg)
	}
	if ok, msg := carts.ValidateCheckoutReady(cart); !ok {
		t.Fatalf("expected ready after fix: %q", msg)
	}
}
