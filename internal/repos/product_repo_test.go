package repos_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"monamart/internal/domain"
	"monamart/internal/repos"
)

func seededDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(filepath.Join(t.TempDir(), "monamart.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProductRepo_GetNotFound(t *testing.T) {
	r := repos.NewProductRepo(seededDB(t))
	if _, err := r.Get("NOPE-SKU"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestProductRepo_ListOrdersInStockFirst(t *testing.T) {
	r := repos.NewProductRepo(seededDB(t))
	products, err := r.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) < 2 {
		t.Fatalf("seed catalog missing: %d products", len(products))
	}
	// TOWEL-4PK is seeded with zero stock and must sort last.
	if last := products[len(products)-1]; last.SKU != "TOWEL-4PK" {
		t.Fatalf("out-of-stock product not last: %s", last.SKU)
	}
}

func TestProductRepo_Find(t *testing.T) {
	r := repos.NewProductRepo(seededDB(t))

	household, err := r.Find(repos.ProductFilter{Category: "household"})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range household {
		if p.Category != "Household" {
			t.Fatalf("filter leaked: %+v", p)
		}
	}
	if len(household) != 2 {
		t.Fatalf("want 2 household products, got %d", len(household))
	}

	cheap, err := r.Find(repos.ProductFilter{PriceMax: 5.00, InStockOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range cheap {
		if p.Price > 5.00 || p.Quantity == 0 {
			t.Fatalf("filter leaked: %+v", p)
		}
	}

	out, err := r.Find(repos.ProductFilter{OutOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].SKU != "TOWEL-4PK" {
		t.Fatalf("out-only filter: %+v", out)
	}
}

func TestProductRepo_DecrementStock(t *testing.T) {
	r := repos.NewProductRepo(seededDB(t))

	if !r.DecrementStock("RICE-5KG", 12) {
		t.Fatal("decrement to zero should succeed")
	}
	if got := r.CurrentStock("RICE-5KG"); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
	if r.DecrementStock("RICE-5KG", 1) {
		t.Fatal("decrement below zero must be refused")
	}
	if r.DecrementStock("NOPE-SKU", 1) {
		t.Fatal("decrement of unknown SKU must be refused")
	}
}

func TestProductRepo_RestockAndSave(t *testing.T) {
	r := repos.NewProductRepo(seededDB(t))

	if err := r.Restock("TOWEL-4PK", 10); err != nil {
		t.Fatal(err)
	}
	if got := r.CurrentStock("TOWEL-4PK"); got != 10 {
		t.Fatalf("want 10, got %d", got)
	}
	if err := r.Restock("NOPE-SKU", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	p := domain.Product{SKU: "TEA-100G", Name: "Green Tea 100g", Brand: "MorningRoast",
		Category: "Pantry", Subcategory: "Beverages", Price: 7.50, MemberPrice: 6.50, Quantity: 9, IsFood: true}
	if err := r.Save(p); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get("TEA-100G")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != p.Name || got.Price != 7.50 || got.Quantity != 9 {
		t.Fatalf("saved product mismatch: %+v", got)
	}

	// Upsert path: same SKU, new price.
	p.Price = 8.00
	if err := r.Save(p); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Get("TEA-100G"); got.Price != 8.00 {
		t.Fatalf("upsert did not apply: %+v", got)
	}
}

func TestProductRepo_Delete(t *testing.T) {
	r := repos.NewProductRepo(seededDB(t))
	if err := r.Delete("DISH-1L"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("DISH-1L"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if err := r.Delete("DISH-1L"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("double delete: want ErrNotFound, got %v", err)
	}
}
