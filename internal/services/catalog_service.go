package services

import (
	"fmt"

	"monamart/internal/domain"
	"monamart/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Find(f repos.ProductFilter) ([]domain.Product, error) {
	return s.Prods.Find(f)
}

func (s *CatalogService) Get(sku string) (domain.Product, error) {
	return s.Prods.Get(sku)
}

func (s *CatalogService) Categories() ([]string, error) {
	return s.Prods.Categories()
}

// SaveProduct enforces the catalog invariants before writing.
func (s *CatalogService) SaveProduct(p domain.Product) (bool, string) {
	if p.SKU == "" || p.Name == "" {
		return false, "SKU and name are required"
	}
	if !p.ValidPricing() {
		return false, "Price must be positive and member price must not exceed regular price"
	}
	if p.Quantity < 0 {
		return false, "Quantity cannot be negative"
	}
	if err := s.Prods.Save(p); err != nil {
		return false, "Could not save product: " + err.Error()
	}
	return true, fmt.Sprintf("Saved %s (%s)", p.Name, p.SKU)
}

func (s *CatalogService) DeleteProduct(sku string) (bool, string) {
	if err := s.Prods.Delete(sku); err != nil {
		return false, fmt.Sprintf("Product with SKU %s not found", sku)
	}
	return true, fmt.Sprintf("Removed %s from the catalog", sku)
}

func (s *CatalogService) Restock(sku string, qty int) (bool, string) {
	if qty <= 0 {
		return false, "Restock amount must be positive"
	}
	if err := s.Prods.Restock(sku, qty); err != nil {
		return false, fmt.Sprintf("Product with SKU %s not found", sku)
	}
	return true, fmt.Sprintf("Added %d units to %s", qty, sku)
}
