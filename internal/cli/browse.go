package cli

import (
	"monamart/internal/domain"
	"monamart/internal/repos"
	"monamart/internal/validate"
)

func (s *Session) browseMenu() {
	for {
		s.banner("BROWSE PRODUCTS")
		products, err := s.Catalog.List()
		if err != nil {
			s.result(false, "Could not load catalog: "+err.Error())
			s.pause()
			return
		}
		s.printProducts(products)
		s.printf("1) Add to cart\n2) Filter products\n3) Product details\n0) Back\n")
		switch s.prompt("\n> ") {
		case "1":
			s.addToCartFlow()
		case "2":
			s.filterFlow()
		case "3":
			s.productDetailFlow()
		case "0", "m":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) printProducts(products []domain.Product) {
	if len(products) == 0 {
		s.printf("\nNo products found.\n\n")
		return
	}
	isVIP := s.Customer.IsVIP()
	s.printf("\n%-10s %-28s %10s %10s %6s\n", "SKU", "Name", "Price$", "VIP$", "Stock")
	s.line("-")
	for _, p := range products {
		if p.InStock() {
			s.printf("%-10s %-28.28s %10.2f %10.2f %6d\n", p.SKU, p.Name, p.Price, p.MemberPrice, p.Quantity)
		} else {
			s.printf("%-10s %-28.28s %10.2f %10.2f %6s\n", p.SKU, p.Name, p.Price, p.MemberPrice, "out")
		}
	}
	if isVIP {
		s.printf("\nVIP prices apply to you.\n")
	}
	s.printf("\n")
}

func (s *Session) addToCartFlow() {
	sku, ok := validate.SKU(s.prompt("\nEnter SKU to add: "))
	if !ok {
		s.result(false, "Invalid SKU")
		s.pause()
		return
	}
	qty, ok := validate.Qty(s.prompt("Quantity (1-10): "))
	if !ok {
		s.result(false, "Invalid quantity")
		s.pause()
		return
	}
	ok, msg := s.Carts.Add(s.Cart, sku, qty)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) filterFlow() {
	s.banner("FILTER PRODUCTS")
	if cats, err := s.Catalog.Categories(); err == nil && len(cats) > 0 {
		s.printf("Categories: ")
		for i, c := range cats {
			if i > 0 {
				s.printf(", ")
			}
			s.printf("%s", c)
		}
		s.printf("\n\n")
	}
	f := repos.ProductFilter{
		Category: s.prompt("Category (blank = any): "),
		Brand:    s.prompt("Brand (blank = any): "),
	}
	if v, ok := validate.Price(s.prompt("Min price (blank = any): ")); ok {
		f.PriceMin = v
	}
	if v, ok := validate.Price(s.prompt("Max price (blank = any): ")); ok {
		f.PriceMax = v
	}
	switch s.prompt("Availability [in/out/any]: ") {
	case "in":
		f.InStockOnly = true
	case "out":
		f.OutOnly = true
	}
	products, err := s.Catalog.Find(f)
	if err != nil {
		s.result(false, "Filter failed: "+err.Error())
		s.pause()
		return
	}
	s.printProducts(products)
	s.pause()
}

func (s *Session) productDetailFlow() {
	sku, ok := validate.SKU(s.prompt("\nEnter SKU: "))
	if !ok {
		s.result(false, "Invalid SKU")
		s.pause()
		return
	}
	p, err := s.Catalog.Get(sku)
	if err != nil {
		s.result(false, "Product with SKU "+sku+" not found")
		s.pause()
		return
	}
	s.banner(p.Name)
	s.printf("SKU:          %s\n", p.SKU)
	s.printf("Brand:        %s\n", p.Brand)
	s.printf("Category:     %s / %s\n", p.Category, p.Subcategory)
	s.printf("Description:  %s\n", p.Description)
	s.printf("Price:        $%.2f (VIP $%.2f)\n", p.Price, p.MemberPrice)
	s.printf("Stock:        %d\n", p.Quantity)
	if p.IsFood {
		s.printf("Expiry:       %s\n", p.ExpiryDate)
		s.printf("Ingredients:  %s\n", p.Ingredients)
		s.printf("Storage:      %s\n", p.Storage)
		s.printf("Allergens:    %s\n", p.Allergens)
	}
	s.pause()
}
