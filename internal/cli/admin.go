package cli

import (
	"strconv"

	"monamart/internal/domain"
	"monamart/internal/validate"
)

func (s *Session) adminMenu() {
	for {
		s.banner("ADMIN")
		s.printf("Signed in as %s (admin)\n\n", s.Customer.FullName())
		s.printf("1) List products\n2) Add product\n3) Edit product\n4) Delete product\n5) Restock\n6) Recent orders\n7) Customers\n0) Log out\n")
		switch s.prompt("\n> ") {
		case "1":
			products, err := s.Catalog.List()
			if err != nil {
				s.result(false, "Could not load catalog: "+err.Error())
			} else {
				s.printProducts(products)
			}
			s.pause()
		case "2":
			s.addProductFlow()
		case "3":
			s.editProductFlow()
		case "4":
			s.deleteProductFlow()
		case "5":
			s.restockFlow()
		case "6":
			s.recentOrdersFlow()
		case "7":
			s.listCustomersFlow()
		case "0", "q":
			s.Customer = domain.Customer{}
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) addProductFlow() {
	s.banner("ADD PRODUCT")
	sku, ok := validate.SKU(s.prompt("SKU: "))
	if !ok {
		s.result(false, "Invalid SKU")
		s.pause()
		return
	}
	if _, err := s.Catalog.Get(sku); err == nil {
		s.result(false, "A product with that SKU already exists")
		s.pause()
		return
	}
	p := domain.Product{SKU: sku}
	if !s.fillProduct(&p) {
		return
	}
	ok, msg := s.Catalog.SaveProduct(p)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) editProductFlow() {
	sku, ok := validate.SKU(s.prompt("\nSKU to edit: "))
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
	s.banner("EDIT " + p.SKU)
	s.printf("Leave a field blank to keep the current value.\n\n")
	if !s.fillProductPartial(&p) {
		return
	}
	ok, msg := s.Catalog.SaveProduct(p)
	s.result(ok, msg)
	s.pause()
}

// fillProduct prompts for every field of a new product.
func (s *Session) fillProduct(p *domain.Product) bool {
	name, ok := validate.Name(s.prompt("Name: "))
	if !ok {
		s.result(false, "Invalid name")
		s.pause()
		return false
	}
	p.Name = name
	p.Brand = s.prompt("Brand: ")
	p.Category = s.prompt("Category: ")
	p.Subcategory = s.prompt("Subcategory: ")
	p.Description = s.prompt("Description: ")

	price, ok := validate.Price(s.prompt("Price: $"))
	if !ok {
		s.result(false, "Invalid price")
		s.pause()
		return false
	}
	member, ok := validate.Price(s.prompt("VIP price: $"))
	if !ok {
		s.result(false, "Invalid VIP price")
		s.pause()
		return false
	}
	p.Price = price
	p.MemberPrice = member

	qty, err := strconv.Atoi(s.prompt("Initial stock: "))
	if err != nil || qty < 0 {
		s.result(false, "Invalid stock quantity")
		s.pause()
		return false
	}
	p.Quantity = qty

	if s.confirm("Is this a food product?") {
		p.IsFood = true
		p.ExpiryDate = s.prompt("Expiry date (YYYY-MM-DD): ")
		p.Ingredients = s.prompt("Ingredients: ")
		p.Storage = s.prompt("Storage instructions: ")
		p.Allergens = s.prompt("Allergens: ")
	}
	return true
}

// fillProductPartial overwrites only the fields the admin fills in.
func (s *Session) fillProductPartial(p *domain.Product) bool {
	if v := s.prompt("Name [" + p.Name + "]: "); v != "" {
		name, ok := validate.Name(v)
		if !ok {
			s.result(false, "Invalid name")
			s.pause()
			return false
		}
		p.Name = name
	}
	if v := s.prompt("Brand [" + p.Brand + "]: "); v != "" {
		p.Brand = v
	}
	if v := s.prompt("Description [" + p.Description + "]: "); v != "" {
		p.Description = v
	}
	if v := s.prompt("Price [$" + strconv.FormatFloat(p.Price, 'f', 2, 64) + "]: "); v != "" {
		price, ok := validate.Price(v)
		if !ok {
			s.result(false, "Invalid price")
			s.pause()
			return false
		}
		p.Price = price
	}
	if v := s.prompt("VIP price [$" + strconv.FormatFloat(p.MemberPrice, 'f', 2, 64) + "]: "); v != "" {
		member, ok := validate.Price(v)
		if !ok {
			s.result(false, "Invalid VIP price")
			s.pause()
			return false
		}
		p.MemberPrice = member
	}
	if p.IsFood {
		if v := s.prompt("Expiry date [" + p.ExpiryDate + "]: "); v != "" {
			p.ExpiryDate = v
		}
		if v := s.prompt("Ingredients [" + p.Ingredients + "]: "); v != "" {
			p.Ingredients = v
		}
		if v := s.prompt("Storage [" + p.Storage + "]: "); v != "" {
			p.Storage = v
		}
		if v := s.prompt("Allergens [" + p.Allergens + "]: "); v != "" {
			p.Allergens = v
		}
	}
	return true
}

func (s *Session) deleteProductFlow() {
	sku, ok := validate.SKU(s.prompt("\nSKU to delete: "))
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
	if !s.confirm("Delete " + p.Name + " (" + p.SKU + ")? Past orders keep their snapshots.") {
		return
	}
	ok, msg := s.Catalog.DeleteProduct(sku)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) restockFlow() {
	sku, ok := validate.SKU(s.prompt("\nSKU to restock: "))
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
	s.printf("Current stock of %s: %d\n", p.Name, p.Quantity)
	qty, err := strconv.Atoi(s.prompt("Units to add: "))
	if err != nil {
		s.result(false, "Invalid quantity")
		s.pause()
		return
	}
	ok, msg := s.Catalog.Restock(sku, qty)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) recentOrdersFlow() {
	orders, err := s.Checkout.Orders.ListLatest(20)
	if err != nil {
		s.result(false, "Could not load orders")
		s.pause()
		return
	}
	if len(orders) == 0 {
		s.printf("\nNo orders yet.\n")
		s.pause()
		return
	}
	s.printf("\n%-14s %-26s %-22s %-10s %10s\n", "Order", "Customer", "Placed", "Type", "Total$")
	s.line("-")
	for _, rec := range orders {
		s.printf("%-14s %-26.26s %-22.22s %-10s %10.2f\n", rec.ID, rec.Email, rec.CreatedAt, rec.Fulfilment, rec.Total)
	}
	s.pause()
}

func (s *Session) listCustomersFlow() {
	customers, err := s.Accounts.Users.Customers()
	if err != nil {
		s.result(false, "Could not load customers")
		s.pause()
		return
	}
	s.printf("\n%-28s %-22s %8s %8s %6s\n", "Email", "Name", "Funds$", "Student", "VIP")
	s.line("-")
	for _, c := range customers {
		student, vip := "-", "-"
		if c.IsStudent {
			student = "yes"
		}
		if c.IsVIP() {
			vip = "yes"
		}
		s.printf("%-28.28s %-22.22s %8.2f %8s %6s\n", c.Email, c.FullName(), c.Funds, student, vip)
	}
	s.pause()
}
