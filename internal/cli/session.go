// Package cli is the terminal front end: menu loops, prompts and
// rendering. All business rules live in internal/domain and
// internal/services; this package only collects input and prints
// results.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"monamart/internal/domain"
	"monamart/internal/repos"
	"monamart/internal/services"
)

const lineWidth = 72

// Session is the single active terminal session: the logged-in user,
// their in-memory cart, and the injected services.
type Session struct {
	In  *bufio.Reader
	Out io.Writer

	Customer domain.Customer
	Cart     *domain.Cart

	Accounts *services.AccountService
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Checkout *services.CheckoutService
	Stores   *repos.StoreRepo
}

func NewSession(in io.Reader, out io.Writer,
	accounts *services.AccountService, catalog *services.CatalogService,
	carts *services.CartService, checkout *services.CheckoutService,
	stores *repos.StoreRepo) *Session {
	return &Session{
		In:       bufio.NewReader(in),
		Out:      out,
		Cart:     domain.NewCart(),
		Accounts: accounts,
		Catalog:  catalog,
		Carts:    carts,
		Checkout: checkout,
		Stores:   stores,
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func (s *Session) line(ch string) {
	fmt.Fprintln(s.Out, strings.Repeat(ch, lineWidth))
}

func (s *Session) banner(title string) {
	s.printf("\n")
	s.line("=")
	pad := (lineWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	s.printf("%s%s\n", strings.Repeat(" ", pad), title)
	s.line("=")
}

func (s *Session) prompt(label string) string {
	s.printf("%s", label)
	text, err := s.In.ReadString('\n')
	if err != nil && text == "" {
		return ""
	}
	return strings.TrimSpace(text)
}

func (s *Session) pause() {
	s.prompt("\nPress Enter to continue... ")
}

func (s *Session) confirm(label string) bool {
	return strings.EqualFold(s.prompt(label+" (y/n): "), "y")
}

func (s *Session) result(ok bool, msg string) {
	mark := "x"
	if ok {
		mark = "+"
	}
	s.printf("%s %s\n", mark, msg)
}

// Run drives the login menu until the user exits.
func (s *Session) Run() {
	for {
		s.banner("MONAMART")
		s.printf("1) Login\n2) Register\n0) Exit\n")
		switch s.prompt("\n> ") {
		case "1":
			if s.login() {
				if s.Customer.Role == domain.RoleAdmin {
					s.adminMenu()
				} else {
					s.mainMenu()
				}
			}
		case "2":
			s.register()
		case "0", "q":
			s.printf("Goodbye.\n")
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) login() bool {
	email := s.prompt("\nEmail: ")
	password := s.prompt("Password: ")
	c, err := s.Accounts.Login(email, password)
	if err != nil {
		s.result(false, "Invalid email or password")
		s.pause()
		return false
	}
	s.Customer = c
	s.Cart = domain.NewCart()
	s.printf("\nWelcome back, %s!\n", c.FirstName)
	return true
}

func (s *Session) register() {
	s.banner("REGISTER")
	email := s.prompt("Email: ")
	password := s.prompt("Password: ")
	first := s.prompt("First name: ")
	last := s.prompt("Last name: ")
	mobile := s.prompt("Mobile (optional): ")
	address := s.prompt("Delivery address (optional): ")
	student := s.confirm("Are you a registered student?")
	ok, msg := s.Accounts.Register(email, password, first, last, mobile, address, student)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) mainMenu() {
	for {
		s.banner("MAIN MENU")
		s.printf("Signed in as %s", s.Customer.FullName())
		if s.Customer.IsVIP() {
			s.printf(" [VIP]")
		}
		if s.Customer.IsStudent {
			s.printf(" [Student]")
		}
		s.printf(" | Balance: $%.2f\n\n", s.Customer.Funds)
		s.printf("1) Browse products\n2) Your cart (%d items)\n3) Profile & funds\n0) Log out\n", s.Cart.TotalQuantity())
		switch s.prompt("\n> ") {
		case "1":
			s.browseMenu()
		case "2":
			s.cartMenu()
		case "3":
			s.profileMenu()
		case "0", "q":
			s.Customer = domain.Customer{}
			s.Cart = domain.NewCart()
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}
