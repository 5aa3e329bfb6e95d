package cli

import (
	"strconv"

	"monamart/internal/domain"
	"monamart/internal/repos"
	"monamart/internal/validate"
)

func (s *Session) profileMenu() {
	for {
		s.banner("PROFILE & FUNDS")
		s.printf("Name:     %s\n", s.Customer.FullName())
		s.printf("Email:    %s\n", s.Customer.Email)
		s.printf("Mobile:   %s\n", s.Customer.Mobile)
		s.printf("Address:  %s\n", s.Customer.Address)
		s.printf("Student:  %v\n", s.Customer.IsStudent)
		if s.Customer.IsVIP() {
			s.printf("VIP:      active until %s\n", s.Customer.VIPExpires)
		} else {
			s.printf("VIP:      not a member\n")
		}
		s.printf("Balance:  $%.2f\n", s.Customer.Funds)
		s.line("-")
		s.printf("1) Top up funds\n2) VIP membership\n3) Order history\n4) Update contact details\n5) Change password\n0) Back\n")
		switch s.prompt("\n> ") {
		case "1":
			s.topUpFlow()
		case "2":
			s.vipMenu()
		case "3":
			s.orderHistoryFlow()
		case "4":
			s.updateContactFlow()
		case "5":
			s.changePasswordFlow()
		case "0", "m":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) topUpFlow() {
	s.printf("\nMaximum per top-up: $%.2f\n", domain.MaxTopUp)
	amount, ok := validate.Price(s.prompt("Amount: $"))
	if !ok {
		s.result(false, "Invalid amount")
		s.pause()
		return
	}
	ok, msg := s.Accounts.TopUp(&s.Customer, amount)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) vipMenu() {
	for {
		s.banner("VIP MEMBERSHIP")
		s.printf("$%.2f per year. Members pay the VIP price on every product.\n\n", domain.VIPCostPerYear)
		if s.Customer.IsVIP() {
			s.printf("Your membership is active until %s.\n\n", s.Customer.VIPExpires)
		}
		s.printf("1) Buy / extend membership\n2) Cancel membership\n3) Membership history\n0) Back\n")
		switch s.prompt("\n> ") {
		case "1":
			years, err := strconv.Atoi(s.prompt("\nYears to purchase: "))
			if err != nil || years < 1 {
				s.result(false, "Invalid number of years")
				s.pause()
				continue
			}
			ok, msg := s.Accounts.BuyVIP(&s.Customer, years)
			s.result(ok, msg)
			s.pause()
		case "2":
			if !s.confirm("Cancel membership? The unused period is non-refundable.") {
				continue
			}
			ok, msg := s.Accounts.CancelVIP(&s.Customer)
			s.result(ok, msg)
			s.pause()
		case "3":
			s.membershipHistoryFlow()
		case "0", "m":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) membershipHistoryFlow() {
	entries, err := s.Accounts.MembershipHistory(s.Customer.Email)
	if err != nil {
		s.result(false, "Could not load membership history")
		s.pause()
		return
	}
	if len(entries) == 0 {
		s.printf("\nNo membership transactions yet.\n")
		s.pause()
		return
	}
	s.printf("\n%-22s %-8s %5s %10s  %s\n", "Date", "Action", "Years", "Amount$", "Notes")
	s.line("-")
	for _, e := range entries {
		s.printf("%-22.22s %-8s %5d %10.2f  %s\n", e.CreatedAt, e.Action, e.Years, e.Amount, e.Notes)
	}
	s.pause()
}

func (s *Session) orderHistoryFlow() {
	orders, err := s.Checkout.OrderHistory(s.Customer.Email)
	if err != nil {
		s.result(false, "Could not load order history")
		s.pause()
		return
	}
	if len(orders) == 0 {
		s.printf("\nNo orders yet.\n")
		s.pause()
		return
	}
	s.printOrderTable(orders)
	id := s.prompt("\nOrder ID for details (blank = back): ")
	if id == "" {
		return
	}
	for _, rec := range orders {
		if rec.ID == id {
			s.printOrderDetail(rec)
			s.pause()
			return
		}
	}
	s.result(false, "Order not found")
	s.pause()
}

func (s *Session) printOrderTable(orders []repos.OrderRecord) {
	s.printf("\n%-14s %-22s %-10s %-10s %10s\n", "Order", "Placed", "Type", "Promo", "Total$")
	s.line("-")
	for _, rec := range orders {
		promo := rec.PromoCode
		if promo == "" {
			promo = "-"
		}
		s.printf("%-14s %-22.22s %-10s %-10s %10.2f\n", rec.ID, rec.CreatedAt, rec.Fulfilment, promo, rec.Total)
	}
}

func (s *Session) printOrderDetail(rec repos.OrderRecord) {
	s.banner(rec.ID)
	s.printf("Placed:     %s\n", rec.CreatedAt)
	if rec.Fulfilment == domain.FulfilmentDelivery {
		s.printf("Fulfilment: DELIVERY to %s\n", rec.DeliveryAddress)
	} else {
		s.printf("Fulfilment: PICKUP at %s\n", rec.StoreID)
	}
	s.printf("\n%-10s %-24s %4s %10s\n", "SKU", "Name", "Qty", "Line$")
	s.line("-")
	for _, l := range rec.Lines() {
		s.printf("%-10s %-24.24s %4d %10.2f\n", l.SKU, l.Name, l.Quantity, l.LineTotal)
	}
	s.line("-")
	s.printf("%-40s %10.2f\n", "Subtotal:", rec.Subtotal)
	if rec.StudentDiscount > 0 {
		s.printf("%-40s %10.2f\n", "Student discount:", -rec.StudentDiscount)
	}
	if rec.PromoCode != "" {
		s.printf("%-40s %10.2f\n", "Promo "+rec.PromoCode+":", -rec.PromoDiscount)
	}
	if rec.DeliveryFee > 0 {
		s.printf("%-40s %10.2f\n", "Delivery fee:", rec.DeliveryFee)
	}
	s.printf("%-40s %10.2f\n", "TOTAL:", rec.Total)
}

func (s *Session) updateContactFlow() {
	s.printf("\nLeave a field blank to keep the current value.\n")
	mobile := s.prompt("Mobile [" + s.Customer.Mobile + "]: ")
	address := s.prompt("Address [" + s.Customer.Address + "]: ")
	ok, msg := s.Accounts.UpdateContact(&s.Customer, mobile, address)
	s.result(ok, msg)
	s.pause()
}

func (s *Session) changePasswordFlow() {
	oldPw := s.prompt("\nCurrent password: ")
	newPw := s.prompt("New password: ")
	ok, msg := s.Accounts.ChangePassword(&s.Customer, oldPw, newPw)
	s.result(ok, msg)
	s.pause()
}
