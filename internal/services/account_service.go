package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"monamart/internal/domain"
	applog "monamart/internal/log"
	"monamart/internal/money"
	"monamart/internal/repos"
	"monamart/internal/validate"
)

var ErrBadCreds = errors.New("invalid email or password")

type AccountService struct {
	Users      *repos.UserRepo
	Membership *repos.MembershipRepo
}

func NewAccountService(users *repos.UserRepo, membership *repos.MembershipRepo) *AccountService {
	return &AccountService{Users: users, Membership: membership}
}

func (s *AccountService) Login(email, password string) (domain.Customer, error) {
	c, err := s.Users.ByEmail(email)
	if err != nil {
		return domain.Customer{}, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(password)) != nil {
		applog.Warn(email, "auth.login.fail", nil)
		return domain.Customer{}, ErrBadCreds
	}
	applog.Info(c.Email, "auth.login.ok", nil)
	return c, nil
}

// Register creates a customer account with the initial funds balance.
func (s *AccountService) Register(email, password, first, last, mobile, address string, isStudent bool) (bool, string) {
	email, ok := validate.Email(email)
	if !ok {
		return false, "Invalid email address"
	}
	if !validate.Password(password) {
		return false, "Password must be at least 8 characters with upper, lower and digit"
	}
	if first == "" || last == "" {
		return false, "First and last name are required"
	}
	if s.Users.EmailExists(email) {
		return false, "An account with that email already exists"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return false, "Could not create account"
	}
	c := domain.Customer{
		Email:     email,
		Hash:      string(hash),
		Role:      domain.RoleCustomer,
		FirstName: first,
		LastName:  last,
		Mobile:    mobile,
		Address:   address,
		IsStudent: isStudent,
		Funds:     domain.InitialFunds,
	}
	if err := s.Users.Create(c); err != nil {
		return false, "Could not create account"
	}
	applog.Audit(email, "account.register", map[string]any{"student": isStudent})
	return true, fmt.Sprintf("Account created. Starting balance: $%.2f", domain.InitialFunds)
}

func (s *AccountService) ChangePassword(c *domain.Customer, oldPw, newPw string) (bool, string) {
	if bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(oldPw)) != nil {
		return false, "Current password is incorrect"
	}
	if !validate.Password(newPw) {
		return false, "Password must be at least 8 characters with upper, lower and digit"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPw), 12)
	if err != nil {
		return false, "Could not update password"
	}
	c.Hash = string(hash)
	if err := s.Users.Save(*c); err != nil {
		return false, "Could not update password"
	}
	return true, "Password updated"
}

func (s *AccountService) UpdateContact(c *domain.Customer, mobile, address string) (bool, string) {
	if mobile != "" {
		m, ok := validate.Mobile(mobile)
		if !ok {
			return false, "Invalid mobile number"
		}
		c.Mobile = m
	}
	if address != "" {
		c.Address = address
	}
	if err := s.Users.Save(*c); err != nil {
		return false, "Could not update profile"
	}
	return true, "Profile updated"
}

// TopUp adds funds, capped per transaction.
func (s *AccountService) TopUp(c *domain.Customer, amount float64) (bool, string) {
	ok, msg := c.TopUpFunds(amount)
	if !ok {
		return false, msg
	}
	if !s.Users.SetFunds(c.Email, c.Funds) {
		return false, "Could not update funds"
	}
	applog.Audit(c.Email, "funds.topup", map[string]any{"amount": amount, "balance": c.Funds})
	return true, msg
}

// BuyVIP purchases or extends membership and logs the transaction.
func (s *AccountService) BuyVIP(c *domain.Customer, years int) (bool, string) {
	ok, msg := c.BuyVIP(years, time.Now())
	if !ok {
		return false, msg
	}
	if err := s.Users.Save(*c); err != nil {
		return false, "Could not update membership"
	}
	cost := money.MulQty(domain.VIPCostPerYear, years)
	_ = s.Membership.Append(repos.MembershipEntry{
		Email: c.Email, Action: "BUY", Years: years, Amount: cost,
		Notes: "expires " + c.VIPExpires,
	})
	applog.Audit(c.Email, "vip.buy", map[string]any{"years": years, "expires": c.VIPExpires})
	return true, msg
}

// CancelVIP ends the membership immediately; non-refundable.
func (s *AccountService) CancelVIP(c *domain.Customer) (bool, string) {
	ok, msg := c.CancelVIP(time.Now())
	if !ok {
		return false, msg
	}
	if err := s.Users.Save(*c); err != nil {
		return false, "Could not update membership"
	}
	_ = s.Membership.Append(repos.MembershipEntry{
		Email: c.Email, Action: "CANCEL", Notes: "non-refundable",
	})
	applog.Audit(c.Email, "vip.cancel", nil)
	return true, msg
}

func (s *AccountService) MembershipHistory(email string) ([]repos.MembershipEntry, error) {
	return s.Membership.ListByEmail(email)
}
