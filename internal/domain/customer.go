package domain

import (
	"fmt"
	"time"

	"monamart/internal/money"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"

	InitialFunds   = 1000.0
	MaxTopUp       = 1000.0
	VIPCostPerYear = 20.0
)

type Customer struct {
	Email     string  `db:"email"` // unique key, stored lower-case
	Hash      string  `db:"password_hash"`
	Role      string  `db:"role"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Mobile    string  `db:"mobile"`
	Address   string  `db:"address"`
	IsStudent bool    `db:"is_student"`
	Funds     float64 `db:"funds"`
	VIPYears  int     `db:"vip_years"`
	// VIPExpires is an ISO date string; empty when no membership was ever
	// bought. IsVIP derives from it so cancelled/expired memberships need
	// no extra flag.
	VIPExpires string `db:"vip_expires"`
}

func (c Customer) FullName() string { return c.FirstName + " " + c.LastName }

// IsVIP reports whether the membership expiry is in the future.
func (c Customer) IsVIP() bool {
	if c.VIPExpires == "" {
		return false
	}
	exp, err := time.Parse("2006-01-02", c.VIPExpires)
	if err != nil {
		return false
	}
	return time.Now().Before(exp)
}

// TopUpFunds adds to the balance. Amount must be positive and at most
// MaxTopUp per transaction.
func (c *Customer) TopUpFunds(amount float64) (bool, string) {
	if amount <= 0 {
		return false, "Top-up amount must be positive"
	}
	if amount > MaxTopUp {
		return false, fmt.Sprintf("Top-up limited to $%.2f per transaction", MaxTopUp)
	}
	c.Funds = money.Add(c.Funds, amount)
	return true, fmt.Sprintf("Funds topped up. New balance: $%.2f", c.Funds)
}

// DeductFunds removes from the balance, refusing overdrafts.
func (c *Customer) DeductFunds(amount float64) bool {
	if amount <= 0 || amount > c.Funds {
		return false
	}
	c.Funds = money.Sub(c.Funds, amount)
	return true
}

// BuyVIP purchases or extends the membership at VIPCostPerYear per year,
// deducting the cost from funds.
func (c *Customer) BuyVIP(years int, now time.Time) (bool, string) {
	if years <= 0 {
		return false, "Years must be positive"
	}
	cost := money.MulQty(VIPCostPerYear, years)
	if c.Funds < cost {
		return false, fmt.Sprintf("Insufficient funds. Need $%.2f, have $%.2f", cost, c.Funds)
	}
	c.DeductFunds(cost)

	action := "purchased"
	base := now
	if c.IsVIP() {
		// Extending an active membership stacks on the current expiry.
		base, _ = time.Parse("2006-01-02", c.VIPExpires)
		action = "renewed"
	}
	c.VIPYears += years
	c.VIPExpires = base.AddDate(0, 0, 365*years).Format("2006-01-02")
	return true, fmt.Sprintf("VIP membership %s. Expires: %s", action, c.VIPExpires)
}

// CancelVIP ends the membership immediately. Non-refundable.
func (c *Customer) CancelVIP(now time.Time) (bool, string) {
	if !c.IsVIP() {
		return false, "No active VIP membership to cancel"
	}
	c.VIPExpires = now.Format("2006-01-02")
	return true, "VIP membership cancelled (non-refundable)"
}
