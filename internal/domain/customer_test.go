package domain_test

import (
	"strings"
	"testing"
	"time"

	"monamart/internal/domain"
)

func TestCustomer_TopUpFunds(t *testing.T) {
	c := domain.Customer{Funds: 100}

	if ok, _ := c.TopUpFunds(0); ok {
		t.Fatal("zero top-up accepted")
	}
	if ok, _ := c.TopUpFunds(-5); ok {
		t.Fatal("negative top-up accepted")
	}
	if ok, msg := c.TopUpFunds(1000.01); ok {
		t.Fatal("above-cap top-up accepted")
	} else if !strings.Contains(msg, "$1000.00") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if c.Funds != 100 {
		t.Fatalf("rejected top-ups must not change funds: %.2f", c.Funds)
	}

	ok, msg := c.TopUpFunds(250.50)
	if !ok || c.Funds != 350.50 {
		t.Fatalf("top-up failed: %q funds=%.2f", msg, c.Funds)
	}
	if msg != "Funds topped up. New balance: $350.50" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCustomer_DeductFunds(t *testing.T) {
	c := domain.Customer{Funds: 50}
	if c.DeductFunds(50.01) {
		t.Fatal("overdraft allowed")
	}
	if !c.DeductFunds(50) || c.Funds != 0 {
		t.Fatalf("full deduction failed: %.2f", c.Funds)
	}
	if c.DeductFunds(0.01) {
		t.Fatal("deduction from empty balance allowed")
	}
}

func TestCustomer_IsVIP(t *testing.T) {
	now := time.Now()
	cases := []struct {
		expires string
		want    bool
	}{
		{"", false},
		{"not-a-date", false},
		{now.AddDate(0, 0, -1).Format("2006-01-02"), false},
		{now.AddDate(0, 0, 30).Format("2006-01-02"), true},
	}
	for _, tc := range cases {
		c := domain.Customer{VIPExpires: tc.expires}
		if c.IsVIP() != tc.want {
			t.Fatalf("IsVIP(%q) = %v, want %v", tc.expires, c.IsVIP(), tc.want)
		}
	}
}

func TestCustomer_BuyVIP(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	c := domain.Customer{Funds: 30}
	if ok, _ := c.BuyVIP(0, now); ok {
		t.Fatal("zero years accepted")
	}
	if ok, msg := c.BuyVIP(2, now); ok {
		t.Fatal("purchase above balance accepted")
	} else if msg != "Insufficient funds. Need $40.00, have $30.00" {
		t.Fatalf("unexpected message: %q", msg)
	}

	ok, msg := c.BuyVIP(1, now)
	if !ok {
		t.Fatalf("purchase failed: %s", msg)
	}
	if c.Funds != 10 || c.VIPYears != 1 {
		t.Fatalf("state after purchase: funds=%.2f years=%d", c.Funds, c.VIPYears)
	}
	wantExpiry := now.AddDate(0, 0, 365).Format("2006-01-02")
	if c.VIPExpires != wantExpiry {
		t.Fatalf("expiry: want %s, got %s", wantExpiry, c.VIPExpires)
	}
	if !strings.Contains(msg, "purchased") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCustomer_BuyVIPExtendsActiveMembership(t *testing.T) {
	now := time.Now()
	current := now.AddDate(0, 0, 100).Format("2006-01-02")
	c := domain.Customer{Funds: 100, VIPYears: 1, VIPExpires: current}

	ok, msg := c.BuyVIP(1, now)
	if !ok {
		t.Fatalf("renewal failed: %s", msg)
	}
	base, _ := time.Parse("2006-01-02", current)
	want := base.AddDate(0, 0, 365).Format("2006-01-02")
	if c.VIPExpires != want {
		t.Fatalf("renewal must stack on current expiry: want %s, got %s", want, c.VIPExpires)
	}
	if !strings.Contains(msg, "renewed") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCustomer_CancelVIP(t *testing.T) {
	now := time.Now()
	c := domain.Customer{}
	if ok, msg := c.CancelVIP(now); ok || msg != "No active VIP membership to cancel" {
		t.Fatalf("cancel without membership: ok=%v msg=%q", ok, msg)
	}

	c.VIPExpires = now.AddDate(0, 0, 200).Format("2006-01-02")
	ok, msg := c.CancelVIP(now)
	if !ok || msg != "VIP membership cancelled (non-refundable)" {
		t.Fatalf("cancel failed: %q", msg)
	}
	if c.IsVIP() {
		t.Fatal("membership still active after cancel")
	}
}
