package money_test

import (
	"testing"

	"monamart/internal/money"
)

func TestRound2HalfAwayFromZero(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.005, 1.01},
		{-1.005, -1.01},
		{2.344, 2.34},
		{2.345, 2.35},
		{10, 10},
	}
	for _, tc := range cases {
		if got := money.Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMulAndMulQty(t *testing.T) {
	if got := money.Mul(30.00, 0.05); got != 1.50 {
		t.Fatalf("Mul: want 1.50, got %v", got)
	}
	if got := money.Mul(10.10, 0.05); got != 0.51 {
		t.Fatalf("Mul rounds half away: want 0.51, got %v", got)
	}
	if got := money.MulQty(4.50, 3); got != 13.50 {
		t.Fatalf("MulQty: want 13.50, got %v", got)
	}
}

func TestSumRoundsEachStep(t *testing.T) {
	// Each value rounds before the addition: 10.004 -> 10.00 twice,
	// so the sum is 20.00 even though the exact sum rounds to 20.01.
	if got := money.Sum(10.004, 10.004); got != 20.00 {
		t.Fatalf("want 20.00, got %v", got)
	}
	if got := money.Sum(30.00, -1.50, 0, 0); got != 28.50 {
		t.Fatalf("want 28.50, got %v", got)
	}
	if got := money.Sum(); got != 0 {
		t.Fatalf("empty sum: want 0, got %v", got)
	}
}

func TestAddSub(t *testing.T) {
	if got := money.Add(0.1, 0.2); got != 0.30 {
		t.Fatalf("Add: want 0.30, got %v", got)
	}
	if got := money.Sub(1000, 28.50); got != 971.50 {
		t.Fatalf("Sub: want 971.50, got %v", got)
	}
}
