package domain

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"monamart/internal/money"
)

// HistoryLookup is the only order-history access promotions get.
type HistoryLookup interface {
	CustomerHasPickupOrder(email string) bool
}

// Promotion is a named discount rule with its own eligibility gate.
// The discount applies to the items subtotal only, never to the
// delivery fee.
type Promotion interface {
	Code() string
	Description() string
	Rate() float64
	Requirements() string
	Eligible(c Customer, fulfilment string, history HistoryLookup) (bool, string)
}

// promoBase carries the fields shared by every strategy.
type promoBase struct {
	code        string
	description string
	rate        float64 // 0 < rate < 1
}

func (b promoBase) Code() string        { return b.code }
func (b promoBase) Description() string { return b.description }
func (b promoBase) Rate() float64       { return b.rate }

// PromoDiscount is round2(subtotal * rate).
func PromoDiscount(p Promotion, subtotal float64) float64 {
	return money.Mul(subtotal, p.Rate())
}

// firstPickupPromo: 20% off, first PICKUP order only.
type firstPickupPromo struct{ promoBase }

func (p firstPickupPromo) Requirements() string {
	return "Must be your first PICKUP order (not available for delivery)"
}

func (p firstPickupPromo) Eligible(c Customer, fulfilment string, history HistoryLookup) (bool, string) {
	if !strings.EqualFold(fulfilment, FulfilmentPickup) {
		return false, fmt.Sprintf("%s is only valid for PICKUP orders", p.code)
	}
	if history.CustomerHasPickupOrder(c.Email) {
		return false, fmt.Sprintf("%s is only valid for your first PICKUP order", p.code)
	}
	return true, ""
}

// flatPromo: unconditional percentage off, any fulfilment type.
type flatPromo struct{ promoBase }

func (p flatPromo) Requirements() string {
	return "Available for all customers on all orders (delivery or pickup)"
}

func (p flatPromo) Eligible(Customer, string, HistoryLookup) (bool, string) {
	return true, ""
}

// Registry: process-lifetime map from upper-case code to strategy.
// Initialized once with the built-ins; append-only afterwards.
var (
	promoOnce sync.Once
	promoReg  map[string]Promotion
)

// InitPromotions registers the built-in strategies. Safe to call any
// number of times; only the first call does anything.
func InitPromotions() {
	promoOnce.Do(func() {
		promoReg = map[string]Promotion{}
		for _, p := range []Promotion{
			firstPickupPromo{promoBase{
				code:        "FIRSTPICKUP20",
				description: "20% off products subtotal - first-time PICKUP order only",
				rate:        0.20,
			}},
			flatPromo{promoBase{
				code:        "FLAT5",
				description: "5% off products subtotal - available for all orders",
				rate:        0.05,
			}},
		} {
			promoReg[p.Code()] = p
		}
	})
}

// RegisterPromotion adds a strategy; returns false if the code is taken.
func RegisterPromotion(p Promotion) bool {
	InitPromotions()
	code := strings.ToUpper(p.Code())
	if _, exists := promoReg[code]; exists {
		return false
	}
	promoReg[code] = p
	return true
}

// LookupPromotion finds a strategy by code, case-insensitively.
func LookupPromotion(code string) (Promotion, bool) {
	InitPromotions()
	p, ok := promoReg[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// AllPromotions lists registered strategies ordered by code.
func AllPromotions() []Promotion {
	InitPromotions()
	out := make([]Promotion, 0, len(promoReg))
	for _, p := range promoReg {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

// ValidatePromotion resolves a code and checks eligibility, returning the
// strategy handle for the order builder on success.
func ValidatePromotion(code string, c Customer, fulfilment string, history HistoryLookup) (Promotion, bool, string) {
	p, ok := LookupPromotion(code)
	if !ok {
		return nil, false, fmt.Sprintf("Invalid promotion code: %s", strings.ToUpper(strings.TrimSpace(code)))
	}
	if eligible, reason := p.Eligible(c, fulfilment, history); !eligible {
		return nil, false, reason
	}
	return p, true, fmt.Sprintf("%s is valid and applicable", p.Code())
}
