package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"monamart/internal/money"
)

const (
	FulfilmentDelivery = "DELIVERY"
	FulfilmentPickup   = "PICKUP"

	DeliveryFee         = 20.00
	StudentDiscountRate = 0.05
)

// OrderLine is a priced snapshot of a cart line, computed at build time
// and never re-derived.
type OrderLine struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Quantity    int     `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	MemberPrice float64 `json:"member_price"`
	LineTotal   float64 `json:"line_total"`
}

// Order is immutable once built. Exactly one of DeliveryAddress and
// StoreID is populated, matching the fulfilment type.
type Order struct {
	ID              string
	CreatedAt       time.Time
	CustomerEmail   string
	IsVIP           bool
	IsStudent       bool
	Fulfilment      string
	DeliveryAddress string
	StoreID         string
	Lines           []OrderLine
	PromoCode       string // empty when no promotion was applied
	Subtotal        float64
	StudentDiscount float64
	PromoDiscount   float64
	DeliveryFee     float64
	Total           float64
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// OrderBuilder assembles an order step by step: fulfilment, items,
// optional promotion, then Build.
type OrderBuilder struct {
	customer   Customer
	lines      []CartLine
	fulfilment string
	address    string
	storeID    string
	promotion  Promotion
}

func NewOrderBuilder(c Customer) *OrderBuilder {
	return &OrderBuilder{customer: c}
}

func (b *OrderBuilder) SetDelivery(address string) *OrderBuilder {
	b.fulfilment = FulfilmentDelivery
	b.address = address
	b.storeID = ""
	return b
}

func (b *OrderBuilder) SetPickup(storeID string) *OrderBuilder {
	b.fulfilment = FulfilmentPickup
	b.storeID = strings.ToUpper(storeID)
	b.address = ""
	return b
}

// AddItemsFromCart snapshots the cart lines by value; later cart
// mutations do not affect the built order.
func (b *OrderBuilder) AddItemsFromCart(lines []CartLine) *OrderBuilder {
	b.lines = make([]CartLine, len(lines))
	copy(b.lines, lines)
	return b
}

// ApplyPromotion attaches a validated promotion. Nil means none.
func (b *OrderBuilder) ApplyPromotion(p Promotion) *OrderBuilder {
	b.promotion = p
	return b
}

// Build prices the order. Rounding happens at every step: each line
// total, the subtotal, each discount, and the final total.
func (b *OrderBuilder) Build() (Order, error) {
	if len(b.lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if b.fulfilment != FulfilmentDelivery && b.fulfilment != FulfilmentPickup {
		return Order{}, ErrFulfilmentNotSet
	}

	isVIP := b.customer.IsVIP()
	isStudent := b.customer.IsStudent

	lines := make([]OrderLine, 0, len(b.lines))
	totals := make([]float64, 0, len(b.lines))
	for _, cl := range b.lines {
		lt := cl.LineTotal(isVIP)
		lines = append(lines, OrderLine{
			SKU:         cl.Product.SKU,
			Name:        cl.Product.Name,
			Quantity:    cl.Quantity,
			UnitPrice:   cl.Product.Price,
			MemberPrice: cl.Product.MemberPrice,
			LineTotal:   lt,
		})
		totals = append(totals, lt)
	}
	subtotal := money.Sum(totals...)

	deliveryFee := 0.0
	if b.fulfilment == FulfilmentDelivery && !isStudent {
		deliveryFee = DeliveryFee
	}

	// Discounts are mutually exclusive: applying a promo forfeits the
	// student discount, even if the promo yields $0.
	studentDiscount := 0.0
	promoDiscount := 0.0
	promoCode := ""
	if b.promotion != nil {
		promoCode = b.promotion.Code()
		promoDiscount = PromoDiscount(b.promotion, subtotal)
		if promoDiscount < 0 {
			promoDiscount = 0
		}
		if promoDiscount > subtotal {
			promoDiscount = subtotal
		}
	} else if b.fulfilment == FulfilmentPickup && isStudent {
		studentDiscount = money.Mul(subtotal, StudentDiscountRate)
	}

	total := money.Sum(subtotal, -studentDiscount, -promoDiscount, deliveryFee)
	if total < 0 {
		total = 0
	}

	return Order{
		ID:              newOrderID(),
		CreatedAt:       time.Now(),
		CustomerEmail:   b.customer.Email,
		IsVIP:           isVIP,
		IsStudent:       isStudent,
		Fulfilment:      b.fulfilment,
		DeliveryAddress: b.address,
		StoreID:         b.storeID,
		Lines:           lines,
		PromoCode:       promoCode,
		Subtotal:        subtotal,
		StudentDiscount: studentDiscount,
		PromoDiscount:   promoDiscount,
		DeliveryFee:     deliveryFee,
		Total:           total,
	}, nil
}
