package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"monamart/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderRecord is the flattened order row; line items live in LinesJSON.
type OrderRecord struct {
	ID              string  `db:"id"`
	Email           string  `db:"email"`
	CreatedAt       string  `db:"created_at"`
	Fulfilment      string  `db:"fulfilment"`
	DeliveryAddress string  `db:"delivery_address"`
	StoreID         string  `db:"store_id"`
	PromoCode       string  `db:"promo_code"`
	PromoDiscount   float64 `db:"promo_discount"`
	StudentDiscount float64 `db:"student_discount"`
	DeliveryFee     float64 `db:"delivery_fee"`
	Subtotal        float64 `db:"subtotal"`
	Total           float64 `db:"total"`
	LinesJSON       string  `db:"lines_json"`
}

func (rec OrderRecord) Lines() []domain.OrderLine {
	var lines []domain.OrderLine
	// Malformed stored rows yield an empty line list rather than a crash.
	_ = json.Unmarshal([]byte(rec.LinesJSON), &lines)
	return lines
}

func recordFromOrder(o domain.Order) (OrderRecord, error) {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return OrderRecord{}, err
	}
	return OrderRecord{
		ID:              o.ID,
		Email:           o.CustomerEmail,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		Fulfilment:      o.Fulfilment,
		DeliveryAddress: o.DeliveryAddress,
		StoreID:         o.StoreID,
		PromoCode:       o.PromoCode,
		PromoDiscount:   o.PromoDiscount,
		StudentDiscount: o.StudentDiscount,
		DeliveryFee:     o.DeliveryFee,
		Subtotal:        o.Subtotal,
		Total:           o.Total,
		LinesJSON:       string(lines),
	}, nil
}

const orderCols = `id, email, created_at, fulfilment,
    COALESCE(delivery_address,'') AS delivery_address, COALESCE(store_id,'') AS store_id,
    COALESCE(promo_code,'') AS promo_code, promo_discount, student_discount,
    delivery_fee, subtotal, total, lines_json`

// Append persists a built order. Append-only; orders are never updated.
func (r *OrderRepo) Append(o domain.Order) error {
	rec, err := recordFromOrder(o)
	if err != nil {
		return err
	}
	return appendOrder(r.db, rec)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func appendOrder(e execer, rec OrderRecord) error {
	_, err := e.Exec(`
	  INSERT INTO orders
	    (id, email, created_at, fulfilment, delivery_address, store_id,
	     promo_code, promo_discount, student_discount, delivery_fee, subtotal, total, lines_json)
	  VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, rec.ID, rec.Email, rec.CreatedAt, rec.Fulfilment, rec.DeliveryAddress, rec.StoreID,
		rec.PromoCode, rec.PromoDiscount, rec.StudentDiscount, rec.DeliveryFee,
		rec.Subtotal, rec.Total, rec.LinesJSON)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRecord, error) {
	var rec OrderRecord
	err := r.db.Get(&rec, `SELECT `+orderCols+` FROM orders WHERE id = ?`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderRecord{}, domain.ErrNotFound
	}
	return rec, err
}

func (r *OrderRepo) ListByEmail(email string) ([]OrderRecord, error) {
	var out []OrderRecord
	err := r.db.Select(&out, `
		SELECT `+orderCols+` FROM orders
		WHERE LOWER(email) = LOWER(?)
		ORDER BY datetime(created_at) DESC
	`, email)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRecord
	err := r.db.Select(&out, `
		SELECT `+orderCols+` FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}

// CustomerHasPickupOrder implements domain.HistoryLookup for promotion
// eligibility.
func (r *OrderRepo) CustomerHasPickupOrder(email string) bool {
	var n int
	if err := r.db.Get(&n, `
		SELECT COUNT(*) FROM orders
		WHERE LOWER(email) = LOWER(?) AND fulfilment = 'PICKUP'
	`, email); err != nil {
		return false
	}
	return n > 0
}
