package repos

import (
	"github.com/jmoiron/sqlx"

	"monamart/internal/domain"
	applog "monamart/internal/log"
	"monamart/internal/money"
)

// CheckoutRepo commits an order as one SQLite transaction: funds debit,
// stock decrements and the order insert all succeed or roll back
// together, so a failed save never leaves the customer debited.
type CheckoutRepo struct{ db *sqlx.DB }

func NewCheckoutRepo(db *sqlx.DB) *CheckoutRepo { return &CheckoutRepo{db: db} }

func (r *CheckoutRepo) Commit(o domain.Order) (bool, string) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, "Failed to save order."
	}
	defer func() { _ = tx.Rollback() }()

	// 1) Funds-only payment. The balance is re-read inside the
	// transaction; the guard in the WHERE clause is authoritative.
	var funds float64
	if err := tx.Get(&funds, `SELECT funds FROM users WHERE LOWER(email)=LOWER(?)`, o.CustomerEmail); err != nil {
		return false, "Missing customer on order."
	}
	if funds < o.Total {
		return false, "Insufficient funds. Please top up."
	}
	newBalance := money.Sub(funds, o.Total)
	res, err := tx.Exec(`
		UPDATE users SET funds = ? WHERE LOWER(email)=LOWER(?) AND funds >= ?
	`, newBalance, o.CustomerEmail, o.Total)
	if err != nil {
		return false, "Could not update user funds."
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, "Insufficient funds. Please top up."
	}

	// 2) Decrement stock per line. Cart validation is the real guard;
	// a shortfall here is logged and skipped, not fatal.
	for _, line := range o.Lines {
		res, err := tx.Exec(`
			UPDATE products SET quantity = quantity - ?
			WHERE sku = ? AND quantity >= ?
		`, line.Quantity, line.SKU, line.Quantity)
		if err != nil {
			return false, "Failed to save order."
		}
		if n, _ := res.RowsAffected(); n == 0 {
			applog.Warn(o.CustomerEmail, "checkout.stock.shortfall",
				map[string]any{"order_id": o.ID, "sku": line.SKU, "qty": line.Quantity})
		}
	}

	// 3) Persist the order record (append-only).
	rec, err := recordFromOrder(o)
	if err != nil {
		return false, "Failed to save order."
	}
	if err := appendOrder(tx, rec); err != nil {
		return false, "Failed to save order."
	}

	if err := tx.Commit(); err != nil {
		return false, "Failed to save order."
	}
	return true, "Order placed successfully."
}
