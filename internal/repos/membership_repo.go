package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// MembershipEntry is one VIP transaction (purchase, renewal, cancel).
type MembershipEntry struct {
	Email     string  `db:"email"`
	Action    string  `db:"action"`
	Years     int     `db:"years"`
	Amount    float64 `db:"amount"`
	CreatedAt string  `db:"created_at"`
	Notes     string  `db:"notes"`
}

type MembershipRepo struct{ db *sqlx.DB }

func NewMembershipRepo(db *sqlx.DB) *MembershipRepo { return &MembershipRepo{db: db} }

func (r *MembershipRepo) Append(e MembershipEntry) error {
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().Format(time.RFC3339)
	}
	_, err := r.db.Exec(`
	  INSERT INTO membership_log(email,action,years,amount,created_at,notes)
	  VALUES(?,?,?,?,?,?)
	`, e.Email, e.Action, e.Years, e.Amount, e.CreatedAt, e.Notes)
	return err
}

func (r *MembershipRepo) ListByEmail(email string) ([]MembershipEntry, error) {
	var out []MembershipEntry
	err := r.db.Select(&out, `
	  SELECT email, action, years, amount, created_at, COALESCE(notes,'') AS notes
	  FROM membership_log
	  WHERE LOWER(email) = LOWER(?)
	  ORDER BY datetime(created_at) DESC
	`, email)
	return out, err
}
