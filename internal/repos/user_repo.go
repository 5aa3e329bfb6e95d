package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"monamart/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = `email, password_hash, role, first_name, last_name,
    COALESCE(mobile,'') AS mobile, COALESCE(address,'') AS address,
    is_student, funds, vip_years, COALESCE(vip_expires,'') AS vip_expires`

func (r *UserRepo) ByEmail(email string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, err
}

func (r *UserRepo) Customers() ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `SELECT `+userCols+` FROM users WHERE role='CUSTOMER' ORDER BY email`)
	return out, err
}

func (r *UserRepo) EmailExists(email string) bool {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return false
	}
	return n > 0
}

// Create inserts a new account; the email must be unused.
func (r *UserRepo) Create(c domain.Customer) error {
	_, err := r.db.Exec(`
		INSERT INTO users(email,password_hash,role,first_name,last_name,mobile,address,is_student,funds,vip_years,vip_expires)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, c.Email, c.Hash, c.Role, c.FirstName, c.LastName, c.Mobile, c.Address,
		c.IsStudent, c.Funds, c.VIPYears, c.VIPExpires)
	return err
}

// Save writes back the mutable profile fields.
func (r *UserRepo) Save(c domain.Customer) error {
	res, err := r.db.Exec(`
		UPDATE users SET password_hash=?, first_name=?, last_name=?, mobile=?, address=?,
		  is_student=?, funds=?, vip_years=?, vip_expires=?
		WHERE LOWER(email)=LOWER(?)
	`, c.Hash, c.FirstName, c.LastName, c.Mobile, c.Address,
		c.IsStudent, c.Funds, c.VIPYears, c.VIPExpires, c.Email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) GetFunds(email string) (float64, error) {
	var funds float64
	err := r.db.Get(&funds, `SELECT funds FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return funds, err
}

func (r *UserRepo) SetFunds(email string, newValue float64) bool {
	res, err := r.db.Exec(`UPDATE users SET funds=? WHERE LOWER(email)=LOWER(?)`, newValue, email)
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}
