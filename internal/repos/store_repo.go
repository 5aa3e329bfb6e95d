package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"monamart/internal/domain"
)

type Store struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Phone   string `db:"phone"`
	Hours   string `db:"hours"`
}

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) List() ([]Store, error) {
	var out []Store
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(address,'') AS address, COALESCE(phone,'') AS phone, COALESCE(hours,'') AS hours
	  FROM stores ORDER BY id
	`)
	return out, err
}

func (r *StoreRepo) Get(id string) (Store, error) {
	var s Store
	err := r.db.Get(&s, `
	  SELECT id, name, COALESCE(address,'') AS address, COALESCE(phone,'') AS phone, COALESCE(hours,'') AS hours
	  FROM stores WHERE UPPER(id) = UPPER(?)
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Store{}, domain.ErrNotFound
	}
	return s, err
}

func (r *StoreRepo) Exists(id string) bool {
	_, err := r.Get(id)
	return err == nil
}
