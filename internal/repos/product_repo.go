package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"monamart/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `sku, name, COALESCE(brand,'') AS brand, COALESCE(description,'') AS description,
    COALESCE(category,'') AS category, COALESCE(subcategory,'') AS subcategory,
    price, member_price, quantity, is_food,
    COALESCE(expiry_date,'') AS expiry_date, COALESCE(ingredients,'') AS ingredients,
    COALESCE(storage,'') AS storage, COALESCE(allergens,'') AS allergens`

func (r *ProductRepo) Get(sku string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE sku = ?`, sku)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

// List returns the catalog ordered in-stock first, then by name.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  ORDER BY (quantity > 0) DESC, LOWER(name)
	`)
	return out, err
}

// Filter criteria; zero values mean "no constraint".
type ProductFilter struct {
	Category    string
	Subcategory string
	Brand       string
	PriceMin    float64
	PriceMax    float64
	InStockOnly bool
	OutOnly     bool
}

func (r *ProductRepo) Find(f ProductFilter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.Category != "" {
		where += ` AND LOWER(category) = LOWER(?)`
		args = append(args, f.Category)
	}
	if f.Subcategory != "" {
		where += ` AND LOWER(subcategory) = LOWER(?)`
		args = append(args, f.Subcategory)
	}
	if f.Brand != "" {
		where += ` AND LOWER(brand) = LOWER(?)`
		args = append(args, f.Brand)
	}
	if f.PriceMin > 0 {
		where += ` AND price >= ?`
		args = append(args, f.PriceMin)
	}
	if f.PriceMax > 0 {
		where += ` AND price <= ?`
		args = append(args, f.PriceMax)
	}
	if f.InStockOnly {
		where += ` AND quantity > 0`
	}
	if f.OutOnly {
		where += ` AND quantity = 0`
	}

	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE `+where+`
	  ORDER BY (quantity > 0) DESC, LOWER(name)`, args...)
	return out, err
}

func (r *ProductRepo) Categories() ([]string, error) {
	var out []string
	err := r.db.Select(&out, `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	return out, err
}

// CurrentStock returns live stock; 0 for unknown SKUs.
func (r *ProductRepo) CurrentStock(sku string) int {
	var qty int
	if err := r.db.Get(&qty, `SELECT quantity FROM products WHERE sku = ?`, sku); err != nil {
		return 0
	}
	return qty
}

// DecrementStock atomically subtracts qty if enough stock exists.
func (r *ProductRepo) DecrementStock(sku string, qty int) bool {
	res, err := r.db.Exec(`
		UPDATE products SET quantity = quantity - ?
		WHERE sku = ? AND quantity >= ?
	`, qty, sku, qty)
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Restock adds qty units.
func (r *ProductRepo) Restock(sku string, qty int) error {
	res, err := r.db.Exec(`UPDATE products SET quantity = quantity + ? WHERE sku = ?`, qty, sku)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Save upserts a product (admin add/edit).
func (r *ProductRepo) Save(p domain.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products(sku,name,brand,description,category,subcategory,price,member_price,quantity,is_food,expiry_date,ingredients,storage,allergens)
		VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(sku) DO UPDATE SET
		  name=excluded.name, brand=excluded.brand, description=excluded.description,
		  category=excluded.category, subcategory=excluded.subcategory,
		  price=excluded.price, member_price=excluded.member_price, quantity=excluded.quantity,
		  is_food=excluded.is_food, expiry_date=excluded.expiry_date,
		  ingredients=excluded.ingredients, storage=excluded.storage, allergens=excluded.allergens
	`, p.SKU, p.Name, p.Brand, p.Description, p.Category, p.Subcategory,
		p.Price, p.MemberPrice, p.Quantity, p.IsFood, p.ExpiryDate, p.Ingredients, p.Storage, p.Allergens)
	return err
}

// Delete removes a product from the active catalog. Historical order
// lines keep their own snapshots.
func (r *ProductRepo) Delete(sku string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE sku = ?`, sku)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
