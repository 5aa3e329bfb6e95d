package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (catalog/stores)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure accounts exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog
CREATE TABLE IF NOT EXISTS products(
  sku TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  brand TEXT,
  description TEXT,
  category TEXT,
  subcategory TEXT,
  price NUMERIC NOT NULL CHECK (price > 0),
  member_price NUMERIC NOT NULL CHECK (member_price > 0 AND member_price <= price),
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  is_food INTEGER NOT NULL DEFAULT 0,
  expiry_date TEXT,
  ingredients TEXT,
  storage TEXT,
  allergens TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(LOWER(category));
CREATE INDEX IF NOT EXISTS idx_products_brand    ON products(LOWER(brand));

-- Accounts
CREATE TABLE IF NOT EXISTS users(
  email TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('CUSTOMER','ADMIN')),
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  mobile TEXT,
  address TEXT,
  is_student INTEGER NOT NULL DEFAULT 0,
  funds NUMERIC NOT NULL DEFAULT 0 CHECK (funds >= 0),
  vip_years INTEGER NOT NULL DEFAULT 0,
  vip_expires TEXT
);

-- Orders (append-only; line items serialized under lines_json)
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  created_at TEXT NOT NULL,
  fulfilment TEXT NOT NULL CHECK (fulfilment IN ('DELIVERY','PICKUP')),
  delivery_address TEXT,
  store_id TEXT,
  promo_code TEXT,
  promo_discount NUMERIC NOT NULL DEFAULT 0,
  student_discount NUMERIC NOT NULL DEFAULT 0,
  delivery_fee NUMERIC NOT NULL DEFAULT 0,
  subtotal NUMERIC NOT NULL,
  total NUMERIC NOT NULL,
  lines_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(LOWER(email));

-- Pickup stores
CREATE TABLE IF NOT EXISTS stores(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT,
  phone TEXT,
  hours TEXT
);

-- VIP membership transaction log
CREATE TABLE IF NOT EXISTS membership_log(
  email TEXT NOT NULL,
  action TEXT NOT NULL,
  years INTEGER NOT NULL DEFAULT 0,
  amount NUMERIC NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  notes TEXT
);
CREATE INDEX IF NOT EXISTS idx_membership_email ON membership_log(LOWER(email));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog/stores")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(sku,name,brand,description,category,subcategory,price,member_price,quantity,is_food,expiry_date,ingredients,storage,allergens) VALUES
	  ('MILK-2L','Full Cream Milk 2L','DairyBest','Fresh full cream milk','Dairy','Milk',4.50,4.00,40,1,'2026-09-30','Milk','Refrigerate below 4C','Milk'),
	  ('BREAD-WM','Wholemeal Bread','BakeHouse','Sliced wholemeal loaf','Bakery','Bread',3.80,3.20,25,1,'2026-08-30','Wheat flour, yeast','Cool dry place','Gluten'),
	  ('RICE-5KG','Jasmine Rice 5kg','GoldenGrain','Premium jasmine rice','Pantry','Rice',18.00,15.50,12,1,'','Rice','Cool dry place',''),
	  ('COF-200G','Instant Coffee 200g','MorningRoast','Medium roast instant coffee','Pantry','Beverages',12.50,10.00,18,1,'2027-01-15','Coffee beans','Cool dry place',''),
	  ('DISH-1L','Dishwashing Liquid 1L','SparkleHome','Lemon dishwashing liquid','Household','Cleaning',6.20,5.50,30,0,'','','',''),
	  ('TOWEL-4PK','Paper Towels 4 Pack','SparkleHome','Absorbent paper towels','Household','Paper',8.90,7.90,0,0,'','','','')`)

	tx.MustExec(`INSERT INTO stores(id,name,address,phone,hours) VALUES
	  ('CLAYTON','Clayton Campus Store','21 College Walk, Clayton VIC','03 9905 1000','Mon-Fri 8:00-18:00'),
	  ('CAULFIELD','Caulfield Campus Store','900 Dandenong Rd, Caulfield VIC','03 9903 2000','Mon-Fri 9:00-17:00'),
	  ('CITY','City Express Store','30 Collins St, Melbourne VIC','03 8602 3000','Mon-Sat 8:00-20:00')`)

	return tx.Commit()
}

// seedUsers ensures one ADMIN and three customers exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		Email, First, Last, Role, Address, Hash string
		Student                                 bool
		Funds                                   float64
		VIPYears                                int
		VIPExpires                              string
	}
	mk := func(email, first, last, role, address, raw string, student bool, funds float64) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{Email: email, First: first, Last: last, Role: role, Address: address,
			Hash: string(h), Student: student, Funds: funds}
	}

	vip := mk("bob@monamart.test", "Bob", "Nguyen", "CUSTOMER", "12 Wellington Rd, Clayton VIC", "Passw0rd!", false, 500)
	vip.VIPYears = 1
	vip.VIPExpires = time.Now().AddDate(0, 0, 365).Format("2006-01-02")

	users := []u{
		mk("admin@monamart.test", "Ada", "Admin", "ADMIN", "", "Passw0rd!", false, 0),
		mk("alice@monamart.test", "Alice", "Tran", "CUSTOMER", "8 Innovation Walk, Clayton VIC", "Passw0rd!", true, 1000),
		vip,
		mk("carol@monamart.test", "Carol", "Smith", "CUSTOMER", "3 Exhibition St, Melbourne VIC", "Passw0rd!", false, 1000),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(email,password_hash,role,first_name,last_name,mobile,address,is_student,funds,vip_years,vip_expires)
			VALUES(?,?,?,?,?,'',?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.Email, x.Hash, x.Role, x.First, x.Last, x.Address, x.Student, x.Funds, x.VIPYears, x.VIPExpires); err != nil {
			return err
		}
	}

	return tx.Commit()
}
