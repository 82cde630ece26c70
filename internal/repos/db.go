package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string, seedDemo bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	if seedDemo {
		if err := seedIfEmpty(db); err != nil {
			return nil, err
		}
		// Ensure demo users exist (idempotent; safe to run every start)
		if err := seedUsers(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Product/vehicle inventory. Price is formatted text on purpose: the upstream
-- feed delivers it that way, so range filtering happens in the service layer.
CREATE TABLE IF NOT EXISTS vehicles(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  category_name TEXT NOT NULL DEFAULT '',
  unit_of_measure TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL DEFAULT '',
  image_file TEXT NOT NULL DEFAULT '',
  make TEXT NOT NULL DEFAULT '',
  model TEXT NOT NULL DEFAULT '',
  year INTEGER NOT NULL DEFAULT 0,
  mileage INTEGER NOT NULL DEFAULT 0,
  fuel_type TEXT NOT NULL DEFAULT '',
  transmission TEXT NOT NULL DEFAULT '',
  vin TEXT NOT NULL DEFAULT '',
  condition TEXT NOT NULL DEFAULT '',
  exterior_color TEXT NOT NULL DEFAULT '',
  interior_color TEXT NOT NULL DEFAULT '',
  drivetrain TEXT NOT NULL DEFAULT '',
  horsepower INTEGER NOT NULL DEFAULT 0,
  mpg_city INTEGER NOT NULL DEFAULT 0,
  mpg_highway INTEGER NOT NULL DEFAULT 0,
  body_style TEXT NOT NULL DEFAULT '',
  seating INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'Available',
  featured INTEGER NOT NULL DEFAULT 0,
  created TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_updated TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_vehicles_make      ON vehicles(make);
CREATE INDEX IF NOT EXISTS idx_vehicles_model     ON vehicles(model);
CREATE INDEX IF NOT EXISTS idx_vehicles_year      ON vehicles(year);
CREATE INDEX IF NOT EXISTS idx_vehicles_condition ON vehicles(condition);
CREATE INDEX IF NOT EXISTS idx_vehicles_status    ON vehicles(status);
CREATE INDEX IF NOT EXISTS idx_vehicles_featured  ON vehicles(featured);
CREATE INDEX IF NOT EXISTS idx_vehicles_category  ON vehicles(category_name);

-- Customers
CREATE TABLE IF NOT EXISTS customers(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  firstname TEXT NOT NULL,
  middlename TEXT NOT NULL DEFAULT '',
  lastname TEXT NOT NULL,
  date_of_birth TEXT NOT NULL DEFAULT '',
  gender TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  created TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_updated TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Orders reference customers by id only (weak reference, no FK by design:
-- orders survive customer deletion for audit).
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL DEFAULT 0,
  customer_name TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'Created',
  total_amount NUMERIC NOT NULL DEFAULT 0,
  created TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_updated TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status   ON orders(status);

-- Order items double as cart lines: status='Created' marks an in-cart line,
-- order_id stays 0 until the line belongs to a placed order.
CREATE TABLE IF NOT EXISTS order_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL DEFAULT 0,
  customer_id INTEGER NOT NULL DEFAULT 0,
  vehicle_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
  price NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'Created',
  created TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_updated TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_order_items_customer ON order_items(customer_id, status);
CREATE INDEX IF NOT EXISTS idx_order_items_order    ON order_items(order_id);

-- Users & session tokens
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('customer','admin')),
  created TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  token TEXT PRIMARY KEY,
  user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  created TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM vehicles`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo vehicles/customers")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO vehicles
	  (name, description, category_name, unit_of_measure, price, make, model, year, mileage,
	   fuel_type, transmission, vin, condition, exterior_color, interior_color, drivetrain,
	   horsepower, mpg_city, mpg_highway, body_style, seating, status, featured)
	VALUES
	  ('Toyota Camry LE','Well-kept commuter sedan','Sedan','each','$24,999.00','Toyota','Camry',2022,18500,
	   'Gasoline','Automatic','4T1B11HK5NU000001','Used','Silver','Black','FWD',203,28,39,'Sedan',5,'Available',1),
	  ('Honda Civic Sport','One-owner hatchback','Sedan','each','$21,450.00','Honda','Civic',2023,9200,
	   'Gasoline','CVT','19XFL1H73PE000002','Used','Blue','Gray','FWD',158,31,40,'Sedan',5,'Available',0),
	  ('Ford F-150 XLT','Crew cab work truck','Truck','each','$38,900.00','Ford','F-150',2021,41000,
	   'Gasoline','Automatic','1FTFW1E52MF000003','Used','White','Black','4WD',400,20,26,'Truck',6,'Available',1),
	  ('Tesla Model Y','Long Range, single owner','SUV','each','$42,500.00','Tesla','Model Y',2023,12000,
	   'Electric','Automatic','7SAYGDEE8PF000004','Used','Red','White','AWD',384,0,0,'SUV',5,'Available',0),
	  ('Jeep Wrangler Sahara','Lifted, new tires','SUV','each','$35,750.00','Jeep','Wrangler',2020,52000,
	   'Gasoline','Manual','1C4HJXEG5LW000005','Used','Green','Black','4WD',285,19,24,'SUV',4,'Sold',0)`)

	tx.MustExec(`INSERT INTO customers(firstname,middlename,lastname,date_of_birth,gender,email,phone,address)
	VALUES
	  ('Ava','','Nguyen','1991-04-12','F','ava.nguyen@example.com','555-0101','12 Elm St'),
	  ('Marcus','J','Reid','1984-09-30','M','marcus.reid@example.com','555-0102','98 Oak Ave')`)

	return tx.Commit()
}

// seedUsers ensures one customer and one admin exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		Email, Name, Role, Raw string
	}
	users := []u{
		{"demo@driveline.test", "Demo Customer", "customer", "Passw0rd!"},
		{"admin@driveline.test", "Admin", "admin", "Passw0rd!"},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		var n int
		if err := tx.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, x.Email); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		h, err := bcrypt.GenerateFromPassword([]byte(x.Raw), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO users(email,name,password_hash,role) VALUES(?,?,?,?)`,
			x.Email, x.Name, string(h), x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
