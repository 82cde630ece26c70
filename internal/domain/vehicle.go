package domain

// VehicleRecord is the persisted product/vehicle row. One record type serves
// both generic products and vehicles; vehicle columns stay at their zero value
// for plain products. Price is stored as formatted text (e.g. "$12,345.00"),
// so price bounds cannot be pushed down to the store.
type VehicleRecord struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	CategoryName  string `db:"category_name"`
	UnitOfMeasure string `db:"unit_of_measure"`
	Price         string `db:"price"`
	ImageFile     string `db:"image_file"`
	Make          string `db:"make"`
	Model         string `db:"model"`
	Year          int    `db:"year"`
	Mileage       int    `db:"mileage"`
	FuelType      string `db:"fuel_type"`
	Transmission  string `db:"transmission"`
	VIN           string `db:"vin"`
	Condition     string `db:"condition"` // New | Used | Certified Pre-Owned
	ExteriorColor string `db:"exterior_color"`
	InteriorColor string `db:"interior_color"`
	Drivetrain    string `db:"drivetrain"` // FWD | RWD | AWD | 4WD
	Horsepower    int    `db:"horsepower"`
	MPGCity       int    `db:"mpg_city"`
	MPGHighway    int    `db:"mpg_highway"`
	BodyStyle     string `db:"body_style"`
	Seating       int    `db:"seating"`
	Status        string `db:"status"` // Available | Sold | Pending
	Featured      bool   `db:"featured"`
	Created       string `db:"created"`
	LastUpdated   string `db:"last_updated"`
}
