package repos

import (
	"database/sql"

	"driveline/internal/domain"
	"driveline/internal/models"

	"github.com/jmoiron/sqlx"
)

type VehicleRepo struct{ db *sqlx.DB }

func NewVehicleRepo(db *sqlx.DB) *VehicleRepo { return &VehicleRepo{db: db} }

const vehicleCols = `
  id, name, description, category_name, unit_of_measure, price, image_file,
  make, model, year, mileage, fuel_type, transmission, vin, condition,
  exterior_color, interior_color, drivetrain, horsepower, mpg_city, mpg_highway,
  body_style, seating, status, featured, created, last_updated`

// ListAll returns every record ordered by id, the fixed iteration order the
// category derivation depends on.
func (r *VehicleRepo) ListAll() ([]domain.VehicleRecord, error) {
	var out []domain.VehicleRecord
	err := r.db.Select(&out, `SELECT `+vehicleCols+` FROM vehicles ORDER BY id`)
	return out, err
}

// ListByStatus returns records with an exact status match, e.g. "Available".
func (r *VehicleRepo) ListByStatus(status string) ([]domain.VehicleRecord, error) {
	var out []domain.VehicleRecord
	err := r.db.Select(&out, `SELECT `+vehicleCols+` FROM vehicles WHERE status = ? ORDER BY id`, status)
	return out, err
}

func (r *VehicleRepo) ListByCondition(condition, status string) ([]domain.VehicleRecord, error) {
	var out []domain.VehicleRecord
	err := r.db.Select(&out, `SELECT `+vehicleCols+` FROM vehicles WHERE condition = ? AND status = ? ORDER BY id`,
		condition, status)
	return out, err
}

func (r *VehicleRepo) ListByMake(make, status string) ([]domain.VehicleRecord, error) {
	var out []domain.VehicleRecord
	err := r.db.Select(&out, `SELECT `+vehicleCols+` FROM vehicles WHERE make = ? AND status = ? ORDER BY id`,
		make, status)
	return out, err
}

func (r *VehicleRepo) ListFeatured(status string) ([]domain.VehicleRecord, error) {
	var out []domain.VehicleRecord
	err := r.db.Select(&out, `SELECT `+vehicleCols+` FROM vehicles WHERE featured = 1 AND status = ? ORDER BY id`,
		status)
	return out, err
}

func (r *VehicleRepo) Get(id int64) (domain.VehicleRecord, error) {
	var v domain.VehicleRecord
	err := r.db.Get(&v, `SELECT `+vehicleCols+` FROM vehicles WHERE id = ?`, id)
	return v, err
}

// Search applies every store-filterable constraint of the bag; price bounds
// are deliberately absent here (the price column is text) and applied by the
// catalog service. Ordering covers the first two keys of the fixed tie-break
// chain; the price key is applied after parsing, also in the service.
func (r *VehicleRepo) Search(f models.VehicleFilter) ([]domain.VehicleRecord, error) {
	where := `1=1`
	args := []any{}
	if f.Make != nil {
		where += ` AND make = ?`
		args = append(args, *f.Make)
	}
	if f.Model != nil {
		where += ` AND model = ?`
		args = append(args, *f.Model)
	}
	if f.YearMin != nil {
		where += ` AND year >= ?`
		args = append(args, *f.YearMin)
	}
	if f.YearMax != nil {
		where += ` AND year <= ?`
		args = append(args, *f.YearMax)
	}
	if f.MileageMax != nil {
		where += ` AND mileage <= ?`
		args = append(args, *f.MileageMax)
	}
	if f.FuelType != nil {
		where += ` AND fuel_type = ?`
		args = append(args, *f.FuelType)
	}
	if f.Transmission != nil {
		where += ` AND transmission = ?`
		args = append(args, *f.Transmission)
	}
	if f.Condition != nil {
		where += ` AND condition = ?`
		args = append(args, *f.Condition)
	}
	if f.Status != nil {
		where += ` AND status = ?`
		args = append(args, *f.Status)
	}

	var out []domain.VehicleRecord
	err := r.db.Select(&out, `
	  SELECT `+vehicleCols+`
	  FROM vehicles
	  WHERE `+where+`
	  ORDER BY featured DESC, year DESC, id`, args...)
	return out, err
}

// DistinctMakes lists makes with at least one available record, sorted.
func (r *VehicleRepo) DistinctMakes(status string) ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `
	  SELECT DISTINCT make FROM vehicles
	  WHERE make != '' AND status = ?
	  ORDER BY make`, status)
	return out, err
}

func (r *VehicleRepo) DistinctModelsByMake(make, status string) ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `
	  SELECT DISTINCT model FROM vehicles
	  WHERE make = ? AND model != '' AND status = ?
	  ORDER BY model`, make, status)
	return out, err
}

func (r *VehicleRepo) Create(rec domain.VehicleRecord) (domain.VehicleRecord, error) {
	res, err := r.db.Exec(`
	  INSERT INTO vehicles
	    (name, description, category_name, unit_of_measure, price, image_file,
	     make, model, year, mileage, fuel_type, transmission, vin, condition,
	     exterior_color, interior_color, drivetrain, horsepower, mpg_city, mpg_highway,
	     body_style, seating, status, featured, created, last_updated)
	  VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP,CURRENT_TIMESTAMP)`,
		rec.Name, rec.Description, rec.CategoryName, rec.UnitOfMeasure, rec.Price, rec.ImageFile,
		rec.Make, rec.Model, rec.Year, rec.Mileage, rec.FuelType, rec.Transmission, rec.VIN, rec.Condition,
		rec.ExteriorColor, rec.InteriorColor, rec.Drivetrain, rec.Horsepower, rec.MPGCity, rec.MPGHighway,
		rec.BodyStyle, rec.Seating, rec.Status, rec.Featured)
	if err != nil {
		return domain.VehicleRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.VehicleRecord{}, err
	}
	return r.Get(id)
}

// Update replaces every field of the row; LastUpdated is server-assigned.
func (r *VehicleRepo) Update(rec domain.VehicleRecord) (domain.VehicleRecord, error) {
	res, err := r.db.Exec(`
	  UPDATE vehicles SET
	    name=?, description=?, category_name=?, unit_of_measure=?, price=?, image_file=?,
	    make=?, model=?, year=?, mileage=?, fuel_type=?, transmission=?, vin=?, condition=?,
	    exterior_color=?, interior_color=?, drivetrain=?, horsepower=?, mpg_city=?, mpg_highway=?,
	    body_style=?, seating=?, status=?, featured=?, last_updated=CURRENT_TIMESTAMP
	  WHERE id=?`,
		rec.Name, rec.Description, rec.CategoryName, rec.UnitOfMeasure, rec.Price, rec.ImageFile,
		rec.Make, rec.Model, rec.Year, rec.Mileage, rec.FuelType, rec.Transmission, rec.VIN, rec.Condition,
		rec.ExteriorColor, rec.InteriorColor, rec.Drivetrain, rec.Horsepower, rec.MPGCity, rec.MPGHighway,
		rec.BodyStyle, rec.Seating, rec.Status, rec.Featured, rec.ID)
	if err != nil {
		return domain.VehicleRecord{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.VehicleRecord{}, sql.ErrNoRows
	}
	return r.Get(rec.ID)
}

func (r *VehicleRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// StatusCounts feeds the /api/vehicle/status aggregate.
type StatusCounts struct {
	Total    int `db:"total"`
	InStock  int `db:"in_stock"`
	New      int `db:"new_count"`
	Used     int `db:"used_count"`
	Featured int `db:"featured_count"`
}

func (r *VehicleRepo) Counts() (StatusCounts, error) {
	var c StatusCounts
	err := r.db.Get(&c, `
	  SELECT
	    COUNT(*) AS total,
	    COALESCE(SUM(CASE WHEN status='Available' THEN 1 ELSE 0 END),0) AS in_stock,
	    COALESCE(SUM(CASE WHEN status='Available' AND condition='New' THEN 1 ELSE 0 END),0) AS new_count,
	    COALESCE(SUM(CASE WHEN status='Available' AND condition='Used' THEN 1 ELSE 0 END),0) AS used_count,
	    COALESCE(SUM(CASE WHEN status='Available' AND featured=1 THEN 1 ELSE 0 END),0) AS featured_count
	  FROM vehicles`)
	return c, err
}
