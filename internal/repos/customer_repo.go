package repos

import (
	"database/sql"

	"driveline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerCols = `
  id, firstname, middlename, lastname, date_of_birth, gender, email, phone, address,
  created, last_updated`

func (r *CustomerRepo) List() ([]domain.CustomerRecord, error) {
	var out []domain.CustomerRecord
	err := r.db.Select(&out, `SELECT `+customerCols+` FROM customers ORDER BY id`)
	return out, err
}

func (r *CustomerRepo) Get(id int64) (domain.CustomerRecord, error) {
	var c domain.CustomerRecord
	err := r.db.Get(&c, `SELECT `+customerCols+` FROM customers WHERE id = ?`, id)
	return c, err
}

func (r *CustomerRepo) Create(rec domain.CustomerRecord) (domain.CustomerRecord, error) {
	res, err := r.db.Exec(`
	  INSERT INTO customers
	    (firstname, middlename, lastname, date_of_birth, gender, email, phone, address, created, last_updated)
	  VALUES (?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP,CURRENT_TIMESTAMP)`,
		rec.FirstName, rec.MiddleName, rec.LastName, rec.DateOfBirth, rec.Gender,
		rec.Email, rec.Phone, rec.Address)
	if err != nil {
		return domain.CustomerRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.CustomerRecord{}, err
	}
	return r.Get(id)
}

// Update is a full replace of the matched fields; audit timestamps are
// server-assigned.
func (r *CustomerRepo) Update(rec domain.CustomerRecord) (domain.CustomerRecord, error) {
	res, err := r.db.Exec(`
	  UPDATE customers SET
	    firstname=?, middlename=?, lastname=?, date_of_birth=?, gender=?,
	    email=?, phone=?, address=?, last_updated=CURRENT_TIMESTAMP
	  WHERE id=?`,
		rec.FirstName, rec.MiddleName, rec.LastName, rec.DateOfBirth, rec.Gender,
		rec.Email, rec.Phone, rec.Address, rec.ID)
	if err != nil {
		return domain.CustomerRecord{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.CustomerRecord{}, sql.ErrNoRows
	}
	return r.Get(rec.ID)
}

func (r *CustomerRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
