package services

import (
	"database/sql"
	"errors"

	"driveline/internal/apperr"
	"driveline/internal/models"
	"driveline/internal/repos"
	"driveline/internal/validate"
)

type CustomerService struct {
	Customers *repos.CustomerRepo
}

func NewCustomerService(customers *repos.CustomerRepo) *CustomerService {
	return &CustomerService{Customers: customers}
}

func (s *CustomerService) List() ([]models.Customer, error) {
	recs, err := s.Customers.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.CustomersFromRecords(recs), nil
}

func (s *CustomerService) Get(id int64) (models.Customer, error) {
	rec, err := s.Customers.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, apperr.NotFound("customer not found")
	}
	if err != nil {
		return models.Customer{}, apperr.Internal(err)
	}
	return models.CustomerFromRecord(rec), nil
}

func (s *CustomerService) Create(c models.Customer) (models.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return models.Customer{}, err
	}
	created, err := s.Customers.Create(c.Record())
	if err != nil {
		return models.Customer{}, apperr.Internal(err)
	}
	return models.CustomerFromRecord(created), nil
}

func (s *CustomerService) Update(id int64, c models.Customer) (models.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return models.Customer{}, err
	}
	rec := c.Record()
	rec.ID = id
	updated, err := s.Customers.Update(rec)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, apperr.NotFound("customer not found")
	}
	if err != nil {
		return models.Customer{}, apperr.Internal(err)
	}
	return models.CustomerFromRecord(updated), nil
}

func (s *CustomerService) Delete(id int64) error {
	err := s.Customers.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("customer not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func validateCustomer(c models.Customer) error {
	if _, ok := validate.Name(c.FirstName); !ok {
		return apperr.Validation("firstname is required")
	}
	if _, ok := validate.Name(c.LastName); !ok {
		return apperr.Validation("lastname is required")
	}
	if c.Email != "" {
		if _, ok := validate.Email(c.Email); !ok {
			return apperr.Validation("invalid email")
		}
	}
	if _, ok := validate.Date(c.DateOfBirth); !ok {
		return apperr.Validation("dateOfBirth must be yyyy-mm-dd")
	}
	return nil
}
