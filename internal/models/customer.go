package models

import "driveline/internal/domain"

type Customer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstname"`
	MiddleName  string `json:"middlename,omitempty"`
	LastName    string `json:"lastname"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Created     string `json:"created,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

func CustomerFromRecord(rec domain.CustomerRecord) Customer {
	return Customer{
		ID:          rec.ID,
		FirstName:   rec.FirstName,
		MiddleName:  rec.MiddleName,
		LastName:    rec.LastName,
		DateOfBirth: rec.DateOfBirth,
		Gender:      rec.Gender,
		Email:       rec.Email,
		Phone:       rec.Phone,
		Address:     rec.Address,
		Created:     rec.Created,
		LastUpdated: rec.LastUpdated,
	}
}

func (c Customer) Record() domain.CustomerRecord {
	return domain.CustomerRecord{
		ID:          c.ID,
		FirstName:   c.FirstName,
		MiddleName:  c.MiddleName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth,
		Gender:      c.Gender,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Created:     c.Created,
		LastUpdated: c.LastUpdated,
	}
}

func CustomersFromRecords(recs []domain.CustomerRecord) []Customer {
	out := make([]Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, CustomerFromRecord(rec))
	}
	return out
}
