// Package models holds the API-facing record shapes and the explicit
// conversion function for each persistence/API record pair. Each conversion is
// a plain field-by-field copy: statically checked, never mutating its source,
// leaving unmatched fields at their zero value.
package models

import "driveline/internal/domain"

// Vehicle is the API shape of a product/vehicle record. Vehicle-only fields
// are omitted from JSON when empty so plain products stay flat.
type Vehicle struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryName  string `json:"categoryName"`
	UnitOfMeasure string `json:"unitOfMeasure,omitempty"`
	Price         string `json:"price"`
	ImageFile     string `json:"imageFile,omitempty"`
	Make          string `json:"make,omitempty"`
	Model         string `json:"model,omitempty"`
	Year          int    `json:"year,omitempty"`
	Mileage       int    `json:"mileage,omitempty"`
	FuelType      string `json:"fuelType,omitempty"`
	Transmission  string `json:"transmission,omitempty"`
	VIN           string `json:"vin,omitempty"`
	Condition     string `json:"condition,omitempty"`
	ExteriorColor string `json:"exteriorColor,omitempty"`
	InteriorColor string `json:"interiorColor,omitempty"`
	Drivetrain    string `json:"drivetrain,omitempty"`
	Horsepower    int    `json:"horsepower,omitempty"`
	MPGCity       int    `json:"mpgCity,omitempty"`
	MPGHighway    int    `json:"mpgHighway,omitempty"`
	BodyStyle     string `json:"bodyStyle,omitempty"`
	Seating       int    `json:"seating,omitempty"`
	Status        string `json:"status,omitempty"`
	Featured      bool   `json:"featured"`
	Created       string `json:"created,omitempty"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

func VehicleFromRecord(rec domain.VehicleRecord) Vehicle {
	return Vehicle{
		ID:            rec.ID,
		Name:          rec.Name,
		Description:   rec.Description,
		CategoryName:  rec.CategoryName,
		UnitOfMeasure: rec.UnitOfMeasure,
		Price:         rec.Price,
		ImageFile:     rec.ImageFile,
		Make:          rec.Make,
		Model:         rec.Model,
		Year:          rec.Year,
		Mileage:       rec.Mileage,
		FuelType:      rec.FuelType,
		Transmission:  rec.Transmission,
		VIN:           rec.VIN,
		Condition:     rec.Condition,
		ExteriorColor: rec.ExteriorColor,
		InteriorColor: rec.InteriorColor,
		Drivetrain:    rec.Drivetrain,
		Horsepower:    rec.Horsepower,
		MPGCity:       rec.MPGCity,
		MPGHighway:    rec.MPGHighway,
		BodyStyle:     rec.BodyStyle,
		Seating:       rec.Seating,
		Status:        rec.Status,
		Featured:      rec.Featured,
		Created:       rec.Created,
		LastUpdated:   rec.LastUpdated,
	}
}

// Record converts back to the persistence shape. Created/LastUpdated are
// copied through but the repos overwrite them on every write.
func (v Vehicle) Record() domain.VehicleRecord {
	return domain.VehicleRecord{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		CategoryName:  v.CategoryName,
		UnitOfMeasure: v.UnitOfMeasure,
		Price:         v.Price,
		ImageFile:     v.ImageFile,
		Make:          v.Make,
		Model:         v.Model,
		Year:          v.Year,
		Mileage:       v.Mileage,
		FuelType:      v.FuelType,
		Transmission:  v.Transmission,
		VIN:           v.VIN,
		Condition:     v.Condition,
		ExteriorColor: v.ExteriorColor,
		InteriorColor: v.InteriorColor,
		Drivetrain:    v.Drivetrain,
		Horsepower:    v.Horsepower,
		MPGCity:       v.MPGCity,
		MPGHighway:    v.MPGHighway,
		BodyStyle:     v.BodyStyle,
		Seating:       v.Seating,
		Status:        v.Status,
		Featured:      v.Featured,
		Created:       v.Created,
		LastUpdated:   v.LastUpdated,
	}
}

func VehiclesFromRecords(recs []domain.VehicleRecord) []Vehicle {
	out := make([]Vehicle, 0, len(recs))
	for _, rec := range recs {
		out = append(out, VehicleFromRecord(rec))
	}
	return out
}

// VehiclePatch is the partial-update shape: nil means "leave unchanged".
// Vehicle updates are the one place the API patches instead of replacing.
type VehiclePatch struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	CategoryName  *string `json:"categoryName"`
	UnitOfMeasure *string `json:"unitOfMeasure"`
	Price         *string `json:"price"`
	ImageFile     *string `json:"imageFile"`
	Make          *string `json:"make"`
	Model         *string `json:"model"`
	Year          *int    `json:"year"`
	Mileage       *int    `json:"mileage"`
	FuelType      *string `json:"fuelType"`
	Transmission  *string `json:"transmission"`
	VIN           *string `json:"vin"`
	Condition     *string `json:"condition"`
	ExteriorColor *string `json:"exteriorColor"`
	InteriorColor *string `json:"interiorColor"`
	Drivetrain    *string `json:"drivetrain"`
	Horsepower    *int    `json:"horsepower"`
	MPGCity       *int    `json:"mpgCity"`
	MPGHighway    *int    `json:"mpgHighway"`
	BodyStyle     *string `json:"bodyStyle"`
	Seating       *int    `json:"seating"`
	Status        *string `json:"status"`
	Featured      *bool   `json:"featured"`
}

// Apply overlays the provided fields onto rec and returns the result.
func (p VehiclePatch) Apply(rec domain.VehicleRecord) domain.VehicleRecord {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&rec.Name, p.Name)
	setStr(&rec.Description, p.Description)
	setStr(&rec.CategoryName, p.CategoryName)
	setStr(&rec.UnitOfMeasure, p.UnitOfMeasure)
	setStr(&rec.Price, p.Price)
	setStr(&rec.ImageFile, p.ImageFile)
	setStr(&rec.Make, p.Make)
	setStr(&rec.Model, p.Model)
	setInt(&rec.Year, p.Year)
	setInt(&rec.Mileage, p.Mileage)
	setStr(&rec.FuelType, p.FuelType)
	setStr(&rec.Transmission, p.Transmission)
	setStr(&rec.VIN, p.VIN)
	setStr(&rec.Condition, p.Condition)
	setStr(&rec.ExteriorColor, p.ExteriorColor)
	setStr(&rec.InteriorColor, p.InteriorColor)
	setStr(&rec.Drivetrain, p.Drivetrain)
	setInt(&rec.Horsepower, p.Horsepower)
	setInt(&rec.MPGCity, p.MPGCity)
	setInt(&rec.MPGHighway, p.MPGHighway)
	setStr(&rec.BodyStyle, p.BodyStyle)
	setInt(&rec.Seating, p.Seating)
	setStr(&rec.Status, p.Status)
	if p.Featured != nil {
		rec.Featured = *p.Featured
	}
	return rec
}
