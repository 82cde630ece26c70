package models

// VehicleFilter is the search filter bag: every field is independently
// optional and nil means "no constraint". Range bounds are inclusive; text
// fields match with case-sensitive equality. Price bounds apply to the parsed
// numeric value of the stored price text, in a pass after the store query.
type VehicleFilter struct {
	Make         *string  `json:"make"`
	Model        *string  `json:"model"`
	YearMin      *int     `json:"yearMin"`
	YearMax      *int     `json:"yearMax"`
	PriceMin     *float64 `json:"priceMin"`
	PriceMax     *float64 `json:"priceMax"`
	MileageMax   *int     `json:"mileageMax"`
	FuelType     *string  `json:"fuelType"`
	Transmission *string  `json:"transmission"`
	Condition    *string  `json:"condition"`
	Status       *string  `json:"status"`
}

// HasPriceBound reports whether the in-memory price pass is needed.
func (f VehicleFilter) HasPriceBound() bool {
	return f.PriceMin != nil || f.PriceMax != nil
}

// OrderFilter narrows the order listing; CustomerName is a substring match.
type OrderFilter struct {
	CustomerID   *int64
	Status       *string
	CustomerName *string
}
