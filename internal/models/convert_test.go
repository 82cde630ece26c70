package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"driveline/internal/domain"
	"driveline/internal/models"
)

func TestVehicleConversionRoundTrip(t *testing.T) {
	rec := domain.VehicleRecord{
		ID:           7,
		Name:         "2021 Honda Accord",
		Description:  "One owner",
		CategoryName: "Sedan",
		Price:        "$24,500.00",
		Make:         "Honda",
		Model:        "Accord",
		Year:         2021,
		Mileage:      31000,
		FuelType:     "Gasoline",
		Transmission: "Automatic",
		VIN:          "1HGCV1F30MA000001",
		Condition:    "Used",
		Status:       "Available",
		Featured:     true,
	}
	got := models.VehicleFromRecord(rec).Record()
	if got != rec {
		t.Fatalf("round trip changed the record:\n got %+v\nwant %+v", got, rec)
	}
}

func TestCustomerConversionRoundTrip(t *testing.T) {
	rec := domain.CustomerRecord{
		ID:          3,
		FirstName:   "Ada",
		LastName:    "Okoye",
		DateOfBirth: "1990-04-12",
		Email:       "ada@example.com",
		Phone:       "301-555-0101",
		Address:     "12 Elm St",
	}
	if got := models.CustomerFromRecord(rec).Record(); got != rec {
		t.Fatalf("round trip changed the record:\n got %+v\nwant %+v", got, rec)
	}
}

func TestOrderAndItemConversionRoundTrip(t *testing.T) {
	o := domain.OrderRecord{ID: 1, CustomerID: 3, CustomerName: "Ada Okoye", Status: "Placed", TotalAmount: 24500}
	if got := models.OrderFromRecord(o).Record(); got != o {
		t.Fatalf("order round trip:\n got %+v\nwant %+v", got, o)
	}
	it := domain.OrderItemRecord{ID: 5, OrderID: 1, CustomerID: 3, VehicleID: 7, Quantity: 1, Price: 24500, Status: domain.ItemStatusOrdered}
	if got := models.OrderItemFromRecord(it).Record(); got != it {
		t.Fatalf("item round trip:\n got %+v\nwant %+v", got, it)
	}
}

func TestVehiclePatchAppliesOnlyPresentFields(t *testing.T) {
	rec := domain.VehicleRecord{
		ID: 9, Name: "2019 Ford F-150", Price: "$31,000.00",
		Make: "Ford", Model: "F-150", Year: 2019, Status: "Available",
	}
	newPrice := "$29,500.00"
	sold := "Sold"
	patched := models.VehiclePatch{Price: &newPrice, Status: &sold}.Apply(rec)

	if patched.Price != newPrice || patched.Status != sold {
		t.Fatalf("patched fields not applied: %+v", patched)
	}
	if patched.Name != rec.Name || patched.Make != rec.Make || patched.Year != rec.Year {
		t.Fatalf("untouched fields changed: %+v", patched)
	}
	if rec.Price != "$31,000.00" {
		t.Fatal("Apply mutated its input")
	}
}

func TestUserJSONNeverCarriesPassword(t *testing.T) {
	rec := domain.UserRecord{ID: 1, Email: "a@b.com", Name: "A", Role: domain.RoleCustomer, PasswordHash: "$2a$10$secret"}
	b, err := json.Marshal(models.UserFromRecord(rec))
	if err != nil {
		t.Fatal(err)
	}
	s := strings.ToLower(string(b))
	if strings.Contains(s, "password") || strings.Contains(s, "secret") {
		t.Fatalf("user JSON leaks credentials: %s", b)
	}
}

func TestVehicleJSONOmitsEmptyVehicleFields(t *testing.T) {
	v := models.Vehicle{ID: 1, Name: "Gift Card", CategoryName: "Misc", Price: "$50.00"}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"vin", "mpgCity", "drivetrain", "horsepower"} {
		if strings.Contains(string(b), key) {
			t.Fatalf("flat product JSON should omit %q: %s", key, b)
		}
	}
}
