package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"driveline/internal/models"
	"driveline/internal/repos"
	"driveline/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:", false)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	return services.NewCatalogService(repos.NewVehicleRepo(memdb(t)))
}

func mustCreate(t *testing.T, svc *services.CatalogService, v models.Vehicle) models.Vehicle {
	t.Helper()
	created, err := svc.Create(v)
	if err != nil {
		t.Fatalf("create %q: %v", v.Name, err)
	}
	return created
}

func strp(s string) *string { return &s }

func floatp(f float64) *float64 { return &f }

func TestSearchEmptyFilterReturnsEverything(t *testing.T) {
	svc := newCatalog(t)
	mustCreate(t, svc, models.Vehicle{Name: "A", Price: "$10,000.00", Year: 2020})
	mustCreate(t, svc, models.Vehicle{Name: "B", Price: "$12,000.00", Year: 2021})
	mustCreate(t, svc, models.Vehicle{Name: "C", Price: "not priced", Year: 2019})

	out, err := svc.Search(models.VehicleFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("empty filter should return all 3, got %d", len(out))
	}
}

func TestSearchOrderingFeaturedYearPrice(t *testing.T) {
	svc := newCatalog(t)
	mustCreate(t, svc, models.Vehicle{Name: "old-cheap", Price: "$8,000.00", Year: 2018})
	mustCreate(t, svc, models.Vehicle{Name: "new-dear", Price: "$30,000.00", Year: 2022})
	mustCreate(t, svc, models.Vehicle{Name: "new-cheap", Price: "$22,000.00", Year: 2022})
	mustCreate(t, svc, models.Vehicle{Name: "featured-old", Price: "$15,000.00", Year: 2015, Featured: true})

	out, err := svc.Search(models.VehicleFilter{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"featured-old", "new-cheap", "new-dear", "old-cheap"}
	if len(out) != len(want) {
		t.Fatalf("got %d results, want %d", len(out), len(want))
	}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, out[i].Name, name)
		}
	}
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	svc := newCatalog(t)
	mustCreate(t, svc, models.Vehicle{Name: "under", Price: "$9,999.00"})
	mustCreate(t, svc, models.Vehicle{Name: "exact", Price: "$10,000.00"})
	mustCreate(t, svc, models.Vehicle{Name: "over", Price: "$10,001.00"})

	out, err := svc.Search(models.VehicleFilter{PriceMin: floatp(10000)})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Name == "under" || out[1].Name == "under" {
		t.Fatalf("priceMin=10000 should keep exact+over, got %+v", names(out))
	}

	out, err = svc.Search(models.VehicleFilter{PriceMax: floatp(10000)})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("priceMax=10000 should keep under+exact, got %+v", names(out))
	}
}

func TestSearchUnparseablePriceSkippedOnlyWithBound(t *testing.T) {
	svc := newCatalog(t)
	mustCreate(t, svc, models.Vehicle{Name: "priced", Price: "$5,000.00"})
	mustCreate(t, svc, models.Vehicle{Name: "call-us", Price: "Call for price"})

	out, err := svc.Search(models.VehicleFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("no bound: unparseable price must stay, got %+v", names(out))
	}

	out, err = svc.Search(models.VehicleFilter{PriceMax: floatp(99999)})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "priced" {
		t.Fatalf("with bound: unparseable price must be skipped, got %+v", names(out))
	}
}

func TestSearchTextFiltersAndStatus(t *testing.T) {
	svc := newCatalog(t)
	mustCreate(t, svc, models.Vehicle{Name: "civic", Make: "Honda", Model: "Civic", Status: "Available"})
	mustCreate(t, svc, models.Vehicle{Name: "accord", Make: "Honda", Model: "Accord", Status: "Sold"})
	mustCreate(t, svc, models.Vehicle{Name: "camry", Make: "Toyota", Model: "Camry", Status: "Available"})

	out, err := svc.Search(models.VehicleFilter{Make: strp("Honda"), Status: strp("Available")})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "civic" {
		t.Fatalf("want only civic, got %+v", names(out))
	}
}

func TestCategoriesDerivedFirstSeenWithPositionalIDs(t *testing.T) {
	svc := newCatalog(t)
	mustCreate(t, svc, models.Vehicle{Name: "a", CategoryName: "Sedan"})
	mustCreate(t, svc, models.Vehicle{Name: "b", CategoryName: "Sedan"})
	mustCreate(t, svc, models.Vehicle{Name: "c", CategoryName: "SUV"})

	cats, err := svc.ListCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 {
		t.Fatalf("want 2 categories, got %d", len(cats))
	}
	if cats[0].ID != 1 || cats[0].Name != "Sedan" || cats[1].ID != 2 || cats[1].Name != "SUV" {
		t.Fatalf("bad category derivation: %+v", cats)
	}

	if _, err := svc.GetCategory(2); err != nil {
		t.Fatalf("category 2 should resolve: %v", err)
	}
	if _, err := svc.GetCategory(3); err == nil {
		t.Fatal("category 3 should be not found")
	}
}

func TestInventoryStatusTransitions(t *testing.T) {
	svc := newCatalog(t)

	st, err := svc.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Status != "EMPTY" || !st.IsEmpty {
		t.Fatalf("empty catalog: %+v", st)
	}

	created := mustCreate(t, svc, models.Vehicle{Name: "only", Price: "$1.00"})
	st, err = svc.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Status != "HAS_STOCK" || !st.HasStock || st.TotalVehicles != 1 {
		t.Fatalf("one available vehicle: %+v", st)
	}

	sold := "Sold"
	if _, err := svc.Update(created.ID, models.VehiclePatch{Status: &sold}); err != nil {
		t.Fatal(err)
	}
	st, err = svc.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Status != "NO_STOCK" || st.HasStock {
		t.Fatalf("all sold: %+v", st)
	}
}

func TestUpdateMissingVehicleIsNotFound(t *testing.T) {
	svc := newCatalog(t)
	name := "ghost"
	if _, err := svc.Update(404, models.VehiclePatch{Name: &name}); err == nil {
		t.Fatal("update of missing id should fail")
	}
	if err := svc.Delete(404); err == nil {
		t.Fatal("delete of missing id should fail")
	}
}

func names(vs []models.Vehicle) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name)
	}
	return out
}
