package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"

	"driveline/internal/apperr"
	"driveline/internal/models"
	"driveline/internal/price"
	"driveline/internal/repos"
)

// StatusAvailable is the status value the public listings filter on.
const StatusAvailable = "Available"

type CatalogService struct {
	Vehicles *repos.VehicleRepo
}

func NewCatalogService(vehicles *repos.VehicleRepo) *CatalogService {
	return &CatalogService{Vehicles: vehicles}
}

func (s *CatalogService) ListInStock() ([]models.Vehicle, error) {
	recs, err := s.Vehicles.ListByStatus(StatusAvailable)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.VehiclesFromRecords(recs), nil
}

func (s *CatalogService) ListByCondition(condition string) ([]models.Vehicle, error) {
	recs, err := s.Vehicles.ListByCondition(condition, StatusAvailable)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.VehiclesFromRecords(recs), nil
}

func (s *CatalogService) ListSold() ([]models.Vehicle, error) {
	recs, err := s.Vehicles.ListByStatus("Sold")
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.VehiclesFromRecords(recs), nil
}

func (s *CatalogService) ListByMake(make string) ([]models.Vehicle, error) {
	recs, err := s.Vehicles.ListByMake(make, StatusAvailable)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.VehiclesFromRecords(recs), nil
}

func (s *CatalogService) ListFeatured() ([]models.Vehicle, error) {
	recs, err := s.Vehicles.ListFeatured(StatusAvailable)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return models.VehiclesFromRecords(recs), nil
}

func (s *CatalogService) Get(id int64) (models.Vehicle, error) {
	rec, err := s.Vehicles.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, apperr.NotFound("vehicle not found")
	}
	if err != nil {
		return models.Vehicle{}, apperr.Internal(err)
	}
	return models.VehicleFromRecord(rec), nil
}

// Search runs the filter bag against the store, applies price bounds in
// memory (price lives as formatted text the store cannot range-filter), and
// orders the result by the fixed chain: featured desc, year desc, parsed
// price asc.
//
// Price policy: when a bound is active, records whose price text cannot be
// parsed are logged and skipped; without a bound every record stays in.
func (s *CatalogService) Search(f models.VehicleFilter) ([]models.Vehicle, error) {
	recs, err := s.Vehicles.Search(f)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if f.HasPriceBound() {
		kept := recs[:0]
		for _, rec := range recs {
			in, ok := price.InBounds(rec.Price, f.PriceMin, f.PriceMax)
			if !ok {
				log.Printf("[catalog] unparseable price for vehicle %d: %q", rec.ID, rec.Price)
				continue
			}
			if in {
				kept = append(kept, rec)
			}
		}
		recs = kept
	}

	// The store handled featured/year; the price key needs the parsed value.
	// Unparseable prices sort last within their (featured, year) group.
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		pa, oka := price.Parse(a.Price)
		pb, okb := price.Parse(b.Price)
		if oka != okb {
			return oka
		}
		if !oka {
			return false
		}
		return pa.LessThan(pb)
	})

	return models.VehiclesFromRecords(recs), nil
}

// ListCategories derives the category set from the current vehicle records:
// distinct non-empty category names in first-seen order (records iterate by
// id), each given a positional 1-based id. The ids are not stable across
// inserts; nothing persists them.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	out := make([]models.Category, 0, len(names))
	for i, name := range names {
		out = append(out, models.Category{
			ID:          i + 1,
			Name:        name,
			Description: fmt.Sprintf("Products in %s category", name),
		})
	}
	return out, nil
}

// GetCategory resolves a positional id against the freshly derived set.
func (s *CatalogService) GetCategory(id int) (models.Category, error) {
	names, err := s.categoryNames()
	if err != nil {
		return models.Category{}, err
	}
	if id < 1 || id > len(names) {
		return models.Category{}, apperr.NotFound("category not found")
	}
	name := names[id-1]
	return models.Category{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Products in %s category", name),
	}, nil
}

func (s *CatalogService) categoryNames() ([]string, error) {
	recs, err := s.Vehicles.ListAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	seen := map[string]bool{}
	names := []string{}
	for _, rec := range recs {
		if rec.CategoryName == "" || seen[rec.CategoryName] {
			continue
		}
		seen[rec.CategoryName] = true
		names = append(names, rec.CategoryName)
	}
	return names, nil
}

// ListGroupedByCategory returns every vehicle bucketed under its category
// name, buckets in the same first-seen order the category ids use.
func (s *CatalogService) ListGroupedByCategory() ([]models.ProductCategory, error) {
	recs, err := s.Vehicles.ListAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	index := map[string]int{}
	out := []models.ProductCategory{}
	for _, rec := range recs {
		name := rec.CategoryName
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, models.ProductCategory{CategoryName: name, Products: []models.Vehicle{}})
		}
		out[i].Products = append(out[i].Products, models.VehicleFromRecord(rec))
	}
	return out, nil
}

func (s *CatalogService) Create(v models.Vehicle) (models.Vehicle, error) {
	if v.Name == "" {
		return models.Vehicle{}, apperr.Validation("name is required")
	}
	rec := v.Record()
	if rec.Status == "" {
		rec.Status = StatusAvailable
	}
	created, err := s.Vehicles.Create(rec)
	if err != nil {
		return models.Vehicle{}, apperr.Internal(err)
	}
	return models.VehicleFromRecord(created), nil
}

// Update applies a partial patch: only fields present in the body change.
func (s *CatalogService) Update(id int64, patch models.VehiclePatch) (models.Vehicle, error) {
	rec, err := s.Vehicles.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, apperr.NotFound("vehicle not found")
	}
	if err != nil {
		return models.Vehicle{}, apperr.Internal(err)
	}
	updated, err := s.Vehicles.Update(patch.Apply(rec))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, apperr.NotFound("vehicle not found")
	}
	if err != nil {
		return models.Vehicle{}, apperr.Internal(err)
	}
	return models.VehicleFromRecord(updated), nil
}

func (s *CatalogService) Delete(id int64) error {
	err := s.Vehicles.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("vehicle not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *CatalogService) DistinctMakes() ([]string, error) {
	makes, err := s.Vehicles.DistinctMakes(StatusAvailable)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return makes, nil
}

func (s *CatalogService) DistinctModels(make string) ([]string, error) {
	ms, err := s.Vehicles.DistinctModelsByMake(make, StatusAvailable)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ms, nil
}

// InventoryStatus mirrors the aggregate the storefront polls before rendering
// the catalog.
type InventoryStatus struct {
	TotalVehicles    int    `json:"totalVehicles"`
	VehiclesInStock  int    `json:"vehiclesInStock"`
	NewVehicles      int    `json:"newVehicles"`
	UsedVehicles     int    `json:"usedVehicles"`
	FeaturedVehicles int    `json:"featuredVehicles"`
	Status           string `json:"status"`
	IsEmpty          bool   `json:"isEmpty"`
	HasStock         bool   `json:"hasStock"`
}

func (s *CatalogService) Status() (InventoryStatus, error) {
	c, err := s.Vehicles.Counts()
	if err != nil {
		return InventoryStatus{}, apperr.Internal(err)
	}
	st := "HAS_STOCK"
	switch {
	case c.Total == 0:
		st = "EMPTY"
	case c.InStock == 0:
		st = "NO_STOCK"
	}
	return InventoryStatus{
		TotalVehicles:    c.Total,
		VehiclesInStock:  c.InStock,
		NewVehicles:      c.New,
		UsedVehicles:     c.Used,
		FeaturedVehicles: c.Featured,
		Status:           st,
		IsEmpty:          c.Total == 0,
		HasStock:         c.InStock > 0,
	}, nil
}
