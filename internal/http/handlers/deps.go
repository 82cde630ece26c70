package handlers

import (
	"driveline/internal/repos"
	"driveline/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	VehicleHandler  *VehicleHandler
	CategoryHandler *CategoryHandler
	CustomerHandler *CustomerHandler
	OrderHandler    *OrderHandler
	CartHandler     *CartHandler
	AuthHandler     *AuthHandler
	Auth            *services.AuthService
}

func NewDeps(db *sqlx.DB) *Deps {
	vehicleRepo := repos.NewVehicleRepo(db)
	customerRepo := repos.NewCustomerRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(vehicleRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(orderRepo, vehicleRepo)
	authSvc := services.NewAuthService(userRepo)

	return &Deps{
		VehicleHandler:  &VehicleHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		CustomerHandler: &CustomerHandler{Customers: customerSvc},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
		CartHandler:     &CartHandler{Orders: orderSvc},
		AuthHandler:     &AuthHandler{Auth: authSvc},
		Auth:            authSvc,
	}
}
