package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/catalogimport"
	"github.com/jhoicas/distribuidora-api/internal/application/directory"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/application/purchasing"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
)

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleCompras  = "compras"
	RoleVendedor = "vendedor"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *directory.CustomerUseCase
	SupplierUC *directory.SupplierUseCase
	PurchaseUC *purchasing.PurchaseUseCase
	PDFUC      *purchasing.PDFUseCase
	ImportUC   *catalogimport.ImportUseCase
	MovementUC *inventory.MovementUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (alta pública para el onboarding)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	writers := RequireRole(RoleAdmin, RoleCompras)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", NewInventoryHandler(deps.MovementUC).Movements)
	products.Post("/", writers, productHandler.Create)
	products.Put("/:id", writers, productHandler.Update)

	// Clientes: también los gestiona el rol vendedor.
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(RoleAdmin), customerHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", writers, supplierHandler.Create)
	suppliers.Put("/:id", writers, supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(RoleAdmin), supplierHandler.Delete)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.PDFUC)
	purchases.Post("/totals", purchaseHandler.Totals)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Get("/:id/pdf", purchaseHandler.DownloadPDF)
	purchases.Post("/", writers, purchaseHandler.Create)

	catalog := protected.Group("/catalog/import", writers)
	catalogHandler := NewCatalogHandler(deps.ImportUC)
	catalog.Post("/preview", catalogHandler.Preview)
	catalog.Post("/:id/apply", catalogHandler.Apply)
}
