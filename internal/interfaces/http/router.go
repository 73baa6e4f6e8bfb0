package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/auth"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	BundleUC     *usecase.BundleUseCase
	StorefrontUC *usecase.StorefrontUseCase
	Tokens       *jwt.Service
	Users        callerLoader
}

// Router registra las rutas de la API. Las rutas públicas van primero; el
// resto queda detrás de RequireAuth.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)
	bundleHandler := NewBundleHandler(deps.BundleUC)
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Tienda pública
	api.Get("/companies/:id/public", companyHandler.GetPublic)
	api.Get("/categories/public/:companyId", categoryHandler.PublicList)
	ecommerce := api.Group("/ecommerce")
	ecommerce.Get("/detail/:id", storefrontHandler.Detail)
	ecommerce.Get("/:companyId", storefrontHandler.Catalog)

	// Rutas protegidas (requieren Bearer Token o cookie de sesión)
	protected := api.Group("/", RequireAuth(deps.Tokens, deps.Users))
	elevated := RequireRole(entity.RoleAdmin, entity.RoleSuperadmin)

	protected.Get("/auth/me", authHandler.Me)

	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", elevated, userHandler.Create)
	users.Put("/change-company/:companyId", userHandler.ChangeCompany)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", elevated, userHandler.Update)
	users.Delete("/:id", elevated, userHandler.Delete)

	companies := protected.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", elevated, companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", elevated, companyHandler.Update)
	companies.Delete("/:id", elevated, companyHandler.Delete)

	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", elevated, categoryHandler.Delete)

	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/by-ids", productHandler.GetByIDs)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", elevated, productHandler.Delete)

	bundles := protected.Group("/bundles")
	bundles.Get("/", bundleHandler.List)
	bundles.Post("/", bundleHandler.Create)
	bundles.Get("/:id", bundleHandler.GetByID)
	bundles.Put("/:id", bundleHandler.Update)
	bundles.Delete("/:id", elevated, bundleHandler.Delete)
}
