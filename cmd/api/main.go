package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/djengua/ecommerce-api/internal/application/auth"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
	"github.com/djengua/ecommerce-api/internal/infrastructure/postgres"
	httpRouter "github.com/djengua/ecommerce-api/internal/interfaces/http"
	"github.com/djengua/ecommerce-api/pkg/config"
	"github.com/djengua/ecommerce-api/pkg/jwt"
	"github.com/djengua/ecommerce-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tokens, err := jwt.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpirationDays, cfg.JWT.RememberDays)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)

	authUC := auth.NewUseCase(userRepo, companyRepo, tokens)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, companyRepo)
	bundleUC := usecase.NewBundleUseCase(bundleRepo, productRepo, categoryRepo, companyRepo)
	storefrontUC := usecase.NewStorefrontUseCase(productRepo, categoryRepo, companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Djengua API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CompanyUC:    companyUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		BundleUC:     bundleUC,
		StorefrontUC: storefrontUC,
		Tokens:       tokens,
		Users:        userRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
