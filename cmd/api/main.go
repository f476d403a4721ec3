package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/distribuidora-api/docs"
	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/catalogimport"
	"github.com/jhoicas/distribuidora-api/internal/application/directory"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/application/purchasing"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/domain/purchase"
	infrapdf "github.com/jhoicas/distribuidora-api/internal/infrastructure/pdf"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/distribuidora-api/internal/interfaces/http"
	"github.com/jhoicas/distribuidora-api/pkg/config"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("default_vat", cfg.Tax.DefaultVATPercent.String()).
		Bool("bonification", cfg.Tax.BonificationEnabled).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	calc := purchase.NewCalculator(purchase.Config{
		DefaultVATPercent:   cfg.Tax.DefaultVATPercent,
		BonificationEnabled: cfg.Tax.BonificationEnabled,
	})

	companyUC := usecase.NewCompanyUseCase(companyRepo, cfg.Tax.StrictCUIT)
	productUC := usecase.NewProductUseCase(productRepo, cfg.Tax.DefaultVATPercent)
	userUC := usecase.NewUserUseCase(userRepo)
	movementUC := inventory.NewMovementUseCase(productRepo, movementRepo)
	customerUC := directory.NewCustomerUseCase(customerRepo, cfg.Tax.StrictCUIT)
	supplierUC := directory.NewSupplierUseCase(supplierRepo, cfg.Tax.StrictCUIT)
	purchaseUC := purchasing.NewPurchaseUseCase(txRunner, calc, supplierRepo, productRepo, purchaseRepo, log)
	// PDF: comprobante de la factura de compra
	pdfUC := purchasing.NewPDFUseCase(purchaseRepo, companyRepo, supplierRepo, productRepo, infrapdf.NewMarotoPDFGenerator())
	importUC := catalogimport.NewImportUseCase(productRepo, txRunner, catalogimport.Config{
		PreviewTTL:        time.Duration(cfg.Import.PreviewTTLMinutes) * time.Minute,
		DefaultVATPercent: cfg.Tax.DefaultVATPercent,
	}, log)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 << 20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		ProductUC:  productUC,
		UserUC:     userUC,
		CustomerUC: customerUC,
		SupplierUC: supplierUC,
		PurchaseUC: purchaseUC,
		PDFUC:      pdfUC,
		ImportUC:   importUC,
		MovementUC: movementUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
