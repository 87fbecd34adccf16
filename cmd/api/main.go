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

	"github.com/jhoicas/Gestion-api/internal/application/assets"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/employees"
	"github.com/jhoicas/Gestion-api/internal/application/expenses"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewBankAccountRepository(pool)
	bankTxRepo := postgres.NewBankTransactionRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	vehicleTxRepo := postgres.NewVehicleTransactionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseCategoryRepo := postgres.NewExpenseCategoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	salesTxRunner := postgres.NewSalesTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	financeUC := finance.NewFinanceUseCase(accountRepo, bankTxRepo)
	assetsUC := assets.NewAssetsUseCase(vehicleRepo, vehicleTxRepo)
	productUC := inventory.NewProductUseCase(productRepo, categoryRepo)
	stockUC := inventory.NewStockUseCase(txRunner, productRepo, movementRepo, log)
	salesUC := sales.NewSalesUseCase(salesTxRunner, saleRepo, cfg.Sales.VATRate, log)
	expensesUC := expenses.NewExpensesUseCase(expenseCategoryRepo, expenseRepo)
	employeesUC := employees.NewEmployeesUseCase(employeeRepo, attendanceRepo)
	reportsUC := reports.NewReportsUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		FinanceUC:  financeUC,
		AssetsUC:   assetsUC,
		ProductUC:  productUC,
		StockUC:    stockUC,
		SalesUC:    salesUC,
		ExpensesUC: expensesUC,
		EmployeeUC: employeesUC,
		ReportsUC:  reportsUC,
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
