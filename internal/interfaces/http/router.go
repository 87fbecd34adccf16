package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/assets"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/employees"
	"github.com/jhoicas/Gestion-api/internal/application/expenses"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	FinanceUC  *finance.FinanceUseCase
	AssetsUC   *assets.AssetsUseCase
	ProductUC  *inventory.ProductUseCase
	StockUC    *inventory.StockUseCase
	SalesUC    *sales.SalesUseCase
	ExpensesUC *expenses.ExpensesUseCase
	EmployeeUC *employees.EmployeesUseCase
	ReportsUC  *reports.ReportsUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Finanzas, activos y reportes requieren
// rol admin o accountant; el resto basta con un token válido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	ledgers := RequireRoles(entity.RoleAdmin, entity.RoleAccountant)

	// Finance (protegido, solo admin/accountant)
	financeGroup := protected.Group("/finance", ledgers)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup.Post("/accounts", financeHandler.CreateAccount)
	financeGroup.Get("/accounts", financeHandler.ListAccounts)
	financeGroup.Put("/accounts/:id", financeHandler.UpdateAccount)
	financeGroup.Post("/accounts/:id/transactions", financeHandler.AddTransaction)
	financeGroup.Get("/accounts/:id/transactions", financeHandler.ListTransactions)
	financeGroup.Get("/accounts/:id/summary", financeHandler.Summary)
	financeGroup.Delete("/transactions/:txID", financeHandler.DeleteTransaction)

	// Assets (protegido, solo admin/accountant)
	assetsGroup := protected.Group("/assets", ledgers)
	assetsHandler := NewAssetsHandler(deps.AssetsUC)
	assetsGroup.Post("/vehicles", assetsHandler.CreateVehicle)
	assetsGroup.Get("/vehicles", assetsHandler.ListVehicles)
	assetsGroup.Post("/vehicles/:id/transactions", assetsHandler.AddTransaction)
	assetsGroup.Get("/vehicles/:id/transactions", assetsHandler.ListTransactions)
	assetsGroup.Get("/vehicles/:id/summary", assetsHandler.Summary)
	assetsGroup.Delete("/transactions/:txID", assetsHandler.DeleteTransaction)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/categories", productHandler.CreateCategory)
	products.Get("/categories", productHandler.ListCategories)
	products.Get("/low-stock", productHandler.LowStock)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRoles(entity.RoleAdmin), productHandler.Delete)
	products.Get("/:id/stock", productHandler.StockStatus)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	invGroup.Post("/stock-in", inventoryHandler.StockIn)
	invGroup.Post("/stock-out", inventoryHandler.StockOut)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Post("/boxes/receive", inventoryHandler.ReceiveBoxes)
	invGroup.Post("/boxes/consume", inventoryHandler.ConsumeWeight)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Post("/:id/items", salesHandler.AddItem)
	salesGroup.Delete("/:id/items/:itemID", salesHandler.RemoveItem)

	// Expenses (protegido)
	expenseGroup := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpensesUC)
	expenseGroup.Post("/categories", expenseHandler.CreateCategory)
	expenseGroup.Get("/categories", expenseHandler.ListCategories)
	expenseGroup.Post("/", expenseHandler.Create)
	expenseGroup.Get("/", expenseHandler.List)
	expenseGroup.Delete("/:id", expenseHandler.Delete)

	// Employees (protegido)
	employeeGroup := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employeeGroup.Get("/attendance", employeeHandler.RecentAttendance)
	employeeGroup.Post("/", employeeHandler.Create)
	employeeGroup.Get("/", employeeHandler.List)
	employeeGroup.Get("/:id", employeeHandler.GetByID)
	employeeGroup.Delete("/:id", RequireRoles(entity.RoleAdmin), employeeHandler.Delete)
	employeeGroup.Post("/:id/clock-in", employeeHandler.ClockIn)
	employeeGroup.Post("/:id/clock-out", employeeHandler.ClockOut)

	// Reports (protegido, solo admin/accountant)
	reportGroup := protected.Group("/reports", ledgers)
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportGroup.Get("/summary", reportHandler.Summary)
	reportGroup.Get("/daily", reportHandler.DailySeries)
}
