package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-invoice-pos/internal/handler"
	"go-invoice-pos/internal/middleware"
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/service"
	"go-invoice-pos/internal/ws"
	"go-invoice-pos/pkg/database"
	"go-invoice-pos/pkg/response"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleItem{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.Payment{},
		&model.Expense{},
		&model.DocumentSequence{},
		&model.AppVersion{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// 3. Seed default users, walk-in customer, and categories
	seedDefaults(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	seqRepo := repository.NewSequenceRepo(db)
	reportRepo := repository.NewReportRepo(db)
	appVersionRepo := repository.NewAppVersionRepo(db)

	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(db, productRepo, wsHub)
	saleService := service.NewSaleService(db, saleRepo, productRepo, customerRepo, paymentRepo, seqRepo, wsHub)
	purchaseService := service.NewPurchaseService(db, purchaseRepo, productRepo, supplierRepo, paymentRepo, seqRepo, wsHub)
	reportService := service.NewReportService(reportRepo, expenseRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	expenseHandler := handler.NewExpenseHandler(expenseRepo)
	reportHandler := handler.NewReportHandler(reportService)
	appVersionHandler := handler.NewAppVersionHandler(appVersionRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Invoice POS v1.0",
		ErrorHandler: response.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	api.Get("/app-versions/latest", appVersionHandler.GetLatest)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.UpdatePassword)
	protected.Post("/auth/register", adminOnly, authHandler.Register)
	protected.Get("/users", adminOnly, authHandler.GetUsers)
	protected.Put("/users/:id/status", adminOnly, authHandler.UpdateUserStatus)

	protected.Get("/categories", categoryHandler.GetCategories)
	protected.Get("/categories/:id", categoryHandler.GetCategory)
	protected.Post("/categories", adminOnly, categoryHandler.CreateCategory)
	protected.Put("/categories/:id", adminOnly, categoryHandler.UpdateCategory)
	protected.Delete("/categories/:id", adminOnly, categoryHandler.DeleteCategory)

	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/barcode/:barcode", productHandler.GetProductByBarcode)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", adminOnly, productHandler.CreateProduct)
	protected.Put("/products/:id", adminOnly, productHandler.UpdateProduct)
	protected.Delete("/products/:id", adminOnly, productHandler.DeleteProduct)
	protected.Put("/products/:id/stock", adminOnly, productHandler.UpdateStock)

	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", adminOnly, customerHandler.DeleteCustomer)

	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Get("/suppliers/:id", supplierHandler.GetSupplier)
	protected.Post("/suppliers", adminOnly, supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", adminOnly, supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", adminOnly, supplierHandler.DeleteSupplier)

	protected.Get("/sales", saleHandler.GetSales)
	protected.Get("/sales/invoice/:invoiceNumber", saleHandler.GetSaleByInvoice)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Post("/sales", saleHandler.CreateSale)
	protected.Post("/sales/:id/payments", saleHandler.AddPayment)
	protected.Get("/sales/:id/payments", saleHandler.GetPayments)

	protected.Get("/purchases", purchaseHandler.GetPurchases)
	protected.Get("/purchases/:id", purchaseHandler.GetPurchase)
	protected.Post("/purchases", adminOnly, purchaseHandler.CreatePurchase)
	protected.Post("/purchases/:id/payments", adminOnly, purchaseHandler.AddPayment)
	protected.Get("/purchases/:id/payments", purchaseHandler.GetPayments)

	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Get("/expenses/:id", expenseHandler.GetExpense)
	protected.Post("/expenses", expenseHandler.CreateExpense)
	protected.Put("/expenses/:id", adminOnly, expenseHandler.UpdateExpense)
	protected.Delete("/expenses/:id", adminOnly, expenseHandler.DeleteExpense)

	protected.Get("/reports/dashboard", reportHandler.GetDashboard)
	protected.Get("/reports/sales", reportHandler.GetSalesReport)
	protected.Get("/reports/profit", adminOnly, reportHandler.GetProfitReport)
	protected.Get("/reports/expenses", adminOnly, reportHandler.GetExpenseReport)

	protected.Get("/app-versions", appVersionHandler.GetVersions)
	protected.Post("/app-versions", adminOnly, appVersionHandler.CreateVersion)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaults creates the default users, the walk-in customer, and a
// starter category set if they don't exist yet.
func seedDefaults(db *gorm.DB) {
	seedUser(db, "Administrator", "admin@invoicepos.com", "admin123", model.RoleAdmin)
	seedUser(db, "Cashier", "cashier@invoicepos.com", "cashier123", model.RoleCashier)

	var customerCount int64
	db.Model(&model.Customer{}).Where("phone = ?", service.WalkInPhone).Count(&customerCount)
	if customerCount == 0 {
		walkIn := model.Customer{
			Name:  service.WalkInName,
			Phone: service.WalkInPhone,
			Notes: "Default customer for anonymous counter sales",
		}
		if err := db.Create(&walkIn).Error; err != nil {
			log.Printf("Warning: failed to seed walk-in customer: %v", err)
		} else {
			log.Println("✅ Walk-in customer created")
		}
	}

	categories := []model.Category{
		{Name: "Electronics", Description: "Electronic items and accessories"},
		{Name: "Groceries", Description: "Food and daily essentials"},
		{Name: "Stationery", Description: "Office and school supplies"},
		{Name: "Beverages", Description: "Drinks and refreshments"},
	}
	for _, category := range categories {
		var count int64
		db.Model(&model.Category{}).Where("name = ?", category.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Warning: failed to seed category %s: %v", category.Name, err)
			}
		}
	}
}

func seedUser(db *gorm.DB, name, email, password string, role model.UserRole) {
	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	user := model.User{Name: name, Email: email, Role: role, IsActive: true}
	if err := user.SetPassword(password); err != nil {
		log.Printf("Warning: failed to hash password for %s: %v", email, err)
		return
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Warning: failed to seed user %s: %v", email, err)
		return
	}
	log.Printf("✅ Default %s user created (%s)", role, email)
}
