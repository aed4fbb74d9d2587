package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-hq-ordering/internal/handler"
	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"
	"go-hq-ordering/internal/service"
	"go-hq-ordering/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Store{},
		&model.Staff{},
		&model.Maker{},
		&model.Category{},
		&model.Product{},
		&model.HqInventory{},
		&model.InventoryHistory{},
		&model.Order{},
		&model.OrderItem{},
	)

	// 3. Dependency Injection (Wiring Layers)
	storeRepo := repository.NewStoreRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	makerRepo := repository.NewMakerRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	invRepo := repository.NewInventoryRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	resolver := service.NewAssignmentResolver(staffRepo)
	invService := service.NewInventoryService(productRepo, invRepo)
	orderService := service.NewOrderService(orderRepo, invService, resolver)
	purchasingService := service.NewPurchasingService(orderRepo, invRepo, resolver)
	dashService := service.NewDashboardService(orderRepo, invRepo)

	invHandler := handler.NewInventoryHandler(invService)
	orderHandler := handler.NewOrderHandler(orderService)
	purchasingHandler := handler.NewPurchasingHandler(purchasingService)
	portalHandler := handler.NewStorePortalHandler(storeRepo, productRepo, orderService)
	historyHandler := handler.NewHistoryHandler(orderService, invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	masterHandler := handler.NewMasterHandler(storeRepo, staffRepo, makerRepo, categoryRepo)
	productHandler := handler.NewProductHandler(productRepo)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "HQ Ordering v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	api := app.Group("/api/v1")

	// Dashboard
	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	// Master data
	api.Get("/stores", masterHandler.GetStores)
	api.Post("/stores", masterHandler.CreateStore)
	api.Put("/stores/:id", masterHandler.UpdateStore)

	api.Get("/staff", masterHandler.GetStaff)
	api.Post("/staff", masterHandler.CreateStaff)
	api.Put("/staff/:id", masterHandler.UpdateStaff)

	api.Get("/makers", masterHandler.GetMakers)
	api.Post("/makers", masterHandler.CreateMaker)
	api.Put("/makers/:id", masterHandler.UpdateMaker)

	api.Get("/categories", masterHandler.GetCategories)
	api.Post("/categories", masterHandler.CreateCategory)
	api.Put("/categories/:id", masterHandler.UpdateCategory)

	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	// Inventory ledger
	api.Get("/inventory", invHandler.GetInventory)
	api.Post("/inventory/:productId/movements", invHandler.CreateMovement)
	api.Get("/inventory/alerts", invHandler.GetAlerts)

	// History
	api.Get("/history/orders", historyHandler.GetOrderHistory)
	api.Delete("/history/orders", historyHandler.DeleteOrderHistory)
	api.Get("/history/inventory", historyHandler.GetInventoryHistory)
	api.Delete("/history/inventory", historyHandler.DeleteInventoryHistory)

	// Order lifecycle
	api.Get("/orders", orderHandler.GetOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Post("/orders/:id/process", orderHandler.ProcessOrder)
	api.Post("/orders/:id/complete", orderHandler.CompleteOrder)
	api.Post("/orders/:id/cancel", orderHandler.CancelOrder)

	// Purchasing list
	api.Get("/purchasing", purchasingHandler.GetPurchasingList)

	// Public store portal (unauthenticated by design)
	api.Get("/store-portal/:code", portalHandler.GetPortal)
	api.Post("/store-portal/:code/orders", portalHandler.SubmitOrder)

	// 6. Graceful Shutdown
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
