package main

import (
	"log"
	"os"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/config"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/handlers"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cartstore"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/catalog"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/chatbot"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/ws"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/middleware"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		if err := config.ResetAndMigrate(db, cfg); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
	} else {
		if err := config.Migrate(db, cfg); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
	}

	var store cartstore.Store
	if cfg.RedisAddr != "" {
		store = cartstore.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
	} else {
		log.Println("REDIS_ADDR not set, carts are kept in memory")
		store = cartstore.NewMemoryStore()
	}

	repo := catalog.NewGormRepository(db)
	bot := chatbot.NewHTTPBackend(cfg.ChatBackendURL)

	hub := ws.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName:      "UVC Solar Storefront",
		ServerHeader: "UVC Solar Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app, cfg)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Product images
	app.Static("/uploads", "./uploads")

	authHandler := handlers.NewAuthHandler(db, cfg.JWTExpiration)
	productHandler := handlers.NewProductHandler(db, repo)
	categoryHandler := handlers.NewCategoryHandler(db, repo)
	cartHandler := handlers.NewCartHandler(store, repo)
	checkoutHandler := handlers.NewCheckoutHandler(store, handlers.NewGormOrders(db), cfg.WhatsAppNumber)
	orderHandler := handlers.NewOrderHandler(db)
	chatHandler := handlers.NewChatHandler(hub, db, bot, cfg.WhatsAppNumber)
	uploadHandler := handlers.NewUploadHandler()

	api := app.Group("/api")

	// Public storefront
	api.Post("/auth/login", authHandler.Login)
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/categories", categoryHandler.GetCategories)

	api.Get("/cart", cartHandler.GetCart)
	api.Post("/cart/items", cartHandler.AddItem)
	api.Put("/cart/items/:productID", cartHandler.UpdateItem)
	api.Delete("/cart/items/:productID", cartHandler.RemoveItem)
	api.Delete("/cart", cartHandler.ClearCart)
	api.Post("/checkout", checkoutHandler.Checkout)

	api.Post("/chat/session", chatHandler.StartSession)
	api.Post("/chat", chatHandler.SendMessage)
	api.Get("/chat/whatsapp", chatHandler.WhatsAppLink)

	// Live support chat
	app.Use("/ws", chatHandler.WebSocketUpgradeMiddleware)
	app.Get("/ws/chat", chatHandler.VisitorHandler())
	app.Get("/ws/agent", utils.AuthMiddleware, utils.AdminOnly, chatHandler.AgentHandler())

	// Admin panel
	admin := api.Group("/admin", utils.AuthMiddleware, utils.AdminOnly)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)
	admin.Post("/upload", uploadHandler.UploadImage)
	admin.Get("/orders", orderHandler.ListOrders)
	admin.Patch("/orders/:id/status", orderHandler.UpdateOrderStatus)
	admin.Get("/chat/sessions", chatHandler.ListSessions)
	admin.Get("/chat/sessions/:sessionID/messages", chatHandler.GetSessionMessages)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
