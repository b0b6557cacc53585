package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-fuelstation/internal/handler"
	"go-fuelstation/internal/middleware"
	"go-fuelstation/internal/repository"
	"go-fuelstation/internal/service"
	"go-fuelstation/internal/ws"
	"go-fuelstation/pkg/config"
	"go-fuelstation/pkg/database"
	"go-fuelstation/pkg/jwt"
	"go-fuelstation/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. Load config (.env, config.yaml, environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLog, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLog.Sync()

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		zapLog.Fatal("database unavailable", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			zapLog.Fatal("migration failed", zap.Error(err))
		}
	}
	zapLog.Info("database connection established")

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(zapLog.Named("ws"))
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	fuelRepo := repository.NewFuelTypeRepo(db)
	pumpRepo := repository.NewPumpRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	credentialRepo := repository.NewCredentialRepo(db)

	tokens := jwt.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	fuelService := service.NewFuelService(fuelRepo, wsHub, zapLog.Named("fuel"))
	pumpService := service.NewPumpService(pumpRepo, fuelRepo, wsHub, zapLog.Named("pump"))
	txService := service.NewTransactionService(pumpRepo, txRepo, wsHub, zapLog.Named("transaction"))
	sessionService := service.NewSessionService(credentialRepo, tokens, zapLog.Named("session"))
	dashService := service.NewDashboardService(fuelRepo, pumpRepo, txRepo)

	handlers := handler.Handlers{
		Transactions: handler.NewTransactionHandler(txService),
		Pumps:        handler.NewPumpHandler(pumpService),
		FuelTypes:    handler.NewFuelHandler(fuelService),
		Auth:         handler.NewAuthHandler(sessionService),
		Dashboard:    handler.NewDashboardHandler(dashService),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(zapLog),
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 6. Routes
	handler.RegisterRoutes(app, handlers, handler.RouterConfig{
		Tokens:      tokens,
		EnforceAuth: cfg.Auth.Enforce,
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

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

	// 7. Graceful Shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		if err := app.Listen(addr); err != nil {
			zapLog.Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zapLog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zapLog.Info("server exited")
}
