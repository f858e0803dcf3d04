package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/sweetrecords/storefront/internal/handlers"
	"github.com/sweetrecords/storefront/internal/images"
	"github.com/sweetrecords/storefront/internal/mailer"
	"github.com/sweetrecords/storefront/internal/repository"
	"github.com/sweetrecords/storefront/internal/service"
	"github.com/sweetrecords/storefront/pkg/config"
	"github.com/sweetrecords/storefront/pkg/database"
	"github.com/sweetrecords/storefront/pkg/events"
	"github.com/sweetrecords/storefront/pkg/logger"
	mw "github.com/sweetrecords/storefront/pkg/middleware"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Connect to database and apply migrations
	if err := database.Migrate(ctx, cfg.Database.URL); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Connect to Redis (OTP ledger)
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Failed to parse Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Connect to event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Image hosting
	imageStore, err := images.NewS3Store(ctx, cfg.Images)
	if err != nil {
		logger.Error("Failed to configure image store", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, cfg.Store.QueryTimeout)
	otpRepo := repository.NewOTPRepository(redisClient, cfg.Store.QueryTimeout)
	cartRepo := repository.NewCartRepository(pool, cfg.Store.QueryTimeout)
	productRepo := repository.NewProductRepository(pool, cfg.Store.QueryTimeout)

	// Initialize services
	mailService := selectMailer(cfg)
	authService := service.NewAuthService(userRepo, otpRepo, mailService, eventBus, cfg)
	cartService := service.NewCartService(cartRepo, eventBus)
	catalogService := service.NewCatalogService(productRepo, imageStore, eventBus)
	orderService := service.NewOrderService(mailService, eventBus, cfg)

	// Initialize handlers
	h := handlers.New(authService, cartService, catalogService, orderService, cfg)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("storefront"))
	r.Use(mw.Logging)
	r.Use(mw.NoStore)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	// Routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register/request", h.RegisterRequest)
		r.Post("/register/confirm", h.RegisterConfirm)
		r.Post("/signin", h.SignIn)
		r.Post("/logout", h.Logout)
		r.With(h.RequireSession).Get("/me", h.Me)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Post("/", h.AddCartItem)
		r.Get("/", h.ListCart)
		r.Delete("/", h.RemoveCartItem)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.With(h.RequireSession, h.RequireAdmin).Post("/", h.CreateProduct)
		r.With(h.RequireSession, h.RequireAdmin).Delete("/{id}", h.DeleteProduct)
	})

	r.Post("/orders", h.PlaceOrder)
	r.Post("/contact", h.Contact)

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down storefront...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Storefront shutdown error", "error", err)
		}
	}()

	logger.Info("Starting storefront", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Storefront server error", "error", err)
		os.Exit(1)
	}
}

func selectMailer(cfg *config.Config) mailer.Service {
	switch {
	case cfg.Email.DevMode:
		return mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, "Sweet Records", cfg.Email.SMTPFrom)
	default:
		return mailer.NewSMTPMailer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPFrom,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPass,
			cfg.Email.SMTPUseTLS,
		)
	}
}
