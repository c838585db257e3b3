package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/PrassV/Propo-Staging-sub002/internal/batch"
	"github.com/PrassV/Propo-Staging-sub002/internal/config"
	"github.com/PrassV/Propo-Staging-sub002/internal/database"
	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
	"github.com/PrassV/Propo-Staging-sub002/internal/middlewares"
	"github.com/PrassV/Propo-Staging-sub002/internal/ratelimit"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/routes"
	"github.com/PrassV/Propo-Staging-sub002/internal/scheduler"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
	"github.com/PrassV/Propo-Staging-sub002/internal/storage"
)

// NewServer wires the application together and returns the HTTP server
// alongside the billing scheduler, which the caller starts and stops.
func NewServer() (*http.Server, *scheduler.Scheduler) {
	cfg := loadConfig()

	pool, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection and fail fast with a clear message
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", cfg.Redis.Addr, err)
		}
		log.Println("Connected to Redis successfully")
	}

	store, err := storage.NewStore(cfg.Storage.Root)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	signer := storage.NewSigner([]byte(cfg.Storage.URLSecret), cfg.Storage.URLTTL(), cfg.Storage.URLRefreshMargin())
	urlCache := storage.NewURLCache(rdb, signer)

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	sessionRepo := repositories.NewSessionRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)
	propertyRepo := repositories.NewPropertyRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	leaseRepo := repositories.NewLeaseRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool)
	vendorRepo := repositories.NewVendorRepository(pool)
	documentRepo := repositories.NewDocumentRepository(pool)

	batchOpts := batch.Options{
		ChunkSize: cfg.Scheduler.BatchSize,
		Delay:     cfg.Scheduler.BatchDelay(),
	}

	userService := services.NewUserService(userRepo, sessionRepo, redisRepo, cfg.Auth)
	propertyService := services.NewPropertyService(propertyRepo)
	unitService := services.NewUnitService(unitRepo, propertyRepo, leaseRepo)
	tenantService := services.NewTenantService(tenantRepo)
	leaseService := services.NewLeaseService(leaseRepo, unitRepo, tenantRepo)
	paymentService := services.NewPaymentService(paymentRepo, leaseRepo, batchOpts)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo, unitRepo, tenantRepo, vendorRepo)
	vendorService := services.NewVendorService(vendorRepo)
	documentService := services.NewDocumentService(documentRepo, propertyRepo, tenantRepo, store, signer, urlCache)

	sched := scheduler.NewScheduler(paymentService, sessionRepo, cfg.Scheduler)

	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(userService),
		User:        handlers.NewUserHandler(userService),
		Property:    handlers.NewPropertyHandler(propertyService),
		Unit:        handlers.NewUnitHandler(unitService),
		Tenant:      handlers.NewTenantHandler(tenantService),
		Lease:       handlers.NewLeaseHandler(leaseService, paymentService),
		Payment:     handlers.NewPaymentHandler(paymentService),
		Maintenance: handlers.NewMaintenanceHandler(maintenanceService),
		Vendor:      handlers.NewVendorHandler(vendorService),
		Document:    handlers.NewDocumentHandler(documentService),
		System:      handlers.NewSystemHandler(sched),
	}

	authenticate := middlewares.Authenticate([]byte(cfg.Auth.AccessTokenSecret), redisRepo)
	requireAdmin := middlewares.RequireAdmin(userRepo)

	limiter := ratelimit.NewLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.RequestsPerHour, cfg.RateLimit.Enabled)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middlewares.RateLimit(limiter))

	routes.RegisterRoutes(router, h, authenticate, requireAdmin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	return server, sched
}

// loadConfig resolves the YAML config named by CONFIG_PATH (default
// config.yaml), falling back to defaults plus environment overrides when no
// file exists.
func loadConfig() *config.Config {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
