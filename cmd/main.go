package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"devdirectory/internal/adapter/cache"
	handlers "devdirectory/internal/adapter/handler/http"
	"devdirectory/internal/adapter/jsonfile"
	"devdirectory/internal/adapter/logger"
	"devdirectory/internal/adapter/postgres/repository"
	"devdirectory/internal/adapter/prometheus"
	redisadapter "devdirectory/internal/adapter/redis"
	"devdirectory/internal/config"
	"devdirectory/internal/core/ports"
	"devdirectory/internal/core/services"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

// @title Developer Directory API
// @version 2.0
// @description REST API for registering and browsing developer profiles

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":     cfg.App.Name,
		"env":     cfg.App.Env,
		"storage": cfg.Storage.Driver,
	})

	// Storage
	var (
		developerRepo ports.DeveloperRepository
		userRepo      ports.UserRepository
	)

	switch cfg.Storage.Driver {
	case "jsonfile":
		store := jsonfile.NewStore(cfg.Storage.DataDir)
		developerRepo = jsonfile.NewDeveloperRepository(store)
		userRepo = jsonfile.NewUserRepository(store)

	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: ", err)
		}

		if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
			log.Fatal("Failed to run migrations: ", err)
		}

		developerRepo = repository.NewDeveloperRepository(db)
		userRepo = repository.NewUserRepository(db)
	}

	// Cache
	var cacheAdapter ports.CachePort
	if cfg.Redis.Address != "" {
		redisConn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		cacheAdapter = redisadapter.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("Redis not configured, using in-process cache", nil)
		cacheAdapter = cache.NewMemoryCache()
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Services and handlers
	tokenService := handlers.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	authService := services.NewAuthService(userRepo, tokenService, loggerAdapter, validate, cacheAdapter)
	authHandler := handlers.NewAuthHandler(authService, loggerAdapter, metrics)
	developerService := services.NewDeveloperService(developerRepo, loggerAdapter, validate, cacheAdapter)
	developerHandler := handlers.NewDeveloperHandler(developerService, loggerAdapter, metrics)

	// Init router
	router, err := handlers.NewRouter(
		cfg.HTTP,
		tokenService,
		userRepo,
		developerHandler,
		authHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	loggerAdapter.Info("Application stopped", nil)
}
