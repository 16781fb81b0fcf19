package http

import (
	"net/http"
	"strings"
	"time"

	"devdirectory/internal/config"
	"devdirectory/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	config *config.HTTP,
	tokenService ports.TokenService,
	userRepo ports.UserRepository,
	developerHandler *DeveloperHandler,
	authHandler *AuthHandler,
) (*Router, error) {
	if config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	ginConfig := cors.DefaultConfig()
	ginConfig.AllowOrigins = strings.Split(config.AllowedOrigins, ",")
	ginConfig.AllowHeaders = append(ginConfig.AllowHeaders, "Authorization")

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(ginConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	startedAt := time.Now()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"uptime":    time.Since(startedAt).Seconds(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Developer Directory API",
			"status":  "running",
			"endpoints": gin.H{
				"auth":       "/api/auth",
				"developers": "/api/developers",
				"health":     "/health",
			},
		})
	})

	api := router.Group("/api")

	// Credential routes, throttled
	authLimiter := rate.NewLimiter(rate.Every(time.Second), 10)
	auth := api.Group("/auth")
	auth.Use(RateLimitMiddleware(authLimiter))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Routes with auth
	developers := api.Group("/developers")
	developers.Use(AuthMiddleware(tokenService, userRepo))
	{
		developers.GET("", developerHandler.ListDevelopers)
		developers.GET("/:id", developerHandler.GetDeveloper)
		developers.POST("", developerHandler.CreateDeveloper)
		developers.PUT("/:id", developerHandler.UpdateDeveloper)
		developers.DELETE("/:id", developerHandler.DeleteDeveloper)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{
			Success: false,
			Message: "Route not found",
		})
	})

	return &Router{
		Engine: router,
	}, nil
}

// Serve starts the HTTP server.
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
