// @title Anvogue Storefront API
// @version 1.0
// @description Anvogue Storefront Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalog_cache "github.com/Anvogue-Ecommerce/anvogue-storefront-backend/cache"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/routes/ecommerce_routes"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitLogger()

	if err := config.LoadSettings(); err != nil {
		log.Fatalf("invalid application settings: %v", err)
	}
	catalog_cache.SetTTL(config.App.Cache.TTL)

	config.InitDB()
	defer config.CloseDB()
	config.ConnectRedis()

	// Warm the snapshot so the first storefront request does not pay the
	// full catalog scan.
	if _, err := services.NewCatalogService().Snapshot(context.Background()); err != nil {
		log.Warnf("catalog snapshot warmup failed: %v", err)
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthz)

	api := router.Group("/api/v1")
	ecommerce_routes.SetupStorefrontRoutes(api)

	srv := &http.Server{
		Addr:    ":" + config.App.Server.Port,
		Handler: router,
	}

	go func() {
		log.Infof("storefront listening on :%s", config.App.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}

// healthz pings the pgx pool and Redis.
func healthz(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(2 * time.Second)
	defer cancel()

	if err := config.CatalogDB.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "database unreachable"))
		return
	}
	if err := config.RedisClient.Ping(ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "redis unreachable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
}

// requestLogger is a minimal structured access log.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}).Debug("request")
	}
}
