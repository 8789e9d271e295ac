package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/agendasalud/clinic-agenda/internal/config"
	"github.com/agendasalud/clinic-agenda/internal/gateway"
	"github.com/agendasalud/clinic-agenda/internal/logger"
	"github.com/agendasalud/clinic-agenda/internal/middleware"
	"github.com/agendasalud/clinic-agenda/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	gw := gateway.NewClient(cfg, zlog)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, gw, rdb, zlog)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
