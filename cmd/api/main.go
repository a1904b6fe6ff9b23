package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/canchalibre/field-booking/internal/cache"
	"github.com/canchalibre/field-booking/internal/config"
	dbpkg "github.com/canchalibre/field-booking/internal/db"
	"github.com/canchalibre/field-booking/internal/logger"
	"github.com/canchalibre/field-booking/internal/middleware"
	"github.com/canchalibre/field-booking/internal/routes"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedisClient(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logrus.Infof("server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
