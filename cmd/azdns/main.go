package main

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "azdns/api/v1"
	"azdns/api/v1/middleware"
	"azdns/internal/config"
	"azdns/internal/credstore"
	"azdns/internal/dns/azure"
)

func main() {
	// 1. Load server configuration
	cfg, err := loadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := setupLogging(cfg.Log)
	logger.Info("✓ Configuration loaded")

	// 2. Seed zone credentials from the env file; the console can fill in
	// the rest at runtime.
	store := credstore.Load(cfg.EnvFile)
	if missing := store.Get().MissingFields(); len(missing) > 0 {
		logger.Warnf("Zone configuration incomplete, missing %s", strings.Join(missing, ", "))
		logger.Warnf("Copy .env.example to %s or configure via the console", cfg.EnvFile)
	} else {
		logger.Infof("✓ Zone configuration loaded for %s", store.Get().Zone)
	}

	// 3. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	v1.SetupRouter(r, store, azure.Factory, cfg, logger)

	logger.Infof("✓ Server starting on %s", cfg.HTTPAddr)

	// 4. Start server
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// loadConfig reads settings from the environment, or from the INI file
// named by AZDNS_CONFIG when set.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("AZDNS_CONFIG"); path != "" {
		return config.LoadFromINI(path)
	}
	return config.Load(), nil
}

func setupLogging(cfg config.LogConfig) *logrus.Entry {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrus.NewEntry(logger)
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
