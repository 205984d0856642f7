// @title           Company Intranet API
// @version         1.0
// @description     REST API for the company intranet: auth, directory, forum, messaging, admin.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"intranet-api/internal/client"
	"intranet-api/internal/config"
	"intranet-api/internal/database"
	"intranet-api/internal/router"
	"intranet-api/internal/schema"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.Auth.SecretKey == "" {
		logger.Fatal("SECRET_KEY is required")
	}

	logger.Info("🔧 Starting Intranet API",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env))

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	logger.Info("✅ PostgreSQL connected and migrated")

	if err := database.EnsureAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	// Resolve the column catalog once; handlers never introspect per request
	catalog, err := schema.Load(db, cfg.Database.Schema)
	if err != nil {
		logger.Fatal("Failed to load column catalog", zap.Error(err))
	}
	logger.Info("✅ Column catalog resolved", zap.String("schema", cfg.Database.Schema))

	redisClient, err := database.InitRedis(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	logger.Info("✅ Redis connected")

	// Avatar storage is optional; the profile endpoints degrade without it
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" {
		s3, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 client", zap.Error(err))
		}
		s3Client = s3
		logger.Info("✅ S3 client initialized", zap.String("bucket", cfg.S3.Bucket))
	}

	r := router.Setup(cfg, db, redisClient, s3Client, catalog, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("🚀 Intranet API started", zap.String("address", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
