package main

import (
	"github.com/athsb009/cloud-cdn/internal/app"
	"github.com/athsb009/cloud-cdn/pkg/cache"
	"github.com/athsb009/cloud-cdn/pkg/cognito"
	"github.com/athsb009/cloud-cdn/pkg/config"
	"github.com/athsb009/cloud-cdn/pkg/database"
	"github.com/athsb009/cloud-cdn/pkg/logger"
	"github.com/athsb009/cloud-cdn/pkg/s3"
)

// @title           Cloud CDN API
// @version         1.0
// @description     Image sharing backend: uploads go to S3 behind a CDN, metadata lives in Postgres.

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	cognitoClient, err := cognito.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create Cognito client: %v", err)
		panic(err)
	}

	// Rate limiting is skipped when redis is unavailable
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, s3Client, cognitoClient, redisClient)
}
