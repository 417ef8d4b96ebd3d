package main

import (
	"fmt"

	"bountyboard/internal/app"
	"bountyboard/internal/repo"
	"bountyboard/internal/repo/memory"
	"bountyboard/internal/repo/persistent"
	"bountyboard/pkg/cache"
	"bountyboard/pkg/config"
	"bountyboard/pkg/database"
	"bountyboard/pkg/logger"
	"bountyboard/pkg/queue"
	"bountyboard/pkg/s3"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// @title           BountyBoard API
// @version         1.0
// @description     Marketplace connecting brands running video bounties with content creators.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	var (
		db    *gorm.DB
		repos *repo.Repositories
	)
	if cfg.DemoMode() {
		log.Warn("No database configured, running in demo mode on in-memory fixtures")
		store := memory.NewStore()
		if err := memory.Seed(store); err != nil {
			log.Error("Failed to seed demo fixtures: %v", err)
			panic(err)
		}
		repos = memory.NewRepositories(store)
	} else {
		db, err = database.NewPostgresDB(cfg)
		if err != nil {
			log.Error("Failed to connect to database: %v", err)
			panic(err)
		}
		repos = persistent.NewRepositories(db)
	}

	var redisClient *goredis.Client
	if client, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("Redis unavailable, continuing without caching or rate limits: %v", err)
	} else {
		redisClient = client
	}

	var s3Client *s3.Client
	if cfg.AWSAccessKeyID != "" {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
	} else {
		log.Warn("S3 not configured, video upload URLs are disabled")
	}

	var queueClient *queue.Client
	if client, err := queue.NewRabbitMQClient(cfg, log); err != nil {
		log.Warn("RabbitMQ unavailable, invite emails will not be queued: %v", err)
	} else {
		queueClient = client
	}

	app.Run(cfg, log, repos, db, s3Client, queueClient, redisClient)
}
