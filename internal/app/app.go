package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "bountyboard/internal/controller/http"
	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/internal/usecase"
	"bountyboard/pkg/config"
	"bountyboard/pkg/jwt"
	"bountyboard/pkg/logger"
	"bountyboard/pkg/middleware"
	"bountyboard/pkg/queue"
	"bountyboard/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Run wires the repositories into use cases and handlers, mounts the HTTP
// surface and blocks until shutdown. The db, s3, queue and redis clients may
// be nil (demo mode); the repositories passed in decide where data lives.
func Run(cfg *config.Config, log *logger.Logger, repos *repo.Repositories, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize use cases
	briefUseCase := usecase.NewBriefUseCase(repos.Briefs, redisClient, log)
	submissionUseCase := usecase.NewSubmissionUseCase(repos.Submissions, repos.Briefs, log)
	feedbackUseCase := usecase.NewFeedbackUseCase(repos.Feedback, repos.Submissions, log)
	influencerUseCase := usecase.NewInfluencerUseCase(repos.Influencers, repos.Invites, log)
	inviteUseCase := usecase.NewInviteUseCase(repos.Invites, queueClient, log)
	authUseCase := usecase.NewAuthUseCase(repos.Users, jwtService, log)
	videoUseCase := usecase.NewVideoUseCase(s3Client)

	// Initialize HTTP handlers
	briefHandler := apiHTTP.NewBriefHandler(briefUseCase, log)
	submissionHandler := apiHTTP.NewSubmissionHandler(submissionUseCase, log)
	feedbackHandler := apiHTTP.NewFeedbackHandler(feedbackUseCase, log)
	influencerHandler := apiHTTP.NewInfluencerHandler(influencerUseCase, log)
	inviteHandler := apiHTTP.NewInviteHandler(inviteUseCase, log)
	authHandler := apiHTTP.NewAuthHandler(authUseCase, log)
	videoHandler := apiHTTP.NewVideoHandler(videoUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	// Public surface: brief pages, submissions, influencer applications
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/briefs", briefHandler.ListBriefs)
		api.GET("/briefs/:slug", briefHandler.GetBriefBySlug)

		api.POST("/submissions", submissionHandler.CreateSubmission)
		api.POST("/submissions/:id/resubmit", submissionHandler.Resubmit)
		api.GET("/submissions/:id/feedback", feedbackHandler.ListFeedback)

		api.POST("/videos/upload-url", videoHandler.GetUploadURL)

		api.POST("/influencers/apply", influencerHandler.Apply)
	}

	// Authenticated brand/admin surface
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireRole(string(entity.RoleBrand), string(entity.RoleAdmin)))
	{
		admin.GET("/me", authHandler.Me)

		admin.POST("/briefs", briefHandler.CreateBrief)
		admin.GET("/briefs", briefHandler.ListAllBriefs)
		admin.GET("/briefs/:id", briefHandler.GetBrief)
		admin.PATCH("/briefs/:id", briefHandler.UpdateBrief)
		admin.GET("/briefs/:id/submissions", submissionHandler.ListByBrief)

		admin.GET("/submissions/:id", submissionHandler.GetSubmission)
		admin.PATCH("/submissions/:id/status", submissionHandler.UpdateStatus)
		admin.PATCH("/submissions/:id/payout", submissionHandler.UpdatePayout)
		admin.POST("/submissions/:id/feedback", feedbackHandler.CreateFeedback)
		admin.PATCH("/feedback/:id", feedbackHandler.UpdateFeedback)
		admin.DELETE("/feedback/:id", feedbackHandler.DeleteFeedback)

		admin.GET("/influencers", influencerHandler.ListInfluencers)
		admin.GET("/influencers/:id", influencerHandler.GetInfluencer)
		admin.PATCH("/influencers/:id", influencerHandler.UpdateInfluencer)

		admin.POST("/invites", inviteHandler.CreateInvite)
		admin.GET("/invites", inviteHandler.ListInvites)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		sqlDB, err := db.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error("Error closing database: %v", err)
			}
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("API exited")
}
