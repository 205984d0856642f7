package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"intranet-api/internal/client"
	"intranet-api/internal/config"
	"intranet-api/internal/handler"
	"intranet-api/internal/metrics"
	"intranet-api/internal/middleware"
	"intranet-api/internal/repository"
	"intranet-api/internal/schema"
	"intranet-api/internal/service"
)

// Setup wires repositories, services and handlers into the route table
func Setup(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	s3Client client.S3ClientInterface,
	catalog *schema.Catalog,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	m := metrics.New(logger)

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.Metrics(m))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db, catalog)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db, catalog)
	messageRepo := repository.NewMessageRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	sessions := service.NewRedisSessionStore(redisClient)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, sessions, cfg.Auth.SecretKey, tokenTTL, logger)
	directoryService := service.NewDirectoryService(companyRepo)
	forumService := service.NewForumService(postRepo, commentRepo, userRepo, companyRepo, catalog, logger)
	messageService := service.NewMessageService(messageRepo, companyRepo, logger)
	adminService := service.NewAdminService(companyRepo, userRepo, postRepo, messageRepo, logger)
	profileService := service.NewProfileService(userRepo, s3Client)
	settingsService := service.NewSettingsService(settingsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, m, logger)
	directoryHandler := handler.NewDirectoryHandler(directoryService, logger)
	forumHandler := handler.NewForumHandler(forumService, m, logger)
	messageHandler := handler.NewMessageHandler(messageService, m, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		// Authenticated routes
		authenticated := api.Group("")
		authenticated.Use(middleware.AuthMiddleware(authService))
		{
			authenticated.POST("/auth/logout", authHandler.Logout)

			authenticated.GET("/companies", directoryHandler.List)

			authenticated.GET("/forum/posts", forumHandler.ListPosts)
			authenticated.POST("/forum/posts", forumHandler.CreatePost)
			authenticated.DELETE("/forum/posts/:postId", forumHandler.DeletePost)
			authenticated.GET("/forum/posts/:postId/comments", forumHandler.ListComments)
			authenticated.POST("/forum/posts/:postId/comments", forumHandler.CreateComment)

			authenticated.GET("/messages", messageHandler.List)
			authenticated.POST("/messages", messageHandler.Send)

			authenticated.GET("/profile", profileHandler.Get)
			authenticated.PUT("/profile", profileHandler.Update)
			authenticated.POST("/profile/avatar/presign", profileHandler.PresignAvatar)

			authenticated.GET("/settings/notifications", settingsHandler.Get)
			authenticated.PUT("/settings/notifications", settingsHandler.Update)

			// Admin routes
			admin := authenticated.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/companies", adminHandler.ListCompanies)
				admin.POST("/companies", adminHandler.CreateCompany)
				admin.GET("/companies/:companyId", adminHandler.GetCompany)
				admin.PUT("/companies/:companyId", adminHandler.UpdateCompany)
				admin.DELETE("/companies/:companyId", adminHandler.DeleteCompany)

				admin.GET("/summary", adminHandler.Summary)
				admin.GET("/users", adminHandler.ListUsers)
				admin.GET("/posts", adminHandler.ListPosts)
				admin.GET("/messages", adminHandler.ListMessages)
			}
		}
	}

	return r
}
