package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devconnect/profile-api/internal/api/handler"
	"github.com/devconnect/profile-api/internal/api/middleware"
	"github.com/devconnect/profile-api/internal/core/ports"
	"github.com/devconnect/profile-api/internal/core/service"
	mongodb "github.com/devconnect/profile-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/devconnect/profile-api/internal/infrastructure/db/redis"
	"github.com/devconnect/profile-api/internal/infrastructure/github"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, recorder ports.ActivityRecorder, activity ports.ActivityService, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("profile_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	loginGuard := redisinfra.NewLoginGuard(rdb, 0, 0)
	githubClient := github.NewClient("", 0)

	userService := service.NewUserService(userRepo, recorder, jwtSecret, service.DefaultTokenTTL, log)
	authService := service.NewAuthService(userRepo, loginGuard, recorder, jwtSecret, service.DefaultTokenTTL, log)
	profileService := service.NewProfileService(profileRepo, userRepo, postRepo, githubClient, recorder, log)
	postService := service.NewPostService(postRepo, userRepo, recorder, log)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)
	activityHandler := handler.NewActivityHandler(activity)

	auth := middleware.Auth(jwtSecret)

	// --- Users & auth ---
	e.POST("/api/users", userHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Current, auth)

	// --- Profiles ---
	e.GET("/api/profile/me", profileHandler.Me, auth)
	e.POST("/api/profile", profileHandler.Upsert, auth)
	e.GET("/api/profile", profileHandler.List)
	e.GET("/api/profile/user/:user_id", profileHandler.ByUser)
	e.DELETE("/api/profile", profileHandler.Delete, auth)
	e.PUT("/api/profile/experience", profileHandler.AddExperience, auth)
	e.DELETE("/api/profile/experience/:exp_id", profileHandler.RemoveExperience, auth)
	e.PUT("/api/profile/education", profileHandler.AddEducation, auth)
	e.DELETE("/api/profile/education/:edu_id", profileHandler.RemoveEducation, auth)
	e.GET("/api/profile/github/:username", profileHandler.GithubRepos)

	// --- Posts ---
	e.POST("/api/posts", postHandler.Create, auth)
	e.GET("/api/posts", postHandler.List, auth)
	e.GET("/api/posts/:id", postHandler.Get, auth)
	e.DELETE("/api/posts/:id", postHandler.Delete, auth)
	e.PUT("/api/posts/like/:id", postHandler.Like, auth)
	e.PUT("/api/posts/unlike/:id", postHandler.Unlike, auth)
	e.POST("/api/posts/comment/:id", postHandler.Comment, auth)
	e.DELETE("/api/posts/comment/:id/:comment_id", postHandler.RemoveComment, auth)

	// --- Activity ---
	e.GET("/api/activity", activityHandler.Recent, auth)

	// --- Observability & docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// EnsureIndexes creates all collection indexes. Called once at startup; a
// failure here is fatal because the registration and upsert invariants
// depend on the unique indexes existing.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProfileRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewActivityRepository(db).EnsureIndexes(ctx)
}
