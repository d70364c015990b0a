package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"healthplans.backend/internal/config"
	"healthplans.backend/internal/infrastructure/models"
	"healthplans.backend/internal/infrastructure/repositories"
	"healthplans.backend/internal/interfaces/http/handlers"
	"healthplans.backend/internal/interfaces/http/middleware"
	"healthplans.backend/internal/usecases"
	"healthplans.backend/pkg/jwt"
	"healthplans.backend/pkg/logger"
	"healthplans.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.PlanCategory{},
		&models.HealthPlan{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	denylist := redis.NewTokenDenylist()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewUserProfileRepository(db)
	categoryRepo := repositories.NewPlanCategoryRepository(db)
	planRepo := repositories.NewHealthPlanRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, uow, jwtService, denylist)
	profileUsecase := usecases.NewProfileUsecase(userRepo, profileRepo)
	catalogUsecase := usecases.NewCatalogUsecase(categoryRepo, planRepo)
	cartUsecase := usecases.NewCartUsecase(cartRepo, cartItemRepo, planRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	cartHandler := handlers.NewCartHandler(cartUsecase)

	authRequired := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerRoutes(r, routeDeps{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		catalogHandler: catalogHandler,
		cartHandler:    cartHandler,
		authRequired:   authRequired,
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
