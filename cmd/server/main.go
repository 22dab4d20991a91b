package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jobnexus/backend/internal/config"
	"github.com/jobnexus/backend/internal/domain/fiber/handler"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zapLogger, err := newLogger(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := config.ConnectDB(zapLogger)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}
	if err := migrate(db); err != nil {
		zapLogger.Fatal("migration failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.BaseURL,
		AllowCredentials: appConfig.BaseURL != "",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New())
	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, appConfig.RateLimitEvery))

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	savedJobRepo := repository.NewSavedJobRepository(db)
	eventRepo := repository.NewEventRepository(db)

	companyUC := usecase.NewCompanyUsecase(companyRepo, notificationRepo, zapLogger)
	authUC := usecase.NewAuthUsecase(userRepo, companyUC, zapLogger)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, zapLogger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, companyRepo, notificationRepo, zapLogger)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	eventUC := usecase.NewEventUsecase(eventRepo, notificationRepo, applicationUC, zapLogger)

	if err := authUC.EnsureAdmin(appConfig.AdminEmail, appConfig.AdminPassword, appConfig.AdminName); err != nil {
		zapLogger.Fatal("admin seeding failed", zap.Error(err))
	}

	auth := middleware.NewAuthMiddleware(appConfig.SessionTTL)

	handler.NewAuthHandler(authUC, auth).RegisterRoutes(app)
	handler.NewJobHandler(jobUC, auth).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC, auth).RegisterRoutes(app)
	handler.NewCompanyHandler(companyUC, auth).RegisterRoutes(app)
	handler.NewAdminHandler(companyUC, auth).RegisterRoutes(app)
	handler.NewSavedJobHandler(savedJobUC, auth).RegisterRoutes(app)
	handler.NewNotificationHandler(notificationUC, auth).RegisterRoutes(app)
	handler.NewEventHandler(eventUC, auth).RegisterRoutes(app)

	app.Static("/uploads", appConfig.UploadDir)

	zapLogger.Info("server starting", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Notification{},
		&model.Event{},
		&model.SavedJob{},
	)
}
