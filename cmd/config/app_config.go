package config

import (
	"Waste2Wealth-Backend/internal/api/handlers"
	"Waste2Wealth-Backend/internal/api/routes"
	"Waste2Wealth-Backend/internal/middleware"
	"Waste2Wealth-Backend/internal/utils"
	"Waste2Wealth-Backend/internal/utils/storage"
	"Waste2Wealth-Backend/pkg/classify"
	"Waste2Wealth-Backend/pkg/jwt"
	"Waste2Wealth-Backend/pkg/ledger"
	"Waste2Wealth-Backend/pkg/notification"
	"Waste2Wealth-Backend/pkg/report"
	"Waste2Wealth-Backend/pkg/reward"
	"Waste2Wealth-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	ledgerRepository := ledger.NewLedgerRepository(db)
	reportRepository := report.NewReportRepository(db)
	rewardRepository := reward.NewRewardRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	ledgerService := ledger.NewLedgerService(ledgerRepository)
	reportService := report.NewReportService(reportRepository, s3)
	rewardService := reward.NewRewardService(rewardRepository, ledgerRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	classifyService := classify.NewClassifyService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	rewardHandler := handlers.NewRewardHandler(ledgerService, rewardService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	classifyHandler := handlers.NewClassifyHandler(classifyService)
	trackingHandler := handlers.NewTrackingHandler(validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ReportHandler:       reportHandler,
		RewardHandler:       rewardHandler,
		NotificationHandler: notificationHandler,
		ClassifyHandler:     classifyHandler,
		TrackingHandler:     trackingHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
