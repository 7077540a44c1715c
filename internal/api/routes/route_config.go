package routes

import (
	"Waste2Wealth-Backend/internal/api/handlers"
	"Waste2Wealth-Backend/internal/middleware"
	"Waste2Wealth-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ReportHandler       handlers.ReportHandler
	RewardHandler       handlers.RewardHandler
	NotificationHandler handlers.NotificationHandler
	ClassifyHandler     handlers.ClassifyHandler
	TrackingHandler     handlers.TrackingHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Reports()
	c.Rewards()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	reports.Post("", c.ReportHandler.CreateReport)
	reports.Get("", c.ReportHandler.GetRecentReports)
	reports.Post("/classify", c.ClassifyHandler.ClassifyWaste)

	// Collection workflow, collectors only.
	tasks := c.App.Group("/api/v1/tasks", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.CollectorOnly())
	tasks.Get("", c.ReportHandler.GetWasteCollectionTasks)
	tasks.Patch("/status", c.ReportHandler.UpdateTaskStatus)
	tasks.Post("/collected", c.ReportHandler.SaveCollectedWaste)
	tasks.Post("/collect", c.ReportHandler.CollectReport)
}

func (c *Config) Rewards() {
	rewards := c.App.Group("/api/v1/rewards", c.Middleware.AuthMiddleware(c.JWTService))
	rewards.Get("/balance", c.RewardHandler.GetBalance)
	rewards.Get("/transactions", c.RewardHandler.GetTransactionHistory)
	rewards.Post("/redeem", c.RewardHandler.RedeemReward)
	rewards.Get("/leaderboard", c.RewardHandler.GetLeaderboard)
	rewards.Get("", c.RewardHandler.GetAvailableRewards)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.NotificationHandler.GetUnreadNotifications)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/api/track-visit", c.TrackingHandler.TrackVisit)
}
