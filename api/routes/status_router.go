package routes

import (
	"github.com/DSACMS/kyc-onboarding-api/api/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// StatusRouter serves liveness and readiness. rdb may be nil.
func StatusRouter(app fiber.Router, rdb *redis.Client) {
	app.Get("/", handlers.IndexHandler)
	app.Get("/status", handlers.StatusHandler(rdb))
}
