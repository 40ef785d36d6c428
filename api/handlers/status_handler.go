package handlers

import (
	"context"
	"time"

	redisLocal "github.com/DSACMS/kyc-onboarding-api/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const statusPingTimeout = 2 * time.Second

func IndexHandler(c *fiber.Ctx) error {
	return c.SendString("Backend running!")
}

// StatusHandler reports readiness. Redis is only checked when the service
// was started with one.
func StatusHandler(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.SendStatus(fiber.StatusOK)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), statusPingTimeout)
		defer cancel()

		if err := redisLocal.Ping(ctx, rdb); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "redis unavailable")
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
