package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "globalhearts_backend/internals/helpers"
)

func limitBy(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: every endpoint
func GlobalRateLimiter() fiber.Handler {
	return limitBy(120, time.Minute, "Too many requests. Please try again later.")
}

// Donation submissions (stricter)
func SubmitRateLimiter() fiber.Handler {
	return limitBy(10, time.Minute, "Too many donation attempts. Please wait a moment and try again.")
}

// Newsletter and contact forms
func FormRateLimiter() fiber.Handler {
	return limitBy(5, time.Minute, "Too many submissions. Please try again in a minute.")
}
