package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"globalhearts_backend/internals/middlewares/logger"
)

type Options struct {
	CorsOrigins    []string
	RequestTimeout time.Duration
	TimeZone       string
}

// SetupMiddlewares installs the global chain in order.
func SetupMiddlewares(app *fiber.App, opt Options) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(opt.RequestTimeout))
	app.Use(logger.LoggerMiddleware(opt.TimeZone))
	app.Use(CorsMiddleware(opt.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
