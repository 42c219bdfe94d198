package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// SetPublicCache marks a response cacheable by browsers and CDNs.
func SetPublicCache(c *fiber.Ctx, seconds int) {
	c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", seconds, seconds*2))
}

// SetNoStore keeps per-donor responses out of every cache.
func SetNoStore(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store")
}
