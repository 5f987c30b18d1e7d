package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response (and accepted request) header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the Fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns every request a RayID.
// A RayID supplied by the caller is reused so that proxies can correlate logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
