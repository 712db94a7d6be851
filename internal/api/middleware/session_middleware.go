package middleware

import (
	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/postdeck/configs"
	"github.com/maheshrc27/postdeck/internal/session"
)

type SessionMiddleware struct {
	resolver *session.Resolver
	cfg      config.Config
}

func NewSessionMiddleware(cfg config.Config, resolver *session.Resolver) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver, cfg: cfg}
}

// Handler binds every request to an owner partition. Requests without a
// valid session cookie are not rejected; they act on the shared demo
// partition, which is the dashboard's logged-out mode.
func (m *SessionMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := m.resolver.Resolve(c.Cookies(m.cfg.CookieName))
		c.Locals("owner_id", owner)
		return c.Next()
	}
}
