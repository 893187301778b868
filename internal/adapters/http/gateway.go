package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dockpanel/dockpanel/internal/session"
)

// publicPrefixes are served without a session: the auth pages themselves,
// static assets, and operational endpoints.
var publicPrefixes = []string{
	"/login",
	"/register",
	"/assets",
	"/favicon.ico",
	"/metrics",
}

// NewAccessGateway returns the middleware that gates every UI route
// behind a session cookie. API routes always pass: their handlers decode
// and verify the session themselves and must answer JSON, not redirects.
//
// Only cookie *presence* is checked here; cryptographic verification
// happens in whichever handler decodes the session. A forged cookie gets
// past this middleware and is rejected there.
func NewAccessGateway() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if strings.HasPrefix(path, "/api/") {
			return c.Next()
		}
		for _, p := range publicPrefixes {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}

		if c.Cookies(session.CookieName) == "" {
			return c.Redirect("/login?next="+url.QueryEscape(path), fiber.StatusFound)
		}
		return c.Next()
	}
}
