package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pawsitive/services/visitors"
	"pawsitive/utils"
)

// VisitorCookie is the long-lived tracking cookie name.
const VisitorCookie = "pawsitive_visitor"

// cookieMaxAge is one year, in seconds.
const cookieMaxAge = 365 * 24 * 60 * 60

// VisitorTrackerMiddleware issues the tracking cookie and records page
// visits. Only plain page GETs count: API calls, static assets and the
// health check are not visits.
//
// The cookie is deliberately neither Secure nor HttpOnly: the chat
// widget reads it client-side, and the original deployment shipped it
// this way. Flagged for hardening, not silently changed.
func VisitorTrackerMiddleware(visitorSvc *visitors.DefaultVisitorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/static/") ||
			path == "/health" || path == "/favicon.ico" {
			c.Next()
			return
		}

		id, err := c.Cookie(VisitorCookie)
		if err != nil || id == "" {
			id = utils.NewID()
			c.SetCookie(VisitorCookie, id, cookieMaxAge, "/", "", false, false)
		}

		visitorSvc.Track(id, path, ClientIP(c))
		c.Next()
	}
}
