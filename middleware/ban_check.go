package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pawsitive/services/bans"
)

// BanCheckMiddleware rejects requests from banned client identifiers
// with a fixed access-denied payload. Admin paths are exempt so a
// mistaken ban can always be lifted.
func BanCheckMiddleware(banSvc *bans.DefaultBanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/admin") || strings.HasPrefix(path, "/admin") {
			c.Next()
			return
		}

		if !banSvc.IsBanned(ClientIP(c)) {
			c.Next()
			return
		}

		if strings.HasPrefix(path, "/api/") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied."})
			return
		}
		c.HTML(http.StatusForbidden, "banned.html", gin.H{"title": "Access denied"})
		c.Abort()
	}
}
