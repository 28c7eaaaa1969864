package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for cross-origin requests to the API.
// Origins outside the whitelist get no CORS headers and the browser blocks them.
// Localhost origins are only accepted outside production.
func CORSMiddleware(allowedOrigins []string, isProduction bool) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Empty origin (same-origin requests) - allow
		isAllowed := origin == "" || allowed[origin] || (!isProduction && devOrigins[origin])

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
