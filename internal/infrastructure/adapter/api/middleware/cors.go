package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMaxAge is how long browsers may cache a preflight answer
const corsMaxAge = 12 * time.Hour

// CORS allows browser front-ends from the configured origins; "*" allows any.
// With no origins configured cross-origin requests are left unanswered.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, "Content-Disposition"},
		MaxAge:        corsMaxAge,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return cors.New(config)
		}
	}
	if len(allowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	config.AllowOrigins = allowedOrigins
	return cors.New(config)
}
