package middleware

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS middleware. cors.New panics on a bad config, so
// the config is validated here first.
func ConfigCORS(allowedDomains []string) (gin.HandlerFunc, error) {
	conf := cors.Config{
		AllowOrigins:     allowedDomains,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return cors.New(conf), nil
}

// OriginAllowed reports whether origin is one of the configured domains.
// Used by the websocket upgrader, which bypasses the CORS middleware.
func OriginAllowed(allowedDomains []string) func(string) bool {
	return func(origin string) bool {
		for _, d := range allowedDomains {
			if d == "*" || d == origin {
				return true
			}
		}
		return false
	}
}
