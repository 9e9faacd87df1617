package middlewares

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the CORS policy from env.
// In production an explicit allowlist is required via CORS_ALLOWED_ORIGINS
// (comma-separated); elsewhere all origins are allowed for developer
// convenience.
func CORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	allowed := splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		corsConfig.AllowOrigins = allowed
		corsConfig.AllowCredentials = true
	} else if len(allowed) > 0 {
		corsConfig.AllowOrigins = allowed
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}

	return cors.New(corsConfig)
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
