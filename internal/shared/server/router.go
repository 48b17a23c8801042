package server

import (
	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/shared/config"
	"roadmap-backend/internal/shared/server/middleware"
)

// NewEngine builds the gin engine with the standard middleware chain.
// Routes are registered by the caller (see bootstrap).
func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 20, Burst: 40},
			},
		}),
	)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
