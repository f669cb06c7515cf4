package router

import (
	"github.com/gin-gonic/gin"

	"labelcheck/internal/config"
	"labelcheck/internal/handler"
	"labelcheck/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	verifyH *handler.VerifyHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		v1.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	// Verification routes
	v1.POST("/verify", verifyH.Verify)
	v1.POST("/verify/batch", verifyH.VerifyBatch)
	v1.POST("/verify/export", verifyH.Export)

	return r
}
