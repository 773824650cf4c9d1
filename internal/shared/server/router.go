package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"journey-backend/internal/journey"
	"journey-backend/internal/roi"
	"journey-backend/internal/shared/config"
	"journey-backend/internal/shared/metrics"
	"journey-backend/internal/shared/server/middleware"
	"journey-backend/internal/shared/server/respond"
	"journey-backend/internal/suggestions"
)

const estimateRateLimitGroup = "ESTIMATE"

// RouterDeps carries the handlers the router mounts. Nil handlers are skipped.
type RouterDeps struct {
	Config            config.Config
	JourneyHandler    *journey.Handler
	SuggestionHandler *suggestions.Handler
	ROIHandler        *roi.Handler
	Now               func() time.Time
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(deps)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.JourneyHandler != nil {
		deps.JourneyHandler.RegisterRoutes(api)
	}
	if deps.SuggestionHandler != nil {
		deps.SuggestionHandler.RegisterRoutes(api)
	}
	if deps.ROIHandler != nil {
		deps.ROIHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig limits only estimate requests; reads are served from memory.
func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if deps.Config.RateLimitRPS > 0 && deps.Config.RateLimitBurst > 0 {
		rules[estimateRateLimitGroup] = middleware.RateLimitRule{
			Rate:  deps.Config.RateLimitRPS,
			Burst: deps.Config.RateLimitBurst,
		}
	}
	return middleware.RateLimitConfig{
		Rules: rules,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/roi/estimate" {
				return estimateRateLimitGroup
			}
			return ""
		},
		Limiter: middleware.NewRateLimiter(deps.Now),
	}
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
