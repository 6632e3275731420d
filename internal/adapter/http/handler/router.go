package handler

import (
	"time"

	"reward-indexer/internal/adapter/http/middleware"
	"reward-indexer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ReportingSvc ports.ReportingService
	RateLimiter  ports.RateLimiter // nil = rate limiting disabled
	RateLimit    middleware.RateLimitRule
	Logger       zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The caller sets the gin mode.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware. CORS runs before routing decisions so preflight
	// and 404 responses carry the headers too.
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(1 << 10)) // read-only API

	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil && deps.RateLimit.Limit > 0 {
		rule := deps.RateLimit
		if rule.Window <= 0 {
			rule.Window = time.Minute
		}
		rl = middleware.RateLimiter(deps.RateLimiter, "read", rule, deps.Logger)
	}

	ledgerHandler := NewLedgerHandler(deps.ReportingSvc)

	r.GET("/leaderboard", rl, ledgerHandler.Leaderboard)
	r.GET("/total", rl, ledgerHandler.Total)
	r.GET("/health", ledgerHandler.Health)

	r.NoRoute(NotFound)

	return r
}
