package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/pavilion/backend/internal/api"
	"github.com/pageza/pavilion/backend/internal/middleware"
	"github.com/pageza/pavilion/backend/internal/service"
)

// Options carries what the routes need besides the menu service
type Options struct {
	Logger      *zap.Logger
	CORSOrigins []string
	Limiter     *middleware.RateLimiter
	Clock       func() time.Time
}

// SetupRouter configures the application routes
func SetupRouter(menus service.IMenuService, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(opts.Logger),
		middleware.AccessLog(opts.Logger),
		middleware.ErrorHandler(opts.Logger),
		middleware.CORS(opts.CORSOrigins),
	)

	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if opts.Limiter != nil {
		v1.Use(opts.Limiter.Middleware())
	}
	api.NewMenuHandler(menus, opts.Clock).RegisterRoutes(v1)

	return router
}
