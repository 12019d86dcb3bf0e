package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/eco-diary/internal/adapters/handler/http/middleware"
)

// Pinger reports whether the entry store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterDependencies struct {
	HabitHandler    *HabitHandler
	EntryHandler    *EntryHandler
	CalendarHandler *CalendarHandler
	StatsHandler    *StatsHandler
	ContentHandler  *ContentHandler
	ExportHandler   *ExportHandler
	Store           Pinger
	StorageDriver   string
	Redis           *redis.Client
	RateLimit       int
	RateWindow      time.Duration
	StartTime       time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiter(deps.Redis, deps.RateLimit, deps.RateWindow))
	}

	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		storeStatus := "connected"
		if deps.Store == nil || deps.Store.Ping(ctx) != nil {
			storeStatus = "unreachable"
		}

		// Redis is optional; only a configured but dead instance degrades.
		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(ctx).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		status := "ok"
		statusCode := http.StatusOK
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":  status,
			"storage": deps.StorageDriver,
			"store":   storeStatus,
			"redis":   redisStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")

	deps.HabitHandler.RegisterRoutes(apiV1)
	deps.EntryHandler.RegisterRoutes(apiV1)
	deps.CalendarHandler.RegisterRoutes(apiV1)
	deps.StatsHandler.RegisterRoutes(apiV1)
	deps.ContentHandler.RegisterRoutes(apiV1)
	deps.ExportHandler.RegisterRoutes(apiV1)

	return router
}
