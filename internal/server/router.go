package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/internal/handlers"
	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/internal/middleware"
)

// RouterConfig carries the wired handlers into the router.
type RouterConfig struct {
	Health  *handlers.HealthHandler
	Clips   *handlers.ClipHandler
	Queue   *handlers.QueueHandler
	Reviews *handlers.ReviewHandler
	Logger  *logger.Logger
}

// NewRouter assembles the HTTP surface.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(gin.Recovery())

	// Frontend dev server origins
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://localhost:5173",
			"https://127.0.0.1:5173",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/health", cfg.Health.Health)
	router.GET("/db/health", cfg.Health.DBHealth)

	router.GET("/clips", cfg.Clips.List)
	router.POST("/clips", cfg.Clips.Create)

	router.GET("/queue/today", cfg.Queue.GetToday)
	router.POST("/queue/today/reroll", cfg.Queue.Reroll)

	router.POST("/reviews", cfg.Reviews.Create)
	router.GET("/reviews/today", cfg.Reviews.ListToday)

	return router
}
