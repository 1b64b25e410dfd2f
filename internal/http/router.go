// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplan/internal/http/handlers"
	"dayplan/internal/http/middleware"
)

func NewRouter(
	plannerSvc handlers.PlannerService,
	store handlers.PlanStore,
	quota handlers.QuotaService,
) http.Handler {
	engine := gin.New()
	engine.Use(middleware.Recovery(), middleware.Logging())

	planHandler := handlers.NewPlanHandler(plannerSvc, store, quota)
	engine.POST("/api/plans", planHandler.Create)
	engine.GET("/api/plans/:id", planHandler.Get)
	engine.POST("/api/plans/:id/alternative", planHandler.FindAlternative)
	engine.PUT("/api/plans/:id/activities/:index", planHandler.ApplyReplacement)
	engine.POST("/api/plans/:id/share", planHandler.Share)
	engine.GET("/api/shared/:token", planHandler.Shared)

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return engine
}
