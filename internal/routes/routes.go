package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/handlers"
	"github.com/FACorreiaa/go-tripcore/internal/app/middleware"
	"github.com/FACorreiaa/go-tripcore/internal/app/services"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/cache"
)

type AppHandlers struct {
	Base    *handlers.BaseHandler
	Planner *handlers.PlannerHandler
}

// Dependencies are the collaborators the routes need.
type Dependencies struct {
	Planner   services.PlannerService
	Admission *cache.Admission
}

func Setup(r *gin.Engine, deps Dependencies, log *zap.Logger) {
	h := &AppHandlers{
		Base:    handlers.NewBaseHandler(log),
		Planner: handlers.NewPlannerHandler(deps.Planner, log),
	}
	setupRouter(r, h, deps.Admission, log)
}

func setupRouter(r *gin.Engine, h *AppHandlers, admission *cache.Admission, log *zap.Logger) {
	r.GET("/health", h.Base.Health)

	api := r.Group("/api/v1/planner")
	if admission != nil {
		api.Use(middleware.RateLimit(admission, log))
	}
	{
		api.POST("/tradeoffs", h.Planner.DetectTradeoffs)
		api.POST("/tradeoffs/resolve", h.Planner.ResolveTradeoff)
		api.POST("/areas", h.Planner.DiscoverAreas)
		api.POST("/schedule", h.Planner.Schedule)
		api.POST("/quality", h.Planner.CheckQuality)
	}
}
