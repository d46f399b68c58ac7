package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/middleware"
	"github.com/FACorreiaa/go-tripcore/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(serviceName string, deps routes.Dependencies, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.OTELGinMiddleware(serviceName))
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.ObservabilityMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())

	routes.Setup(r, deps, logger)

	return r
}
