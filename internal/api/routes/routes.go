package routes

import (
	"net/http"
	"time"

	"channel-relay/internal/api/handlers"
	"channel-relay/internal/api/middleware"
	"channel-relay/internal/auth"
	"channel-relay/internal/metrics"
	"channel-relay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the components the HTTP surface is built from
type Dependencies struct {
	DB      *gorm.DB
	Admin   service.AdminServiceInterface
	Auth    *auth.AuthService
	Metrics *metrics.Metrics
	// Gatherer backs /metrics; nil means the default registry
	Gatherer prometheus.Gatherer
	// Platform is checked by the health endpoints; polling older than MaxPollAge is unhealthy
	Platform   handlers.PollHeartbeat
	MaxPollAge time.Duration
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	var checks []handlers.Check
	if deps.DB != nil {
		checks = append(checks, handlers.DatabaseCheck(deps.DB))
	}
	if deps.Platform != nil {
		checks = append(checks, handlers.PlatformCheck(deps.Platform, deps.MaxPollAge))
	}

	healthHandler := handlers.NewHealthHandler(Version, checks...)
	tenantHandler := handlers.NewTenantHandler(deps.Admin)
	activationHandler := handlers.NewActivationHandler(deps.Admin)
	routingHandler := handlers.NewRoutingHandler(deps.Admin)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(auth.NewAuthMiddleware(deps.Auth).RequireAuth())
	{
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.POST("/:id/tokens", tenantHandler.IssueToken)
		}

		v1.POST("/activation", activationHandler.Activate)

		sources := v1.Group("/sources")
		{
			sources.GET("", routingHandler.ListSources)
			sources.POST("", routingHandler.AddSource)
			sources.DELETE("", routingHandler.RemoveSource)
		}

		destinations := v1.Group("/destinations")
		{
			destinations.GET("", routingHandler.ListDestinations)
			destinations.POST("", routingHandler.AddDestination)
			destinations.DELETE("", routingHandler.RemoveDestination)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
