package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"channel-relay/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const checkTimeout = 2 * time.Second

// Check is a named dependency the relay needs in order to work
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// PollHeartbeat reports when the platform was last polled successfully
type PollHeartbeat interface {
	LastPoll() time.Time
}

// DatabaseCheck pings Postgres
func DatabaseCheck(db *gorm.DB) Check {
	return Check{
		Name: "database",
		Run: func(ctx context.Context) error {
			return database.PingContext(ctx, db)
		},
	}
}

// PlatformCheck fails until the first successful poll and whenever the last
// one is older than maxAge, which means event intake has stalled.
func PlatformCheck(hb PollHeartbeat, maxAge time.Duration) Check {
	return Check{
		Name: "platform",
		Run: func(context.Context) error {
			last := hb.LastPoll()
			if last.IsZero() {
				return fmt.Errorf("no successful poll yet")
			}
			if age := time.Since(last); age > maxAge {
				return fmt.Errorf("last successful poll %s ago", age.Round(time.Second))
			}
			return nil
		},
	}
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	version string
	checks  []Check
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks:  checks,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// run executes every check and returns the failures by name
func (h *HealthHandler) run(ctx context.Context) map[string]error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	results := make(map[string]error, len(h.checks))
	for _, check := range h.checks {
		results[check.Name] = check.Run(ctx)
	}
	return results
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the relay: database connectivity and platform polling
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  make(map[string]string),
	}

	for name, err := range h.run(c.Request.Context()) {
		if err != nil {
			response.Status = "unhealthy"
			response.Services[name] = "error: " + err.Error()
		} else {
			response.Services[name] = "healthy"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the relay can reach its database and is receiving platform updates
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	for name, err := range h.run(c.Request.Context()) {
		if err != nil {
			ready = false
			services[name] = "not ready: " + err.Error()
		} else {
			services[name] = "ready"
		}
	}

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
