package handlers

import (
	"net/http"
	"time"

	"farm-assets-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler reports process and database status
type HealthHandler struct {
	db        *gorm.DB
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, startedAt: time.Now()}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0.0"`
	Uptime    string            `json:"uptime" example:"3h12m5s"`
	Driver    string            `json:"driver" example:"postgres"`
	Services  map[string]string `json:"services"`
}

// probeDatabase returns whether the store answers and a short description for the services map
func (h *HealthHandler) probeDatabase(okLabel, failPrefix string) (bool, string) {
	if err := database.Ping(h.db); err != nil {
		return false, failPrefix + err.Error()
	}
	return true, okLabel
}

func statusFor(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall status, including database connectivity and the driver in use
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ok, dbStatus := h.probeDatabase("healthy", "error: ")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Driver:    h.db.Dialector.Name(),
		Services:  map[string]string{"database": dbStatus},
	}
	if !ok {
		response.Status = "unhealthy"
	}

	c.JSON(statusFor(ok), response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Whether the database accepts queries
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ok, dbStatus := h.probeDatabase("ready", "not ready: ")

	c.JSON(statusFor(ok), gin.H{
		"ready":     ok,
		"timestamp": time.Now(),
		"services":  gin.H{"database": dbStatus},
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
