package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuscompass/api-server/internal/database"
	"github.com/campuscompass/api-server/internal/services"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	db             *database.DB
	collegeService services.CollegeService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB, collegeService services.CollegeService) *HealthHandler {
	return &HealthHandler{db: db, collegeService: collegeService}
}

// GetHealth reports service and database health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	if err := h.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"error":     "database unavailable",
			"timestamp": time.Now(),
		})
		return
	}

	count, err := h.collegeService.CountColleges(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"error":     "database unavailable",
			"timestamp": time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"colleges":  count,
		"timestamp": time.Now(),
	})
}
