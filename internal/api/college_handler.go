package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscompass/api-server/internal/services"
)

// CollegeHandler serves the college catalog endpoints
type CollegeHandler struct {
	collegeService services.CollegeService
}

// NewCollegeHandler creates a new college handler with service injection
func NewCollegeHandler(collegeService services.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeService: collegeService}
}

// GetColleges returns every stored college
func (h *CollegeHandler) GetColleges(c *gin.Context) {
	colleges, err := h.collegeService.ListColleges(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list colleges"})
		return
	}

	c.JSON(http.StatusOK, colleges)
}
