package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscompass/api-server/internal/scoring"
	"github.com/campuscompass/api-server/internal/services"
)

// RecommendHandler serves the college recommendation endpoint
type RecommendHandler struct {
	recommendationService services.RecommendationService
}

// NewRecommendHandler creates a new recommendation handler with service injection
func NewRecommendHandler(recommendationService services.RecommendationService) *RecommendHandler {
	return &RecommendHandler{recommendationService: recommendationService}
}

// Recommend scores all colleges against the posted criteria and returns
// the top matches. Malformed or missing request bodies are treated as an
// empty query rather than rejected, so this endpoint never returns 400.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	query := parseRecommendQuery(c)

	results, err := h.recommendationService.Recommend(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// parseRecommendQuery decodes the request body permissively: fields that
// are missing or carry the wrong type fall back to their zero values
// (no branch preference, no fee limit).
func parseRecommendQuery(c *gin.Context) scoring.Query {
	var payload map[string]interface{}
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		return scoring.Query{}
	}

	return scoring.Query{
		Branch:  stringField(payload, "branch"),
		MaxFees: intField(payload, "max_fees"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	if val, exists := m[key]; exists {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}

func intField(m map[string]interface{}, key string) int64 {
	if val, exists := m[key]; exists {
		switch v := val.(type) {
		case float64:
			return int64(v)
		case string:
			if i, err := strconv.ParseInt(v, 10, 64); err == nil {
				return i
			}
		}
	}
	return 0
}
