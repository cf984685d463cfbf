package api

import (
	"github.com/gin-gonic/gin"

	"github.com/campuscompass/api-server/internal/database"
	"github.com/campuscompass/api-server/internal/repository"
	"github.com/campuscompass/api-server/internal/services"
	"github.com/campuscompass/api-server/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config) error {
	repo := repository.NewCollegeRepository(db.DB)
	svcs := services.NewServices(repo)

	collegeHandler := NewCollegeHandler(svcs.College)
	recommendHandler := NewRecommendHandler(svcs.Recommendation)
	healthHandler := NewHealthHandler(db, svcs.College)

	api := r.Group("/api")
	{
		api.GET("/colleges", collegeHandler.GetColleges)
		api.POST("/recommend", recommendHandler.Recommend)
		api.GET("/health", healthHandler.GetHealth)
	}

	return nil
}
