package services

import (
	"github.com/campuscompass/api-server/internal/repository"
	"github.com/campuscompass/api-server/internal/scoring"
)

// Services groups all application services for handler injection
type Services struct {
	College        CollegeService
	Recommendation RecommendationService
}

// NewServices creates the service layer on top of the repository
func NewServices(repo repository.CollegeRepository) *Services {
	engine := scoring.NewEngine()

	return &Services{
		College:        NewCollegeService(repo),
		Recommendation: NewRecommendationService(repo, engine),
	}
}
