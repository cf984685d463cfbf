package services

import (
	"context"
	"sort"

	apperrors "github.com/campuscompass/api-server/internal/errors"
	"github.com/campuscompass/api-server/internal/models"
	"github.com/campuscompass/api-server/internal/repository"
	"github.com/campuscompass/api-server/internal/scoring"
)

// MaxRecommendations caps how many colleges a recommendation returns
const MaxRecommendations = 10

// RecommendationService ranks colleges against a recommendation query
type RecommendationService interface {
	Recommend(ctx context.Context, query scoring.Query) ([]models.College, error)
}

type recommendationService struct {
	repo   repository.CollegeRepository
	engine *scoring.Engine
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(repo repository.CollegeRepository, engine *scoring.Engine) RecommendationService {
	return &recommendationService{repo: repo, engine: engine}
}

// Recommend scores every stored college against the query and returns
// the top MaxRecommendations ordered by descending score. Ties keep the
// store's id order because the sort is stable over the ListAll sequence.
func (s *recommendationService) Recommend(ctx context.Context, query scoring.Query) ([]models.College, error) {
	colleges, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to load colleges for recommendation", err).WithOperation("Recommend")
	}

	scores := make([]int, len(colleges))
	for i := range colleges {
		scores[i] = s.engine.Score(&colleges[i], query)
	}

	ranked := make([]int, len(colleges))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	limit := len(ranked)
	if limit > MaxRecommendations {
		limit = MaxRecommendations
	}

	results := make([]models.College, 0, limit)
	for _, idx := range ranked[:limit] {
		results = append(results, colleges[idx])
	}

	return results, nil
}
