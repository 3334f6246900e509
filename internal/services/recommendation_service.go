package services

import (
	"context"
	"errors"
	"fmt"

	"movia-backend/internal/models"
	"movia-backend/internal/repository"
)

var ErrMovieNotFound = errors.New("movie not found")

type RecommendationService interface {
	Recommend(ctx context.Context, userID uint, movieID int) (*models.Recommendation, error)
	ForUser(ctx context.Context, userID uint) ([]models.Recommendation, error)
}

type recommendationService struct {
	recommendations repository.RecommendationRepository
	movies          repository.MovieRepository
}

func NewRecommendationService(recommendations repository.RecommendationRepository, movies repository.MovieRepository) RecommendationService {
	return &recommendationService{
		recommendations: recommendations,
		movies:          movies,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uint, movieID int) (*models.Recommendation, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
	}

	rec := &models.Recommendation{
		UserID:  userID,
		MovieID: movie.ID,
	}
	if err := s.recommendations.Create(ctx, rec); err != nil {
		return nil, err
	}
	rec.Movie = movie
	return rec, nil
}

func (s *recommendationService) ForUser(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	return s.recommendations.FindByUser(ctx, userID)
}
