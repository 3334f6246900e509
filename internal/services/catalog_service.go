package services

import (
	"context"

	"movia-backend/internal/models"
	"movia-backend/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	topGenreCount   = 10
)

// CatalogService is the read side of the synced catalog.
type CatalogService interface {
	ListMovies(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error)
	GetMovie(ctx context.Context, id int) (*models.Movie, error)
	ListSeries(ctx context.Context, page, limit int, search string) ([]models.Series, int64, error)
	GetSeries(ctx context.Context, id int) (*models.Series, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	Stats(ctx context.Context) (*models.CatalogStats, error)
}

type catalogService struct {
	movies repository.MovieRepository
	series repository.SeriesRepository
	genres repository.GenreRepository
	stats  repository.StatsRepository
}

func NewCatalogService(
	movies repository.MovieRepository,
	series repository.SeriesRepository,
	genres repository.GenreRepository,
	stats repository.StatsRepository,
) CatalogService {
	return &catalogService{
		movies: movies,
		series: series,
		genres: genres,
		stats:  stats,
	}
}

// NormalizePage is the single paging rule for the catalog: page defaults to
// 1, a non-positive limit to 20, and limits above 100 are clamped to 100.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func (s *catalogService) ListMovies(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error) {
	page, limit = NormalizePage(page, limit)
	return s.movies.FindAll(ctx, page, limit, search)
}

func (s *catalogService) GetMovie(ctx context.Context, id int) (*models.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *catalogService) ListSeries(ctx context.Context, page, limit int, search string) ([]models.Series, int64, error) {
	page, limit = NormalizePage(page, limit)
	return s.series.FindAll(ctx, page, limit, search)
}

func (s *catalogService) GetSeries(ctx context.Context, id int) (*models.Series, error) {
	return s.series.FindByID(ctx, id)
}

func (s *catalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *catalogService) Stats(ctx context.Context) (*models.CatalogStats, error) {
	return s.stats.CatalogStats(ctx, topGenreCount)
}
