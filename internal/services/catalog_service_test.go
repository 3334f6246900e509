package services

import (
	"context"
	"errors"
	"testing"

	"movia-backend/internal/repository"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageSize},
		{3, 10, 3, 10},
		{-1, 500, 1, maxPageSize},
	}

	for _, tt := range tests {
		page, limit := NormalizePage(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("NormalizePage(%d, %d) = %d, %d, want %d, %d",
				tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestCatalogAndRecommendations(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()

	if _, _, err := env.records.UpsertMovie(ctx, loadPayload(t, "movie_550.json")); err != nil {
		t.Fatalf("UpsertMovie() error = %v", err)
	}
	if _, _, err := env.records.UpsertSeries(ctx, loadPayload(t, "tv_550.json")); err != nil {
		t.Fatalf("UpsertSeries() error = %v", err)
	}

	catalog := NewCatalogService(env.movies, env.series, env.genres, repository.NewStatsRepository(env.db))

	movies, total, err := catalog.ListMovies(ctx, 1, 0, "fight")
	if err != nil || total != 1 || len(movies) != 1 {
		t.Fatalf("ListMovies() = %d movies, total %d, err %v", len(movies), total, err)
	}

	series, err := catalog.GetSeries(ctx, 550)
	if err != nil || series == nil || series.Name != "The Chief" {
		t.Fatalf("GetSeries() = %+v, %v", series, err)
	}

	missing, err := catalog.GetMovie(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("GetMovie(9999) = %+v, %v, want nil, nil", missing, err)
	}

	genres, err := catalog.ListGenres(ctx)
	if err != nil || len(genres) != 4 {
		t.Fatalf("ListGenres() = %d, %v, want 4", len(genres), err)
	}

	stats, err := catalog.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Movies != 1 || stats.Series != 1 || stats.ProductionCountries != 2 || len(stats.TopGenres) != 3 {
		t.Fatalf("stats = %+v", stats)
	}

	recs := NewRecommendationService(repository.NewRecommendationRepository(env.db), env.movies)

	if _, err := recs.Recommend(ctx, 7, 9999); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("Recommend(unknown movie) error = %v", err)
	}
	if _, err := recs.Recommend(ctx, 0, 550); err == nil {
		t.Fatal("Recommend(user 0) should fail")
	}

	rec, err := recs.Recommend(ctx, 7, 550)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.ID == 0 || rec.Movie == nil || rec.Movie.Title != "Fight Club" {
		t.Fatalf("Recommend() = %+v", rec)
	}

	list, err := recs.ForUser(ctx, 7)
	if err != nil || len(list) != 1 || list[0].MovieID != 550 {
		t.Fatalf("ForUser() = %+v, %v", list, err)
	}
}
