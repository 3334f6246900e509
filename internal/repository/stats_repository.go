package repository

import (
	"context"

	"movia-backend/internal/database"
	"movia-backend/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

type StatsRepository interface {
	CatalogStats(ctx context.Context, topGenres int) (*models.CatalogStats, error)
}

// statsRepository builds its reporting SQL with squirrel and runs it through
// gorm, which rewrites the ? placeholders for the active dialect.
type statsRepository struct {
	base
	builder sq.StatementBuilderType
}

func NewStatsRepository(db *database.Database) StatsRepository {
	return &statsRepository{
		base:    newBase(db),
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *statsRepository) CatalogStats(ctx context.Context, topGenres int) (*models.CatalogStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats models.CatalogStats
	counts := []struct {
		table string
		dest  *int64
	}{
		{"movies", &stats.Movies},
		{"series", &stats.Series},
		{"genres", &stats.Genres},
		{"production_companies", &stats.ProductionCompanies},
		{"production_countries", &stats.ProductionCountries},
		{"spoken_languages", &stats.SpokenLanguages},
	}

	for _, c := range counts {
		query, args, err := r.builder.Select("COUNT(*)").From(c.table).ToSql()
		if err != nil {
			return nil, errors.Wrap(err, "error building query")
		}
		if err := r.db.WithContext(ctx).Raw(query, args...).Scan(c.dest).Error; err != nil {
			return nil, errors.Wrapf(err, "error counting %s", c.table)
		}
	}

	if topGenres <= 0 {
		return &stats, nil
	}

	query, args, err := r.builder.
		Select("g.id AS id", "g.name AS name", "COUNT(mg.movie_id) AS movies").
		From("genres g").
		Join("movie_genres mg ON mg.genre_id = g.id").
		GroupBy("g.id", "g.name").
		OrderBy("movies DESC", "g.id").
		Limit(uint64(topGenres)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&stats.TopGenres).Error; err != nil {
		return nil, errors.Wrap(err, "error executing top genres query")
	}
	if stats.TopGenres == nil {
		stats.TopGenres = []models.GenreCount{}
	}

	return &stats, nil
}
