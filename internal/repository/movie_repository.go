package repository

import (
	"context"
	"errors"

	"movia-backend/internal/database"
	"movia-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	// FindOrCreate inserts movie if no row with its id exists. Relations are
	// attached only when this call created the row; an existing row is
	// returned untouched.
	FindOrCreate(ctx context.Context, movie *models.Movie, rel models.Relations) (*models.Movie, bool, error)
	FindByID(ctx context.Context, id int) (*models.Movie, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error)
}

type movieRepository struct {
	base
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{base: newBase(db)}
}

func (r *movieRepository) FindOrCreate(ctx context.Context, movie *models.Movie, rel models.Relations) (*models.Movie, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := *movie
	row.Genres, row.ProductionCompanies, row.ProductionCountries, row.SpokenLanguages = nil, nil, nil, nil

	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = findOrCreate(tx, "id", row.ID, &row)
		if err != nil || !created {
			return err
		}
		return attachRelations(tx, &row, rel)
	})
	if err != nil {
		return nil, false, err
	}
	return &row, created, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := preloadRelations(r.db.WithContext(ctx)).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(original_title) LIKE LOWER(?)", pattern, pattern)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, size := paginate(page, limit)
	err := preloadRelations(query).
		Order("popularity DESC, id").
		Offset(offset).Limit(size).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}
