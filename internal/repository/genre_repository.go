package repository

import (
	"context"
	"errors"

	"movia-backend/internal/database"
	"movia-backend/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	FindOrCreate(ctx context.Context, id int, defaults models.Genre) (*models.Genre, bool, error)
	FindByID(ctx context.Context, id int) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	base
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{base: newBase(db)}
}

func (r *genreRepository) FindOrCreate(ctx context.Context, id int, defaults models.Genre) (*models.Genre, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	genre := defaults
	genre.ID = id
	created, err := findOrCreate(r.db.WithContext(ctx), "id", id, &genre)
	if err != nil {
		return nil, false, err
	}
	return &genre, created, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("name").Find(&genres).Error
	return genres, err
}
