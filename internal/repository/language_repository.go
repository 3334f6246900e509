package repository

import (
	"context"

	"movia-backend/internal/database"
	"movia-backend/internal/models"
)

type LanguageRepository interface {
	FindOrCreate(ctx context.Context, code string, defaults models.SpokenLanguage) (*models.SpokenLanguage, bool, error)
}

type languageRepository struct {
	base
}

func NewLanguageRepository(db *database.Database) LanguageRepository {
	return &languageRepository{base: newBase(db)}
}

func (r *languageRepository) FindOrCreate(ctx context.Context, code string, defaults models.SpokenLanguage) (*models.SpokenLanguage, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	language := defaults
	language.Code = code
	created, err := findOrCreate(r.db.WithContext(ctx), "iso_639_1", code, &language)
	if err != nil {
		return nil, false, err
	}
	return &language, created, nil
}
