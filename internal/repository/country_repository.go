package repository

import (
	"context"

	"movia-backend/internal/database"
	"movia-backend/internal/models"
)

type CountryRepository interface {
	FindOrCreate(ctx context.Context, code string, defaults models.ProductionCountry) (*models.ProductionCountry, bool, error)
}

type countryRepository struct {
	base
}

func NewCountryRepository(db *database.Database) CountryRepository {
	return &countryRepository{base: newBase(db)}
}

func (r *countryRepository) FindOrCreate(ctx context.Context, code string, defaults models.ProductionCountry) (*models.ProductionCountry, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	country := defaults
	country.Code = code
	created, err := findOrCreate(r.db.WithContext(ctx), "iso_3166_1", code, &country)
	if err != nil {
		return nil, false, err
	}
	return &country, created, nil
}
