package repository

import (
	"context"

	"movia-backend/internal/database"
	"movia-backend/internal/models"
)

type CompanyRepository interface {
	FindOrCreate(ctx context.Context, id int, defaults models.ProductionCompany) (*models.ProductionCompany, bool, error)
}

type companyRepository struct {
	base
}

func NewCompanyRepository(db *database.Database) CompanyRepository {
	return &companyRepository{base: newBase(db)}
}

func (r *companyRepository) FindOrCreate(ctx context.Context, id int, defaults models.ProductionCompany) (*models.ProductionCompany, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	company := defaults
	company.ID = id
	created, err := findOrCreate(r.db.WithContext(ctx), "id", id, &company)
	if err != nil {
		return nil, false, err
	}
	return &company, created, nil
}
