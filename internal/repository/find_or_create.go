package repository

import (
	"context"
	"fmt"
	"time"

	"movia-backend/internal/database"
	"movia-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type base struct {
	db      *database.Database
	timeout time.Duration
}

func newBase(db *database.Database) base {
	return base{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// findOrCreate inserts row unless a row with the same key already exists and
// leaves the stored row in row. The insert is a single
// INSERT ... ON CONFLICT (key) DO NOTHING, so concurrent writers never create
// duplicates and an existing row is never modified. Associations on row are
// not written.
func findOrCreate[T any](db *gorm.DB, keyColumn string, key any, row *T) (bool, error) {
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: keyColumn}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var stored T
	err := db.Where(clause.Eq{Column: clause.Column{Name: keyColumn}, Value: key}).First(&stored).Error
	if err != nil {
		return false, fmt.Errorf("failed to load existing row %v: %w", key, err)
	}
	*row = stored
	return false, nil
}

// attachRelations sets the four many2many collections of a freshly created
// movie or series.
func attachRelations(tx *gorm.DB, owner any, rel models.Relations) error {
	sets := []struct {
		name   string
		values any
		size   int
	}{
		{"Genres", rel.Genres, len(rel.Genres)},
		{"ProductionCompanies", rel.ProductionCompanies, len(rel.ProductionCompanies)},
		{"ProductionCountries", rel.ProductionCountries, len(rel.ProductionCountries)},
		{"SpokenLanguages", rel.SpokenLanguages, len(rel.SpokenLanguages)},
	}

	for _, s := range sets {
		if s.size == 0 {
			continue
		}
		if err := tx.Model(owner).Association(s.name).Replace(s.values); err != nil {
			return fmt.Errorf("failed to attach %s: %w", s.name, err)
		}
	}
	return nil
}

func preloadRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Genres").
		Preload("ProductionCompanies").
		Preload("ProductionCountries").
		Preload("SpokenLanguages")
}

func paginate(page, limit int) (offset int, size int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return (page - 1) * limit, limit
}
