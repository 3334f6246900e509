package services

import (
	"context"
	"fmt"

	"movia-backend/internal/models"
	"movia-backend/internal/repository"
	"movia-backend/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// EntityUpserter resolves the genres, production companies, production
// countries and spoken languages listed in a details payload into stored
// rows, creating the ones not seen before.
type EntityUpserter struct {
	genres    repository.GenreRepository
	companies repository.CompanyRepository
	countries repository.CountryRepository
	languages repository.LanguageRepository

	genreCache    *keyCache[int, models.Genre]
	companyCache  *keyCache[int, models.ProductionCompany]
	countryCache  *keyCache[string, models.ProductionCountry]
	languageCache *keyCache[string, models.SpokenLanguage]

	logger *logrus.Logger
}

// NewEntityUpserter builds an upserter. cacheSize bounds each per-kind
// lookup cache; zero disables caching.
func NewEntityUpserter(
	genres repository.GenreRepository,
	companies repository.CompanyRepository,
	countries repository.CountryRepository,
	languages repository.LanguageRepository,
	cacheSize int,
	logger *logrus.Logger,
) *EntityUpserter {
	return &EntityUpserter{
		genres:        genres,
		companies:     companies,
		countries:     countries,
		languages:     languages,
		genreCache:    newKeyCache[int, models.Genre](cacheSize),
		companyCache:  newKeyCache[int, models.ProductionCompany](cacheSize),
		countryCache:  newKeyCache[string, models.ProductionCountry](cacheSize),
		languageCache: newKeyCache[string, models.SpokenLanguage](cacheSize),
		logger:        logger,
	}
}

// Upsert reads the four sub-entity lists of p and returns the stored rows.
// It stops at the first malformed entry or storage failure; rows created
// before the failure stay committed.
func (u *EntityUpserter) Upsert(ctx context.Context, p tmdb.Payload) (models.Relations, error) {
	var rel models.Relations

	f := p.Fields()
	genreItems := f.List("genres")
	companyItems := f.List("production_companies")
	countryItems := f.List("production_countries")
	languageItems := f.List("spoken_languages")
	if err := f.Err(); err != nil {
		return rel, err
	}

	var created, n int
	var err error

	rel.Genres, n, err = upsertAll(ctx, "genres", genreItems, u.genreCache,
		func(f *tmdb.FieldReader) (int, models.Genre) {
			id := f.Int("id")
			return id, models.Genre{ID: id, Name: f.String("name")}
		},
		u.genres.FindOrCreate,
	)
	created += n
	if err != nil {
		return rel, err
	}

	rel.ProductionCompanies, n, err = upsertAll(ctx, "production_companies", companyItems, u.companyCache,
		func(f *tmdb.FieldReader) (int, models.ProductionCompany) {
			id := f.Int("id")
			return id, models.ProductionCompany{
				ID:            id,
				Name:          f.String("name"),
				LogoPath:      f.OptionalString("logo_path"),
				OriginCountry: f.String("origin_country"),
			}
		},
		u.companies.FindOrCreate,
	)
	created += n
	if err != nil {
		return rel, err
	}

	rel.ProductionCountries, n, err = upsertAll(ctx, "production_countries", countryItems, u.countryCache,
		func(f *tmdb.FieldReader) (string, models.ProductionCountry) {
			code := f.String("iso_3166_1")
			return code, models.ProductionCountry{Code: code, Name: f.String("name")}
		},
		u.countries.FindOrCreate,
	)
	created += n
	if err != nil {
		return rel, err
	}

	rel.SpokenLanguages, n, err = upsertAll(ctx, "spoken_languages", languageItems, u.languageCache,
		func(f *tmdb.FieldReader) (string, models.SpokenLanguage) {
			code := f.String("iso_639_1")
			return code, models.SpokenLanguage{
				Code:        code,
				Name:        f.String("name"),
				EnglishName: f.String("english_name"),
			}
		},
		u.languages.FindOrCreate,
	)
	created += n
	if err != nil {
		return rel, err
	}

	if created > 0 {
		u.logger.WithFields(logrus.Fields{
			"genres":    len(rel.Genres),
			"companies": len(rel.ProductionCompanies),
			"countries": len(rel.ProductionCountries),
			"languages": len(rel.SpokenLanguages),
			"created":   created,
		}).Debug("Sub-entities upserted")
	}

	return rel, nil
}

// upsertAll resolves each entry of items in order. Entries repeating a key
// already handled in this list are skipped. It returns the number of rows
// created, including when it fails part way.
func upsertAll[K comparable, V any](
	ctx context.Context,
	kind string,
	items []tmdb.Payload,
	cache *keyCache[K, V],
	decode func(*tmdb.FieldReader) (K, V),
	findOrCreate func(context.Context, K, V) (*V, bool, error),
) ([]V, int, error) {
	out := make([]V, 0, len(items))
	seen := make(map[K]struct{}, len(items))
	created := 0

	for i, item := range items {
		f := item.Fields()
		key, defaults := decode(f)
		if err := f.Err(); err != nil {
			return nil, created, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}

		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if row, ok := cache.get(key); ok {
			out = append(out, row)
			continue
		}

		row, isNew, err := findOrCreate(ctx, key, defaults)
		if err != nil {
			return nil, created, fmt.Errorf("failed to upsert %s %v: %w", kind, key, err)
		}
		if isNew {
			created++
		}

		cache.add(key, *row)
		out = append(out, *row)
	}

	return out, created, nil
}
