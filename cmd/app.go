package main

import (
	"fmt"

	"movia-backend/internal/config"
	"movia-backend/internal/database"
	"movia-backend/internal/handlers"
	"movia-backend/internal/repository"
	"movia-backend/internal/routes"
	"movia-backend/internal/services"
	"movia-backend/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// application holds the services shared by the serve and sync commands.
type application struct {
	cfg             *config.Config
	log             *logrus.Logger
	db              *database.Database
	sync            services.SyncService
	catalog         services.CatalogService
	recommendations services.RecommendationService
}

func newApplication(cfg *config.Config, log *logrus.Logger, fetcher tmdb.Fetcher) (*application, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	if fetcher == nil {
		fetcher = tmdb.NewClient(cfg.TMDB, tmdb.WithLogger(log))
	}

	genreRepo := repository.NewGenreRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	seriesRepo := repository.NewSeriesRepository(db)

	entities := services.NewEntityUpserter(
		genreRepo,
		repository.NewCompanyRepository(db),
		repository.NewCountryRepository(db),
		repository.NewLanguageRepository(db),
		cfg.Sync.CacheSize,
		log,
	)
	records := services.NewRecordUpserter(entities, movieRepo, seriesRepo, log)

	if cfg.Artwork.Enabled {
		mirror, err := services.NewMinIOArtworkMirror(cfg.Artwork, cfg.TMDB.ImageBaseURL, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize artwork mirror: %w", err)
		}
		records.SetArtworkMirror(mirror)
	}

	return &application{
		cfg:             cfg,
		log:             log,
		db:              db,
		sync:            services.NewSyncService(fetcher, records, repository.NewSyncLogRepository(db), cfg.Sync, log),
		catalog:         services.NewCatalogService(movieRepo, seriesRepo, genreRepo, repository.NewStatsRepository(db)),
		recommendations: services.NewRecommendationService(repository.NewRecommendationRepository(db), movieRepo),
	}, nil
}

func (a *application) routeHandlers() routes.Handlers {
	return routes.Handlers{
		Catalog:         handlers.NewCatalogHandler(a.catalog, a.log),
		Sync:            handlers.NewSyncHandler(a.sync, a.cfg.Sync, a.log),
		Recommendations: handlers.NewRecommendationHandler(a.recommendations, a.log),
	}
}

func (a *application) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorf("Error closing database connection: %v", err)
	}
}
