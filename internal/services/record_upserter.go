package services

import (
	"context"
	"fmt"

	"movia-backend/internal/models"
	"movia-backend/internal/repository"
	"movia-backend/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// RecordUpserter stores a movie or series payload together with its
// sub-entities. The first stored version of a record wins: later payloads
// for the same id never modify it.
type RecordUpserter struct {
	entities *EntityUpserter
	movies   repository.MovieRepository
	series   repository.SeriesRepository
	artwork  ArtworkMirror
	logger   *logrus.Logger
}

func NewRecordUpserter(
	entities *EntityUpserter,
	movies repository.MovieRepository,
	series repository.SeriesRepository,
	logger *logrus.Logger,
) *RecordUpserter {
	return &RecordUpserter{
		entities: entities,
		movies:   movies,
		series:   series,
		logger:   logger,
	}
}

// SetArtworkMirror enables mirroring of poster and backdrop images for
// newly created records.
func (u *RecordUpserter) SetArtworkMirror(m ArtworkMirror) {
	u.artwork = m
}

// UpsertMovie resolves the sub-entities of p, then reads every movie column
// and gets-or-creates the movie. A payload missing any column fails before
// the movie row is written, even when the movie already exists.
func (u *RecordUpserter) UpsertMovie(ctx context.Context, p tmdb.Payload) (*models.Movie, bool, error) {
	rel, err := u.entities.Upsert(ctx, p)
	if err != nil {
		return nil, false, err
	}

	movie, err := movieFromPayload(p)
	if err != nil {
		return nil, false, err
	}

	stored, created, err := u.movies.FindOrCreate(ctx, movie, rel)
	if err != nil {
		return nil, false, fmt.Errorf("failed to store movie %d: %w", movie.ID, err)
	}

	if created {
		u.logger.WithFields(logrus.Fields{
			"id":    stored.ID,
			"title": stored.Title,
		}).Info("Movie created")
		u.mirrorArtwork(ctx, fmt.Sprintf("movie/%d", stored.ID), stored.PosterPath, stored.BackdropPath)
	}

	return stored, created, nil
}

func (u *RecordUpserter) UpsertSeries(ctx context.Context, p tmdb.Payload) (*models.Series, bool, error) {
	rel, err := u.entities.Upsert(ctx, p)
	if err != nil {
		return nil, false, err
	}

	series, err := seriesFromPayload(p)
	if err != nil {
		return nil, false, err
	}

	stored, created, err := u.series.FindOrCreate(ctx, series, rel)
	if err != nil {
		return nil, false, fmt.Errorf("failed to store series %d: %w", series.ID, err)
	}

	if created {
		u.logger.WithFields(logrus.Fields{
			"id":   stored.ID,
			"name": stored.Name,
		}).Info("Series created")
		u.mirrorArtwork(ctx, fmt.Sprintf("series/%d", stored.ID), stored.PosterPath, stored.BackdropPath)
	}

	return stored, created, nil
}

// mirrorArtwork failures are logged and never fail the upsert.
func (u *RecordUpserter) mirrorArtwork(ctx context.Context, prefix string, poster, backdrop *string) {
	if u.artwork == nil {
		return
	}

	images := []struct {
		name string
		path *string
	}{
		{"poster", poster},
		{"backdrop", backdrop},
	}
	for _, img := range images {
		if img.path == nil {
			continue
		}
		objectKey := prefix + "/" + img.name
		stored, err := u.artwork.Mirror(ctx, objectKey, *img.path)
		if err != nil {
			u.logger.WithError(err).WithFields(logrus.Fields{
				"object": objectKey,
				"path":   *img.path,
			}).Warn("Failed to mirror artwork")
			continue
		}
		u.logger.WithFields(logrus.Fields{
			"object": objectKey,
			"stored": stored,
		}).Debug("Artwork mirrored")
	}
}
