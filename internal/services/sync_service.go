package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"movia-backend/internal/config"
	"movia-backend/internal/models"
	"movia-backend/internal/repository"
	"movia-backend/internal/tmdb"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSyncInProgress = errors.New("a sync pass is already running")
	ErrInvalidRange   = errors.New("invalid id range")
)

type SyncService interface {
	// Run syncs every id in [fromID, toID]. For each id the movie and the
	// series are fetched, then stored, in that order. The first error ends
	// the pass; the returned SyncLog is persisted either way.
	Run(ctx context.Context, fromID, toID int) (*models.SyncLog, error)
	LastLog(ctx context.Context) (*models.SyncLog, error)
}

type syncService struct {
	fetcher tmdb.Fetcher
	records *RecordUpserter
	logs    repository.SyncLogRepository
	cfg     config.SyncConfig
	logger  *logrus.Logger
	running atomic.Bool
}

func NewSyncService(
	fetcher tmdb.Fetcher,
	records *RecordUpserter,
	logs repository.SyncLogRepository,
	cfg config.SyncConfig,
	logger *logrus.Logger,
) SyncService {
	return &syncService{
		fetcher: fetcher,
		records: records,
		logs:    logs,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *syncService) Run(ctx context.Context, fromID, toID int) (*models.SyncLog, error) {
	if fromID < 1 || toID < fromID {
		return nil, fmt.Errorf("%w: from=%d to=%d", ErrInvalidRange, fromID, toID)
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	syncLog := &models.SyncLog{
		RunID:     uuid.NewString(),
		Status:    models.SyncStatusFailed,
		FromID:    fromID,
		ToID:      toID,
		StartedAt: time.Now().UTC(),
	}

	logger := s.logger.WithFields(logrus.Fields{
		"run_id": syncLog.RunID,
		"from":   fromID,
		"to":     toID,
	})
	logger.Info("Sync started")

	err := s.pass(ctx, syncLog, logger)

	syncLog.SyncedAt = time.Now().UTC()
	if err != nil {
		syncLog.ErrorMessage = err.Error()
	} else {
		syncLog.Status = models.SyncStatusSuccess
	}

	// the log is written even when ctx was cancelled
	if werr := s.logs.Create(context.WithoutCancel(ctx), syncLog); werr != nil {
		logger.WithError(werr).Error("Failed to write sync log")
	}

	fields := logrus.Fields{
		"last_id":         syncLog.LastID,
		"movies_created":  syncLog.MoviesCreated,
		"movies_existing": syncLog.MoviesExisting,
		"series_created":  syncLog.SeriesCreated,
		"series_existing": syncLog.SeriesExisting,
		"skipped":         syncLog.Skipped,
		"duration":        syncLog.SyncedAt.Sub(syncLog.StartedAt).String(),
	}
	if err != nil {
		logger.WithFields(fields).WithError(err).Error("Sync failed")
		return syncLog, err
	}

	logger.WithFields(fields).Info("Sync completed")
	return syncLog, nil
}

func (s *syncService) pass(ctx context.Context, syncLog *models.SyncLog, logger *logrus.Entry) error {
	for id := syncLog.FromID; id <= syncLog.ToID; id++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		syncLog.LastID = id

		movieData, err := s.fetch(ctx, tmdb.ContentMovie, id, syncLog, logger)
		if err != nil {
			return err
		}
		seriesData, err := s.fetch(ctx, tmdb.ContentSeries, id, syncLog, logger)
		if err != nil {
			return err
		}

		if movieData != nil {
			_, created, err := s.records.UpsertMovie(ctx, movieData)
			if err != nil {
				return fmt.Errorf("movie %d: %w", id, err)
			}
			if created {
				syncLog.MoviesCreated++
			} else {
				syncLog.MoviesExisting++
			}
		}

		if seriesData != nil {
			_, created, err := s.records.UpsertSeries(ctx, seriesData)
			if err != nil {
				return fmt.Errorf("series %d: %w", id, err)
			}
			if created {
				syncLog.SeriesCreated++
			} else {
				syncLog.SeriesExisting++
			}
		}

		logger.WithField("id", id).Debug("Id synced")
	}
	return nil
}

// fetch returns nil, nil when the item does not exist upstream and
// SkipNotFound is set.
func (s *syncService) fetch(ctx context.Context, ct tmdb.ContentType, id int, syncLog *models.SyncLog, logger *logrus.Entry) (tmdb.Payload, error) {
	data, err := s.fetcher.Fetch(ctx, ct, id)
	if err == nil {
		return data, nil
	}

	if s.cfg.SkipNotFound && errors.Is(err, tmdb.ErrNotFound) {
		syncLog.Skipped++
		logger.WithFields(logrus.Fields{
			"id":   id,
			"type": string(ct),
		}).Warn("Item not found upstream, skipping")
		return nil, nil
	}

	return nil, fmt.Errorf("fetch %s %d: %w", ct, id, err)
}

func (s *syncService) LastLog(ctx context.Context) (*models.SyncLog, error) {
	return s.logs.GetLast(ctx)
}
