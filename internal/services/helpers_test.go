package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"movia-backend/internal/config"
	"movia-backend/internal/database"
	"movia-backend/internal/repository"
	"movia-backend/internal/tmdb"

	"github.com/sirupsen/logrus"
)

func loadPayload(t *testing.T, name string) tmdb.Payload {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	p, err := tmdb.DecodePayload(f)
	if err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return p
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type testEnv struct {
	db       *database.Database
	genres   repository.GenreRepository
	movies   repository.MovieRepository
	series   repository.SeriesRepository
	logs     repository.SyncLogRepository
	entities *EntityUpserter
	records  *RecordUpserter
}

func newTestEnv(t *testing.T, cacheSize int) *testEnv {
	t.Helper()
	db := database.OpenTest(t)
	logger := quietLogger()

	env := &testEnv{
		db:     db,
		genres: repository.NewGenreRepository(db),
		movies: repository.NewMovieRepository(db),
		series: repository.NewSeriesRepository(db),
		logs:   repository.NewSyncLogRepository(db),
	}
	env.entities = NewEntityUpserter(
		env.genres,
		repository.NewCompanyRepository(db),
		repository.NewCountryRepository(db),
		repository.NewLanguageRepository(db),
		cacheSize,
		logger,
	)
	env.records = NewRecordUpserter(env.entities, env.movies, env.series, logger)
	return env
}

func (e *testEnv) syncService(f tmdb.Fetcher, cfg config.SyncConfig) SyncService {
	return NewSyncService(f, e.records, e.logs, cfg, quietLogger())
}

func (e *testEnv) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	if err := e.db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// fakeFetcher serves payloads keyed by "movie/550" or "tv/550". Unknown
// keys answer with a 404 StatusError.
type fakeFetcher struct {
	mu       sync.Mutex
	payloads map[string]tmdb.Payload
	errs     map[string]error
	calls    []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		payloads: map[string]tmdb.Payload{},
		errs:     map[string]error{},
	}
}

func (f *fakeFetcher) set(ct tmdb.ContentType, id int, p tmdb.Payload) {
	f.payloads[fmt.Sprintf("%s/%d", ct, id)] = p
}

func (f *fakeFetcher) fail(ct tmdb.ContentType, id int, err error) {
	f.errs[fmt.Sprintf("%s/%d", ct, id)] = err
}

func (f *fakeFetcher) Fetch(ctx context.Context, ct tmdb.ContentType, id int) (tmdb.Payload, error) {
	key := fmt.Sprintf("%s/%d", ct, id)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)

	if err := f.errs[key]; err != nil {
		return nil, err
	}
	p, ok := f.payloads[key]
	if !ok {
		return nil, &tmdb.StatusError{StatusCode: 404, Body: `{"status_code":34}`}
	}
	return p, nil
}

type mirrorCall struct {
	objectKey string
	imagePath string
}

type recordingMirror struct {
	calls []mirrorCall
	err   error
}

func (m *recordingMirror) Mirror(ctx context.Context, objectKey, imagePath string) (string, error) {
	m.calls = append(m.calls, mirrorCall{objectKey, imagePath})
	if m.err != nil {
		return "", m.err
	}
	return objectKey + filepath.Ext(imagePath), nil
}
