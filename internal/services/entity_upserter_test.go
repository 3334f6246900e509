package services

import (
	"context"
	"errors"
	"testing"

	"movia-backend/internal/models"
	"movia-backend/internal/repository"
	"movia-backend/internal/tmdb"
)

type countingGenreRepository struct {
	repository.GenreRepository
	calls int
}

func (r *countingGenreRepository) FindOrCreate(ctx context.Context, id int, defaults models.Genre) (*models.Genre, bool, error) {
	r.calls++
	return r.GenreRepository.FindOrCreate(ctx, id, defaults)
}

func newCountingUpserter(t *testing.T, cacheSize int) (*EntityUpserter, *countingGenreRepository) {
	t.Helper()
	env := newTestEnv(t, 0)
	genres := &countingGenreRepository{GenreRepository: env.genres}
	u := NewEntityUpserter(
		genres,
		repository.NewCompanyRepository(env.db),
		repository.NewCountryRepository(env.db),
		repository.NewLanguageRepository(env.db),
		cacheSize,
		quietLogger(),
	)
	return u, genres
}

func TestEntityUpsertReturnsPayloadOrder(t *testing.T) {
	u, _ := newCountingUpserter(t, 0)

	rel, err := u.Upsert(context.Background(), loadPayload(t, "movie_550.json"))
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	want := []int{18, 53, 35}
	if len(rel.Genres) != len(want) {
		t.Fatalf("genres = %d, want %d", len(rel.Genres), len(want))
	}
	for i, id := range want {
		if rel.Genres[i].ID != id {
			t.Errorf("Genres[%d].ID = %d, want %d", i, rel.Genres[i].ID, id)
		}
	}
	if rel.ProductionCompanies[0].LogoPath == nil || *rel.ProductionCompanies[0].LogoPath != "/7cxRWzi4LsVm4Utfpr1hfARNurT.png" {
		t.Errorf("LogoPath = %v", rel.ProductionCompanies[0].LogoPath)
	}
	if rel.ProductionCountries[0].Code != "US" || rel.SpokenLanguages[0].EnglishName != "English" {
		t.Errorf("relations = %+v", rel)
	}
}

func TestEntityUpsertCache(t *testing.T) {
	tests := []struct {
		name      string
		cacheSize int
		wantCalls int
	}{
		{"disabled", 0, 6},
		{"enabled", 16, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, genres := newCountingUpserter(t, tt.cacheSize)
			ctx := context.Background()

			for i := 0; i < 2; i++ {
				if _, err := u.Upsert(ctx, loadPayload(t, "movie_550.json")); err != nil {
					t.Fatalf("Upsert() error = %v", err)
				}
			}
			if genres.calls != tt.wantCalls {
				t.Fatalf("FindOrCreate calls = %d, want %d", genres.calls, tt.wantCalls)
			}
		})
	}
}

func TestEntityUpsertDeduplicatesKeys(t *testing.T) {
	u, genres := newCountingUpserter(t, 0)

	p := loadPayload(t, "movie_550.json")
	p["genres"] = []any{
		map[string]any{"id": 18, "name": "Drame"},
		map[string]any{"id": 18, "name": "Drame"},
	}

	rel, err := u.Upsert(context.Background(), p)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if len(rel.Genres) != 1 || genres.calls != 1 {
		t.Fatalf("genres = %d, calls = %d, want 1 and 1", len(rel.Genres), genres.calls)
	}
}

func TestEntityUpsertMalformedEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(tmdb.Payload)
		check  func(error) bool
	}{
		{
			name:   "missing list",
			mutate: func(p tmdb.Payload) { delete(p, "spoken_languages") },
			check: func(err error) bool {
				var m *tmdb.MissingKeyError
				return errors.As(err, &m) && m.Key == "spoken_languages"
			},
		},
		{
			name: "missing country name",
			mutate: func(p tmdb.Payload) {
				p["production_countries"] = []any{map[string]any{"iso_3166_1": "US"}}
			},
			check: func(err error) bool {
				var m *tmdb.MissingKeyError
				return errors.As(err, &m) && m.Key == "name"
			},
		},
		{
			name: "genre id is a string",
			mutate: func(p tmdb.Payload) {
				p["genres"] = []any{map[string]any{"id": "eighteen", "name": "Drame"}}
			},
			check: func(err error) bool {
				var f *tmdb.FieldTypeError
				return errors.As(err, &f) && f.Key == "id"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, _ := newCountingUpserter(t, 0)
			p := loadPayload(t, "movie_550.json")
			tt.mutate(p)

			if _, err := u.Upsert(context.Background(), p); !tt.check(err) {
				t.Fatalf("Upsert() error = %v", err)
			}
		})
	}
}

func TestKeyCache(t *testing.T) {
	disabled := newKeyCache[int, string](0)
	disabled.add(1, "a")
	if _, ok := disabled.get(1); ok || disabled.len() != 0 {
		t.Fatal("disabled cache must not store entries")
	}

	c := newKeyCache[int, string](2)
	c.add(1, "a")
	c.add(2, "b")
	c.add(3, "c")
	if _, ok := c.get(1); ok {
		t.Fatal("least recently used entry should be evicted")
	}
	if v, ok := c.get(3); !ok || v != "c" {
		t.Fatalf("get(3) = %q, %v", v, ok)
	}
}
