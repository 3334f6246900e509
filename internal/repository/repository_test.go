package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"movia-backend/internal/database"
	"movia-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestGenreFindOrCreateFirstWriteWins(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	g, created, err := repo.FindOrCreate(ctx, 18, models.Genre{Name: "Drame"})
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if !created || g.ID != 18 || g.Name != "Drame" {
		t.Fatalf("first FindOrCreate() = %+v, created = %v", g, created)
	}

	g, created, err = repo.FindOrCreate(ctx, 18, models.Genre{Name: "Drama"})
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if created {
		t.Fatal("second FindOrCreate() reported created")
	}
	if g.Name != "Drame" {
		t.Fatalf("Name = %q, stored row must not be reconciled", g.Name)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("FindAll() = %d rows, want 1", len(all))
	}

	missing, err := repo.FindByID(ctx, 99)
	if err != nil || missing != nil {
		t.Fatalf("FindByID(99) = %v, %v", missing, err)
	}
}

func TestNaturalKeyRepositories(t *testing.T) {
	db := database.OpenTest(t)
	ctx := context.Background()

	countries := NewCountryRepository(db)
	c, created, err := countries.FindOrCreate(ctx, "US", models.ProductionCountry{Name: "United States of America"})
	if err != nil || !created || c.Code != "US" {
		t.Fatalf("country FindOrCreate() = %+v, %v, %v", c, created, err)
	}
	c, created, err = countries.FindOrCreate(ctx, "US", models.ProductionCountry{Name: "États-Unis"})
	if err != nil || created || c.Name != "United States of America" {
		t.Fatalf("country re-FindOrCreate() = %+v, %v, %v", c, created, err)
	}

	languages := NewLanguageRepository(db)
	l, created, err := languages.FindOrCreate(ctx, "en", models.SpokenLanguage{Name: "English", EnglishName: "English"})
	if err != nil || !created || l.Code != "en" {
		t.Fatalf("language FindOrCreate() = %+v, %v, %v", l, created, err)
	}
	_, created, err = languages.FindOrCreate(ctx, "en", models.SpokenLanguage{Name: "Anglais", EnglishName: "English"})
	if err != nil || created {
		t.Fatalf("language re-FindOrCreate() created = %v, err = %v", created, err)
	}

	companies := NewCompanyRepository(db)
	co, created, err := companies.FindOrCreate(ctx, 508, models.ProductionCompany{Name: "Regency Enterprises", OriginCountry: "US"})
	if err != nil || !created || co.LogoPath != nil {
		t.Fatalf("company FindOrCreate() = %+v, %v, %v", co, created, err)
	}

	var n int64
	db.Model(&models.SpokenLanguage{}).Count(&n)
	if n != 1 {
		t.Fatalf("spoken_languages rows = %d, want 1", n)
	}
}

func seedRelations(t *testing.T, db *database.Database) models.Relations {
	t.Helper()
	ctx := context.Background()

	var rel models.Relations
	for _, g := range []models.Genre{{ID: 18, Name: "Drame"}, {ID: 53, Name: "Thriller"}, {ID: 35, Name: "Comédie"}} {
		row, _, err := NewGenreRepository(db).FindOrCreate(ctx, g.ID, g)
		if err != nil {
			t.Fatalf("seed genre: %v", err)
		}
		rel.Genres = append(rel.Genres, *row)
	}
	company, _, err := NewCompanyRepository(db).FindOrCreate(ctx, 508, models.ProductionCompany{Name: "Regency Enterprises", OriginCountry: "US"})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	rel.ProductionCompanies = []models.ProductionCompany{*company}
	country, _, err := NewCountryRepository(db).FindOrCreate(ctx, "US", models.ProductionCountry{Name: "United States of America"})
	if err != nil {
		t.Fatalf("seed country: %v", err)
	}
	rel.ProductionCountries = []models.ProductionCountry{*country}
	language, _, err := NewLanguageRepository(db).FindOrCreate(ctx, "en", models.SpokenLanguage{Name: "English", EnglishName: "English"})
	if err != nil {
		t.Fatalf("seed language: %v", err)
	}
	rel.SpokenLanguages = []models.SpokenLanguage{*language}
	return rel
}

func TestMovieFindOrCreateAttachesRelationsOnce(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()
	rel := seedRelations(t, db)

	runtime := 139
	movie := &models.Movie{
		ID:          550,
		Title:       "Fight Club",
		Runtime:     &runtime,
		Budget:      63000000,
		Revenue:     100853753,
		VoteAverage: 8.4,
		PosterPath:  strPtr("/poster.jpg"),
	}

	stored, created, err := repo.FindOrCreate(ctx, movie, rel)
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if !created || stored.ID != 550 {
		t.Fatalf("FindOrCreate() = %+v, created = %v", stored, created)
	}

	again := &models.Movie{ID: 550, Title: "Fight Club (Director's Cut)"}
	smaller := models.Relations{Genres: rel.Genres[:1]}
	stored, created, err = repo.FindOrCreate(ctx, again, smaller)
	if err != nil {
		t.Fatalf("second FindOrCreate() error = %v", err)
	}
	if created {
		t.Fatal("second FindOrCreate() reported created")
	}
	if stored.Title != "Fight Club" {
		t.Fatalf("Title = %q, want the first write", stored.Title)
	}

	loaded, err := repo.FindByID(ctx, 550)
	if err != nil || loaded == nil {
		t.Fatalf("FindByID() = %v, %v", loaded, err)
	}
	if len(loaded.Genres) != 3 || len(loaded.ProductionCompanies) != 1 ||
		len(loaded.ProductionCountries) != 1 || len(loaded.SpokenLanguages) != 1 {
		t.Fatalf("relations = {%d,%d,%d,%d}, want {3,1,1,1}",
			len(loaded.Genres), len(loaded.ProductionCompanies),
			len(loaded.ProductionCountries), len(loaded.SpokenLanguages))
	}
	if loaded.Runtime == nil || *loaded.Runtime != 139 || loaded.Budget != 63000000 {
		t.Fatalf("scalars not persisted: %+v", loaded)
	}

	var rows int64
	db.Model(&models.Movie{}).Count(&rows)
	if rows != 1 {
		t.Fatalf("movies rows = %d, want 1", rows)
	}
}

func TestSeriesFindOrCreate(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewSeriesRepository(db)
	ctx := context.Background()
	rel := seedRelations(t, db)

	_, created, err := repo.FindOrCreate(ctx, &models.Series{ID: 1399, Name: "Game of Thrones"}, rel)
	if err != nil || !created {
		t.Fatalf("FindOrCreate() created = %v, err = %v", created, err)
	}
	s, created, err := repo.FindOrCreate(ctx, &models.Series{ID: 1399, Name: "Le Trône de fer"}, models.Relations{})
	if err != nil || created || s.Name != "Game of Thrones" {
		t.Fatalf("re-FindOrCreate() = %+v, %v, %v", s, created, err)
	}

	loaded, err := repo.FindByID(ctx, 1399)
	if err != nil || loaded == nil || len(loaded.Genres) != 3 {
		t.Fatalf("FindByID() = %+v, %v", loaded, err)
	}

	list, total, err := repo.FindAll(ctx, 1, 10, "thrones")
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("FindAll() = %d rows, total %d, err %v", len(list), total, err)
	}
}

func TestMovieFindAllPaginates(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		m := &models.Movie{ID: i, Title: "Movie", Popularity: float64(i)}
		if _, _, err := repo.FindOrCreate(ctx, m, models.Relations{}); err != nil {
			t.Fatalf("FindOrCreate(%d) error = %v", i, err)
		}
	}

	page, total, err := repo.FindAll(ctx, 2, 2, "")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if total != 5 || len(page) != 2 {
		t.Fatalf("FindAll() = %d rows, total %d", len(page), total)
	}
	if page[0].ID != 3 || page[1].ID != 2 {
		t.Fatalf("page 2 = [%d, %d], want [3, 2] by popularity", page[0].ID, page[1].ID)
	}

	none, total, err := repo.FindAll(ctx, 1, 10, "nothing matches")
	if err != nil || total != 0 || len(none) != 0 {
		t.Fatalf("FindAll(search) = %d rows, total %d, err %v", len(none), total, err)
	}
}

func TestCatalogStats(t *testing.T) {
	db := database.OpenTest(t)
	ctx := context.Background()
	rel := seedRelations(t, db)

	if _, _, err := NewMovieRepository(db).FindOrCreate(ctx, &models.Movie{ID: 550, Title: "Fight Club"}, rel); err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if _, _, err := NewMovieRepository(db).FindOrCreate(ctx, &models.Movie{ID: 680, Title: "Pulp Fiction"},
		models.Relations{Genres: rel.Genres[1:2]}); err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}

	stats, err := NewStatsRepository(db).CatalogStats(ctx, 2)
	if err != nil {
		t.Fatalf("CatalogStats() error = %v", err)
	}
	if stats.Movies != 2 || stats.Series != 0 || stats.Genres != 3 ||
		stats.ProductionCompanies != 1 || stats.ProductionCountries != 1 || stats.SpokenLanguages != 1 {
		t.Fatalf("counts = %+v", stats)
	}
	if len(stats.TopGenres) != 2 {
		t.Fatalf("TopGenres = %+v, want 2 entries", stats.TopGenres)
	}
	if stats.TopGenres[0].ID != 53 || stats.TopGenres[0].Movies != 2 {
		t.Fatalf("TopGenres[0] = %+v, want Thriller with 2 movies", stats.TopGenres[0])
	}
}

func TestRecommendationsAndSyncLogs(t *testing.T) {
	db := database.OpenTest(t)
	ctx := context.Background()

	if _, _, err := NewMovieRepository(db).FindOrCreate(ctx, &models.Movie{ID: 550, Title: "Fight Club"}, models.Relations{}); err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}

	recs := NewRecommendationRepository(db)
	if err := recs.Create(ctx, &models.Recommendation{UserID: 7, MovieID: 550}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	list, err := recs.FindByUser(ctx, 7)
	if err != nil || len(list) != 1 || list[0].Movie == nil || list[0].Movie.Title != "Fight Club" {
		t.Fatalf("FindByUser() = %+v, %v", list, err)
	}
	other, err := recs.FindByUser(ctx, 8)
	if err != nil || len(other) != 0 {
		t.Fatalf("FindByUser(8) = %+v, %v", other, err)
	}

	logs := NewSyncLogRepository(db)
	last, err := logs.GetLast(ctx)
	if err != nil || last != nil {
		t.Fatalf("GetLast() on empty table = %+v, %v", last, err)
	}

	now := time.Now().UTC()
	for i, status := range []string{models.SyncStatusFailed, models.SyncStatusSuccess} {
		entry := &models.SyncLog{
			RunID:    string(rune('a' + i)),
			Status:   status,
			SyncedAt: now.Add(time.Duration(i) * time.Minute),
		}
		if err := logs.Create(ctx, entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	last, err = logs.GetLast(ctx)
	if err != nil || last == nil || last.Status != models.SyncStatusSuccess {
		t.Fatalf("GetLast() = %+v, %v", last, err)
	}
}

// runConcurrently starts n callers together and waits for all of them.
func runConcurrently(n int, call func(i int)) {
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			call(i)
		}(i)
	}
	close(start)
	wg.Wait()
}

func TestGenreFindOrCreateConcurrentCallersShareOneRow(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	const callers = 8
	var (
		mu      sync.Mutex
		created int
		names   []string
	)
	runConcurrently(callers, func(i int) {
		g, ok, err := repo.FindOrCreate(ctx, 18, models.Genre{Name: fmt.Sprintf("Drame-%d", i)})
		if err != nil {
			t.Errorf("FindOrCreate() error = %v", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if ok {
			created++
		}
		names = append(names, g.Name)
	})

	if created != 1 {
		t.Fatalf("created = %d, want exactly 1", created)
	}
	if len(names) != callers {
		t.Fatalf("results = %d, want %d", len(names), callers)
	}
	for _, name := range names {
		if name != names[0] {
			t.Fatalf("callers saw %v, want one stored name", names)
		}
	}

	var rows int64
	db.Model(&models.Genre{}).Count(&rows)
	if rows != 1 {
		t.Fatalf("genres rows = %d, want 1", rows)
	}
}

func TestMovieFindOrCreateConcurrentCallersAttachOnce(t *testing.T) {
	db := database.OpenTest(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()
	rel := seedRelations(t, db)

	const callers = 8
	var (
		mu      sync.Mutex
		created int
		titles  []string
	)
	runConcurrently(callers, func(i int) {
		movie := &models.Movie{ID: 550, Title: fmt.Sprintf("Fight Club %d", i)}
		stored, ok, err := repo.FindOrCreate(ctx, movie, rel)
		if err != nil {
			t.Errorf("FindOrCreate() error = %v", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if ok {
			created++
		}
		titles = append(titles, stored.Title)
	})

	if created != 1 {
		t.Fatalf("created = %d, want exactly 1", created)
	}
	for _, title := range titles {
		if title != titles[0] {
			t.Fatalf("callers saw %v, want one stored title", titles)
		}
	}

	tables := map[string]int64{
		"movies":                     1,
		"movie_genres":               int64(len(rel.Genres)),
		"movie_production_companies": int64(len(rel.ProductionCompanies)),
		"movie_production_countries": int64(len(rel.ProductionCountries)),
		"movie_spoken_languages":     int64(len(rel.SpokenLanguages)),
	}
	for table, want := range tables {
		var got int64
		if err := db.Table(table).Count(&got).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s rows = %d, want %d", table, got, want)
		}
	}
}
