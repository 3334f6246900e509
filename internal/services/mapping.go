package services

import (
	"fmt"

	"movia-backend/internal/models"
	"movia-backend/internal/tmdb"
)

// movieFromPayload reads every scalar column of a movie. All keys must be
// present; nullable columns accept null.
func movieFromPayload(p tmdb.Payload) (*models.Movie, error) {
	f := p.Fields()
	movie := &models.Movie{
		ID:               f.Int("id"),
		Adult:            f.Bool("adult"),
		BackdropPath:     f.OptionalString("backdrop_path"),
		Budget:           f.Int64("budget"),
		Homepage:         f.OptionalString("homepage"),
		IMDbID:           f.String("imdb_id"),
		OriginalLanguage: f.String("original_language"),
		OriginalTitle:    f.String("original_title"),
		Overview:         f.String("overview"),
		Popularity:       f.Float("popularity"),
		PosterPath:       f.OptionalString("poster_path"),
		ReleaseDate:      f.String("release_date"),
		Revenue:          f.Int64("revenue"),
		Runtime:          f.OptionalInt("runtime"),
		Status:           f.String("status"),
		Tagline:          f.OptionalString("tagline"),
		Title:            f.String("title"),
		Video:            f.Bool("video"),
		VoteAverage:      f.Float("vote_average"),
		VoteCount:        f.Int("vote_count"),
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("movie payload: %w", err)
	}
	return movie, nil
}

func seriesFromPayload(p tmdb.Payload) (*models.Series, error) {
	f := p.Fields()
	series := &models.Series{
		ID:               f.Int("id"),
		Adult:            f.Bool("adult"),
		BackdropPath:     f.OptionalString("backdrop_path"),
		FirstAirDate:     f.String("first_air_date"),
		Homepage:         f.OptionalString("homepage"),
		InProduction:     f.Bool("in_production"),
		LastAirDate:      f.OptionalString("last_air_date"),
		Name:             f.String("name"),
		NumberOfEpisodes: f.Int("number_of_episodes"),
		NumberOfSeasons:  f.Int("number_of_seasons"),
		OriginalLanguage: f.String("original_language"),
		OriginalName:     f.String("original_name"),
		Overview:         f.String("overview"),
		Popularity:       f.Float("popularity"),
		PosterPath:       f.OptionalString("poster_path"),
		Status:           f.String("status"),
		Tagline:          f.OptionalString("tagline"),
		Type:             f.String("type"),
		VoteAverage:      f.Float("vote_average"),
		VoteCount:        f.Int("vote_count"),
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("series payload: %w", err)
	}
	return series, nil
}
