package models

import (
	"time"
)

type Movie struct {
	ID               int       `gorm:"primaryKey;autoIncrement:false" json:"id" example:"550"`
	Title            string    `gorm:"not null;size:255;index" json:"title" example:"Fight Club"`
	OriginalTitle    string    `gorm:"size:255" json:"original_title" example:"Fight Club"`
	Overview         string    `gorm:"type:text" json:"overview"`
	ReleaseDate      string    `gorm:"size:10;index" json:"release_date" example:"1999-10-15"`
	Runtime          *int      `json:"runtime" example:"139"`
	Budget           int64     `json:"budget" example:"63000000"`
	Revenue          int64     `json:"revenue" example:"100853753"`
	Popularity       float64   `gorm:"index" json:"popularity" example:"61.416"`
	VoteAverage      float64   `json:"vote_average" example:"8.4"`
	VoteCount        int       `json:"vote_count" example:"26280"`
	Status           string    `gorm:"size:255" json:"status" example:"Released"`
	Tagline          *string   `gorm:"size:255" json:"tagline"`
	Homepage         *string   `gorm:"size:255" json:"homepage"`
	IMDbID           string    `gorm:"column:imdb_id;size:255" json:"imdb_id" example:"tt0137523"`
	OriginalLanguage string    `gorm:"size:2" json:"original_language" example:"en"`
	Adult            bool      `json:"adult" example:"false"`
	Video            bool      `json:"video" example:"false"`
	BackdropPath     *string   `gorm:"size:255" json:"backdrop_path"`
	PosterPath       *string   `gorm:"size:255" json:"poster_path"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`

	Genres              []Genre             `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	ProductionCompanies []ProductionCompany `gorm:"many2many:movie_production_companies;" json:"production_companies,omitempty"`
	ProductionCountries []ProductionCountry `gorm:"many2many:movie_production_countries;" json:"production_countries,omitempty"`
	SpokenLanguages     []SpokenLanguage    `gorm:"many2many:movie_spoken_languages;" json:"spoken_languages,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}

// Relations carries the sub-entity handles attached to a movie or series
// when it is first created.
type Relations struct {
	Genres              []Genre
	ProductionCompanies []ProductionCompany
	ProductionCountries []ProductionCountry
	SpokenLanguages     []SpokenLanguage
}

type CatalogStats struct {
	Movies              int64        `json:"movies" example:"98"`
	Series              int64        `json:"series" example:"97"`
	Genres              int64        `json:"genres" example:"19"`
	ProductionCompanies int64        `json:"production_companies" example:"312"`
	ProductionCountries int64        `json:"production_countries" example:"41"`
	SpokenLanguages     int64        `json:"spoken_languages" example:"37"`
	TopGenres           []GenreCount `json:"top_genres"`
}

type GenreCount struct {
	ID     int    `json:"id" example:"18"`
	Name   string `json:"name" example:"Drame"`
	Movies int64  `json:"movies" example:"42"`
}
