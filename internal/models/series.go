package models

import "time"

// Series mirrors Movie for TMDB "tv" content.
type Series struct {
	ID               int       `gorm:"primaryKey;autoIncrement:false" json:"id" example:"1399"`
	Name             string    `gorm:"not null;size:255;index" json:"name" example:"Game of Thrones"`
	OriginalName     string    `gorm:"size:255" json:"original_name" example:"Game of Thrones"`
	Overview         string    `gorm:"type:text" json:"overview"`
	FirstAirDate     string    `gorm:"size:10;index" json:"first_air_date" example:"2011-04-17"`
	LastAirDate      *string   `gorm:"size:10" json:"last_air_date" example:"2019-05-19"`
	NumberOfSeasons  int       `json:"number_of_seasons" example:"8"`
	NumberOfEpisodes int       `json:"number_of_episodes" example:"73"`
	Popularity       float64   `gorm:"index" json:"popularity"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	Status           string    `gorm:"size:255" json:"status" example:"Ended"`
	Type             string    `gorm:"size:64" json:"type" example:"Scripted"`
	Tagline          *string   `gorm:"size:255" json:"tagline"`
	Homepage         *string   `gorm:"size:255" json:"homepage"`
	OriginalLanguage string    `gorm:"size:2" json:"original_language" example:"en"`
	Adult            bool      `json:"adult"`
	InProduction     bool      `json:"in_production"`
	BackdropPath     *string   `gorm:"size:255" json:"backdrop_path"`
	PosterPath       *string   `gorm:"size:255" json:"poster_path"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`

	Genres              []Genre             `gorm:"many2many:series_genres;" json:"genres,omitempty"`
	ProductionCompanies []ProductionCompany `gorm:"many2many:series_production_companies;" json:"production_companies,omitempty"`
	ProductionCountries []ProductionCountry `gorm:"many2many:series_production_countries;" json:"production_countries,omitempty"`
	SpokenLanguages     []SpokenLanguage    `gorm:"many2many:series_spoken_languages;" json:"spoken_languages,omitempty"`
}

func (Series) TableName() string {
	return "series"
}
