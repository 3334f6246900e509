package models

import "time"

type ProductionCompany struct {
	ID            int       `gorm:"primaryKey;autoIncrement:false" json:"id" example:"508"`
	Name          string    `gorm:"not null;size:255" json:"name" example:"Regency Enterprises"`
	LogoPath      *string   `gorm:"size:255" json:"logo_path" example:"/7cxRWzi4LsVm4Utfpr1hfARNurT.png"`
	OriginCountry string    `gorm:"size:2" json:"origin_country" example:"US"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ProductionCompany) TableName() string {
	return "production_companies"
}

type ProductionCountry struct {
	Code      string    `gorm:"column:iso_3166_1;primaryKey;size:2" json:"iso_3166_1" example:"US"`
	Name      string    `gorm:"not null;size:255" json:"name" example:"United States of America"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProductionCountry) TableName() string {
	return "production_countries"
}
