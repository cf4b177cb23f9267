package domain

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PackageCategory struct {
	Record
	NameEN        string  `gorm:"column:name_en;size:255;not null" json:"name_en"`
	NameAR        string  `gorm:"column:name_ar;size:255;not null" json:"name_ar"`
	DescriptionEN *string `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string `gorm:"column:description_ar;type:text" json:"description_ar"`
	ImageURL      *string `gorm:"column:image_url;size:1024" json:"image_url"`
	SortOrder     int     `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	IsActive      bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// ItineraryDay is stored in whatever order the admin entered it.
type ItineraryDay struct {
	Day           int    `json:"day"`
	TitleEN       string `json:"title_en"`
	TitleAR       string `json:"title_ar"`
	DescriptionEN string `json:"description_en,omitempty"`
	DescriptionAR string `json:"description_ar,omitempty"`
}

type TourPackage struct {
	Record
	CategoryID    *string                           `gorm:"column:category_id;type:char(36);index" json:"category_id"`
	Category      *PackageCategory                  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	LocationID    *string                           `gorm:"column:location_id;type:char(36);index" json:"location_id"`
	Location      *Location                         `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	TitleEN       string                            `gorm:"column:title_en;size:255;not null" json:"title_en"`
	TitleAR       string                            `gorm:"column:title_ar;size:255;not null" json:"title_ar"`
	DescriptionEN *string                           `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string                           `gorm:"column:description_ar;type:text" json:"description_ar"`
	LocationEN    *string                           `gorm:"column:location_en;size:255" json:"location_en"`
	LocationAR    *string                           `gorm:"column:location_ar;size:255" json:"location_ar"`
	PackageType   string                            `gorm:"column:package_type;size:64;not null" json:"package_type"`
	DurationDays  int                               `gorm:"column:duration_days;not null" json:"duration_days"`
	Price         decimal.Decimal                   `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	Currency      string                            `gorm:"column:currency;size:3;not null" json:"currency"`
	InclusionsEN  datatypes.JSONSlice[string]       `gorm:"column:inclusions_en;type:json" json:"inclusions_en"`
	InclusionsAR  datatypes.JSONSlice[string]       `gorm:"column:inclusions_ar;type:json" json:"inclusions_ar"`
	ExclusionsEN  datatypes.JSONSlice[string]       `gorm:"column:exclusions_en;type:json" json:"exclusions_en"`
	ExclusionsAR  datatypes.JSONSlice[string]       `gorm:"column:exclusions_ar;type:json" json:"exclusions_ar"`
	Itinerary     datatypes.JSONSlice[ItineraryDay] `gorm:"column:itinerary;type:json" json:"itinerary"`
	ImageURL      *string                           `gorm:"column:image_url;size:1024" json:"image_url"`
	Images        datatypes.JSONSlice[string]       `gorm:"column:images;type:json" json:"images"`
	IsFeatured    bool                              `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsActive      bool                              `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// PackageDiscoverCard is a singleton; at most one row is expected.
type PackageDiscoverCard struct {
	Record
	TitleEN  string  `gorm:"column:title_en;size:255;not null" json:"title_en"`
	TitleAR  string  `gorm:"column:title_ar;size:255;not null" json:"title_ar"`
	ImageURL *string `gorm:"column:image_url;size:1024" json:"image_url"`
	IsActive bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`
}
