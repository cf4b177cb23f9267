package domain

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Location groups hotels and packages by city or area.
type Location struct {
	Record
	NameEN        string  `gorm:"column:name_en;size:255;not null" json:"name_en"`
	NameAR        string  `gorm:"column:name_ar;size:255;not null" json:"name_ar"`
	DescriptionEN *string `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string `gorm:"column:description_ar;type:text" json:"description_ar"`
	ImageURL      *string `gorm:"column:image_url;size:1024" json:"image_url"`
	SortOrder     int     `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	IsActive      bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

type Hotel struct {
	Record
	LocationID    *string                     `gorm:"column:location_id;type:char(36);index" json:"location_id"`
	Location      *Location                   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	NameEN        string                      `gorm:"column:name_en;size:255;not null" json:"name_en"`
	NameAR        string                      `gorm:"column:name_ar;size:255;not null" json:"name_ar"`
	DescriptionEN *string                     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string                     `gorm:"column:description_ar;type:text" json:"description_ar"`
	LocationEN    *string                     `gorm:"column:location_en;size:255" json:"location_en"`
	LocationAR    *string                     `gorm:"column:location_ar;size:255" json:"location_ar"`
	AddressEN     *string                     `gorm:"column:address_en;size:512" json:"address_en"`
	AddressAR     *string                     `gorm:"column:address_ar;size:512" json:"address_ar"`
	StarRating    int                         `gorm:"column:star_rating;not null;default:3" json:"star_rating"`
	PricePerNight decimal.NullDecimal         `gorm:"column:price_per_night;type:decimal(12,2)" json:"price_per_night"`
	Currency      string                      `gorm:"column:currency;size:3;not null" json:"currency"`
	AmenitiesEN   datatypes.JSONSlice[string] `gorm:"column:amenities_en;type:json" json:"amenities_en"`
	AmenitiesAR   datatypes.JSONSlice[string] `gorm:"column:amenities_ar;type:json" json:"amenities_ar"`
	ImageURL      *string                     `gorm:"column:image_url;size:1024" json:"image_url"`
	Images        datatypes.JSONSlice[string] `gorm:"column:images;type:json" json:"images"`
	IsFeatured    bool                        `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsActive      bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Rooms         []Room                      `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}

// Room always belongs to a hotel; deleting the hotel removes its rooms.
type Room struct {
	Record
	HotelID       string                      `gorm:"column:hotel_id;type:char(36);not null;index" json:"hotel_id"`
	NameEN        string                      `gorm:"column:name_en;size:255;not null" json:"name_en"`
	NameAR        string                      `gorm:"column:name_ar;size:255;not null" json:"name_ar"`
	DescriptionEN *string                     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string                     `gorm:"column:description_ar;type:text" json:"description_ar"`
	PricePerNight decimal.Decimal             `gorm:"column:price_per_night;type:decimal(12,2);not null" json:"price_per_night"`
	Currency      string                      `gorm:"column:currency;size:3;not null" json:"currency"`
	MaxGuests     int                         `gorm:"column:max_guests;not null" json:"max_guests"`
	AmenitiesEN   datatypes.JSONSlice[string] `gorm:"column:amenities_en;type:json" json:"amenities_en"`
	AmenitiesAR   datatypes.JSONSlice[string] `gorm:"column:amenities_ar;type:json" json:"amenities_ar"`
	ImageURL      *string                     `gorm:"column:image_url;size:1024" json:"image_url"`
	IsActive      bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
}
