package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Event struct {
	Record
	Slug          string                      `gorm:"column:slug;size:191;not null;uniqueIndex" json:"slug"`
	TitleEN       string                      `gorm:"column:title_en;size:255;not null" json:"title_en"`
	TitleAR       string                      `gorm:"column:title_ar;size:255;not null" json:"title_ar"`
	DescriptionEN *string                     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string                     `gorm:"column:description_ar;type:text" json:"description_ar"`
	LocationEN    *string                     `gorm:"column:location_en;size:255" json:"location_en"`
	LocationAR    *string                     `gorm:"column:location_ar;size:255" json:"location_ar"`
	StartDate     time.Time                   `gorm:"column:start_date;not null" json:"start_date"`
	EndDate       *time.Time                  `gorm:"column:end_date" json:"end_date"`
	FrequencyEN   *string                     `gorm:"column:frequency_en;size:255" json:"frequency_en"`
	FrequencyAR   *string                     `gorm:"column:frequency_ar;size:255" json:"frequency_ar"`
	MaxAttendees  *int                        `gorm:"column:max_attendees" json:"max_attendees"`
	Price         decimal.NullDecimal         `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Currency      string                      `gorm:"column:currency;size:3;not null" json:"currency"`
	ImageURL      *string                     `gorm:"column:image_url;size:1024" json:"image_url"`
	Images        datatypes.JSONSlice[string] `gorm:"column:images;type:json" json:"images"`
	IsActive      bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

type Transportation struct {
	Record
	NameEN        string                      `gorm:"column:name_en;size:255;not null" json:"name_en"`
	NameAR        string                      `gorm:"column:name_ar;size:255;not null" json:"name_ar"`
	DescriptionEN *string                     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR *string                     `gorm:"column:description_ar;type:text" json:"description_ar"`
	VehicleType   *string                     `gorm:"column:vehicle_type;size:64" json:"vehicle_type"`
	Capacity      int                         `gorm:"column:capacity;not null" json:"capacity"`
	PricePerTrip  decimal.NullDecimal         `gorm:"column:price_per_trip;type:decimal(12,2)" json:"price_per_trip"`
	PricePerDay   decimal.NullDecimal         `gorm:"column:price_per_day;type:decimal(12,2)" json:"price_per_day"`
	Currency      string                      `gorm:"column:currency;size:3;not null" json:"currency"`
	FeaturesEN    datatypes.JSONSlice[string] `gorm:"column:features_en;type:json" json:"features_en"`
	FeaturesAR    datatypes.JSONSlice[string] `gorm:"column:features_ar;type:json" json:"features_ar"`
	ExclusionsEN  datatypes.JSONSlice[string] `gorm:"column:exclusions_en;type:json" json:"exclusions_en"`
	ExclusionsAR  datatypes.JSONSlice[string] `gorm:"column:exclusions_ar;type:json" json:"exclusions_ar"`
	ImageURL      *string                     `gorm:"column:image_url;size:1024" json:"image_url"`
	Images        datatypes.JSONSlice[string] `gorm:"column:images;type:json" json:"images"`
	IsActive      bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (Transportation) TableName() string { return "transportation" }

type Visa struct {
	Record
	TitleEN          string                      `gorm:"column:title_en;size:255;not null" json:"title_en"`
	TitleAR          string                      `gorm:"column:title_ar;size:255;not null" json:"title_ar"`
	VisaTypeEN       string                      `gorm:"column:visa_type_en;size:128;not null" json:"visa_type_en"`
	VisaTypeAR       *string                     `gorm:"column:visa_type_ar;size:128" json:"visa_type_ar"`
	DescriptionEN    *string                     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionAR    *string                     `gorm:"column:description_ar;type:text" json:"description_ar"`
	ProcessingTimeEN *string                     `gorm:"column:processing_time_en;size:255" json:"processing_time_en"`
	ProcessingTimeAR *string                     `gorm:"column:processing_time_ar;size:255" json:"processing_time_ar"`
	ValidityEN       *string                     `gorm:"column:validity_en;size:255" json:"validity_en"`
	ValidityAR       *string                     `gorm:"column:validity_ar;size:255" json:"validity_ar"`
	Price            decimal.NullDecimal         `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Currency         string                      `gorm:"column:currency;size:3;not null" json:"currency"`
	RequirementsEN   datatypes.JSONSlice[string] `gorm:"column:requirements_en;type:json" json:"requirements_en"`
	RequirementsAR   datatypes.JSONSlice[string] `gorm:"column:requirements_ar;type:json" json:"requirements_ar"`
	IncludesEN       datatypes.JSONSlice[string] `gorm:"column:includes_en;type:json" json:"includes_en"`
	IncludesAR       datatypes.JSONSlice[string] `gorm:"column:includes_ar;type:json" json:"includes_ar"`
	ExcludesEN       datatypes.JSONSlice[string] `gorm:"column:excludes_en;type:json" json:"excludes_en"`
	ExcludesAR       datatypes.JSONSlice[string] `gorm:"column:excludes_ar;type:json" json:"excludes_ar"`
	EligibilityEN    *string                     `gorm:"column:eligibility_en;type:text" json:"eligibility_en"`
	EligibilityAR    *string                     `gorm:"column:eligibility_ar;type:text" json:"eligibility_ar"`
	NotesEN          *string                     `gorm:"column:notes_en;type:text" json:"notes_en"`
	NotesAR          *string                     `gorm:"column:notes_ar;type:text" json:"notes_ar"`
	ImageURL         *string                     `gorm:"column:image_url;size:1024" json:"image_url"`
	Images           datatypes.JSONSlice[string] `gorm:"column:images;type:json" json:"images"`
	IsActive         bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
}
