package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Admin inputs carry pointer fields: nil means "not submitted" and leaves
// the stored value untouched on update.

type LocationInput struct {
	NameEN        *string `json:"nameEn" validate:"required,notblank,max=255"`
	NameAR        *string `json:"nameAr" validate:"required,notblank,max=255"`
	DescriptionEN *string `json:"descriptionEn"`
	DescriptionAR *string `json:"descriptionAr"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,max=1024"`
	SortOrder     *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive      *bool   `json:"isActive"`
}

type CategoryInput struct {
	NameEN        *string `json:"nameEn" validate:"required,notblank,max=255"`
	NameAR        *string `json:"nameAr" validate:"required,notblank,max=255"`
	DescriptionEN *string `json:"descriptionEn"`
	DescriptionAR *string `json:"descriptionAr"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,max=1024"`
	SortOrder     *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive      *bool   `json:"isActive"`
}

type HotelInput struct {
	LocationID    *string   `json:"locationId"`
	NameEN        *string   `json:"nameEn" validate:"required,notblank,max=255"`
	NameAR        *string   `json:"nameAr" validate:"required,notblank,max=255"`
	DescriptionEN *string   `json:"descriptionEn"`
	DescriptionAR *string   `json:"descriptionAr"`
	LocationEN    *string   `json:"locationEn" validate:"omitempty,max=255"`
	LocationAR    *string   `json:"locationAr" validate:"omitempty,max=255"`
	AddressEN     *string   `json:"addressEn" validate:"omitempty,max=512"`
	AddressAR     *string   `json:"addressAr" validate:"omitempty,max=512"`
	StarRating    *int      `json:"starRating" validate:"omitempty,min=1,max=5"`
	PricePerNight *float64  `json:"pricePerNight" validate:"omitempty,gte=0"`
	Currency      *string   `json:"currency" validate:"omitempty,len=3"`
	AmenitiesEN   *[]string `json:"amenitiesEn"`
	AmenitiesAR   *[]string `json:"amenitiesAr"`
	ImageURL      *string   `json:"imageUrl" validate:"omitempty,max=1024"`
	Images        *[]string `json:"images"`
	IsFeatured    *bool     `json:"isFeatured"`
	IsActive      *bool     `json:"isActive"`
}

type RoomInput struct {
	HotelID       *string   `json:"hotelId" validate:"required,notblank"`
	NameEN        *string   `json:"nameEn" validate:"required,notblank,max=255"`
	NameAR        *string   `json:"nameAr" validate:"required,notblank,max=255"`
	DescriptionEN *string   `json:"descriptionEn"`
	DescriptionAR *string   `json:"descriptionAr"`
	PricePerNight *float64  `json:"pricePerNight" validate:"required,gte=0"`
	Currency      *string   `json:"currency" validate:"omitempty,len=3"`
	MaxGuests     *int      `json:"maxGuests" validate:"required,gt=0"`
	AmenitiesEN   *[]string `json:"amenitiesEn"`
	AmenitiesAR   *[]string `json:"amenitiesAr"`
	ImageURL      *string   `json:"imageUrl" validate:"omitempty,max=1024"`
	IsActive      *bool     `json:"isActive"`
}

type PackageInput struct {
	CategoryID    *string         `json:"categoryId"`
	LocationID    *string         `json:"locationId"`
	TitleEN       *string         `json:"titleEn" validate:"required,notblank,max=255"`
	TitleAR       *string         `json:"titleAr" validate:"required,notblank,max=255"`
	DescriptionEN *string         `json:"descriptionEn"`
	DescriptionAR *string         `json:"descriptionAr"`
	LocationEN    *string         `json:"locationEn" validate:"omitempty,max=255"`
	LocationAR    *string         `json:"locationAr" validate:"omitempty,max=255"`
	PackageType   *string         `json:"packageType" validate:"omitempty,max=64"`
	DurationDays  *int            `json:"durationDays" validate:"required,gt=0"`
	Price         *float64        `json:"price" validate:"required,gte=0"`
	Currency      *string         `json:"currency" validate:"omitempty,len=3"`
	InclusionsEN  *[]string       `json:"inclusionsEn"`
	InclusionsAR  *[]string       `json:"inclusionsAr"`
	ExclusionsEN  *[]string       `json:"exclusionsEn"`
	ExclusionsAR  *[]string       `json:"exclusionsAr"`
	Itinerary     *[]ItineraryDay `json:"itinerary"`
	ImageURL      *string         `json:"imageUrl" validate:"omitempty,max=1024"`
	Images        *[]string       `json:"images"`
	IsFeatured    *bool           `json:"isFeatured"`
	IsActive      *bool           `json:"isActive"`
}

type DiscoverCardInput struct {
	TitleEN  *string `json:"titleEn" validate:"required,notblank,max=255"`
	TitleAR  *string `json:"titleAr" validate:"required,notblank,max=255"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,max=1024"`
	IsActive *bool   `json:"isActive"`
}

type EventInput struct {
	Slug          *string   `json:"slug" validate:"omitempty,max=191"`
	TitleEN       *string   `json:"titleEn" validate:"required,notblank,max=255"`
	TitleAR       *string   `json:"titleAr" validate:"required,notblank,max=255"`
	DescriptionEN *string   `json:"descriptionEn"`
	DescriptionAR *string   `json:"descriptionAr"`
	LocationEN    *string   `json:"locationEn" validate:"omitempty,max=255"`
	LocationAR    *string   `json:"locationAr" validate:"omitempty,max=255"`
	StartDate     *Date     `json:"startDate" validate:"required"`
	EndDate       *Date     `json:"endDate"`
	FrequencyEN   *string   `json:"frequencyEn" validate:"omitempty,max=255"`
	FrequencyAR   *string   `json:"frequencyAr" validate:"omitempty,max=255"`
	MaxAttendees  *int      `json:"maxAttendees"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	Currency      *string   `json:"currency" validate:"omitempty,len=3"`
	ImageURL      *string   `json:"imageUrl" validate:"omitempty,max=1024"`
	Images        *[]string `json:"images"`
	IsActive      *bool     `json:"isActive"`
}

type TransportationInput struct {
	NameEN        *string   `json:"nameEn" validate:"required,notblank,max=255"`
	NameAR        *string   `json:"nameAr" validate:"required,notblank,max=255"`
	DescriptionEN *string   `json:"descriptionEn"`
	DescriptionAR *string   `json:"descriptionAr"`
	VehicleType   *string   `json:"vehicleType" validate:"omitempty,max=64"`
	Capacity      *int      `json:"capacity" validate:"required,gt=0"`
	PricePerTrip  *float64  `json:"pricePerTrip" validate:"omitempty,gte=0"`
	PricePerDay   *float64  `json:"pricePerDay" validate:"omitempty,gte=0"`
	Currency      *string   `json:"currency" validate:"omitempty,len=3"`
	FeaturesEN    *[]string `json:"featuresEn"`
	FeaturesAR    *[]string `json:"featuresAr"`
	ExclusionsEN  *[]string `json:"exclusionsEn"`
	ExclusionsAR  *[]string `json:"exclusionsAr"`
	ImageURL      *string   `json:"imageUrl" validate:"omitempty,max=1024"`
	Images        *[]string `json:"images"`
	IsActive      *bool     `json:"isActive"`
}

type VisaInput struct {
	TitleEN          *string   `json:"titleEn" validate:"required,notblank,max=255"`
	TitleAR          *string   `json:"titleAr" validate:"required,notblank,max=255"`
	VisaTypeEN       *string   `json:"visaTypeEn" validate:"required,notblank,max=128"`
	VisaTypeAR       *string   `json:"visaTypeAr" validate:"omitempty,max=128"`
	DescriptionEN    *string   `json:"descriptionEn"`
	DescriptionAR    *string   `json:"descriptionAr"`
	ProcessingTimeEN *string   `json:"processingTimeEn" validate:"omitempty,max=255"`
	ProcessingTimeAR *string   `json:"processingTimeAr" validate:"omitempty,max=255"`
	ValidityEN       *string   `json:"validityEn" validate:"omitempty,max=255"`
	ValidityAR       *string   `json:"validityAr" validate:"omitempty,max=255"`
	Price            *float64  `json:"price" validate:"omitempty,gte=0"`
	Currency         *string   `json:"currency" validate:"omitempty,len=3"`
	RequirementsEN   *[]string `json:"requirementsEn"`
	RequirementsAR   *[]string `json:"requirementsAr"`
	IncludesEN       *[]string `json:"includesEn"`
	IncludesAR       *[]string `json:"includesAr"`
	ExcludesEN       *[]string `json:"excludesEn"`
	ExcludesAR       *[]string `json:"excludesAr"`
	EligibilityEN    *string   `json:"eligibilityEn"`
	EligibilityAR    *string   `json:"eligibilityAr"`
	NotesEN          *string   `json:"notesEn"`
	NotesAR          *string   `json:"notesAr"`
	ImageURL         *string   `json:"imageUrl" validate:"omitempty,max=1024"`
	Images           *[]string `json:"images"`
	IsActive         *bool     `json:"isActive"`
}

type BlogPostInput struct {
	Slug        *string `json:"slug" validate:"omitempty,max=191"`
	TitleEN     *string `json:"titleEn" validate:"required,notblank,max=255"`
	TitleAR     *string `json:"titleAr" validate:"required,notblank,max=255"`
	ExcerptEN   *string `json:"excerptEn"`
	ExcerptAR   *string `json:"excerptAr"`
	ContentEN   *string `json:"contentEn" validate:"required,notblank"`
	ContentAR   *string `json:"contentAr"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=1024"`
	IsPublished *bool   `json:"isPublished"`
}

type TestimonialInput struct {
	Name     *string `json:"name" validate:"required,notblank,max=255"`
	Work     *string `json:"work" validate:"omitempty,max=255"`
	Comment  *string `json:"comment" validate:"required,notblank"`
	Rating   *int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,max=1024"`
	IsActive *bool   `json:"isActive"`
}

type InquiryStatusInput struct {
	Status *string `json:"status" validate:"required,oneof=new contacted confirmed cancelled closed"`
}

// InquiryInput is the public contact/booking form payload.
type InquiryInput struct {
	Type        string         `json:"type" validate:"omitempty,oneof=general event hotel_room transportation visa package"`
	Name        string         `json:"name" validate:"notblank,max=255"`
	Email       string         `json:"email" validate:"required,email,max=255"`
	Phone       string         `json:"phone" validate:"max=64"`
	Nationality string         `json:"nationality" validate:"max=128"`
	Message     string         `json:"message" validate:"max=5000"`
	Locale      string         `json:"locale"`
	Meta        map[string]any `json:"meta"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Date accepts RFC 3339 timestamps as well as plain YYYY-MM-DD dates.
type Date struct{ time.Time }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return &time.ParseError{Layout: time.RFC3339, Value: s, Message: ": expected RFC 3339 or YYYY-MM-DD"}
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.Time) }
