package domain

import "time"

// View models are what public pages render. List fields are never nil.

type LocationView struct {
	ID            string  `json:"id"`
	NameEN        string  `json:"name_en"`
	NameAR        string  `json:"name_ar"`
	DescriptionEN *string `json:"description_en"`
	DescriptionAR *string `json:"description_ar"`
	ImageURL      *string `json:"image_url"`
	SortOrder     int     `json:"sort_order"`
}

type CategoryView struct {
	ID            string  `json:"id"`
	NameEN        string  `json:"name_en"`
	NameAR        string  `json:"name_ar"`
	DescriptionEN *string `json:"description_en"`
	DescriptionAR *string `json:"description_ar"`
	ImageURL      *string `json:"image_url"`
	SortOrder     int     `json:"sort_order"`
}

type HotelView struct {
	ID               string     `json:"id"`
	LocationID       *string    `json:"location_id"`
	NameEN           string     `json:"name_en"`
	NameAR           string     `json:"name_ar"`
	DescriptionEN    *string    `json:"description_en"`
	DescriptionAR    *string    `json:"description_ar"`
	LocationEN       *string    `json:"location_en"`
	LocationAR       *string    `json:"location_ar"`
	LocationImageURL *string    `json:"location_image_url"`
	AddressEN        *string    `json:"address_en"`
	AddressAR        *string    `json:"address_ar"`
	StarRating       int        `json:"star_rating"`
	PricePerNight    *float64   `json:"price_per_night"`
	Currency         string     `json:"currency"`
	AmenitiesEN      []string   `json:"amenities_en"`
	AmenitiesAR      []string   `json:"amenities_ar"`
	ImageURL         *string    `json:"image_url"`
	Images           []string   `json:"images"`
	IsFeatured       bool       `json:"is_featured"`
	Rooms            []RoomView `json:"rooms"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type RoomView struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	NameEN        string   `json:"name_en"`
	NameAR        string   `json:"name_ar"`
	DescriptionEN *string  `json:"description_en"`
	DescriptionAR *string  `json:"description_ar"`
	PricePerNight float64  `json:"price_per_night"`
	Currency      string   `json:"currency"`
	MaxGuests     int      `json:"max_guests"`
	AmenitiesEN   []string `json:"amenities_en"`
	AmenitiesAR   []string `json:"amenities_ar"`
	ImageURL      *string  `json:"image_url"`
	Images        []string `json:"images"`
}

type PackageView struct {
	ID               string         `json:"id"`
	CategoryID       *string        `json:"category_id"`
	CategoryNameEN   *string        `json:"category_name_en"`
	CategoryNameAR   *string        `json:"category_name_ar"`
	LocationID       *string        `json:"location_id"`
	LocationEN       *string        `json:"location_en"`
	LocationAR       *string        `json:"location_ar"`
	LocationImageURL *string        `json:"location_image_url"`
	TitleEN          string         `json:"title_en"`
	TitleAR          string         `json:"title_ar"`
	DescriptionEN    *string        `json:"description_en"`
	DescriptionAR    *string        `json:"description_ar"`
	PackageType      string         `json:"package_type"`
	DurationDays     int            `json:"duration_days"`
	Price            float64        `json:"price"`
	Currency         string         `json:"currency"`
	InclusionsEN     []string       `json:"inclusions_en"`
	InclusionsAR     []string       `json:"inclusions_ar"`
	ExclusionsEN     []string       `json:"exclusions_en"`
	ExclusionsAR     []string       `json:"exclusions_ar"`
	Itinerary        []ItineraryDay `json:"itinerary"`
	ImageURL         *string        `json:"image_url"`
	Images           []string       `json:"images"`
	IsFeatured       bool           `json:"is_featured"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type DiscoverCardView struct {
	ID       string  `json:"id"`
	TitleEN  string  `json:"title_en"`
	TitleAR  string  `json:"title_ar"`
	ImageURL *string `json:"image_url"`
}

type EventView struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	TitleEN       string     `json:"title_en"`
	TitleAR       string     `json:"title_ar"`
	DescriptionEN *string    `json:"description_en"`
	DescriptionAR *string    `json:"description_ar"`
	LocationEN    *string    `json:"location_en"`
	LocationAR    *string    `json:"location_ar"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	FrequencyEN   *string    `json:"frequency_en"`
	FrequencyAR   *string    `json:"frequency_ar"`
	MaxAttendees  *int       `json:"max_attendees"`
	IsUnlimited   bool       `json:"is_unlimited"`
	Price         *float64   `json:"price"`
	Currency      string     `json:"currency"`
	ImageURL      *string    `json:"image_url"`
	Images        []string   `json:"images"`
}

type TransportationView struct {
	ID            string   `json:"id"`
	NameEN        string   `json:"name_en"`
	NameAR        string   `json:"name_ar"`
	DescriptionEN *string  `json:"description_en"`
	DescriptionAR *string  `json:"description_ar"`
	VehicleType   *string  `json:"vehicle_type"`
	Capacity      int      `json:"capacity"`
	PricePerTrip  *float64 `json:"price_per_trip"`
	PricePerDay   *float64 `json:"price_per_day"`
	Currency      string   `json:"currency"`
	FeaturesEN    []string `json:"features_en"`
	FeaturesAR    []string `json:"features_ar"`
	ExclusionsEN  []string `json:"exclusions_en"`
	ExclusionsAR  []string `json:"exclusions_ar"`
	ImageURL      *string  `json:"image_url"`
	Images        []string `json:"images"`
}

type VisaView struct {
	ID               string   `json:"id"`
	TitleEN          string   `json:"title_en"`
	TitleAR          string   `json:"title_ar"`
	VisaTypeEN       string   `json:"visa_type_en"`
	VisaTypeAR       *string  `json:"visa_type_ar"`
	DescriptionEN    *string  `json:"description_en"`
	DescriptionAR    *string  `json:"description_ar"`
	ProcessingTimeEN *string  `json:"processing_time_en"`
	ProcessingTimeAR *string  `json:"processing_time_ar"`
	ValidityEN       *string  `json:"validity_en"`
	ValidityAR       *string  `json:"validity_ar"`
	Price            *float64 `json:"price"`
	Currency         string   `json:"currency"`
	RequirementsEN   []string `json:"requirements_en"`
	RequirementsAR   []string `json:"requirements_ar"`
	IncludesEN       []string `json:"includes_en"`
	IncludesAR       []string `json:"includes_ar"`
	ExcludesEN       []string `json:"excludes_en"`
	ExcludesAR       []string `json:"excludes_ar"`
	EligibilityEN    *string  `json:"eligibility_en"`
	EligibilityAR    *string  `json:"eligibility_ar"`
	NotesEN          *string  `json:"notes_en"`
	NotesAR          *string  `json:"notes_ar"`
	ImageURL         *string  `json:"image_url"`
	Images           []string `json:"images"`
}

type PostView struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	TitleEN     string     `json:"title_en"`
	TitleAR     string     `json:"title_ar"`
	ExcerptEN   *string    `json:"excerpt_en"`
	ExcerptAR   *string    `json:"excerpt_ar"`
	ContentEN   string     `json:"content_en"`
	ContentAR   *string    `json:"content_ar"`
	ImageURL    *string    `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

type TestimonialView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Work     *string `json:"work"`
	Comment  string  `json:"comment"`
	Rating   int     `json:"rating"`
	ImageURL *string `json:"image_url"`
}

// Card is a locale-resolved summary used on the home page.
type Card struct {
	Kind     string   `json:"kind"`
	ID       string   `json:"id"`
	Slug     string   `json:"slug,omitempty"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Image    *string  `json:"image"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency,omitempty"`
}

type HomeView struct {
	Locale       Locale            `json:"locale"`
	Dir          string            `json:"dir"`
	Hotels       []Card            `json:"hotels"`
	Packages     []Card            `json:"packages"`
	Events       []Card            `json:"events"`
	Testimonials []TestimonialView `json:"testimonials"`
}
