package domain

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	Record
	Slug        string     `gorm:"column:slug;size:191;not null;uniqueIndex" json:"slug"`
	TitleEN     string     `gorm:"column:title_en;size:255;not null" json:"title_en"`
	TitleAR     string     `gorm:"column:title_ar;size:255;not null" json:"title_ar"`
	ExcerptEN   *string    `gorm:"column:excerpt_en;type:text" json:"excerpt_en"`
	ExcerptAR   *string    `gorm:"column:excerpt_ar;type:text" json:"excerpt_ar"`
	ContentEN   string     `gorm:"column:content_en;type:mediumtext;not null" json:"content_en"`
	ContentAR   *string    `gorm:"column:content_ar;type:mediumtext" json:"content_ar"`
	ImageURL    *string    `gorm:"column:image_url;size:1024" json:"image_url"`
	IsPublished bool       `gorm:"column:is_published;not null;default:false" json:"is_published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`
}

type Testimonial struct {
	Record
	Name     string  `gorm:"column:name;size:255;not null" json:"name"`
	Work     *string `gorm:"column:work;size:255" json:"work"`
	Comment  string  `gorm:"column:comment;type:text;not null" json:"comment"`
	Rating   int     `gorm:"column:rating;not null" json:"rating"`
	ImageURL *string `gorm:"column:image_url;size:1024" json:"image_url"`
	IsActive bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// Inquiry types accepted by the public submission endpoint.
const (
	InquiryGeneral        = "general"
	InquiryEvent          = "event"
	InquiryHotelRoom      = "hotel_room"
	InquiryTransportation = "transportation"
	InquiryVisa           = "visa"
	InquiryPackage        = "package"
)

// Inquiry statuses; only admins move an inquiry out of InquiryNew.
const (
	InquiryNew       = "new"
	InquiryContacted = "contacted"
	InquiryConfirmed = "confirmed"
	InquiryCancelled = "cancelled"
	InquiryClosed    = "closed"
)

// Inquiry is a contact request or booking. Append-only for the public.
type Inquiry struct {
	Record
	Type        string            `gorm:"column:type;size:32;not null;index" json:"type"`
	Name        string            `gorm:"column:name;size:255;not null" json:"name"`
	Email       string            `gorm:"column:email;size:255;not null" json:"email"`
	Phone       *string           `gorm:"column:phone;size:64" json:"phone"`
	Nationality *string           `gorm:"column:nationality;size:128" json:"nationality"`
	Message     *string           `gorm:"column:message;type:text" json:"message"`
	Locale      string            `gorm:"column:locale;size:8;not null" json:"locale"`
	Meta        datatypes.JSONMap `gorm:"column:meta;type:json" json:"meta"`
	Status      string            `gorm:"column:status;size:32;not null;index" json:"status"`
}

func (Inquiry) TableName() string { return "inquiries" }

type AdminUser struct {
	Record
	Email        string `gorm:"column:email;size:191;not null;uniqueIndex" json:"email"`
	Name         string `gorm:"column:name;size:255" json:"name"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
}
