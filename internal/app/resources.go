package app

import (
	"context"
	"time"

	"elhamas/internal/domain"
)

// Admin services, one Manager per entity type. A nil repo yields managers
// that answer domain.ErrUnavailable.
type Admin struct {
	Locations      *Manager[domain.Location, domain.LocationInput]
	Categories     *Manager[domain.PackageCategory, domain.CategoryInput]
	Hotels         *Manager[domain.Hotel, domain.HotelInput]
	Rooms          *Manager[domain.Room, domain.RoomInput]
	Packages       *Manager[domain.TourPackage, domain.PackageInput]
	DiscoverCards  *Manager[domain.PackageDiscoverCard, domain.DiscoverCardInput]
	Events         *Manager[domain.Event, domain.EventInput]
	Transportation *Manager[domain.Transportation, domain.TransportationInput]
	Visas          *Manager[domain.Visa, domain.VisaInput]
	BlogPosts      *Manager[domain.BlogPost, domain.BlogPostInput]
	Testimonials   *Manager[domain.Testimonial, domain.TestimonialInput]
	Inquiries      *Manager[domain.Inquiry, domain.InquiryStatusInput]
}

func NewAdmin(repo domain.Repository) *Admin {
	now := time.Now
	return &Admin{
		Locations: &Manager[domain.Location, domain.LocationInput]{
			name: "location", repo: repo, order: orderSorted,
			store:    domain.Repository.Locations,
			defaults: func(l *domain.Location) { l.IsActive = true },
			apply:    applyLocation,
		},
		Categories: &Manager[domain.PackageCategory, domain.CategoryInput]{
			name: "category", repo: repo, order: orderSorted,
			store:    domain.Repository.Categories,
			defaults: func(c *domain.PackageCategory) { c.IsActive = true },
			apply:    applyCategory,
		},
		Hotels: &Manager[domain.Hotel, domain.HotelInput]{
			name: "hotel", repo: repo, order: orderNewest,
			store: domain.Repository.Hotels,
			defaults: func(h *domain.Hotel) {
				h.IsActive, h.StarRating, h.Currency = true, 3, domain.DefaultCurrency
			},
			apply: applyHotel,
			check: func(ctx context.Context, _ *domain.Hotel, in *domain.HotelInput) error {
				return mustExist(ctx, repo.Locations(), "locationId", in.LocationID)
			},
		},
		Rooms: &Manager[domain.Room, domain.RoomInput]{
			name: "room", repo: repo, order: "price_per_night ASC",
			store: domain.Repository.Rooms,
			defaults: func(r *domain.Room) {
				r.IsActive, r.Currency = true, domain.DefaultCurrency
			},
			apply: applyRoom,
			check: func(ctx context.Context, _ *domain.Room, in *domain.RoomInput) error {
				return mustExist(ctx, repo.Hotels(), "hotelId", in.HotelID)
			},
		},
		Packages: &Manager[domain.TourPackage, domain.PackageInput]{
			name: "package", repo: repo, order: orderNewest,
			store: domain.Repository.Packages,
			defaults: func(p *domain.TourPackage) {
				p.IsActive, p.Currency, p.PackageType = true, domain.DefaultCurrency, PackageTypeUmrah
			},
			apply: applyPackage,
			check: func(ctx context.Context, _ *domain.TourPackage, in *domain.PackageInput) error {
				if err := validateItinerary(in.Itinerary); err != nil {
					return err
				}
				if err := mustExist(ctx, repo.Categories(), "categoryId", in.CategoryID); err != nil {
					return err
				}
				return mustExist(ctx, repo.Locations(), "locationId", in.LocationID)
			},
		},
		DiscoverCards: &Manager[domain.PackageDiscoverCard, domain.DiscoverCardInput]{
			name: "discover card", repo: repo, order: orderNewest,
			store:    domain.Repository.DiscoverCards,
			defaults: func(c *domain.PackageDiscoverCard) { c.IsActive = true },
			apply:    applyDiscoverCard,
		},
		Events: &Manager[domain.Event, domain.EventInput]{
			name: "event", repo: repo, order: orderStart,
			store: domain.Repository.Events,
			defaults: func(e *domain.Event) {
				e.IsActive, e.Currency = true, domain.DefaultCurrency
			},
			apply: applyEvent,
			check: func(_ context.Context, row *domain.Event, in *domain.EventInput) error {
				start, end := in.StartDate, in.EndDate
				if end == nil {
					return nil
				}
				if start == nil && row != nil {
					start = &domain.Date{Time: row.StartDate}
				}
				if start != nil && end.Before(start.Time) {
					return domain.Invalid("endDate", "endDate must not be before startDate")
				}
				return nil
			},
			finalize: func(ctx context.Context, e *domain.Event, _ bool) error {
				return finalizeSlug(ctx, repo.Events(), &e.Slug, e.TitleEN, e.ID)
			},
			derived: func(in *domain.EventInput) bool { return derivedSlug(in.Slug) },
		},
		Transportation: &Manager[domain.Transportation, domain.TransportationInput]{
			name: "transportation", repo: repo, order: orderNewest,
			store: domain.Repository.Transportation,
			defaults: func(t *domain.Transportation) {
				t.IsActive, t.Currency = true, domain.DefaultCurrency
			},
			apply: applyTransportation,
		},
		Visas: &Manager[domain.Visa, domain.VisaInput]{
			name: "visa", repo: repo, order: orderNewest,
			store: domain.Repository.Visas,
			defaults: func(v *domain.Visa) {
				v.IsActive, v.Currency = true, domain.DefaultCurrency
			},
			apply: applyVisa,
		},
		BlogPosts: &Manager[domain.BlogPost, domain.BlogPostInput]{
			name: "blog post", repo: repo, order: orderNewest,
			store: domain.Repository.BlogPosts,
			apply: applyBlogPost,
			finalize: func(ctx context.Context, p *domain.BlogPost, _ bool) error {
				switch {
				case p.IsPublished && p.PublishedAt == nil:
					t := now().UTC()
					p.PublishedAt = &t
				case !p.IsPublished:
					p.PublishedAt = nil
				}
				return finalizeSlug(ctx, repo.BlogPosts(), &p.Slug, p.TitleEN, p.ID)
			},
			derived: func(in *domain.BlogPostInput) bool { return derivedSlug(in.Slug) },
		},
		Testimonials: &Manager[domain.Testimonial, domain.TestimonialInput]{
			name: "testimonial", repo: repo, order: orderNewest,
			store:    domain.Repository.Testimonials,
			defaults: func(t *domain.Testimonial) { t.IsActive = true },
			apply:    applyTestimonial,
		},
		Inquiries: &Manager[domain.Inquiry, domain.InquiryStatusInput]{
			name: "inquiry", repo: repo, order: orderNewest,
			store: domain.Repository.Inquiries,
			apply: func(q *domain.Inquiry, in *domain.InquiryStatusInput) { setStr(&q.Status, in.Status) },
		},
	}
}

// finalizeSlug normalizes a submitted slug or derives a free one from title.
func finalizeSlug[T interface{ Key() string }](ctx context.Context, st domain.Store[T], slug *string, title, selfID string) error {
	if *slug != "" {
		if s := Slugify(*slug); s != "" {
			*slug = s
			return nil
		}
	}
	s, err := uniqueSlug(ctx, st, Slugify(title), selfID)
	if err != nil {
		return err
	}
	*slug = s
	return nil
}

// derivedSlug reports whether the slug will be generated from the title.
func derivedSlug(slug *string) bool { return slug == nil || Slugify(*slug) == "" }

/********** apply **********/

func applyLocation(l *domain.Location, in *domain.LocationInput) {
	setStr(&l.NameEN, in.NameEN)
	setStr(&l.NameAR, in.NameAR)
	setOptStr(&l.DescriptionEN, in.DescriptionEN)
	setOptStr(&l.DescriptionAR, in.DescriptionAR)
	setOptStr(&l.ImageURL, in.ImageURL)
	set(&l.SortOrder, in.SortOrder)
	set(&l.IsActive, in.IsActive)
}

func applyCategory(c *domain.PackageCategory, in *domain.CategoryInput) {
	setStr(&c.NameEN, in.NameEN)
	setStr(&c.NameAR, in.NameAR)
	setOptStr(&c.DescriptionEN, in.DescriptionEN)
	setOptStr(&c.DescriptionAR, in.DescriptionAR)
	setOptStr(&c.ImageURL, in.ImageURL)
	set(&c.SortOrder, in.SortOrder)
	set(&c.IsActive, in.IsActive)
}

func applyHotel(h *domain.Hotel, in *domain.HotelInput) {
	if in.LocationID != nil {
		setOptStr(&h.LocationID, in.LocationID)
		h.Location = nil
	}
	setStr(&h.NameEN, in.NameEN)
	setStr(&h.NameAR, in.NameAR)
	setOptStr(&h.DescriptionEN, in.DescriptionEN)
	setOptStr(&h.DescriptionAR, in.DescriptionAR)
	setOptStr(&h.LocationEN, in.LocationEN)
	setOptStr(&h.LocationAR, in.LocationAR)
	setOptStr(&h.AddressEN, in.AddressEN)
	setOptStr(&h.AddressAR, in.AddressAR)
	set(&h.StarRating, in.StarRating)
	setNullPrice(&h.PricePerNight, in.PricePerNight)
	setCurrency(&h.Currency, in.Currency)
	setList(&h.AmenitiesEN, in.AmenitiesEN)
	setList(&h.AmenitiesAR, in.AmenitiesAR)
	setOptStr(&h.ImageURL, in.ImageURL)
	setList(&h.Images, in.Images)
	set(&h.IsFeatured, in.IsFeatured)
	set(&h.IsActive, in.IsActive)
}

func applyRoom(r *domain.Room, in *domain.RoomInput) {
	setStr(&r.HotelID, in.HotelID)
	setStr(&r.NameEN, in.NameEN)
	setStr(&r.NameAR, in.NameAR)
	setOptStr(&r.DescriptionEN, in.DescriptionEN)
	setOptStr(&r.DescriptionAR, in.DescriptionAR)
	setPrice(&r.PricePerNight, in.PricePerNight)
	setCurrency(&r.Currency, in.Currency)
	set(&r.MaxGuests, in.MaxGuests)
	setList(&r.AmenitiesEN, in.AmenitiesEN)
	setList(&r.AmenitiesAR, in.AmenitiesAR)
	setOptStr(&r.ImageURL, in.ImageURL)
	set(&r.IsActive, in.IsActive)
}

func applyPackage(p *domain.TourPackage, in *domain.PackageInput) {
	if in.CategoryID != nil {
		setOptStr(&p.CategoryID, in.CategoryID)
		p.Category = nil
	}
	if in.LocationID != nil {
		setOptStr(&p.LocationID, in.LocationID)
		p.Location = nil
	}
	setStr(&p.TitleEN, in.TitleEN)
	setStr(&p.TitleAR, in.TitleAR)
	setOptStr(&p.DescriptionEN, in.DescriptionEN)
	setOptStr(&p.DescriptionAR, in.DescriptionAR)
	setOptStr(&p.LocationEN, in.LocationEN)
	setOptStr(&p.LocationAR, in.LocationAR)
	if in.PackageType != nil && *in.PackageType != "" {
		setStr(&p.PackageType, in.PackageType)
	}
	set(&p.DurationDays, in.DurationDays)
	setPrice(&p.Price, in.Price)
	setCurrency(&p.Currency, in.Currency)
	setList(&p.InclusionsEN, in.InclusionsEN)
	setList(&p.InclusionsAR, in.InclusionsAR)
	setList(&p.ExclusionsEN, in.ExclusionsEN)
	setList(&p.ExclusionsAR, in.ExclusionsAR)
	if in.Itinerary != nil {
		p.Itinerary = append([]domain.ItineraryDay{}, (*in.Itinerary)...)
	}
	setOptStr(&p.ImageURL, in.ImageURL)
	setList(&p.Images, in.Images)
	set(&p.IsFeatured, in.IsFeatured)
	set(&p.IsActive, in.IsActive)
}

func applyDiscoverCard(c *domain.PackageDiscoverCard, in *domain.DiscoverCardInput) {
	setStr(&c.TitleEN, in.TitleEN)
	setStr(&c.TitleAR, in.TitleAR)
	setOptStr(&c.ImageURL, in.ImageURL)
	set(&c.IsActive, in.IsActive)
}

func applyEvent(e *domain.Event, in *domain.EventInput) {
	setStr(&e.Slug, in.Slug)
	setStr(&e.TitleEN, in.TitleEN)
	setStr(&e.TitleAR, in.TitleAR)
	setOptStr(&e.DescriptionEN, in.DescriptionEN)
	setOptStr(&e.DescriptionAR, in.DescriptionAR)
	setOptStr(&e.LocationEN, in.LocationEN)
	setOptStr(&e.LocationAR, in.LocationAR)
	if in.StartDate != nil {
		e.StartDate = in.StartDate.UTC()
	}
	if in.EndDate != nil {
		end := in.EndDate.UTC()
		e.EndDate = &end
	}
	setOptStr(&e.FrequencyEN, in.FrequencyEN)
	setOptStr(&e.FrequencyAR, in.FrequencyAR)
	if in.MaxAttendees != nil {
		if *in.MaxAttendees > 0 {
			n := *in.MaxAttendees
			e.MaxAttendees = &n
		} else {
			e.MaxAttendees = nil
		}
	}
	setNullPrice(&e.Price, in.Price)
	setCurrency(&e.Currency, in.Currency)
	setOptStr(&e.ImageURL, in.ImageURL)
	setList(&e.Images, in.Images)
	set(&e.IsActive, in.IsActive)
}

func applyTransportation(t *domain.Transportation, in *domain.TransportationInput) {
	setStr(&t.NameEN, in.NameEN)
	setStr(&t.NameAR, in.NameAR)
	setOptStr(&t.DescriptionEN, in.DescriptionEN)
	setOptStr(&t.DescriptionAR, in.DescriptionAR)
	setOptStr(&t.VehicleType, in.VehicleType)
	set(&t.Capacity, in.Capacity)
	setNullPrice(&t.PricePerTrip, in.PricePerTrip)
	setNullPrice(&t.PricePerDay, in.PricePerDay)
	setCurrency(&t.Currency, in.Currency)
	setList(&t.FeaturesEN, in.FeaturesEN)
	setList(&t.FeaturesAR, in.FeaturesAR)
	setList(&t.ExclusionsEN, in.ExclusionsEN)
	setList(&t.ExclusionsAR, in.ExclusionsAR)
	setOptStr(&t.ImageURL, in.ImageURL)
	setList(&t.Images, in.Images)
	set(&t.IsActive, in.IsActive)
}

func applyVisa(v *domain.Visa, in *domain.VisaInput) {
	setStr(&v.TitleEN, in.TitleEN)
	setStr(&v.TitleAR, in.TitleAR)
	setStr(&v.VisaTypeEN, in.VisaTypeEN)
	setOptStr(&v.VisaTypeAR, in.VisaTypeAR)
	setOptStr(&v.DescriptionEN, in.DescriptionEN)
	setOptStr(&v.DescriptionAR, in.DescriptionAR)
	setOptStr(&v.ProcessingTimeEN, in.ProcessingTimeEN)
	setOptStr(&v.ProcessingTimeAR, in.ProcessingTimeAR)
	setOptStr(&v.ValidityEN, in.ValidityEN)
	setOptStr(&v.ValidityAR, in.ValidityAR)
	setNullPrice(&v.Price, in.Price)
	setCurrency(&v.Currency, in.Currency)
	setList(&v.RequirementsEN, in.RequirementsEN)
	setList(&v.RequirementsAR, in.RequirementsAR)
	setList(&v.IncludesEN, in.IncludesEN)
	setList(&v.IncludesAR, in.IncludesAR)
	setList(&v.ExcludesEN, in.ExcludesEN)
	setList(&v.ExcludesAR, in.ExcludesAR)
	setOptStr(&v.EligibilityEN, in.EligibilityEN)
	setOptStr(&v.EligibilityAR, in.EligibilityAR)
	setOptStr(&v.NotesEN, in.NotesEN)
	setOptStr(&v.NotesAR, in.NotesAR)
	setOptStr(&v.ImageURL, in.ImageURL)
	setList(&v.Images, in.Images)
	set(&v.IsActive, in.IsActive)
}

func applyBlogPost(p *domain.BlogPost, in *domain.BlogPostInput) {
	setStr(&p.Slug, in.Slug)
	setStr(&p.TitleEN, in.TitleEN)
	setStr(&p.TitleAR, in.TitleAR)
	setOptStr(&p.ExcerptEN, in.ExcerptEN)
	setOptStr(&p.ExcerptAR, in.ExcerptAR)
	setStr(&p.ContentEN, in.ContentEN)
	setOptStr(&p.ContentAR, in.ContentAR)
	setOptStr(&p.ImageURL, in.ImageURL)
	set(&p.IsPublished, in.IsPublished)
}

func applyTestimonial(t *domain.Testimonial, in *domain.TestimonialInput) {
	setStr(&t.Name, in.Name)
	setOptStr(&t.Work, in.Work)
	setStr(&t.Comment, in.Comment)
	set(&t.Rating, in.Rating)
	setOptStr(&t.ImageURL, in.ImageURL)
	set(&t.IsActive, in.IsActive)
}
