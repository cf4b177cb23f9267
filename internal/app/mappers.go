package app

import (
	"sort"

	"github.com/shopspring/decimal"

	"elhamas/internal/domain"
)

/********** tiny helpers **********/

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// list never returns nil so JSON renders [] instead of null.
func list[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

/********** numeric coercion **********/

// ToNumber converts a nullable DECIMAL column into a float for views.
// NULL stays nil; everything else becomes a number.
func ToNumber(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

// Number converts a required DECIMAL column.
func Number(d decimal.Decimal) float64 { return d.InexactFloat64() }

func fromFloat(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*f))
}

/********** images **********/

// orderImages puts the featured image first and drops its duplicate from the
// gallery. Gallery order is otherwise kept.
func orderImages(featured *string, gallery []string) []string {
	f := deref(featured)
	if f == "" {
		return list(gallery)
	}
	out := make([]string, 0, len(gallery)+1)
	out = append(out, f)
	for _, g := range gallery {
		if g != f {
			out = append(out, g)
		}
	}
	return out
}

/********** location triplet **********/

// locationTriplet prefers the joined location row; without it the row's own
// text columns are used and there is no location image.
func locationTriplet(loc *domain.Location, en, ar *string) (*string, *string, *string) {
	if loc != nil {
		return ptrStr(loc.NameEN), ptrStr(loc.NameAR), loc.ImageURL
	}
	return en, ar, nil
}

// sortItinerary returns the days ordered by day number. The input is not modified.
func sortItinerary(days []domain.ItineraryDay) []domain.ItineraryDay {
	out := list(days)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

/********** entity mappers **********/

func MapLocation(l *domain.Location) *domain.LocationView {
	if l == nil {
		return nil
	}
	return &domain.LocationView{
		ID:            l.ID,
		NameEN:        l.NameEN,
		NameAR:        l.NameAR,
		DescriptionEN: l.DescriptionEN,
		DescriptionAR: l.DescriptionAR,
		ImageURL:      l.ImageURL,
		SortOrder:     l.SortOrder,
	}
}

func MapCategory(c *domain.PackageCategory) *domain.CategoryView {
	if c == nil {
		return nil
	}
	return &domain.CategoryView{
		ID:            c.ID,
		NameEN:        c.NameEN,
		NameAR:        c.NameAR,
		DescriptionEN: c.DescriptionEN,
		DescriptionAR: c.DescriptionAR,
		ImageURL:      c.ImageURL,
		SortOrder:     c.SortOrder,
	}
}

func MapHotel(h *domain.Hotel) *domain.HotelView {
	if h == nil {
		return nil
	}
	locEN, locAR, locImg := locationTriplet(h.Location, h.LocationEN, h.LocationAR)
	rooms := make([]domain.RoomView, 0, len(h.Rooms))
	for i := range h.Rooms {
		if !h.Rooms[i].IsActive {
			continue
		}
		rooms = append(rooms, *MapRoom(&h.Rooms[i]))
	}
	return &domain.HotelView{
		ID:               h.ID,
		LocationID:       h.LocationID,
		NameEN:           h.NameEN,
		NameAR:           h.NameAR,
		DescriptionEN:    h.DescriptionEN,
		DescriptionAR:    h.DescriptionAR,
		LocationEN:       locEN,
		LocationAR:       locAR,
		LocationImageURL: locImg,
		AddressEN:        h.AddressEN,
		AddressAR:        h.AddressAR,
		StarRating:       h.StarRating,
		PricePerNight:    ToNumber(h.PricePerNight),
		Currency:         h.Currency,
		AmenitiesEN:      list(h.AmenitiesEN),
		AmenitiesAR:      list(h.AmenitiesAR),
		ImageURL:         h.ImageURL,
		Images:           orderImages(h.ImageURL, h.Images),
		IsFeatured:       h.IsFeatured,
		Rooms:            rooms,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

func MapRoom(r *domain.Room) *domain.RoomView {
	if r == nil {
		return nil
	}
	return &domain.RoomView{
		ID:            r.ID,
		HotelID:       r.HotelID,
		NameEN:        r.NameEN,
		NameAR:        r.NameAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		PricePerNight: Number(r.PricePerNight),
		Currency:      r.Currency,
		MaxGuests:     r.MaxGuests,
		AmenitiesEN:   list(r.AmenitiesEN),
		AmenitiesAR:   list(r.AmenitiesAR),
		ImageURL:      r.ImageURL,
		Images:        orderImages(r.ImageURL, nil),
	}
}

func MapPackage(p *domain.TourPackage) *domain.PackageView {
	if p == nil {
		return nil
	}
	locEN, locAR, locImg := locationTriplet(p.Location, p.LocationEN, p.LocationAR)
	v := &domain.PackageView{
		ID:               p.ID,
		CategoryID:       p.CategoryID,
		LocationID:       p.LocationID,
		LocationEN:       locEN,
		LocationAR:       locAR,
		LocationImageURL: locImg,
		TitleEN:          p.TitleEN,
		TitleAR:          p.TitleAR,
		DescriptionEN:    p.DescriptionEN,
		DescriptionAR:    p.DescriptionAR,
		PackageType:      p.PackageType,
		DurationDays:     p.DurationDays,
		Price:            Number(p.Price),
		Currency:         p.Currency,
		InclusionsEN:     list(p.InclusionsEN),
		InclusionsAR:     list(p.InclusionsAR),
		ExclusionsEN:     list(p.ExclusionsEN),
		ExclusionsAR:     list(p.ExclusionsAR),
		Itinerary:        sortItinerary(p.Itinerary),
		ImageURL:         p.ImageURL,
		Images:           orderImages(p.ImageURL, p.Images),
		IsFeatured:       p.IsFeatured,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Category != nil {
		v.CategoryNameEN = ptrStr(p.Category.NameEN)
		v.CategoryNameAR = ptrStr(p.Category.NameAR)
	}
	return v
}

func MapDiscoverCard(c *domain.PackageDiscoverCard) *domain.DiscoverCardView {
	if c == nil {
		return nil
	}
	return &domain.DiscoverCardView{ID: c.ID, TitleEN: c.TitleEN, TitleAR: c.TitleAR, ImageURL: c.ImageURL}
}

func MapEvent(e *domain.Event) *domain.EventView {
	if e == nil {
		return nil
	}
	return &domain.EventView{
		ID:            e.ID,
		Slug:          e.Slug,
		TitleEN:       e.TitleEN,
		TitleAR:       e.TitleAR,
		DescriptionEN: e.DescriptionEN,
		DescriptionAR: e.DescriptionAR,
		LocationEN:    e.LocationEN,
		LocationAR:    e.LocationAR,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		FrequencyEN:   e.FrequencyEN,
		FrequencyAR:   e.FrequencyAR,
		MaxAttendees:  e.MaxAttendees,
		IsUnlimited:   e.MaxAttendees == nil || *e.MaxAttendees <= 0,
		Price:         ToNumber(e.Price),
		Currency:      e.Currency,
		ImageURL:      e.ImageURL,
		Images:        orderImages(e.ImageURL, e.Images),
	}
}

func MapTransportation(t *domain.Transportation) *domain.TransportationView {
	if t == nil {
		return nil
	}
	return &domain.TransportationView{
		ID:            t.ID,
		NameEN:        t.NameEN,
		NameAR:        t.NameAR,
		DescriptionEN: t.DescriptionEN,
		DescriptionAR: t.DescriptionAR,
		VehicleType:   t.VehicleType,
		Capacity:      t.Capacity,
		PricePerTrip:  ToNumber(t.PricePerTrip),
		PricePerDay:   ToNumber(t.PricePerDay),
		Currency:      t.Currency,
		FeaturesEN:    list(t.FeaturesEN),
		FeaturesAR:    list(t.FeaturesAR),
		ExclusionsEN:  list(t.ExclusionsEN),
		ExclusionsAR:  list(t.ExclusionsAR),
		ImageURL:      t.ImageURL,
		Images:        orderImages(t.ImageURL, t.Images),
	}
}

func MapVisa(v *domain.Visa) *domain.VisaView {
	if v == nil {
		return nil
	}
	return &domain.VisaView{
		ID:               v.ID,
		TitleEN:          v.TitleEN,
		TitleAR:          v.TitleAR,
		VisaTypeEN:       v.VisaTypeEN,
		VisaTypeAR:       v.VisaTypeAR,
		DescriptionEN:    v.DescriptionEN,
		DescriptionAR:    v.DescriptionAR,
		ProcessingTimeEN: v.ProcessingTimeEN,
		ProcessingTimeAR: v.ProcessingTimeAR,
		ValidityEN:       v.ValidityEN,
		ValidityAR:       v.ValidityAR,
		Price:            ToNumber(v.Price),
		Currency:         v.Currency,
		RequirementsEN:   list(v.RequirementsEN),
		RequirementsAR:   list(v.RequirementsAR),
		IncludesEN:       list(v.IncludesEN),
		IncludesAR:       list(v.IncludesAR),
		ExcludesEN:       list(v.ExcludesEN),
		ExcludesAR:       list(v.ExcludesAR),
		EligibilityEN:    v.EligibilityEN,
		EligibilityAR:    v.EligibilityAR,
		NotesEN:          v.NotesEN,
		NotesAR:          v.NotesAR,
		ImageURL:         v.ImageURL,
		Images:           orderImages(v.ImageURL, v.Images),
	}
}

func MapPost(p *domain.BlogPost) *domain.PostView {
	if p == nil {
		return nil
	}
	return &domain.PostView{
		ID:          p.ID,
		Slug:        p.Slug,
		TitleEN:     p.TitleEN,
		TitleAR:     p.TitleAR,
		ExcerptEN:   p.ExcerptEN,
		ExcerptAR:   p.ExcerptAR,
		ContentEN:   p.ContentEN,
		ContentAR:   p.ContentAR,
		ImageURL:    p.ImageURL,
		PublishedAt: p.PublishedAt,
	}
}

func MapTestimonial(t *domain.Testimonial) *domain.TestimonialView {
	if t == nil {
		return nil
	}
	return &domain.TestimonialView{
		ID:       t.ID,
		Name:     t.Name,
		Work:     t.Work,
		Comment:  t.Comment,
		Rating:   t.Rating,
		ImageURL: t.ImageURL,
	}
}

// mapAll applies fn to every row and never returns nil.
func mapAll[T, V any](rows []T, fn func(*T) *V) []V {
	out := make([]V, 0, len(rows))
	for i := range rows {
		out = append(out, *fn(&rows[i]))
	}
	return out
}
