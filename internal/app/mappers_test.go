package app_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"elhamas/internal/app"
	"elhamas/internal/domain"
)

func TestMapHotel_ImageOrdering(t *testing.T) {
	h := &domain.Hotel{
		ImageURL: ptr("A.jpg"),
		Images:   datatypes.JSONSlice[string]{"A.jpg", "B.jpg", "C.jpg"},
	}
	got := app.MapHotel(h).Images
	if want := []string{"A.jpg", "B.jpg", "C.jpg"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("images: %v", got)
	}

	h = &domain.Hotel{ImageURL: ptr("Z.jpg"), Images: datatypes.JSONSlice[string]{"B.jpg", "Z.jpg"}}
	if got := app.MapHotel(h).Images; !reflect.DeepEqual(got, []string{"Z.jpg", "B.jpg"}) {
		t.Fatalf("featured moved to front: %v", got)
	}

	h = &domain.Hotel{Images: datatypes.JSONSlice[string]{"B.jpg"}}
	if got := app.MapHotel(h).Images; !reflect.DeepEqual(got, []string{"B.jpg"}) {
		t.Fatalf("no featured: %v", got)
	}

	h = &domain.Hotel{ImageURL: ptr("")}
	if got := app.MapHotel(h).Images; got == nil || len(got) != 0 {
		t.Fatalf("empty featured and gallery should be []: %#v", got)
	}
}

func TestMapHotel_DoesNotMutateGallery(t *testing.T) {
	gallery := datatypes.JSONSlice[string]{"A.jpg", "B.jpg"}
	h := &domain.Hotel{ImageURL: ptr("B.jpg"), Images: gallery}
	_ = app.MapHotel(h)
	if !reflect.DeepEqual([]string(gallery), []string{"A.jpg", "B.jpg"}) {
		t.Fatalf("gallery mutated: %v", gallery)
	}
}

func TestMappers_NilPropagates(t *testing.T) {
	if app.MapHotel(nil) != nil || app.MapPackage(nil) != nil || app.MapEvent(nil) != nil ||
		app.MapVisa(nil) != nil || app.MapTransportation(nil) != nil || app.MapPost(nil) != nil ||
		app.MapLocation(nil) != nil || app.MapRoom(nil) != nil || app.MapTestimonial(nil) != nil {
		t.Fatalf("nil input must map to nil")
	}
}

func TestMapHotel_LocationTriplet(t *testing.T) {
	joined := &domain.Hotel{
		LocationEN: ptr("Old text"),
		Location:   &domain.Location{NameEN: "Makkah", NameAR: "مكة", ImageURL: ptr("makkah.jpg")},
	}
	v := app.MapHotel(joined)
	if deref(v.LocationEN) != "Makkah" || deref(v.LocationAR) != "مكة" || deref(v.LocationImageURL) != "makkah.jpg" {
		t.Fatalf("joined triplet: %+v", v)
	}

	denorm := &domain.Hotel{LocationEN: ptr("Madinah"), LocationAR: ptr("المدينة")}
	v = app.MapHotel(denorm)
	if deref(v.LocationEN) != "Madinah" || deref(v.LocationAR) != "المدينة" || v.LocationImageURL != nil {
		t.Fatalf("fallback triplet: %+v", v)
	}
}

func TestMapHotel_ListsNeverNil(t *testing.T) {
	v := app.MapHotel(&domain.Hotel{})
	if v.AmenitiesEN == nil || v.AmenitiesAR == nil || v.Images == nil || v.Rooms == nil {
		t.Fatalf("nil list in view: %+v", v)
	}
	if v.PricePerNight != nil {
		t.Fatalf("null price should stay nil")
	}
}

func TestMapHotel_SkipsInactiveRooms(t *testing.T) {
	h := &domain.Hotel{Rooms: []domain.Room{{NameEN: "Suite", IsActive: true}, {NameEN: "Old", IsActive: false}}}
	v := app.MapHotel(h)
	if len(v.Rooms) != 1 || v.Rooms[0].NameEN != "Suite" {
		t.Fatalf("rooms: %+v", v.Rooms)
	}
}

func TestNumericCoercion(t *testing.T) {
	if app.ToNumber(decimal.NullDecimal{}) != nil {
		t.Fatalf("NULL should stay nil")
	}
	n := app.ToNumber(decimal.NewNullDecimal(decimal.RequireFromString("1250.50")))
	if n == nil || *n != 1250.5 {
		t.Fatalf("number: %v", n)
	}
	if got := app.Number(decimal.NewFromInt(1000)); got != 1000 {
		t.Fatalf("required number: %v", got)
	}
}

func TestMapPackage_ItinerarySorted(t *testing.T) {
	stored := datatypes.JSONSlice[domain.ItineraryDay]{
		{Day: 3, TitleEN: "Madinah"}, {Day: 1, TitleEN: "Arrival"}, {Day: 2, TitleEN: "Umrah"},
	}
	p := &domain.TourPackage{Itinerary: stored, Price: decimal.NewFromInt(1000), DurationDays: 5}
	v := app.MapPackage(p)

	days := func(in []domain.ItineraryDay) []int {
		out := make([]int, len(in))
		for i, d := range in {
			out[i] = d.Day
		}
		return out
	}
	if got := days(v.Itinerary); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("sorted: %v", got)
	}
	if got := days(stored); !reflect.DeepEqual(got, []int{3, 1, 2}) {
		t.Fatalf("stored order changed: %v", got)
	}

	// sorting an already sorted itinerary is a no-op
	again := app.MapPackage(&domain.TourPackage{Itinerary: v.Itinerary})
	if !reflect.DeepEqual(again.Itinerary, v.Itinerary) {
		t.Fatalf("not idempotent: %v", again.Itinerary)
	}
	if v.Price != 1000 || v.DurationDays != 5 || len(v.Images) != 0 || v.Images == nil {
		t.Fatalf("view: %+v", v)
	}
}

func TestMapPackage_Category(t *testing.T) {
	v := app.MapPackage(&domain.TourPackage{Category: &domain.PackageCategory{NameEN: "Economy", NameAR: "اقتصادي"}})
	if deref(v.CategoryNameEN) != "Economy" || deref(v.CategoryNameAR) != "اقتصادي" {
		t.Fatalf("category: %+v", v)
	}
	if v := app.MapPackage(&domain.TourPackage{}); v.CategoryNameEN != nil {
		t.Fatalf("no category should be nil")
	}
}

func TestMapEvent_Unlimited(t *testing.T) {
	cases := []struct {
		max  *int
		want bool
	}{
		{nil, true},
		{ptr(0), true},
		{ptr(-1), true},
		{ptr(40), false},
	}
	for _, tc := range cases {
		if got := app.MapEvent(&domain.Event{MaxAttendees: tc.max}).IsUnlimited; got != tc.want {
			t.Fatalf("max=%v: got %v", tc.max, got)
		}
	}
}
