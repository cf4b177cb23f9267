package seed_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"elhamas/internal/app"
	"elhamas/internal/domain"
	"elhamas/internal/seed"
)

// ---- fakes ----

// store matches Where filters by comparing the row's JSON fields.
type store[T any] struct {
	mu   sync.Mutex
	rows []*T
}

func fields(row any) map[string]any {
	b, _ := json.Marshal(row)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

func (s *store[T]) Find(_ context.Context, f domain.Filter) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []T{}
	for _, r := range s.rows {
		m := fields(r)
		ok := true
		for k, v := range f.Where {
			if fmt.Sprint(m[k]) != fmt.Sprint(v) {
				ok = false
			}
		}
		if ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *store[T]) FindOne(ctx context.Context, f domain.Filter) (*T, error) {
	rows, _ := s.Find(ctx, f)
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

func (s *store[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.FindOne(ctx, domain.Filter{Where: map[string]any{"id": id}})
}

func (s *store[T]) Create(_ context.Context, row *T) error {
	_ = any(row).(interface{ BeforeCreate(*gorm.DB) error }).BeforeCreate(nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *row
	s.rows = append(s.rows, &cp)
	return nil
}

func (s *store[T]) Save(_ context.Context, row *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fields(row)["id"]
	for i, r := range s.rows {
		if fields(r)["id"] == id {
			cp := *row
			s.rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *store[T]) Delete(context.Context, string) error { return errors.New("not used") }

func (s *store[T]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type repo struct {
	locations      store[domain.Location]
	categories     store[domain.PackageCategory]
	hotels         store[domain.Hotel]
	rooms          store[domain.Room]
	packages       store[domain.TourPackage]
	cards          store[domain.PackageDiscoverCard]
	events         store[domain.Event]
	transportation store[domain.Transportation]
	visas          store[domain.Visa]
	posts          store[domain.BlogPost]
	testimonials   store[domain.Testimonial]
	inquiries      store[domain.Inquiry]
	admins         store[domain.AdminUser]
}

func (r *repo) Locations() domain.Store[domain.Location]         { return &r.locations }
func (r *repo) Categories() domain.Store[domain.PackageCategory] { return &r.categories }
func (r *repo) Hotels() domain.Store[domain.Hotel]               { return &r.hotels }
func (r *repo) Rooms() domain.Store[domain.Room]                 { return &r.rooms }
func (r *repo) Packages() domain.Store[domain.TourPackage]       { return &r.packages }
func (r *repo) DiscoverCards() domain.Store[domain.PackageDiscoverCard] {
	return &r.cards
}
func (r *repo) Events() domain.Store[domain.Event]                  { return &r.events }
func (r *repo) Transportation() domain.Store[domain.Transportation] { return &r.transportation }
func (r *repo) Visas() domain.Store[domain.Visa]                    { return &r.visas }
func (r *repo) BlogPosts() domain.Store[domain.BlogPost]            { return &r.posts }
func (r *repo) Testimonials() domain.Store[domain.Testimonial]      { return &r.testimonials }
func (r *repo) Inquiries() domain.Store[domain.Inquiry]             { return &r.inquiries }
func (r *repo) Admins() domain.Store[domain.AdminUser]              { return &r.admins }

// ---- tests ----

func TestParse_Sample(t *testing.T) {
	f, err := seed.ReadFile("testdata/seed.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(f.Locations) != 2 || f.Locations[0].Key != "makkah" || *f.Locations[1].NameAR != "المدينة المنورة" {
		t.Fatalf("locations = %+v", f.Locations)
	}
	if len(f.Hotels) != 1 || len(f.Hotels[0].Rooms) != 2 || f.Hotels[0].Location != "makkah" {
		t.Fatalf("hotels = %+v", f.Hotels)
	}
	if f.Events[0].StartDate == nil || f.Events[0].StartDate.Day() != 20 {
		t.Fatalf("event date = %+v", f.Events[0].StartDate)
	}
}

func TestParse_BadReferences(t *testing.T) {
	cases := map[string]string{
		"unknown location": "hotels:\n  - location: jeddah\n    nameEn: A\n    nameAr: ب\n",
		"unknown category": "packages:\n  - category: hajj\n    titleEn: A\n",
		"duplicate key":    "locations:\n  - key: a\n  - key: a\n",
		"not yaml":         "locations: [",
	}
	for name, doc := range cases {
		if _, err := seed.Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRun_SeedsAndResolvesKeys(t *testing.T) {
	data, err := os.ReadFile("testdata/seed.yaml")
	if err != nil {
		t.Fatal(err)
	}
	f, err := seed.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	r := &repo{}
	ctx := context.Background()

	report, err := seed.New(app.NewAdmin(r), 3).Run(ctx, f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Created["location"] != 2 || report.Created["room"] != 2 || report.Created["package"] != 1 {
		t.Fatalf("report = %+v", report.Created)
	}

	makkah, _ := r.locations.FindOne(ctx, domain.Filter{Where: map[string]any{"name_en": "Makkah"}})
	hotel, _ := r.hotels.FindOne(ctx, domain.Filter{})
	if makkah == nil || hotel == nil || hotel.LocationID == nil || *hotel.LocationID != makkah.ID {
		t.Fatalf("hotel location not resolved: %+v", hotel)
	}
	rooms, _ := r.rooms.Find(ctx, domain.Filter{Where: map[string]any{"hotel_id": hotel.ID}})
	if len(rooms) != 2 {
		t.Fatalf("rooms = %d", len(rooms))
	}
	pkg, _ := r.packages.FindOne(ctx, domain.Filter{})
	if pkg.CategoryID == nil || pkg.Currency != "SAR" {
		t.Fatalf("package = %+v", pkg)
	}
	ev, _ := r.events.FindOne(ctx, domain.Filter{})
	if ev.Slug != "ramadan-iftar" {
		t.Fatalf("event slug = %q", ev.Slug)
	}

	// a second run leaves populated sections alone
	again, err := seed.New(app.NewAdmin(r), 3).Run(ctx, f)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if r.locations.count() != 2 || r.hotels.count() != 1 || r.events.count() != 1 {
		t.Fatal("second run duplicated rows")
	}
	if !strings.Contains(strings.Join(again.Skipped, ","), "location") {
		t.Fatalf("skipped = %v", again.Skipped)
	}
	if r.cards.count() != 1 {
		t.Fatalf("discover cards = %d", r.cards.count())
	}
}

func TestRun_InvalidItem(t *testing.T) {
	f, err := seed.Parse([]byte("testimonials:\n  - name: A\n    comment: ok\n    rating: 9\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := seed.New(app.NewAdmin(&repo{}), 1).Run(context.Background(), f); err == nil {
		t.Fatal("expected validation error")
	}
}
