package app

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"elhamas/internal/domain"
	"elhamas/internal/i18n"
)

const homeSectionSize = 6

const (
	orderSorted = "sort_order ASC, created_at DESC"
	orderNewest = "created_at DESC"
	orderOldest = "created_at ASC"
	orderStart  = "start_date ASC"
)

// QueryService answers public reads. Every method goes through SafeFetch, so
// callers get empty lists or nil rows instead of errors.
type QueryService struct {
	repo       domain.Repository
	configured bool
	now        func() time.Time
}

// NewQueryService wraps repo. A nil repo means no datastore is configured.
func NewQueryService(repo domain.Repository) *QueryService {
	return &QueryService{repo: repo, configured: repo != nil, now: time.Now}
}

// WithClock overrides the clock used to pick upcoming events.
func (s *QueryService) WithClock(now func() time.Time) *QueryService {
	s.now = now
	return s
}

// findActive runs f against st and maps every row.
func findActive[T, V any](ctx context.Context, s *QueryService, op string, st func() domain.Store[T], f domain.Filter, fn func(*T) *V) []V {
	return SafeFetch(ctx, s.configured, op, func(ctx context.Context) ([]V, error) {
		rows, err := st().Find(ctx, f)
		if err != nil {
			return nil, err
		}
		return mapAll(rows, fn), nil
	}, []V{})
}

// findOne returns the active row matching where, or nil.
func findOne[T, V any](ctx context.Context, s *QueryService, op string, st func() domain.Store[T], where map[string]any, fn func(*T) *V) *V {
	return findFirst(ctx, s, op, st, domain.ActiveOnly(where), fn)
}

// findFirst returns the first row matching f, or nil.
func findFirst[T, V any](ctx context.Context, s *QueryService, op string, st func() domain.Store[T], f domain.Filter, fn func(*T) *V) *V {
	return SafeFetch(ctx, s.configured, op, func(ctx context.Context) (*V, error) {
		row, err := st().FindOne(ctx, f)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return fn(row), nil
	}, nil)
}

func ordered(where map[string]any, order string) domain.Filter {
	f := domain.ActiveOnly(where)
	f.Order = order
	return f
}

func (s *QueryService) Locations(ctx context.Context) []domain.LocationView {
	return findActive(ctx, s, "locations", s.locations, ordered(nil, orderSorted), MapLocation)
}

func (s *QueryService) Categories(ctx context.Context) []domain.CategoryView {
	return findActive(ctx, s, "categories", s.categories, ordered(nil, orderSorted), MapCategory)
}

// Hotels lists active hotels, optionally limited to one location.
func (s *QueryService) Hotels(ctx context.Context, locationID string) []domain.HotelView {
	var where map[string]any
	if locationID != "" {
		where = map[string]any{"location_id": locationID}
	}
	return findActive(ctx, s, "hotels", s.hotels, ordered(where, orderNewest), MapHotel)
}

func (s *QueryService) Hotel(ctx context.Context, id string) *domain.HotelView {
	return findOne(ctx, s, "hotel", s.hotels, map[string]any{"id": id}, MapHotel)
}

func (s *QueryService) Rooms(ctx context.Context, hotelID string) []domain.RoomView {
	f := ordered(map[string]any{"hotel_id": hotelID}, "price_per_night ASC")
	return findActive(ctx, s, "rooms", s.rooms, f, MapRoom)
}

// Packages lists active packages, optionally limited to one category.
func (s *QueryService) Packages(ctx context.Context, categoryID string) []domain.PackageView {
	var where map[string]any
	if categoryID != "" {
		where = map[string]any{"category_id": categoryID}
	}
	return findActive(ctx, s, "packages", s.packages, ordered(where, orderNewest), MapPackage)
}

func (s *QueryService) Package(ctx context.Context, id string) *domain.PackageView {
	return findOne(ctx, s, "package", s.packages, map[string]any{"id": id}, MapPackage)
}

// DiscoverCard returns the oldest active discover card, the same row the
// admin upsert edits, or nil.
func (s *QueryService) DiscoverCard(ctx context.Context) *domain.DiscoverCardView {
	return findFirst(ctx, s, "discover_card", s.discoverCards, ordered(nil, orderOldest), MapDiscoverCard)
}

func (s *QueryService) Events(ctx context.Context) []domain.EventView {
	return findActive(ctx, s, "events", s.events, ordered(nil, orderStart), MapEvent)
}

func (s *QueryService) Event(ctx context.Context, slug string) *domain.EventView {
	return findOne(ctx, s, "event", s.events, map[string]any{"slug": slug}, MapEvent)
}

func (s *QueryService) Transportation(ctx context.Context) []domain.TransportationView {
	return findActive(ctx, s, "transportation", s.transportation, ordered(nil, orderNewest), MapTransportation)
}

func (s *QueryService) TransportationByID(ctx context.Context, id string) *domain.TransportationView {
	return findOne(ctx, s, "transportation_item", s.transportation, map[string]any{"id": id}, MapTransportation)
}

func (s *QueryService) Visas(ctx context.Context) []domain.VisaView {
	return findActive(ctx, s, "visas", s.visas, ordered(nil, orderNewest), MapVisa)
}

func (s *QueryService) Visa(ctx context.Context, id string) *domain.VisaView {
	return findOne(ctx, s, "visa", s.visas, map[string]any{"id": id}, MapVisa)
}

// Posts lists published posts, newest first.
func (s *QueryService) Posts(ctx context.Context) []domain.PostView {
	f := domain.Filter{Where: map[string]any{"is_published": true}, Order: "published_at DESC"}
	return findActive(ctx, s, "posts", s.posts, f, MapPost)
}

func (s *QueryService) Post(ctx context.Context, slug string) *domain.PostView {
	return SafeFetch(ctx, s.configured, "post", func(ctx context.Context) (*domain.PostView, error) {
		row, err := s.repo.BlogPosts().FindOne(ctx, domain.Filter{Where: map[string]any{"slug": slug, "is_published": true}})
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return MapPost(row), nil
	}, nil)
}

func (s *QueryService) Testimonials(ctx context.Context) []domain.TestimonialView {
	return findActive(ctx, s, "testimonials", s.testimonials, ordered(nil, orderNewest), MapTestimonial)
}

/********** home **********/

// Home loads the landing page sections in parallel and resolves card text
// for loc. A failing section is empty; the others still render.
func (s *QueryService) Home(ctx context.Context, loc domain.Locale) domain.HomeView {
	out := domain.HomeView{
		Locale:       loc,
		Dir:          loc.Dir(),
		Hotels:       []domain.Card{},
		Packages:     []domain.Card{},
		Events:       []domain.Card{},
		Testimonials: []domain.TestimonialView{},
	}

	featured := func(order string) domain.Filter {
		f := ordered(map[string]any{"is_featured": true}, order)
		f.Limit = homeSectionSize
		return f
	}
	upcoming := ordered(nil, orderStart)
	upcoming.From = map[string]any{"start_date": s.now()}
	upcoming.Limit = homeSectionSize
	latest := ordered(nil, orderNewest)
	latest.Limit = homeSectionSize

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for _, h := range findActive(gctx, s, "home_hotels", s.hotels, featured(orderNewest), MapHotel) {
			out.Hotels = append(out.Hotels, hotelCard(&h, loc))
		}
		return nil
	})
	g.Go(func() error {
		for _, p := range findActive(gctx, s, "home_packages", s.packages, featured(orderNewest), MapPackage) {
			out.Packages = append(out.Packages, packageCard(&p, loc))
		}
		return nil
	})
	g.Go(func() error {
		for _, e := range findActive(gctx, s, "home_events", s.events, upcoming, MapEvent) {
			out.Events = append(out.Events, eventCard(&e, loc))
		}
		return nil
	})
	g.Go(func() error {
		out.Testimonials = findActive(gctx, s, "home_testimonials", s.testimonials, latest, MapTestimonial)
		return nil
	})
	_ = g.Wait() // sections never fail; SafeFetch already fell back
	return out
}

func firstImage(images []string) *string {
	if len(images) == 0 {
		return nil
	}
	return &images[0]
}

func hotelCard(h *domain.HotelView, loc domain.Locale) domain.Card {
	return domain.Card{
		Kind:     "hotel",
		ID:       h.ID,
		Title:    i18n.Pick(h.NameEN, h.NameAR, loc),
		Subtitle: i18n.Resolve(h, "location", loc),
		Image:    firstImage(h.Images),
		Price:    h.PricePerNight,
		Currency: h.Currency,
	}
}

func packageCard(p *domain.PackageView, loc domain.Locale) domain.Card {
	price := p.Price
	subtitle := i18n.Resolve(p, "category_name", loc)
	if subtitle == "" {
		subtitle = i18n.Resolve(p, "location", loc)
	}
	return domain.Card{
		Kind:     "package",
		ID:       p.ID,
		Title:    i18n.Pick(p.TitleEN, p.TitleAR, loc),
		Subtitle: subtitle,
		Image:    firstImage(p.Images),
		Price:    &price,
		Currency: p.Currency,
	}
}

func eventCard(e *domain.EventView, loc domain.Locale) domain.Card {
	subtitle := i18n.Resolve(e, "location", loc)
	if subtitle == "" {
		subtitle = e.StartDate.Format("2006-01-02")
	}
	return domain.Card{
		Kind:     "event",
		ID:       e.ID,
		Slug:     e.Slug,
		Title:    i18n.Resolve(e, "title", loc),
		Subtitle: subtitle,
		Image:    firstImage(e.Images),
		Price:    e.Price,
		Currency: e.Currency,
	}
}

/********** store accessors **********/

func (s *QueryService) locations() domain.Store[domain.Location]         { return s.repo.Locations() }
func (s *QueryService) categories() domain.Store[domain.PackageCategory] { return s.repo.Categories() }
func (s *QueryService) hotels() domain.Store[domain.Hotel]               { return s.repo.Hotels() }
func (s *QueryService) rooms() domain.Store[domain.Room]                 { return s.repo.Rooms() }
func (s *QueryService) packages() domain.Store[domain.TourPackage]       { return s.repo.Packages() }
func (s *QueryService) discoverCards() domain.Store[domain.PackageDiscoverCard] {
	return s.repo.DiscoverCards()
}
func (s *QueryService) events() domain.Store[domain.Event]                  { return s.repo.Events() }
func (s *QueryService) transportation() domain.Store[domain.Transportation] { return s.repo.Transportation() }
func (s *QueryService) visas() domain.Store[domain.Visa]                    { return s.repo.Visas() }
func (s *QueryService) posts() domain.Store[domain.BlogPost]                { return s.repo.BlogPosts() }
func (s *QueryService) testimonials() domain.Store[domain.Testimonial]      { return s.repo.Testimonials() }
