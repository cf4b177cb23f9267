package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"elhamas/internal/app"
	"elhamas/internal/domain"
)

// Seeder writes a File through the admin managers, so seeded rows get the
// same defaults, validation and slugs as dashboard edits.
type Seeder struct {
	admin *app.Admin
	sem   *semaphore.Weighted
}

func New(admin *app.Admin, workers int) *Seeder {
	if workers < 1 {
		workers = 1
	}
	return &Seeder{admin: admin, sem: semaphore.NewWeighted(int64(workers))}
}

// Report counts created rows per section. Sections that already had rows are
// listed in Skipped and left alone.
type Report struct {
	mu      sync.Mutex
	Created map[string]int
	Skipped []string
}

func (r *Report) skip(section string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Skipped = append(r.Skipped, section)
}

func (r *Report) add(section string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Created[section] += n
}

// each runs fn for every item, at most workers at a time.
func (s *Seeder) each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		// acquire before launching the goroutine; release inside it
		if err := s.sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer s.sem.Release(1)
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// empty reports whether m has no rows yet.
func empty[T, In any](ctx context.Context, m *app.Manager[T, In], r *Report) (bool, error) {
	rows, err := m.List(ctx)
	if err != nil {
		return false, err
	}
	if len(rows) > 0 {
		r.skip(m.Name())
		log.Info().Str("section", m.Name()).Int("existing", len(rows)).Msg("seed section skipped")
		return false, nil
	}
	return true, nil
}

// simple seeds a section with no references.
func simple[T, In any](ctx context.Context, s *Seeder, m *app.Manager[T, In], items []In, r *Report) error {
	if len(items) == 0 {
		return nil
	}
	ok, err := empty(ctx, m, r)
	if err != nil || !ok {
		return err
	}
	err = s.each(ctx, len(items), func(ctx context.Context, i int) error {
		if _, err := m.Create(ctx, &items[i]); err != nil {
			return fmt.Errorf("%s[%d]: %w", m.Name(), i, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.add(m.Name(), len(items))
	return nil
}

// keyed resolves key to an id, or nil when the key was not created in this run.
func keyed(ids map[string]string, key string) *string {
	id, ok := ids[key]
	if !ok {
		return nil
	}
	return &id
}

// Run seeds every section. Locations and categories go first so hotels and
// packages can resolve their keys.
func (s *Seeder) Run(ctx context.Context, f *File) (*Report, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	a := s.admin
	r := &Report{Created: map[string]int{}}

	locIDs, err := keyedSection(ctx, s, r, a.Locations, len(f.Locations),
		func(i int) (string, *domain.LocationInput) { return f.Locations[i].Key, &f.Locations[i].LocationInput },
		func(row *domain.Location) string { return row.ID })
	if err != nil {
		return r, err
	}
	catIDs, err := keyedSection(ctx, s, r, a.Categories, len(f.Categories),
		func(i int) (string, *domain.CategoryInput) { return f.Categories[i].Key, &f.Categories[i].CategoryInput },
		func(row *domain.PackageCategory) string { return row.ID })
	if err != nil {
		return r, err
	}

	if len(f.Hotels) > 0 {
		ok, err := empty(ctx, a.Hotels, r)
		if err != nil {
			return r, err
		}
		if ok {
			err = s.each(ctx, len(f.Hotels), func(ctx context.Context, i int) error {
				h := f.Hotels[i]
				if h.Location != "" {
					h.LocationID = keyed(locIDs, h.Location)
				}
				row, err := a.Hotels.Create(ctx, &h.HotelInput)
				if err != nil {
					return fmt.Errorf("hotel[%d]: %w", i, err)
				}
				for j := range h.Rooms {
					room := h.Rooms[j]
					room.HotelID = &row.ID
					if _, err := a.Rooms.Create(ctx, &room); err != nil {
						return fmt.Errorf("hotel[%d].rooms[%d]: %w", i, j, err)
					}
					r.add(a.Rooms.Name(), 1)
				}
				return nil
			})
			if err != nil {
				return r, err
			}
			r.add(a.Hotels.Name(), len(f.Hotels))
		}
	}

	if len(f.Packages) > 0 {
		ok, err := empty(ctx, a.Packages, r)
		if err != nil {
			return r, err
		}
		if ok {
			err = s.each(ctx, len(f.Packages), func(ctx context.Context, i int) error {
				p := f.Packages[i]
				if p.Location != "" {
					p.LocationID = keyed(locIDs, p.Location)
				}
				if p.Category != "" {
					p.CategoryID = keyed(catIDs, p.Category)
				}
				if msg := app.ValidateAll(&p.PackageInput); msg != "" {
					return fmt.Errorf("package[%d]: %s", i, msg)
				}
				if _, err := a.Packages.Create(ctx, &p.PackageInput); err != nil {
					return fmt.Errorf("package[%d]: %w", i, err)
				}
				return nil
			})
			if err != nil {
				return r, err
			}
			r.add(a.Packages.Name(), len(f.Packages))
		}
	}

	if f.DiscoverCard != nil {
		_, created, err := a.DiscoverCards.Upsert(ctx, f.DiscoverCard, func(c *domain.PackageDiscoverCard) string { return c.ID })
		if err != nil {
			return r, fmt.Errorf("discover card: %w", err)
		}
		if created {
			r.add(a.DiscoverCards.Name(), 1)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return simple(gctx, s, a.Events, f.Events, r) })
	g.Go(func() error { return simple(gctx, s, a.Transportation, f.Transportation, r) })
	g.Go(func() error { return simple(gctx, s, a.Visas, f.Visas, r) })
	g.Go(func() error { return simple(gctx, s, a.BlogPosts, f.BlogPosts, r) })
	g.Go(func() error { return simple(gctx, s, a.Testimonials, f.Testimonials, r) })
	if err := g.Wait(); err != nil {
		return r, err
	}
	return r, nil
}

// keyedSection creates rows and maps each item's key to the new id. When the
// section already has rows nothing is created and keys stay unresolved.
func keyedSection[T, In any](ctx context.Context, s *Seeder, r *Report, m *app.Manager[T, In], n int,
	item func(int) (string, *In), id func(*T) string) (map[string]string, error) {
	ids := map[string]string{}
	if n == 0 {
		return ids, nil
	}
	ok, err := empty(ctx, m, r)
	if err != nil || !ok {
		return ids, err
	}
	created := make([]string, n)
	err = s.each(ctx, n, func(ctx context.Context, i int) error {
		_, in := item(i)
		row, err := m.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", m.Name(), i, err)
		}
		created[i] = id(row)
		return nil
	})
	if err != nil {
		return ids, err
	}
	for i := 0; i < n; i++ {
		if key, _ := item(i); key != "" {
			ids[key] = created[i]
		}
	}
	r.add(m.Name(), n)
	return ids, nil
}
