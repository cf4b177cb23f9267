package app_test

import (
	"context"
	"errors"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"elhamas/internal/domain"
)

// ---- fakes ----

// memStore is an in-memory domain.Store. Filters match on json tag names,
// which equal the column names for every entity.
type memStore[T any] struct {
	mu      sync.Mutex
	rows    []*T
	unique  []string
	findErr error
	writes  int
	// stale makes the next n lookups miss, like a read racing a concurrent insert.
	stale int
}

func clone[T any](row *T) *T {
	cp := *row
	return &cp
}

func column(v reflect.Value, col string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if fv, ok := column(v.Field(i), col); ok {
				return fv, true
			}
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == col {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func plain(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

func (s *memStore[T]) match(row *T, f domain.Filter) bool {
	v := reflect.ValueOf(row).Elem()
	for col, want := range f.Where {
		fv, ok := column(v, col)
		if !ok || !reflect.DeepEqual(plain(fv), want) {
			return false
		}
	}
	for col, from := range f.From {
		fv, ok := column(v, col)
		if !ok {
			return false
		}
		got, ok1 := plain(fv).(time.Time)
		min, ok2 := from.(time.Time)
		if !ok1 || !ok2 || got.Before(min) {
			return false
		}
	}
	return true
}

func (s *memStore[T]) Find(_ context.Context, f domain.Filter) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	out := []T{}
	if s.stale > 0 {
		s.stale--
		return out, nil
	}
	for _, r := range s.rows {
		if s.match(r, f) {
			out = append(out, *clone(r))
		}
	}
	if f.Order == "created_at ASC" {
		sort.SliceStable(out, func(i, j int) bool {
			a, _ := column(reflect.ValueOf(&out[i]).Elem(), "created_at")
			b, _ := column(reflect.ValueOf(&out[j]).Elem(), "created_at")
			return a.Interface().(time.Time).Before(b.Interface().(time.Time))
		})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *memStore[T]) FindOne(ctx context.Context, f domain.Filter) (*T, error) {
	f.Limit = 1
	rows, err := s.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

func idOf[T any](row *T) string {
	fv, _ := column(reflect.ValueOf(row).Elem(), "id")
	return fv.String()
}

func (s *memStore[T]) indexOf(id string) int {
	for i, r := range s.rows {
		if idOf(r) == id {
			return i
		}
	}
	return -1
}

func (s *memStore[T]) Get(_ context.Context, id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	if i := s.indexOf(id); i >= 0 {
		return clone(s.rows[i]), nil
	}
	return nil, domain.ErrNotFound
}

func (s *memStore[T]) conflicts(row *T, self string) bool {
	v := reflect.ValueOf(row).Elem()
	for _, col := range s.unique {
		want, _ := column(v, col)
		for _, r := range s.rows {
			if idOf(r) == self {
				continue
			}
			got, _ := column(reflect.ValueOf(r).Elem(), col)
			if reflect.DeepEqual(plain(got), plain(want)) {
				return true
			}
		}
	}
	return false
}

func (s *memStore[T]) Create(_ context.Context, row *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := reflect.ValueOf(row).Elem()
	if id := v.FieldByName("ID"); id.String() == "" {
		id.SetString(uuid.NewString())
	}
	if s.conflicts(row, "") {
		return domain.ErrConflict
	}
	now := time.Now()
	v.FieldByName("CreatedAt").Set(reflect.ValueOf(now))
	v.FieldByName("UpdatedAt").Set(reflect.ValueOf(now))
	s.rows = append(s.rows, clone(row))
	s.writes++
	return nil
}

func (s *memStore[T]) Save(_ context.Context, row *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(idOf(row))
	if i < 0 {
		return domain.ErrNotFound
	}
	if s.conflicts(row, idOf(row)) {
		return domain.ErrConflict
	}
	reflect.ValueOf(row).Elem().FieldByName("UpdatedAt").Set(reflect.ValueOf(time.Now()))
	s.rows[i] = clone(row)
	s.writes++
	return nil
}

func (s *memStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.writes++
	return nil
}

func (s *memStore[T]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type memRepo struct {
	locations      memStore[domain.Location]
	categories     memStore[domain.PackageCategory]
	hotels         memStore[domain.Hotel]
	rooms          memStore[domain.Room]
	packages       memStore[domain.TourPackage]
	discoverCards  memStore[domain.PackageDiscoverCard]
	events         memStore[domain.Event]
	transportation memStore[domain.Transportation]
	visas          memStore[domain.Visa]
	posts          memStore[domain.BlogPost]
	testimonials   memStore[domain.Testimonial]
	inquiries      memStore[domain.Inquiry]
	admins         memStore[domain.AdminUser]
}

func newMemRepo() *memRepo {
	r := &memRepo{}
	r.events.unique = []string{"slug"}
	r.posts.unique = []string{"slug"}
	r.admins.unique = []string{"email"}
	return r
}

func (r *memRepo) Locations() domain.Store[domain.Location]         { return &r.locations }
func (r *memRepo) Categories() domain.Store[domain.PackageCategory] { return &r.categories }
func (r *memRepo) Hotels() domain.Store[domain.Hotel]               { return &r.hotels }
func (r *memRepo) Rooms() domain.Store[domain.Room]                 { return &r.rooms }
func (r *memRepo) Packages() domain.Store[domain.TourPackage]       { return &r.packages }
func (r *memRepo) DiscoverCards() domain.Store[domain.PackageDiscoverCard] {
	return &r.discoverCards
}
func (r *memRepo) Events() domain.Store[domain.Event]                  { return &r.events }
func (r *memRepo) Transportation() domain.Store[domain.Transportation] { return &r.transportation }
func (r *memRepo) Visas() domain.Store[domain.Visa]                    { return &r.visas }
func (r *memRepo) BlogPosts() domain.Store[domain.BlogPost]            { return &r.posts }
func (r *memRepo) Testimonials() domain.Store[domain.Testimonial]      { return &r.testimonials }
func (r *memRepo) Inquiries() domain.Store[domain.Inquiry]             { return &r.inquiries }
func (r *memRepo) Admins() domain.Store[domain.AdminUser]              { return &r.admins }

// memSessions is a map-backed domain.SessionStore.
type memSessions struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memSessions) Create(_ context.Context, adminID string, _ time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string]string{}
	}
	sid := uuid.NewString()
	m.data[sid] = adminID
	return sid, nil
}

func (m *memSessions) Lookup(_ context.Context, sid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.data[sid]; ok {
		return id, nil
	}
	return "", domain.ErrNotFound
}

func (m *memSessions) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sid)
	return nil
}

// memObjects records uploads.
type memObjects struct {
	keys []string
	err  error
}

func (m *memObjects) Upload(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.keys = append(m.keys, key)
	return "/" + key, nil
}

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
