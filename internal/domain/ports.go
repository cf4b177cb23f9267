package domain

import (
	"context"
	"io"
	"time"
)

// Filter narrows a Store query. Where and From keys are column names;
// From matches rows whose column is >= the value.
type Filter struct {
	Where map[string]any
	From  map[string]any
	Order string
	Limit int
}

// ActiveOnly returns a filter matching publicly visible rows plus any extra conditions.
func ActiveOnly(extra map[string]any) Filter {
	w := map[string]any{"is_active": true}
	for k, v := range extra {
		w[k] = v
	}
	return Filter{Where: w}
}

// Store is the persistence port shared by every entity type.
type Store[T any] interface {
	Find(ctx context.Context, f Filter) ([]T, error)
	FindOne(ctx context.Context, f Filter) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, row *T) error
	Save(ctx context.Context, row *T) error
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Locations() Store[Location]
	Categories() Store[PackageCategory]
	Hotels() Store[Hotel]
	Rooms() Store[Room]
	Packages() Store[TourPackage]
	DiscoverCards() Store[PackageDiscoverCard]
	Events() Store[Event]
	Transportation() Store[Transportation]
	Visas() Store[Visa]
	BlogPosts() Store[BlogPost]
	Testimonials() Store[Testimonial]
	Inquiries() Store[Inquiry]
	Admins() Store[AdminUser]
}

// SessionStore keeps admin sessions server-side so they can be revoked.
type SessionStore interface {
	Create(ctx context.Context, adminID string, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// ObjectStorage persists uploaded files and returns their public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
}
