package mysql

import (
	"context"
	"errors"
	"fmt"

	drv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elhamas/internal/domain"
)

// Table is a domain.Store over one GORM model.
type Table[T any] struct {
	db      *gorm.DB
	order   string
	preload func(*gorm.DB) *gorm.DB
}

func newTable[T any](db *gorm.DB, order string, preload func(*gorm.DB) *gorm.DB) *Table[T] {
	return &Table[T]{db: db, order: order, preload: preload}
}

func (t *Table[T]) query(ctx context.Context) *gorm.DB {
	q := t.db.WithContext(ctx).Model(new(T))
	if t.preload != nil {
		q = t.preload(q)
	}
	return q
}

func (t *Table[T]) filtered(ctx context.Context, f domain.Filter) *gorm.DB {
	q := t.query(ctx)
	if len(f.Where) > 0 {
		q = q.Where(f.Where)
	}
	for col, v := range f.From {
		q = q.Where(clause.Gte{Column: clause.Column{Name: col}, Value: v})
	}
	order := f.Order
	if order == "" {
		order = t.order
	}
	if order != "" {
		q = q.Order(order)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q
}

func (t *Table[T]) Find(ctx context.Context, f domain.Filter) ([]T, error) {
	rows := []T{}
	if err := t.filtered(ctx, f).Find(&rows).Error; err != nil {
		return nil, mapErr(err)
	}
	return rows, nil
}

func (t *Table[T]) FindOne(ctx context.Context, f domain.Filter) (*T, error) {
	f.Limit = 1
	rows, err := t.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

func (t *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	return t.FindOne(ctx, domain.Filter{Where: map[string]any{"id": id}})
}

// Create inserts the row only; related rows are written through their own table.
func (t *Table[T]) Create(ctx context.Context, row *T) error {
	return mapErr(t.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error)
}

func (t *Table[T]) Save(ctx context.Context, row *T) error {
	return mapErr(t.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error)
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapErr translates driver errors into domain errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var me *drv.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062:
			return fmt.Errorf("%w: %s", domain.ErrConflict, me.Message)
		case 1451:
			return fmt.Errorf("%w: %s", domain.ErrInUse, me.Message)
		case 1452:
			return domain.Invalid("reference", "referenced row does not exist")
		case 3819:
			return domain.Invalid("check", "value out of range: %s", me.Message)
		}
	}
	return err
}

/********** repository **********/

// Repo exposes one Table per entity and implements domain.Repository.
type Repo struct {
	locations      *Table[domain.Location]
	categories     *Table[domain.PackageCategory]
	hotels         *Table[domain.Hotel]
	rooms          *Table[domain.Room]
	packages       *Table[domain.TourPackage]
	discoverCards  *Table[domain.PackageDiscoverCard]
	events         *Table[domain.Event]
	transportation *Table[domain.Transportation]
	visas          *Table[domain.Visa]
	posts          *Table[domain.BlogPost]
	testimonials   *Table[domain.Testimonial]
	inquiries      *Table[domain.Inquiry]
	admins         *Table[domain.AdminUser]
}

const (
	bySortOrder = "sort_order ASC, created_at DESC"
	byNewest    = "created_at DESC"
)

func New(db *gorm.DB) *Repo {
	hotelRelations := func(q *gorm.DB) *gorm.DB {
		return q.Preload("Location").Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("price_per_night ASC")
		})
	}
	packageRelations := func(q *gorm.DB) *gorm.DB {
		return q.Preload("Category").Preload("Location")
	}
	return &Repo{
		locations:      newTable[domain.Location](db, bySortOrder, nil),
		categories:     newTable[domain.PackageCategory](db, bySortOrder, nil),
		hotels:         newTable[domain.Hotel](db, byNewest, hotelRelations),
		rooms:          newTable[domain.Room](db, "price_per_night ASC", nil),
		packages:       newTable[domain.TourPackage](db, byNewest, packageRelations),
		discoverCards:  newTable[domain.PackageDiscoverCard](db, byNewest, nil),
		events:         newTable[domain.Event](db, "start_date ASC", nil),
		transportation: newTable[domain.Transportation](db, byNewest, nil),
		visas:          newTable[domain.Visa](db, byNewest, nil),
		posts:          newTable[domain.BlogPost](db, byNewest, nil),
		testimonials:   newTable[domain.Testimonial](db, byNewest, nil),
		inquiries:      newTable[domain.Inquiry](db, byNewest, nil),
		admins:         newTable[domain.AdminUser](db, byNewest, nil),
	}
}

func (r *Repo) Locations() domain.Store[domain.Location]                { return r.locations }
func (r *Repo) Categories() domain.Store[domain.PackageCategory]        { return r.categories }
func (r *Repo) Hotels() domain.Store[domain.Hotel]                      { return r.hotels }
func (r *Repo) Rooms() domain.Store[domain.Room]                        { return r.rooms }
func (r *Repo) Packages() domain.Store[domain.TourPackage]              { return r.packages }
func (r *Repo) DiscoverCards() domain.Store[domain.PackageDiscoverCard] { return r.discoverCards }
func (r *Repo) Events() domain.Store[domain.Event]                      { return r.events }
func (r *Repo) Transportation() domain.Store[domain.Transportation]     { return r.transportation }
func (r *Repo) Visas() domain.Store[domain.Visa]                        { return r.visas }
func (r *Repo) BlogPosts() domain.Store[domain.BlogPost]                { return r.posts }
func (r *Repo) Testimonials() domain.Store[domain.Testimonial]          { return r.testimonials }
func (r *Repo) Inquiries() domain.Store[domain.Inquiry]                 { return r.inquiries }
func (r *Repo) Admins() domain.Store[domain.AdminUser]                  { return r.admins }

var _ domain.Repository = (*Repo)(nil)
