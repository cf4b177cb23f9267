//go:build integration || !unit

package mysql_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"elhamas/internal/app"
	"elhamas/internal/domain"
	mysqlrepo "elhamas/internal/storage/mysql"
)

// ---------- small helpers ----------
func pstr(s string) *string     { return &s }
func pint(i int) *int           { return &i }
func pfloat(f float64) *float64 { return &f }

// startMySQL runs an isolated MySQL and returns a migrated GORM handle.
func startMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=elhamas",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/elhamas", resource.GetPort("3306/tcp"))

	var db *gorm.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = mysqlrepo.Open(dsn)
		if e != nil {
			return e
		}
		return mysqlrepo.Ping(context.Background(), db)
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := mysqlrepo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// twice: the schema must be re-runnable
	if err := mysqlrepo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	return db
}

// ---------- the test ----------
func TestRepo_MySQL(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	t.Run("package create then read", func(t *testing.T) {
		admin := app.NewAdmin(repo)
		p, err := admin.Packages.Create(ctx, &domain.PackageInput{
			TitleEN:      pstr("Test"),
			TitleAR:      pstr("اختبار"),
			DurationDays: pint(5),
			Price:        pfloat(1000),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		v := app.NewQueryService(repo).Package(ctx, p.ID)
		if v == nil {
			t.Fatalf("package not found after create")
		}
		if v.DurationDays != 5 || v.Price != 1000 || v.Images == nil || len(v.Images) != 0 || v.TitleAR != "اختبار" {
			t.Fatalf("unexpected view: %+v", v)
		}
	})

	t.Run("category delete keeps package", func(t *testing.T) {
		admin := app.NewAdmin(repo)
		cat, err := admin.Categories.Create(ctx, &domain.CategoryInput{NameEN: pstr("Umrah"), NameAR: pstr("عمرة")})
		if err != nil {
			t.Fatalf("category: %v", err)
		}
		p, err := admin.Packages.Create(ctx, &domain.PackageInput{
			CategoryID: &cat.ID, TitleEN: pstr("Ramadan"), TitleAR: pstr("رمضان"),
			DurationDays: pint(10), Price: pfloat(5000),
		})
		if err != nil {
			t.Fatalf("package: %v", err)
		}
		if err := admin.Categories.Delete(ctx, cat.ID); err != nil {
			t.Fatalf("delete category: %v", err)
		}
		v := app.NewQueryService(repo).Package(ctx, p.ID)
		if v == nil {
			t.Fatal("package removed with its category")
		}
		if v.CategoryID != nil || v.CategoryNameEN != nil {
			t.Fatalf("category still attached: %+v", v)
		}
	})

	t.Run("delete detaches children", func(t *testing.T) {
		loc := &domain.Location{NameEN: "Makkah", NameAR: "مكة", IsActive: true}
		if err := repo.Locations().Create(ctx, loc); err != nil {
			t.Fatalf("location: %v", err)
		}
		h := &domain.Hotel{
			LocationID: &loc.ID, NameEN: "Tower", NameAR: "البرج", StarRating: 5, Currency: "SAR",
			PricePerNight: decimal.NewNullDecimal(decimal.NewFromInt(800)),
			Images:        datatypes.JSONSlice[string]{"a.jpg"}, IsActive: true,
		}
		if err := repo.Hotels().Create(ctx, h); err != nil {
			t.Fatalf("hotel: %v", err)
		}
		room := &domain.Room{HotelID: h.ID, NameEN: "Double", NameAR: "مزدوجة", PricePerNight: decimal.NewFromInt(400), Currency: "SAR", MaxGuests: 2, IsActive: true}
		if err := repo.Rooms().Create(ctx, room); err != nil {
			t.Fatalf("room: %v", err)
		}

		got, err := repo.Hotels().Get(ctx, h.ID)
		if err != nil || got.Location == nil || got.Location.NameEN != "Makkah" || len(got.Rooms) != 1 {
			t.Fatalf("preloads: %+v %v", got, err)
		}

		if err := repo.Locations().Delete(ctx, loc.ID); err != nil {
			t.Fatalf("delete location: %v", err)
		}
		got, err = repo.Hotels().Get(ctx, h.ID)
		if err != nil {
			t.Fatalf("hotel should survive: %v", err)
		}
		if got.LocationID != nil || got.Location != nil {
			t.Fatalf("hotel still references deleted location: %+v", got)
		}

		if err := repo.Hotels().Delete(ctx, h.ID); err != nil {
			t.Fatalf("delete hotel: %v", err)
		}
		if _, err := repo.Rooms().Get(ctx, room.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("room should be removed with hotel: %v", err)
		}
	})

	t.Run("unique slug conflict", func(t *testing.T) {
		start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
		e := &domain.Event{Slug: "iftar", TitleEN: "Iftar", TitleAR: "إفطار", StartDate: start, Currency: "SAR", IsActive: true}
		if err := repo.Events().Create(ctx, e); err != nil {
			t.Fatalf("event: %v", err)
		}
		dup := &domain.Event{Slug: "iftar", TitleEN: "Other", TitleAR: "آخر", StartDate: start, Currency: "SAR"}
		if err := repo.Events().Create(ctx, dup); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("missing rows", func(t *testing.T) {
		if _, err := repo.Visas().Get(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("get: %v", err)
		}
		if err := repo.Visas().Delete(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("delete: %v", err)
		}
	})

	t.Run("inquiry meta round trip", func(t *testing.T) {
		q := &domain.Inquiry{Type: "package", Name: "A", Email: "a@b.co", Locale: "ar", Status: "new",
			Meta: datatypes.JSONMap{"package_id": "p-1", "travelers": float64(2)}}
		if err := repo.Inquiries().Create(ctx, q); err != nil {
			t.Fatalf("inquiry: %v", err)
		}
		got, err := repo.Inquiries().Get(ctx, q.ID)
		if err != nil || got.Meta["package_id"] != "p-1" {
			t.Fatalf("meta: %+v %v", got, err)
		}
	})
}
