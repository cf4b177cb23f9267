// Package seed loads bilingual starter content from a YAML file through the
// same admin services the dashboard uses.
package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"elhamas/internal/domain"
)

// File is the seed document. Field names follow the admin JSON inputs;
// locations and categories get a key so hotels and packages can refer to them.
type File struct {
	Admin          *Admin                       `json:"admin"`
	Locations      []Location                   `json:"locations"`
	Categories     []Category                   `json:"categories"`
	Hotels         []Hotel                      `json:"hotels"`
	Packages       []Package                    `json:"packages"`
	DiscoverCard   *domain.DiscoverCardInput    `json:"discoverCard"`
	Events         []domain.EventInput          `json:"events"`
	Transportation []domain.TransportationInput `json:"transportation"`
	Visas          []domain.VisaInput           `json:"visas"`
	BlogPosts      []domain.BlogPostInput       `json:"blogPosts"`
	Testimonials   []domain.TestimonialInput    `json:"testimonials"`
}

type Admin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type Location struct {
	Key string `json:"key"`
	domain.LocationInput
}

type Category struct {
	Key string `json:"key"`
	domain.CategoryInput
}

type Hotel struct {
	Location string `json:"location"`
	domain.HotelInput
	Rooms []domain.RoomInput `json:"rooms"`
}

type Package struct {
	Location string `json:"location"`
	Category string `json:"category"`
	domain.PackageInput
}

// ReadFile parses and checks the seed file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML (or JSON) seed document and checks its references.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := f.Check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Check verifies that keys are unique and every reference resolves.
func (f *File) Check() error {
	locs, err := keySet("location", len(f.Locations), func(i int) string { return f.Locations[i].Key })
	if err != nil {
		return err
	}
	cats, err := keySet("category", len(f.Categories), func(i int) string { return f.Categories[i].Key })
	if err != nil {
		return err
	}
	var errs []error
	for i, h := range f.Hotels {
		if h.Location != "" && !locs[h.Location] {
			errs = append(errs, fmt.Errorf("hotels[%d]: unknown location %q", i, h.Location))
		}
	}
	for i, p := range f.Packages {
		if p.Location != "" && !locs[p.Location] {
			errs = append(errs, fmt.Errorf("packages[%d]: unknown location %q", i, p.Location))
		}
		if p.Category != "" && !cats[p.Category] {
			errs = append(errs, fmt.Errorf("packages[%d]: unknown category %q", i, p.Category))
		}
	}
	return errors.Join(errs...)
}

func keySet(kind string, n int, key func(int) string) (map[string]bool, error) {
	out := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if k == "" {
			continue
		}
		if out[k] {
			return nil, fmt.Errorf("duplicate %s key %q", kind, k)
		}
		out[k] = true
	}
	return out, nil
}
