package app

import (
	"strings"

	"elhamas/internal/domain"
)

// Conventional package types. Any other non-blank value is accepted as custom.
const (
	PackageTypeUmrah    = "umrah"
	PackageTypeHajj     = "hajj"
	PackageTypeCombined = "combined"
	PackageTypeCustom   = "custom"
)

// WizardSteps are the package form steps in display order.
var WizardSteps = []string{"basics", "pricing", "details", "media"}

// ValidateStep checks the fields owned by step and returns "" or the first
// error message. An unknown step is an error.
func ValidateStep(step string, in *domain.PackageInput) string {
	if err := validateStep(step, in); err != nil {
		return err.Error()
	}
	return ""
}

// ValidateAll runs every step in order and stops at the first failure.
func ValidateAll(in *domain.PackageInput) string {
	for _, step := range WizardSteps {
		if msg := ValidateStep(step, in); msg != "" {
			return msg
		}
	}
	return ""
}

func validateStep(step string, in *domain.PackageInput) error {
	switch step {
	case "basics":
		return validateFields(in, "TitleEN", "TitleAR", "PackageType", "LocationEN", "LocationAR")
	case "pricing":
		return validateFields(in, "DurationDays", "Price", "Currency")
	case "details":
		return validateItinerary(in.Itinerary)
	case "media":
		if err := validateFields(in, "ImageURL"); err != nil {
			return err
		}
		if in.Images != nil {
			for _, img := range *in.Images {
				if len(img) > 1024 {
					return domain.Invalid("images", "images must be at most 1024 characters each")
				}
			}
		}
		return nil
	}
	return domain.Invalid("step", "unknown step %q", step)
}

// validateItinerary requires positive, unique day numbers and an English title.
func validateItinerary(days *[]domain.ItineraryDay) error {
	if days == nil {
		return nil
	}
	seen := make(map[int]bool, len(*days))
	for _, d := range *days {
		if d.Day <= 0 {
			return domain.Invalid("itinerary", "itinerary day must be a positive number")
		}
		if seen[d.Day] {
			return domain.Invalid("itinerary", "itinerary day %d appears more than once", d.Day)
		}
		seen[d.Day] = true
		if strings.TrimSpace(d.TitleEN) == "" {
			return domain.Invalid("itinerary", "itinerary day %d needs an English title", d.Day)
		}
	}
	return nil
}
