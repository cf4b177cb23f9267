package i18n_test

import (
	"testing"

	"elhamas/internal/domain"
	"elhamas/internal/i18n"
)

func ptr(s string) *string { return &s }

func TestResolve_Struct(t *testing.T) {
	pkg := &domain.TourPackage{TitleEN: "Umrah Plus", TitleAR: "عمرة بلس", DescriptionEN: ptr("Five nights")}

	if got := i18n.Resolve(pkg, "title", domain.LocaleAR); got != "عمرة بلس" {
		t.Fatalf("ar title: %q", got)
	}
	if got := i18n.Resolve(pkg, "title", domain.LocaleEN); got != "Umrah Plus" {
		t.Fatalf("en title: %q", got)
	}
	// ar description is nil: falls back to english
	if got := i18n.Resolve(pkg, "description", domain.LocaleAR); got != "Five nights" {
		t.Fatalf("fallback: %q", got)
	}
	if got := i18n.Resolve(pkg, "nonexistent", domain.LocaleAR); got != "" {
		t.Fatalf("missing field: %q", got)
	}
}

func TestResolve_Map(t *testing.T) {
	row := map[string]any{"name_en": "Makkah", "name_ar": ""}
	if got := i18n.Resolve(row, "name", domain.LocaleAR); got != "Makkah" {
		t.Fatalf("empty ar falls back: %q", got)
	}
	if got := i18n.Resolve(map[string]string{"name_ar": "مكة"}, "name", domain.LocaleAR); got != "مكة" {
		t.Fatalf("string map: %q", got)
	}
	if got := i18n.Resolve(map[string]any{}, "name", domain.LocaleEN); got != "" {
		t.Fatalf("empty map: %q", got)
	}
}

func TestResolve_NilEntity(t *testing.T) {
	var h *domain.Hotel
	if got := i18n.Resolve(h, "name", domain.LocaleAR); got != "" {
		t.Fatalf("nil entity: %q", got)
	}
	if got := i18n.Resolve(nil, "name", domain.LocaleAR); got != "" {
		t.Fatalf("untyped nil: %q", got)
	}
}

func TestPick(t *testing.T) {
	if got := i18n.Pick("Hotel", "فندق", domain.LocaleAR); got != "فندق" {
		t.Fatalf("ar: %q", got)
	}
	if got := i18n.Pick("Hotel", "", domain.LocaleAR); got != "Hotel" {
		t.Fatalf("blank ar: %q", got)
	}
}
