package app_test

import (
	"testing"

	"elhamas/internal/app"
	"elhamas/internal/domain"
)

func TestValidateStep(t *testing.T) {
	in := &domain.PackageInput{}
	if msg := app.ValidateStep("basics", in); msg != "titleEn is required" {
		t.Fatalf("basics: %q", msg)
	}
	in.TitleEN, in.TitleAR = ptr("Umrah"), ptr("عمرة")
	if msg := app.ValidateStep("basics", in); msg != "" {
		t.Fatalf("basics ok: %q", msg)
	}
	// pricing is independent of basics
	if msg := app.ValidateStep("pricing", in); msg != "durationDays is required" {
		t.Fatalf("pricing: %q", msg)
	}
	in.DurationDays, in.Price, in.Currency = ptr(7), ptr(3200.0), ptr("USDX")
	if msg := app.ValidateStep("pricing", in); msg != "currency must be exactly 3 characters" {
		t.Fatalf("currency: %q", msg)
	}
	in.Currency = ptr("USD")

	in.Itinerary = &[]domain.ItineraryDay{{Day: 1, TitleEN: "Arrive"}, {Day: 1, TitleEN: "Again"}}
	if msg := app.ValidateStep("details", in); msg == "" {
		t.Fatalf("duplicate day accepted")
	}
	in.Itinerary = &[]domain.ItineraryDay{{Day: 2, TitleEN: "Tawaf"}, {Day: 1, TitleEN: "Arrive"}}
	if msg := app.ValidateAll(in); msg != "" {
		t.Fatalf("all: %q", msg)
	}
	if msg := app.ValidateStep("payment", in); msg == "" {
		t.Fatalf("unknown step accepted")
	}
}

func TestValidateAll_StopsAtFirstStep(t *testing.T) {
	in := &domain.PackageInput{Itinerary: &[]domain.ItineraryDay{{Day: 0}}}
	if msg := app.ValidateAll(in); msg != "titleEn is required" {
		t.Fatalf("first failing step should win: %q", msg)
	}
}
