package calendar

import (
	"testing"
	"time"

	"mannwallet/internal/models"
)

func TestUpcomingFestivals_FiltersAndSorts(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, ist)
	p := NewStaticProvider()

	upcoming := p.UpcomingFestivals(now)
	if len(upcoming) == 0 {
		t.Fatal("expected upcoming festivals for late 2026")
	}

	if upcoming[0].Name != "Dussehra" {
		t.Errorf("nearest festival = %s, want Dussehra (2026-10-20)", upcoming[0].Name)
	}
	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].Date.Before(upcoming[i-1].Date) {
			t.Fatalf("festivals out of order at %d: %s before %s",
				i, upcoming[i].Name, upcoming[i-1].Name)
		}
	}
	for _, e := range upcoming {
		if !e.Date.After(now) {
			t.Errorf("%s (%s) is not strictly after now", e.Name, e.Date)
		}
	}
}

func TestUpcomingFestivals_SameDayExcluded(t *testing.T) {
	// Diwali 2026 falls on November 8 at IST midnight; by midday the festival
	// has started and no longer counts as upcoming.
	now := time.Date(2026, time.November, 8, 12, 0, 0, 0, ist)
	p := NewStaticProvider()

	for _, e := range p.UpcomingFestivals(now) {
		if e.Name == "Diwali" && e.Date.Year() == 2026 {
			t.Error("same-day festival listed as upcoming")
		}
	}
}

func TestUpcomingFestivals_EmptyPastHorizon(t *testing.T) {
	now := time.Date(2028, time.June, 1, 0, 0, 0, 0, ist)
	p := NewStaticProvider()

	if got := p.UpcomingFestivals(now); len(got) != 0 {
		t.Errorf("expected no festivals past the table horizon, got %d", len(got))
	}
}

func TestStressfulEvents_AddAndList(t *testing.T) {
	now := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	p := NewStaticProvider()

	if got := p.StressfulEvents(now); len(got) != 0 {
		t.Fatalf("fresh provider has %d stressful events, want 0", len(got))
	}

	p.AddStressfulEvent(models.CalendarEvent{Name: "Rent due", Date: now.AddDate(0, 0, 5)})
	p.AddStressfulEvent(models.CalendarEvent{Name: "Exam", Date: now.AddDate(0, 0, 2)})
	p.AddStressfulEvent(models.CalendarEvent{Name: "Done already", Date: now.AddDate(0, 0, -1)})

	got := p.StressfulEvents(now)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2 (past events filtered)", len(got))
	}
	if got[0].Name != "Exam" || got[1].Name != "Rent due" {
		t.Errorf("events not sorted nearest first: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestStaticProviderWithEvents(t *testing.T) {
	now := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	festivals := []models.CalendarEvent{{Name: "Local fair", Date: now.AddDate(0, 0, 3)}}
	p := NewStaticProviderWithEvents(festivals, nil)

	got := p.UpcomingFestivals(now)
	if len(got) != 1 || got[0].Name != "Local fair" {
		t.Errorf("custom festival table not served, got %v", got)
	}
}
