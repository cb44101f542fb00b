// Package calendar provides festival and stressful-event lookups for the
// predictive alert rules.
package calendar

import (
	"sort"
	"sync"
	"time"

	"mannwallet/internal/models"
)

// Provider supplies calendar context to the alert rule engine. Both methods
// operate on already-materialized in-memory data; there is no I/O.
type Provider interface {
	// UpcomingFestivals returns festivals with a date strictly after now,
	// nearest first.
	UpcomingFestivals(now time.Time) []models.CalendarEvent
	// StressfulEvents returns known stressful events with a date strictly
	// after now, nearest first.
	StressfulEvents(now time.Time) []models.CalendarEvent
}

// StaticProvider serves a fixed festival table plus user-registered
// stressful events.
type StaticProvider struct {
	mu        sync.RWMutex
	festivals []models.CalendarEvent
	stressful []models.CalendarEvent
}

// NewStaticProvider creates a provider preloaded with the Indian festival
// calendar.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{festivals: indianFestivals()}
}

// NewStaticProviderWithEvents creates a provider with explicit festival and
// stressful event tables. Used by tests and by callers with their own data.
func NewStaticProviderWithEvents(festivals, stressful []models.CalendarEvent) *StaticProvider {
	return &StaticProvider{festivals: festivals, stressful: stressful}
}

// AddStressfulEvent registers a user-reported stressful event (exam, rent
// due date, medical appointment).
func (p *StaticProvider) AddStressfulEvent(event models.CalendarEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stressful = append(p.stressful, event)
}

// UpcomingFestivals implements Provider.
func (p *StaticProvider) UpcomingFestivals(now time.Time) []models.CalendarEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return upcoming(p.festivals, now)
}

// StressfulEvents implements Provider.
func (p *StaticProvider) StressfulEvents(now time.Time) []models.CalendarEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return upcoming(p.stressful, now)
}

func upcoming(events []models.CalendarEvent, now time.Time) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.Date.After(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
