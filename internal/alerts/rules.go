// Package alerts evaluates predictive spending rules and manages the
// session-scoped alert lifecycle.
package alerts

import (
	"fmt"
	"math"
	"time"

	"mannwallet/internal/analytics"
	"mannwallet/internal/models"
	"mannwallet/pkg/utils"
)

// Rule names double as alert IDs so dismissals stay stable across passes.
const (
	RuleEmotionalPattern    = "emotional_pattern"
	RuleFestivalPreparation = "festival_preparation"
	RuleStressPrediction    = "stress_prediction"
	RuleWeekendSpending     = "weekend_spending"
	RuleFamilyPressure      = "family_pressure"
)

// RuleInput carries the shared inputs every rule sees on one evaluation pass.
type RuleInput struct {
	// Records is the full record set; rules apply their own recency filters.
	Records []models.ExpenseRecord
	// Recent is the subset of Records from the last 7 days.
	Recent []models.ExpenseRecord
	// Aggregation is computed over Recent.
	Aggregation *models.AggregationResult
	// Festivals and Stressful come from the calendar provider, nearest first.
	Festivals []models.CalendarEvent
	Stressful []models.CalendarEvent

	Now       time.Time
	Lookahead int // days, for stress_prediction
}

// Rule pairs a name with an independent predicate-and-constructor. A rule
// either returns an alert or reports that it did not fire; one rule firing
// never affects another.
type Rule struct {
	Name     string
	Evaluate func(in RuleInput) (models.Alert, bool)
}

// DefaultRules returns the rule battery in its fixed evaluation order. New
// rules are appended here; the order is part of the output contract.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleEmotionalPattern, Evaluate: emotionalPattern},
		{Name: RuleFestivalPreparation, Evaluate: festivalPreparation},
		{Name: RuleStressPrediction, Evaluate: stressPrediction},
		{Name: RuleWeekendSpending, Evaluate: weekendSpending},
		{Name: RuleFamilyPressure, Evaluate: familyPressure},
	}
}

// emotionalPattern fires on 3 or more negative-emotion records in the last 7 days.
func emotionalPattern(in RuleInput) (models.Alert, bool) {
	count := 0
	for _, r := range in.Recent {
		if r.Emotion.IsNegative() {
			count++
		}
	}
	if count < 3 {
		return models.Alert{}, false
	}
	return models.Alert{
		ID:       RuleEmotionalPattern,
		Kind:     RuleEmotionalPattern,
		Priority: models.PriorityHigh,
		Title:    "Emotional spending pattern",
		Description: fmt.Sprintf(
			"You logged %d expenses this week while feeling stressed, anxious, sad or angry.", count),
		Suggestion: "Take a short breathing break before your next purchase.",
		ActionType: models.ActionBreathing,
	}, true
}

// festivalPreparation fires when the nearest upcoming festival, among at most
// the two nearest, is 1 to 7 calendar days ahead.
func festivalPreparation(in RuleInput) (models.Alert, bool) {
	candidates := in.Festivals
	if len(candidates) > 2 {
		candidates = candidates[:2]
	}
	if len(candidates) == 0 {
		return models.Alert{}, false
	}

	nearest := candidates[0]
	for _, e := range candidates[1:] {
		if e.Date.Before(nearest.Date) {
			nearest = e
		}
	}

	days := daysBetween(in.Now, nearest.Date)
	if days < 1 || days > 7 {
		return models.Alert{}, false
	}
	return models.Alert{
		ID:       RuleFestivalPreparation,
		Kind:     RuleFestivalPreparation,
		Priority: models.PriorityMedium,
		Title:    fmt.Sprintf("%s is coming up", nearest.Name),
		Description: fmt.Sprintf(
			"%s is %d day(s) away. Festival weeks are when budgets slip the most.", nearest.Name, days),
		Suggestion: "Set a festival budget now, before the shopping starts.",
		ActionType: models.ActionBudget,
	}, true
}

// stressPrediction fires when any stressful calendar event falls inside the
// lookahead horizon.
func stressPrediction(in RuleInput) (models.Alert, bool) {
	for _, e := range in.Stressful {
		days := daysBetween(in.Now, e.Date)
		if days >= 0 && days <= in.Lookahead {
			return models.Alert{
				ID:       RuleStressPrediction,
				Kind:     RuleStressPrediction,
				Priority: models.PriorityMedium,
				Title:    "Stressful days ahead",
				Description: fmt.Sprintf(
					"%s is coming up in %d day(s). Stress often shows up in spending first.", e.Name, days),
				Suggestion: "Plan your week so money decisions do not pile onto stressful days.",
				ActionType: models.ActionStressManagement,
			}, true
		}
	}
	return models.Alert{}, false
}

// weekendSpending fires on Fridays and Saturdays when at least one
// weekend-dated record exists in the last 30 days. The description carries
// the mean weekend amount rounded to whole rupees.
func weekendSpending(in RuleInput) (models.Alert, bool) {
	wd := in.Now.Weekday()
	if wd != time.Friday && wd != time.Saturday {
		return models.Alert{}, false
	}

	var total int64
	count := 0
	for _, r := range in.Records {
		if !analytics.WithinDays(r.Timestamp, in.Now, 30) {
			continue
		}
		if d := r.Timestamp.Weekday(); d == time.Saturday || d == time.Sunday {
			total += r.Amount
			count++
		}
	}
	if count == 0 {
		return models.Alert{}, false
	}

	mean := int64(math.Round(float64(total) / float64(count)))
	return models.Alert{
		ID:       RuleWeekendSpending,
		Kind:     RuleWeekendSpending,
		Priority: models.PriorityLow,
		Title:    "Weekend spending ahead",
		Description: fmt.Sprintf(
			"Your weekend expenses have averaged %s over the last month.",
			utils.FormatIndianCurrency(float64(mean))),
		Suggestion: "Decide a weekend limit before Saturday morning.",
		ActionType: models.ActionSetLimit,
	}, true
}

// familyPressure fires on 2 or more stressed family expenses in the last 7 days.
func familyPressure(in RuleInput) (models.Alert, bool) {
	count := 0
	for _, r := range in.Recent {
		if r.Category == models.CategoryFamily && r.Emotion == models.EmotionStressed {
			count++
		}
	}
	if count < 2 {
		return models.Alert{}, false
	}
	return models.Alert{
		ID:       RuleFamilyPressure,
		Kind:     RuleFamilyPressure,
		Priority: models.PriorityHigh,
		Title:    "Family spending pressure",
		Description: fmt.Sprintf(
			"%d family expenses this week were logged while you felt stressed.", count),
		Suggestion: "An open conversation about money expectations can ease this.",
		ActionType: models.ActionFamilyDiscussion,
	}, true
}

// daysBetween returns the whole calendar days from now to date, using the
// date's location so festival dates line up with local midnights.
func daysBetween(now, date time.Time) int {
	loc := date.Location()
	a := now.In(loc)
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)
	end := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return int(end.Sub(start).Hours() / 24)
}
