package models

import "time"

// AlertPriority represents the urgency of a predictive alert.
type AlertPriority string

const (
	PriorityHigh   AlertPriority = "high"
	PriorityMedium AlertPriority = "medium"
	PriorityLow    AlertPriority = "low"
)

// ActionType is the follow-up action token attached to an alert. The engine
// never interprets these; it only forwards the token chosen by the firing rule.
type ActionType string

const (
	ActionBreathing        ActionType = "breathing"
	ActionBudget           ActionType = "budget"
	ActionStressManagement ActionType = "stress_management"
	ActionSetLimit         ActionType = "set_limit"
	ActionFamilyDiscussion ActionType = "family_discussion"
)

// Alert is a proactively generated, actionable notice produced by a
// pattern-detection rule. The ID equals the rule name, so re-evaluating the
// same rule yields the same ID and dismissals stay stable across passes.
type Alert struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Priority    AlertPriority `json:"priority"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Suggestion  string        `json:"suggestion"`
	ActionType  ActionType    `json:"action_type"`
	Dismissed   bool          `json:"dismissed"`
}

// CalendarEvent represents a festival or a stressful event on the calendar.
type CalendarEvent struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
