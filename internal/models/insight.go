package models

// InsightKind represents the type of a derived insight.
type InsightKind string

const (
	InsightHighEmotionalSpending InsightKind = "high_emotional_spending"
	InsightDominantEmotion       InsightKind = "dominant_emotion"
	InsightTriggerPattern        InsightKind = "trigger_pattern"
)

// InsightSeverity represents how strongly an insight should be surfaced.
type InsightSeverity string

const (
	SeverityWarning InsightSeverity = "warning"
	SeverityInfo    InsightSeverity = "info"
	SeverityTip     InsightSeverity = "tip"
)

// Insight is a human-readable observation derived from aggregated statistics.
// Insights are stateless and regenerated on every analysis pass.
type Insight struct {
	Kind        InsightKind     `json:"kind"`
	Severity    InsightSeverity `json:"severity"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
}
