package models

import "time"

// TriggerKey identifies a (negative emotion, category) spending pattern.
type TriggerKey struct {
	Emotion  Emotion
	Category Category
}

// TriggerCount is the presentation form of one trigger pattern entry.
type TriggerCount struct {
	Emotion  Emotion  `json:"emotion"`
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// AggregationResult holds the grouped totals computed over one analysis pass.
// It is recomputed from scratch whenever the input record set or the time
// window changes; nothing in it outlives the pass.
type AggregationResult struct {
	EmotionTotals         map[Emotion]int64              `json:"emotion_totals"`
	CategoryEmotionTotals map[Category]map[Emotion]int64 `json:"category_emotion_totals"`
	DayOfWeekTotals       map[time.Weekday]int64         `json:"day_of_week_totals"`
	TriggerCounts         map[TriggerKey]int             `json:"-"`

	// EmotionOrder and TriggerOrder record first-seen insertion order, since
	// Go map iteration is randomized and tie-breaks must be stable.
	EmotionOrder []Emotion    `json:"-"`
	TriggerOrder []TriggerKey `json:"-"`

	TotalSpend          int64   `json:"total_spend"`
	EmotionalSpend      int64   `json:"emotional_spend"`
	EmotionalSpendRatio float64 `json:"emotional_spend_ratio"`

	// DominantEmotion is empty when no records were aggregated.
	DominantEmotion Emotion `json:"dominant_emotion,omitempty"`
	RecordCount     int     `json:"record_count"`
	SkippedCount    int     `json:"skipped_count,omitempty"`
}

// NewAggregationResult returns an empty result with all maps allocated.
func NewAggregationResult() *AggregationResult {
	return &AggregationResult{
		EmotionTotals:         make(map[Emotion]int64),
		CategoryEmotionTotals: make(map[Category]map[Emotion]int64),
		DayOfWeekTotals:       make(map[time.Weekday]int64),
		TriggerCounts:         make(map[TriggerKey]int),
	}
}

// HasDominantEmotion reports whether at least one record was aggregated.
func (a *AggregationResult) HasDominantEmotion() bool {
	return a.DominantEmotion != ""
}

// Triggers returns the trigger pattern counts in first-seen order, in a form
// presentation layers can render or serialize directly.
func (a *AggregationResult) Triggers() []TriggerCount {
	out := make([]TriggerCount, 0, len(a.TriggerOrder))
	for _, key := range a.TriggerOrder {
		out = append(out, TriggerCount{
			Emotion:  key.Emotion,
			Category: key.Category,
			Count:    a.TriggerCounts[key],
		})
	}
	return out
}
