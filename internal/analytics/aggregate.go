package analytics

import (
	"github.com/rs/zerolog"

	"mannwallet/internal/models"
)

// Aggregator computes an AggregationResult over a filtered record set.
type Aggregator struct {
	logger zerolog.Logger
}

// NewAggregator creates an aggregator that reports skipped records to logger.
func NewAggregator(logger zerolog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate runs a single accumulation pass over records. Malformed records
// (negative amount, unknown category or emotion) are skipped and logged; one
// bad record never aborts the pass. Running Aggregate twice over the same
// records yields identical results.
func (a *Aggregator) Aggregate(records []models.ExpenseRecord) *models.AggregationResult {
	result := models.NewAggregationResult()

	for _, r := range records {
		if err := r.Validate(); err != nil {
			result.SkippedCount++
			a.logger.Warn().
				Str("record_id", r.ID).
				Err(err).
				Msg("Skipping malformed expense record")
			continue
		}

		if _, seen := result.EmotionTotals[r.Emotion]; !seen {
			result.EmotionOrder = append(result.EmotionOrder, r.Emotion)
		}
		result.EmotionTotals[r.Emotion] += r.Amount

		byEmotion := result.CategoryEmotionTotals[r.Category]
		if byEmotion == nil {
			byEmotion = make(map[models.Emotion]int64)
			result.CategoryEmotionTotals[r.Category] = byEmotion
		}
		byEmotion[r.Emotion] += r.Amount

		result.DayOfWeekTotals[r.Timestamp.Weekday()] += r.Amount

		result.TotalSpend += r.Amount
		if r.Emotion.IsNegative() {
			result.EmotionalSpend += r.Amount

			key := models.TriggerKey{Emotion: r.Emotion, Category: r.Category}
			if _, seen := result.TriggerCounts[key]; !seen {
				result.TriggerOrder = append(result.TriggerOrder, key)
			}
			result.TriggerCounts[key]++
		}

		result.RecordCount++
	}

	if result.TotalSpend > 0 {
		result.EmotionalSpendRatio = float64(result.EmotionalSpend) / float64(result.TotalSpend)
	}
	result.DominantEmotion = dominantEmotion(result)

	return result
}

// dominantEmotion scans totals in first-seen record order and returns the
// first emotion whose total is strictly greater than all totals seen so far.
// For zero records it returns the empty emotion.
func dominantEmotion(result *models.AggregationResult) models.Emotion {
	var dominant models.Emotion
	var best int64 = -1
	for _, e := range result.EmotionOrder {
		if total := result.EmotionTotals[e]; total > best {
			dominant = e
			best = total
		}
	}
	return dominant
}
