package analytics

import (
	"fmt"

	"mannwallet/internal/models"
)

// InsightConfig holds the thresholds used by the insight generator.
type InsightConfig struct {
	// EmotionalSpendThreshold is the ratio above which the high emotional
	// spending warning fires.
	EmotionalSpendThreshold float64
	// Locale is an opaque presentation token; it never affects which
	// insights fire.
	Locale string
}

// DefaultInsightConfig returns the default insight thresholds.
func DefaultInsightConfig() InsightConfig {
	return InsightConfig{
		EmotionalSpendThreshold: 0.40,
		Locale:                  "en-IN",
	}
}

// GenerateInsights derives ranked insights from an aggregation result. Each
// rule is evaluated independently and produces at most one insight; output
// order matches rule order regardless of which subset fires.
func GenerateInsights(result *models.AggregationResult, cfg InsightConfig) []models.Insight {
	var insights []models.Insight

	if in, ok := highEmotionalSpending(result, cfg); ok {
		insights = append(insights, in)
	}
	if in, ok := dominantEmotionInsight(result); ok {
		insights = append(insights, in)
	}
	if in, ok := triggerPattern(result); ok {
		insights = append(insights, in)
	}

	return insights
}

func highEmotionalSpending(result *models.AggregationResult, cfg InsightConfig) (models.Insight, bool) {
	if result.EmotionalSpendRatio <= cfg.EmotionalSpendThreshold {
		return models.Insight{}, false
	}
	return models.Insight{
		Kind:     models.InsightHighEmotionalSpending,
		Severity: models.SeverityWarning,
		Title:    "High emotional spending",
		Description: fmt.Sprintf(
			"%.0f%% of your spending happened while you were stressed, anxious, sad or angry.",
			result.EmotionalSpendRatio*100),
		Icon: "alert-triangle",
	}, true
}

func dominantEmotionInsight(result *models.AggregationResult) (models.Insight, bool) {
	if !result.HasDominantEmotion() || result.DominantEmotion == models.EmotionCalm {
		return models.Insight{}, false
	}
	return models.Insight{
		Kind:     models.InsightDominantEmotion,
		Severity: models.SeverityInfo,
		Title:    "Dominant spending emotion",
		Description: fmt.Sprintf(
			"Most of your money goes out when you are feeling %s.", result.DominantEmotion),
		Icon: "heart",
	}, true
}

func triggerPattern(result *models.AggregationResult) (models.Insight, bool) {
	if len(result.TriggerCounts) == 0 {
		return models.Insight{}, false
	}

	// Highest count wins; first-seen order breaks ties.
	var top models.TriggerKey
	best := 0
	for _, key := range result.TriggerOrder {
		if count := result.TriggerCounts[key]; count > best {
			top = key
			best = count
		}
	}

	return models.Insight{
		Kind:     models.InsightTriggerPattern,
		Severity: models.SeverityTip,
		Title:    "Trigger pattern",
		Description: fmt.Sprintf(
			"Feeling %s often leads you to spend on %s (%d times recently).",
			top.Emotion, top.Category, best),
		Icon: "repeat",
	}, true
}
