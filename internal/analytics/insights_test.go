package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"mannwallet/internal/models"
)

func TestGenerateInsights_HighEmotionalSpending(t *testing.T) {
	now := time.Now()
	// 5500 of 10000 spent under stress: ratio 0.55, above the 0.40 default.
	records := []models.ExpenseRecord{
		record("e1", 5500, models.CategoryShopping, models.EmotionStressed, now),
		record("e2", 4500, models.CategoryFood, models.EmotionHappy, now),
	}

	agg := NewAggregator(zerolog.Nop()).Aggregate(records)
	insights := GenerateInsights(agg, DefaultInsightConfig())

	var warnings int
	for _, in := range insights {
		if in.Kind == models.InsightHighEmotionalSpending {
			warnings++
			if in.Severity != models.SeverityWarning {
				t.Errorf("severity = %s, want warning", in.Severity)
			}
			if !strings.Contains(in.Description, "55%") {
				t.Errorf("description %q should carry the rounded ratio", in.Description)
			}
		}
	}
	if warnings != 1 {
		t.Errorf("high emotional spending fired %d times, want exactly 1", warnings)
	}
}

func TestGenerateInsights_ThresholdIsExclusive(t *testing.T) {
	now := time.Now()
	// Exactly 40% emotional: the warning must not fire at the boundary.
	records := []models.ExpenseRecord{
		record("e1", 4000, models.CategoryShopping, models.EmotionAnxious, now),
		record("e2", 6000, models.CategoryFood, models.EmotionHappy, now),
	}

	agg := NewAggregator(zerolog.Nop()).Aggregate(records)
	insights := GenerateInsights(agg, DefaultInsightConfig())

	for _, in := range insights {
		if in.Kind == models.InsightHighEmotionalSpending {
			t.Errorf("warning fired at ratio %f, threshold must be strict", agg.EmotionalSpendRatio)
		}
	}
}

func TestGenerateInsights_CalmSuppressed(t *testing.T) {
	now := time.Now()
	records := []models.ExpenseRecord{
		record("e1", 9000, models.CategoryUtilities, models.EmotionCalm, now),
		record("e2", 1000, models.CategoryFood, models.EmotionHappy, now),
	}

	agg := NewAggregator(zerolog.Nop()).Aggregate(records)
	insights := GenerateInsights(agg, DefaultInsightConfig())

	for _, in := range insights {
		if in.Kind == models.InsightDominantEmotion {
			t.Error("dominant emotion insight must stay silent when calm dominates")
		}
	}
}

func TestGenerateInsights_TriggerTieBreak(t *testing.T) {
	now := time.Now()
	// Two trigger pairs tie at 2 occurrences; the first-seen pair wins.
	records := []models.ExpenseRecord{
		record("e1", 100, models.CategoryShopping, models.EmotionStressed, now),
		record("e2", 100, models.CategoryFood, models.EmotionSad, now),
		record("e3", 100, models.CategoryShopping, models.EmotionStressed, now),
		record("e4", 100, models.CategoryFood, models.EmotionSad, now),
	}

	agg := NewAggregator(zerolog.Nop()).Aggregate(records)
	insights := GenerateInsights(agg, DefaultInsightConfig())

	var found bool
	for _, in := range insights {
		if in.Kind == models.InsightTriggerPattern {
			found = true
			if !strings.Contains(in.Description, "stressed") || !strings.Contains(in.Description, "shopping") {
				t.Errorf("tie should resolve to first-seen pair, got %q", in.Description)
			}
		}
	}
	if !found {
		t.Fatal("expected a trigger pattern insight")
	}
}

func TestGenerateInsights_OutputOrderIsFixed(t *testing.T) {
	now := time.Now()
	records := []models.ExpenseRecord{
		record("e1", 8000, models.CategoryShopping, models.EmotionStressed, now),
		record("e2", 2000, models.CategoryFood, models.EmotionHappy, now),
	}

	agg := NewAggregator(zerolog.Nop()).Aggregate(records)
	insights := GenerateInsights(agg, DefaultInsightConfig())

	want := []models.InsightKind{
		models.InsightHighEmotionalSpending,
		models.InsightDominantEmotion,
		models.InsightTriggerPattern,
	}
	if len(insights) != len(want) {
		t.Fatalf("got %d insights, want %d", len(insights), len(want))
	}
	for i, kind := range want {
		if insights[i].Kind != kind {
			t.Errorf("insights[%d].Kind = %s, want %s", i, insights[i].Kind, kind)
		}
	}
}

func TestGenerateInsights_EmptyAggregation(t *testing.T) {
	agg := NewAggregator(zerolog.Nop()).Aggregate(nil)
	if insights := GenerateInsights(agg, DefaultInsightConfig()); len(insights) != 0 {
		t.Errorf("expected no insights for empty data, got %d", len(insights))
	}
}
