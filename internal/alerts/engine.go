package alerts

import (
	"time"

	"github.com/rs/zerolog"

	"mannwallet/internal/analytics"
	"mannwallet/internal/calendar"
	"mannwallet/internal/models"
)

// recentWindowDays is the recency window the rule battery evaluates against,
// independent of whatever window the caller chose for analytics.
const recentWindowDays = 7

// Config holds rule engine tunables.
type Config struct {
	// LookaheadDays is the horizon for stress_prediction.
	LookaheadDays int
}

// DefaultConfig returns the default rule engine configuration.
func DefaultConfig() Config {
	return Config{LookaheadDays: 14}
}

// Engine evaluates the fixed rule battery against recent activity and
// calendar context.
type Engine struct {
	rules    []Rule
	provider calendar.Provider
	cfg      Config
	logger   zerolog.Logger
}

// NewEngine creates a rule engine backed by the given calendar provider.
func NewEngine(provider calendar.Provider, cfg Config, logger zerolog.Logger) *Engine {
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = DefaultConfig().LookaheadDays
	}
	return &Engine{
		rules:    DefaultRules(),
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// Evaluate runs every rule against the full record set and returns the alerts
// that fired, in rule order. Each rule is isolated: a panicking rule (for
// example a misbehaving calendar provider) is logged and skipped, never
// suppressing the others.
func (e *Engine) Evaluate(records []models.ExpenseRecord, now time.Time) []models.Alert {
	recent := make([]models.ExpenseRecord, 0, len(records))
	for _, r := range records {
		if analytics.WithinDays(r.Timestamp, now, recentWindowDays) {
			recent = append(recent, r)
		}
	}

	agg := analytics.NewAggregator(e.logger).Aggregate(recent)

	in := RuleInput{
		Records:     records,
		Recent:      recent,
		Aggregation: agg,
		Now:         now,
		Lookahead:   e.cfg.LookaheadDays,
	}
	e.loadCalendar(&in, now)

	var fired []models.Alert
	for _, rule := range e.rules {
		if alert, ok := e.evaluateRule(rule, in); ok {
			fired = append(fired, alert)
		}
	}
	return fired
}

func (e *Engine) evaluateRule(rule Rule, in RuleInput) (alert models.Alert, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("rule", rule.Name).
				Interface("panic", r).
				Msg("Alert rule panicked, skipping for this pass")
			ok = false
		}
	}()
	return rule.Evaluate(in)
}

// loadCalendar fetches calendar context, tolerating a panicking provider so
// the record-only rules still run.
func (e *Engine) loadCalendar(in *RuleInput, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Interface("panic", r).
				Msg("Calendar provider panicked, evaluating rules without calendar context")
		}
	}()
	in.Festivals = e.provider.UpcomingFestivals(now)
	in.Stressful = e.provider.StressfulEvents(now)
}
