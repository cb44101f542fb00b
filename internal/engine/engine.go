// Package engine orchestrates one analysis pass: filter, aggregate, derive
// insights, evaluate alert rules, apply the dismissal set.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"mannwallet/internal/alerts"
	"mannwallet/internal/analytics"
	"mannwallet/internal/calendar"
	"mannwallet/internal/models"
	"mannwallet/internal/store"
)

// Analysis bundles the outputs of one analysis pass for the presentation layer.
type Analysis struct {
	Window      analytics.Window          `json:"window"`
	Aggregation *models.AggregationResult `json:"aggregation"`
	Triggers    []models.TriggerCount     `json:"triggers,omitempty"`
	Insights    []models.Insight          `json:"insights"`
}

// Engine is the emotional-expense analytics engine. It holds no long-lived
// state beyond the session's dismissal set; every pass recomputes everything
// from the expense source. All triggers arrive from a single logical caller,
// so passes never overlap.
type Engine struct {
	expenses   store.ExpenseStore
	aggregator *analytics.Aggregator
	ruleEngine *alerts.Engine
	lifecycle  *alerts.LifecycleManager
	insightCfg analytics.InsightConfig
	logger     zerolog.Logger

	lastAlerts []models.Alert
}

// Options configures a new Engine.
type Options struct {
	Expenses   store.ExpenseStore
	Calendar   calendar.Provider
	InsightCfg analytics.InsightConfig
	AlertCfg   alerts.Config
	Logger     zerolog.Logger
}

// New creates an engine wired to the given expense source and calendar
// provider. The insight threshold is taken as configured — zero is a valid
// setting meaning any emotional spending fires the warning — so only the
// presentation locale is defaulted.
func New(opts Options) *Engine {
	if opts.InsightCfg.Locale == "" {
		opts.InsightCfg.Locale = analytics.DefaultInsightConfig().Locale
	}
	return &Engine{
		expenses:   opts.Expenses,
		aggregator: analytics.NewAggregator(opts.Logger),
		ruleEngine: alerts.NewEngine(opts.Calendar, opts.AlertCfg, opts.Logger),
		lifecycle:  alerts.NewLifecycleManager(),
		insightCfg: opts.InsightCfg,
		logger:     opts.Logger,
	}
}

// Analyze runs filter, aggregation and insight generation over the records in
// the given window. "now" is injected so passes are deterministic.
func (e *Engine) Analyze(ctx context.Context, window analytics.Window, now time.Time) (*Analysis, error) {
	records, err := e.expenses.ListExpenses(ctx, store.ExpenseFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	filtered := analytics.Filter(records, window, now)
	agg := e.aggregator.Aggregate(filtered)
	insights := analytics.GenerateInsights(agg, e.insightCfg)

	e.logger.Debug().
		Str("window", string(window)).
		Int("records", agg.RecordCount).
		Int("skipped", agg.SkippedCount).
		Int("insights", len(insights)).
		Msg("Analysis pass completed")

	return &Analysis{
		Window:      window,
		Aggregation: agg,
		Triggers:    agg.Triggers(),
		Insights:    insights,
	}, nil
}

// EvaluateAlerts runs the predictive rule battery over the full record set
// and returns the alerts still visible after session dismissals.
func (e *Engine) EvaluateAlerts(ctx context.Context, now time.Time) ([]models.Alert, error) {
	records, err := e.expenses.ListExpenses(ctx, store.ExpenseFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	fired := e.ruleEngine.Evaluate(records, now)
	e.lastAlerts = fired

	e.logger.Debug().
		Int("fired", len(fired)).
		Int("dismissed", e.lifecycle.DismissedCount()).
		Msg("Alert evaluation pass completed")

	return e.lifecycle.VisibleAlerts(fired), nil
}

// Regenerate triggers a fresh rule pass. Previously dismissed rule IDs stay
// hidden; Regenerate never clears the dismissal set.
func (e *Engine) Regenerate(ctx context.Context, now time.Time) ([]models.Alert, error) {
	return e.EvaluateAlerts(ctx, now)
}

// Dismiss hides one alert ID for the rest of the session.
func (e *Engine) Dismiss(id string) {
	e.lifecycle.Dismiss(id)
}

// DismissAll hides every alert from the most recent evaluation pass.
func (e *Engine) DismissAll() {
	e.lifecycle.DismissAll(e.lastAlerts)
}

// ResetDismissals clears the session dismissal set.
func (e *Engine) ResetDismissals() {
	e.lifecycle.Reset()
}
