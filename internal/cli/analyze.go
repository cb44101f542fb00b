package cli

import (
	"context"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"mannwallet/internal/analytics"
	apperrors "mannwallet/internal/errors"
	"mannwallet/internal/models"
)

// addAnalysisCommands adds the analytics commands.
func addAnalysisCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newSummaryCmd(app))
	rootCmd.AddCommand(newInsightsCmd(app))
}

func windowFlag(cmd *cobra.Command, app *App) (analytics.Window, error) {
	windowStr, _ := cmd.Flags().GetString("window")
	if windowStr == "" {
		windowStr = app.Config.Analytics.DefaultWindow
	}
	window := analytics.Window(windowStr)
	if !window.IsValid() {
		return "", apperrors.Wrapf(apperrors.ErrInvalidWindow, "%q (valid: %v)", windowStr, analytics.Windows)
	}
	return window, nil
}

func newSummaryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending breakdowns by emotion, category and weekday",
		Example: `  mannwallet summary
  mannwallet summary --window this-week
  mannwallet summary --window all --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			window, err := windowFlag(cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			analysis, err := app.Engine.Analyze(ctx, window, time.Now())
			if err != nil {
				output.Error("Analysis failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(analysis)
			}

			agg := analysis.Aggregation
			output.Bold("Spending Summary (%s)", window)
			output.Printf("  Total Spend:     %s\n", FormatRupees(agg.TotalSpend))
			output.Printf("  Emotional Spend: %s (%.0f%%)\n",
				FormatRupees(agg.EmotionalSpend), agg.EmotionalSpendRatio*100)
			output.Printf("  Records:         %d\n", agg.RecordCount)
			if agg.SkippedCount > 0 {
				output.Warning("  Skipped %d malformed record(s)", agg.SkippedCount)
			}
			if agg.HasDominantEmotion() {
				output.Printf("  Dominant Emotion: %s %s\n",
					agg.DominantEmotion, emotionTag(string(agg.DominantEmotion)))
			}
			output.Println()

			if len(agg.EmotionTotals) > 0 {
				output.Bold("By Emotion")
				for _, e := range agg.EmotionOrder {
					output.Printf("  %-10s %s\n", e, FormatRupees(agg.EmotionTotals[e]))
				}
				output.Println()
			}

			if len(agg.DayOfWeekTotals) > 0 {
				output.Bold("By Weekday")
				for wd := time.Sunday; wd <= time.Saturday; wd++ {
					if total, ok := agg.DayOfWeekTotals[wd]; ok {
						output.Printf("  %-10s %s\n", wd, FormatRupees(total))
					}
				}
				output.Println()
			}

			if len(agg.CategoryEmotionTotals) > 0 {
				output.Bold("By Category")
				categories := make([]models.Category, 0, len(agg.CategoryEmotionTotals))
				for c := range agg.CategoryEmotionTotals {
					categories = append(categories, c)
				}
				sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
				for _, c := range categories {
					var total int64
					for _, amount := range agg.CategoryEmotionTotals[c] {
						total += amount
					}
					output.Printf("  %-13s %s\n", c, FormatRupees(total))
				}
			}

			return nil
		},
	}

	cmd.Flags().String("window", "", "time window: all, today, this-week, this-month, this-quarter")

	return cmd
}

func newInsightsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show insights derived from your spending patterns",
		Example: `  mannwallet insights
  mannwallet insights --window this-quarter`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			window, err := windowFlag(cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			analysis, err := app.Engine.Analyze(ctx, window, time.Now())
			if err != nil {
				output.Error("Analysis failed: %v", err)
				return err
			}

			if output.IsJSON() {
				insights := analysis.Insights
				if insights == nil {
					insights = []models.Insight{}
				}
				return output.JSON(insights)
			}

			if len(analysis.Insights) == 0 {
				output.Dim("No insights for this window. Keep logging expenses.")
				return nil
			}

			output.Bold("Insights (%s)", window)
			for _, in := range analysis.Insights {
				var label string
				switch in.Severity {
				case models.SeverityWarning:
					label = output.Red("[warning]")
				case models.SeverityInfo:
					label = output.Cyan("[info]")
				default:
					label = output.Yellow("[tip]")
				}
				output.Printf("  %s %s\n", label, in.Title)
				output.Printf("      %s\n", output.DimText(in.Description))
			}
			return nil
		},
	}

	cmd.Flags().String("window", "", "time window: all, today, this-week, this-month, this-quarter")

	return cmd
}
