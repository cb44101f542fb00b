package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"mannwallet/internal/logging"
	"mannwallet/internal/models"
)

// addAlertCommands adds predictive alert commands.
func addAlertCommands(rootCmd *cobra.Command, app *App) {
	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "Predictive spending alerts",
		Long: `Evaluate the predictive rules against your recent spending and the
festival calendar, and manage alert dismissals for this session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlertsList(cmd, app)
		},
	}

	alertsCmd.AddCommand(&cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss one alert for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			app.Engine.Dismiss(args[0])
			logging.LogDismissal(app.Logger, args[0])
			output.Success("✓ Dismissed %s", args[0])
			return nil
		},
	})

	alertsCmd.AddCommand(&cobra.Command{
		Use:   "dismiss-all",
		Short: "Dismiss every current alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if _, err := app.Engine.EvaluateAlerts(ctx, time.Now()); err != nil {
				output.Error("Alert evaluation failed: %v", err)
				return err
			}
			app.Engine.DismissAll()
			output.Success("✓ All alerts dismissed for this session")
			return nil
		},
	})

	alertsCmd.AddCommand(&cobra.Command{
		Use:   "regenerate",
		Short: "Re-run the alert rules (dismissed alerts stay hidden)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlertsList(cmd, app)
		},
	})

	alertsCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear all dismissals so hidden alerts can reappear",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			app.Engine.ResetDismissals()
			output.Success("✓ Dismissals cleared")
			return nil
		},
	})

	rootCmd.AddCommand(alertsCmd)
}

func runAlertsList(cmd *cobra.Command, app *App) error {
	output := NewOutput(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	visible, err := app.Engine.EvaluateAlerts(ctx, time.Now())
	if err != nil {
		output.Error("Alert evaluation failed: %v", err)
		return err
	}

	for _, a := range visible {
		logging.LogAlert(app.Logger, a.ID, string(a.Priority), string(a.ActionType))
		if app.Notifier != nil {
			_ = app.Notifier.SendAlert(ctx, a)
		}
	}

	if output.IsJSON() {
		if visible == nil {
			visible = []models.Alert{}
		}
		return output.JSON(visible)
	}

	if len(visible) == 0 {
		output.Dim("No alerts right now. Nothing risky on the horizon.")
		return nil
	}

	output.Bold("Predictive Alerts")
	for _, a := range visible {
		priority := output.ColoredString(output.PriorityColor(string(a.Priority)), "["+string(a.Priority)+"]")
		output.Printf("  %s %s  %s\n", priority, a.Title, output.DimText("("+a.ID+")"))
		output.Printf("      %s\n", a.Description)
		output.Printf("      %s\n", output.DimText("Suggestion: "+a.Suggestion))
	}
	output.Println()
	output.Dim("Dismiss with: mannwallet alerts dismiss <id>")
	return nil
}
