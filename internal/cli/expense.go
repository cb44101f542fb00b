package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mannwallet/internal/logging"
	"mannwallet/internal/models"
	"mannwallet/internal/store"
)

// addExpenseCommands adds expense entry commands.
func addExpenseCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newAddCmd(app))
	rootCmd.AddCommand(newListCmd(app))
	rootCmd.AddCommand(newDeleteCmd(app))
}

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <amount> <category> <emotion>",
		Short: "Record an expense with the emotion you felt",
		Long: `Record a spending event with its amount in rupees, a category and the
emotion you felt while spending.`,
		Example: `  mannwallet add 2500 food happy
  mannwallet add 15000 festival excited --note "Diwali shopping"
  mannwallet add 800 family stressed --date 2026-08-20`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || amount < 0 {
				output.Error("Invalid amount: %s", args[0])
				return fmt.Errorf("invalid amount")
			}

			category, ok := models.ParseCategory(args[1])
			if !ok {
				output.Error("Unknown category: %s", args[1])
				output.Dim("Valid categories: %v", models.Categories)
				return fmt.Errorf("unknown category")
			}

			emotion, ok := models.ParseEmotion(args[2])
			if !ok {
				output.Error("Unknown emotion: %s", args[2])
				output.Dim("Valid emotions: %v", models.Emotions)
				return fmt.Errorf("unknown emotion")
			}

			note, _ := cmd.Flags().GetString("note")
			voiceNote, _ := cmd.Flags().GetString("voice-note")
			dateStr, _ := cmd.Flags().GetString("date")

			ts := time.Now()
			if dateStr != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					output.Error("Invalid date: %s (expected YYYY-MM-DD)", dateStr)
					return fmt.Errorf("invalid date")
				}
				ts = parsed
			}

			record := &models.ExpenseRecord{
				ID:          fmt.Sprintf("exp_%d", time.Now().UnixNano()),
				Amount:      amount,
				Category:    category,
				Emotion:     emotion,
				Timestamp:   ts,
				Description: note,
				VoiceNote:   voiceNote,
			}

			if err := app.Store.SaveExpense(ctx, record); err != nil {
				output.Error("Failed to save expense: %v", err)
				return err
			}

			logging.LogExpense(app.Logger, record.ID, amount, string(category), string(emotion))

			if output.IsJSON() {
				return output.JSON(record)
			}
			output.Success("✓ Recorded %s on %s while feeling %s %s",
				FormatRupees(amount), category, emotion, emotionTag(string(emotion)))
			return nil
		},
	}

	cmd.Flags().String("note", "", "optional description")
	cmd.Flags().String("voice-note", "", "optional voice note transcript")
	cmd.Flags().String("date", "", "expense date (YYYY-MM-DD, default: today)")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		Example: `  mannwallet list
  mannwallet list --category food --limit 20
  mannwallet list --emotion stressed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			categoryStr, _ := cmd.Flags().GetString("category")
			emotionStr, _ := cmd.Flags().GetString("emotion")
			limit, _ := cmd.Flags().GetInt("limit")

			filter := store.ExpenseFilter{Limit: limit}
			if categoryStr != "" {
				category, ok := models.ParseCategory(categoryStr)
				if !ok {
					output.Error("Unknown category: %s", categoryStr)
					return fmt.Errorf("unknown category")
				}
				filter.Category = category
			}
			if emotionStr != "" {
				emotion, ok := models.ParseEmotion(emotionStr)
				if !ok {
					output.Error("Unknown emotion: %s", emotionStr)
					return fmt.Errorf("unknown emotion")
				}
				filter.Emotion = emotion
			}

			records, err := app.Store.ListExpenses(ctx, filter)
			if err != nil {
				output.Error("Failed to list expenses: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(records)
			}

			if len(records) == 0 {
				output.Dim("No expenses recorded yet.")
				return nil
			}

			output.Bold("Expenses")
			for _, r := range records {
				line := fmt.Sprintf("  %s  %-10s %-13s %-10s %s",
					FormatDate(r.Timestamp, app.Config.UI.DateFormat),
					FormatRupees(r.Amount), r.Category, r.Emotion, emotionTag(string(r.Emotion)))
				if r.Description != "" {
					line += output.DimText("  " + r.Description)
				}
				output.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().String("category", "", "filter by category")
	cmd.Flags().String("emotion", "", "filter by emotion")
	cmd.Flags().Int("limit", 0, "maximum records to show")

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.Store.DeleteExpense(ctx, args[0]); err != nil {
				output.Error("Failed to delete expense: %v", err)
				return err
			}
			output.Success("✓ Deleted expense %s", args[0])
			return nil
		},
	}
}
