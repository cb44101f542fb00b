// Package store provides expense persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"mannwallet/internal/models"
)

// ExpenseStore defines the append-only expense collection the engine reads
// from. The analytics engine only ever calls ListExpenses; the write side
// belongs to the expense-entry surfaces.
type ExpenseStore interface {
	SaveExpense(ctx context.Context, record *models.ExpenseRecord) error
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.ExpenseRecord, error)
	GetExpense(ctx context.Context, id string) (*models.ExpenseRecord, error)
	DeleteExpense(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

// ExpenseFilter represents filters for querying expenses.
type ExpenseFilter struct {
	Category  models.Category
	Emotion   models.Emotion
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
