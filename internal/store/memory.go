package store

import (
	"context"
	"sort"
	"sync"

	apperrors "mannwallet/internal/errors"
	"mannwallet/internal/models"
)

// MemoryStore is an in-memory ExpenseStore used in tests and demos.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.ExpenseRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates an in-memory store preloaded with records.
func NewMemoryStoreWith(records []models.ExpenseRecord) *MemoryStore {
	s := &MemoryStore{}
	s.records = append(s.records, records...)
	return s
}

// SaveExpense implements ExpenseStore.
func (s *MemoryStore) SaveExpense(_ context.Context, record *models.ExpenseRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == record.ID {
			return apperrors.Wrapf(apperrors.ErrDuplicateID, "expense %s", record.ID)
		}
	}
	s.records = append(s.records, *record)
	return nil
}

// ListExpenses implements ExpenseStore, oldest first.
func (s *MemoryStore) ListExpenses(_ context.Context, filter ExpenseFilter) ([]models.ExpenseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ExpenseRecord, 0, len(s.records))
	for _, r := range s.records {
		if filter.Category != "" && r.Category != filter.Category {
			continue
		}
		if filter.Emotion != "" && r.Emotion != filter.Emotion {
			continue
		}
		if !filter.StartDate.IsZero() && r.Timestamp.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && r.Timestamp.After(filter.EndDate) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// GetExpense implements ExpenseStore.
func (s *MemoryStore) GetExpense(_ context.Context, id string) (*models.ExpenseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			record := r
			return &record, nil
		}
	}
	return nil, apperrors.Wrapf(apperrors.ErrExpenseNotFound, "expense %s", id)
}

// DeleteExpense implements ExpenseStore.
func (s *MemoryStore) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return apperrors.Wrapf(apperrors.ErrExpenseNotFound, "expense %s", id)
}

// Close implements ExpenseStore.
func (s *MemoryStore) Close() error {
	return nil
}
