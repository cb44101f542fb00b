package store

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "mannwallet/internal/errors"
	"mannwallet/internal/models"
)

func TestMemoryStore_RoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("saved records read back unchanged", prop.ForAll(
		func(id string, amount int64, descr string) bool {
			s := NewMemoryStore()
			ctx := context.Background()

			want := &models.ExpenseRecord{
				ID:          id,
				Amount:      amount,
				Category:    models.CategoryFood,
				Emotion:     models.EmotionCalm,
				Timestamp:   time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
				Description: descr,
			}
			if err := s.SaveExpense(ctx, want); err != nil {
				t.Logf("save failed: %v", err)
				return false
			}

			got, err := s.GetExpense(ctx, id)
			if err != nil {
				t.Logf("get failed: %v", err)
				return false
			}
			return *got == *want
		},
		gen.Identifier(),
		gen.Int64Range(0, 1000000),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestMemoryStore_DuplicateIDRejected(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	r := testRecord("exp_1", 100, time.Now())
	if err := s.SaveExpense(ctx, r); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveExpense(ctx, r); !apperrors.Is(err, apperrors.ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestMemoryStore_ListSortsOldestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStoreWith([]models.ExpenseRecord{
		*testRecord("exp_2", 200, base.AddDate(0, 0, 1)),
		*testRecord("exp_1", 100, base),
	})

	got, err := s.ListExpenses(ctx, ExpenseFilter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(got) != 2 || got[0].ID != "exp_1" || got[1].ID != "exp_2" {
		t.Errorf("records not sorted oldest first: %v", got)
	}
}

func TestMemoryStore_DeleteMissing(t *testing.T) {
	s := NewMemoryStore()
	if err := s.DeleteExpense(context.Background(), "nope"); !apperrors.Is(err, apperrors.ErrExpenseNotFound) {
		t.Errorf("err = %v, want ErrExpenseNotFound", err)
	}
}
