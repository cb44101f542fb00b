package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	apperrors "mannwallet/internal/errors"
	"mannwallet/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "expenses.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(id string, amount int64, ts time.Time) *models.ExpenseRecord {
	return &models.ExpenseRecord{
		ID:        id,
		Amount:    amount,
		Category:  models.CategoryFood,
		Emotion:   models.EmotionHappy,
		Timestamp: ts,
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2026, time.August, 20, 14, 30, 0, 0, time.UTC)
	want := &models.ExpenseRecord{
		ID:          "exp_1",
		Amount:      2500,
		Category:    models.CategoryFestival,
		Emotion:     models.EmotionExcited,
		Timestamp:   ts,
		Description: "Diwali lights",
		VoiceNote:   "note.ogg",
	}

	if err := s.SaveExpense(ctx, want); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	got, err := s.GetExpense(ctx, "exp_1")
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}

	if got.ID != want.ID || got.Amount != want.Amount ||
		got.Category != want.Category || got.Emotion != want.Emotion ||
		got.Description != want.Description || got.VoiceNote != want.VoiceNote {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp = %s, want %s", got.Timestamp, want.Timestamp)
	}
}

func TestSQLiteStore_RejectsMalformedRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	bad := &models.ExpenseRecord{
		ID:        "bad",
		Amount:    -1,
		Category:  models.CategoryFood,
		Emotion:   models.EmotionHappy,
		Timestamp: time.Now(),
	}
	if err := s.SaveExpense(ctx, bad); err == nil {
		t.Error("expected validation error for negative amount")
	}

	if _, err := s.GetExpense(ctx, "bad"); err == nil {
		t.Error("malformed record must not be persisted")
	}
}

func TestSQLiteStore_ListOrderAndFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	records := []*models.ExpenseRecord{
		testRecord("exp_3", 300, base.AddDate(0, 0, 2)),
		testRecord("exp_1", 100, base),
		testRecord("exp_2", 200, base.AddDate(0, 0, 1)),
	}
	records[0].Category = models.CategoryShopping
	records[0].Emotion = models.EmotionStressed

	for _, r := range records {
		if err := s.SaveExpense(ctx, r); err != nil {
			t.Fatalf("SaveExpense(%s): %v", r.ID, err)
		}
	}

	all, err := s.ListExpenses(ctx, ExpenseFilter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	for i, wantID := range []string{"exp_1", "exp_2", "exp_3"} {
		if all[i].ID != wantID {
			t.Errorf("all[%d].ID = %s, want %s (oldest first)", i, all[i].ID, wantID)
		}
	}

	byCategory, err := s.ListExpenses(ctx, ExpenseFilter{Category: models.CategoryShopping})
	if err != nil {
		t.Fatalf("ListExpenses(category): %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].ID != "exp_3" {
		t.Errorf("category filter returned %v, want just exp_3", byCategory)
	}

	byEmotion, err := s.ListExpenses(ctx, ExpenseFilter{Emotion: models.EmotionStressed})
	if err != nil {
		t.Fatalf("ListExpenses(emotion): %v", err)
	}
	if len(byEmotion) != 1 || byEmotion[0].ID != "exp_3" {
		t.Errorf("emotion filter returned %v, want just exp_3", byEmotion)
	}

	ranged, err := s.ListExpenses(ctx, ExpenseFilter{
		StartDate: base.AddDate(0, 0, 1),
		EndDate:   base.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("ListExpenses(range): %v", err)
	}
	if len(ranged) != 1 || ranged[0].ID != "exp_2" {
		t.Errorf("date range returned %v, want just exp_2", ranged)
	}

	limited, err := s.ListExpenses(ctx, ExpenseFilter{Limit: 2})
	if err != nil {
		t.Fatalf("ListExpenses(limit): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d records", len(limited))
	}
}

func TestSQLiteStore_DuplicateIDRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testRecord("exp_dup", 100, time.Now().UTC())
	if err := s.SaveExpense(ctx, r); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// Both store implementations report duplicates through the same sentinel.
	if err := s.SaveExpense(ctx, r); !apperrors.Is(err, apperrors.ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testRecord("exp_del", 100, time.Now().UTC())
	if err := s.SaveExpense(ctx, r); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	if err := s.DeleteExpense(ctx, "exp_del"); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if _, err := s.GetExpense(ctx, "exp_del"); err == nil {
		t.Error("record still readable after delete")
	}
	if err := s.DeleteExpense(ctx, "exp_del"); err == nil {
		t.Error("expected not-found error on second delete")
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetExpense(context.Background(), "nope"); !apperrors.Is(err, apperrors.ErrExpenseNotFound) {
		t.Errorf("err = %v, want ErrExpenseNotFound", err)
	}
}
