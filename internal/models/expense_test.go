package models

import (
	"testing"
	"time"
)

func TestExpenseRecordValidate(t *testing.T) {
	valid := ExpenseRecord{
		ID:        "e1",
		Amount:    100,
		Category:  CategoryFood,
		Emotion:   EmotionHappy,
		Timestamp: time.Now(),
	}

	tests := []struct {
		name      string
		mutate    func(*ExpenseRecord)
		wantField string
	}{
		{"valid", func(*ExpenseRecord) {}, ""},
		{"zero amount is fine", func(r *ExpenseRecord) { r.Amount = 0 }, ""},
		{"negative amount", func(r *ExpenseRecord) { r.Amount = -1 }, "amount"},
		{"unknown category", func(r *ExpenseRecord) { r.Category = "crypto" }, "category"},
		{"unknown emotion", func(r *ExpenseRecord) { r.Emotion = "euphoric" }, "emotion"},
		{"empty category", func(r *ExpenseRecord) { r.Category = "" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			recErr, ok := err.(*RecordError)
			if !ok {
				t.Fatalf("Validate() = %v, want *RecordError", err)
			}
			if recErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", recErr.Field, tt.wantField)
			}
		})
	}
}

func TestEmotionIsNegative(t *testing.T) {
	negatives := map[Emotion]bool{
		EmotionStressed: true,
		EmotionAnxious:  true,
		EmotionSad:      true,
		EmotionAngry:    true,
	}
	for _, e := range Emotions {
		if got := e.IsNegative(); got != negatives[e] {
			t.Errorf("%s.IsNegative() = %v, want %v", e, got, negatives[e])
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("festival"); !ok || c != CategoryFestival {
		t.Errorf("ParseCategory(festival) = %s, %v", c, ok)
	}
	if _, ok := ParseCategory("Festival"); ok {
		t.Error("category parsing must be case sensitive")
	}
	if _, ok := ParseCategory(""); ok {
		t.Error("empty category must not parse")
	}
}

func TestParseEmotion(t *testing.T) {
	if e, ok := ParseEmotion("guilty"); !ok || e != EmotionGuilty {
		t.Errorf("ParseEmotion(guilty) = %s, %v", e, ok)
	}
	if _, ok := ParseEmotion("meh"); ok {
		t.Error("unknown emotion must not parse")
	}
}
