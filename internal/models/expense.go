// Package models provides domain models for the expense analytics application.
package models

import (
	"time"
)

// Category represents a spending category.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryFestival      Category = "festival"
	CategoryFamily        Category = "family"
	CategoryHealthcare    Category = "healthcare"
	CategoryEducation     Category = "education"
	CategoryTraditional   Category = "traditional"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryUtilities     Category = "utilities"
)

// Categories lists all valid spending categories in declaration order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryFestival,
	CategoryFamily,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTraditional,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
}

// Emotion represents a self-reported emotion attached to an expense.
type Emotion string

const (
	EmotionHappy    Emotion = "happy"
	EmotionStressed Emotion = "stressed"
	EmotionExcited  Emotion = "excited"
	EmotionSad      Emotion = "sad"
	EmotionAngry    Emotion = "angry"
	EmotionCalm     Emotion = "calm"
	EmotionAnxious  Emotion = "anxious"
	EmotionGuilty   Emotion = "guilty"
)

// Emotions lists all valid emotions in declaration order.
var Emotions = []Emotion{
	EmotionHappy,
	EmotionStressed,
	EmotionExcited,
	EmotionSad,
	EmotionAngry,
	EmotionCalm,
	EmotionAnxious,
	EmotionGuilty,
}

// NegativeEmotions are the emotions counted as emotionally-driven spending.
var NegativeEmotions = []Emotion{
	EmotionStressed,
	EmotionAnxious,
	EmotionSad,
	EmotionAngry,
}

// IsValid reports whether the category is one of the fixed set.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// IsValid reports whether the emotion is one of the fixed set.
func (e Emotion) IsValid() bool {
	for _, v := range Emotions {
		if e == v {
			return true
		}
	}
	return false
}

// IsNegative reports whether the emotion counts toward emotional spending.
func (e Emotion) IsNegative() bool {
	for _, v := range NegativeEmotions {
		if e == v {
			return true
		}
	}
	return false
}

// ParseCategory parses a category string, returning false for unknown values.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.IsValid()
}

// ParseEmotion parses an emotion string, returning false for unknown values.
func ParseEmotion(s string) (Emotion, bool) {
	e := Emotion(s)
	return e, e.IsValid()
}

// ExpenseRecord represents one atomic spending event.
// Records are immutable once created; the analytics engine never mutates them.
type ExpenseRecord struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"` // whole rupees, non-negative
	Category    Category  `json:"category"`
	Emotion     Emotion   `json:"emotion"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
	VoiceNote   string    `json:"voice_note,omitempty"`
}

// Validate reports whether the record is well-formed enough to aggregate.
func (r ExpenseRecord) Validate() error {
	if r.Amount < 0 {
		return NewRecordError(r.ID, "amount", "must be non-negative")
	}
	if !r.Category.IsValid() {
		return NewRecordError(r.ID, "category", "unknown category "+string(r.Category))
	}
	if !r.Emotion.IsValid() {
		return NewRecordError(r.ID, "emotion", "unknown emotion "+string(r.Emotion))
	}
	return nil
}

// RecordError describes a malformed expense record field.
type RecordError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *RecordError) Error() string {
	return "record " + e.RecordID + ": " + e.Field + ": " + e.Reason
}

// NewRecordError creates a new RecordError.
func NewRecordError(recordID, field, reason string) *RecordError {
	return &RecordError{RecordID: recordID, Field: field, Reason: reason}
}
