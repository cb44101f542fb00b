package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	apperrors "mannwallet/internal/errors"
	"mannwallet/internal/models"
)

// SQLiteStore implements ExpenseStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based expense store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Expenses table; records are immutable once created
	CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		amount INTEGER NOT NULL,
		category TEXT NOT NULL,
		emotion TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		description TEXT,
		voice_note TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_expenses_timestamp ON expenses(timestamp);
	CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
	CREATE INDEX IF NOT EXISTS idx_expenses_emotion ON expenses(emotion);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveExpense inserts a new expense record.
func (s *SQLiteStore) SaveExpense(ctx context.Context, record *models.ExpenseRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, amount, category, emotion, timestamp, description, voice_note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Amount, string(record.Category), string(record.Emotion),
		record.Timestamp.UTC(), record.Description, record.VoiceNote,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return apperrors.Wrapf(apperrors.ErrDuplicateID, "expense %s", record.ID)
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

// ListExpenses returns expenses matching the filter, oldest first so the
// aggregation pass sees records in entry order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.ExpenseRecord, error) {
	query := `SELECT id, amount, category, emotion, timestamp, description, voice_note FROM expenses`
	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Emotion != "" {
		conditions = append(conditions, "emotion = ?")
		args = append(args, string(filter.Emotion))
	}
	if !filter.StartDate.IsZero() {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if !filter.EndDate.IsZero() {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, filter.EndDate.UTC())
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp ASC, created_at ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var records []models.ExpenseRecord
	for rows.Next() {
		var r models.ExpenseRecord
		var category, emotion string
		var description, voiceNote sql.NullString
		if err := rows.Scan(&r.ID, &r.Amount, &category, &emotion, &r.Timestamp, &description, &voiceNote); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		r.Category = models.Category(category)
		r.Emotion = models.Emotion(emotion)
		r.Description = description.String
		r.VoiceNote = voiceNote.String
		records = append(records, r)
	}

	return records, rows.Err()
}

// GetExpense returns a single expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.ExpenseRecord, error) {
	var r models.ExpenseRecord
	var category, emotion string
	var description, voiceNote sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, amount, category, emotion, timestamp, description, voice_note
		FROM expenses WHERE id = ?`, id,
	).Scan(&r.ID, &r.Amount, &category, &emotion, &r.Timestamp, &description, &voiceNote)
	if err == sql.ErrNoRows {
		return nil, apperrors.Wrapf(apperrors.ErrExpenseNotFound, "expense %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	r.Category = models.Category(category)
	r.Emotion = models.Emotion(emotion)
	r.Description = description.String
	r.VoiceNote = voiceNote.String
	return &r, nil
}

// DeleteExpense removes an expense record.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.Wrapf(apperrors.ErrExpenseNotFound, "expense %s", id)
	}
	return nil
}
