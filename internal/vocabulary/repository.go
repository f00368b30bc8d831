package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing dictionary entries.
type Repository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	FindByWord(ctx context.Context, word string) (*Entry, error)
	Create(ctx context.Context, entry *Entry) error
	UpdateTranslation(ctx context.Context, word, translation string, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, word string) (bool, error)
}

// DBRepository implements Repository on a *sqlx.DB or *sqlx.Tx.
type DBRepository struct {
	db sqlx.ExtContext
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all entries ordered by word.
func (r *DBRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := sqlx.SelectContext(ctx, r.db, &entries,
		"SELECT word, translation, created_at, updated_at FROM vocabulary ORDER BY word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary) > %w", err)
	}
	return entries, nil
}

// FindByWord returns the entry for an already normalized word, or nil if not found.
func (r *DBRepository) FindByWord(ctx context.Context, word string) (*Entry, error) {
	var entry Entry
	err := sqlx.GetContext(ctx, r.db, &entry,
		"SELECT word, translation, created_at, updated_at FROM vocabulary WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(vocabulary) > %w", err)
	}
	return &entry, nil
}

// Create inserts a new entry. A duplicate word fails with the driver's uniqueness error.
func (r *DBRepository) Create(ctx context.Context, entry *Entry) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO vocabulary (word, translation, created_at, updated_at) VALUES (?, ?, ?, ?)",
		entry.Word, entry.Translation, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert vocabulary) > %w", err)
	}
	return nil
}

// UpdateTranslation overwrites the translation of word and reports whether a row matched.
func (r *DBRepository) UpdateTranslation(ctx context.Context, word, translation string, updatedAt time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE vocabulary SET translation = ?, updated_at = ? WHERE word = ?",
		translation, updatedAt, word)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(update vocabulary) > %w", err)
	}
	return affected(result)
}

// Delete removes word and reports whether a row was removed.
func (r *DBRepository) Delete(ctx context.Context, word string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vocabulary WHERE word = ?", word)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(delete vocabulary) > %w", err)
	}
	return affected(result)
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return n > 0, nil
}
