package history

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for the history log.
type Repository interface {
	FindAll(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, record *Record) error
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db sqlx.ExtContext
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns every record, most recent first.
func (r *DBRepository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := sqlx.SelectContext(ctx, r.db, &records,
		"SELECT id, en, mnw, created_at FROM history ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(history) > %w", err)
	}
	return records, nil
}

// Create inserts a new record and sets its ID.
func (r *DBRepository) Create(ctx context.Context, record *Record) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO history (en, mnw, created_at) VALUES (?, ?, ?)",
		record.EN, record.MNW, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert history) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = id
	return nil
}
