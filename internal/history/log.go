package history

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/monglot/internal/validation"
)

// Log appends and lists translation records.
type Log struct {
	repo Repository
	now  func() time.Time
}

func NewLog(repo Repository) *Log {
	return &Log{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Append stores a source sentence with its translation.
func (l *Log) Append(ctx context.Context, en, mnw string) (Record, error) {
	if en == "" || mnw == "" {
		return Record{}, validation.NewError("en and mnw are required")
	}

	record := Record{
		EN:        en,
		MNW:       mnw,
		CreatedAt: l.now(),
	}
	if err := l.repo.Create(ctx, &record); err != nil {
		return Record{}, fmt.Errorf("repo.Create() > %w", err)
	}
	return record, nil
}

// List returns every record, most recent first.
func (l *Log) List(ctx context.Context) ([]Record, error) {
	records, err := l.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	return records, nil
}
