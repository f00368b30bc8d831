// Package history keeps the append-only log of stored translations.
package history

import "time"

// Record is one stored translation. Records are never updated or deleted.
type Record struct {
	ID        int64     `db:"id" yaml:"id"`
	EN        string    `db:"en" yaml:"en"`
	MNW       string    `db:"mnw" yaml:"mnw"`
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
}
