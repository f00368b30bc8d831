// Package vocabulary stores the English to Mon word dictionary.
package vocabulary

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when an update or delete matched no word.
var ErrNotFound = errors.New("word not found")

// Entry is one dictionary row. Word is always stored normalized.
type Entry struct {
	Word        string    `db:"word" yaml:"word"`
	Translation string    `db:"translation" yaml:"translation"`
	CreatedAt   time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" yaml:"updated_at"`
}

// Normalize returns the storage key for word. Every read and write goes through it.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
