package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/monglot/internal/database"
	"github.com/at-ishikawa/monglot/internal/validation"
)

// LookupResult is the outcome of GetOrCreate. Learned is true only when the word was inserted by this call.
type LookupResult struct {
	Word        string
	Translation string
	Learned     bool
}

// Store applies normalization and input checks on top of a Repository.
type Store struct {
	repo Repository
	now  func() time.Time
}

// NewStore creates a Store.
func NewStore(repo Repository) *Store {
	return &Store{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// List returns every word mapped to its translation.
func (s *Store) List(ctx context.Context) (map[string]string, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.Word] = entry.Translation
	}
	return result, nil
}

// Entries returns every entry with its timestamps, ordered by word.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	return entries, nil
}

// GetOrCreate returns the stored translation of word if it exists, ignoring translation.
// Otherwise it stores translation and reports the word as learned.
func (s *Store) GetOrCreate(ctx context.Context, word, translation string) (LookupResult, error) {
	word = Normalize(word)
	if word == "" || strings.TrimSpace(translation) == "" {
		return LookupResult{}, validation.NewError("word and translation are required")
	}

	existing, err := s.repo.FindByWord(ctx, word)
	if err != nil {
		return LookupResult{}, fmt.Errorf("repo.FindByWord(%s) > %w", word, err)
	}
	if existing != nil {
		return LookupResult{Word: word, Translation: existing.Translation}, nil
	}

	now := s.now()
	entry := &Entry{
		Word:        word,
		Translation: translation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		if !database.IsUniqueViolation(err) {
			return LookupResult{}, fmt.Errorf("repo.Create(%s) > %w", word, err)
		}

		// Another request inserted the same word between the lookup and the insert.
		winner, findErr := s.repo.FindByWord(ctx, word)
		if findErr != nil {
			return LookupResult{}, fmt.Errorf("repo.FindByWord(%s) after duplicate insert > %w", word, findErr)
		}
		if winner == nil {
			return LookupResult{}, fmt.Errorf("repo.Create(%s) > %w", word, err)
		}
		slog.Default().Debug("word was inserted concurrently, using stored translation", "word", word)
		return LookupResult{Word: word, Translation: winner.Translation}, nil
	}

	return LookupResult{Word: word, Translation: translation, Learned: true}, nil
}

// Update overwrites the translation of an existing word and returns the normalized word.
func (s *Store) Update(ctx context.Context, word, translation string) (string, error) {
	word = Normalize(word)
	if word == "" {
		return "", validation.NewError("word is required")
	}
	if strings.TrimSpace(translation) == "" {
		return "", validation.NewError("translation is required")
	}

	ok, err := s.repo.UpdateTranslation(ctx, word, translation, s.now())
	if err != nil {
		return "", fmt.Errorf("repo.UpdateTranslation(%s) > %w", word, err)
	}
	if !ok {
		return "", fmt.Errorf("update %q: %w", word, ErrNotFound)
	}
	return word, nil
}

// Delete removes word and returns the normalized word.
func (s *Store) Delete(ctx context.Context, word string) (string, error) {
	word = Normalize(word)
	if word == "" {
		return "", validation.NewError("word is required")
	}

	ok, err := s.repo.Delete(ctx, word)
	if err != nil {
		return "", fmt.Errorf("repo.Delete(%s) > %w", word, err)
	}
	if !ok {
		return "", fmt.Errorf("delete %q: %w", word, ErrNotFound)
	}
	return word, nil
}
