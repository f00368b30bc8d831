package vocabulary

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/monglot/internal/database"
)

//go:embed default_vocabulary.yaml
var defaultVocabulary []byte

// SeedEntry is one word of a seed document.
type SeedEntry struct {
	Word        string `yaml:"word"`
	Translation string `yaml:"translation"`
}

// DefaultVocabulary returns the embedded seed vocabulary.
func DefaultVocabulary() ([]SeedEntry, error) {
	return ParseSeed(defaultVocabulary)
}

// LoadSeed returns the entries of seedFile, or the embedded vocabulary when seedFile is empty.
func LoadSeed(seedFile string) ([]SeedEntry, error) {
	if seedFile == "" {
		return DefaultVocabulary()
	}
	return LoadSeedFile(seedFile)
}

// LoadSeedFile reads a seed document from path.
func LoadSeedFile(path string) ([]SeedEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	entries, err := ParseSeed(content)
	if err != nil {
		return nil, fmt.Errorf("ParseSeed(%s) > %w", path, err)
	}
	return entries, nil
}

// ParseSeed decodes a YAML list of word/translation pairs.
func ParseSeed(content []byte) ([]SeedEntry, error) {
	var entries []SeedEntry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	for i, entry := range entries {
		if Normalize(entry.Word) == "" || entry.Translation == "" {
			return nil, fmt.Errorf("seed entry %d: word and translation are required", i)
		}
	}
	return entries, nil
}

// Seed stores every entry whose word is not present yet, in a single transaction.
// Existing words keep their translation. It returns how many words were added.
func Seed(ctx context.Context, db *sqlx.DB, entries []SeedEntry) (int, error) {
	learned := 0
	err := database.RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		store := NewStore(NewDBRepository(tx))
		for _, entry := range entries {
			result, err := store.GetOrCreate(ctx, entry.Word, entry.Translation)
			if err != nil {
				return fmt.Errorf("store.GetOrCreate(%s) > %w", entry.Word, err)
			}
			if result.Learned {
				learned++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return learned, nil
}
