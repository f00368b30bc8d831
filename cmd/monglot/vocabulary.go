package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/monglot/internal/cli"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

func newVocabularyCommand() *cobra.Command {
	vocabularyCmd := &cobra.Command{
		Use:     "vocab",
		Aliases: []string{"vocabulary"},
		Short:   "Manage the English to Mon vocabulary",
	}

	vocabularyCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every word with its translation",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
					entries, err := env.vocabulary.Entries(ctx)
					if err != nil {
						return fmt.Errorf("vocabulary.Entries() > %w", err)
					}
					return env.printer.PrintVocabulary(entries)
				})
			},
		},
		&cobra.Command{
			Use:   "add <word> <translation>",
			Short: "Add a word unless it already exists",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
					result, err := env.vocabulary.GetOrCreate(ctx, args[0], args[1])
					if err != nil {
						return fmt.Errorf("vocabulary.GetOrCreate(%s) > %w", args[0], err)
					}
					return env.printer.PrintLookupResult(result)
				})
			},
		},
		&cobra.Command{
			Use:   "update <word> <translation>",
			Short: "Replace the translation of an existing word",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
					word, err := env.vocabulary.Update(ctx, args[0], args[1])
					if err != nil {
						return fmt.Errorf("vocabulary.Update(%s) > %w", args[0], err)
					}
					return env.printer.PrintUpdated(word, args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "delete <word>",
			Short: "Delete a word",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
					word, err := env.vocabulary.Delete(ctx, args[0])
					if err != nil {
						return fmt.Errorf("vocabulary.Delete(%s) > %w", args[0], err)
					}
					return env.printer.PrintDeleted(word)
				})
			},
		},
		newVocabularySeedCommand(),
		newVocabularyExportCommand(),
	)
	return vocabularyCmd
}

func newVocabularySeedCommand() *cobra.Command {
	var seedFile string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Add the default vocabulary, or the words of a seed file, without overwriting existing words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
				path := seedFile
				if path == "" {
					path = env.cfg.Vocabulary.SeedFile
				}
				entries, err := vocabulary.LoadSeed(path)
				if err != nil {
					return fmt.Errorf("vocabulary.LoadSeed() > %w", err)
				}
				learned, err := vocabulary.Seed(ctx, env.db, entries)
				if err != nil {
					return fmt.Errorf("vocabulary.Seed() > %w", err)
				}
				return env.printer.Println("Seeded %d of %d words", learned, len(entries))
			})
		},
	}
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML seed file. Defaults to vocabulary.seed_file or the built-in vocabulary")
	return seedCmd
}

func newVocabularyExportCommand() *cobra.Command {
	var opts exportOptions
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the vocabulary as Markdown or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
				entries, err := env.vocabulary.Entries(ctx)
				if err != nil {
					return fmt.Errorf("vocabulary.Entries() > %w", err)
				}
				return exportMarkdown(env, cli.VocabularyMarkdown(entries), opts, "vocabulary")
			})
		},
	}
	addExportFlags(exportCmd.Flags(), &opts)
	return exportCmd
}
