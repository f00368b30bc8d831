package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/monglot/internal/translation"
)

type translateOptions struct {
	grammarRulesFile string
	noVocabulary     bool
	save             bool
}

func newTranslateCommand() *cobra.Command {
	var opts translateOptions
	translateCmd := &cobra.Command{
		Use:   "translate <sentence>",
		Short: "Translate an English sentence into Mon with the configured model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
				return runTranslate(ctx, env, strings.Join(args, " "), opts)
			})
		},
	}
	flags := translateCmd.Flags()
	flags.StringVar(&opts.grammarRulesFile, "grammar-rules", "", "JSON file with grammar rules passed to the model")
	flags.BoolVar(&opts.noVocabulary, "no-vocabulary", false, "Do not send the stored vocabulary to the model")
	flags.BoolVar(&opts.save, "save", false, "Record the translation in the history")
	return translateCmd
}

func runTranslate(ctx context.Context, env *environment, sentence string, opts translateOptions) error {
	client, closeClient, err := translation.NewClientFromConfig(ctx, env.cfg.Translation)
	if err != nil {
		return fmt.Errorf("translation.NewClientFromConfig() > %w", err)
	}
	defer func() {
		_ = closeClient()
	}()
	if client == nil {
		return fmt.Errorf("%w: no API key for provider %q", translation.ErrNotConfigured, env.cfg.Translation.Provider)
	}

	req := translation.Request{Sentence: sentence}
	if !opts.noVocabulary {
		words, err := env.vocabulary.List(ctx)
		if err != nil {
			return fmt.Errorf("vocabulary.List() > %w", err)
		}
		if req.Vocabulary, err = json.Marshal(words); err != nil {
			return fmt.Errorf("json.Marshal(vocabulary) > %w", err)
		}
	}
	if req.GrammarRules, err = readOptionalFile(opts.grammarRulesFile); err != nil {
		return err
	}
	if len(req.GrammarRules) > 0 && !json.Valid(req.GrammarRules) {
		return fmt.Errorf("%s is not valid JSON", opts.grammarRulesFile)
	}

	reply, err := translation.NewGateway(client).Translate(ctx, req)
	if err != nil {
		return fmt.Errorf("gateway.Translate() > %w", err)
	}
	if err := env.printer.PrintJSON(reply); err != nil {
		return err
	}
	if !opts.save {
		return nil
	}

	var result struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(reply, &result); err != nil || result.Translation == "" {
		return fmt.Errorf("the reply has no translation to save")
	}
	record, err := env.history.Append(ctx, sentence, result.Translation)
	if err != nil {
		return fmt.Errorf("history.Append() > %w", err)
	}
	return env.printer.PrintAppended(record)
}
