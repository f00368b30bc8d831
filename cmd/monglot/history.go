package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/monglot/internal/cli"
)

func newHistoryCommand() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show and record translation history",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List translations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
				records, err := env.history.List(ctx)
				if err != nil {
					return fmt.Errorf("history.List() > %w", err)
				}
				if limit > 0 && len(records) > limit {
					records = records[:limit]
				}
				return env.printer.PrintHistory(records)
			})
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the newest n records. 0 shows all")

	addCmd := &cobra.Command{
		Use:   "add <english> <mon>",
		Short: "Record a translation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
				record, err := env.history.Append(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("history.Append() > %w", err)
				}
				return env.printer.PrintAppended(record)
			})
		},
	}

	var opts exportOptions
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as Markdown or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
				records, err := env.history.List(ctx)
				if err != nil {
					return fmt.Errorf("history.List() > %w", err)
				}
				return exportMarkdown(env, cli.HistoryMarkdown(records), opts, "history")
			})
		},
	}
	addExportFlags(exportCmd.Flags(), &opts)

	historyCmd.AddCommand(listCmd, addCmd, exportCmd)
	return historyCmd
}
