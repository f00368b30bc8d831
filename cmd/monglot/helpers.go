package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/monglot/internal/cli"
	"github.com/at-ishikawa/monglot/internal/config"
	"github.com/at-ishikawa/monglot/internal/database"
	"github.com/at-ishikawa/monglot/internal/history"
	"github.com/at-ishikawa/monglot/internal/logging"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// environment holds what a subcommand needs. close releases the database.
type environment struct {
	cfg        *config.Config
	db         *sqlx.DB
	vocabulary *vocabulary.Store
	history    *history.Log
	printer    *cli.Printer
}

func (env *environment) close() error {
	return env.db.Close()
}

// openEnvironment loads config, configures logging to stderr and opens the store with its schema applied.
func openEnvironment(ctx context.Context, cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loadConfig() > %w", err)
	}
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.Log, debugMode); err != nil {
		return nil, fmt.Errorf("logging.Setup() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.EnsureSchema() > %w", err)
	}

	return &environment{
		cfg:        cfg,
		db:         db,
		vocabulary: vocabulary.NewStore(vocabulary.NewDBRepository(db)),
		history:    history.NewLog(history.NewDBRepository(db)),
		printer:    cli.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

// withEnvironment opens the environment for the duration of fn.
func withEnvironment(cmd *cobra.Command, fn func(ctx context.Context, env *environment) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := openEnvironment(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = env.close()
	}()
	return fn(ctx, env)
}

type ExportFormat string

const (
	ExportMarkdown ExportFormat = "md"
	ExportPDF      ExportFormat = "pdf"
)

// Set implements pflag.Value.
func (f *ExportFormat) Set(v string) error {
	switch strings.ToLower(v) {
	case string(ExportMarkdown), "markdown":
		*f = ExportMarkdown
	case string(ExportPDF):
		*f = ExportPDF
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, ExportMarkdown, ExportPDF)
	}
	return nil
}

// String implements pflag.Value.
func (f *ExportFormat) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *ExportFormat) Type() string {
	return "ExportFormat"
}

var (
	_ pflag.Value = (*ExportFormat)(nil)
)

// exportOptions are the flags shared by the export subcommands.
type exportOptions struct {
	format ExportFormat
	output string
}

func addExportFlags(flags *pflag.FlagSet, opts *exportOptions) {
	opts.format = ExportMarkdown
	flags.VarP(&opts.format, "format", "f", "Output format. Options: md, pdf")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path. Defaults to <name>.<format> in the current directory")
}

// outputPath returns the output flag, or name with the format's extension.
func (opts exportOptions) outputPath(name string) string {
	if opts.output != "" {
		if filepath.Ext(opts.output) == "" {
			return opts.output + "." + string(opts.format)
		}
		return opts.output
	}
	return name + "." + string(opts.format)
}

func exportMarkdown(env *environment, markdown []byte, opts exportOptions, name string) error {
	path, err := cli.Export(markdown, opts.outputPath(name))
	if err != nil {
		return fmt.Errorf("cli.Export() > %w", err)
	}
	return env.printer.Println("Exported to %s", path)
}

func readOptionalFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return content, nil
}
