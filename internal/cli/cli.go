package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docketwatch/docketwatch/internal/airtable"
	"github.com/docketwatch/docketwatch/internal/config"
	"github.com/docketwatch/docketwatch/internal/docket"
	"github.com/docketwatch/docketwatch/internal/logger"
	"github.com/docketwatch/docketwatch/internal/storage"
	"github.com/docketwatch/docketwatch/internal/sync"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitRowFailures = 2
)

var (
	flagDryRun  bool
	flagDelay   time.Duration
	flagDataDir string
	flagFormat  string
	flagVerbose bool
	flagLimit   int
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docketwatch",
		Short: "Sync court docket charges and hearings into Airtable",
		Long: `Sync court docket data into an Airtable table.
For every row with a case number, fetches the county docket page, extracts
the charge description and today's calendar event, and patches them back
onto the row. Rows the site can't serve are skipped and reported.`,
		RunE: runSync,
	}

	// Define flags
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Show updates without writing to Airtable")
	cmd.Flags().DurationVar(&flagDelay, "delay", config.DefaultDelay, "Fixed delay between docket requests")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", config.DefaultDataDir, "Directory for error-page dumps")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Process at most N rows (0 = all)")

	return cmd
}

// runSync is the main command logic
func runSync(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Delay = flagDelay
	cfg.DataDir = flagDataDir

	client, err := airtable.New(cfg.AirtableTable, cfg.AirtableToken)
	if err != nil {
		return fmt.Errorf("initializing airtable client: %w", err)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	fetcher := docket.New(cfg.DocketURL)

	var sink sync.Sink = client
	if flagDryRun {
		sink = sync.NewDryRunSink()
	}

	runner := sync.NewRunner(cfg, client, fetcher, sink, store, flagLimit)

	outcomes, err := runner.Run()
	if err != nil {
		return err
	}

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Outcomes:  outcomes,
		Summary:   sync.Summarize(outcomes),
		DryRun:    flagDryRun,
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// Exit code distinguishes a clean run from one with failed rows
	if result.Summary.Failed > 0 {
		os.Exit(ExitRowFailures)
	}
	os.Exit(ExitSuccess)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
