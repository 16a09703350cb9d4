package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/docketwatch/docketwatch/internal/sync"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time      `json:"checked_at"`
	Outcomes  []sync.Outcome `json:"outcomes"`
	Summary   sync.Summary   `json:"summary"`
	DryRun    bool           `json:"dry_run,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable per-row lines plus a summary
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	for _, o := range result.Outcomes {
		label := o.CaseNumber
		if label == "" {
			label = o.RecordID
		}

		switch o.Status {
		case sync.StatusUpdated:
			fmt.Fprintf(w, "[%s] updated (%s)\n", label, fieldNames(o.Fields))
			if verbose {
				for _, name := range sortedKeys(o.Fields) {
					fmt.Fprintf(w, "     %s: %s\n", name, o.Fields[name])
				}
			}
		case sync.StatusSkipped:
			fmt.Fprintf(w, "[%s] skipped: %s\n", label, o.Reason)
		case sync.StatusFailed:
			fmt.Fprintf(w, "[%s] failed: %s\n", label, o.Error)
		}

		if verbose {
			fmt.Fprintf(w, "     record: %s\n", o.RecordID)
		}
	}

	s := result.Summary
	if result.DryRun {
		fmt.Fprintf(w, "\n[DRY RUN] %d rows: %d would update, %d skipped, %d failed\n",
			s.Total, s.Updated, s.Skipped, s.Failed)
	} else {
		fmt.Fprintf(w, "\n%d rows: %d updated, %d skipped, %d failed\n",
			s.Total, s.Updated, s.Skipped, s.Failed)
	}

	return nil
}

// fieldNames renders the updated field names in stable order
func fieldNames(fields map[string]string) string {
	names := sortedKeys(fields)
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
