package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/docketwatch/docketwatch/internal/sync"
)

func sampleResult() *OutputResult {
	outcomes := []sync.Outcome{
		{
			RecordID:   "rec1",
			CaseNumber: "CR2025-000001",
			Status:     sync.StatusUpdated,
			Fields: map[string]string{
				"Crime":             "MURDER 1ST DEGREE",
				"Case Number Links": "Hearing at 9am",
			},
		},
		{
			RecordID:   "rec2",
			CaseNumber: "CR2025-000002",
			Status:     sync.StatusSkipped,
			Reason:     "status 503",
		},
		{
			RecordID: "rec3",
			Status:   sync.StatusSkipped,
			Reason:   "no case number",
		},
		{
			RecordID:   "rec4",
			CaseNumber: "CR2025-000004",
			Status:     sync.StatusFailed,
			Error:      "connection reset",
		},
	}
	return &OutputResult{
		CheckedAt: time.Date(2025, time.September, 5, 12, 0, 0, 0, time.UTC),
		Outcomes:  outcomes,
		Summary:   sync.Summarize(outcomes),
	}
}

func TestWriteTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput() failed: %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"[CR2025-000001] updated (Case Number Links, Crime)",
		"[CR2025-000002] skipped: status 503",
		"[rec3] skipped: no case number",
		"[CR2025-000004] failed: connection reset",
		"4 rows: 1 updated, 2 skipped, 1 failed",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Crime: MURDER 1ST DEGREE") {
		t.Errorf("verbose output should include field values:\n%s", out)
	}
	if !strings.Contains(out, "record: rec1") {
		t.Errorf("verbose output should include record IDs:\n%s", out)
	}
}

func TestWriteTextDryRun(t *testing.T) {
	result := sampleResult()
	result.DryRun = true

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[DRY RUN] 4 rows: 1 would update") {
		t.Errorf("dry-run summary missing:\n%s", buf.String())
	}
}

func TestWriteJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() failed: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.Total != 4 || decoded.Summary.Updated != 1 {
		t.Errorf("summary = %+v", decoded.Summary)
	}
	if len(decoded.Outcomes) != 4 {
		t.Errorf("expected 4 outcomes, got %d", len(decoded.Outcomes))
	}
	if decoded.Outcomes[0].Fields["Crime"] != "MURDER 1ST DEGREE" {
		t.Errorf("outcome fields = %v", decoded.Outcomes[0].Fields)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("yaml"), false); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"dry-run", "delay", "data-dir", "format", "verbose", "limit"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if cmd.Use != "docketwatch" {
		t.Errorf("Use = %q", cmd.Use)
	}
}
